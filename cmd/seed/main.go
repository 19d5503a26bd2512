package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	promodomain "github.com/harborline/tariff-service/internal/app/promotion/domain"
	promorepo "github.com/harborline/tariff-service/internal/app/promotion/repo"
	"github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/app/rating/repo"
	"github.com/harborline/tariff-service/internal/models/m_partner"
	"github.com/harborline/tariff-service/internal/models/m_promotion"
	"github.com/harborline/tariff-service/internal/models/m_rule"
)

// Seeds a development database with a small partner hierarchy, a few
// rate rules and two promotions. Intended for the emulator.
func main() {
	_ = godotenv.Load()

	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		spannerDB = "projects/test-project/instances/dev-instance/databases/tariff-db"
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	var muts []*spanner.Mutation
	muts = append(muts, partnerMuts()...)
	muts = append(muts, ruleMuts()...)
	muts = append(muts, promotionMuts()...)

	if _, err := client.Apply(ctx, muts); err != nil {
		log.Fatalf("Failed to apply seed mutations: %v", err)
	}

	log.Printf("Seeded %d rows into %s", len(muts), spannerDB)
}

func partnerMuts() []*spanner.Mutation {
	model := m_partner.NewModel()
	rows := []*m_partner.Data{
		{PartnerID: "harborline", Name: "Harborline Ferries", Layer: string(domain.LayerCompany)},
		{PartnerID: "marine-north", Name: "North Marine Agency", Layer: string(domain.LayerMarineAgent), ParentID: nullString("harborline")},
		{PartnerID: "commercial-1", Name: "Coastal Commercial", Layer: string(domain.LayerCommercialAgent), ParentID: nullString("marine-north")},
		{PartnerID: "desk-pier7", Name: "Pier 7 Desk", Layer: string(domain.LayerSellingAgent), ParentID: nullString("commercial-1")},
	}
	muts := make([]*spanner.Mutation, 0, len(rows))
	for _, row := range rows {
		muts = append(muts, model.InsertMut(row))
	}
	return muts
}

func ruleMuts() []*spanner.Mutation {
	model := m_rule.NewModel()
	effective := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	markup := &m_rule.Data{
		RuleID:         uuid.New().String(),
		RuleName:       "High season passenger markup",
		Family:         m_rule.FamilyAdjustment,
		Kind:           nullString(string(domain.KindMarkup)),
		ValueType:      nullString(string(domain.ValuePercent)),
		Value:          repo.DecimalToNumeric(decimal.NewFromInt(10)),
		Provider:       "harborline",
		AppliedToLayer: string(domain.LayerSellingAgent),
		ServiceTypes:   []string{string(domain.ServicePassenger)},
		RouteFrom:      []string{"PIRAEUS"},
		RouteTo:        []string{"HERAKLION"},
		EffectiveDate:  effective,
		ExpiryDate:     spanner.NullTime{Time: expiry, Valid: true},
		Status:         string(domain.StatusActive),
	}

	discount := &m_rule.Data{
		RuleID:         uuid.New().String(),
		RuleName:       "Student discount",
		Family:         m_rule.FamilyAdjustment,
		Kind:           nullString(string(domain.KindDiscount)),
		ValueType:      nullString(string(domain.ValueAmount)),
		Value:          repo.DecimalToNumeric(decimal.NewFromInt(5)),
		Provider:       "harborline",
		AppliedToLayer: string(domain.LayerSellingAgent),
		ServiceTypes:   []string{string(domain.ServicePassenger)},
		PassengerTypes: []string{"STUDENT"},
		EffectiveDate:  effective,
		Status:         string(domain.StatusActive),
	}

	commission := &m_rule.Data{
		RuleID:            uuid.New().String(),
		RuleName:          "Standard agent commission",
		Family:            m_rule.FamilyCommission,
		CommissionPercent: repo.DecimalToNumeric(decimal.NewFromInt(8)),
		CommissionFlow: []string{
			string(domain.LayerMarineAgent),
			string(domain.LayerCommercialAgent),
			string(domain.LayerSellingAgent),
		},
		Provider:       "harborline",
		AppliedToLayer: string(domain.LayerSellingAgent),
		ServiceTypes: []string{
			string(domain.ServicePassenger),
			string(domain.ServiceVehicle),
		},
		EffectiveDate: effective,
		Status:        string(domain.StatusActive),
	}

	return []*spanner.Mutation{
		model.InsertMut(markup),
		model.InsertMut(discount),
		model.InsertMut(commission),
	}
}

func promotionMuts() []*spanner.Mutation {
	model := m_promotion.NewModel()

	summer := &m_promotion.Data{
		PromotionID: uuid.New().String(),
		Name:        "Summer family bundle",
		Status:      string(domain.StatusActive),
		Basis:       string(promodomain.BasisPeriod),
		PeriodStart: spanner.NullTime{Time: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		PeriodEnd:   spanner.NullTime{Time: time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC), Valid: true},
		PassengerRules: promorepo.EncodeTicketRules(&promodomain.TicketRules{
			Enabled:  true,
			RuleType: promodomain.RuleQuantity,
			Quantity: &promodomain.QuantityRule{BuyX: 3, GetY: 1},
		}),
	}

	tripSpecial := &m_promotion.Data{
		PromotionID: uuid.New().String(),
		Name:        "Maiden voyage special",
		Status:      string(domain.StatusActive),
		Basis:       string(promodomain.BasisTrip),
		TripID:      spanner.NullString{StringVal: "trip-42", Valid: true},
		VehicleRules: promorepo.EncodeTicketRules(&promodomain.TicketRules{
			Enabled:  true,
			RuleType: promodomain.RuleTotalValue,
			TotalValue: &promodomain.TotalValueRule{
				MinAmount: decimal.NewFromInt(150),
				Discount: promodomain.ValueDiscount{
					Type:  domain.ValuePercent,
					Value: decimal.NewFromInt(15),
				},
			},
		}),
	}

	return []*spanner.Mutation{
		model.InsertMut(summer),
		model.InsertMut(tripSpecial),
	}
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: true}
}
