package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/harborline/tariff-service/internal/app/promotion/contracts"
	"github.com/harborline/tariff-service/internal/app/promotion/domain"
	rating "github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/models/m_promotion"
	"github.com/harborline/tariff-service/internal/pkg/query"
)

// PromotionRepo implements PromotionRepository for Spanner.
type PromotionRepo struct {
	client *spanner.Client
}

// NewPromotionRepo creates a PromotionRepo.
func NewPromotionRepo(client *spanner.Client) contracts.PromotionRepository {
	return &PromotionRepo{client: client}
}

// ListActivePromotions fetches the active, non-deleted promotion
// snapshot ordered by id. Basis matching happens in the domain.
func (r *PromotionRepo) ListActivePromotions(ctx context.Context) ([]*domain.Promotion, error) {
	stmt := query.From(m_promotion.TableName).
		Select(m_promotion.ReadColumns...).
		Where(query.Eq(m_promotion.IsDeleted, false)).
		Where(query.Eq(m_promotion.Status, string(rating.StatusActive))).
		OrderBy(m_promotion.PromotionID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var promotions []*domain.Promotion
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query promotions: %w", err)
		}
		var data m_promotion.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse promotion row: %w", err)
		}
		p, err := dataToPromotion(&data)
		if err != nil {
			return nil, fmt.Errorf("decode promotion %s: %w", data.PromotionID, err)
		}
		promotions = append(promotions, p)
	}
	return promotions, nil
}

func dataToPromotion(data *m_promotion.Data) (*domain.Promotion, error) {
	p := &domain.Promotion{
		ID:        data.PromotionID,
		Name:      data.Name,
		Status:    rating.RuleStatus(data.Status),
		IsDeleted: data.IsDeleted,
		Basis:     domain.Basis(data.Basis),
	}
	if data.PeriodStart.Valid && data.PeriodEnd.Valid {
		p.Period = &domain.Period{StartAt: data.PeriodStart.Time, EndAt: data.PeriodEnd.Time}
	}
	if data.TripID.Valid {
		p.TripID = data.TripID.StringVal
	}

	var err error
	if p.Passenger, err = DecodeTicketRules(data.PassengerRules); err != nil {
		return nil, fmt.Errorf("passenger container: %w", err)
	}
	if p.Cargo, err = DecodeTicketRules(data.CargoRules); err != nil {
		return nil, fmt.Errorf("cargo container: %w", err)
	}
	if p.Vehicle, err = DecodeTicketRules(data.VehicleRules); err != nil {
		return nil, fmt.Errorf("vehicle container: %w", err)
	}
	return p, nil
}

// ticketRulesDoc is the JSON document shape of one ticket container.
type ticketRulesDoc struct {
	Enabled  bool   `json:"enabled"`
	RuleType string `json:"ruleType"`

	Quantity *struct {
		BuyX int64 `json:"buyX"`
		GetY int64 `json:"getY"`
	} `json:"quantityRule,omitempty"`

	TotalValue *struct {
		MinAmount decimal.Decimal `json:"minAmount"`
		Discount  struct {
			Type  string          `json:"type"`
			Value decimal.Decimal `json:"value"`
		} `json:"discount"`
	} `json:"totalValueRule,omitempty"`

	Conditions []struct {
		PassengerType string `json:"passengerType,omitempty"`
		CabinClass    string `json:"cabinClass,omitempty"`
		CargoType     string `json:"cargoType,omitempty"`
		VehicleType   string `json:"vehicleType,omitempty"`
	} `json:"conditions,omitempty"`
}

// DecodeTicketRules converts a JSON container column into the domain
// shape. A null column means the promotion does not cover the category.
func DecodeTicketRules(n spanner.NullJSON) (*domain.TicketRules, error) {
	if !n.Valid || n.Value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(n.Value)
	if err != nil {
		return nil, err
	}
	var doc ticketRulesDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	rules := &domain.TicketRules{
		Enabled:  doc.Enabled,
		RuleType: domain.ContainerRuleType(doc.RuleType),
	}
	if doc.Quantity != nil {
		rules.Quantity = &domain.QuantityRule{BuyX: doc.Quantity.BuyX, GetY: doc.Quantity.GetY}
	}
	if doc.TotalValue != nil {
		rules.TotalValue = &domain.TotalValueRule{
			MinAmount: doc.TotalValue.MinAmount,
			Discount: domain.ValueDiscount{
				Type:  rating.ValueType(doc.TotalValue.Discount.Type),
				Value: doc.TotalValue.Discount.Value,
			},
		}
	}
	for _, cond := range doc.Conditions {
		rules.Conditions = append(rules.Conditions, domain.ItemCondition{
			PassengerType: cond.PassengerType,
			CabinClass:    cond.CabinClass,
			CargoType:     cond.CargoType,
			VehicleType:   cond.VehicleType,
		})
	}
	return rules, nil
}

// EncodeTicketRules converts a domain container into the JSON column
// shape. Shared with the seed tooling.
func EncodeTicketRules(rules *domain.TicketRules) spanner.NullJSON {
	if rules == nil {
		return spanner.NullJSON{}
	}
	doc := map[string]interface{}{
		"enabled":  rules.Enabled,
		"ruleType": string(rules.RuleType),
	}
	if rules.Quantity != nil {
		doc["quantityRule"] = map[string]interface{}{
			"buyX": rules.Quantity.BuyX,
			"getY": rules.Quantity.GetY,
		}
	}
	if rules.TotalValue != nil {
		doc["totalValueRule"] = map[string]interface{}{
			"minAmount": rules.TotalValue.MinAmount,
			"discount": map[string]interface{}{
				"type":  string(rules.TotalValue.Discount.Type),
				"value": rules.TotalValue.Discount.Value,
			},
		}
	}
	if len(rules.Conditions) > 0 {
		conds := make([]map[string]interface{}, 0, len(rules.Conditions))
		for _, c := range rules.Conditions {
			cond := map[string]interface{}{}
			if c.PassengerType != "" {
				cond["passengerType"] = c.PassengerType
			}
			if c.CabinClass != "" {
				cond["cabinClass"] = c.CabinClass
			}
			if c.CargoType != "" {
				cond["cargoType"] = c.CargoType
			}
			if c.VehicleType != "" {
				cond["vehicleType"] = c.VehicleType
			}
			conds = append(conds, cond)
		}
		doc["conditions"] = conds
	}
	return spanner.NullJSON{Value: doc, Valid: true}
}
