package repo

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/harborline/tariff-service/internal/app/rating/contracts"
	"github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/models/m_rule"
	"github.com/harborline/tariff-service/internal/pkg/query"
)

// numericScale is the decimal precision carried over from Spanner
// NUMERIC columns.
const numericScale = 9

// RuleRepo implements RuleRepository for Spanner.
type RuleRepo struct {
	client *spanner.Client
}

// NewRuleRepo creates a RuleRepo.
func NewRuleRepo(client *spanner.Client) contracts.RuleRepository {
	return &RuleRepo{client: client}
}

// ListAdjustmentRules fetches the structurally active adjustment rules
// for the provider/service type at the given instant, ordered by rule id.
func (r *RuleRepo) ListAdjustmentRules(ctx context.Context, provider string, st domain.ServiceType, at time.Time) ([]domain.AdjustmentRule, error) {
	rows, err := r.listFamily(ctx, m_rule.FamilyAdjustment, provider, st, at)
	if err != nil {
		return nil, err
	}
	rules := make([]domain.AdjustmentRule, 0, len(rows))
	for _, data := range rows {
		rules = append(rules, dataToAdjustment(data))
	}
	return rules, nil
}

// ListCommissionRules fetches the structurally active commission rules
// for the provider/service type at the given instant, ordered by rule id.
func (r *RuleRepo) ListCommissionRules(ctx context.Context, provider string, st domain.ServiceType, at time.Time) ([]domain.CommissionRule, error) {
	rows, err := r.listFamily(ctx, m_rule.FamilyCommission, provider, st, at)
	if err != nil {
		return nil, err
	}
	rules := make([]domain.CommissionRule, 0, len(rows))
	for _, data := range rows {
		rules = append(rules, dataToCommission(data))
	}
	return rules, nil
}

func (r *RuleRepo) listFamily(ctx context.Context, family, provider string, st domain.ServiceType, at time.Time) ([]*m_rule.Data, error) {
	stmt := query.From(m_rule.TableName).
		Select(m_rule.ReadColumns...).
		Where(query.Eq(m_rule.Family, family)).
		Where(query.Eq(m_rule.Provider, provider)).
		Where(query.Eq(m_rule.IsDeleted, false)).
		Where(query.Eq(m_rule.Status, string(domain.StatusActive))).
		Where(query.InUnnest(m_rule.ServiceTypes, string(st))).
		Where(query.Lte(m_rule.EffectiveDate, at)).
		Where(query.Or(query.IsNull(m_rule.ExpiryDate), query.Gte(m_rule.ExpiryDate, at))).
		OrderBy(m_rule.RuleID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var rows []*m_rule.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query %s rules: %w", family, err)
		}
		var data m_rule.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse %s rule row: %w", family, err)
		}
		rows = append(rows, &data)
	}
	return rows, nil
}

func dataToAdjustment(data *m_rule.Data) domain.AdjustmentRule {
	return domain.AdjustmentRule{
		ID:                data.RuleID,
		Name:              data.RuleName,
		Kind:              domain.RuleKind(data.Kind.StringVal),
		ValueType:         domain.ValueType(data.ValueType.StringVal),
		Value:             numericToDecimal(data.Value),
		CommissionPercent: numericToDecimal(data.CommissionPercent),
		RuleConditions:    dataToConditions(data),
	}
}

func dataToCommission(data *m_rule.Data) domain.CommissionRule {
	flow := make([]domain.Layer, 0, len(data.CommissionFlow))
	for _, layer := range data.CommissionFlow {
		flow = append(flow, domain.Layer(layer))
	}
	return domain.CommissionRule{
		ID:                data.RuleID,
		Name:              data.RuleName,
		CommissionPercent: numericToDecimal(data.CommissionPercent),
		Flow:              flow,
		RuleConditions:    dataToConditions(data),
	}
}

func dataToConditions(data *m_rule.Data) domain.RuleConditions {
	serviceTypes := make([]domain.ServiceType, 0, len(data.ServiceTypes))
	for _, st := range data.ServiceTypes {
		serviceTypes = append(serviceTypes, domain.ServiceType(st))
	}

	// route_from and route_to are index-aligned; a ragged pair is a
	// corrupt row, and the shorter side wins.
	n := len(data.RouteFrom)
	if len(data.RouteTo) < n {
		n = len(data.RouteTo)
	}
	routes := make([]domain.Route, 0, n)
	for i := 0; i < n; i++ {
		routes = append(routes, domain.Route{From: data.RouteFrom[i], To: data.RouteTo[i]})
	}

	c := domain.RuleConditions{
		Provider:        data.Provider,
		AppliedToLayer:  domain.Layer(data.AppliedToLayer),
		ServiceTypes:    serviceTypes,
		PassengerTypes:  data.PassengerTypes,
		PassengerCabins: data.PassengerCabins,
		CargoTypes:      data.CargoTypes,
		VehicleTypes:    data.VehicleTypes,
		Routes:          routes,
		EffectiveDate:   data.EffectiveDate,
		Status:          domain.RuleStatus(data.Status),
		IsDeleted:       data.IsDeleted,
	}
	if data.PartnerScope.Valid {
		scope := data.PartnerScope.StringVal
		c.PartnerScope = &scope
	}
	if data.VisaType.Valid {
		c.VisaType = data.VisaType.StringVal
	}
	if data.ExpiryDate.Valid {
		expiry := data.ExpiryDate.Time
		c.ExpiryDate = &expiry
	}
	return c
}

func numericToDecimal(rat *big.Rat) decimal.Decimal {
	if rat == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigRat(rat, numericScale)
}

// DecimalToNumeric converts a decimal to the big.Rat representation the
// Spanner NUMERIC columns use. Shared with the seed tooling.
func DecimalToNumeric(d decimal.Decimal) *big.Rat {
	return d.Rat()
}
