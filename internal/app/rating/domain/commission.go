package domain

import "github.com/shopspring/decimal"

// AppliedCommission records one commission rule's contribution.
type AppliedCommission struct {
	RuleID     string
	RuleName   string
	Commission decimal.Decimal
	Flow       []Layer
}

// CommissionResult is the outcome of distributing matched commission
// rules over a base price.
type CommissionResult struct {
	BasePrice       decimal.Decimal
	TotalCommission decimal.Decimal

	// Distribution accumulates each layer's share across all matched
	// rules: a layer named in several flows collects from each.
	Distribution map[Layer]decimal.Decimal

	Applied []AppliedCommission
}

// DistributeCommissions computes each rule's commission against the base
// price and splits it equally over the rule's flow. The equal split is
// deliberate: the rule shape carries no per-layer weighting. A rule with
// an empty flow still counts toward the total but distributes nothing.
func DistributeCommissions(rules []CommissionRule, basePrice decimal.Decimal) (*CommissionResult, error) {
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}

	total := decimal.Zero
	distribution := make(map[Layer]decimal.Decimal)
	applied := make([]AppliedCommission, 0, len(rules))

	for _, rule := range rules {
		commission := basePrice.Mul(rule.CommissionPercent).Div(hundred)
		total = total.Add(commission)

		if len(rule.Flow) > 0 {
			share := commission.Div(decimal.NewFromInt(int64(len(rule.Flow))))
			for _, layer := range rule.Flow {
				distribution[layer] = distribution[layer].Add(share)
			}
		}

		applied = append(applied, AppliedCommission{
			RuleID:     rule.ID,
			RuleName:   rule.Name,
			Commission: commission,
			Flow:       rule.Flow,
		})
	}

	return &CommissionResult{
		BasePrice:       basePrice,
		TotalCommission: total,
		Distribution:    distribution,
		Applied:         applied,
	}, nil
}
