package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// AppliedAdjustment records one rule's contribution to a quote.
type AppliedAdjustment struct {
	RuleID   string
	RuleName string
	Kind     RuleKind

	// Adjustment is the signed delta applied to the running price:
	// positive for markups, negative for discounts.
	Adjustment decimal.Decimal
	Commission decimal.Decimal
}

// AdjustmentResult is the outcome of folding matched rules over a base price.
type AdjustmentResult struct {
	BasePrice       decimal.Decimal
	FinalPrice      decimal.Decimal
	TotalAdjustment decimal.Decimal
	TotalCommission decimal.Decimal
	Applied         []AppliedAdjustment
}

// CalculateAdjustments applies the matched rules to the base price in
// list order. Percentage adjustments are taken of the original base
// price, and commission always accrues against the original base price
// as well, never the running price: commission is a provider incentive,
// not a customer-facing charge, so stacking discounts must not erode it.
//
// The final price is floored at zero; TotalAdjustment reports the raw
// (unfloored) delta so callers can still see how far a discount stack
// overshot. An empty rule list is a valid zero result, not an error:
// FinalPrice equals BasePrice and no commission accrues.
func CalculateAdjustments(rules []AdjustmentRule, basePrice decimal.Decimal) (*AdjustmentResult, error) {
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}

	running := basePrice
	commission := decimal.Zero
	applied := make([]AppliedAdjustment, 0, len(rules))

	for _, rule := range rules {
		var amount decimal.Decimal
		switch rule.ValueType {
		case ValuePercent:
			amount = basePrice.Mul(rule.Value).Div(hundred)
		case ValueAmount:
			amount = rule.Value
		default:
			// Inconsistent rule shape: skip rather than abort, one bad
			// rule must not block pricing.
			continue
		}

		var delta decimal.Decimal
		switch rule.Kind {
		case KindMarkup:
			delta = amount
		case KindDiscount:
			delta = amount.Neg()
		default:
			continue
		}

		running = running.Add(delta)
		ruleCommission := basePrice.Mul(rule.CommissionPercent).Div(hundred)
		commission = commission.Add(ruleCommission)

		applied = append(applied, AppliedAdjustment{
			RuleID:     rule.ID,
			RuleName:   rule.Name,
			Kind:       rule.Kind,
			Adjustment: delta,
			Commission: ruleCommission,
		})
	}

	final := running
	if final.IsNegative() {
		final = decimal.Zero
	}

	return &AdjustmentResult{
		BasePrice:       basePrice,
		FinalPrice:      final,
		TotalAdjustment: running.Sub(basePrice),
		TotalCommission: commission,
		Applied:         applied,
	}, nil
}
