package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	rating "github.com/harborline/tariff-service/internal/app/rating/domain"
)

var hundred = decimal.NewFromInt(100)

var categories = []rating.ServiceType{
	rating.ServicePassenger,
	rating.ServiceCargo,
	rating.ServiceVehicle,
}

// CategoryDiscount is one category's contribution to an evaluation.
type CategoryDiscount struct {
	Category rating.ServiceType
	Amount   decimal.Decimal
	Detail   string

	// Warning is set when the container was skipped because its rule
	// shape was internally inconsistent. The contribution is zero but
	// the computation as a whole proceeds.
	Warning string
}

// Evaluation is the full discount a single promotion yields for a cart.
type Evaluation struct {
	PromotionID string
	Name        string
	Basis       Basis
	Total       decimal.Decimal
	Breakdown   []CategoryDiscount
}

// Selection is the outcome of best-of evaluation over a candidate set.
type Selection struct {
	Applied     bool
	PromotionID string
	Name        string
	Basis       Basis

	// Discount is rounded to 2 decimals; selection itself compares the
	// unrounded totals.
	Discount decimal.Decimal

	Breakdown []CategoryDiscount

	// CandidateCount is reported for diagnostics even when nothing
	// applied: "no eligible promotion" is a valid business state, and
	// callers want to distinguish "none configured" from "none won".
	CandidateCount int
}

// Evaluate computes the promotion's discount for the cart: each enabled
// container contributes its category amount, and the total is their sum.
// Pure function of its inputs.
func Evaluate(p *Promotion, cart Cart) *Evaluation {
	eval := &Evaluation{
		PromotionID: p.ID,
		Name:        p.Name,
		Basis:       p.Basis,
		Total:       decimal.Zero,
	}
	for _, cat := range categories {
		container := p.Container(cat)
		if container == nil || !container.Enabled {
			continue
		}
		cd := containerDiscount(cat, container, cart.ByCategory(cat))
		eval.Breakdown = append(eval.Breakdown, cd)
		eval.Total = eval.Total.Add(cd.Amount)
	}
	return eval
}

// containerDiscount computes one container's discount over its
// category's items. Invalid rule shapes skip the container with a
// warning instead of failing the whole evaluation.
func containerDiscount(cat rating.ServiceType, container *TicketRules, items Cart) CategoryDiscount {
	cd := CategoryDiscount{Category: cat, Amount: decimal.Zero}

	sum := Summarize(qualifyingItems(container.Conditions, items))

	switch container.RuleType {
	case RuleQuantity:
		q := container.Quantity
		if q == nil || q.BuyX < 1 || q.GetY < 1 {
			cd.Warning = "quantity container skipped: rule requires buyX >= 1 and getY >= 1"
			return cd
		}
		bundles := sum.Quantity / q.BuyX
		if bundles == 0 {
			cd.Detail = fmt.Sprintf("buy %d get %d: %d qualifying units, no full bundle", q.BuyX, q.GetY, sum.Quantity)
			return cd
		}
		free := bundles * q.GetY
		cd.Amount = sum.AvgUnit().Mul(decimal.NewFromInt(free))
		cd.Detail = fmt.Sprintf("buy %d get %d: %d bundles, %d free units", q.BuyX, q.GetY, bundles, free)

	case RuleTotalValue:
		tv := container.TotalValue
		if tv == nil || !tv.MinAmount.IsPositive() || tv.Discount.Value.IsNegative() {
			cd.Warning = "total-value container skipped: rule requires minAmount > 0 and a non-negative discount"
			return cd
		}
		if sum.Value.LessThan(tv.MinAmount) {
			cd.Detail = fmt.Sprintf("qualifying value %s below threshold %s", sum.Value, tv.MinAmount)
			return cd
		}
		switch tv.Discount.Type {
		case rating.ValuePercent:
			cd.Amount = sum.Value.Mul(tv.Discount.Value).Div(hundred)
			cd.Detail = fmt.Sprintf("%s%% of qualifying value %s", tv.Discount.Value, sum.Value)
		case rating.ValueAmount:
			// A fixed discount never exceeds the value it discounts.
			cd.Amount = decimal.Min(tv.Discount.Value, sum.Value)
			cd.Detail = fmt.Sprintf("fixed discount on qualifying value %s", sum.Value)
		default:
			cd.Warning = "total-value container skipped: unknown discount type"
		}

	default:
		cd.Warning = "container skipped: unknown rule type"
	}

	return cd
}

func qualifyingItems(conditions []ItemCondition, items Cart) Cart {
	if len(conditions) == 0 {
		return items
	}
	out := make(Cart, 0, len(items))
	for _, it := range items {
		for _, cond := range conditions {
			if cond.MatchesItem(it) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterCandidates returns the promotions eligible for the checkout
// context, stable-sorted by promotion id. Sorting pins the tie-break:
// the fetched list's iteration order is not contractually stable, so
// "first seen wins" is made deterministic by always seeing the lowest
// id first.
func FilterCandidates(promotions []*Promotion, ctx CheckoutContext) []*Promotion {
	candidates := make([]*Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.EligibleFor(ctx) {
			candidates = append(candidates, p)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})
	return candidates
}

// Select picks the evaluation with the strictly largest total. Ties go
// to the earliest index, so with evaluations ordered by promotion id the
// lowest id wins a tie. No positive total means "not applied".
func Select(evaluations []*Evaluation, candidateCount int) *Selection {
	sel := &Selection{Discount: decimal.Zero, CandidateCount: candidateCount}

	var best *Evaluation
	for _, eval := range evaluations {
		if eval == nil || !eval.Total.IsPositive() {
			continue
		}
		if best == nil || eval.Total.GreaterThan(best.Total) {
			best = eval
		}
	}
	if best == nil {
		return sel
	}

	sel.Applied = true
	sel.PromotionID = best.PromotionID
	sel.Name = best.Name
	sel.Basis = best.Basis
	sel.Discount = best.Total.Round(2)
	sel.Breakdown = best.Breakdown
	return sel
}

// SelectBest runs the whole pipeline sequentially: filter candidates,
// evaluate each, pick the best.
func SelectBest(promotions []*Promotion, cart Cart, ctx CheckoutContext) *Selection {
	candidates := FilterCandidates(promotions, ctx)
	evaluations := make([]*Evaluation, len(candidates))
	for i, p := range candidates {
		evaluations[i] = Evaluate(p, cart)
	}
	return Select(evaluations, len(candidates))
}
