package domain

import (
	"github.com/shopspring/decimal"

	rating "github.com/harborline/tariff-service/internal/app/rating/domain"
)

// CartItem is one bookable line in a checkout cart.
type CartItem struct {
	Category  rating.ServiceType
	Quantity  int64
	UnitPrice decimal.Decimal

	// LineTotal, when set, overrides UnitPrice × Quantity (the cart
	// builder may already have per-line adjustments folded in).
	LineTotal decimal.Decimal

	PassengerType string
	CabinClass    string
	CargoType     string
	VehicleType   string
}

// Total returns the line's value.
func (it CartItem) Total() decimal.Decimal {
	if !it.LineTotal.IsZero() {
		return it.LineTotal
	}
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

// Cart is the full checkout cart across categories.
type Cart []CartItem

// ByCategory returns the items of one category, preserving order.
func (c Cart) ByCategory(cat rating.ServiceType) Cart {
	out := make(Cart, 0, len(c))
	for _, it := range c {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// Summary aggregates a qualifying subset of cart items.
type Summary struct {
	Quantity int64
	Value    decimal.Decimal
}

// Summarize totals quantity and value over the items.
func Summarize(items Cart) Summary {
	s := Summary{Value: decimal.Zero}
	for _, it := range items {
		s.Quantity += it.Quantity
		s.Value = s.Value.Add(it.Total())
	}
	return s
}

// AvgUnit is the average unit value, zero for an empty subset.
func (s Summary) AvgUnit() decimal.Decimal {
	if s.Quantity == 0 {
		return decimal.Zero
	}
	return s.Value.Div(decimal.NewFromInt(s.Quantity))
}
