package domain

import (
	"time"

	"github.com/shopspring/decimal"

	rating "github.com/harborline/tariff-service/internal/app/rating/domain"
)

// Basis determines how a promotion's validity is scoped.
type Basis string

const (
	// BasisPeriod promotions are valid inside a date range.
	BasisPeriod Basis = "PERIOD"
	// BasisTrip promotions are valid for one trip, regardless of time.
	BasisTrip Basis = "TRIP"
)

// ContainerRuleType selects the discount formula of a ticket container.
type ContainerRuleType string

const (
	RuleQuantity   ContainerRuleType = "QUANTITY"
	RuleTotalValue ContainerRuleType = "TOTAL_VALUE"
)

// Period is an inclusive validity window.
type Period struct {
	StartAt time.Time
	EndAt   time.Time
}

// QuantityRule grants GetY free units for every BuyX qualifying units.
type QuantityRule struct {
	BuyX int64
	GetY int64
}

// ValueDiscount is a percent-of-value or fixed-amount discount.
type ValueDiscount struct {
	Type  rating.ValueType
	Value decimal.Decimal
}

// TotalValueRule applies a discount once the qualifying cart value
// reaches MinAmount.
type TotalValueRule struct {
	MinAmount decimal.Decimal
	Discount  ValueDiscount
}

// ItemCondition is one eligibility tuple. Set fields must all equal the
// item's corresponding attribute; unset fields are don't-cares. Tuples
// are OR-combined at the container level.
type ItemCondition struct {
	PassengerType string
	CabinClass    string
	CargoType     string
	VehicleType   string
}

// MatchesItem reports whether the item satisfies this tuple.
func (c ItemCondition) MatchesItem(it CartItem) bool {
	if c.PassengerType != "" && c.PassengerType != it.PassengerType {
		return false
	}
	if c.CabinClass != "" && c.CabinClass != it.CabinClass {
		return false
	}
	if c.CargoType != "" && c.CargoType != it.CargoType {
		return false
	}
	if c.VehicleType != "" && c.VehicleType != it.VehicleType {
		return false
	}
	return true
}

// TicketRules is one category's container inside a promotion: the
// discount formula plus the eligibility tuples deciding which cart
// items qualify. An empty Conditions list qualifies every item of the
// category.
type TicketRules struct {
	Enabled    bool
	RuleType   ContainerRuleType
	Quantity   *QuantityRule
	TotalValue *TotalValueRule
	Conditions []ItemCondition
}

// Promotion holds up to three independent ticket containers, one per
// category. The engine never mutates promotions; they are snapshots
// owned by the promotion CRUD services.
type Promotion struct {
	ID        string
	Name      string
	Status    rating.RuleStatus
	IsDeleted bool

	Basis  Basis
	Period *Period // required iff Basis == BasisPeriod
	TripID string  // required iff Basis == BasisTrip

	Passenger *TicketRules
	Cargo     *TicketRules
	Vehicle   *TicketRules
}

// Container returns the ticket container for the category, nil when the
// promotion does not cover it.
func (p *Promotion) Container(cat rating.ServiceType) *TicketRules {
	switch cat {
	case rating.ServicePassenger:
		return p.Passenger
	case rating.ServiceCargo:
		return p.Cargo
	case rating.ServiceVehicle:
		return p.Vehicle
	}
	return nil
}

// CheckoutContext carries the basis axes a cart is evaluated under.
// TripID is optional; when empty, trip-based promotions are not
// narrowed to a specific trip.
type CheckoutContext struct {
	At     time.Time
	TripID string
}

// EligibleFor reports whether the promotion is a candidate for the
// checkout context: active, not deleted, and basis-matched. Period
// promotions match when At falls inside the inclusive window; trip
// promotions match unconditionally by time but are narrowed by trip id
// when the caller supplies one.
func (p *Promotion) EligibleFor(ctx CheckoutContext) bool {
	if p.IsDeleted || p.Status != rating.StatusActive {
		return false
	}
	switch p.Basis {
	case BasisPeriod:
		return p.Period != nil &&
			!ctx.At.Before(p.Period.StartAt) &&
			!ctx.At.After(p.Period.EndAt)
	case BasisTrip:
		return ctx.TripID == "" || p.TripID == ctx.TripID
	}
	return false
}
