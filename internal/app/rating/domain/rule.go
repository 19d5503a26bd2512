package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType identifies a bookable category.
type ServiceType string

const (
	ServicePassenger ServiceType = "PASSENGER"
	ServiceCargo     ServiceType = "CARGO"
	ServiceVehicle   ServiceType = "VEHICLE"
)

// Layer is a rank in the partner hierarchy, top to bottom.
type Layer string

const (
	LayerCompany         Layer = "COMPANY"
	LayerMarineAgent     Layer = "MARINE_AGENT"
	LayerCommercialAgent Layer = "COMMERCIAL_AGENT"
	LayerSellingAgent    Layer = "SELLING_AGENT"
)

// RuleKind distinguishes markup rules from discount rules.
type RuleKind string

const (
	KindMarkup   RuleKind = "MARKUP"
	KindDiscount RuleKind = "DISCOUNT"
)

// ValueType distinguishes percentage values from fixed amounts.
type ValueType string

const (
	ValuePercent ValueType = "PERCENT"
	ValueAmount  ValueType = "AMOUNT"
)

// RuleStatus is the lifecycle status set by the rule CRUD services.
type RuleStatus string

const (
	StatusActive   RuleStatus = "ACTIVE"
	StatusInactive RuleStatus = "INACTIVE"
)

// Route is a directed port pair.
type Route struct {
	From string
	To   string
}

// RuleConditions is the eligibility shape shared by adjustment and
// commission rules. An empty list on any axis means "no restriction on
// that axis"; ServiceTypes is the exception, where an empty set matches
// nothing (see Matches).
type RuleConditions struct {
	Provider       string
	AppliedToLayer Layer

	// PartnerScope restricts the rule to one partner. Nil is the
	// wildcard: every child partner of Provider at AppliedToLayer.
	PartnerScope *string

	ServiceTypes    []ServiceType
	PassengerTypes  []string
	PassengerCabins []string
	CargoTypes      []string
	VehicleTypes    []string
	VisaType        string
	Routes          []Route

	EffectiveDate time.Time
	ExpiryDate    *time.Time // nil means no expiry
	Status        RuleStatus
	IsDeleted     bool
}

// CurrentAt reports whether the rule is structurally active at t:
// not deleted, status active, inside the inclusive validity window.
// The store pre-filters on the same invariant; the engine re-checks
// rather than trusting the store for date correctness.
func (c *RuleConditions) CurrentAt(t time.Time) bool {
	if c.IsDeleted || c.Status != StatusActive {
		return false
	}
	if c.EffectiveDate.After(t) {
		return false
	}
	if c.ExpiryDate != nil && c.ExpiryDate.Before(t) {
		return false
	}
	return true
}

// AdjustmentRule raises or lowers a base price and carries its own
// commission percentage, accrued independently of the price delta.
type AdjustmentRule struct {
	ID                string
	Name              string
	Kind              RuleKind
	ValueType         ValueType
	Value             decimal.Decimal
	CommissionPercent decimal.Decimal
	RuleConditions
}

// CommissionRule owes a percentage of the base price to the layers
// named in Flow, split equally.
type CommissionRule struct {
	ID                string
	Name              string
	CommissionPercent decimal.Decimal
	Flow              []Layer
	RuleConditions
}
