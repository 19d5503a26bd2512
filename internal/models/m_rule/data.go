package m_rule

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data is the database row shape for the rate_rules table. Routes are
// stored as parallel from/to arrays (index-aligned pairs).
type Data struct {
	RuleID            string             `spanner:"rule_id"`
	RuleName          string             `spanner:"rule_name"`
	Family            string             `spanner:"family"`
	Kind              spanner.NullString `spanner:"kind"`
	ValueType         spanner.NullString `spanner:"value_type"`
	Value             *big.Rat           `spanner:"value"`
	CommissionPercent *big.Rat           `spanner:"commission_percent"`
	CommissionFlow    []string           `spanner:"commission_flow"`
	Provider          string             `spanner:"provider"`
	AppliedToLayer    string             `spanner:"applied_to_layer"`
	PartnerScope      spanner.NullString `spanner:"partner_scope"`
	ServiceTypes      []string           `spanner:"service_types"`
	PassengerTypes    []string           `spanner:"passenger_types"`
	PassengerCabins   []string           `spanner:"passenger_cabins"`
	CargoTypes        []string           `spanner:"cargo_types"`
	VehicleTypes      []string           `spanner:"vehicle_types"`
	VisaType          spanner.NullString `spanner:"visa_type"`
	RouteFrom         []string           `spanner:"route_from"`
	RouteTo           []string           `spanner:"route_to"`
	EffectiveDate     time.Time          `spanner:"effective_date"`
	ExpiryDate        spanner.NullTime   `spanner:"expiry_date"`
	Status            string             `spanner:"status"`
	IsDeleted         bool               `spanner:"is_deleted"`
	CreatedAt         time.Time          `spanner:"created_at"`
	UpdatedAt         time.Time          `spanner:"updated_at"`
}

// ReadColumns is the column list for full-row reads.
var ReadColumns = []string{
	RuleID, RuleName, Family, Kind, ValueType, Value,
	CommissionPercent, CommissionFlow, Provider, AppliedToLayer,
	PartnerScope, ServiceTypes, PassengerTypes, PassengerCabins,
	CargoTypes, VehicleTypes, VisaType, RouteFrom, RouteTo,
	EffectiveDate, ExpiryDate, Status, IsDeleted, CreatedAt, UpdatedAt,
}
