package m_rule

// Field name constants for the rate_rules table. Adjustment and
// commission rules share the table; the family column tells them apart.
const (
	TableName = "rate_rules"

	FamilyAdjustment = "adjustment"
	FamilyCommission = "commission"

	RuleID            = "rule_id"
	RuleName          = "rule_name"
	Family            = "family"
	Kind              = "kind"
	ValueType         = "value_type"
	Value             = "value"
	CommissionPercent = "commission_percent"
	CommissionFlow    = "commission_flow"
	Provider          = "provider"
	AppliedToLayer    = "applied_to_layer"
	PartnerScope      = "partner_scope"
	ServiceTypes      = "service_types"
	PassengerTypes    = "passenger_types"
	PassengerCabins   = "passenger_cabins"
	CargoTypes        = "cargo_types"
	VehicleTypes      = "vehicle_types"
	VisaType          = "visa_type"
	RouteFrom         = "route_from"
	RouteTo           = "route_to"
	EffectiveDate     = "effective_date"
	ExpiryDate        = "expiry_date"
	Status            = "status"
	IsDeleted         = "is_deleted"
	CreatedAt         = "created_at"
	UpdatedAt         = "updated_at"
)
