package m_promotion

// Field name constants for the promotions table. The three per-category
// ticket containers are stored as JSON documents.
const (
	TableName = "promotions"

	PromotionID    = "promotion_id"
	Name           = "name"
	Status         = "status"
	IsDeleted      = "is_deleted"
	Basis          = "basis"
	PeriodStart    = "period_start"
	PeriodEnd      = "period_end"
	TripID         = "trip_id"
	PassengerRules = "passenger_rules"
	CargoRules     = "cargo_rules"
	VehicleRules   = "vehicle_rules"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)
