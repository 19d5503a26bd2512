package m_promotion

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is the database row shape for the promotions table.
type Data struct {
	PromotionID    string             `spanner:"promotion_id"`
	Name           string             `spanner:"name"`
	Status         string             `spanner:"status"`
	IsDeleted      bool               `spanner:"is_deleted"`
	Basis          string             `spanner:"basis"`
	PeriodStart    spanner.NullTime   `spanner:"period_start"`
	PeriodEnd      spanner.NullTime   `spanner:"period_end"`
	TripID         spanner.NullString `spanner:"trip_id"`
	PassengerRules spanner.NullJSON   `spanner:"passenger_rules"`
	CargoRules     spanner.NullJSON   `spanner:"cargo_rules"`
	VehicleRules   spanner.NullJSON   `spanner:"vehicle_rules"`
	CreatedAt      time.Time          `spanner:"created_at"`
	UpdatedAt      time.Time          `spanner:"updated_at"`
}

// ReadColumns is the column list for full-row reads.
var ReadColumns = []string{
	PromotionID, Name, Status, IsDeleted, Basis,
	PeriodStart, PeriodEnd, TripID,
	PassengerRules, CargoRules, VehicleRules,
	CreatedAt, UpdatedAt,
}
