package m_promotion

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutation building for the promotions table.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting (or replacing) a promotion row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			PromotionID, Name, Status, IsDeleted, Basis,
			PeriodStart, PeriodEnd, TripID,
			PassengerRules, CargoRules, VehicleRules,
			CreatedAt, UpdatedAt,
		},
		[]interface{}{
			data.PromotionID, data.Name, data.Status, data.IsDeleted,
			data.Basis, data.PeriodStart, data.PeriodEnd, data.TripID,
			data.PassengerRules, data.CargoRules, data.VehicleRules,
			spanner.CommitTimestamp, spanner.CommitTimestamp,
		},
	)
}

// SoftDeleteMut flags a promotion as deleted without removing the row.
func (m *Model) SoftDeleteMut(promotionID string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{PromotionID, IsDeleted, UpdatedAt},
		[]interface{}{promotionID, true, spanner.CommitTimestamp},
	)
}

// DeleteMut removes a promotion row (test cleanup only).
func (m *Model) DeleteMut(promotionID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{promotionID})
}
