package m_rule

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutation building for the rate_rules table.
// The engine itself only reads; mutations serve the seed tooling and
// repository tests.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting (or replacing) a rule row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			RuleID, RuleName, Family, Kind, ValueType, Value,
			CommissionPercent, CommissionFlow, Provider, AppliedToLayer,
			PartnerScope, ServiceTypes, PassengerTypes, PassengerCabins,
			CargoTypes, VehicleTypes, VisaType, RouteFrom, RouteTo,
			EffectiveDate, ExpiryDate, Status, IsDeleted,
			CreatedAt, UpdatedAt,
		},
		[]interface{}{
			data.RuleID, data.RuleName, data.Family, data.Kind,
			data.ValueType, data.Value, data.CommissionPercent,
			data.CommissionFlow, data.Provider, data.AppliedToLayer,
			data.PartnerScope, data.ServiceTypes, data.PassengerTypes,
			data.PassengerCabins, data.CargoTypes, data.VehicleTypes,
			data.VisaType, data.RouteFrom, data.RouteTo,
			data.EffectiveDate, data.ExpiryDate, data.Status,
			data.IsDeleted, spanner.CommitTimestamp, spanner.CommitTimestamp,
		},
	)
}

// SoftDeleteMut flags a rule as deleted without removing the row.
func (m *Model) SoftDeleteMut(ruleID string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{RuleID, IsDeleted, UpdatedAt},
		[]interface{}{ruleID, true, spanner.CommitTimestamp},
	)
}

// DeleteMut removes a rule row (test cleanup only).
func (m *Model) DeleteMut(ruleID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{ruleID})
}
