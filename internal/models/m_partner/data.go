package m_partner

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is the database row shape for the partners table.
type Data struct {
	PartnerID string             `spanner:"partner_id"`
	Name      string             `spanner:"name"`
	Layer     string             `spanner:"layer"`
	ParentID  spanner.NullString `spanner:"parent_id"`
	CreatedAt time.Time          `spanner:"created_at"`
}

// ReadColumns is the column list for full-row reads.
var ReadColumns = []string{PartnerID, Name, Layer, ParentID, CreatedAt}

// Model provides mutation building for the partners table.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting (or replacing) a partner row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{PartnerID, Name, Layer, ParentID, CreatedAt},
		[]interface{}{data.PartnerID, data.Name, data.Layer, data.ParentID, spanner.CommitTimestamp},
	)
}

// DeleteMut removes a partner row (test cleanup only).
func (m *Model) DeleteMut(partnerID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{partnerID})
}
