package m_partner

// Field name constants for the partners table (flat hierarchy rows).
const (
	TableName = "partners"

	PartnerID = "partner_id"
	Name      = "name"
	Layer     = "layer"
	ParentID  = "parent_id"
	CreatedAt = "created_at"
)
