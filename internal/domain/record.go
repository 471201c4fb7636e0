package domain

// Record is one store row keyed by column name. Absent and NULL values are
// both represented by the empty string.
type Record map[string]string

// Get returns the value for column, or "" when absent.
func (r Record) Get(column string) string {
	if r == nil {
		return ""
	}
	return r[column]
}

// Table names shared by every record store backend.
const (
	TableActionItems     = "action_items"
	TableBlockingActions = "blocking_actions"
)

// Column names of the action_items table.
const (
	ColID                 = "id"
	ColBlockingActionRef  = "blocking_action_ref"
	ColIncidentRef        = "incident_ref"
	ColOperatingUnit      = "operating_unit"
	ColResponsibleEmail   = "responsible_email"
	ColCoResponsibleEmail = "co_responsible_email"
	ColInitialDeadline    = "initial_deadline"
	ColStatus             = "status"
	ColCompletionDate     = "completion_date"
	ColEvidenceURL        = "evidence_url"
	ColCreatedAt          = "created_at"
	ColUpdatedAt          = "updated_at"
)

// Column names of the blocking_actions table.
const (
	ColDescription = "description"
	ColCategory    = "category"
)

// ActionItemColumns lists action_items columns in display order.
var ActionItemColumns = []string{
	ColID, ColBlockingActionRef, ColIncidentRef, ColOperatingUnit,
	ColResponsibleEmail, ColCoResponsibleEmail, ColInitialDeadline, ColStatus,
	ColCompletionDate, ColEvidenceURL, ColCreatedAt, ColUpdatedAt,
}

// BlockingActionColumns lists blocking_actions columns in display order.
var BlockingActionColumns = []string{ColID, ColDescription, ColCategory, ColCreatedAt}
