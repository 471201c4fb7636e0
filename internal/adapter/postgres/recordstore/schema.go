package recordstore

import "github.com/safetyplan/actionplan/internal/domain"

type columnKind int

const (
	kindText columnKind = iota
	kindDate
	kindTimestamp
)

type column struct {
	name     string
	kind     columnKind
	nullable bool
	// managed columns are maintained by the database and never written.
	managed bool
}

type tableSchema struct {
	name    string
	entity  string
	columns []column
	// touch is true when updates must bump updated_at.
	touch bool
}

func (t tableSchema) column(name string) (column, bool) {
	for _, c := range t.columns {
		if c.name == name {
			return c, true
		}
	}
	return column{}, false
}

var tables = map[string]tableSchema{
	domain.TableActionItems: {
		name:   domain.TableActionItems,
		entity: "action item",
		touch:  true,
		columns: []column{
			{name: domain.ColID},
			{name: domain.ColBlockingActionRef},
			{name: domain.ColIncidentRef, nullable: true},
			{name: domain.ColOperatingUnit},
			{name: domain.ColResponsibleEmail},
			{name: domain.ColCoResponsibleEmail, nullable: true},
			{name: domain.ColInitialDeadline, kind: kindDate, nullable: true},
			{name: domain.ColStatus},
			{name: domain.ColCompletionDate, kind: kindDate, nullable: true},
			{name: domain.ColEvidenceURL, nullable: true},
			{name: domain.ColCreatedAt, kind: kindTimestamp, managed: true},
			{name: domain.ColUpdatedAt, kind: kindTimestamp, managed: true},
		},
	},
	domain.TableBlockingActions: {
		name:   domain.TableBlockingActions,
		entity: "blocking action",
		columns: []column{
			{name: domain.ColID},
			{name: domain.ColDescription},
			{name: domain.ColCategory, nullable: true},
			{name: domain.ColCreatedAt, kind: kindTimestamp, managed: true},
		},
	},
}

// selectExpr renders a column so that every value scans as text in the
// formats the domain codec parses.
func (c column) selectExpr() string {
	switch c.kind {
	case kindDate:
		return "to_char(" + c.name + ", 'YYYY-MM-DD') AS " + c.name
	case kindTimestamp:
		return "to_char(" + c.name + ` AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS.US"Z"') AS ` + c.name
	default:
		return c.name
	}
}
