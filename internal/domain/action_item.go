package domain

import (
	"strings"
	"time"

	"github.com/golang-sql/civil"
)

// ActionItem is one tracked remediation action: an instance of a blocking
// action assigned to an operating unit with an owner and a deadline.
type ActionItem struct {
	ID                 string
	BlockingActionRef  string
	IncidentRef        string
	OperatingUnit      string
	ResponsibleEmail   string
	CoResponsibleEmail string
	// InitialDeadline is nil when the stored value is empty or unparseable.
	InitialDeadline *civil.Date
	Status          ActionStatus
	CompletionDate  *civil.Date
	EvidenceURL     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOverdue reports whether the item is open and its deadline is strictly
// before today. Items without a parseable deadline are never overdue.
func (a ActionItem) IsOverdue(today civil.Date) bool {
	if !a.Status.IsOpen() || a.InitialDeadline == nil {
		return false
	}
	return a.InitialDeadline.Before(today)
}

// HasResponsible reports whether the item names a primary owner.
func (a ActionItem) HasResponsible() bool {
	return strings.TrimSpace(a.ResponsibleEmail) != ""
}

// IsOwnedBy reports whether email is the item's responsible or co-responsible.
func (a ActionItem) IsOwnedBy(email string) bool {
	email = NormalizeEmail(email)
	if email == "" {
		return false
	}
	return NormalizeEmail(a.ResponsibleEmail) == email || NormalizeEmail(a.CoResponsibleEmail) == email
}

// BlockingAction is a catalog entry describing a recommended remediation step.
type BlockingAction struct {
	ID          string
	Description string
	Category    *string
	CreatedAt   time.Time
}

// Catalog indexes blocking-action descriptions by ID.
type Catalog map[string]string

// NewCatalog builds a Catalog from a list of blocking actions.
func NewCatalog(actions []BlockingAction) Catalog {
	c := make(Catalog, len(actions))
	for _, a := range actions {
		c[strings.TrimSpace(a.ID)] = a.Description
	}
	return c
}

// Description returns the description for ref and whether it was found.
func (c Catalog) Description(ref string) (string, bool) {
	d, ok := c[strings.TrimSpace(ref)]
	return d, ok
}

// Quarantined describes a stored row that could not be decoded into a domain
// value. Quarantined rows are reported, never silently dropped.
type Quarantined struct {
	Table  string
	ID     string
	Field  string
	Value  string
	Reason string
}

// Identity is the authenticated caller.
type Identity struct {
	Email string
	Role  Role
}
