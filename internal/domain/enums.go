package domain

import "fmt"

// ActionStatus is the lifecycle state of an action item.
type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "PENDING"
	ActionStatusInProgress ActionStatus = "IN_PROGRESS"
	ActionStatusCompleted  ActionStatus = "COMPLETED"
	ActionStatusCancelled  ActionStatus = "CANCELLED"
)

func (s ActionStatus) String() string { return string(s) }

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusInProgress, ActionStatusCompleted, ActionStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether work on the item is still expected.
func (s ActionStatus) IsOpen() bool {
	return s == ActionStatusPending || s == ActionStatusInProgress
}

// Label returns the human-readable form used in rendered messages.
func (s ActionStatus) Label() string {
	switch s {
	case ActionStatusPending:
		return "Pending"
	case ActionStatusInProgress:
		return "In progress"
	case ActionStatusCompleted:
		return "Completed"
	case ActionStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// statusAliases maps folded spellings (see FoldText) to statuses. Stores
// written by older tooling hold Portuguese labels such as "Pendente",
// "Em andamento" or "Concluído".
var statusAliases = map[string]ActionStatus{
	"pending":      ActionStatusPending,
	"pendente":     ActionStatusPending,
	"in_progress":  ActionStatusInProgress,
	"in progress":  ActionStatusInProgress,
	"in-progress":  ActionStatusInProgress,
	"em andamento": ActionStatusInProgress,
	"completed":    ActionStatusCompleted,
	"complete":     ActionStatusCompleted,
	"done":         ActionStatusCompleted,
	"concluido":    ActionStatusCompleted,
	"concluida":    ActionStatusCompleted,
	"cancelled":    ActionStatusCancelled,
	"canceled":     ActionStatusCancelled,
	"cancelado":    ActionStatusCancelled,
	"cancelada":    ActionStatusCancelled,
}

// ParseActionStatus converts a stored or user-supplied status string into an
// ActionStatus. Matching ignores case, surrounding whitespace and diacritics.
// Unrecognized values return an error wrapping ErrUnknownStatus.
func ParseActionStatus(raw string) (ActionStatus, error) {
	if s, ok := statusAliases[FoldText(raw)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// Role is the authorization level of the caller.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleReviewer, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role may create items and edit any item.
func (r Role) CanReview() bool {
	return r == RoleReviewer || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
