package actionplan

import (
	"net/url"
	"strings"

	"github.com/safetyplan/actionplan/internal/domain"
)

// CreateItemsInput holds the parameters for creating action items from a
// selection of blocking actions.
type CreateItemsInput struct {
	IncidentRef        string
	OperatingUnit      string
	ResponsibleEmail   string
	CoResponsibleEmail string
	// InitialDeadline is DD/MM/YYYY or YYYY-MM-DD.
	InitialDeadline    string
	BlockingActionRefs []string
}

// Validate checks all fields and collects all errors.
func (i CreateItemsInput) Validate() error {
	var errs domain.ValidationError

	if len(strings.TrimSpace(i.IncidentRef)) > maxTextLength {
		errs.Add("incident_ref", "max 200 characters")
	}

	unit := strings.TrimSpace(i.OperatingUnit)
	if unit == "" {
		errs.Add("operating_unit", "required")
	}
	if len(unit) > maxTextLength {
		errs.Add("operating_unit", "max 200 characters")
	}

	if strings.TrimSpace(i.ResponsibleEmail) == "" {
		errs.Add("responsible_email", "required")
	} else if !domain.IsPlausibleEmail(i.ResponsibleEmail) {
		errs.Add("responsible_email", "must be an e-mail address")
	}

	if co := strings.TrimSpace(i.CoResponsibleEmail); co != "" {
		if !domain.IsPlausibleEmail(co) {
			errs.Add("co_responsible_email", "must be an e-mail address")
		} else if domain.NormalizeEmail(co) == domain.NormalizeEmail(i.ResponsibleEmail) {
			errs.Add("co_responsible_email", "must differ from responsible_email")
		}
	}

	if strings.TrimSpace(i.InitialDeadline) == "" {
		errs.Add("initial_deadline", "required")
	} else if _, ok := domain.ParseDeadline(i.InitialDeadline); !ok {
		errs.Add("initial_deadline", "must be DD/MM/YYYY or YYYY-MM-DD")
	}

	refs := uniqueRefs(i.BlockingActionRefs)
	if len(refs) == 0 {
		errs.Add("blocking_action_refs", "at least one required")
	}
	if len(refs) > MaxRefsPerRequest {
		errs.Add("blocking_action_refs", "max 50 per request")
	}

	return errs.Err()
}

// UpdateItemInput holds a partial update. Nil fields are left unchanged.
type UpdateItemInput struct {
	ID              string
	Status          *string
	InitialDeadline *string
	EvidenceURL     *string // ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs domain.ValidationError

	if strings.TrimSpace(i.ID) == "" {
		errs.Add("id", "required")
	}

	if i.Status == nil && i.InitialDeadline == nil && i.EvidenceURL == nil {
		errs.Add("input", "at least one field must be provided")
	}

	if i.Status != nil {
		if _, err := domain.ParseActionStatus(*i.Status); err != nil {
			errs.Add("status", "must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED")
		}
	}

	if i.InitialDeadline != nil {
		if _, ok := domain.ParseDeadline(*i.InitialDeadline); !ok {
			errs.Add("initial_deadline", "must be DD/MM/YYYY or YYYY-MM-DD")
		}
	}

	if i.EvidenceURL != nil {
		if raw := strings.TrimSpace(*i.EvidenceURL); raw != "" && !isHTTPURL(raw) {
			errs.Add("evidence_url", "must be an http(s) URL")
		}
		if len(*i.EvidenceURL) > maxURLLength {
			errs.Add("evidence_url", "max 2048 characters")
		}
	}

	return errs.Err()
}

// ListItemsFilter narrows ListItems. Zero fields match everything.
type ListItemsFilter struct {
	Status           *string
	OperatingUnit    string
	ResponsibleEmail string
	OverdueOnly      bool
}

// Validate checks all fields and collects all errors.
func (f ListItemsFilter) Validate() error {
	if f.Status != nil {
		if _, err := domain.ParseActionStatus(*f.Status); err != nil {
			return domain.NewValidationError("status", "must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED")
		}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// uniqueRefs trims refs and drops blanks and duplicates, keeping order.
func uniqueRefs(refs []string) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
