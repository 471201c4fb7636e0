package domain

import (
	"strings"
	"time"

	"github.com/golang-sql/civil"
)

// DecodeActionItems converts action_items records into domain values.
// Rows that cannot be decoded (missing id, unknown status) are returned as
// quarantined instead of items. Unparseable deadlines are not a decode
// failure: the item keeps a nil InitialDeadline.
func DecodeActionItems(records []Record) ([]ActionItem, []Quarantined) {
	items := make([]ActionItem, 0, len(records))
	var quarantined []Quarantined

	for _, r := range records {
		item, q, ok := DecodeActionItem(r)
		if !ok {
			quarantined = append(quarantined, q)
			continue
		}
		items = append(items, item)
	}

	return items, quarantined
}

// DecodeActionItem converts one action_items record. When ok is false the
// returned Quarantined explains why.
func DecodeActionItem(r Record) (item ActionItem, q Quarantined, ok bool) {
	id := strings.TrimSpace(r.Get(ColID))
	if id == "" {
		return ActionItem{}, Quarantined{
			Table:  TableActionItems,
			Field:  ColID,
			Reason: "missing id",
		}, false
	}

	rawStatus := r.Get(ColStatus)
	status, err := ParseActionStatus(rawStatus)
	if err != nil {
		return ActionItem{}, Quarantined{
			Table:  TableActionItems,
			ID:     id,
			Field:  ColStatus,
			Value:  rawStatus,
			Reason: "unrecognized status",
		}, false
	}

	item = ActionItem{
		ID:                 id,
		BlockingActionRef:  strings.TrimSpace(r.Get(ColBlockingActionRef)),
		IncidentRef:        strings.TrimSpace(r.Get(ColIncidentRef)),
		OperatingUnit:      strings.TrimSpace(r.Get(ColOperatingUnit)),
		ResponsibleEmail:   normalizeMissing(r.Get(ColResponsibleEmail)),
		CoResponsibleEmail: normalizeMissing(r.Get(ColCoResponsibleEmail)),
		InitialDeadline:    parseDatePtr(r.Get(ColInitialDeadline)),
		Status:             status,
		CompletionDate:     parseDatePtr(r.Get(ColCompletionDate)),
		EvidenceURL:        stringPtrOrNil(r.Get(ColEvidenceURL)),
		CreatedAt:          parseTimestamp(r.Get(ColCreatedAt)),
		UpdatedAt:          parseTimestamp(r.Get(ColUpdatedAt)),
	}

	return item, Quarantined{}, true
}

// EncodeActionItem converts an item into a record suitable for Insert.
// Store-managed columns (id, created_at, updated_at) are omitted.
func EncodeActionItem(a ActionItem) Record {
	r := Record{
		ColBlockingActionRef:  a.BlockingActionRef,
		ColIncidentRef:        a.IncidentRef,
		ColOperatingUnit:      a.OperatingUnit,
		ColResponsibleEmail:   a.ResponsibleEmail,
		ColCoResponsibleEmail: a.CoResponsibleEmail,
		ColStatus:             a.Status.String(),
		ColInitialDeadline:    "",
		ColCompletionDate:     "",
		ColEvidenceURL:        "",
	}
	if a.InitialDeadline != nil {
		r[ColInitialDeadline] = FormatISODate(*a.InitialDeadline)
	}
	if a.CompletionDate != nil {
		r[ColCompletionDate] = FormatISODate(*a.CompletionDate)
	}
	if a.EvidenceURL != nil {
		r[ColEvidenceURL] = *a.EvidenceURL
	}
	return r
}

// DecodeBlockingActions converts blocking_actions records. Rows without an
// id are quarantined.
func DecodeBlockingActions(records []Record) ([]BlockingAction, []Quarantined) {
	actions := make([]BlockingAction, 0, len(records))
	var quarantined []Quarantined

	for _, r := range records {
		id := strings.TrimSpace(r.Get(ColID))
		if id == "" {
			quarantined = append(quarantined, Quarantined{
				Table:  TableBlockingActions,
				Field:  ColID,
				Value:  r.Get(ColDescription),
				Reason: "missing id",
			})
			continue
		}
		actions = append(actions, BlockingAction{
			ID:          id,
			Description: strings.TrimSpace(r.Get(ColDescription)),
			Category:    stringPtrOrNil(r.Get(ColCategory)),
			CreatedAt:   parseTimestamp(r.Get(ColCreatedAt)),
		})
	}

	return actions, quarantined
}

// normalizeMissing maps spreadsheet placeholders for "no value" to "".
func normalizeMissing(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "none", "null", "n/a":
		return ""
	}
	return s
}

func parseDatePtr(raw string) *civil.Date {
	d, ok := ParseDeadline(raw)
	if !ok {
		return nil
	}
	return &d
}

func stringPtrOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
}

// parseTimestamp returns the zero time when raw is empty or unparseable;
// timestamps are informational only.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
