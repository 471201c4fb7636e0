package notify

import (
	"time"

	"github.com/golang-sql/civil"

	"github.com/safetyplan/actionplan/internal/domain"
)

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func datePtr(y int, m time.Month, d int) *civil.Date {
	v := day(y, m, d)
	return &v
}

// item builds an action item with an overdue deadline by default.
func item(id, owner, coOwner string, status domain.ActionStatus) domain.ActionItem {
	return domain.ActionItem{
		ID:                 id,
		BlockingActionRef:  "BA1",
		OperatingUnit:      "Plant A",
		ResponsibleEmail:   owner,
		CoResponsibleEmail: coOwner,
		InitialDeadline:    datePtr(2024, time.January, 1),
		Status:             status,
	}
}

func ids(items []domain.ActionItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
