package notify

import (
	"github.com/golang-sql/civil"

	"github.com/safetyplan/actionplan/internal/domain"
)

// SelectOverdue returns the items that are open and whose initial deadline is
// strictly before today, in input order. Items without a parseable deadline
// are left out.
func SelectOverdue(items []domain.ActionItem, today civil.Date) []domain.ActionItem {
	var overdue []domain.ActionItem
	for _, it := range items {
		if it.IsOverdue(today) {
			overdue = append(overdue, it)
		}
	}
	return overdue
}

// countOpenWithoutDeadline counts open items excluded from selection because
// they carry no usable deadline.
func countOpenWithoutDeadline(items []domain.ActionItem) int {
	n := 0
	for _, it := range items {
		if it.Status.IsOpen() && it.InitialDeadline == nil {
			n++
		}
	}
	return n
}
