package notify

import (
	"github.com/safetyplan/actionplan/internal/domain"
)

// DescriptionNotFound replaces descriptions of refs missing from the catalog.
const DescriptionNotFound = "description not found"

// Key identifies a responsible-party pair. Both addresses are trimmed and
// lower-cased; a missing co-responsible is "".
type Key struct {
	Responsible   string
	CoResponsible string
}

// KeyOf returns the grouping key of an item.
func KeyOf(it domain.ActionItem) Key {
	return Key{
		Responsible:   domain.NormalizeEmail(it.ResponsibleEmail),
		CoResponsible: domain.NormalizeEmail(it.CoResponsibleEmail),
	}
}

// BatchItem is an overdue item with its catalog description resolved.
type BatchItem struct {
	domain.ActionItem
	Description string
}

// Batch is the set of overdue items reported in one message.
type Batch struct {
	Key   Key
	Items []BatchItem
}

// GroupByResponsible partitions items by responsible-party pair. Groups keep
// the order in which their key first appears; items keep input order.
func GroupByResponsible(items []domain.ActionItem, catalog domain.Catalog) []Batch {
	index := make(map[Key]int)
	var batches []Batch

	for _, it := range items {
		key := KeyOf(it)
		i, ok := index[key]
		if !ok {
			i = len(batches)
			index[key] = i
			batches = append(batches, Batch{Key: key})
		}

		desc, found := catalog.Description(it.BlockingActionRef)
		if !found || desc == "" {
			desc = DescriptionNotFound
		}
		batches[i].Items = append(batches[i].Items, BatchItem{ActionItem: it, Description: desc})
	}

	return batches
}
