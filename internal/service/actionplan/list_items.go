package actionplan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

// ListItems returns the items matching filter. Filtering happens in memory
// after a full read. Owners only see items they are responsible for.
func (s *Service) ListItems(ctx context.Context, filter ListItemsFilter) ([]domain.ActionItem, error) {
	caller, err := ctxutil.RequireRole(ctx, nil)
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.store.ReadAll(ctx, domain.TableActionItems)
	if err != nil {
		return nil, fmt.Errorf("read action items: %w", err)
	}

	items, quarantined := domain.DecodeActionItems(records)
	for _, q := range quarantined {
		s.log.WarnContext(ctx, "action item quarantined",
			slog.String("id", q.ID),
			slog.String("field", q.Field),
			slog.String("value", q.Value),
			slog.String("reason", q.Reason),
		)
	}

	var status domain.ActionStatus
	if filter.Status != nil {
		status, _ = domain.ParseActionStatus(*filter.Status)
	}
	unit := domain.FoldText(filter.OperatingUnit)
	today := s.today()

	out := make([]domain.ActionItem, 0, len(items))
	for _, it := range items {
		if !caller.Role.CanReview() && !it.IsOwnedBy(caller.Email) {
			continue
		}
		if status != "" && it.Status != status {
			continue
		}
		if unit != "" && domain.FoldText(it.OperatingUnit) != unit {
			continue
		}
		if filter.ResponsibleEmail != "" && !it.IsOwnedBy(filter.ResponsibleEmail) {
			continue
		}
		if filter.OverdueOnly && !it.IsOverdue(today) {
			continue
		}
		out = append(out, it)
	}

	return out, nil
}
