package actionplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/pkg/ctxutil"
)

// CreateItems creates one pending action item per selected blocking action.
// Only reviewers and admins may create items.
func (s *Service) CreateItems(ctx context.Context, input CreateItemsInput) ([]domain.ActionItem, error) {
	caller, err := ctxutil.RequireRole(ctx, domain.Role.CanReview)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	refs := uniqueRefs(input.BlockingActionRefs)
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, ref := range refs {
		if _, found := catalog.Description(ref); !found {
			return nil, fmt.Errorf("blocking action %s: %w", ref, domain.ErrNotFound)
		}
	}

	deadline, _ := domain.ParseDeadline(input.InitialDeadline)
	base := domain.ActionItem{
		IncidentRef:        strings.TrimSpace(input.IncidentRef),
		OperatingUnit:      strings.TrimSpace(input.OperatingUnit),
		ResponsibleEmail:   domain.NormalizeEmail(input.ResponsibleEmail),
		CoResponsibleEmail: domain.NormalizeEmail(input.CoResponsibleEmail),
		InitialDeadline:    &deadline,
		Status:             domain.ActionStatusPending,
	}

	items := make([]domain.ActionItem, 0, len(refs))
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, ref := range refs {
			it := base
			it.BlockingActionRef = ref

			id, insertErr := s.store.Insert(txCtx, domain.TableActionItems, domain.EncodeActionItem(it))
			if insertErr != nil {
				return fmt.Errorf("insert action item for %s: %w", ref, insertErr)
			}

			created, getErr := s.getItem(txCtx, id)
			if getErr != nil {
				return fmt.Errorf("reload action item %s: %w", id, getErr)
			}
			items = append(items, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "action items created",
		slog.String("by", caller.Email),
		slog.String("incident_ref", base.IncidentRef),
		slog.String("operating_unit", base.OperatingUnit),
		slog.String("responsible", base.ResponsibleEmail),
		slog.Int("count", len(items)),
	)

	return items, nil
}
