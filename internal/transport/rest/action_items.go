package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-sql/civil"

	"github.com/safetyplan/actionplan/internal/domain"
	"github.com/safetyplan/actionplan/internal/service/actionplan"
)

type actionPlanService interface {
	CreateItems(ctx context.Context, input actionplan.CreateItemsInput) ([]domain.ActionItem, error)
	UpdateItem(ctx context.Context, input actionplan.UpdateItemInput) (domain.ActionItem, error)
	ListItems(ctx context.Context, filter actionplan.ListItemsFilter) ([]domain.ActionItem, error)
	ListCatalog(ctx context.Context) ([]domain.BlockingAction, error)
	InvalidateCatalog(ctx context.Context) error
}

// ActionPlanHandler serves the action item and blocking action endpoints.
type ActionPlanHandler struct {
	svc actionPlanService
	log *slog.Logger
}

// NewActionPlanHandler creates an ActionPlanHandler.
func NewActionPlanHandler(svc actionPlanService, logger *slog.Logger) *ActionPlanHandler {
	return &ActionPlanHandler{svc: svc, log: logger.With("handler", "actionplan")}
}

type createItemsRequest struct {
	IncidentRef        string   `json:"incidentRef"`
	OperatingUnit      string   `json:"operatingUnit"`
	ResponsibleEmail   string   `json:"responsibleEmail"`
	CoResponsibleEmail string   `json:"coResponsibleEmail"`
	InitialDeadline    string   `json:"initialDeadline"`
	BlockingActionRefs []string `json:"blockingActionRefs"`
}

type updateItemRequest struct {
	Status          *string `json:"status"`
	InitialDeadline *string `json:"initialDeadline"`
	EvidenceURL     *string `json:"evidenceUrl"`
}

type actionItemResponse struct {
	ID                 string     `json:"id"`
	BlockingActionRef  string     `json:"blockingActionRef"`
	IncidentRef        string     `json:"incidentRef,omitempty"`
	OperatingUnit      string     `json:"operatingUnit"`
	ResponsibleEmail   string     `json:"responsibleEmail"`
	CoResponsibleEmail string     `json:"coResponsibleEmail,omitempty"`
	InitialDeadline    *string    `json:"initialDeadline"`
	Status             string     `json:"status"`
	CompletionDate     *string    `json:"completionDate"`
	EvidenceURL        *string    `json:"evidenceUrl"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

type blockingActionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Category    *string `json:"category,omitempty"`
}

// ListItems handles GET /api/action-items.
// Query: status, operating_unit, responsible_email, overdue=true.
func (h *ActionPlanHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := actionplan.ListItemsFilter{
		OperatingUnit:    q.Get("operating_unit"),
		ResponsibleEmail: q.Get("responsible_email"),
	}
	if q.Has("status") {
		status := q.Get("status")
		filter.Status = &status
	}
	if raw := q.Get("overdue"); raw != "" {
		overdue, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("overdue", "must be a boolean"))
			return
		}
		filter.OverdueOnly = overdue
	}

	items, err := h.svc.ListItems(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toItemResponses(items)})
}

// CreateItems handles POST /api/action-items.
func (h *ActionPlanHandler) CreateItems(w http.ResponseWriter, r *http.Request) {
	var req createItemsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.CreateItems(r.Context(), actionplan.CreateItemsInput{
		IncidentRef:        req.IncidentRef,
		OperatingUnit:      req.OperatingUnit,
		ResponsibleEmail:   req.ResponsibleEmail,
		CoResponsibleEmail: req.CoResponsibleEmail,
		InitialDeadline:    req.InitialDeadline,
		BlockingActionRefs: req.BlockingActionRefs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"items": toItemResponses(items)})
}

// UpdateItem handles PATCH /api/action-items/{id}.
func (h *ActionPlanHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), actionplan.UpdateItemInput{
		ID:              r.PathValue("id"),
		Status:          req.Status,
		InitialDeadline: req.InitialDeadline,
		EvidenceURL:     req.EvidenceURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// ListCatalog handles GET /api/blocking-actions.
func (h *ActionPlanHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	actions, err := h.svc.ListCatalog(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]blockingActionResponse, len(actions))
	for i, a := range actions {
		out[i] = blockingActionResponse{ID: a.ID, Description: a.Description, Category: a.Category}
	}
	writeJSON(w, http.StatusOK, map[string]any{"blockingActions": out})
}

// RefreshCatalog handles POST /api/blocking-actions/refresh.
func (h *ActionPlanHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.InvalidateCatalog(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toItemResponses(items []domain.ActionItem) []actionItemResponse {
	out := make([]actionItemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}

func toItemResponse(it domain.ActionItem) actionItemResponse {
	return actionItemResponse{
		ID:                 it.ID,
		BlockingActionRef:  it.BlockingActionRef,
		IncidentRef:        it.IncidentRef,
		OperatingUnit:      it.OperatingUnit,
		ResponsibleEmail:   it.ResponsibleEmail,
		CoResponsibleEmail: it.CoResponsibleEmail,
		InitialDeadline:    isoDate(it.InitialDeadline),
		Status:             it.Status.String(),
		CompletionDate:     isoDate(it.CompletionDate),
		EvidenceURL:        it.EvidenceURL,
		CreatedAt:          timePtr(it.CreatedAt),
		UpdatedAt:          timePtr(it.UpdatedAt),
	}
}

func isoDate(d *civil.Date) *string {
	if d == nil {
		return nil
	}
	s := domain.FormatISODate(*d)
	return &s
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
