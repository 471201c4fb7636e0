package rest

import "net/http"

// NewRouter registers every endpoint on a ServeMux.
func NewRouter(health *HealthHandler, plan *ActionPlanHandler, notifications *NotificationHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/action-items", plan.ListItems)
	mux.HandleFunc("POST /api/action-items", plan.CreateItems)
	mux.HandleFunc("PATCH /api/action-items/{id}", plan.UpdateItem)

	mux.HandleFunc("GET /api/blocking-actions", plan.ListCatalog)
	mux.HandleFunc("POST /api/blocking-actions/refresh", plan.RefreshCatalog)

	mux.HandleFunc("GET /api/notifications/overdue/preview", notifications.PreviewOverdue)

	return mux
}
