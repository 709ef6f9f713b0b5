package rest

import "net/http"

// Handlers groups the REST handlers for routing.
type Handlers struct {
	Suggest *SuggestHandler
	History *HistoryHandler
	Health  *HealthHandler
}

// NewRouter builds the route table. Middleware is applied by the caller.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/fonts", h.Suggest.Suggest)

	mux.HandleFunc("GET /api/history", h.History.List)
	mux.HandleFunc("POST /api/history/{id}/restore", h.History.Restore)
	mux.HandleFunc("DELETE /api/history", h.History.Clear)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /version", h.Health.Version)

	return mux
}
