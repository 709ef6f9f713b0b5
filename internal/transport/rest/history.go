package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fontsmith/fontsmith-backend/internal/history"
	"github.com/fontsmith/fontsmith-backend/pkg/ctxutil"
)

// HistoryHandler serves per-session search history endpoints.
type HistoryHandler struct {
	sessions *history.Manager
	log      *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(sessions *history.Manager, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		sessions: sessions,
		log:      logger.With("handler", "history"),
	}
}

type historySummary struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyListResponse struct {
	Current *string          `json:"current"`
	Entries []historySummary `json:"entries"`
}

type historyEntryResponse struct {
	ID        string          `json:"id"`
	Prompt    string          `json:"prompt"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
	Result    suggestResponse `json:"result"`
}

// List handles GET /api/history. Entries come back newest-first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	entries := store.Entries()
	summaries := make([]historySummary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, historySummary{
			ID:        e.ID.String(),
			Prompt:    e.Request.Prompt,
			CreatedAt: e.CreatedAt,
		})
	}

	resp := historyListResponse{Entries: summaries}
	if current, ok := store.Current(); ok {
		id := current.ID.String()
		resp.Current = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

// Restore handles POST /api/history/{id}/restore.
func (h *HistoryHandler) Restore(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid history id")
		return
	}

	entry, found := store.Restore(id)
	if !found {
		writeError(w, http.StatusNotFound, "history entry not found")
		return
	}

	writeJSON(w, http.StatusOK, historyEntryResponse{
		ID:        entry.ID.String(),
		Prompt:    entry.Request.Prompt,
		Message:   entry.Request.PreviewText,
		CreatedAt: entry.CreatedAt,
		Result:    toSuggestResponse(&entry.Result),
	})
}

// Clear handles DELETE /api/history.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) store(w http.ResponseWriter, r *http.Request) (*history.Store, bool) {
	sid, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		// The session middleware always sets one; missing means the route
		// was wired without it.
		h.log.ErrorContext(r.Context(), "no session id in context")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return h.sessions.Session(sid), true
}
