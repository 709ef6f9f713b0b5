package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fontsmith/fontsmith-backend/internal/domain"
	"github.com/fontsmith/fontsmith-backend/internal/history"
	"github.com/fontsmith/fontsmith-backend/pkg/ctxutil"
)

// suggestService defines the minimal interface needed by SuggestHandler.
type suggestService interface {
	Suggest(ctx context.Context, req domain.StyleRequest) (*domain.SuggestionResult, error)
}

// SuggestHandler serves the font suggestion endpoint.
type SuggestHandler struct {
	svc      suggestService
	sessions *history.Manager
	log      *slog.Logger
}

// NewSuggestHandler creates a SuggestHandler.
func NewSuggestHandler(svc suggestService, sessions *history.Manager, logger *slog.Logger) *SuggestHandler {
	return &SuggestHandler{
		svc:      svc,
		sessions: sessions,
		log:      logger.With("handler", "suggest"),
	}
}

type facetFiltersRequest struct {
	Category       *string `json:"category,omitempty"`
	Subset         *string `json:"subset,omitempty"`
	Weight         *int    `json:"weight,omitempty"`
	ContainsItalic *bool   `json:"containsItalic,omitempty"`
}

type suggestRequest struct {
	Prompt  string               `json:"prompt"`
	Message string               `json:"message"`
	Filters *facetFiltersRequest `json:"filters,omitempty"`
}

type fontMatchResponse struct {
	Family     string `json:"family"`
	Category   string `json:"category"`
	Link       string `json:"link"`
	GoogleLink string `json:"googleLink"`
}

type suggestResponse struct {
	Response string              `json:"response"`
	Fonts    []fontMatchResponse `json:"fonts"`
}

// Suggest handles POST /api/fonts.
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	styleReq := domain.StyleRequest{
		Prompt:      req.Prompt,
		PreviewText: req.Message,
		Filters:     toFacetFilters(req.Filters),
	}

	result, err := h.svc.Suggest(r.Context(), styleReq)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if sid, ok := ctxutil.SessionIDFromCtx(r.Context()); ok {
		h.sessions.Session(sid).Record(styleReq, *result)
	}

	writeJSON(w, http.StatusOK, toSuggestResponse(result))
}

func (h *SuggestHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUpstreamTimeout):
		h.logError(r, err)
		writeError(w, http.StatusGatewayTimeout, "upstream timeout")
	case errors.Is(err, domain.ErrModelUnavailable):
		h.logError(r, err)
		writeError(w, http.StatusBadGateway, "font assistant is unavailable")
	case errors.Is(err, domain.ErrMalformedSuggestion):
		h.logError(r, err)
		writeError(w, http.StatusBadGateway, "font assistant returned an unusable answer")
	case errors.Is(err, domain.ErrCatalogUnavailable):
		h.logError(r, err)
		writeError(w, http.StatusBadGateway, "font catalog is unavailable")
	default:
		h.logError(r, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *SuggestHandler) logError(r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "suggestion failed",
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
	)
}

func toFacetFilters(req *facetFiltersRequest) domain.FacetFilters {
	if req == nil {
		return domain.FacetFilters{}
	}
	var filters domain.FacetFilters
	if req.Category != nil {
		c := domain.Category(*req.Category)
		filters.Category = &c
	}
	if req.Subset != nil {
		s := domain.Subset(*req.Subset)
		filters.Subset = &s
	}
	filters.Weight = req.Weight
	filters.ContainsItalic = req.ContainsItalic
	return filters
}

func toSuggestResponse(result *domain.SuggestionResult) suggestResponse {
	fonts := make([]fontMatchResponse, 0, len(result.Matches))
	for _, m := range result.Matches {
		fonts = append(fonts, fontMatchResponse{
			Family:     m.Family,
			Category:   m.Category,
			Link:       m.StylesheetLink,
			GoogleLink: m.SpecimenLink,
		})
	}
	return suggestResponse{
		Response: result.ResponseText,
		Fonts:    fonts,
	}
}
