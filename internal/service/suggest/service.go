// Package suggest implements the suggestion orchestration pipeline: request
// validation, the concurrent model and catalog calls, parsing of model
// output, and catalog matching.
package suggest

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fontsmith/fontsmith-backend/internal/domain"
)

// suggestionRequester invokes the generative model and returns its raw text
// output.
type suggestionRequester interface {
	Request(ctx context.Context, prompt, previewText string) (string, error)
}

// catalogFetcher returns the current catalog.
type catalogFetcher interface {
	Fetch(ctx context.Context) ([]domain.CatalogEntry, error)
}

// Service composes requester, parser, matcher, and catalog client into one
// request/response cycle. It performs no retries and keeps no state between
// invocations.
type Service struct {
	log       *slog.Logger
	requester suggestionRequester
	catalog   catalogFetcher
}

// NewService creates a suggestion service.
func NewService(logger *slog.Logger, requester suggestionRequester, catalog catalogFetcher) *Service {
	return &Service{
		log:       logger.With("service", "suggest"),
		requester: requester,
		catalog:   catalog,
	}
}

// Suggest handles one styling request end to end.
//
// Validation happens before any outbound call: an empty (or whitespace-only)
// prompt fails immediately, and empty preview text is replaced by the fixed
// pangram. The model request and the catalog fetch then run concurrently
// with a fail-fast join: a failure in either branch fails the whole call,
// never a partial result. Model failures and catalog failures surface as
// distinct error kinds.
func (s *Service) Suggest(ctx context.Context, req domain.StyleRequest) (*domain.SuggestionResult, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, domain.NewValidationError("prompt", "required")
	}
	if err := req.Filters.Validate(); err != nil {
		return nil, err
	}

	previewText := req.PreviewText
	if strings.TrimSpace(previewText) == "" {
		previewText = domain.DefaultPreviewText
	}

	var (
		rawOutput string
		catalog   []domain.CatalogEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawOutput, err = s.requester.Request(gctx, prompt, previewText)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.catalog.Fetch(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	suggestion, err := ParseSuggestion(rawOutput)
	if err != nil {
		var malformed *domain.MalformedSuggestionError
		if errors.As(err, &malformed) {
			// Raw model output is kept out of responses; log it for
			// diagnostics only.
			s.log.ErrorContext(ctx, "model output did not decode",
				slog.String("reason", malformed.Reason),
				slog.String("raw_output", malformed.RawText),
			)
		}
		return nil, err
	}

	matches := Match(suggestion, catalog, req.Filters)

	s.log.InfoContext(ctx, "suggestion completed",
		slog.Int("suggested", len(suggestion.Fonts)),
		slog.Int("matched", len(matches)),
	)

	return &domain.SuggestionResult{
		ResponseText: suggestion.ResponseText,
		Matches:      matches,
	}, nil
}
