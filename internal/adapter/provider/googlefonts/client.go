// Package googlefonts implements the font catalog collaborator against the
// Google Fonts Developer API (webfonts v1). The catalog is fetched in full
// on every request; filtering happens downstream in the matcher.
package googlefonts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fontsmith/fontsmith-backend/internal/config"
	"github.com/fontsmith/fontsmith-backend/internal/domain"
)

const retryBaseDelay = 300 * time.Millisecond

var errTransportTimeout = errors.New("catalog transport timeout")

// Client fetches the enumerable set of catalog entries.
type Client struct {
	apiKey     string
	baseURL    string
	maxRetries int
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a catalog client.
func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "googlefonts"),
	}
}

type webfontItem struct {
	Family   string   `json:"family"`
	Category string   `json:"category"`
	Variants []string `json:"variants"`
	Subsets  []string `json:"subsets"`
}

type webfontList struct {
	Items []webfontItem `json:"items"`
}

// Fetch returns the current catalog. Transient failures (transport errors,
// 5xx) are retried with backoff up to the configured attempt budget; the
// orchestrator above performs no retries of its own. Errors never contain
// the request URL, which carries the API key.
func (c *Client) Fetch(ctx context.Context) ([]domain.CatalogEntry, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	reqURL := c.baseURL + "?" + q.Encode()

	body, err := c.getWithRetry(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var list webfontList
	if err := json.Unmarshal(body, &list); err != nil {
		c.log.ErrorContext(ctx, "catalog decode failed", slog.String("error", err.Error()))
		return nil, domain.NewCatalogUnavailable(0, "undecodable catalog payload")
	}

	entries := make([]domain.CatalogEntry, 0, len(list.Items))
	for _, item := range list.Items {
		weights, hasItalic := parseVariants(item.Variants)
		entries = append(entries, domain.CatalogEntry{
			Family:    item.Family,
			Category:  item.Category,
			Subsets:   item.Subsets,
			Weights:   weights,
			HasItalic: hasItalic,
		})
	}
	return entries, nil
}

func (c *Client) getWithRetry(ctx context.Context, reqURL string) ([]byte, error) {
	var lastStatus int
	attempts := c.maxRetries + 1

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("catalog fetch: %w", domain.ErrUpstreamTimeout)
			}
		}

		body, status, err := c.get(ctx, reqURL)
		switch {
		case err == nil && status == http.StatusOK:
			return body, nil
		case errors.Is(err, errTransportTimeout):
			return nil, fmt.Errorf("catalog fetch: %w", domain.ErrUpstreamTimeout)
		case err != nil:
			c.log.WarnContext(ctx, "catalog request failed",
				slog.Int("attempt", attempt+1),
				slog.String("error", err.Error()),
			)
			lastStatus = 0
		case status >= 500:
			c.log.WarnContext(ctx, "catalog server error",
				slog.Int("attempt", attempt+1),
				slog.Int("status", status),
			)
			lastStatus = status
		default:
			// 4xx is not transient; bad key or quota, report immediately.
			return nil, domain.NewCatalogUnavailable(status, "catalog request rejected")
		}
	}

	return nil, domain.NewCatalogUnavailable(lastStatus, "catalog request failed")
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The url.Error wraps the full URL (including the key); never
		// propagate it verbatim.
		if isTimeout(ctx, err) {
			return nil, 0, errTransportTimeout
		}
		return nil, 0, errors.New("catalog transport error")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.New("catalog read error")
	}
	return body, resp.StatusCode, nil
}

// parseVariants maps catalog variant strings to numeric weight codes and
// italic availability. "regular" and "italic" denote weight 400; "700italic"
// denotes weight 700 with an italic style. Unrecognized variants are skipped.
func parseVariants(variants []string) (weights []int, hasItalic bool) {
	seen := make(map[int]struct{})
	for _, v := range variants {
		italic := false
		switch {
		case v == "regular":
			v = "400"
		case v == "italic":
			v = "400"
			italic = true
		case len(v) > 6 && v[len(v)-6:] == "italic":
			v = v[:len(v)-6]
			italic = true
		}

		w, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		if italic {
			hasItalic = true
		}
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			weights = append(weights, w)
		}
	}
	return weights, hasItalic
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
