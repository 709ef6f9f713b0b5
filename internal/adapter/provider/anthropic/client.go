// Package anthropic implements the generative model collaborator: it turns
// a style prompt and preview text into one Messages API call and returns the
// raw model text for downstream parsing.
package anthropic

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fontsmith/fontsmith-backend/internal/config"
	"github.com/fontsmith/fontsmith-backend/internal/domain"
)

//go:embed systemprompt.txt
var defaultSystemPrompt string

// LoadSystemPrompt returns the fixed behavioral instruction for the model.
// An empty path selects the embedded default. Read once at startup and
// treated as immutable configuration afterwards.
func LoadSystemPrompt(path string) (string, error) {
	if path == "" {
		return defaultSystemPrompt, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read system prompt %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return "", fmt.Errorf("system prompt %s is empty", path)
	}
	return string(b), nil
}

// Client requests font suggestions from the Anthropic Messages API.
type Client struct {
	api          sdk.Client
	model        string
	maxTokens    int64
	systemPrompt string
	log          *slog.Logger
}

// NewClient creates a suggestion requester. systemPrompt comes from
// LoadSystemPrompt and is injected by reference, never re-read per request.
func NewClient(cfg config.ModelConfig, systemPrompt string, logger *slog.Logger) *Client {
	api := sdk.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	return &Client{
		api:          api,
		model:        cfg.Name,
		maxTokens:    int64(cfg.MaxTokens),
		systemPrompt: systemPrompt,
		log:          logger.With("adapter", "anthropic"),
	}
}

// Request sends one user-role message embedding the style prompt and the
// preview text and returns the concatenated text of the model's reply.
// Failures map to domain.ErrModelUnavailable (carrying the upstream status
// when one was received) or domain.ErrUpstreamTimeout; the API key never
// appears in returned errors.
func (c *Client) Request(ctx context.Context, prompt, previewText string) (string, error) {
	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []sdk.TextBlockParam{
			{Text: c.systemPrompt},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(UserMessage(prompt, previewText))),
		},
	})
	if err != nil {
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("model request: %w", domain.ErrUpstreamTimeout)
		}
		var apierr *sdk.Error
		if errors.As(err, &apierr) {
			c.log.ErrorContext(ctx, "model request failed",
				slog.Int("status", apierr.StatusCode),
			)
			return "", domain.NewModelUnavailable(apierr.StatusCode, "message request rejected")
		}
		c.log.ErrorContext(ctx, "model request failed", slog.String("error", err.Error()))
		return "", domain.NewModelUnavailable(0, "message request failed")
	}

	text := joinTextBlocks(msg)
	if text == "" {
		return "", domain.NewModelUnavailable(0, "empty model response")
	}
	return text, nil
}

// UserMessage composes the single user turn from the style prompt and the
// preview text.
func UserMessage(prompt, previewText string) string {
	return fmt.Sprintf("Style request: %s\nPreview text: %s", prompt, previewText)
}

// joinTextBlocks concatenates all textual segments of the reply, preserving
// their order. Non-text blocks are skipped.
func joinTextBlocks(msg *sdk.Message) string {
	var parts []string
	for _, block := range msg.Content {
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
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
