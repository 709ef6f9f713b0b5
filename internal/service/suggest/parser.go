package suggest

import (
	"encoding/json"
	"strings"

	"github.com/fontsmith/fontsmith-backend/internal/domain"
)

// ParseSuggestion extracts a structured suggestion from raw model output.
// The model is instructed to return a bare JSON object but may wrap it in a
// markdown code fence; a leading/trailing fence is stripped
// case-insensitively before strict decoding. Any decode failure is a
// MalformedSuggestionError carrying the raw text for diagnostics — there is
// no fallback to an empty suggestion.
func ParseSuggestion(raw string) (*domain.ModelSuggestion, error) {
	text := stripFence(strings.TrimSpace(raw))

	var payload struct {
		Response *string         `json:"response"`
		Fonts    json.RawMessage `json:"fonts"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &domain.MalformedSuggestionError{
			Reason:  "output is not a JSON object",
			RawText: raw,
		}
	}

	if payload.Response == nil {
		return nil, &domain.MalformedSuggestionError{
			Reason:  "missing response field",
			RawText: raw,
		}
	}
	if len(payload.Fonts) == 0 || string(payload.Fonts) == "null" {
		return nil, &domain.MalformedSuggestionError{
			Reason:  "missing fonts field",
			RawText: raw,
		}
	}

	var fonts []string
	if err := json.Unmarshal(payload.Fonts, &fonts); err != nil {
		return nil, &domain.MalformedSuggestionError{
			Reason:  "fonts is not a sequence of strings",
			RawText: raw,
		}
	}

	return &domain.ModelSuggestion{
		ResponseText: *payload.Response,
		Fonts:        fonts,
	}, nil
}

// stripFence removes one leading ``` or ```json marker (case-insensitive)
// and one trailing ``` marker. Text without a leading fence is returned
// unchanged.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = s[3:]
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
