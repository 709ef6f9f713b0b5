package suggest

import (
	"net/url"
	"strings"

	"github.com/fontsmith/fontsmith-backend/internal/domain"
)

const (
	specimenBaseURL   = "https://fonts.google.com/specimen/"
	stylesheetBaseURL = "https://fonts.googleapis.com/css2"
)

// Match intersects the suggested family names with the catalog and applies
// the facet filters. Output order follows the suggestion order, never
// catalog order. Names are compared case-insensitively after trimming; an
// unmatched name is silently dropped. Duplicate suggested names collapse to
// their first occurrence, mirroring the at-most-once property of filtering
// the catalog by membership.
func Match(suggestion *domain.ModelSuggestion, catalog []domain.CatalogEntry, filters domain.FacetFilters) []domain.FontMatch {
	index := make(map[string]*domain.CatalogEntry, len(catalog))
	for i := range catalog {
		key := domain.NormalizeFamily(catalog[i].Family)
		if _, ok := index[key]; !ok {
			index[key] = &catalog[i]
		}
	}

	matches := make([]domain.FontMatch, 0, len(suggestion.Fonts))
	seen := make(map[string]struct{}, len(suggestion.Fonts))
	for _, name := range suggestion.Fonts {
		key := domain.NormalizeFamily(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		entry, ok := index[key]
		if !ok {
			continue
		}
		if !filters.Allows(*entry) {
			continue
		}

		matches = append(matches, domain.FontMatch{
			Family:         entry.Family,
			Category:       entry.Category,
			SpecimenLink:   specimenLink(entry.Family),
			StylesheetLink: stylesheetLink(entry.Family),
		})
	}
	return matches
}

// specimenLink builds the catalog specimen page URL; spaces in the family
// name become "+".
func specimenLink(family string) string {
	return specimenBaseURL + strings.ReplaceAll(family, " ", "+")
}

// stylesheetLink builds the css2 stylesheet URL for the default static
// style. Facet filters never parameterize the stylesheet; the link always
// requests the default weight and style.
func stylesheetLink(family string) string {
	return stylesheetBaseURL + "?family=" + url.QueryEscape(family) + "&display=swap"
}
