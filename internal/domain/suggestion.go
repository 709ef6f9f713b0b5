package domain

// ModelSuggestion is the structured payload decoded from the generative
// model's output: free-text commentary plus candidate family names in the
// model's original order. Names are not normalized here.
type ModelSuggestion struct {
	ResponseText string
	Fonts        []string
}

// CatalogEntry is one font family as reported by the external catalog for
// the current request. Entries are never cached across requests.
type CatalogEntry struct {
	Family    string
	Category  string
	Subsets   []string
	Weights   []int
	HasItalic bool
}

// HasSubset reports whether the entry covers the given character subset.
func (e CatalogEntry) HasSubset(subset string) bool {
	for _, s := range e.Subsets {
		if s == subset {
			return true
		}
	}
	return false
}

// HasWeight reports whether the entry is available at the given weight code.
func (e CatalogEntry) HasWeight(weight int) bool {
	for _, w := range e.Weights {
		if w == weight {
			return true
		}
	}
	return false
}

// FontMatch is one suggested family cross-referenced against the catalog,
// with derived links for display. Never persisted.
type FontMatch struct {
	Family         string
	Category       string
	SpecimenLink   string
	StylesheetLink string
}

// SuggestionResult is the terminal output of one suggestion cycle. Match
// ordering follows the model's suggestion order, not catalog order.
type SuggestionResult struct {
	ResponseText string
	Matches      []FontMatch
}
