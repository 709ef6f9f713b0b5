package domain

// DefaultPreviewText is substituted when a request carries no preview text.
const DefaultPreviewText = "The quick brown fox jumps over the lazy dog"

// Category represents a font classification in the catalog.
type Category string

const (
	CategorySansSerif   Category = "sans-serif"
	CategorySerif       Category = "serif"
	CategoryDisplay     Category = "display"
	CategoryHandwriting Category = "handwriting"
	CategoryMonospace   Category = "monospace"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategorySansSerif, CategorySerif, CategoryDisplay, CategoryHandwriting, CategoryMonospace:
		return true
	}
	return false
}

// Subset represents a character subset a font may cover.
type Subset string

const (
	SubsetLatin    Subset = "latin"
	SubsetLatinExt Subset = "latin-ext"
	SubsetCyrillic Subset = "cyrillic"
	SubsetArabic   Subset = "arabic"
)

func (s Subset) String() string { return string(s) }

func (s Subset) IsValid() bool {
	switch s {
	case SubsetLatin, SubsetLatinExt, SubsetCyrillic, SubsetArabic:
		return true
	}
	return false
}

// FacetFilters narrows catalog matches. Every field is independently
// optional; a nil field imposes no constraint on that facet.
type FacetFilters struct {
	Category       *Category
	Subset         *Subset
	Weight         *int
	ContainsItalic *bool
}

// Validate checks that every set facet carries a usable value.
func (f FacetFilters) Validate() error {
	if f.Category != nil && !f.Category.IsValid() {
		return NewValidationError("filters.category", "unknown category")
	}
	if f.Subset != nil && !f.Subset.IsValid() {
		return NewValidationError("filters.subset", "unknown subset")
	}
	if f.Weight != nil && *f.Weight <= 0 {
		return NewValidationError("filters.weight", "must be a positive weight code")
	}
	return nil
}

// Allows reports whether the catalog entry satisfies every set facet.
// ContainsItalic only constrains when set to true; false and unset are
// equivalent.
func (f FacetFilters) Allows(e CatalogEntry) bool {
	if f.Category != nil && e.Category != f.Category.String() {
		return false
	}
	if f.Subset != nil && !e.HasSubset(f.Subset.String()) {
		return false
	}
	if f.Weight != nil && !e.HasWeight(*f.Weight) {
		return false
	}
	if f.ContainsItalic != nil && *f.ContainsItalic && !e.HasItalic {
		return false
	}
	return true
}

// StyleRequest is a single styling request. Immutable once submitted.
type StyleRequest struct {
	Prompt      string
	PreviewText string
	Filters     FacetFilters
}
