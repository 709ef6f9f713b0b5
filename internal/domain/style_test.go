package domain

import (
	"errors"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestFacetFilters_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters FacetFilters
		wantErr bool
	}{
		{"empty imposes nothing", FacetFilters{}, false},
		{"valid category", FacetFilters{Category: ptr(CategorySerif)}, false},
		{"unknown category", FacetFilters{Category: ptr(Category("gothic"))}, true},
		{"valid subset", FacetFilters{Subset: ptr(SubsetCyrillic)}, false},
		{"unknown subset", FacetFilters{Subset: ptr(Subset("klingon"))}, true},
		{"positive weight", FacetFilters{Weight: ptr(700)}, false},
		{"zero weight", FacetFilters{Weight: ptr(0)}, true},
		{"negative weight", FacetFilters{Weight: ptr(-400)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.filters.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFacetFilters_Allows(t *testing.T) {
	t.Parallel()

	entry := CatalogEntry{
		Family:    "Roboto",
		Category:  "sans-serif",
		Subsets:   []string{"latin", "cyrillic"},
		Weights:   []int{400, 700},
		HasItalic: false,
	}

	tests := []struct {
		name    string
		filters FacetFilters
		want    bool
	}{
		{"no constraints", FacetFilters{}, true},
		{"category match", FacetFilters{Category: ptr(CategorySansSerif)}, true},
		{"category mismatch", FacetFilters{Category: ptr(CategorySerif)}, false},
		{"subset member", FacetFilters{Subset: ptr(SubsetCyrillic)}, true},
		{"subset absent", FacetFilters{Subset: ptr(SubsetArabic)}, false},
		{"weight member", FacetFilters{Weight: ptr(700)}, true},
		{"weight absent", FacetFilters{Weight: ptr(300)}, false},
		{"italic required but missing", FacetFilters{ContainsItalic: ptr(true)}, false},
		{"italic false imposes nothing", FacetFilters{ContainsItalic: ptr(false)}, true},
		{
			"conjunction fails on one facet",
			FacetFilters{Category: ptr(CategorySansSerif), Weight: ptr(300)},
			false,
		},
		{
			"conjunction passes on all facets",
			FacetFilters{Category: ptr(CategorySansSerif), Subset: ptr(SubsetLatin), Weight: ptr(400)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filters.Allows(entry); got != tt.want {
				t.Fatalf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFacetFilters_Allows_Italic(t *testing.T) {
	t.Parallel()

	italicEntry := CatalogEntry{Family: "Lobster", Category: "display", HasItalic: true}
	if !(FacetFilters{ContainsItalic: ptr(true)}).Allows(italicEntry) {
		t.Fatal("entry with italic should pass containsItalic=true")
	}
}
