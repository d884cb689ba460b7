package extract

import (
	"strings"
	"testing"
)

func TestBrandKeywordsAreLowercase(t *testing.T) {
	for _, rule := range brandRules {
		for _, kw := range rule.Keywords {
			if kw != strings.ToLower(kw) {
				t.Fatalf("keyword %q of %s is not lowercase", kw, rule.Vendor)
			}
		}
	}
}

func TestBrandCategoriesExist(t *testing.T) {
	for _, rule := range brandRules {
		if CategoryByID(rule.Category).ID != rule.Category {
			t.Fatalf("brand %s references unknown category %q", rule.Vendor, rule.Category)
		}
	}
}

func TestSpecificRulesPrecedeGenericOnes(t *testing.T) {
	// Matching parity depends on table order, so the overlapping pairs must
	// keep the specific entry first.
	pairs := [][2]string{
		{"uber eats", "uber"},
		{"amazon business", "amazon"},
	}
	for _, pair := range pairs {
		specific, generic := -1, -1
		for i, rule := range brandRules {
			for _, kw := range rule.Keywords {
				if kw == pair[0] && specific == -1 {
					specific = i
				}
				if kw == pair[1] && generic == -1 {
					generic = i
				}
			}
		}
		if specific == -1 || generic == -1 {
			t.Fatalf("missing rule pair %v", pair)
		}
		if specific >= generic {
			t.Fatalf("%q must precede %q in the brand table", pair[0], pair[1])
		}
	}
}

func TestCategoryTableShape(t *testing.T) {
	if len(Categories) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(Categories))
	}
	if Categories[len(Categories)-1].ID != "other" {
		t.Fatal("the last category must be the other fallback")
	}
	if CategoryByID("no-such-id").ID != "other" {
		t.Fatal("unknown ids must fall back to other")
	}
}

func TestKeywordFallbackOrder(t *testing.T) {
	// "hotel" (accommodation) appears before "tienda" (shopping) in the
	// table, so a text with both resolves to accommodation.
	got := matchCategoryKeywords("tienda del hotel miramar")
	if got != "accommodation" {
		t.Fatalf("expected accommodation, got %q", got)
	}
	if matchCategoryKeywords("nothing relevant here") != "other" {
		t.Fatal("expected other for unmatched text")
	}
}
