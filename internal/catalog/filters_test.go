package catalog

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSortFallsBackToBestsellers(t *testing.T) {
	cases := map[string]SortOption{
		"":           SortBestsellers,
		"price-low":  SortPriceLow,
		"price-high": SortPriceHigh,
		"newest":     SortNewest,
		"rating":     SortRating,
		"name-asc":   SortNameAsc,
		"name-desc":  SortNameDesc,
		"velocity":   SortBestsellers,
		" newest ":   SortNewest,
	}
	for raw, want := range cases {
		if got := ParseSort(raw); got != want {
			t.Errorf("ParseSort(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseListFiltersDropsMalformedNumbers(t *testing.T) {
	values := url.Values{
		"max_price":  {"abc"},
		"min_rating": {"high"},
		"category":   {" mugs "},
		"search":     {"ceramic"},
	}

	filters := ParseListFilters(values)

	if filters.MaxPrice != nil {
		t.Errorf("expected malformed max_price to be dropped, got %s", filters.MaxPrice)
	}
	if filters.MinRating != nil {
		t.Errorf("expected malformed min_rating to be dropped, got %v", *filters.MinRating)
	}
	if filters.CategorySlug != "mugs" {
		t.Errorf("category not trimmed: %q", filters.CategorySlug)
	}
	if filters.Search != "ceramic" {
		t.Errorf("search not captured: %q", filters.Search)
	}
}

func TestParseListFiltersParsesNumbers(t *testing.T) {
	values := url.Values{
		"max_price":  {"12.50"},
		"min_rating": {"4.5"},
	}

	filters := ParseListFilters(values)

	if filters.MaxPrice == nil || !filters.MaxPrice.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("max_price not parsed: %v", filters.MaxPrice)
	}
	if filters.MinRating == nil || *filters.MinRating != 4.5 {
		t.Errorf("min_rating not parsed: %v", filters.MinRating)
	}
}

func TestParseListFiltersRejectsNegativeValues(t *testing.T) {
	filters := ParseListFilters(url.Values{"max_price": {"-5"}, "min_rating": {"-1"}})
	if filters.MaxPrice != nil {
		t.Errorf("expected negative max_price to be dropped, got %s", filters.MaxPrice)
	}
	if filters.MinRating != nil {
		t.Errorf("expected negative min_rating to be dropped, got %v", *filters.MinRating)
	}
}

func TestAppliedFiltersEcho(t *testing.T) {
	filters := ParseListFilters(url.Values{
		"category":  {"mugs"},
		"max_price": {"30"},
		"in_stock":  {"true"},
		"sort":      {"price-low"},
	})

	applied := filters.Applied()
	if applied.Category != "mugs" || applied.Sort != "price-low" || !applied.InStock {
		t.Fatalf("applied echo wrong: %+v", applied)
	}
	if applied.MaxPrice == nil || *applied.MaxPrice != "30" {
		t.Fatalf("max_price echo wrong: %v", applied.MaxPrice)
	}
	if applied.MinRating != nil {
		t.Fatalf("absent min_rating should not echo, got %v", *applied.MinRating)
	}
}

func TestParseListFiltersInStock(t *testing.T) {
	if !ParseListFilters(url.Values{"in_stock": {"true"}}).InStockOnly {
		t.Error("in_stock=true not applied")
	}
	if ParseListFilters(url.Values{"in_stock": {"maybe"}}).InStockOnly {
		t.Error("malformed in_stock should be ignored")
	}
	if ParseListFilters(url.Values{}).InStockOnly {
		t.Error("in_stock should default to off")
	}
}
