package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SortOption enumerates the orderings the product listing accepts.
type SortOption string

const (
	SortBestsellers SortOption = "bestsellers"
	SortPriceLow    SortOption = "price-low"
	SortPriceHigh   SortOption = "price-high"
	SortNewest      SortOption = "newest"
	SortRating      SortOption = "rating"
	SortNameAsc     SortOption = "name-asc"
	SortNameDesc    SortOption = "name-desc"
)

// ParseSort maps a raw sort key to a SortOption. Unknown or empty keys fall
// back to the bestsellers ordering rather than erroring.
func ParseSort(raw string) SortOption {
	switch SortOption(strings.TrimSpace(raw)) {
	case SortPriceLow, SortPriceHigh, SortNewest, SortRating, SortNameAsc, SortNameDesc, SortBestsellers:
		return SortOption(strings.TrimSpace(raw))
	default:
		return SortBestsellers
	}
}

// OrderClause returns the SQL ordering for the option. Every ordering carries
// an id tiebreaker so pagination stays stable across requests.
func (s SortOption) OrderClause() string {
	switch s {
	case SortPriceLow:
		return "price ASC, id ASC"
	case SortPriceHigh:
		return "price DESC, id ASC"
	case SortNewest:
		return "created_at DESC, id ASC"
	case SortRating:
		return "rating DESC, id ASC"
	case SortNameAsc:
		return "name ASC, id ASC"
	case SortNameDesc:
		return "name DESC, id ASC"
	default:
		return "review_count DESC, rating DESC, id ASC"
	}
}

// ListFilters collects the optional narrowing criteria for the listing. All
// populated filters combine conjunctively.
type ListFilters struct {
	CategorySlug string
	Search       string
	MaxPrice     *decimal.Decimal
	MinRating    *float64
	InStockOnly  bool
	Sort         SortOption
}

// ParseListFilters reads listing criteria from query parameters. Malformed
// numeric values are dropped instead of failing the request, so a bad
// max_price still returns the rest of the filtered catalog.
func ParseListFilters(values url.Values) ListFilters {
	filters := ListFilters{
		CategorySlug: strings.TrimSpace(values.Get("category")),
		Search:       strings.TrimSpace(values.Get("search")),
		Sort:         ParseSort(values.Get("sort")),
	}

	if raw := strings.TrimSpace(values.Get("max_price")); raw != "" {
		if value, err := decimal.NewFromString(raw); err == nil && !value.IsNegative() {
			filters.MaxPrice = &value
		}
	}

	if raw := strings.TrimSpace(values.Get("min_rating")); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value >= 0 {
			filters.MinRating = &value
		}
	}

	// Only the literal true enables the stock filter; anything else reads as
	// "show everything".
	if raw := strings.TrimSpace(values.Get("in_stock")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filters.InStockOnly = v
		}
	}

	return filters
}

// Applied echoes the effective filters back to the client, mirroring what the
// query actually constrained on.
func (f ListFilters) Applied() AppliedFilters {
	applied := AppliedFilters{
		Category: f.CategorySlug,
		Search:   f.Search,
		InStock:  f.InStockOnly,
		Sort:     string(f.Sort),
	}
	if f.MaxPrice != nil {
		v := f.MaxPrice.String()
		applied.MaxPrice = &v
	}
	if f.MinRating != nil {
		v := *f.MinRating
		applied.MinRating = &v
	}
	return applied
}
