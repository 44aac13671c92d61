package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 24
	// MaxLimit caps how many rows any listing query can request.
	MaxLimit = 100
)

// Params holds page/limit inputs from controllers. The catalog listing uses
// offset paging because its sort order is caller-chosen, which rules out a
// created_at cursor.
type Params struct {
	Page  int
	Limit int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the page number to 1-based values.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset converts the normalized page/limit pair into a row offset.
func (p Params) Offset() int {
	return (NormalizePage(p.Page) - 1) * NormalizeLimit(p.Limit)
}

// PageSize returns the normalized limit.
func (p Params) PageSize() int {
	return NormalizeLimit(p.Limit)
}
