package pagination

// Page/limit normalization shared by every paginated listing. Keeping the
// clamping in one place guarantees all repositories see the same window.

const (
	// DefaultLimit is the page size used when the caller supplies none.
	DefaultLimit = 50
	// MaxLimit bounds query cost; larger requests are clamped, not rejected.
	MaxLimit = 200
)

// Params is a normalized pagination window.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps raw page/limit values into a valid window: page floors at
// 1, limit falls back to DefaultLimit and is capped at MaxLimit.
func Normalize(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the row offset of the window's first row.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes the page count for a total row count under this window.
func (p Params) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return int(pages)
}
