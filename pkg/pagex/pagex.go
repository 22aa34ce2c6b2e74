// Package pagex provides the shared offset/limit pagination arithmetic used
// by every list operation.
package pagex

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params are caller-supplied pagination inputs. Zero or negative values
// fall back to the defaults via Normalize.
type Params struct {
	Page     int
	PageSize int
}

// Normalize returns a copy of p with out-of-range values replaced by the
// defaults. Page and PageSize are both 1-based minimums.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset returns the number of rows to skip for this page. Callers must
// Normalize first.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of results plus the totals the caller needs to render
// pagination controls.
type Page[T any] struct {
	Items       []T
	TotalItems  int
	TotalPages  int
	CurrentPage int
}

// New assembles a Page from the fetched items and the total row count.
// TotalPages is ceil(total / p.PageSize).
func New[T any](items []T, total int, p Params) Page[T] {
	pages := total / p.PageSize
	if total%p.PageSize != 0 {
		pages++
	}
	return Page[T]{
		Items:       items,
		TotalItems:  total,
		TotalPages:  pages,
		CurrentPage: p.Page,
	}
}
