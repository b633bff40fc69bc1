package store

// Page size bounds.
const (
	DefaultPageLimit = 6
	MaxPageLimit     = 100
)

// PageParams contains page-number pagination request parameters.
type PageParams struct {
	Page  int // 1-based page number (defaults to 1)
	Limit int // Items per page (defaults to 6 with a maximum of 100)
}

// Page contains one page of results plus the total count.
type Page[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"` // Total matching rows across all pages.
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DefaultPageParams returns sensible defaults.
func DefaultPageParams() PageParams {
	return PageParams{
		Page:  1,
		Limit: DefaultPageLimit,
	}
}

// Validate checks and corrects pagination parameters.
func (p *PageParams) Validate() {
	if p.Page <= 0 {
		p.Page = 1
	}

	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}

	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

// Offset returns the number of rows to skip.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewPage builds a page from its items and the total count.
// Items is never nil so it serializes as [].
func NewPage[T any](items []T, count int, params PageParams) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items: items,
		Count: count,
		Page:  params.Page,
		Limit: params.Limit,
	}
}

// HasNext reports whether a later page exists.
func (p *Page[T]) HasNext() bool {
	return p.Page*p.Limit < p.Count
}

// HasPrevious reports whether an earlier page exists.
func (p *Page[T]) HasPrevious() bool {
	return p.Page > 1
}
