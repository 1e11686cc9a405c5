package view

// Predicate reports whether an item should stay visible.
type Predicate[T any] func(T) bool

// Page is one rendered slice of a Collection.
type Page[T any] struct {
	Items   []T
	Current int
	Total   int
	Matched int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Current < p.Total }

// Collection paginates an ordered item list behind a set of predicates.
// An empty filtered list still reports one page so that the current page
// always lies in [1, Total].
type Collection[T any] struct {
	items    []T
	pageSize int
	filters  []Predicate[T]
	page     int
}

// NewCollection returns a collection positioned on page one. A page size
// below one is treated as one.
func NewCollection[T any](items []T, pageSize int) *Collection[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Collection[T]{items: items, pageSize: pageSize, page: 1}
}

// SetFilter replaces the active predicates and returns to page one.
// Nil predicates are ignored; no predicates match everything.
func (c *Collection[T]) SetFilter(preds ...Predicate[T]) {
	c.filters = c.filters[:0]
	for _, p := range preds {
		if p != nil {
			c.filters = append(c.filters, p)
		}
	}
	c.page = 1
}

// SetPage moves to page n, clamped to the valid range.
func (c *Collection[T]) SetPage(n int) {
	c.page = clamp(n, 1, pageCount(len(c.filtered()), c.pageSize))
}

// NextPage advances one page if possible.
func (c *Collection[T]) NextPage() { c.SetPage(c.page + 1) }

// PrevPage goes back one page if possible.
func (c *Collection[T]) PrevPage() { c.SetPage(c.page - 1) }

// PageSize returns the configured page size.
func (c *Collection[T]) PageSize() int { return c.pageSize }

// View filters the source list from scratch and returns the current page.
func (c *Collection[T]) View() Page[T] {
	matched := c.filtered()
	total := pageCount(len(matched), c.pageSize)
	current := clamp(c.page, 1, total)

	start := (current - 1) * c.pageSize
	end := min(start+c.pageSize, len(matched))
	items := []T{}
	if start < end {
		items = matched[start:end:end]
	}

	return Page[T]{
		Items:   items,
		Current: current,
		Total:   total,
		Matched: len(matched),
	}
}

func (c *Collection[T]) filtered() []T {
	if len(c.filters) == 0 {
		return c.items
	}
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) matches(item T) bool {
	for _, p := range c.filters {
		if !p(item) {
			return false
		}
	}
	return true
}

func pageCount(n, size int) int {
	if n == 0 {
		return 1
	}
	return (n-1)/size + 1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
