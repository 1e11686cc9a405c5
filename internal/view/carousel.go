package view

import (
	"fmt"
	"strings"
)

// Boundary decides what a carousel does at either end of its range.
type Boundary int

const (
	// Clamp stops at the first and last window start.
	Clamp Boundary = iota
	// Wrap cycles from the last window start to the first and back.
	Wrap
)

func (b Boundary) String() string {
	switch b {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// ParseBoundary accepts "clamp" or "wrap", case-insensitively.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp", "clamped":
		return Clamp, nil
	case "wrap", "wraparound":
		return Wrap, nil
	}
	return Clamp, fmt.Errorf("unknown boundary %q", s)
}

// Window is the visible part of a Carousel.
type Window[T any] struct {
	Items      []T
	Start      int
	Indicators int
	CanRetreat bool
	CanAdvance bool
	// Navigable is false when every item already fits in the window.
	Navigable bool
}

// Carousel shows size consecutive items starting at a movable index.
type Carousel[T any] struct {
	items    []T
	size     int
	start    int
	boundary Boundary
}

// NewCarousel returns a carousel at the first window. A size below one is
// treated as one.
func NewCarousel[T any](items []T, size int, boundary Boundary) *Carousel[T] {
	if size < 1 {
		size = 1
	}
	return &Carousel[T]{items: items, size: size, boundary: boundary}
}

// Boundary returns the configured boundary policy.
func (c *Carousel[T]) Boundary() Boundary { return c.boundary }

func (c *Carousel[T]) lastStart() int {
	return max(0, len(c.items)-c.size)
}

// Advance moves the window forward by one item.
func (c *Carousel[T]) Advance() {
	last := c.lastStart()
	switch {
	case c.start < last:
		c.start++
	case c.boundary == Wrap:
		c.start = 0
	}
}

// Retreat moves the window back by one item.
func (c *Carousel[T]) Retreat() {
	switch {
	case c.start > 0:
		c.start--
	case c.boundary == Wrap:
		c.start = c.lastStart()
	}
}

// JumpTo sets the window start directly. Clamp carousels clamp the index
// into range; Wrap carousels reduce it modulo the number of positions.
func (c *Carousel[T]) JumpTo(index int) {
	if c.boundary == Wrap {
		n := c.lastStart() + 1
		c.start = ((index % n) + n) % n
		return
	}
	c.start = clamp(index, 0, c.lastStart())
}

// View returns the visible window and the state of its controls.
func (c *Carousel[T]) View() Window[T] {
	last := c.lastStart()
	start := clamp(c.start, 0, last)
	end := min(start+c.size, len(c.items))

	w := Window[T]{
		Items:     c.items[start:end:end],
		Start:     start,
		Navigable: len(c.items) > c.size,
	}
	if len(c.items) > 0 {
		w.Indicators = last + 1
	}
	if c.boundary == Wrap {
		w.CanRetreat = w.Navigable
		w.CanAdvance = w.Navigable
	} else {
		w.CanRetreat = start > 0
		w.CanAdvance = start < last
	}
	return w
}
