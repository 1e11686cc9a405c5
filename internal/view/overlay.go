package view

// Target is where a click inside an open overlay landed.
type Target int

const (
	// Backdrop is the dimmed layer around the content.
	Backdrop Target = iota
	// Content is the detail panel itself.
	Content
)

// Overlay tracks the single item shown in a modal detail view. While an
// item is open the overlay holds one escape listener on its input surface.
//
// Opening a different item while one is open replaces it directly.
type Overlay[T any] struct {
	input    *InputSurface
	selected *T
	release  func()
}

// NewOverlay returns a closed overlay bound to input. A nil surface
// disables escape handling.
func NewOverlay[T any](input *InputSurface) *Overlay[T] {
	return &Overlay[T]{input: input}
}

// Open shows item.
func (o *Overlay[T]) Open(item T) {
	o.selected = &item
	if o.release == nil && o.input != nil {
		o.release = o.input.Listen(KeyEscape, o.Close)
	}
}

// Close hides the overlay and releases its escape listener. Closing a
// closed overlay does nothing.
func (o *Overlay[T]) Close() {
	o.selected = nil
	if o.release != nil {
		o.release()
		o.release = nil
	}
}

// Release is Close for teardown paths; use it with defer.
func (o *Overlay[T]) Release() { o.Close() }

// Dismiss closes the overlay when the click hit the backdrop. Clicks on
// the content panel are ignored.
func (o *Overlay[T]) Dismiss(t Target) {
	if t == Backdrop {
		o.Close()
	}
}

// Selected returns the open item, if any.
func (o *Overlay[T]) Selected() (T, bool) {
	if o.selected == nil {
		var zero T
		return zero, false
	}
	return *o.selected, true
}

// IsOpen reports whether an item is shown.
func (o *Overlay[T]) IsOpen() bool { return o.selected != nil }
