package view

// Key names understood by InputSurface.
const (
	KeyEscape = "esc"
)

// InputSurface dispatches key presses to registered listeners. It stands
// in for the global keyboard target of a page or terminal.
type InputSurface struct {
	next      int
	listeners map[int]listener
}

type listener struct {
	key string
	fn  func()
}

// NewInputSurface returns a surface with no listeners.
func NewInputSurface() *InputSurface {
	return &InputSurface{listeners: map[int]listener{}}
}

// Listen registers fn for key and returns a release func. Calling the
// release func more than once is harmless.
func (s *InputSurface) Listen(key string, fn func()) (release func()) {
	id := s.next
	s.next++
	s.listeners[id] = listener{key: key, fn: fn}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(s.listeners, id)
	}
}

// Dispatch runs every listener registered for key, in registration order,
// and reports whether any ran. Listeners may release themselves.
func (s *InputSurface) Dispatch(key string) bool {
	var fns []func()
	for id := 0; id < s.next; id++ {
		if l, ok := s.listeners[id]; ok && l.key == key {
			fns = append(fns, l.fn)
		}
	}
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Listeners returns the number of live listeners.
func (s *InputSurface) Listeners() int { return len(s.listeners) }
