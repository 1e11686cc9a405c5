package site

import (
	"fmt"

	"github.com/pamudauposath/portfolio/internal/view"
)

// windowed is a carousel section.
type windowed[T any] struct {
	name     string
	title    string
	subtitle string
	items    []T
	size     int
	boundary view.Boundary
	id       func(T) string
	card     func(T) Card
	detail   func(T) DetailView
	links    Linker
}

func (s *windowed[T]) Name() string        { return s.name }
func (s *windowed[T]) Title() string       { return s.title }
func (s *windowed[T]) Facets() []FacetInfo { return nil }

func (s *windowed[T]) Open(st State) Session {
	c := view.NewCarousel(s.items, s.size, s.boundary)
	c.JumpTo(st.Start)
	return &windowSession[T]{sec: s, c: c}
}

func (s *windowed[T]) States() []State {
	n := s.Open(State{}).(*windowSession[T]).c.View().Indicators
	out := []State{{}}
	for i := 1; i < n; i++ {
		out = append(out, State{Start: i})
	}
	return out
}

func (s *windowed[T]) Detail(key string) (DetailView, bool) {
	for _, item := range s.items {
		if s.id(item) == key {
			return s.detail(item), true
		}
	}
	return DetailView{}, false
}

func (s *windowed[T]) DetailKeys() []string {
	out := make([]string, len(s.items))
	for i, item := range s.items {
		out[i] = s.id(item)
	}
	return out
}

type windowSession[T any] struct {
	sec *windowed[T]
	c   *view.Carousel[T]
}

func (w *windowSession[T]) State() State          { return State{Start: w.c.View().Start} }
func (w *windowSession[T]) Next()                 { w.c.Advance() }
func (w *windowSession[T]) Prev()                 { w.c.Retreat() }
func (w *windowSession[T]) JumpTo(i int)          { w.c.JumpTo(i) }
func (w *windowSession[T]) Toggle(string, string) {}
func (w *windowSession[T]) Clear()                {}

func (w *windowSession[T]) Cards() []Card {
	win := w.c.View()
	cards := make([]Card, len(win.Items))
	for i, item := range win.Items {
		cards[i] = w.sec.card(item)
	}
	return cards
}

func (w *windowSession[T]) Status() string {
	win := w.c.View()
	if len(win.Items) == 0 {
		return "Nothing to show"
	}
	return fmt.Sprintf("%d-%d of %d", win.Start+1, win.Start+len(win.Items), len(w.sec.items))
}

func (w *windowSession[T]) after(fn func(Session)) string {
	next := w.sec.Open(w.State())
	fn(next)
	return w.sec.links.Fragment(w.sec.name, next.State())
}

func (w *windowSession[T]) View() Fragment {
	win := w.c.View()
	v := CarouselView{
		Section:   w.sec.name,
		Title:     w.sec.title,
		Subtitle:  w.sec.subtitle,
		Cards:     w.Cards(),
		Navigable: win.Navigable,
		Self:      w.sec.links.Fragment(w.sec.name, w.State()),
		Prev:      Link{Label: "Previous", URL: w.after(Session.Prev), Disabled: !win.CanRetreat},
		Next:      Link{Label: "Next", URL: w.after(Session.Next), Disabled: !win.CanAdvance},
	}
	for i := 0; i < win.Indicators; i++ {
		v.Dots = append(v.Dots, Link{
			Label:  fmt.Sprintf("Go to slide %d", i+1),
			URL:    w.after(func(s Session) { s.JumpTo(i) }),
			Active: i == win.Start,
		})
	}
	return Fragment{Template: "carousel", Data: v}
}
