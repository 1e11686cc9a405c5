package site

// listed shows a whole collection at once, each item opening a detail.
type listed[T any] struct {
	name     string
	title    string
	subtitle string
	items    []T
	id       func(T) string
	card     func(T) Card
	detail   func(T) DetailView
	links    Linker
}

func (s *listed[T]) Name() string        { return s.name }
func (s *listed[T]) Title() string       { return s.title }
func (s *listed[T]) Facets() []FacetInfo { return nil }
func (s *listed[T]) States() []State     { return []State{{}} }

func (s *listed[T]) Open(State) Session { return &listSession[T]{sec: s} }

func (s *listed[T]) Detail(key string) (DetailView, bool) {
	for _, item := range s.items {
		if s.id(item) == key {
			return s.detail(item), true
		}
	}
	return DetailView{}, false
}

func (s *listed[T]) DetailKeys() []string {
	out := make([]string, len(s.items))
	for i, item := range s.items {
		out[i] = s.id(item)
	}
	return out
}

type listSession[T any] struct {
	sec *listed[T]
}

func (l *listSession[T]) State() State          { return State{} }
func (l *listSession[T]) Next()                 {}
func (l *listSession[T]) Prev()                 {}
func (l *listSession[T]) JumpTo(int)            {}
func (l *listSession[T]) Toggle(string, string) {}
func (l *listSession[T]) Clear()                {}
func (l *listSession[T]) Status() string        { return "" }

func (l *listSession[T]) Cards() []Card {
	cards := make([]Card, len(l.sec.items))
	for i, item := range l.sec.items {
		cards[i] = l.sec.card(item)
	}
	return cards
}

func (l *listSession[T]) View() Fragment {
	return Fragment{Template: "list", Data: ListView{
		Section:  l.sec.name,
		Title:    l.sec.title,
		Subtitle: l.sec.subtitle,
		Cards:    l.Cards(),
		Self:     l.sec.links.Fragment(l.sec.name, State{}),
	}}
}
