package site

import (
	"fmt"
	"math/bits"

	"github.com/pamudauposath/portfolio/internal/view"
)

// paged is a filterable, paginated section.
type paged[T any] struct {
	name     string
	title    string
	subtitle string
	empty    string
	items    []T
	pageSize int
	specs    []facetSpec[T]
	facets   view.Facets[T]
	id       func(T) string
	card     func(T) Card
	detail   func(T, string) (DetailView, bool)
	keys     func(T) []string
	links    Linker
}

func (s *paged[T]) init() *paged[T] {
	s.facets = nil
	for _, spec := range s.specs {
		s.facets = append(s.facets, spec.facet())
	}
	return s
}

func (s *paged[T]) Name() string  { return s.name }
func (s *paged[T]) Title() string { return s.title }

func (s *paged[T]) Facets() []FacetInfo {
	var out []FacetInfo
	for _, spec := range s.specs {
		out = append(out, spec.info())
	}
	return out
}

func (s *paged[T]) Open(st State) Session {
	sess := &pagedSession[T]{sec: s, coll: view.NewCollection(s.items, s.pageSize)}
	sess.setSelection(st.Selection)
	sess.coll.SetPage(st.Page)
	return sess
}

func (s *paged[T]) States() []State {
	var out []State
	for _, sel := range selections(s.facets) {
		sess := s.Open(State{Selection: sel})
		total := sess.(*pagedSession[T]).coll.View().Total
		for p := 1; p <= total; p++ {
			out = append(out, State{Selection: sel, Page: p})
		}
	}
	return out
}

func (s *paged[T]) Detail(key string) (DetailView, bool) {
	if s.detail == nil {
		return DetailView{}, false
	}
	id, rest := splitDetailKey(key)
	for _, item := range s.items {
		if s.id(item) == id {
			return s.detail(item, rest)
		}
	}
	return DetailView{}, false
}

func (s *paged[T]) DetailKeys() []string {
	if s.detail == nil {
		return nil
	}
	var out []string
	for _, item := range s.items {
		if s.keys != nil {
			out = append(out, s.keys(item)...)
		} else {
			out = append(out, s.id(item))
		}
	}
	return out
}

// selections enumerates every combination of facet values: single-select
// facets contribute "none" plus each option, multi-select facets every
// subset.
func selections[T any](facets view.Facets[T]) []view.Selection {
	out := []view.Selection{{}}
	for _, f := range facets {
		var choices [][]string
		if f.Multi {
			for mask := 0; mask < 1<<len(f.Options); mask++ {
				choice := make([]string, 0, bits.OnesCount(uint(mask)))
				for i, opt := range f.Options {
					if mask&(1<<i) != 0 {
						choice = append(choice, opt)
					}
				}
				choices = append(choices, choice)
			}
		} else {
			choices = append(choices, nil)
			for _, opt := range f.Options {
				choices = append(choices, []string{opt})
			}
		}

		var next []view.Selection
		for _, sel := range out {
			for _, choice := range choices {
				s := sel.Clone()
				if len(choice) > 0 {
					s[f.Name] = choice
				}
				next = append(next, s)
			}
		}
		out = next
	}
	return out
}

type pagedSession[T any] struct {
	sec  *paged[T]
	sel  view.Selection
	coll *view.Collection[T]
}

func (p *pagedSession[T]) setSelection(sel view.Selection) {
	p.sel = p.sec.facets.Normalize(sel)
	p.coll.SetFilter(p.sec.facets.Predicates(p.sel)...)
}

func (p *pagedSession[T]) State() State {
	return State{Selection: p.sel.Clone(), Page: p.coll.View().Current}
}

func (p *pagedSession[T]) Next()        { p.coll.NextPage() }
func (p *pagedSession[T]) Prev()        { p.coll.PrevPage() }
func (p *pagedSession[T]) JumpTo(i int) { p.coll.SetPage(i) }
func (p *pagedSession[T]) Clear()       { p.setSelection(nil) }

func (p *pagedSession[T]) Toggle(facet, value string) {
	f, ok := p.sec.facets.Lookup(facet)
	if !ok {
		return
	}
	p.setSelection(f.Toggle(p.sel, value))
}

func (p *pagedSession[T]) Cards() []Card {
	page := p.coll.View()
	cards := make([]Card, len(page.Items))
	for i, item := range page.Items {
		cards[i] = p.sec.card(item)
	}
	return cards
}

func (p *pagedSession[T]) Status() string {
	page := p.coll.View()
	return fmt.Sprintf("Page %d of %d", page.Current, page.Total)
}

// after returns the URL of the state reached by applying fn to a fresh
// session opened at the current state.
func (p *pagedSession[T]) after(fn func(Session)) string {
	next := p.sec.Open(p.State())
	fn(next)
	return p.sec.links.Fragment(p.sec.name, next.State())
}

func (p *pagedSession[T]) View() Fragment {
	page := p.coll.View()
	v := CollectionView{
		Section:  p.sec.name,
		Title:    p.sec.title,
		Subtitle: p.sec.subtitle,
		Cards:    p.Cards(),
		Matched:  page.Matched,
		Self:     p.sec.links.Fragment(p.sec.name, p.State()),
		Pager: Pager{
			Current: page.Current,
			Total:   page.Total,
			Label:   p.Status(),
			Prev:    Link{Label: "← Previous", URL: p.after(Session.Prev), Disabled: !page.HasPrev()},
			Next:    Link{Label: "Next →", URL: p.after(Session.Next), Disabled: !page.HasNext()},
		},
	}
	if page.Matched == 0 {
		v.Empty = p.sec.empty
	}

	for _, spec := range p.sec.specs {
		group := FacetGroup{Name: spec.name}
		if spec.all {
			active := p.sel[spec.name]
			group.Options = append(group.Options, Link{
				Label:  "All",
				Active: len(active) == 0,
				URL: p.after(func(s Session) {
					for _, val := range active {
						s.Toggle(spec.name, val)
					}
				}),
			})
		}
		for _, o := range spec.options {
			group.Options = append(group.Options, Link{
				Label:  o.label,
				Active: p.sel.Has(spec.name, o.value),
				URL:    p.after(func(s Session) { s.Toggle(spec.name, o.value) }),
			})
		}
		v.Facets = append(v.Facets, group)
	}

	if p.sel.Active() && !hasAllButton(p.sec.specs) {
		v.Clear = &Link{
			Label: fmt.Sprintf("Clear All (%d)", page.Matched),
			URL:   p.after(Session.Clear),
		}
	}
	return Fragment{Template: "collection", Data: v}
}

func hasAllButton[T any](specs []facetSpec[T]) bool {
	for _, s := range specs {
		if s.all {
			return true
		}
	}
	return false
}
