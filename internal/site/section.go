package site

import (
	"github.com/pamudauposath/portfolio/internal/content"
	"github.com/pamudauposath/portfolio/internal/view"
)

// Section is one block of the page backed by a dataset.
type Section interface {
	Name() string
	Title() string
	// Open builds live controllers positioned at st.
	Open(st State) Session
	// States lists every state reachable through the section's controls.
	States() []State
	// Detail renders the overlay for key, which DetailKeys enumerates.
	Detail(key string) (DetailView, bool)
	DetailKeys() []string
	// Facets describes the filter buttons, in display order.
	Facets() []FacetInfo
}

// Session is a section with live controllers. Methods mirror the
// section's on-screen controls.
type Session interface {
	State() State
	View() Fragment
	Cards() []Card
	Status() string
	Next()
	Prev()
	JumpTo(i int)
	Toggle(facet, value string)
	Clear()
}

// FacetInfo names a facet and its option values.
type FacetInfo struct {
	Name    string
	Options []string
	Labels  []string
}

// Linker turns site paths into URLs under the deployment base path.
type Linker struct {
	Base string
}

// URL resolves path against the base path.
func (l Linker) URL(path string) string {
	return content.AssetPath(l.Base, path)
}

// Fragment is the URL of a section body in state st.
func (l Linker) Fragment(section string, st State) string {
	return l.URL(FragmentPath(section, st))
}

// Detail is the URL of an item overlay.
func (l Linker) Detail(section, key string) string {
	return l.URL(DetailPath(section, key))
}

// Closed is the URL of the empty overlay.
func (l Linker) Closed() string {
	return l.URL(ClosedPath)
}

// ClosedPath is the empty overlay fragment.
const ClosedPath = "closed.html"

// FragmentPath is the site-relative file of a section body.
func FragmentPath(section string, st State) string {
	return "sections/" + section + "/" + st.Key() + ".html"
}

// DetailPath is the site-relative file of an item overlay.
func DetailPath(section, key string) string {
	return "detail/" + section + "/" + key + ".html"
}

type option struct {
	value string
	label string
}

type facetSpec[T any] struct {
	name    string
	options []option
	multi   bool
	all     bool
	value   func(T) string
}

func (f facetSpec[T]) facet() view.Facet[T] {
	values := make([]string, len(f.options))
	for i, o := range f.options {
		values[i] = o.value
	}
	return view.Facet[T]{Name: f.name, Options: values, Multi: f.multi, Value: f.value}
}

func (f facetSpec[T]) info() FacetInfo {
	info := FacetInfo{Name: f.name}
	for _, o := range f.options {
		info.Options = append(info.Options, o.value)
		info.Labels = append(info.Labels, o.label)
	}
	return info
}
