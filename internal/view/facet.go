package view

import "slices"

// Selection maps a facet name to its active values.
type Selection map[string][]string

// Facet is a declarative filter over one attribute of T. Single-select
// facets hold at most one value; multi-select facets toggle membership.
type Facet[T any] struct {
	Name    string
	Options []string
	Multi   bool
	Value   func(T) string
}

// Toggle returns a copy of sel with value switched on or off. Selecting
// the active value of a single-select facet clears it. Values that are
// not options of the facet leave the selection unchanged.
func (f Facet[T]) Toggle(sel Selection, value string) Selection {
	out := sel.Clone()
	if !slices.Contains(f.Options, value) {
		return out
	}

	active := out[f.Name]
	switch {
	case slices.Contains(active, value) && f.Multi:
		active = slices.DeleteFunc(slices.Clone(active), func(v string) bool { return v == value })
	case slices.Contains(active, value):
		active = nil
	case f.Multi:
		active = append(slices.Clone(active), value)
	default:
		active = []string{value}
	}

	if len(active) == 0 {
		delete(out, f.Name)
	} else {
		out[f.Name] = f.order(active)
	}
	return out
}

// Predicate matches items whose attribute is one of the active values.
// It returns nil when nothing is selected.
func (f Facet[T]) Predicate(sel Selection) Predicate[T] {
	active := sel[f.Name]
	if len(active) == 0 {
		return nil
	}
	return func(item T) bool {
		return slices.Contains(active, f.Value(item))
	}
}

// order keeps values in option order and drops unknown ones.
func (f Facet[T]) order(values []string) []string {
	out := make([]string, 0, len(values))
	for _, opt := range f.Options {
		if slices.Contains(values, opt) {
			out = append(out, opt)
		}
	}
	if !f.Multi && len(out) > 1 {
		out = out[:1]
	}
	return out
}

// Facets is the ordered facet set of one section.
type Facets[T any] []Facet[T]

// Lookup finds a facet by name.
func (fs Facets[T]) Lookup(name string) (Facet[T], bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}
	return Facet[T]{}, false
}

// Predicates returns one predicate per facet with an active selection.
func (fs Facets[T]) Predicates(sel Selection) []Predicate[T] {
	var preds []Predicate[T]
	for _, f := range fs {
		if p := f.Predicate(sel); p != nil {
			preds = append(preds, p)
		}
	}
	return preds
}

// Normalize drops unknown facets and values from sel.
func (fs Facets[T]) Normalize(sel Selection) Selection {
	out := Selection{}
	for _, f := range fs {
		if values := f.order(sel[f.Name]); len(values) > 0 {
			out[f.Name] = values
		}
	}
	return out
}

// Clone returns a deep copy of sel.
func (sel Selection) Clone() Selection {
	out := make(Selection, len(sel))
	for k, v := range sel {
		out[k] = slices.Clone(v)
	}
	return out
}

// Active reports whether any facet has a value selected.
func (sel Selection) Active() bool {
	for _, v := range sel {
		if len(v) > 0 {
			return true
		}
	}
	return false
}

// Has reports whether value is selected for facet name.
func (sel Selection) Has(name, value string) bool {
	return slices.Contains(sel[name], value)
}
