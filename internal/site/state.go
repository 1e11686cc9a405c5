package site

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pamudauposath/portfolio/internal/view"
)

// State is everything a section needs to redraw itself: the facet
// selection, the collection page and the carousel window start. It is
// encoded into fragment file names by Key.
type State struct {
	Selection view.Selection
	Page      int
	Start     int
}

const indexKey = "index"

// Key encodes st as a file-name-safe string, for example
// "category-cloud.web_type-team_page-2". Facets are written in name
// order so equal states always produce equal keys.
func (st State) Key() string {
	names := make([]string, 0, len(st.Selection))
	for name, values := range st.Selection {
		if len(values) > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names)+2)
	for _, name := range names {
		parts = append(parts, name+"-"+strings.Join(st.Selection[name], "."))
	}
	if st.Page > 0 {
		parts = append(parts, "page-"+strconv.Itoa(st.Page))
	}
	if st.Start > 0 {
		parts = append(parts, "at-"+strconv.Itoa(st.Start))
	}
	if len(parts) == 0 {
		return indexKey
	}
	return strings.Join(parts, "_")
}

// ParseState decodes a key produced by Key. Malformed parts are skipped
// rather than rejected; sections normalize whatever is left.
func ParseState(key string) State {
	key = strings.TrimSuffix(key, ".html")
	st := State{Selection: view.Selection{}}
	if key == "" || key == indexKey {
		return st
	}
	for _, part := range strings.Split(key, "_") {
		name, value, ok := strings.Cut(part, "-")
		if !ok || name == "" || value == "" {
			continue
		}
		switch name {
		case "page":
			if n, err := strconv.Atoi(value); err == nil {
				st.Page = n
			}
		case "at":
			if n, err := strconv.Atoi(value); err == nil {
				st.Start = n
			}
		default:
			st.Selection[name] = strings.Split(value, ".")
		}
	}
	return st
}
