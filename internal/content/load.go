package content

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Load reads the datasets compiled into the binary.
func Load() (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS reads the datasets from the root of fsys. Every collection is a
// YAML list; ids must be unique within a collection.
func LoadFS(fsys fs.FS) (*Dataset, error) {
	d := &Dataset{}
	files := []struct {
		name string
		out  any
	}{
		{"site.yaml", &d.Site},
		{"projects.yaml", &d.Projects},
		{"experience.yaml", &d.Experiences},
		{"education.yaml", &d.Educations},
		{"opensource.yaml", &d.Contributions},
		{"achievements.yaml", &d.Achievements},
		{"skills.yaml", &d.Skills},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.out); err != nil {
			return nil, err
		}
	}

	checks := []struct {
		name string
		ids  []string
	}{
		{"projects", ids(d.Projects, func(p Project) string { return p.ID })},
		{"experience", ids(d.Experiences, func(e Experience) string { return e.ID })},
		{"education", ids(d.Educations, func(e Education) string { return e.ID })},
		{"opensource", ids(d.Contributions, func(c Contribution) string { return c.ID })},
		{"achievements", ids(d.Achievements, func(a Achievement) string { return a.ID })},
		{"skills", ids(d.Skills, func(s SkillCategory) string { return s.Name })},
	}
	for _, c := range checks {
		if err := checkUnique(c.ids); err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return d, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func checkUnique(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("empty id")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
