package main

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/pamudauposath/portfolio/internal/site"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names shared by the preview server and the builder.
const (
	pageTemplate     = "index"
	fragmentTemplate = "fragment"
	detailTemplate   = "detail"
	closedTemplate   = "closed"
)

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("portfolio").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// staticFiles is the embedded static directory rooted at its contents.
func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func renderPage(tmpl *template.Template, w io.Writer, p site.Page) error {
	return tmpl.ExecuteTemplate(w, pageTemplate, p)
}

func renderFragment(tmpl *template.Template, w io.Writer, f site.Fragment) error {
	return tmpl.ExecuteTemplate(w, fragmentTemplate, f)
}

func renderDetail(tmpl *template.Template, w io.Writer, d site.DetailView) error {
	return tmpl.ExecuteTemplate(w, detailTemplate, d)
}

func renderClosed(tmpl *template.Template, w io.Writer) error {
	return tmpl.ExecuteTemplate(w, closedTemplate, nil)
}
