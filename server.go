package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pamudauposath/portfolio/internal/site"
)

// newRouter serves the same documents the builder writes, rendered on
// demand. Every request opens fresh controllers.
func newRouter(s *site.Site, tmpl *template.Template, public string, logger *slog.Logger) (*gin.Engine, error) {
	hasher, err := newIPHasher()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), requestLogger(logger, hasher, s.Config.BasePath))

	base := strings.TrimSuffix(s.Config.BasePath, "/")
	if base == "" {
		base = "/"
	}
	g := r.Group(base)

	// Home page route
	index := func(c *gin.Context) {
		c.HTML(http.StatusOK, pageTemplate, s.Page())
	}
	g.GET("/", index)
	g.GET("/index.html", index)

	// Section bodies swapped in by hx-get
	g.GET("/sections/:section/:key", func(c *gin.Context) {
		sec, ok := s.Section(c.Param("section"))
		if !ok {
			c.String(http.StatusNotFound, "unknown section")
			return
		}
		st := site.ParseState(c.Param("key"))
		c.HTML(http.StatusOK, fragmentTemplate, sec.Open(st).View())
	})

	// Detail overlay content
	g.GET("/detail/:section/:key", func(c *gin.Context) {
		sec, ok := s.Section(c.Param("section"))
		if !ok {
			c.String(http.StatusNotFound, "unknown section")
			return
		}
		d, ok := sec.Detail(strings.TrimSuffix(c.Param("key"), ".html"))
		if !ok {
			c.String(http.StatusNotFound, "unknown item")
			return
		}
		c.HTML(http.StatusOK, detailTemplate, d)
	})

	g.GET("/"+site.ClosedPath, func(c *gin.Context) {
		c.HTML(http.StatusOK, closedTemplate, nil)
	})

	g.StaticFS("/static", http.FS(staticFiles()))

	r.NoRoute(publicFiles(public, s.Config.BasePath))
	return r, nil
}

// publicFiles serves images and documents from the public directory,
// which the builder copies next to the rendered pages.
func publicFiles(dir, base string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rel, ok := strings.CutPrefix(c.Request.URL.Path, base)
		if !ok || dir == "" {
			c.String(http.StatusNotFound, "not found")
			return
		}
		rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
		file := filepath.Join(dir, filepath.FromSlash(rel))
		info, err := os.Stat(file)
		if err != nil || info.IsDir() {
			c.String(http.StatusNotFound, "not found")
			return
		}
		c.File(file)
	}
}
