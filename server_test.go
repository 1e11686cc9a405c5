package main

import (
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamudauposath/portfolio/internal/config"
	"github.com/pamudauposath/portfolio/internal/content"
	"github.com/pamudauposath/portfolio/internal/logging"
	"github.com/pamudauposath/portfolio/internal/site"
)

func newTestSite(t *testing.T, base string) *site.Site {
	t.Helper()
	d, err := content.Load()
	require.NoError(t, err)
	cfg := config.Default()
	cfg.BasePath = base
	clock := func() time.Time { return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC) }
	return site.New(d, cfg, site.WithClock(clock))
}

func newTestRouter(t *testing.T, base, public string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := parseTemplates()
	require.NoError(t, err)
	r, err := newRouter(newTestSite(t, base), tmpl, public, logging.Discard())
	require.NoError(t, err)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestServer_Index(t *testing.T) {
	r := newTestRouter(t, "/", "")

	for _, path := range []string{"/", "/index.html"} {
		w := get(r, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		body := w.Body.String()
		assert.Contains(t, body, "<title>")
		assert.Contains(t, body, `id="projects"`)
		assert.Contains(t, body, "Page 1 of 2")
		assert.Contains(t, body, `hx-get="/sections/projects/page-2.html"`)
		assert.Contains(t, body, `id="overlay"`)
		assert.Contains(t, body, "Projects Completed")
	}
}

var jsonLD = regexp.MustCompile(`(?s)<script type="application/ld\+json">(.*?)</script>`)

func TestServer_IndexHead(t *testing.T) {
	r := newTestRouter(t, "/", "")
	body := get(r, "/").Body.String()

	for _, tag := range []string{
		`<meta property="og:image" content="https://pamudauposath.github.io/portfolio/og-image.jpg">`,
		`<meta name="twitter:image" content="https://pamudauposath.github.io/portfolio/og-image.jpg">`,
		`<meta name="twitter:creator" content="@goonatilakeP">`,
		`<meta name="robots" content="index, follow">`,
		`<meta property="og:locale" content="en_US">`,
		`<meta name="theme-color" content="#ff7300">`,
		`<meta property="og:site_name" content="Pamuda U. de A. Goonatilake">`,
	} {
		assert.Contains(t, body, tag)
	}

	m := jsonLD.FindStringSubmatch(body)
	require.Len(t, m, 2)
	var person map[string]any
	require.NoError(t, json.Unmarshal([]byte(m[1]), &person))
	assert.Equal(t, "https://schema.org", person["@context"])
	assert.Equal(t, "Person", person["@type"])
	assert.Equal(t, "Full Stack Developer & Cloud Enthusiast", person["jobTitle"])
	assert.Equal(t, "https://pamudauposath.github.io/portfolio/og-image.jpg", person["image"])
	assert.Len(t, person["sameAs"], 3)
}

func TestServer_Fragments(t *testing.T) {
	r := newTestRouter(t, "/", "")

	w := get(r, "/sections/projects/page-2.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Page 2 of 2")
	assert.NotContains(t, w.Body.String(), "<html")

	w = get(r, "/sections/experience/type-leadership_page-1.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "chip-active")

	w = get(r, "/sections/achievements/at-2.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go to slide 3")
	assert.Contains(t, w.Body.String(), "disabled")

	// Three contributions fit one window, so no arrows.
	w = get(r, "/sections/opensource/index.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Go to slide")

	w = get(r, "/sections/nope/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Detail(t *testing.T) {
	r := newTestRouter(t, "/", "")

	w := get(r, "/detail/projects/2.html")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="overlay-backdrop"`)
	assert.Contains(t, body, "keyup[key=='Escape'] from:body")
	assert.Contains(t, body, `hx-get="/closed.html"`)
	assert.Contains(t, body, `hx-get="/detail/projects/2.m1.html"`)

	assert.Equal(t, http.StatusNotFound, get(r, "/detail/projects/999.html").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/detail/nope/1.html").Code)

	w = get(r, "/closed.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

var onerror = regexp.MustCompile(`onerror="([^"]*)"`)

// fallbacks decodes the image URLs swapped in by every onerror handler.
func fallbacks(t *testing.T, body string) []string {
	t.Helper()
	var out []string
	for _, m := range onerror.FindAllStringSubmatch(body, -1) {
		js := html.UnescapeString(m[1])
		lit, ok := strings.CutPrefix(js, "this.onerror=null;this.src=")
		require.True(t, ok, js)
		var src string
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(lit)), &src), lit)
		out = append(out, src)
	}
	return out
}

func TestServer_ImageFallback(t *testing.T) {
	s := newTestSite(t, "/")
	sec, ok := s.Section(site.Projects)
	require.True(t, ok)
	first := sec.Open(site.State{}).Cards()[0]
	r := newTestRouter(t, "/", "")

	w := get(r, "/sections/projects/page-1.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, fallbacks(t, w.Body.String()), content.PlaceholderImage(first.Title))

	d, ok := sec.Detail("2")
	require.True(t, ok)
	w = get(r, "/detail/projects/2.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{content.PlaceholderImage(d.Title)}, fallbacks(t, w.Body.String()))

	w = get(r, "/detail/education/6.html")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{content.PlaceholderImage("University of Jaffna")}, fallbacks(t, w.Body.String()))
}

func TestServer_Static(t *testing.T) {
	r := newTestRouter(t, "/", "")

	w := get(r, "/static/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".card")
}

func TestServer_PublicFiles(t *testing.T) {
	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "images", "logo.png"), []byte("png"), 0o644))

	r := newTestRouter(t, "/", public)

	w := get(r, "/images/logo.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())

	assert.Equal(t, http.StatusNotFound, get(r, "/images/missing.png").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/images").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/../server_test.go").Code)
}

func TestServer_BasePath(t *testing.T) {
	r := newTestRouter(t, "/portfolio/", "")

	w := get(r, "/portfolio/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hx-get="/portfolio/sections/projects/page-2.html"`)
	assert.Contains(t, w.Body.String(), `href="/portfolio/static/site.css"`)

	assert.Equal(t, http.StatusOK, get(r, "/portfolio/sections/projects/page-2.html").Code)
	assert.Equal(t, http.StatusOK, get(r, "/portfolio/closed.html").Code)
	assert.Equal(t, http.StatusOK, get(r, "/portfolio/static/site.css").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/sections/projects/page-2.html").Code)
}
