package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPHasher(t *testing.T) {
	h, err := newIPHasher()
	require.NoError(t, err)

	a := h.hash("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.hash("203.0.113.7"))
	assert.NotEqual(t, a, h.hash("203.0.113.8"))
	assert.NotContains(t, a, "203")

	other, err := newIPHasher()
	require.NoError(t, err)
	assert.NotEqual(t, a, other.hash("203.0.113.7"))
}

func TestQuiet(t *testing.T) {
	assert.True(t, quiet("/static/site.css", "/"))
	assert.True(t, quiet("/images/a.png", "/"))
	assert.True(t, quiet("/portfolio/favicon.ico", "/portfolio/"))
	assert.False(t, quiet("/", "/"))
	assert.False(t, quiet("/sections/projects/index.html", "/"))
	assert.False(t, quiet("/static/site.css", "/portfolio/"))
}

func newLoggedRouter(t *testing.T, buf *bytes.Buffer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h, err := newIPHasher()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	r := gin.New()
	r.Use(requestLogger(logger, h, "/"))
	r.GET("/page", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/static/x.css", func(c *gin.Context) { c.String(http.StatusOK, "css") })
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(t, &buf)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set("HX-Request", "true")
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, "msg=request")
	assert.Contains(t, line, "path=/page")
	assert.Contains(t, line, "status=200")
	assert.Contains(t, line, "htmx=true")
	assert.Contains(t, line, "visitor=")
	assert.NotContains(t, line, "192.0.2.1")
}

func TestRequestLogger_DoNotTrack(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(t, &buf)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "path=/page")
	assert.NotContains(t, buf.String(), "visitor=")
}

func TestRequestLogger_SkipsStatic(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(t, &buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static/x.css", nil))
	assert.Empty(t, buf.String())
}

func TestRequestLogger_Errors(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(t, &buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
}
