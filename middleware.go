package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ipHasher turns client addresses into stable, non-reversible visitor
// ids. The salt lives for one process only.
type ipHasher struct {
	salt string
}

func newIPHasher() (ipHasher, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return ipHasher{}, fmt.Errorf("generate salt: %w", err)
	}
	return ipHasher{salt: hex.EncodeToString(bytes)}, nil
}

// hash is consistent per IP within a process, truncated to 16 hex chars.
func (h ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

var quietPrefixes = []string{"static/", "images/", "favicon"}

// quiet reports whether path is an asset request not worth logging.
func quiet(path, base string) bool {
	rel, ok := strings.CutPrefix(path, base)
	if !ok {
		return false
	}
	for _, p := range quietPrefixes {
		if strings.HasPrefix(rel, p) {
			return true
		}
	}
	return false
}

// requestLogger logs one line per page or fragment request. Clients
// sending DNT: 1 are logged without a visitor id.
func requestLogger(logger *slog.Logger, h ipHasher, base string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if quiet(path, base) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if c.GetHeader("HX-Request") == "true" {
			attrs = append(attrs, "htmx", true)
		}
		if c.GetHeader("DNT") != "1" {
			attrs = append(attrs, "visitor", h.hash(c.ClientIP()))
		}
		if len(c.Errors) > 0 {
			logger.Error("request failed", append(attrs, "error", c.Errors.String())...)
			return
		}
		logger.Info("request", attrs...)
	}
}
