package content

import (
	"net/url"
	"regexp"
	"strings"
)

var repeatedSlashes = regexp.MustCompile(`/+`)

// AssetPath resolves a site-relative asset against the deployment base
// path. Absolute URLs are returned unchanged.
func AssetPath(base, path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	if base == "" {
		base = "/"
	}
	clean := strings.TrimPrefix(path, "/")
	return repeatedSlashes.ReplaceAllString(base+"/"+clean, "/")
}

// AbsoluteURL resolves path against the public site URL, for metadata
// that crawlers read outside the page. Absolute URLs are returned
// unchanged; without a site URL the path is returned as is.
func AbsoluteURL(siteURL, path string) string {
	if path == "" || strings.Contains(path, "://") || siteURL == "" {
		return path
	}
	return strings.TrimSuffix(siteURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// PlaceholderImage is shown when an item's image cannot be loaded.
func PlaceholderImage(title string) string {
	return "https://via.placeholder.com/400x300/ff7300/ffffff?text=" +
		strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
}

// Initials returns up to two uppercase initials of name.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		if len(out) == 2 {
			break
		}
		out = append(out, []rune(part)[0])
	}
	return strings.ToUpper(string(out))
}
