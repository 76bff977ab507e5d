package website

import (
	"net/url"
	"path"
	"strings"
)

// JoinURL joins a base URL with path segments. Unlike a directory URL it
// never adds a trailing slash, so JoinURL("https://x.dev/", "resources")
// is "https://x.dev/resources".
func JoinURL(base string, segments ...string) string {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
	}
	if len(segments) == 0 {
		return u.String()
	}
	u.Path = path.Join("/", u.Path, path.Join(segments...))
	return u.String()
}

var botMarkers = []string{"bot", "crawl", "spider", "slurp", "facebookexternalhit", "embedly", "preview"}

// isBot reports whether ua looks like a crawler or link-preview fetcher.
// Those clients get fully rendered pages instead of streamed ones.
func isBot(ua string) bool {
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
