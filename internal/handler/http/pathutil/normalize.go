package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes. Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/regions/[^/]+$`), Template: "/regions/:id"},
	{Pattern: regexp.MustCompile(`^/authors/[^/]+$`), Template: "/authors/:id"},
}

// NormalizePath converts paths with ids to template form so metric labels stay bounded.
//
//	NormalizePath("/articles/123")        // "/articles/:id"
//	NormalizePath("/regions/7/")          // "/regions/:id"
//	NormalizePath("/authors?x=1")         // "/authors"
//	NormalizePath("/health")              // "/health"
//	NormalizePath("/unknown/path/123")    // "/unknown/path/123"
//
// Non-numeric ids are folded too: they are still requests against the item route.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
