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

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/admin/articles/` + uuidSegment + `/approve$`), Template: "/admin/articles/:id/approve"},
	{Pattern: regexp.MustCompile(`^/admin/articles/` + uuidSegment + `/reject$`), Template: "/admin/articles/:id/reject"},
	{Pattern: regexp.MustCompile(`^/admin/articles/` + uuidSegment + `/unpublish$`), Template: "/admin/articles/:id/unpublish"},
	{Pattern: regexp.MustCompile(`^/admin/articles/` + uuidSegment + `$`), Template: "/admin/articles/:id"},
	{Pattern: regexp.MustCompile(`^/my/articles/` + uuidSegment + `$`), Template: "/my/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `$`), Template: "/articles/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion: /articles/<uuid> becomes /articles/:id. Static
// paths pass through unchanged.
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
