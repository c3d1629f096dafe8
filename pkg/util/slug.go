package util

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^\x{4e00}-\x{9fa5}a-z0-9\s-]`)
	slugSpaces     = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// Slugify converts a post title into a URL path segment.
// CJK characters are kept as-is; the router handles the escaping.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
