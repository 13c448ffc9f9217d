package article

import (
	"net/url"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns arbitrary text into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, leading and
// trailing hyphens trimmed.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugFromURL derives a slug from the last path segment of a URL. Returns an
// empty string when the URL has no usable segment, in which case callers fall
// back to slugifying the title.
func SlugFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	return Slugify(last)
}
