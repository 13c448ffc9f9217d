// Package sources holds the content extraction adapters and the registry
// that selects one for a given URL.
package sources

import (
	"github.com/kreel/artifactor/article"
)

// Adapter extracts normalized article data from raw HTML. CanHandle is a
// pure URL predicate with no I/O; Extract must be a pure function of its
// inputs so repeated extraction yields byte-identical articles.
type Adapter interface {
	CanHandle(url string) bool
	Extract(url, html string) (article.Article, error)
	Metadata() Metadata
}

// Metadata is the static descriptor for an adapter. MatchPatterns are
// documentation only; they are not consulted during matching.
type Metadata struct {
	Name          string   `json:"name"`
	Priority      int      `json:"priority"`
	Description   string   `json:"description"`
	MatchPatterns []string `json:"match_patterns"`
}

// DatePolicy controls what happens when a page carries no publish date.
type DatePolicy struct {
	Require  bool
	Fallback string // YYYY-MM-DD, empty when unset
}

// Options configure adapter construction from the resolved settings.
type Options struct {
	Date         DatePolicy
	SlugStrategy string // "url" or "title"
}

// DefaultOptions returns the options matching the built-in config defaults.
func DefaultOptions() Options {
	return Options{SlugStrategy: "url"}
}
