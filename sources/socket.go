package sources

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kreel/artifactor/article"
)

// SocketAdapter extracts posts from the Socket.dev blog. It understands both
// the legacy article markup and the newer Chakra-style prose container.
type SocketAdapter struct {
	opts Options
}

// NewSocketAdapter returns the Socket.dev blog adapter.
func NewSocketAdapter(opts Options) *SocketAdapter {
	return &SocketAdapter{opts: opts}
}

// Content container candidates, most specific first. The newer pages wrap
// the body in a prose div that sits alongside related-article cards, so the
// bare article element is only a fallback.
var socketContentSelectors = []string{".prose", "article", "main"}

// CanHandle matches socket.dev blog URLs, with or without the www prefix.
func (s *SocketAdapter) CanHandle(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host != "socket.dev" && host != "www.socket.dev" {
		return false
	}
	return strings.HasPrefix(u.Path, "/blog/")
}

// Extract pulls the article fields out of a Socket.dev blog page.
func (s *SocketAdapter) Extract(rawURL, html string) (article.Article, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return article.Article{}, err
	}

	title := metaProperty(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return article.Article{}, fmt.Errorf("extraction failed: no title found at %s", rawURL)
	}

	date, err := resolveDate(metaProperty(doc, "article:published_time"), s.opts.Date)
	if err != nil {
		return article.Article{}, err
	}

	canonical := canonicalURL(doc, rawURL)

	container := selectContainer(doc, socketContentSelectors)
	if container == nil {
		return article.Article{}, fmt.Errorf("extraction failed: no content container found at %s", rawURL)
	}
	body, err := cleanedHTML(container)
	if err != nil {
		return article.Article{}, err
	}

	tags := []string{}
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, sel *goquery.Selection) {
		if tag := strings.TrimSpace(sel.AttrOr("content", "")); tag != "" {
			tags = append(tags, tag)
		}
	})

	return article.Article{
		Title:        title,
		Date:         date,
		Slug:         slugFor(s.opts.SlugStrategy, canonical, title),
		CanonicalURL: canonical,
		Source:       "Socket",
		Authors:      collectAuthors(doc),
		Tags:         tags,
		HTML:         body,
	}, nil
}

// Metadata describes the adapter for registry listings and diagnostics.
func (s *SocketAdapter) Metadata() Metadata {
	return Metadata{
		Name:          "socket",
		Priority:      80,
		Description:   "Socket.dev blog posts",
		MatchPatterns: []string{"socket.dev/blog/*", "www.socket.dev/blog/*"},
	}
}

// resolveDate normalizes a raw date value, applying the date policy when the
// page carries none.
func resolveDate(raw string, policy DatePolicy) (string, error) {
	if date, ok := normalizeDate(raw); ok {
		return date, nil
	}
	if policy.Require {
		return "", fmt.Errorf("extraction failed: no publish date found and dates are required")
	}
	if policy.Fallback != "" {
		return policy.Fallback, nil
	}
	return "", fmt.Errorf("extraction failed: no date available (no publish date found and no fallback_date configured)")
}
