package sources

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kreel/artifactor/article"
)

// GenericAdapter is the universal fallback. It relies on the common meta-tag
// conventions and degrades to heuristics when a page has none.
type GenericAdapter struct {
	opts Options
}

// NewGenericAdapter returns the fallback adapter.
func NewGenericAdapter(opts Options) *GenericAdapter {
	return &GenericAdapter{opts: opts}
}

var genericContentSelectors = []string{
	"article",
	"main",
	".post-content",
	".entry-content",
	"#content",
	"body",
}

// CanHandle always returns true; the generic adapter is the guaranteed
// fallback at the bottom of the priority order.
func (g *GenericAdapter) CanHandle(string) bool {
	return true
}

// Extract applies the generic meta-tag heuristics.
func (g *GenericAdapter) Extract(rawURL, html string) (article.Article, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return article.Article{}, err
	}

	title := metaProperty(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		return article.Article{}, fmt.Errorf("extraction failed: no title found at %s", rawURL)
	}

	date, err := resolveDate(g.findRawDate(doc), g.opts.Date)
	if err != nil {
		return article.Article{}, err
	}

	canonical := canonicalURL(doc, rawURL)

	container := selectContainer(doc, genericContentSelectors)
	if container == nil {
		return article.Article{}, fmt.Errorf("extraction failed: no content found at %s", rawURL)
	}
	body, err := cleanedHTML(container)
	if err != nil {
		return article.Article{}, err
	}

	return article.Article{
		Title:        title,
		Date:         date,
		Slug:         slugFor(g.opts.SlugStrategy, canonical, title),
		CanonicalURL: canonical,
		Source:       sourceFromURL(canonical),
		Authors:      collectAuthors(doc),
		Tags:         []string{},
		HTML:         body,
	}, nil
}

// Metadata describes the adapter for registry listings and diagnostics.
func (g *GenericAdapter) Metadata() Metadata {
	return Metadata{
		Name:          "generic",
		Priority:      10,
		Description:   "Universal fallback for any article page",
		MatchPatterns: []string{"*"},
	}
}

// findRawDate tries the known date conventions in a fixed order, ending with
// the first ISO-looking date anywhere in the document text.
func (g *GenericAdapter) findRawDate(doc *goquery.Document) string {
	candidates := []string{
		metaProperty(doc, "article:published_time"),
		metaName(doc, "date"),
		metaName(doc, "publish-date"),
		metaName(doc, "dc.date"),
		strings.TrimSpace(doc.Find(`meta[itemprop="datePublished"]`).First().AttrOr("content", "")),
		strings.TrimSpace(doc.Find("time[datetime]").First().AttrOr("datetime", "")),
	}
	for _, raw := range candidates {
		if _, ok := normalizeDate(raw); ok {
			return raw
		}
	}

	if date, ok := firstDateInText(doc); ok {
		return date
	}
	return ""
}

// sourceFromURL labels the source by its domain, without a www prefix.
func sourceFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
