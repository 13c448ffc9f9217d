package sources

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kreel/artifactor/article"
)

// Elements stripped from every extracted content container: scripts, page
// furniture, and engagement blocks.
const furnitureSelectors = "script, style, noscript, nav, footer, aside, " +
	".related, .related-posts, .related-articles, " +
	".newsletter, .newsletter-signup, .subscribe, .social-share, .comments"

// Date layouts accepted when normalizing a publish date to YYYY-MM-DD.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var isoDatePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

func parseDoc(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

func metaProperty(doc *goquery.Document, property string) string {
	sel := fmt.Sprintf(`meta[property=%q]`, property)
	return strings.TrimSpace(doc.Find(sel).First().AttrOr("content", ""))
}

func metaName(doc *goquery.Document, name string) string {
	sel := fmt.Sprintf(`meta[name=%q]`, name)
	return strings.TrimSpace(doc.Find(sel).First().AttrOr("content", ""))
}

// canonicalURL reads the canonical link tag, falling back to the request URL.
func canonicalURL(doc *goquery.Document, fallback string) string {
	href := strings.TrimSpace(doc.Find(`link[rel="canonical"]`).First().AttrOr("href", ""))
	if href == "" {
		return fallback
	}
	return href
}

// normalizeDate converts a raw date string to YYYY-MM-DD. Returns false when
// no known layout matches.
func normalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	// Timestamps with unusual suffixes still often lead with the date.
	if m := isoDatePattern.FindString(raw); m != "" {
		if t, err := time.Parse("2006-01-02", m); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	return "", false
}

// firstDateInText scans the document text for the first ISO-looking date.
func firstDateInText(doc *goquery.Document) (string, bool) {
	m := isoDatePattern.FindString(doc.Text())
	if m == "" {
		return "", false
	}
	if _, err := time.Parse("2006-01-02", m); err != nil {
		return "", false
	}
	return m, true
}

// collectAuthors gathers author names from the structured meta conventions,
// preserving document order and dropping duplicates.
func collectAuthors(doc *goquery.Document) []string {
	authors := []string{}
	seen := map[string]bool{}

	add := func(text string) {
		for _, name := range splitAuthors(text) {
			key := strings.ToLower(name)
			if name != "" && !seen[key] {
				seen[key] = true
				authors = append(authors, name)
			}
		}
	}

	doc.Find(`meta[name="author"]`).Each(func(_ int, s *goquery.Selection) {
		add(s.AttrOr("content", ""))
	})
	doc.Find(`meta[property="article:author"]`).Each(func(_ int, s *goquery.Selection) {
		content := s.AttrOr("content", "")
		// article:author may carry a profile URL instead of a name.
		if !strings.Contains(content, "://") {
			add(content)
		}
	})
	doc.Find(`[rel="author"]`).Each(func(_ int, s *goquery.Selection) {
		add(s.Text())
	})

	return authors
}

// splitAuthors splits a single author string on the common delimiters
// ", " and " and ".
func splitAuthors(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}

	var parts []string
	switch {
	case strings.Contains(text, ", "):
		parts = strings.Split(text, ", ")
	case strings.Contains(text, " and "):
		parts = strings.Split(text, " and ")
	default:
		parts = []string{text}
	}

	authors := []string{}
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			authors = append(authors, part)
		}
	}
	return authors
}

// selectContainer tries the candidate selectors in order and returns the
// first selection with non-empty text content.
func selectContainer(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			return sel
		}
	}
	return nil
}

// cleanedHTML strips furniture from a content container and returns the
// container's outer HTML.
func cleanedHTML(sel *goquery.Selection) (string, error) {
	sel.Find(furnitureSelectors).Remove()

	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", fmt.Errorf("failed to serialize content: %w", err)
	}
	return strings.TrimSpace(html), nil
}

// slugFor derives the article slug according to the configured strategy. The
// "url" strategy prefers the last path segment of the canonical URL, falling
// back to the title; "title" always slugifies the title.
func slugFor(strategy, canonical, title string) string {
	if strategy != "title" {
		if slug := article.SlugFromURL(canonical); slug != "" {
			return slug
		}
	}
	return article.Slugify(title)
}
