// Package discover turns RSS and Atom feeds into URL-list files that the
// ingest pipeline can consume.
package discover

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FetchFeed fetches and parses a feed from a URL. gofeed detects and handles
// both RSS and Atom.
func FetchFeed(url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// ParseFeed parses feed XML from a reader, for local feed files.
func ParseFeed(r io.Reader) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	feed, err := fp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// FeedURLs returns the item links in feed order, skipping items without a
// link and dropping duplicates.
func FeedURLs(feed *gofeed.Feed) []string {
	urls := make([]string, 0, len(feed.Items))
	seen := map[string]bool{}

	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true
		urls = append(urls, link)
	}

	return urls
}

// WriteURLList writes a URL-list file in the ingest input format, with a
// comment header naming the feed.
func WriteURLList(path, feedTitle string, urls []string) error {
	var b strings.Builder
	if feedTitle != "" {
		fmt.Fprintf(&b, "# URLs discovered from %s\n", feedTitle)
	}
	for _, url := range urls {
		b.WriteString(url)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write URL list: %w", err)
	}
	return nil
}
