package main

import (
	"fmt"
	"os"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/cobra"

	"github.com/kreel/artifactor/discover"
)

var (
	discoverFeed string
	discoverOut  string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Build a URL list from an RSS or Atom feed",
	Long:  "Parses a feed (from a URL or a local file) and writes its article links as a URL-list file that `artifactor ingest --urls` accepts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := loadFeed(discoverFeed)
		if err != nil {
			return err
		}

		urls := discover.FeedURLs(feed)
		if len(urls) == 0 {
			return fmt.Errorf("feed %q contains no article links", discoverFeed)
		}

		if err := discover.WriteURLList(discoverOut, feed.Title, urls); err != nil {
			return err
		}

		fmt.Printf("Discovered %d URL(s) from %s\n", len(urls), feed.Title)
		fmt.Printf("Wrote %s\n", discoverOut)
		return nil
	},
}

// loadFeed treats the argument as a local file when one exists at that path,
// otherwise as a feed URL.
func loadFeed(source string) (*gofeed.Feed, error) {
	if info, statErr := os.Stat(source); statErr == nil && !info.IsDir() {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open feed file: %w", err)
		}
		defer f.Close()
		return discover.ParseFeed(f)
	}
	return discover.FetchFeed(source)
}

func init() {
	discoverCmd.Flags().StringVar(&discoverFeed, "feed", "", "feed URL or local feed file")
	discoverCmd.Flags().StringVar(&discoverOut, "out", "urls.txt", "path of the URL-list file to write")
	discoverCmd.MarkFlagRequired("feed")
}
