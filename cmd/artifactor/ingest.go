package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kreel/artifactor/config"
	"github.com/kreel/artifactor/ingest"
)

var (
	ingestURLsPath     string
	ingestConfigPath   string
	ingestSiteDir      string
	ingestPostsDir     string
	ingestTimeout      int
	ingestUserAgent    string
	ingestLimit        int
	ingestDryRun       bool
	ingestOffline      bool
	ingestAllowNetwork bool
	ingestHTMLFixture  string
	ingestAdapter      string
	ingestRequireDate  bool
	ingestFallbackDate string
	ingestExplain      bool
	ingestReportPath   string
)

var statusSymbols = map[ingest.Status]string{
	ingest.StatusCreated:   "✓",
	ingest.StatusUpdated:   "↻",
	ingest.StatusUnchanged: "=",
	ingest.StatusFailed:    "✗",
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest URLs and generate Jekyll posts",
	Long: `Reads a list of URLs from a file, fetches each URL, extracts article
content, and generates Jekyll HTML posts with YAML front matter.

URL file format: one URL per line, blank lines ignored, # for comments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveIngestConfig(cmd)
		if err != nil {
			return err
		}

		urls, err := ingest.ReadURLs(ingestURLsPath)
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			return fmt.Errorf("no URLs found in %s", ingestURLsPath)
		}

		if ingestDryRun {
			fmt.Println("[DRY RUN MODE - No files will be written]")
			fmt.Println()
		}
		if ingestHTMLFixture != "" {
			fmt.Printf("OFFLINE MODE: using %s for all URLs\n\n", ingestHTMLFixture)
		}

		fmt.Printf("Found %d URL(s) to process\n", len(urls))
		if ingestLimit > 0 {
			fmt.Printf("Processing first %d URL(s)\n", ingestLimit)
		}
		fmt.Println()

		in := ingest.New(cfg, time.Duration(ingestTimeout)*time.Second)
		in.DryRun = ingestDryRun
		in.HTMLFixture = ingestHTMLFixture
		if ingestExplain {
			in.Explain = os.Stderr
		}

		results := in.IngestBatch(urls, ingestLimit)
		for _, result := range results {
			fmt.Printf("%s %s: %s\n", statusSymbols[result.Status], result.Status, result.URL)
			if result.Status == ingest.StatusFailed {
				fmt.Printf("  Error: %s\n", result.Error)
			} else if result.Filename != "" {
				fmt.Printf("  File: %s\n", result.Filename)
			}
		}

		report := ingest.NewReport(results)
		fmt.Println()
		fmt.Println(report.Summary())

		if ingestReportPath != "" {
			if err := report.WriteFile(ingestReportPath); err != nil {
				return err
			}
		}

		if report.HasFailures() {
			os.Exit(1)
		}
		return nil
	},
}

// resolveIngestConfig merges defaults, the config file, and the flags the
// user actually set.
func resolveIngestConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(ingestConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	o := config.Overrides{}
	flags := cmd.Flags()
	if flags.Changed("out") {
		o.SiteDir = &ingestSiteDir
		if !flags.Changed("posts-dir") {
			derived := filepath.Join(ingestSiteDir, "_posts")
			o.PostsDir = &derived
		}
	}
	if flags.Changed("posts-dir") {
		o.PostsDir = &ingestPostsDir
	}
	if flags.Changed("user-agent") {
		o.UserAgent = &ingestUserAgent
	}
	if flags.Changed("allow-network") {
		o.AllowNetwork = &ingestAllowNetwork
	}
	if flags.Changed("offline") {
		o.Offline = &ingestOffline
	}
	if flags.Changed("require-date") {
		o.RequireDate = &ingestRequireDate
	}
	if flags.Changed("fallback-date") {
		o.FallbackDate = &ingestFallbackDate
	}
	if flags.Changed("adapter") {
		o.ForceAdapter = &ingestAdapter
	}

	return cfg.WithOverrides(o)
}

func init() {
	ingestCmd.Flags().StringVar(&ingestURLsPath, "urls", "", "path to file containing URLs (one per line, # for comments)")
	ingestCmd.Flags().StringVar(&ingestConfigPath, "config", "", "path to config file (default: discover artifactor.yml)")
	ingestCmd.Flags().StringVar(&ingestSiteDir, "out", "site", "output directory for the Jekyll site")
	ingestCmd.Flags().StringVar(&ingestPostsDir, "posts-dir", "site/_posts", "directory for generated posts")
	ingestCmd.Flags().IntVar(&ingestTimeout, "timeout", 20, "request timeout in seconds")
	ingestCmd.Flags().StringVar(&ingestUserAgent, "user-agent", "", "User-Agent header for requests")
	ingestCmd.Flags().IntVar(&ingestLimit, "limit", 0, "process only the first N URLs")
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "show what would be done without writing files")
	ingestCmd.Flags().BoolVar(&ingestOffline, "offline", false, "disable network access (takes precedence over --allow-network)")
	ingestCmd.Flags().BoolVar(&ingestAllowNetwork, "allow-network", true, "allow network fetches")
	ingestCmd.Flags().StringVar(&ingestHTMLFixture, "html-fixture", "", "HTML fixture file used for all URLs (offline testing)")
	ingestCmd.Flags().StringVar(&ingestAdapter, "adapter", "", "force a specific adapter by name")
	ingestCmd.Flags().BoolVar(&ingestRequireDate, "require-date", false, "fail extraction when no publish date is found")
	ingestCmd.Flags().StringVar(&ingestFallbackDate, "fallback-date", "", "date (YYYY-MM-DD) used when a page has none")
	ingestCmd.Flags().BoolVar(&ingestExplain, "explain", false, "print adapter selection explanations to stderr")
	ingestCmd.Flags().StringVar(&ingestReportPath, "report", "", "write a JSON run report to this path")
	ingestCmd.MarkFlagRequired("urls")
}
