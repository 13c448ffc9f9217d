// Package ingest drives the URL-to-post pipeline: acquire HTML, select an
// adapter, extract, render, and classify the outcome per URL.
package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kreel/artifactor/config"
	"github.com/kreel/artifactor/generator"
	"github.com/kreel/artifactor/sources"
)

// DefaultTimeout bounds each network fetch unless the caller chooses
// otherwise.
const DefaultTimeout = 20 * time.Second

// Ingester orchestrates ingestion for a batch of URLs. It holds no state
// across URL iterations beyond the read-only config and registry, so URLs
// are processed strictly independently.
type Ingester struct {
	cfg       config.Config
	registry  *sources.Registry
	generator *generator.PostGenerator
	fetcher   Fetcher

	// DryRun skips all writes while still reporting the status a real run
	// would produce.
	DryRun bool
	// HTMLFixture, when set, is a local HTML file used for every URL in
	// place of the network.
	HTMLFixture string
	// Explain, when non-nil, receives one adapter-selection explanation line
	// per URL.
	Explain io.Writer
}

// New builds an ingester from a resolved configuration. The registry carries
// the built-in adapters configured with the config's date and slug policies.
func New(cfg config.Config, timeout time.Duration) *Ingester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := sources.Options{
		Date: sources.DatePolicy{
			Require:  cfg.Ingest.Date.Require,
			Fallback: cfg.Ingest.Date.FallbackDate,
		},
		SlugStrategy: cfg.Ingest.Slug.Strategy,
	}

	gen := generator.New()
	gen.LineEndings = cfg.Output.HTML.NormalizeLineEndings

	return &Ingester{
		cfg:       cfg,
		registry:  sources.DefaultRegistry(opts),
		generator: gen,
		fetcher:   NewHTTPFetcher(timeout, cfg.Input.UserAgent),
	}
}

// Registry exposes the ingester's adapter registry for diagnostics.
func (in *Ingester) Registry() *sources.Registry {
	return in.registry
}

// SetFetcher replaces the network fetcher, mainly for tests.
func (in *Ingester) SetFetcher(f Fetcher) {
	in.fetcher = f
}

// ReadURLs parses a URL-list file: one URL per line, blank lines and
// #-comments skipped, per-line whitespace trimmed, order preserved.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL list: %w", err)
	}
	defer f.Close()

	urls := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL list: %w", err)
	}

	return urls, nil
}

// IngestURL processes a single URL to a terminal status. All failures are
// captured in the result; nothing propagates to the caller.
func (in *Ingester) IngestURL(url string) Result {
	html, finalURL, err := in.acquire(url)
	if err != nil {
		return Result{URL: url, Status: StatusFailed, Error: err.Error()}
	}

	adapter, explanation, err := in.registry.Select(finalURL, in.cfg.Ingest.ForceAdapter)
	if err != nil {
		return Result{URL: url, Status: StatusFailed, Error: err.Error()}
	}
	if in.Explain != nil {
		fmt.Fprintf(in.Explain, "%s -> %s\n", url, explanation)
	}

	a, err := adapter.Extract(finalURL, html)
	if err != nil {
		return Result{URL: url, Status: StatusFailed, Error: err.Error()}
	}

	content, err := in.generator.RenderPost(a)
	if err != nil {
		return Result{URL: url, Status: StatusFailed, Error: err.Error()}
	}

	path := filepath.Join(in.cfg.Output.PostsDir, a.Filename())
	status := in.classify(path, []byte(content))

	if !in.DryRun && status != StatusUnchanged {
		if _, err := in.generator.GeneratePost(a, in.cfg.Output.PostsDir); err != nil {
			return Result{URL: url, Status: StatusFailed, Error: err.Error()}
		}
	}

	return Result{URL: url, Status: status, Filename: a.Filename()}
}

// IngestBatch processes URLs strictly in order, optionally truncated to the
// first limit entries. One result per processed URL; a failure never stops
// the rest of the batch.
func (in *Ingester) IngestBatch(urls []string, limit int) []Result {
	if limit > 0 && limit < len(urls) {
		urls = urls[:limit]
	}

	results := make([]Result, 0, len(urls))
	for _, url := range urls {
		results = append(results, in.IngestURL(url))
	}
	return results
}

// acquire returns the HTML and final URL for one target, from the fixture
// when configured, otherwise from the network.
func (in *Ingester) acquire(url string) (html, finalURL string, err error) {
	if in.HTMLFixture != "" {
		data, err := os.ReadFile(in.HTMLFixture)
		if err != nil {
			return "", "", fmt.Errorf("failed to read HTML fixture: %w", err)
		}
		// The original URL still drives adapter selection.
		return string(data), url, nil
	}

	if !in.cfg.Input.AllowNetwork {
		return "", "", fmt.Errorf("network disabled (allow_network=false and no HTML fixture)")
	}

	result, err := in.fetcher.Fetch(url)
	if err != nil {
		return "", "", err
	}
	return result.HTML, result.FinalURL, nil
}

// classify compares the rendered bytes against whatever is on disk. The
// comparison runs in dry-run mode too, so dry runs report real outcomes.
func (in *Ingester) classify(path string, rendered []byte) Status {
	existing, err := os.ReadFile(path)
	if err != nil {
		return StatusCreated
	}
	if bytes.Equal(existing, rendered) {
		return StatusUnchanged
	}
	return StatusUpdated
}
