package config

import (
	"fmt"
	"time"
)

// SupportedVersion is the only config schema version this build understands.
const SupportedVersion = 1

// Closed sets for the enumerated fields. Membership is checked once at load
// time; a Config that exists has already passed validation.
var (
	LineEndingValues     = []string{"lf", "crlf", "none"}
	DedupeStrategyValues = []string{"none", "url", "slug"}
	SlugStrategyValues   = []string{"url", "title"}
)

// ProjectConfig holds project-level settings.
type ProjectConfig struct {
	Timezone string `yaml:"timezone"`
}

// HTMLConfig holds output HTML post-processing settings.
type HTMLConfig struct {
	NormalizeLineEndings string `yaml:"normalize_line_endings"`
}

// OutputConfig holds output location settings.
type OutputConfig struct {
	SiteDir  string     `yaml:"site_dir"`
	PostsDir string     `yaml:"posts_dir"`
	HTML     HTMLConfig `yaml:"html"`
}

// InputConfig holds fetch-side settings.
type InputConfig struct {
	AllowNetwork   bool   `yaml:"allow_network"`
	DefaultAdapter string `yaml:"default_adapter"`
	UserAgent      string `yaml:"user_agent"`
}

// DateConfig holds the date policy applied during extraction.
type DateConfig struct {
	Require      bool   `yaml:"require"`
	FallbackDate string `yaml:"fallback_date"`
}

// DedupeConfig names the dedupe strategy.
type DedupeConfig struct {
	Strategy string `yaml:"strategy"`
}

// SlugConfig names the slug derivation strategy.
type SlugConfig struct {
	Strategy string `yaml:"strategy"`
}

// IngestConfig holds ingestion behavior settings.
type IngestConfig struct {
	Date         DateConfig   `yaml:"date"`
	Dedupe       DedupeConfig `yaml:"dedupe"`
	Slug         SlugConfig   `yaml:"slug"`
	ForceAdapter string       `yaml:"force_adapter"`
}

// Config is the resolved configuration tree. Instances are immutable by
// convention: WithOverrides returns a new value and never touches the
// receiver, so a Config can be shared between the ingester and diagnostic
// commands safely.
type Config struct {
	Version int           `yaml:"version"`
	Project ProjectConfig `yaml:"project"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Ingest  IngestConfig  `yaml:"ingest"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version: SupportedVersion,
		Project: ProjectConfig{
			Timezone: "UTC",
		},
		Input: InputConfig{
			AllowNetwork:   true,
			DefaultAdapter: "generic",
			UserAgent:      "Artifactor/0.1 (+https://github.com/kreel/artifactor)",
		},
		Output: OutputConfig{
			SiteDir:  "site",
			PostsDir: "site/_posts",
			HTML: HTMLConfig{
				NormalizeLineEndings: "lf",
			},
		},
		Ingest: IngestConfig{
			Date: DateConfig{
				Require:      false,
				FallbackDate: "",
			},
			Dedupe: DedupeConfig{Strategy: "none"},
			Slug:   SlugConfig{Strategy: "url"},
		},
	}
}

// Validate checks the whole tree and returns the first violation found.
func (c Config) Validate() error {
	if c.Version != SupportedVersion {
		return fmt.Errorf("unsupported config version %d (supported: %d)", c.Version, SupportedVersion)
	}

	if _, err := time.LoadLocation(c.Project.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Project.Timezone, err)
	}

	if !contains(LineEndingValues, c.Output.HTML.NormalizeLineEndings) {
		return fmt.Errorf("invalid line ending normalization %q (must be one of %v)",
			c.Output.HTML.NormalizeLineEndings, LineEndingValues)
	}

	if !contains(DedupeStrategyValues, c.Ingest.Dedupe.Strategy) {
		return fmt.Errorf("invalid dedupe strategy %q (must be one of %v)",
			c.Ingest.Dedupe.Strategy, DedupeStrategyValues)
	}

	if !contains(SlugStrategyValues, c.Ingest.Slug.Strategy) {
		return fmt.Errorf("invalid slug strategy %q (must be one of %v)",
			c.Ingest.Slug.Strategy, SlugStrategyValues)
	}

	if c.Ingest.Date.FallbackDate != "" {
		if _, err := time.Parse("2006-01-02", c.Ingest.Date.FallbackDate); err != nil {
			return fmt.Errorf("invalid fallback_date format %q (expected YYYY-MM-DD)", c.Ingest.Date.FallbackDate)
		}
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
