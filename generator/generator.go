// Package generator renders articles into static-site post files.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kreel/artifactor/article"
)

// Layout is the fixed layout name written into every post's front matter.
const Layout = "reprint"

// frontMatter fixes the key order of the rendered block. yaml.v3 emits
// struct fields in declaration order, which keeps the output deterministic;
// authors and tags are omitted entirely when empty.
type frontMatter struct {
	Layout       string   `yaml:"layout"`
	Title        string   `yaml:"title"`
	Date         string   `yaml:"date"`
	CanonicalURL string   `yaml:"canonical_url"`
	Source       string   `yaml:"source"`
	Authors      []string `yaml:"authors,omitempty"`
	Tags         []string `yaml:"tags,omitempty"`
}

// PostGenerator renders articles and writes post files. Rendering is a pure
// function of the article and the generator's settings: no clocks, no map
// iteration, no locale-dependent formatting.
type PostGenerator struct {
	// LineEndings controls body normalization: "lf", "crlf", or "none".
	LineEndings string
}

// New returns a generator with the default line-ending policy.
func New() *PostGenerator {
	return &PostGenerator{LineEndings: "lf"}
}

// RenderPost produces the full textual post: front matter between separator
// lines, a blank line, the body HTML, and a single trailing newline.
func (g *PostGenerator) RenderPost(a article.Article) (string, error) {
	fm := frontMatter{
		Layout:       Layout,
		Title:        a.Title,
		Date:         a.Date,
		CanonicalURL: a.CanonicalURL,
		Source:       a.Source,
		Authors:      a.Authors,
		Tags:         a.Tags,
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to render front matter: %w", err)
	}

	body := g.normalize(strings.TrimRight(a.HTML, "\r\n"))
	return "---\n" + string(data) + "---\n\n" + body + "\n", nil
}

// GeneratePost renders the article and writes it under dir, creating the
// directory if needed. Writing the same article twice produces byte-identical
// contents and the same path.
func (g *PostGenerator) GeneratePost(a article.Article, dir string) (string, error) {
	content, err := g.RenderPost(a)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, a.Filename())
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write post: %w", err)
	}

	return path, nil
}

func (g *PostGenerator) normalize(body string) string {
	switch g.LineEndings {
	case "crlf":
		body = strings.ReplaceAll(body, "\r\n", "\n")
		body = strings.ReplaceAll(body, "\r", "\n")
		return strings.ReplaceAll(body, "\n", "\r\n")
	case "none":
		return body
	default: // lf
		body = strings.ReplaceAll(body, "\r\n", "\n")
		return strings.ReplaceAll(body, "\r", "\n")
	}
}
