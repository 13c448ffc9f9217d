package article

import (
	"encoding/json"
	"fmt"
	"os"
)

// Article holds the normalized content extracted from a single web page.
// Adapters construct it once; the generator consumes it immediately. It is
// never mutated after construction.
type Article struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"` // ISO calendar date, YYYY-MM-DD
	Slug         string   `json:"slug"`
	CanonicalURL string   `json:"canonical_url"`
	Source       string   `json:"source"`
	Authors      []string `json:"authors"`
	Tags         []string `json:"tags"`
	HTML         string   `json:"html"`
}

// Filename returns the post filename for this article. It is a pure function
// of the date and slug, so two articles with equal date and slug always map
// to the same file.
func (a Article) Filename() string {
	return fmt.Sprintf("%s-%s.html", a.Date, a.Slug)
}

// LoadFixture reads an Article from a JSON fixture file. Missing authors and
// tags default to empty lists so the rest of the pipeline never sees nil.
func LoadFixture(path string) (Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Article{}, fmt.Errorf("failed to read fixture: %w", err)
	}

	var a Article
	if err := json.Unmarshal(data, &a); err != nil {
		return Article{}, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}

	if a.Title == "" {
		return Article{}, fmt.Errorf("fixture %s has no title", path)
	}
	if a.Authors == nil {
		a.Authors = []string{}
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}

	return a, nil
}
