package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// TestDiscover_NoFile verifies discovery returns empty when nothing exists
func TestDiscover_NoFile(t *testing.T) {
	found, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

// TestDiscover_Yml verifies discovery finds artifactor.yml
func TestDiscover_Yml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "artifactor.yml"), "version: 1\n")

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "artifactor.yml"), found)
}

// TestDiscover_Yaml verifies discovery finds artifactor.yaml
func TestDiscover_Yaml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "artifactor.yaml"), "version: 1\n")

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "artifactor.yaml"), found)
}

// TestDiscover_PrefersYml verifies .yml wins when both extensions exist
func TestDiscover_PrefersYml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "artifactor.yml"), "version: 1\n")
	writeFile(t, filepath.Join(dir, "artifactor.yaml"), "version: 1\n")

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "artifactor.yml"), found)
}

// TestDiscover_SearchesUp verifies discovery walks parent directories
func TestDiscover_SearchesUp(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "project", "src", "app")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	writeFile(t, filepath.Join(root, "project", "artifactor.yml"), "version: 1\n")

	found, err := Discover(deep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "project", "artifactor.yml"), found)
}

// TestLoad_ExplicitPathNotFound verifies a named missing file is fatal
func TestLoad_ExplicitPathNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "config file not found")
}

// TestLoad_FileValuesMergeOverDefaults verifies field-by-field merging
func TestLoad_FileValuesMergeOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifactor.yml")
	writeFile(t, path, `
version: 1
output:
  site_dir: test_site
  posts_dir: test_posts
input:
  allow_network: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test_site", cfg.Output.SiteDir)
	assert.Equal(t, "test_posts", cfg.Output.PostsDir)
	assert.False(t, cfg.Input.AllowNetwork)
	// Untouched sections keep their defaults.
	assert.Equal(t, "UTC", cfg.Project.Timezone)
	assert.Equal(t, "generic", cfg.Input.DefaultAdapter)
	assert.Equal(t, "lf", cfg.Output.HTML.NormalizeLineEndings)
}

// TestLoad_EmptyFile verifies an empty config file yields the defaults
func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifactor.yml")
	writeFile(t, path, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "site", cfg.Output.SiteDir)
}

// TestLoad_InvalidYAML verifies malformed YAML is rejected
func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifactor.yml")
	writeFile(t, path, "invalid: [yaml")

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid YAML")
}

// TestLoad_InvalidValuesFailEagerly verifies validation runs at load time
func TestLoad_InvalidValuesFailEagerly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifactor.yml")
	writeFile(t, path, `
version: 1
ingest:
  dedupe:
    strategy: bogus
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid dedupe strategy")
}

// TestMergePrecedence verifies override > file > default end to end
func TestMergePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifactor.yml")
	writeFile(t, path, "version: 1\noutput:\n  site_dir: file_site\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file_site", cfg.Output.SiteDir, "file must beat default")

	cliSite := "cli_site"
	merged, err := cfg.WithOverrides(Overrides{SiteDir: &cliSite})
	require.NoError(t, err)
	assert.Equal(t, "cli_site", merged.Output.SiteDir, "override must beat file")
}

// TestToYAML_Deterministic verifies stable rendering and key order
func TestToYAML_Deterministic(t *testing.T) {
	cfg := Default()

	out1, err := cfg.ToYAML()
	require.NoError(t, err)
	out2, err := cfg.ToYAML()
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.True(t, len(out1) > 0)
	assert.Contains(t, out1, "version: 1")

	// Round trip: the printed config parses back to an equal value.
	parsed, err := Parse([]byte(out1))
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
