package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault verifies the built-in defaults
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "UTC", cfg.Project.Timezone)
	assert.True(t, cfg.Input.AllowNetwork)
	assert.Equal(t, "generic", cfg.Input.DefaultAdapter)
	assert.Equal(t, "site", cfg.Output.SiteDir)
	assert.Equal(t, "site/_posts", cfg.Output.PostsDir)
	assert.Equal(t, "lf", cfg.Output.HTML.NormalizeLineEndings)
	assert.False(t, cfg.Ingest.Date.Require)
	assert.Empty(t, cfg.Ingest.Date.FallbackDate)
	assert.Equal(t, "none", cfg.Ingest.Dedupe.Strategy)
	assert.Equal(t, "url", cfg.Ingest.Slug.Strategy)

	require.NoError(t, cfg.Validate(), "defaults must validate")
}

// TestValidate_UnsupportedVersion verifies version checking
func TestValidate_UnsupportedVersion(t *testing.T) {
	cfg := Default()
	cfg.Version = 99

	assert.ErrorContains(t, cfg.Validate(), "unsupported config version")
}

// TestValidate_InvalidTimezone verifies timezone checking
func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := Default()
	cfg.Project.Timezone = "Not/AZone"

	assert.ErrorContains(t, cfg.Validate(), "invalid timezone")
}

// TestValidate_InvalidLineEnding verifies the line-ending enum
func TestValidate_InvalidLineEnding(t *testing.T) {
	cfg := Default()
	cfg.Output.HTML.NormalizeLineEndings = "invalid"

	assert.ErrorContains(t, cfg.Validate(), "invalid line ending")
}

// TestValidate_InvalidDedupeStrategy verifies the dedupe enum
func TestValidate_InvalidDedupeStrategy(t *testing.T) {
	cfg := Default()
	cfg.Ingest.Dedupe.Strategy = "invalid"

	assert.ErrorContains(t, cfg.Validate(), "invalid dedupe strategy")
}

// TestValidate_InvalidSlugStrategy verifies the slug enum
func TestValidate_InvalidSlugStrategy(t *testing.T) {
	cfg := Default()
	cfg.Ingest.Slug.Strategy = "invalid"

	assert.ErrorContains(t, cfg.Validate(), "invalid slug strategy")
}

// TestValidate_InvalidFallbackDate verifies fallback date format checking
func TestValidate_InvalidFallbackDate(t *testing.T) {
	cfg := Default()
	cfg.Ingest.Date.FallbackDate = "invalid-date"

	assert.ErrorContains(t, cfg.Validate(), "invalid fallback_date format")
}

// TestValidate_ValidFallbackDate verifies a proper fallback date passes
func TestValidate_ValidFallbackDate(t *testing.T) {
	cfg := Default()
	cfg.Ingest.Date.FallbackDate = "2024-01-15"

	assert.NoError(t, cfg.Validate())
}

// TestWithOverrides_SiteDir verifies override precedence and immutability
func TestWithOverrides_SiteDir(t *testing.T) {
	cfg := Default()
	siteDir := "/custom/site"

	merged, err := cfg.WithOverrides(Overrides{SiteDir: &siteDir})
	require.NoError(t, err)

	assert.Equal(t, "/custom/site", merged.Output.SiteDir)
	assert.Equal(t, "site", cfg.Output.SiteDir, "original must be unchanged")
}

// TestWithOverrides_Offline verifies offline disables the network
func TestWithOverrides_Offline(t *testing.T) {
	cfg := Default()
	offline := true

	merged, err := cfg.WithOverrides(Overrides{Offline: &offline})
	require.NoError(t, err)

	assert.False(t, merged.Input.AllowNetwork)
	assert.True(t, cfg.Input.AllowNetwork, "original must be unchanged")
}

// TestWithOverrides_OfflinePrecedence verifies offline beats allow_network
func TestWithOverrides_OfflinePrecedence(t *testing.T) {
	cfg := Default()
	offline := true
	allowNetwork := true

	merged, err := cfg.WithOverrides(Overrides{Offline: &offline, AllowNetwork: &allowNetwork})
	require.NoError(t, err)

	assert.False(t, merged.Input.AllowNetwork, "offline=true must win over allow_network=true")
}

// TestWithOverrides_OfflineFalseLeavesNetworkAlone verifies offline is one-way
func TestWithOverrides_OfflineFalseLeavesNetworkAlone(t *testing.T) {
	cfg := Default()
	cfg.Input.AllowNetwork = false
	offline := false

	merged, err := cfg.WithOverrides(Overrides{Offline: &offline})
	require.NoError(t, err)

	assert.False(t, merged.Input.AllowNetwork, "offline=false must not re-enable the network")
}

// TestWithOverrides_DatePolicy verifies date overrides
func TestWithOverrides_DatePolicy(t *testing.T) {
	cfg := Default()
	requireDate := true
	fallback := "2024-03-15"

	merged, err := cfg.WithOverrides(Overrides{RequireDate: &requireDate, FallbackDate: &fallback})
	require.NoError(t, err)

	assert.True(t, merged.Ingest.Date.Require)
	assert.Equal(t, "2024-03-15", merged.Ingest.Date.FallbackDate)
}

// TestWithOverrides_ForceAdapter verifies the forced adapter override
func TestWithOverrides_ForceAdapter(t *testing.T) {
	cfg := Default()
	adapter := "socket"

	merged, err := cfg.WithOverrides(Overrides{ForceAdapter: &adapter})
	require.NoError(t, err)

	assert.Equal(t, "socket", merged.Ingest.ForceAdapter)
	assert.Equal(t, "generic", merged.Input.DefaultAdapter, "default_adapter must stay untouched")
}

// TestWithOverrides_InvalidValueRejected verifies overrides are validated
func TestWithOverrides_InvalidValueRejected(t *testing.T) {
	cfg := Default()
	fallback := "not-a-date"

	_, err := cfg.WithOverrides(Overrides{FallbackDate: &fallback})
	assert.ErrorContains(t, err, "invalid fallback_date format")
}
