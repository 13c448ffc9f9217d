package config

// Overrides carries explicit values supplied by the caller, typically from
// CLI flags. Nil pointers mean "not supplied". Overrides always win over file
// and default values; Offline is applied last so that an explicit
// --allow-network alongside --offline still resolves to no network.
type Overrides struct {
	Timezone       *string
	SiteDir        *string
	PostsDir       *string
	AllowNetwork   *bool
	Offline        *bool
	DefaultAdapter *string
	UserAgent      *string
	RequireDate    *bool
	FallbackDate   *string
	DedupeStrategy *string
	SlugStrategy   *string
	ForceAdapter   *string
	LineEndings    *string
}

// WithOverrides returns a new validated Config with the supplied overrides
// applied. The receiver is left untouched.
func (c Config) WithOverrides(o Overrides) (Config, error) {
	merged := c

	if o.Timezone != nil {
		merged.Project.Timezone = *o.Timezone
	}
	if o.SiteDir != nil {
		merged.Output.SiteDir = *o.SiteDir
	}
	if o.PostsDir != nil {
		merged.Output.PostsDir = *o.PostsDir
	}
	if o.LineEndings != nil {
		merged.Output.HTML.NormalizeLineEndings = *o.LineEndings
	}
	if o.AllowNetwork != nil {
		merged.Input.AllowNetwork = *o.AllowNetwork
	}
	if o.DefaultAdapter != nil {
		merged.Input.DefaultAdapter = *o.DefaultAdapter
	}
	if o.UserAgent != nil {
		merged.Input.UserAgent = *o.UserAgent
	}
	if o.RequireDate != nil {
		merged.Ingest.Date.Require = *o.RequireDate
	}
	if o.FallbackDate != nil {
		merged.Ingest.Date.FallbackDate = *o.FallbackDate
	}
	if o.DedupeStrategy != nil {
		merged.Ingest.Dedupe.Strategy = *o.DedupeStrategy
	}
	if o.SlugStrategy != nil {
		merged.Ingest.Slug.Strategy = *o.SlugStrategy
	}
	if o.ForceAdapter != nil {
		merged.Ingest.ForceAdapter = *o.ForceAdapter
	}

	// Offline is a one-way forcing flag: only an explicit true disables the
	// network, and it does so regardless of any allow_network override.
	if o.Offline != nil && *o.Offline {
		merged.Input.AllowNetwork = false
	}

	if err := merged.Validate(); err != nil {
		return Config{}, err
	}

	return merged, nil
}
