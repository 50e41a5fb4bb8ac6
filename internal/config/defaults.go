package config

const (
	defaultRoot             = "."
	defaultCustomFormatsDir = "custom_formats"
	defaultRegexPatternsDir = "regex_patterns"
	defaultProfilesDir      = "profiles"
	defaultLegacyFormatsDir = "ops/custom_formats"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:          defaultRoot,
			CustomFormats: defaultCustomFormatsDir,
			RegexPatterns: defaultRegexPatternsDir,
			Profiles:      defaultProfilesDir,
			LegacyFormats: defaultLegacyFormatsDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
