package types

type (
	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns" yaml:"ignore"`
		ExtraExtensions []string `json:"extraExtensions" yaml:"extra_extensions"`
	}
)
