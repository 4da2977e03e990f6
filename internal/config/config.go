// Package config provides configuration structures and loading for GoProfile.
package config

// Config represents the complete application configuration.
type Config struct {
	Sources map[string]SourceConfig `yaml:"sources" mapstructure:"sources"`
	Profile ProfileConfig           `yaml:"profile" mapstructure:"profile"`
	Logging LoggingConfig           `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig represents a single record stream source.
type SourceConfig struct {
	Type               string `yaml:"type" mapstructure:"type"` // ndjson or mysql
	Path               string `yaml:"path" mapstructure:"path"` // file path, or "-" for stdin
	DSN                string `yaml:"dsn" mapstructure:"dsn"`
	Query              string `yaml:"query" mapstructure:"query"`
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// ProfileConfig represents property aggregation settings.
type ProfileConfig struct {
	// Properties is an explicit allow-list of property names. When empty,
	// every discoverable data/computed property is considered.
	Properties []string `yaml:"properties" mapstructure:"properties"`

	// Exclude lists property names to skip during enumeration.
	Exclude []string `yaml:"exclude" mapstructure:"exclude"`

	// IncludeComputed controls whether computed (accessor) properties are
	// enumerated alongside data properties.
	IncludeComputed bool `yaml:"include_computed" mapstructure:"include_computed"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Sources: map[string]SourceConfig{},
		Profile: ProfileConfig{
			IncludeComputed: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}
