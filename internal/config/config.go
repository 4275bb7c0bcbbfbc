// Package config defines service configuration structures and loading hooks.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// SearchURL is the media search API endpoint.
	SearchURL string `koanf:"search_url"`

	// UserAgent identifies this service to the media search API.
	UserAgent string `koanf:"user_agent"`

	// SearchTimeoutSeconds bounds each external search request.
	SearchTimeoutSeconds int `koanf:"search_timeout_seconds"`

	// PhotoLimit caps the number of images in the photos payload.
	PhotoLimit int `koanf:"photo_limit"`

	// ThumbSize is the thumbnail pixel edge length requested per image.
	ThumbSize int `koanf:"thumb_size"`

	// Queries is the curated search term list for the photos endpoint.
	Queries []string `koanf:"queries"`

	// DatabaseDSN points the diagnostic probe at the optional database.
	// Empty means no database is configured.
	DatabaseDSN string `koanf:"database_dsn"`
}

// defaultQueries is the curated Omsk night/winter search set.
var defaultQueries = []string{
	"Омск ночь",
	"Омск зима",
	"Lyubinsky Avenue Omsk night",
	"Assumption Cathedral Omsk night",
	"Omsk Irtysh embankment night",
	"Omsk Drama Theater night",
	"Buchholz Square Omsk night",
	"Omsk fortress night",
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8000",
		SearchURL:            "https://commons.wikimedia.org/w/api.php",
		UserAgent:            "Flames.Blue Omsk Gallery/1.0",
		SearchTimeoutSeconds: 10,
		PhotoLimit:           32,
		ThumbSize:            1024,
		Queries:              append([]string(nil), defaultQueries...),
	}
}
