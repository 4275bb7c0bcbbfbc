package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. PORT (platform deploys inject a bare port number)
//  3. file (YAML) if GALLERY_CONFIG is set
//  4. env (prefix GALLERY_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	if port := os.Getenv("PORT"); port != "" {
		base.Addr = ":" + port
	}

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GALLERY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GALLERY_ADDR, GALLERY_PHOTO_LIMIT, ...
	// Map env keys like GALLERY_PHOTO_LIMIT -> photo_limit (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("GALLERY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "gallery_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.PhotoLimit < 1:
		return fmt.Errorf("%w: photo_limit must be positive", ErrInvalidConfig)
	case cfg.ThumbSize < 1:
		return fmt.Errorf("%w: thumb_size must be positive", ErrInvalidConfig)
	case len(cfg.Queries) == 0:
		return fmt.Errorf("%w: queries must not be empty", ErrInvalidConfig)
	case cfg.SearchTimeoutSeconds < 1:
		return fmt.Errorf("%w: search_timeout_seconds must be positive", ErrInvalidConfig)
	}
	return nil
}
