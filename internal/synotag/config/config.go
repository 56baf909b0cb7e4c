// Package config loads synotag configuration from the environment and
// from the team mapping file.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/synotag/synotag/internal/synotag/errors"
	"github.com/synotag/synotag/internal/synotag/synofoto"
)

// Config holds the connection settings for a Synology Photos
// installation. All values come from the environment.
type Config struct {
	URL      string `env:"URL"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// FromEnv parses the SYNOLOGY_PHOTO_* environment variables. Every
// variable is required; missing ones are reported together so the
// operator can fix them in one pass.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "SYNOLOGY_PHOTO_",
	}); err != nil {
		return nil, fmt.Errorf("parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing required setting.
func (c *Config) Validate() error {
	var missing []string
	if c.URL == "" {
		missing = append(missing, "SYNOLOGY_PHOTO_URL")
	}
	if c.Username == "" {
		missing = append(missing, "SYNOLOGY_PHOTO_USERNAME")
	}
	if c.Password == "" {
		missing = append(missing, "SYNOLOGY_PHOTO_PASSWORD")
	}
	if len(missing) > 0 {
		return errors.Wrapf(errors.ErrMissingConfig, "missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Creds returns the API credentials held by the configuration.
func (c *Config) Creds() *synofoto.Creds {
	return &synofoto.Creds{
		Username: c.Username,
		Password: c.Password,
	}
}
