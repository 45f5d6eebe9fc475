// Package config provides YAML configuration file loading and validation.
// It handles .env loading, environment variable expansion, default values,
// and checks that the explorer URL and display time zone are usable.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmagro/zecblock/internal/explorer"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "config/zecblock.yaml"

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Explorer Explorer `yaml:"explorer"`
	Display  Display  `yaml:"display"`
}

// Explorer describes the Blockbook instance to query.
type Explorer struct {
	BaseURL   string `yaml:"base_url"`   // API root, e.g. https://host/api/v2 (supports ${VAR})
	UserAgent string `yaml:"user_agent"` // optional User-Agent header
}

// Display holds terminal rendering settings.
type Display struct {
	Color    *bool  `yaml:"color"`    // nil means enabled
	Timezone string `yaml:"timezone"` // IANA name or "Local"
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Explorer.BaseURL == "" {
		c.Explorer.BaseURL = explorer.DefaultBaseURL
	}
	if c.Explorer.UserAgent == "" {
		c.Explorer.UserAgent = "zecblock/1.0"
	}
	if c.Display.Color == nil {
		enabled := true
		c.Display.Color = &enabled
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = "Local"
	}
}

// ColorEnabled reports whether coloured output is configured.
func (c *Config) ColorEnabled() bool {
	return c.Display.Color == nil || *c.Display.Color
}

// Location resolves Display.Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" || c.Display.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}

// Validate applies defaults and checks the explorer URL and time zone.
func (c *Config) Validate() error {
	c.applyDefaults()

	u, err := url.Parse(c.Explorer.BaseURL)
	if err != nil {
		return fmt.Errorf("explorer.base_url: invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("explorer.base_url: invalid url (missing scheme or host)")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("explorer.base_url: invalid url scheme %q (expected http or https)", u.Scheme)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("display.timezone: %w", err)
	}
	return nil
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// references from the environment before parsing, then validates it.
//
// A missing file is reported with an error wrapping fs.ErrNotExist so callers
// can fall back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv reads KEY=VALUE pairs from a .env file in the working directory.
// Values from the file override the process environment. A missing file is
// not an error.
func LoadEnv() {
	_ = godotenv.Overload()
}
