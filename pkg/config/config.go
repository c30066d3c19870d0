package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL for generated links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Redis struct {
		URL string `yaml:"url" json:"url" jsonschema:"default=redis://localhost:6379,description=Shared cache service URL"`
	} `yaml:"redis" json:"redis" jsonschema:"description=Shared cache configuration"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=Digest build configuration"`

	Registry struct {
		Path string `yaml:"path" json:"path" jsonschema:"description=Optional YAML file overriding the built-in feed registry"`
	} `yaml:"registry" json:"registry" jsonschema:"description=Feed registry configuration"`
}

// DigestConfig holds the aggregation knobs
type DigestConfig struct {
	ItemsPerFeed     int           `yaml:"items_per_feed" json:"items_per_feed" jsonschema:"default=5,minimum=1,description=Maximum items taken from one feed"`
	MaxPerCategory   int           `yaml:"max_per_category" json:"max_per_category" jsonschema:"default=20,minimum=1,description=Maximum items kept per category"`
	FeedTimeout      time.Duration `yaml:"feed_timeout" json:"feed_timeout" jsonschema:"default=8s,description=Per-feed fetch timeout"`
	Deadline         time.Duration `yaml:"deadline" json:"deadline" jsonschema:"default=25s,description=Wall-clock budget for one digest build"`
	BatchConcurrency int           `yaml:"batch_concurrency" json:"batch_concurrency" jsonschema:"default=20,minimum=1,description=Feeds fetched concurrently per batch"`
	FeedTTL          time.Duration `yaml:"feed_ttl" json:"feed_ttl" jsonschema:"default=600s,description=Cache TTL for parsed feed items"`
	DigestTTL        time.Duration `yaml:"digest_ttl" json:"digest_ttl" jsonschema:"default=900s,description=Cache TTL for assembled digests"`
	FallbackCapacity int           `yaml:"fallback_capacity" json:"fallback_capacity" jsonschema:"default=50,minimum=1,description=Entries kept in the in-process fallback map"`
	UserAgent        string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed requests (browser-like by default)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with every knob at its default,
// used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Redis.URL == "" {
		c.Redis.URL = "redis://localhost:6379"
	}

	if c.Digest.ItemsPerFeed == 0 {
		c.Digest.ItemsPerFeed = 5
	}
	if c.Digest.MaxPerCategory == 0 {
		c.Digest.MaxPerCategory = 20
	}
	if c.Digest.FeedTimeout == 0 {
		c.Digest.FeedTimeout = 8 * time.Second
	}
	if c.Digest.Deadline == 0 {
		c.Digest.Deadline = 25 * time.Second
	}
	if c.Digest.BatchConcurrency == 0 {
		c.Digest.BatchConcurrency = 20
	}
	if c.Digest.FeedTTL == 0 {
		c.Digest.FeedTTL = 600 * time.Second
	}
	if c.Digest.DigestTTL == 0 {
		c.Digest.DigestTTL = 900 * time.Second
	}
	if c.Digest.FallbackCapacity == 0 {
		c.Digest.FallbackCapacity = 50
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Digest.FeedTimeout < time.Second {
		return fmt.Errorf("digest.feed_timeout must be at least 1 second")
	}
	if cfg.Digest.Deadline <= cfg.Digest.FeedTimeout {
		return fmt.Errorf("digest.deadline must exceed digest.feed_timeout")
	}
	if cfg.Digest.ItemsPerFeed < 1 {
		return fmt.Errorf("digest.items_per_feed must be at least 1")
	}
	if cfg.Digest.MaxPerCategory < 1 {
		return fmt.Errorf("digest.max_per_category must be at least 1")
	}
	if cfg.Digest.BatchConcurrency < 1 {
		return fmt.Errorf("digest.batch_concurrency must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetDigestConfig returns the digest build configuration
func (c *Config) GetDigestConfig() DigestConfig {
	return c.Digest
}
