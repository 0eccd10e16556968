package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "RELEASE_PULSE_CONFIG"
	addrEnv       = "RELEASE_PULSE_ADDR"
	dbPathEnv     = "RELEASE_PULSE_DB"
	seedPathEnv   = "RELEASE_PULSE_SEED"
	marketFeedEnv = "RELEASE_PULSE_MARKET_FEED"
)

// Config holds high-level settings required across the application.
type Config struct {
	Addr     string         `yaml:"addr"`
	Database DatabaseConfig `yaml:"database"`
	Seed     SeedConfig     `yaml:"seed"`
	Market   MarketConfig   `yaml:"market"`
}

// DatabaseConfig describes the SQLite file location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SeedConfig points at the release seed JSON.
type SeedConfig struct {
	Path string `yaml:"path"`
}

// MarketConfig wires the optional upstream market snapshot feed.
type MarketConfig struct {
	FeedURL     string `yaml:"feedUrl"`
	PollSeconds int    `yaml:"pollSeconds"`
}

// PollInterval resolves the poll cadence, defaulting to 5s.
func (m MarketConfig) PollInterval() time.Duration {
	if m.PollSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(m.PollSeconds) * time.Second
}

func defaultConfig() Config {
	return Config{
		Addr:     ":5050",
		Database: DatabaseConfig{Path: "fud.db"},
		Seed:     SeedConfig{Path: "data/nova_aria__chromatic_drift.json"},
		Market:   MarketConfig{PollSeconds: 5},
	}
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			fileCfg := cfg
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = fileCfg
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(addrEnv); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(dbPathEnv); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(seedPathEnv); v != "" {
		c.Seed.Path = v
	}
	if v := os.Getenv(marketFeedEnv); v != "" {
		c.Market.FeedURL = v
	}
}
