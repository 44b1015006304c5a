// Package config loads the jifkit configuration file.
//
// The file lives at $XDG_CONFIG_HOME/jifkit/config.toml (falling back to
// ~/.config/jifkit/config.toml) unless a path is given explicitly. A missing
// file is not an error; every field has a default.
//
//	siteswap_jugglers = 2
//	log_level = "info"
//
//	[server]
//	addr = ":8080"
//	cache_ttl = "10m"
//	cache_entries = 1024
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
)

const appName = "jifkit"

// Defaults.
const (
	DefaultSiteswapJugglers = 2
	DefaultLogLevel         = "info"
	DefaultAddr             = ":8080"
	DefaultCacheTTL         = 10 * time.Minute
	DefaultCacheEntries     = 1024
)

// Config is the decoded configuration file.
type Config struct {
	SiteswapJugglers int    `toml:"siteswap_jugglers"`
	LogLevel         string `toml:"log_level"`
	Server           Server `toml:"server"`
}

// Server configures "jifkit serve".
type Server struct {
	Addr         string   `toml:"addr"`
	CacheTTL     Duration `toml:"cache_ttl"`
	CacheEntries int      `toml:"cache_entries"`
}

// Duration is a time.Duration written as a Go duration string ("10m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SiteswapJugglers: DefaultSiteswapJugglers,
		LogLevel:         DefaultLogLevel,
		Server: Server{
			Addr:         DefaultAddr,
			CacheTTL:     Duration{DefaultCacheTTL},
			CacheEntries: DefaultCacheEntries,
		},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path, or at [Path] when path is empty.
// Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration content and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, jiferr.Wrap(jiferr.ErrCodeInvalidInput, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := jiferr.ValidateJugglerCount(c.SiteswapJugglers); err != nil {
		return jiferr.Wrap(jiferr.ErrCodeInvalidInput, err, "siteswap_jugglers")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return jiferr.Wrap(jiferr.ErrCodeInvalidInput, err, "log_level")
	}
	if c.Server.Addr == "" {
		return jiferr.New(jiferr.ErrCodeInvalidInput, "server.addr cannot be empty")
	}
	if c.Server.CacheTTL.Duration < 0 {
		return jiferr.New(jiferr.ErrCodeInvalidInput, "server.cache_ttl cannot be negative")
	}
	if c.Server.CacheEntries < 0 {
		return jiferr.New(jiferr.ErrCodeInvalidInput, "server.cache_entries cannot be negative")
	}
	return nil
}

// Level returns the configured log level. Validate has already rejected
// unknown names.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
