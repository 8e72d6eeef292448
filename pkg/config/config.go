// Package config loads lanparty settings from a TOML file.
//
// A config file is optional. Missing keys keep their [Default] values and
// command-line flags override whatever the file sets:
//
//	prefix  = "t"
//	driver  = "per-node"
//	workers = 8
//
//	[cache]
//	backend    = "redis"
//	ttl        = "24h"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nbourre/lanparty/pkg/cache"
	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/errors"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full set of file-configurable settings.
type Config struct {
	Prefix  string       `toml:"prefix"`
	Driver  string       `toml:"driver"`
	Workers int          `toml:"workers"`
	Cache   CacheConfig  `toml:"cache"`
	Server  ServerConfig `toml:"server"`
}

type CacheConfig struct {
	Backend   string   `toml:"backend"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
	Dir       string   `toml:"dir"` // empty means the XDG cache dir
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a Go duration string ("36h").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings. Workers is zero, meaning one per CPU.
func Default() Config {
	return Config{
		Prefix: "t",
		Driver: string(clique.DriverPerNode),
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{cache.DefaultTTL},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lanparty/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lanparty", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lanparty", "config.toml"), nil
}

// Load reads the TOML file at path over [Default]. An empty path loads the
// file at [DefaultPath] if one exists and otherwise returns the defaults.
// An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML over [Default] and validates the result. Unknown keys
// are rejected so typos do not go unnoticed.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := clique.ParseDriver(c.Driver); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "driver")
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be %q, %q or %q, got %q",
			BackendFile, BackendRedis, BackendNone, c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}
