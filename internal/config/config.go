// Package config loads server configuration from an optional TOML file with
// environment-variable overrides. Flags handled by the CLI take precedence
// over both.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string `toml:"addr"`

	// CORSOrigin is the value of Access-Control-Allow-Origin.
	// "*" is acceptable because the API carries no credentials.
	CORSOrigin string `toml:"cors_origin"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the response-cache backend.
type CacheConfig struct {
	// Backend is one of "none", "memory", "redis".
	Backend string `toml:"backend"`

	// TTL is how long a cached response stays valid, e.g. "5m".
	TTL duration `toml:"ttl"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// duration lets TOML carry Go duration strings ("90s", "5m").
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Default returns the configuration used when no file and no overrides are
// present.
func Default() Config {
	return Config{
		Addr:       ":8000",
		CORSOrigin: "*",
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     duration(5 * time.Minute),
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// Load reads configuration from path (skipped when empty), then applies
// environment overrides. Unknown keys in the file are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides file values with DEADPANDA_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DEADPANDA_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DEADPANDA_CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}
	if v := os.Getenv("DEADPANDA_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("DEADPANDA_REDIS_ADDR"); v != "" {
		cfg.Cache.Redis.Addr = v
	}
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("cache backend must be none, memory or redis, got %q", c.Cache.Backend)
	}
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	return nil
}

// CacheTTL returns the cache TTL as a time.Duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTL)
}
