package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/flowmark/flowmark/pkg/render"
)

// Cache backends selectable in the config file.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Config holds user settings loaded from ~/.config/flowmark/config.toml.
// Every field has a sensible default so the file is optional.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig controls how diagrams are rendered.
type RenderConfig struct {
	// Remote switches rendering from the local Graphviz engine to the
	// remote Kroki service.
	Remote bool `toml:"remote"`

	// KrokiURL is the base URL of the Kroki instance used with Remote.
	KrokiURL string `toml:"kroki_url"`
}

// CacheConfig controls the render artifact cache.
type CacheConfig struct {
	// Backend selects the cache implementation: "file", "redis", or "none".
	Backend string `toml:"backend"`

	// TTL is how long cached artifacts stay valid (e.g. "24h").
	TTL duration `toml:"ttl"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// ServeConfig controls the HTTP server.
type ServeConfig struct {
	// Addr is the listen address for the serve command.
	Addr string `toml:"addr"`
}

// duration wraps time.Duration so TOML files can use strings like "24h".
type duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Remote:   false,
			KrokiURL: render.DefaultKrokiURL,
		},
		Cache: CacheConfig{
			Backend:   cacheBackendFile,
			TTL:       duration(24 * time.Hour),
			RedisAddr: "localhost:6379",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// configPath returns the config file path using XDG standard
// (~/.config/flowmark/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file at path and merges it over the defaults.
// A missing file is not an error; a malformed file is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the user's config file, falling back to defaults
// on any error. Used during CLI construction where failing hard would make
// even --help unusable.
func LoadConfigOrDefault() *Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// validate checks enum-valued fields.
func (c *Config) validate() error {
	switch c.Cache.Backend {
	case cacheBackendFile, cacheBackendRedis, cacheBackendNone:
		return nil
	default:
		return fmt.Errorf("invalid cache backend: %s (must be 'file', 'redis', or 'none')", c.Cache.Backend)
	}
}
