// Package config loads graphcanvas settings from a TOML file.
//
// A missing file is not an error: [Load] returns [Default] in that case, so
// the CLI and server run without any setup. Values present in the file
// override the defaults field by field.
//
// # File Layout
//
//	[server]
//	addr = ":5000"
//	cors_origins = ["http://localhost:3000"]
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	key_prefix = "graphcanvas:"
//	ttl = "24h"
//
//	[canvas]
//	width = 500
//	height = 400
//	radius = 10
//
//	[log]
//	level = "info"
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcanvas/pkg/cache"
	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/store"
)

// EnvPath overrides the default config file location.
const EnvPath = "GRAPHCANVAS_CONFIG"

// Config is the full set of settings.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
	Canvas CanvasConfig `toml:"canvas"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string   `toml:"addr"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StoreConfig selects the graph record backend.
type StoreConfig struct {
	Backend    string `toml:"backend"`
	Dir        string `toml:"dir"`
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig selects the operation result cache.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	RedisDB   int           `toml:"redis_db"`
	KeyPrefix string        `toml:"key_prefix"` // namespaces keys in a shared Redis database
	TTL       time.Duration `toml:"ttl"`
}

// CanvasConfig is the model space the editor maps onto its surface.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Radius float64 `toml:"radius"`
}

// LogConfig sets the default log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":5000",
			CORSOrigins: []string{"*"},
		},
		Store: StoreConfig{
			Backend:    store.BackendFile,
			Database:   store.DefaultDatabase,
			Collection: store.DefaultCollection,
		},
		Cache: CacheConfig{
			Backend:   cache.BackendNone,
			RedisAddr: "localhost:6379",
			TTL:       cache.TTLOperation,
		},
		Canvas: CanvasConfig{Width: 500, Height: 400, Radius: 10},
		Log:    LogConfig{Level: "info"},
	}
}

// DefaultPath returns $GRAPHCANVAS_CONFIG if set, otherwise
// graphcanvas/config.toml under the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate config directory")
	}
	return filepath.Join(dir, "graphcanvas", "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path uses
// [DefaultPath]; a missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open config %s", path)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config key %q", keys[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes cfg to path, creating parent directories.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create config directory")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write config %s", path)
	}
	return nil
}

// Validate checks backend names, canvas geometry and the log level.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case store.BackendMemory, store.BackendFile:
	case store.BackendMongo:
		if c.Store.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidInput, "store.mongo_uri is required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", c.Store.Backend)
	}
	switch c.Cache.Backend {
	case cache.BackendNone, cache.BackendFile:
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas.radius must be positive, got %g", c.Canvas.Radius)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "unknown log level %q", c.Log.Level)
	}
	return nil
}

// StoreOptions converts the [store] table for store.Open.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend:    c.Store.Backend,
		Dir:        c.Store.Dir,
		MongoURI:   c.Store.MongoURI,
		Database:   c.Store.Database,
		Collection: c.Store.Collection,
	}
}

// Keyer returns the cache key scheme, prefixed when key_prefix is set.
func (c Config) Keyer() cache.Keyer {
	if c.Cache.KeyPrefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, c.Cache.KeyPrefix)
}

// CacheOptions converts the [cache] table for cache.Open.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		Dir:       c.Cache.Dir,
		RedisAddr: c.Cache.RedisAddr,
		RedisDB:   c.Cache.RedisDB,
	}
}

// LogLevel returns the parsed [log] level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
