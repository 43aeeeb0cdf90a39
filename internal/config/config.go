// Package config loads server settings from defaults, an optional YAML file
// and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the top-level server configuration.
type Config struct {
	Addr    string `yaml:"addr"`
	Backend string `yaml:"backend"`
	DBPath  string `yaml:"db_path"`

	Redis RedisConfig `yaml:"redis"`

	// PersistGroups writes groups through to storage. Off by default: groups
	// live only as long as the process.
	PersistGroups bool `yaml:"persist_groups"`
	// PersistEvents does the same for calendar events.
	PersistEvents bool `yaml:"persist_events"`

	// WriteTimeout bounds each background snapshot write.
	WriteTimeout time.Duration `yaml:"write_timeout"`
	LogLevel     string        `yaml:"log_level"`
}

// RedisConfig specifies the Redis backend connection
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:    ":8080",
		Backend: BackendSQLite,
		DBPath:  "./data/masterbook.db",
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "masterbook:",
		},
		WriteTimeout: 5 * time.Second,
		LogLevel:     "info",
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("MASTERBOOK_ADDR", &c.Addr)
	str("MASTERBOOK_BACKEND", &c.Backend)
	str("DB_PATH", &c.DBPath)
	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASSWORD", &c.Redis.Password)
	str("REDIS_PREFIX", &c.Redis.Prefix)
	str("LOG_LEVEL", &c.LogLevel)

	var errs []error
	if v, ok := lookup("REDIS_DB"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("REDIS_DB: %w", err))
		}
		c.Redis.DB = n
	}
	for key, dst := range map[string]*bool{
		"PERSIST_GROUPS": &c.PersistGroups,
		"PERSIST_EVENTS": &c.PersistEvents,
	} {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
			*dst = b
		}
	}
	if v, ok := lookup("WRITE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("WRITE_TIMEOUT: %w", err))
		}
		c.WriteTimeout = d
	}
	return errors.Join(errs...)
}

// Validate checks that the selected backend has what it needs.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("db_path is required for the %s backend", c.Backend)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the %s backend", c.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (must be %s, %s or %s)", c.Backend, BackendSQLite, BackendRedis, BackendMemory)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be positive, got %s", c.WriteTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
