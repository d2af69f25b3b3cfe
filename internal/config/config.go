// Package config loads morsely settings from an optional TOML file, the
// environment and a .env file. Command-line flags are applied on top by
// the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig   `toml:"server"`
	Database  DatabaseConfig `toml:"database"`
	Log       LogConfig      `toml:"log"`
	Practice  PracticeConfig `toml:"practice"`
	Snapshots SnapshotConfig `toml:"snapshots"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type DatabaseConfig struct {
	Driver string `toml:"driver"` // sqlite or postgres
	DSN    string `toml:"dsn"`    // empty means the default SQLite path
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // console or json
}

// PracticeConfig tunes challenge selection.
type PracticeConfig struct {
	WeakestCount int     `toml:"weakest-count"`
	Words        int     `toml:"words"`
	WeakFactor   float64 `toml:"weak-factor"`
}

// SnapshotConfig controls periodic progress snapshots taken by serve.
type SnapshotConfig struct {
	Interval Duration `toml:"interval"`
	Keep     int      `toml:"keep"`
}

// Duration is a time.Duration that decodes from strings like "15m".
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

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":5003"},
		Database: DatabaseConfig{Driver: "sqlite"},
		Log:      LogConfig{Level: "info", Format: "console"},
		Practice: PracticeConfig{
			WeakestCount: 3,
			Words:        6,
			WeakFactor:   2.0,
		},
		Snapshots: SnapshotConfig{
			Interval: Duration{time.Hour},
			Keep:     168,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/morsely/config.toml.
func DefaultPath() string {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil && h != "" {
			home = filepath.Join(h, ".config")
		} else {
			home = "."
		}
	}
	return filepath.Join(home, "morsely", "config.toml")
}

// LoadDotEnv loads .env from the working directory if it exists.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load builds a Config from defaults, the TOML file at path and MORSELY_
// environment variables, in increasing priority. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from MORSELY_ variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	setString(getenv, "MORSELY_ADDR", &c.Server.Addr)
	setString(getenv, "MORSELY_DB_DRIVER", &c.Database.Driver)
	setString(getenv, "MORSELY_DB", &c.Database.DSN)
	setString(getenv, "MORSELY_LOG_LEVEL", &c.Log.Level)
	setString(getenv, "MORSELY_LOG_FORMAT", &c.Log.Format)

	if err := setInt(getenv, "MORSELY_WEAKEST_COUNT", &c.Practice.WeakestCount); err != nil {
		return err
	}
	if err := setInt(getenv, "MORSELY_WORDS", &c.Practice.Words); err != nil {
		return err
	}
	if err := setInt(getenv, "MORSELY_SNAPSHOT_KEEP", &c.Snapshots.Keep); err != nil {
		return err
	}
	if v := getenv("MORSELY_SNAPSHOT_INTERVAL"); v != "" {
		if err := c.Snapshots.Interval.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("MORSELY_SNAPSHOT_INTERVAL: %w", err)
		}
	}
	if v := getenv("MORSELY_WEAK_FACTOR"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("MORSELY_WEAK_FACTOR: %w", err)
		}
		c.Practice.WeakFactor = f
	}
	return nil
}

// Validate checks for values no component can work with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		return errors.New("postgres requires a DSN")
	}
	if c.Practice.WeakestCount < 1 {
		return fmt.Errorf("weakest-count must be at least 1, got %d", c.Practice.WeakestCount)
	}
	if c.Practice.Words < 1 {
		return fmt.Errorf("words must be at least 1, got %d", c.Practice.Words)
	}
	if c.Practice.WeakFactor < 0 {
		return fmt.Errorf("weak-factor must not be negative, got %g", c.Practice.WeakFactor)
	}
	if c.Snapshots.Interval.Duration < time.Minute {
		return fmt.Errorf("snapshot interval must be at least 1m, got %s", c.Snapshots.Interval)
	}
	if c.Snapshots.Keep < 1 {
		return fmt.Errorf("snapshot keep must be at least 1, got %d", c.Snapshots.Keep)
	}
	return nil
}

func setString(getenv func(string) string, key string, dst *string) {
	if v := getenv(key); v != "" {
		*dst = v
	}
}

func setInt(getenv func(string) string, key string, dst *int) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
