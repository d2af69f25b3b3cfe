package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("MORSELY_ADDR", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":5003" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
addr = ":9000"

[practice]
weakest-count = 5
words = 4

[snapshots]
interval = "15m"
keep = 10
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MORSELY_WORDS", "8")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Practice.WeakestCount != 5 {
		t.Errorf("weakest-count = %d", cfg.Practice.WeakestCount)
	}
	if cfg.Practice.Words != 8 {
		t.Errorf("env should override file words, got %d", cfg.Practice.Words)
	}
	if cfg.Snapshots.Interval.Duration != 15*time.Minute || cfg.Snapshots.Keep != 10 {
		t.Errorf("snapshots = %+v", cfg.Snapshots)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unset fields keep defaults, got level %q", cfg.Log.Level)
	}
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"MORSELY_DB_DRIVER":         "postgres",
		"MORSELY_DB":                "postgres://localhost/morsely",
		"MORSELY_LOG_FORMAT":        "json",
		"MORSELY_WEAKEST_COUNT":     "7",
		"MORSELY_SNAPSHOT_INTERVAL": "30m",
		"MORSELY_WEAK_FACTOR":       "3.5",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.DSN != "postgres://localhost/morsely" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Log.Format != "json" || cfg.Practice.WeakestCount != 7 || cfg.Practice.WeakFactor != 3.5 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Snapshots.Interval.Duration != 30*time.Minute {
		t.Errorf("interval = %s", cfg.Snapshots.Interval)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	for _, key := range []string{"MORSELY_WEAKEST_COUNT", "MORSELY_SNAPSHOT_INTERVAL", "MORSELY_WEAK_FACTOR"} {
		cfg := Default()
		if err := cfg.ApplyEnv(envMap(map[string]string{key: "lots"})); err == nil {
			t.Errorf("%s: expected error", key)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = "postgres" }},
		{"weakest", func(c *Config) { c.Practice.WeakestCount = 0 }},
		{"words", func(c *Config) { c.Practice.Words = 0 }},
		{"factor", func(c *Config) { c.Practice.WeakFactor = -1 }},
		{"interval", func(c *Config) { c.Snapshots.Interval = Duration{time.Second} }},
		{"keep", func(c *Config) { c.Snapshots.Keep = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultPath(); got != "/tmp/xdg/morsely/config.toml" {
		t.Errorf("got %q", got)
	}
}
