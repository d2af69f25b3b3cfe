package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/challenge"
	"github.com/abhisek/morsely/internal/config"
	"github.com/abhisek/morsely/internal/llm"
	"github.com/abhisek/morsely/internal/logger"
	"github.com/abhisek/morsely/internal/store"
	"github.com/abhisek/morsely/internal/tracker"
)

// runtime is what most commands need: resolved config, a logger, the
// store and a tracker on top of it.
type runtime struct {
	cfg     config.Config
	log     zerolog.Logger
	store   *store.Store
	tracker *tracker.Tracker
}

func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.log.Warn().Err(err).Msg("close store")
	}
}

// loadConfig resolves configuration with priority flags > env > file >
// defaults, loading .env first.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := map[string]*string{
		"db":         &cfg.Database.DSN,
		"db-driver":  &cfg.Database.Driver,
		"log-level":  &cfg.Log.Level,
		"log-format": &cfg.Log.Format,
	}
	for name, dst := range flags {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			*dst = v
		}
	}
	return cfg, cfg.Validate()
}

// resolveDSN returns the configured DSN, falling back to the default XDG
// SQLite path.
func resolveDSN(cfg config.Config) (string, error) {
	if cfg.Database.DSN == "" {
		if cfg.Database.Driver != store.DriverSQLite {
			return "", errors.New("a DSN is required for " + cfg.Database.Driver)
		}
		return store.DefaultDBPath()
	}
	if cfg.Database.Driver == store.DriverSQLite && cfg.Database.DSN != ":memory:" {
		return cfg.Database.DSN, store.EnsureDir(cfg.Database.DSN)
	}
	return cfg.Database.DSN, nil
}

// setup loads config, builds the logger and opens the store.
func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	dsn, err := resolveDSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(cmd.Context(), store.Options{Driver: cfg.Database.Driver, DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &runtime{
		cfg:     cfg,
		log:     log,
		store:   st,
		tracker: tracker.New(st.PracticeRepo(), tracker.WithLogger(logger.Component(log, "tracker"))),
	}, nil
}

// challengeConfig applies practice settings to the challenge defaults.
func (r *runtime) challengeConfig() challenge.Config {
	cfg := challenge.DefaultConfig()
	cfg.FocusCount = r.cfg.Practice.WeakestCount
	cfg.Words = r.cfg.Practice.Words
	cfg.WeakFactor = r.cfg.Practice.WeakFactor
	return cfg
}

// challenges builds the challenge service. The AI generator is attached
// when an LLM provider is configured and offline is false.
func (r *runtime) challenges(ctx context.Context, offline bool) *challenge.Service {
	cfg := r.challengeConfig()
	opts := []challenge.ServiceOption{
		challenge.WithLogger(logger.Component(r.log, "challenge")),
	}
	if !offline {
		provider, llmCfg, err := llm.NewProviderFromEnv(ctx, r.store.EventRepo(), r.log)
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			r.log.Debug().Msg("no LLM provider configured, challenges are offline only")
		case err != nil:
			r.log.Warn().Err(err).Msg("LLM provider unavailable, challenges are offline only")
		default:
			r.log.Debug().Str("provider", llmCfg.Provider).Str("model", provider.ModelID()).Msg("LLM provider ready")
			opts = append(opts, challenge.WithGenerator(challenge.NewLLMGenerator(provider, cfg)))
		}
	}
	return challenge.NewService(r.tracker, cfg, opts...)
}
