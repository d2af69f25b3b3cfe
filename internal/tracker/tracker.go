// Package tracker records practice attempts and answers questions about
// per-character performance.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/morsely/internal/morse"
	"github.com/abhisek/morsely/internal/store"
)

// MaxHistory caps how many attempt events History returns.
const MaxHistory = 100

// Stat is the practice record for one character.
type Stat struct {
	Character string  `json:"character"`
	Attempts  int     `json:"attempts"`
	Successes int     `json:"successes"`
	Accuracy  float64 `json:"accuracy"`
}

// AttemptEvent is one entry of the attempt log.
type AttemptEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Character string    `json:"character"`
	Success   bool      `json:"success"`
}

// Tracker owns character statistics and the attempt log.
type Tracker struct {
	repo store.PracticeRepo
	now  func() time.Time
	log  zerolog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source used to stamp attempts.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// New creates a Tracker backed by repo.
func New(repo store.PracticeRepo, opts ...Option) *Tracker {
	t := &Tracker{
		repo: repo,
		now:  time.Now,
		log:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Report records one attempt for every alphabet symbol in text. Spaces and
// unsupported symbols are skipped. All attempts share one timestamp and are
// committed together or not at all.
func (t *Tracker) Report(ctx context.Context, text string, success bool) error {
	symbols := morse.Symbols(text)
	if len(symbols) == 0 {
		return nil
	}

	attempts := make([]store.AttemptData, len(symbols))
	for i, s := range symbols {
		attempts[i] = store.AttemptData{Character: s, Success: success}
	}

	if err := t.repo.RecordAttempts(ctx, attempts, t.now()); err != nil {
		return fmt.Errorf("record attempts: %w", err)
	}

	t.log.Debug().
		Int("characters", len(attempts)).
		Bool("success", success).
		Msg("practice reported")
	return nil
}

// WeakestCharacters returns up to n attempted characters with the lowest
// accuracy. Ties are broken alphabetically.
func (t *Tracker) WeakestCharacters(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	records, err := t.repo.ListAttemptedStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempted stats: %w", err)
	}
	return SelectWeakest(toStats(records), n), nil
}

// StatsSnapshot returns every character's stats, most practiced first.
func (t *Tracker) StatsSnapshot(ctx context.Context) ([]Stat, error) {
	records, err := t.repo.ListStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	return toStats(records), nil
}

// History returns the most recent attempt events, newest first. limit is
// clamped to [1, MaxHistory]; a non-positive limit means MaxHistory.
func (t *Tracker) History(ctx context.Context, limit int) ([]AttemptEvent, error) {
	if limit <= 0 || limit > MaxHistory {
		limit = MaxHistory
	}
	records, err := t.repo.RecentAttempts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	events := make([]AttemptEvent, len(records))
	for i, r := range records {
		events[i] = AttemptEvent{
			Timestamp: r.Timestamp,
			Character: r.Character,
			Success:   r.Success,
		}
	}
	return events, nil
}

// Accuracy returns successes/attempts as a percentage, or 0 without attempts.
func Accuracy(successes, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return float64(successes) / float64(attempts) * 100
}

func toStats(records []store.StatRecord) []Stat {
	stats := make([]Stat, len(records))
	for i, r := range records {
		stats[i] = Stat{
			Character: r.Character,
			Attempts:  r.Attempts,
			Successes: r.Successes,
			Accuracy:  Accuracy(r.Successes, r.Attempts),
		}
	}
	return stats
}
