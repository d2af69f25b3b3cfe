// Package progress captures point-in-time copies of the practice
// statistics so learners can see how their accuracy moves over time.
package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/morsely/internal/store"
	"github.com/abhisek/morsely/internal/tracker"
)

// snapshotVersion is bumped when SnapshotData changes shape.
const snapshotVersion = 1

// StatsSource supplies the statistics to capture. *tracker.Tracker
// satisfies it.
type StatsSource interface {
	StatsSnapshot(ctx context.Context) ([]tracker.Stat, error)
}

// Recorder saves snapshots and prunes old ones.
type Recorder struct {
	stats StatsSource
	repo  store.SnapshotRepo
	keep  int
	now   func() time.Time
	log   zerolog.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the capture timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithLogger sets the recorder logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Recorder) { r.log = l }
}

// NewRecorder returns a Recorder keeping at most keep snapshots. keep <= 0
// disables pruning.
func NewRecorder(stats StatsSource, repo store.SnapshotRepo, keep int, opts ...Option) *Recorder {
	r := &Recorder{
		stats: stats,
		repo:  repo,
		keep:  keep,
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Capture stores the current statistics as a new snapshot, then prunes.
func (r *Recorder) Capture(ctx context.Context) (*store.Snapshot, error) {
	stats, err := r.stats.StatsSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}

	snap := &store.Snapshot{
		Timestamp: r.now().UTC(),
		Data:      store.SnapshotData{Version: snapshotVersion, Stats: make([]store.StatRecord, 0, len(stats))},
	}
	for _, s := range stats {
		snap.TotalAttempts += s.Attempts
		snap.Data.Stats = append(snap.Data.Stats, store.StatRecord{
			Character: s.Character,
			Attempts:  s.Attempts,
			Successes: s.Successes,
		})
	}

	if err := r.repo.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	if r.keep > 0 {
		if err := r.repo.Prune(ctx, r.keep); err != nil {
			return nil, fmt.Errorf("prune snapshots: %w", err)
		}
	}

	r.log.Info().
		Int("id", snap.ID).
		Int("characters", len(snap.Data.Stats)).
		Int("total_attempts", snap.TotalAttempts).
		Msg("progress snapshot captured")
	return snap, nil
}

// Delta is the change in one character's record between two snapshots.
type Delta struct {
	Character     string  `json:"character"`
	Attempts      int     `json:"attempts"`
	AccuracyDelta float64 `json:"accuracy_delta"`
}

// Compare returns per-character changes from prev to cur, sorted by
// character. Characters untouched between the two are omitted. A nil prev
// is treated as empty.
func Compare(prev, cur *store.Snapshot) []Delta {
	before := map[string]store.StatRecord{}
	if prev != nil {
		for _, s := range prev.Data.Stats {
			before[s.Character] = s
		}
	}

	var out []Delta
	if cur == nil {
		return out
	}
	for _, s := range cur.Data.Stats {
		p := before[s.Character]
		if s.Attempts == p.Attempts {
			continue
		}
		out = append(out, Delta{
			Character:     s.Character,
			Attempts:      s.Attempts - p.Attempts,
			AccuracyDelta: tracker.Accuracy(s.Successes, s.Attempts) - tracker.Accuracy(p.Successes, p.Attempts),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Character < out[j].Character })
	return out
}
