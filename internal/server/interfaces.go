package server

import (
	"context"

	"github.com/abhisek/morsely/internal/challenge"
	"github.com/abhisek/morsely/internal/tracker"
)

// Practice is the subset of *tracker.Tracker the server needs.
type Practice interface {
	Report(ctx context.Context, text string, success bool) error
	WeakestCharacters(ctx context.Context, n int) ([]string, error)
	StatsSnapshot(ctx context.Context) ([]tracker.Stat, error)
	History(ctx context.Context, limit int) ([]tracker.AttemptEvent, error)
}

// Challenger hands out practice challenges. *challenge.Service satisfies it.
type Challenger interface {
	Next(ctx context.Context, focusCount int) (*challenge.Challenge, error)
}
