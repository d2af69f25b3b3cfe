package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int       // id > After
	Before  int       // id < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match (LLM events only)
}

// AttemptData is one practiced character inside a reported text.
type AttemptData struct {
	Character string
	Success   bool
}

// StatRecord is the persisted counter row for one character.
type StatRecord struct {
	Character string `json:"character"`
	Attempts  int    `json:"attempts"`
	Successes int    `json:"successes"`
}

// AttemptRecord is a persisted attempt event.
type AttemptRecord struct {
	ID        int
	Timestamp time.Time
	Character string
	Success   bool
}

// PracticeRepo persists character statistics and the attempt log.
type PracticeRepo interface {
	// RecordAttempts upserts the counters and appends one event per attempt,
	// all stamped with at, in a single transaction.
	RecordAttempts(ctx context.Context, attempts []AttemptData, at time.Time) error

	// ListStats returns every stat ordered by attempts descending, then
	// character ascending.
	ListStats(ctx context.Context) ([]StatRecord, error)

	// ListAttemptedStats returns stats with at least one attempt, ordered by
	// character.
	ListAttemptedStats(ctx context.Context) ([]StatRecord, error)

	// RecentAttempts returns up to limit events, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error)

	// CountAttempts returns the number of logged events for character.
	CountAttempts(ctx context.Context, character string) (int, error)
}

// SnapshotData captures the practice state at a point in time.
type SnapshotData struct {
	Version int          `json:"version"`
	Stats   []StatRecord `json:"stats"`
}

// Snapshot represents a point-in-time capture of practice state.
type Snapshot struct {
	ID            int
	Timestamp     time.Time
	TotalAttempts int
	Data          SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot and sets its ID.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// List returns up to limit snapshots, newest first (0 = all).
	List(ctx context.Context, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with id, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
