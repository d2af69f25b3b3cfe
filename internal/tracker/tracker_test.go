package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/morsely/internal/store"
)

func newTestTracker(t *testing.T, opts ...Option) (*Tracker, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), store.Options{DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s.PracticeRepo(), opts...), s
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestReportCountsEverySymbol(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()

	if err := tr.Report(ctx, "hello world", true); err != nil {
		t.Fatalf("report: %v", err)
	}
	if err := tr.Report(ctx, "Hi!", false); err != nil {
		t.Fatalf("report: %v", err)
	}

	stats, err := tr.StatsSnapshot(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	byChar := map[string]Stat{}
	for _, st := range stats {
		byChar[st.Character] = st
	}

	if got := byChar["L"]; got.Attempts != 3 || got.Successes != 3 {
		t.Errorf("L = %+v, want 3/3", got)
	}
	if got := byChar["H"]; got.Attempts != 2 || got.Successes != 1 || got.Accuracy != 50 {
		t.Errorf("H = %+v, want 1/2 at 50%%", got)
	}
	if _, ok := byChar["!"]; ok {
		t.Error("unsupported symbol should not be tracked")
	}
	if _, ok := byChar[" "]; ok {
		t.Error("space should not be tracked")
	}

	// The event log agrees with the counters.
	for ch, st := range byChar {
		n, err := s.PracticeRepo().CountAttempts(ctx, ch)
		if err != nil {
			t.Fatalf("count %s: %v", ch, err)
		}
		if n != st.Attempts {
			t.Errorf("%s: %d events, %d attempts", ch, n, st.Attempts)
		}
		if st.Successes > st.Attempts {
			t.Errorf("%s: successes %d > attempts %d", ch, st.Successes, st.Attempts)
		}
	}
}

func TestReportSharesTimestamp(t *testing.T) {
	at := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	tr, _ := newTestTracker(t, WithClock(fixedClock(at)))
	ctx := context.Background()

	if err := tr.Report(ctx, "AB", false); err != nil {
		t.Fatalf("report: %v", err)
	}

	events, err := tr.History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	want := []AttemptEvent{
		{Timestamp: at, Character: "B", Success: false},
		{Timestamp: at, Character: "A", Success: false},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestReportWithoutSymbolsIsNoop(t *testing.T) {
	repo := &failingRepo{err: errors.New("must not be called")}
	tr := New(repo)

	for _, text := range []string{"", "   ", "!!! @@@"} {
		if err := tr.Report(context.Background(), text, true); err != nil {
			t.Errorf("Report(%q) = %v, want nil", text, err)
		}
	}
	if repo.recordCalls != 0 {
		t.Errorf("RecordAttempts called %d times, want 0", repo.recordCalls)
	}
}

func TestReportSurfacesStoreError(t *testing.T) {
	boom := errors.New("disk full")
	tr := New(&failingRepo{err: boom})

	err := tr.Report(context.Background(), "SOS", true)
	if !errors.Is(err, boom) {
		t.Fatalf("Report error = %v, want wrapped %v", err, boom)
	}
}

func TestWeakestCharacters(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// A: 1/2, B: 0/1, C: 1/1, D: 1/2
	for _, r := range []struct {
		text    string
		success bool
	}{
		{"A", true}, {"A", false},
		{"B", false},
		{"C", true},
		{"D", false}, {"D", true},
	} {
		if err := tr.Report(ctx, r.text, r.success); err != nil {
			t.Fatalf("report: %v", err)
		}
	}

	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{}},
		{-3, []string{}},
		{1, []string{"B"}},
		{3, []string{"B", "A", "D"}},
		{10, []string{"B", "A", "D", "C"}},
	}
	for _, tt := range tests {
		got, err := tr.WeakestCharacters(ctx, tt.n)
		if err != nil {
			t.Fatalf("weakest(%d): %v", tt.n, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("weakest(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}

func TestWeakestCharactersEmpty(t *testing.T) {
	tr, _ := newTestTracker(t)
	got, err := tr.WeakestCharacters(context.Background(), 5)
	if err != nil {
		t.Fatalf("weakest: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("weakest = %#v, want empty non-nil slice", got)
	}
}

func TestSelectWeakestExactRatios(t *testing.T) {
	stats := []Stat{
		{Character: "X", Attempts: 3, Successes: 1}, // 0.333...
		{Character: "Y", Attempts: 6, Successes: 2}, // 0.333...
		{Character: "Z", Attempts: 10, Successes: 3},
		{Character: "W", Attempts: 0, Successes: 0},
	}
	got := SelectWeakest(stats, 5)
	want := []string{"Z", "X", "Y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectWeakest mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsSnapshotOrder(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for _, text := range []string{"EEE", "T", "A"} {
		if err := tr.Report(ctx, text, true); err != nil {
			t.Fatalf("report: %v", err)
		}
	}
	stats, err := tr.StatsSnapshot(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var got []string
	for _, s := range stats {
		got = append(got, s.Character)
	}
	if diff := cmp.Diff([]string{"E", "A", "T"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if stats[0].Accuracy != 100 {
		t.Errorf("E accuracy = %v, want 100", stats[0].Accuracy)
	}
}

func TestHistoryClampsLimit(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	tr, _ := newTestTracker(t, WithClock(clock))
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		if err := tr.Report(ctx, "AB", i%2 == 0); err != nil {
			t.Fatalf("report %d: %v", i, err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{0, 100},
		{-1, 100},
		{1, 1},
		{20, 20},
		{500, 100},
	}
	for _, tt := range tests {
		events, err := tr.History(ctx, tt.limit)
		if err != nil {
			t.Fatalf("history(%d): %v", tt.limit, err)
		}
		if len(events) != tt.want {
			t.Errorf("history(%d) returned %d events, want %d", tt.limit, len(events), tt.want)
		}
	}

	events, err := tr.History(ctx, 3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.After(events[i-1].Timestamp) {
			t.Fatalf("history not newest first: %v", events)
		}
	}
	if events[0].Character != "B" || !events[0].Timestamp.Equal(base.Add(60*time.Second)) {
		t.Errorf("newest event = %+v", events[0])
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(0, 0); got != 0 {
		t.Errorf("Accuracy(0,0) = %v, want 0", got)
	}
	if got := Accuracy(1, 4); got != 25 {
		t.Errorf("Accuracy(1,4) = %v, want 25", got)
	}
}

// failingRepo is a PracticeRepo whose every call fails with err.
type failingRepo struct {
	err         error
	recordCalls int
}

func (r *failingRepo) RecordAttempts(context.Context, []store.AttemptData, time.Time) error {
	r.recordCalls++
	return r.err
}

func (r *failingRepo) ListStats(context.Context) ([]store.StatRecord, error) {
	return nil, r.err
}

func (r *failingRepo) ListAttemptedStats(context.Context) ([]store.StatRecord, error) {
	return nil, r.err
}

func (r *failingRepo) RecentAttempts(context.Context, int) ([]store.AttemptRecord, error) {
	return nil, r.err
}

func (r *failingRepo) CountAttempts(context.Context, string) (int, error) {
	return 0, r.err
}
