package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, true},
		{"unavailable", &ErrProviderUnavailable{}, true},
		{"plain network", errors.New("connection reset"), true},
		{"canceled", context.Canceled, false},
		{"wrapped deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), false},
		{"max tokens", &ErrMaxTokensExceeded{}, false},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestContextLabels(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != UnknownPurpose {
		t.Errorf("PurposeFrom(empty) = %q, want %q", got, UnknownPurpose)
	}
	if got := RequestIDFrom(ctx); got != "" {
		t.Errorf("RequestIDFrom(empty) = %q, want empty", got)
	}

	ctx = WithRequestID(WithPurpose(ctx, "challenge-gen"), "req-1")
	if got := PurposeFrom(ctx); got != "challenge-gen" {
		t.Errorf("PurposeFrom = %q", got)
	}
	if got := RequestIDFrom(ctx); got != "req-1" {
		t.Errorf("RequestIDFrom = %q", got)
	}
}
