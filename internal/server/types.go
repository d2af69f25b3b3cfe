package server

import "github.com/abhisek/morsely/internal/tracker"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type TranslateRequest struct {
	Text string `json:"text"`
}

type TranslateResponse struct {
	Morse string `json:"morse"`
}

type DecodeRequest struct {
	Morse string `json:"morse"`
}

type DecodeResponse struct {
	Text string `json:"text"`
}

type ReportRequest struct {
	Text    string `json:"text"`
	Success *bool  `json:"success"`
}

type StatsResponse struct {
	Stats []tracker.Stat `json:"stats"`
}

type HistoryResponse struct {
	Events []tracker.AttemptEvent `json:"events"`
}

type WeakestResponse struct {
	Characters []string `json:"characters"`
}

type ChallengeRequest struct {
	FocusCount int `json:"focus_count"`
}

type KeyerRequest struct {
	DurationsMs []int64 `json:"durations_ms"`
	ThresholdMs int64   `json:"threshold_ms"`
}

type KeyerResponse struct {
	Pattern string `json:"pattern"`
	Text    string `json:"text"`
}

// Tone is one key-down interval in milliseconds from the start.
type Tone struct {
	StartMs    int64 `json:"start_ms"`
	DurationMs int64 `json:"duration_ms"`
}

type TimingResponse struct {
	UnitMs int64  `json:"unit_ms"`
	Tones  []Tone `json:"tones"`
}
