package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/abhisek/morsely/internal/llm"
	"github.com/abhisek/morsely/internal/morse"
)

const maxBodyBytes = 1 << 20

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleTranslate handles POST /translate
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, TranslateResponse{Morse: morse.Encode(req.Text)})
}

// handleDecode handles POST /decode
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, DecodeResponse{Text: morse.Decode(req.Morse)})
}

// handleKeyer handles POST /keyer
func (s *Server) handleKeyer(w http.ResponseWriter, r *http.Request) {
	var req KeyerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ThresholdMs < 0 {
		writeError(w, http.StatusBadRequest, "threshold_ms must not be negative")
		return
	}
	presses := make([]time.Duration, len(req.DurationsMs))
	for i, ms := range req.DurationsMs {
		if ms < 0 {
			writeError(w, http.StatusBadRequest, "durations_ms must not be negative")
			return
		}
		presses[i] = time.Duration(ms) * time.Millisecond
	}

	pattern := morse.Classify(presses, time.Duration(req.ThresholdMs)*time.Millisecond)
	writeJSON(w, http.StatusOK, KeyerResponse{Pattern: pattern, Text: morse.Decode(pattern)})
}

// handleTiming handles GET /timing?text=<text>&unit_ms=<ms>
func (s *Server) handleTiming(w http.ResponseWriter, r *http.Request) {
	unit := morse.DefaultUnit
	if v := r.URL.Query().Get("unit_ms"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			writeError(w, http.StatusBadRequest, "unit_ms must be a positive integer")
			return
		}
		unit = time.Duration(ms) * time.Millisecond
	}

	plan := morse.ScheduleText(r.URL.Query().Get("text"), unit)
	tones := make([]Tone, len(plan))
	for i, t := range plan {
		tones[i] = Tone{StartMs: t.Start.Milliseconds(), DurationMs: t.Duration.Milliseconds()}
	}
	writeJSON(w, http.StatusOK, TimingResponse{UnitMs: unit.Milliseconds(), Tones: tones})
}

// handleReport handles POST /report
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Success == nil {
		writeError(w, http.StatusBadRequest, "success is required")
		return
	}
	if err := s.practice.Report(r.Context(), req.Text, *req.Success); err != nil {
		s.internalError(w, r, err)
		return
	}
	if n := len(morse.Symbols(req.Text)); n > 0 {
		s.metrics.ObserveAttempts(n, *req.Success)
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStats handles GET /stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.practice.StatsSnapshot(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{Stats: stats})
}

// handleHistory handles GET /history?limit=<n>
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := intQuery(w, r, "limit", 0)
	if !ok {
		return
	}
	events, err := s.practice.History(r.Context(), limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Events: events})
}

// handleWeakest handles GET /weakest?n=<n>
func (s *Server) handleWeakest(w http.ResponseWriter, r *http.Request) {
	n, ok := intQuery(w, r, "n", s.config.WeakestCount)
	if !ok {
		return
	}
	chars, err := s.practice.WeakestCharacters(r.Context(), n)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, WeakestResponse{Characters: chars})
}

// handleChallenge handles POST /challenge. The body is optional.
func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	if s.challenges == nil {
		writeError(w, http.StatusServiceUnavailable, "challenges are not available")
		return
	}

	var req ChallengeRequest
	if r.ContentLength != 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}
	if req.FocusCount < 0 {
		writeError(w, http.StatusBadRequest, "focus_count must not be negative")
		return
	}

	ch, err := s.challenges.Next(r.Context(), req.FocusCount)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.metrics.ObserveChallenge(string(ch.Source))
	writeJSON(w, http.StatusOK, ch)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	id := llm.RequestIDFrom(r.Context())
	s.logger.Error().Err(err).Str("request_id", id).Str("path", r.URL.Path).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

// decodeBody parses a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := "invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		writeError(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

// intQuery reads an integer query parameter, writing a 400 when it is not
// a number.
func intQuery(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, key+" must be an integer")
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
