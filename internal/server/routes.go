package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID, s.logRequests, s.recordMetrics)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/translate", s.handleTranslate).Methods(http.MethodPost)
	r.HandleFunc("/decode", s.handleDecode).Methods(http.MethodPost)
	r.HandleFunc("/keyer", s.handleKeyer).Methods(http.MethodPost)
	r.HandleFunc("/timing", s.handleTiming).Methods(http.MethodGet)

	r.HandleFunc("/report", s.handleReport).Methods(http.MethodPost)
	r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)
	r.HandleFunc("/weakest", s.handleWeakest).Methods(http.MethodGet)
	r.HandleFunc("/challenge", s.handleChallenge).Methods(http.MethodPost)

	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}
