package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/unit-converter/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Evaluator answers a single request line.
type Evaluator interface {
	Evaluate(input string) (domain.Result, error)
}

// ConvertResponse is the JSON body of GET /convert.
type ConvertResponse struct {
	Input   string         `json:"input"`
	Outcome domain.Outcome `json:"outcome"`
	Message string         `json:"message"`
}

type errorResponse struct {
	Input string `json:"input"`
	Error string `json:"error"`
}

// Server exposes health, readiness, metrics and conversion HTTP endpoints.
type Server struct {
	httpServer *http.Server
	evaluator  Evaluator
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and
// /convert routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, evaluator Evaluator, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		evaluator: evaluator,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /convert", s.handleConvert)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("q")

	res, err := s.evaluator.Evaluate(input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNumberFormat) {
			status = http.StatusBadRequest
		} else {
			s.logger.Error("convert request failed", "input", input, "error", err)
		}
		sharedobs.WriteJSON(w, status, errorResponse{Input: input, Error: err.Error()})
		return
	}

	sharedobs.WriteJSON(w, http.StatusOK, ConvertResponse{
		Input:   input,
		Outcome: res.Outcome,
		Message: res.Message(),
	})
}
