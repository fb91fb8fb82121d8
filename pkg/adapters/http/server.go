package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/dfasim/internal/presentation/graph"
	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
	"github.com/aretw0/dfasim/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves one compiled definition over HTTP.
type Server struct {
	Engine  ports.Evaluator
	Version string
	Logger  *slog.Logger

	gatherer prometheus.Gatherer
}

// Option configures the Server.
type Option func(*Server)

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = v
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts GET /metrics for the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Evaluator, opts ...Option) http.Handler {
	s := &Server{
		Engine:  engine,
		Version: "dev",
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Post("/evaluate", s.Evaluate)
	r.Get("/definition", s.GetDefinition)
	r.Get("/graph", s.GetGraph)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Evaluate handles the POST /evaluate request.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body runner.Request
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Evaluate: Invalid request body", "err", err)
		return
	}

	symbols := body.Symbols
	if symbols == nil {
		if err := runner.CheckInputSize(body.Input); err != nil {
			http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
			s.Logger.Warn("Evaluate: Input rejected", "err", err, "size", len(body.Input))
			return
		}
		symbols = runtime.Symbols(body.Input)
	}

	resp := runner.Response{Input: body.Input, Symbols: body.Symbols}

	// The trace dump goes to the engine's trace writer, not the response.
	// Traced requests answer with the bare result.
	if body.Trace {
		resp.Result = s.Engine.Evaluate(symbols, true)
		writeJSON(w, s.Logger, resp)
		return
	}

	run := s.Engine.Run(symbols)
	resp.Result = run.Result
	resp.Path = run.Path
	resp.Reason = run.Reason
	if run.Reason == domain.ReasonUnknownSymbol {
		pos := run.Position
		resp.Symbol = run.Symbol
		resp.Position = &pos
	}
	writeJSON(w, s.Logger, resp)
}

// GetDefinition handles the GET /definition request.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, s.Engine.Definition())
}

// GetGraph handles the GET /graph request. ?input=101 highlights that run.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.RunOverlay
	if r.URL.Query().Has("input") {
		run := s.Engine.Run(runtime.Symbols(r.URL.Query().Get("input")))
		overlay = &graph.RunOverlay{Path: run.Path}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(s.Engine.Definition(), overlay))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	def := s.Engine.Definition()
	writeJSON(w, s.Logger, map[string]any{
		"app":        "dfasim-http",
		"version":    s.Version,
		"definition": def.Name,
		"states":     len(def.States),
		"symbols":    len(def.Alphabet),
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "err", err)
	}
}

// ListenAndServe runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	}
}
