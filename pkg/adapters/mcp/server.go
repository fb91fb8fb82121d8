package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
	"github.com/aretw0/dfasim/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefinitionURI names the resource holding the served definition.
const DefinitionURI = "dfasim://definition"

// EvaluateArgs are the arguments of the evaluate tool.
type EvaluateArgs struct {
	Input   string   `json:"input"`
	Symbols []string `json:"symbols,omitempty"`
}

// EvaluateResponse is the structured result of the evaluate tool.
type EvaluateResponse struct {
	Input    string              `json:"input" jsonschema_description:"The evaluated word"`
	Result   domain.Result       `json:"result" jsonschema_description:"Accepted or Rejected"`
	Path     []string            `json:"path" jsonschema_description:"Visited states, starting with the start state"`
	Reason   domain.RejectReason `json:"reason,omitempty" jsonschema_description:"unknown_symbol or non_accepting"`
	Symbol   string              `json:"symbol,omitempty" jsonschema_description:"The symbol outside the alphabet, if any"`
	Position *int                `json:"position,omitempty" jsonschema_description:"Index of that symbol"`
}

// Server wraps an evaluator and exposes it as an MCP Server.
type Server struct {
	engine    ports.Evaluator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Evaluator, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("dfasim-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: evaluate
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Decide whether the automaton accepts a word. The word is split into one symbol per character unless symbols is given."),
		mcp.WithString("input", mcp.Description("The word to evaluate (may be empty)")),
		mcp.WithArray("symbols",
			mcp.Description("Explicit symbol sequence, for alphabets with multi-character symbols"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: get_definition
	s.mcpServer.AddTool(mcp.NewTool("get_definition",
		mcp.WithDescription("Get the automaton definition (states, alphabet, start, accepting states, transitions)."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := s.definitionJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(text), nil
	})
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args EvaluateArgs) (EvaluateResponse, error) {
	symbols := args.Symbols
	if symbols == nil {
		if err := runner.CheckInputSize(args.Input); err != nil {
			s.logger.Warn("MCP Evaluate: Input rejected", "err", err, "size", len(args.Input))
			return EvaluateResponse{}, fmt.Errorf("input rejected: %w", err)
		}
		symbols = runtime.Symbols(args.Input)
	}

	run := s.engine.Run(symbols)
	resp := EvaluateResponse{
		Input:  args.Input,
		Result: run.Result,
		Path:   run.Path,
		Reason: run.Reason,
	}
	if run.Reason == domain.ReasonUnknownSymbol {
		pos := run.Position
		resp.Symbol = run.Symbol
		resp.Position = &pos
	}
	return resp, nil
}

func (s *Server) definitionJSON() (string, error) {
	b, err := json.Marshal(s.engine.Definition())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Server) registerResources() {
	// EXPOSE: dfasim://definition
	s.mcpServer.AddResource(mcp.NewResource(DefinitionURI, "Automaton Definition",
		mcp.WithMIMEType("application/json"),
	), s.readDefinition)
}

func (s *Server) readDefinition(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := s.definitionJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      DefinitionURI,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}
