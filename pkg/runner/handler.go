package runner

import (
	"context"

	"github.com/aretw0/dfasim/pkg/domain"
)

// Request is one word to evaluate.
type Request struct {
	// Input is the word as typed. It is split into one symbol per code point
	// unless Symbols is set.
	Input string `json:"input"`
	// Symbols overrides Input for alphabets with multi-character symbols.
	Symbols []string `json:"symbols,omitempty"`
	// Trace asks for the definition dump before this evaluation.
	Trace bool `json:"trace,omitempty"`
}

// Response is the answer to one Request.
type Response struct {
	Input    string              `json:"input"`
	Symbols  []string            `json:"symbols,omitempty"`
	Result   domain.Result       `json:"result"`
	Path     []string            `json:"path,omitempty"`
	Reason   domain.RejectReason `json:"reason,omitempty"`
	Symbol   string              `json:"symbol,omitempty"`
	Position *int                `json:"position,omitempty"`
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type IOHandler interface {
	// Input reads the next request. io.EOF ends the loop.
	Input(ctx context.Context) (Request, error)

	// Output presents one response.
	Output(ctx context.Context, resp Response) error

	// SystemOutput presents a meta-message (rejected line, notices).
	// This is distinct from result rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// Detailer is implemented by handlers that show the visited path and the
// rejection reason. The runner then records full runs for them.
type Detailer interface {
	Detailed() bool
}
