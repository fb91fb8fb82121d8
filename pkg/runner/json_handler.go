package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
//
// Each input line is either a request object ({"input":"101"},
// {"symbols":["go","stop"]}), a JSON string ("101") or raw text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

// Detailed makes the runner record full runs.
func (h *JSONHandler) Detailed() bool { return true }

// Input reads one line. Reads are not interruptible; ctx is checked between lines.
func (h *JSONHandler) Input(ctx context.Context) (Request, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Request{}, err
		}

		text, err := h.Reader.ReadString('\n')
		if text == "" && err != nil {
			return Request{}, err
		}

		line, serr := SanitizeInput(text)
		if serr != nil {
			_ = h.SystemOutput(ctx, serr.Error())
			continue
		}
		trimmed := strings.TrimSpace(line)
		if isStop(trimmed) {
			return Request{}, io.EOF
		}

		// 1. Request object
		if strings.HasPrefix(trimmed, "{") {
			var req Request
			if jerr := json.Unmarshal([]byte(trimmed), &req); jerr != nil {
				_ = h.SystemOutput(ctx, "invalid request: "+jerr.Error())
				continue
			}
			return req, nil
		}

		// 2. JSON string
		var val string
		if jerr := json.Unmarshal([]byte(trimmed), &val); jerr == nil {
			return Request{Input: val}, nil
		}

		// 3. Raw text, kept verbatim
		return Request{Input: line}, nil
	}
}

// Output writes the response as one JSON line.
func (h *JSONHandler) Output(ctx context.Context, resp Response) error {
	return h.Encoder.Encode(resp)
}

// SystemOutput writes {"error": msg}.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(map[string]string{"error": msg})
}
