package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Prompt is shown before each read in interactive mode.
const Prompt = "Enter a string: "

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader      *bufio.Reader
	Writer      io.Writer
	Interactive bool

	out       *termenv.Output
	inputChan chan inputResult
	stopped   chan struct{}
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithInteractive forces prompting on or off instead of detecting a terminal.
func WithInteractive(interactive bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Interactive = interactive
	}
}

// NewTextHandler creates a handler for standard text IO.
// Prompts are enabled when r is a terminal. Results are coloured when w
// supports it; on plain writers termenv degrades to unstyled text.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:      bufio.NewReader(r),
		Writer:      w,
		Interactive: isTerminal(r),
		out:         termenv.NewOutput(w),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (h *TextHandler) initPump(ctx context.Context) {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		h.stopped = make(chan struct{})
		go h.pump(ctx)
	})
}

// pump reads lines on its own goroutine so that Input can honour ctx.
// It stops once the context of the first Input call is done; the handler
// serves a single session.
func (h *TextHandler) pump(ctx context.Context) {
	defer close(h.stopped)
	defer close(h.inputChan)

	send := func(res inputResult) bool {
		select {
		case h.inputChan <- res:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		text, err := h.Reader.ReadString('\n')

		// A final line without terminator still counts.
		if text != "" && !send(inputResult{text: text}) {
			return
		}

		if err != nil {
			if err != io.EOF {
				send(inputResult{err: err})
			}
			return
		}
	}
}

// Input reads the next line. "exit" and "quit" end the loop like EOF does.
func (h *TextHandler) Input(ctx context.Context) (Request, error) {
	h.initPump(ctx)

	for {
		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		default:
			if h.Interactive {
				fmt.Fprint(h.Writer, Prompt)
			}
		}

		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return Request{}, io.EOF
			}
			if res.err != nil {
				return Request{}, res.err
			}
			if isStop(res.text) {
				return Request{}, io.EOF
			}

			clean, err := SanitizeInput(res.text)
			if err != nil {
				_ = h.SystemOutput(ctx, fmt.Sprintf("%v. Please try again.", err))
				continue
			}
			return Request{Input: clean}, nil
		}
	}
}

// Output prints the result line.
func (h *TextHandler) Output(ctx context.Context, resp Response) error {
	color := "#f87171"
	if resp.Result == domain.Accepted {
		color = "#4ade80"
	}
	label := h.out.String(string(resp.Result)).Foreground(h.out.Color(color))
	_, err := fmt.Fprintf(h.Writer, "Result for string '%s': %s\n", resp.Input, label)
	return err
}

// SystemOutput prints a notice line.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "Error: %s\n", msg)
	return err
}
