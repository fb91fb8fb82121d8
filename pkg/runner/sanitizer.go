package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// DefaultMaxInputSize is 64KB
	DefaultMaxInputSize = 64 * 1024
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "DFASIM_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
)

// SanitizeInput drops the line terminator and enforces the size limit.
// Everything else is kept verbatim: control characters and whitespace are
// ordinary symbols to the engine, which rejects them unless the alphabet
// holds them.
func SanitizeInput(input string) (string, error) {
	// 1. Line terminator (\n or \r\n)
	input = strings.TrimSuffix(input, "\n")
	input = strings.TrimSuffix(input, "\r")

	// 2. Enforce Size Limit
	if err := CheckInputSize(input); err != nil {
		return "", err
	}
	return input, nil
}

// CheckInputSize enforces the size limit on a word that did not arrive as a
// line (HTTP and MCP bodies), where no terminator must be trimmed.
func CheckInputSize(input string) error {
	limit := getMaxInputSize()
	if len(input) > limit {
		// Rejected rather than truncated so a truncated word is never evaluated.
		return fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	return nil
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

// isStop reports whether a line ends the interactive loop.
func isStop(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}
