package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDefinition is matched (via errors.Is) by every *DefinitionError.
var ErrInvalidDefinition = errors.New("invalid definition")

// ErrSourceUnavailable is matched (via errors.Is) by every *SourceUnavailableError.
var ErrSourceUnavailable = errors.New("definition source unavailable")

// ViolationKind names the invariant a definition breaks.
type ViolationKind string

const (
	ViolationNoStates          ViolationKind = "no_states"
	ViolationNoAlphabet        ViolationKind = "no_alphabet"
	ViolationEmptySymbol       ViolationKind = "empty_symbol"
	ViolationEmptyState        ViolationKind = "empty_state"
	ViolationNoStart           ViolationKind = "no_start_state"
	ViolationMultipleStart     ViolationKind = "multiple_start_states"
	ViolationUnknownStart      ViolationKind = "unknown_start_state"
	ViolationUnknownAccepting  ViolationKind = "unknown_accepting_state"
	ViolationMissingTransition ViolationKind = "missing_transition"
	ViolationUnknownSource     ViolationKind = "unknown_transition_state"
	ViolationUnknownSymbol     ViolationKind = "unknown_transition_symbol"
	ViolationUnknownTarget     ViolationKind = "unknown_transition_target"
)

// Violation is a single broken invariant.
type Violation struct {
	Kind   ViolationKind `json:"kind"`
	State  string        `json:"state,omitempty"`
	Symbol string        `json:"symbol,omitempty"`
	Detail string        `json:"detail,omitempty"`
}

func (v Violation) String() string {
	switch v.Kind {
	case ViolationNoStates:
		return "no states defined"
	case ViolationNoAlphabet:
		return "no input alphabet defined"
	case ViolationEmptySymbol:
		return "the alphabet contains an empty symbol"
	case ViolationEmptyState:
		return "the state set contains an empty state name"
	case ViolationNoStart:
		return "no start state defined"
	case ViolationMultipleStart:
		return fmt.Sprintf("only a single state may be the start state (found %s)", v.Detail)
	case ViolationUnknownStart:
		return fmt.Sprintf("start state %q is not a member of the state set", v.State)
	case ViolationUnknownAccepting:
		return fmt.Sprintf("accepting state %q is not a member of the state set", v.State)
	case ViolationMissingTransition:
		return fmt.Sprintf("missing transition: state %s with input %s", v.State, v.Symbol)
	case ViolationUnknownSource:
		return fmt.Sprintf("transition from unknown state %q", v.State)
	case ViolationUnknownSymbol:
		return fmt.Sprintf("transition from %q on symbol %q outside the alphabet", v.State, v.Symbol)
	case ViolationUnknownTarget:
		return fmt.Sprintf("transition (%s, %s) targets unknown state %q", v.State, v.Symbol, v.Detail)
	default:
		if v.Detail != "" {
			return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
		}
		return string(v.Kind)
	}
}

// DefinitionError reports every invariant a definition violates.
// It is returned at construction time only, never by Evaluate.
type DefinitionError struct {
	Violations []Violation
}

func (e *DefinitionError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("%s: %s", ErrInvalidDefinition, e.Violations[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d violations:\n", ErrInvalidDefinition, len(e.Violations))
	for i, v := range e.Violations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, v)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Is makes errors.Is(err, ErrInvalidDefinition) succeed.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// Missing returns every (state, symbol) pair without a transition.
func (e *DefinitionError) Missing() []TransitionKey {
	var keys []TransitionKey
	for _, v := range e.Violations {
		if v.Kind == ViolationMissingTransition {
			keys = append(keys, TransitionKey{State: v.State, Symbol: v.Symbol})
		}
	}
	return keys
}

// Has reports whether any violation is of the given kind.
func (e *DefinitionError) Has(kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Violations returns the violations carried by err if it is (or wraps) a *DefinitionError.
// Otherwise returns nil.
func Violations(err error) []Violation {
	var defErr *DefinitionError
	if errors.As(err, &defErr) {
		return defErr.Violations
	}
	return nil
}

// SourceUnavailableError means a loader could not locate the source it reads from
// (missing file, missing registry key). Loaders return it unwrapped so callers can
// tell "nothing to load" apart from "loaded something malformed".
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("the source '%s' was not found, please check the location", e.Source)
	}
	return fmt.Sprintf("the source '%s' was not found, please check the location: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSourceUnavailable) succeed.
func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
