package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluate EventType = "evaluate"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// EvaluationEvent describes one finished evaluation.
type EvaluationEvent struct {
	EventBase
	Definition string        `json:"definition,omitempty"`
	Symbols    int           `json:"symbols"`
	Run        Run           `json:"run"`
	Traced     bool          `json:"traced,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the evaluating goroutine and must be safe for
// concurrent use, since the engine itself is.
type LifecycleHooks struct {
	OnEvaluate func(*EvaluationEvent)
}
