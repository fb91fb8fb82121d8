package domain

// Result is the outcome of evaluating an input against a definition.
type Result string

const (
	Accepted Result = "Accepted"
	Rejected Result = "Rejected"
)

// RejectReason explains why a run ended in Rejected.
type RejectReason string

const (
	// ReasonUnknownSymbol means an input symbol is not a member of the alphabet.
	ReasonUnknownSymbol RejectReason = "unknown_symbol"
	// ReasonNonAccepting means the run consumed all input and stopped outside F.
	ReasonNonAccepting RejectReason = "non_accepting"
)

// Run is the full record of one walk through the automaton.
type Run struct {
	Result Result `json:"result"`

	// Path lists the visited states, starting with q0.
	// On an unknown symbol it ends at the state where the walk stopped.
	Path []string `json:"path"`

	// Reason is empty for accepted runs.
	Reason RejectReason `json:"reason,omitempty"`

	// Position is the index of the offending symbol when Reason is ReasonUnknownSymbol.
	Position int `json:"position,omitempty"`

	// Symbol is the offending symbol when Reason is ReasonUnknownSymbol.
	Symbol string `json:"symbol,omitempty"`
}

// Accepted reports whether the run ended in an accepting state.
func (r Run) Accepted() bool {
	return r.Result == Accepted
}

// Final returns the last state of the path.
func (r Run) Final() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}
