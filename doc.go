/*
Package dfasim simulates deterministic finite automata.

A definition (states Q, alphabet Σ, start state q0, accepting states F and a
total transition function δ) is loaded from a source, validated once and
compiled into a dense transition table. The resulting Engine answers any
number of acceptance queries, concurrently if needed.

# Sources

New resolves the source string to a loader:

  - binary.yaml, binary.json: a definition document
  - dfa_transitions.xlsx, dfa.csv: a transition table, first column holding
    the "-->" (start) and "*" (accepting) markers
  - a directory, optionally with "#id": a loam repository of frontmatter documents
  - redis://host:port/name: a definition published to the redis registry
  - bolt://catalog.db#name: a definition stored in a local bolt catalog

Use WithLoader to plug in anything else implementing ports.DefinitionLoader.

# Usage

	eng, err := dfasim.New(ctx, "dfa_transitions.xlsx")
	if err != nil {
		var defErr *domain.DefinitionError
		if errors.As(err, &defErr) {
			for _, k := range defErr.Missing() {
				log.Printf("missing δ(%s, %s)", k.State, k.Symbol)
			}
		}
		log.Fatal(err)
	}

	fmt.Println(eng.EvaluateString("101", false)) // Accepted

A symbol outside Σ is not an error: the input is simply Rejected. The empty
input is Accepted exactly when q0 is accepting.
*/
package dfasim
