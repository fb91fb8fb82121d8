package loam

// DefinitionMetadata is the frontmatter of a definition document.
//
// The automaton fields are left untyped so that YAML scalars reach the weak
// decoder in pkg/adapters/file unchanged; a symbol written 1 becomes "1".
type DefinitionMetadata struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	States      any    `json:"states" mapstructure:"states"`
	Alphabet    any    `json:"alphabet" mapstructure:"alphabet"`
	Start       any    `json:"start" mapstructure:"start"`
	Accepting   any    `json:"accepting" mapstructure:"accepting"`
	Transitions any    `json:"transitions" mapstructure:"transitions"`
}

func (m DefinitionMetadata) raw() map[string]any {
	out := map[string]any{"name": m.Name}
	set := func(key string, v any) {
		if v != nil {
			out[key] = v
		}
	}
	set("states", m.States)
	set("alphabet", m.Alphabet)
	set("start", m.Start)
	set("accepting", m.Accepting)
	set("transitions", m.Transitions)
	return out
}
