package file

import "github.com/aretw0/dfasim/pkg/domain"

// Document is the on-disk shape of a definition file.
// It uses "mapstructure" tags so that YAML scalars (numeric states or symbols
// such as 0 and 1) are weakly decoded into strings.
type Document struct {
	Name        string                       `yaml:"name,omitempty" mapstructure:"name"`
	States      []string                     `yaml:"states" mapstructure:"states"`
	Alphabet    []string                     `yaml:"alphabet" mapstructure:"alphabet"`
	Start       string                       `yaml:"start" mapstructure:"start"`
	Accepting   []string                     `yaml:"accepting" mapstructure:"accepting"`
	Transitions map[string]map[string]string `yaml:"transitions" mapstructure:"transitions"`
}

// ToDefinition converts the document into a domain value.
func (d Document) ToDefinition() domain.Definition {
	return domain.Definition{
		Name:        d.Name,
		States:      d.States,
		Alphabet:    d.Alphabet,
		Start:       d.Start,
		Accepting:   d.Accepting,
		Transitions: d.Transitions,
	}.Clone()
}

// FromDefinition is the inverse of ToDefinition.
func FromDefinition(def domain.Definition) Document {
	c := def.Clone()
	return Document{
		Name:        c.Name,
		States:      c.States,
		Alphabet:    c.Alphabet,
		Start:       c.Start,
		Accepting:   c.Accepting,
		Transitions: c.Transitions,
	}
}
