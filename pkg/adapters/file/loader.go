package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.DefinitionLoader for YAML and JSON files.
// JSON is read through the YAML decoder, since every JSON document is valid YAML.
//
// Symbols that YAML would read as numbers with leading zeros (01, 007) must be
// quoted to survive as written.
type Loader struct {
	Path string
}

// NewLoader creates a loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load reads and decodes the file. It does not validate the definition.
func (l *Loader) Load(ctx context.Context) (*domain.Definition, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.SourceUnavailableError{Source: l.Path, Err: err}
		}
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	def, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.Path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(l.Path), filepath.Ext(l.Path))
	}
	return def, nil
}

// Unmarshal decodes a YAML or JSON document into a definition.
func Unmarshal(data []byte) (*domain.Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("empty document")
	}
	return Decode(raw)
}

// Decode weakly decodes an already parsed document (for example a frontmatter
// block) into a definition. Unknown keys are an error.
func Decode(raw map[string]any) (*domain.Definition, error) {
	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	def := doc.ToDefinition()
	return &def, nil
}

// Marshal encodes a definition as YAML.
func Marshal(def domain.Definition) ([]byte, error) {
	return yaml.Marshal(FromDefinition(def))
}

// Save writes def to path as YAML.
func Save(path string, def domain.Definition) error {
	data, err := Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to ensure definition directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write definition file: %w", err)
	}
	return nil
}
