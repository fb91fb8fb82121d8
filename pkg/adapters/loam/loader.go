package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/dfasim/pkg/adapters/file"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts a Loam repository of definition documents to ports.DefinitionLoader.
//
// Each document (start.md, binary.yaml, ...) holds one definition in its
// frontmatter; the markdown body is free prose. A document is addressed by its
// ID without extension.
type Loader struct {
	Repo *loam.TypedRepository[DefinitionMetadata]
	ID   string
}

// New creates a new Loam adapter. An empty id selects the only document of
// the repository.
func New(repo *loam.TypedRepository[DefinitionMetadata], id string) *Loader {
	return &Loader{
		Repo: repo,
		ID:   trimExtension(id),
	}
}

// Load finds the document and decodes its frontmatter.
func (l *Loader) Load(ctx context.Context) (*domain.Definition, error) {
	docs, err := l.index(ctx)
	if err != nil {
		return nil, err
	}

	id := l.ID
	if id == "" {
		if len(docs) != 1 {
			return nil, fmt.Errorf("repository holds %d definitions, choose one by id", len(docs))
		}
		for only := range docs {
			id = only
		}
	}

	meta, ok := docs[id]
	if !ok {
		return nil, &domain.SourceUnavailableError{Source: "loam:" + id}
	}

	def, err := file.Decode(meta.raw())
	if err != nil {
		return nil, fmt.Errorf("failed to decode definition %s: %w", id, err)
	}
	if def.Name == "" {
		def.Name = id
	}
	return def, nil
}

// List returns the IDs of every definition document, sorted.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	docs, err := l.index(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// index maps normalized IDs to metadata, rejecting collisions such as
// binary.md and binary.yaml both claiming "binary".
func (l *Loader) index(ctx context.Context) (map[string]DefinitionMetadata, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	out := make(map[string]DefinitionMetadata, len(docs))
	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existing, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		seen[id] = doc.ID
		out[id] = doc.Data
	}
	return out, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
