package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/dfasim/pkg/domain"
)

// Catalog implements ports.DefinitionCatalog in memory.
// Safe for concurrent use.
type Catalog struct {
	data map[string]domain.Definition
	mu   sync.RWMutex
}

// NewCatalog creates a new in-memory catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		data: make(map[string]domain.Definition),
	}
}

// Save stores a deep copy of def.
func (c *Catalog) Save(ctx context.Context, name string, def *domain.Definition) error {
	copied := def.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[name] = copied
	return nil
}

// Get returns a copy so callers can't mutate catalog state through the pointer.
func (c *Catalog) Get(ctx context.Context, name string) (*domain.Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.data[name]
	if !ok {
		return nil, &domain.SourceUnavailableError{Source: "memory:" + name}
	}
	ret := def.Clone()
	return &ret, nil
}

// Delete removes the entry.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, name)
	return nil
}

// List returns the stored names, sorted.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.data))
	for name := range c.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
