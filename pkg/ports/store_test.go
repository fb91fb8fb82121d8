package ports_test

import (
	"context"
	"sort"
	"testing"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
)

// MockCatalog is an in-memory implementation of DefinitionCatalog for testing purposes.
type MockCatalog struct {
	data map[string]domain.Definition
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		data: make(map[string]domain.Definition),
	}
}

func (m *MockCatalog) Save(ctx context.Context, name string, def *domain.Definition) error {
	// Deep copy to simulate serialization
	m.data[name] = def.Clone()
	return nil
}

func (m *MockCatalog) Get(ctx context.Context, name string) (*domain.Definition, error) {
	def, ok := m.data[name]
	if !ok {
		return nil, &domain.SourceUnavailableError{Source: name}
	}
	out := def.Clone()
	return &out, nil
}

func (m *MockCatalog) Delete(ctx context.Context, name string) error {
	delete(m.data, name)
	return nil
}

func (m *MockCatalog) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.data))
	for k := range m.data {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

func TestMockCatalogContract(t *testing.T) {
	ports.RunCatalogContract(t, NewMockCatalog())
}

func TestLoaderFunc(t *testing.T) {
	want := &domain.Definition{Name: "fn"}
	var loader ports.DefinitionLoader = ports.LoaderFunc(func(ctx context.Context) (*domain.Definition, error) {
		return want, nil
	})

	got, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected the same definition pointer")
	}
}
