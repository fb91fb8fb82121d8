package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket holds every definition of a catalog file.
var Bucket = []byte("definitions")

// Catalog implements ports.DefinitionCatalog on a local bbolt file.
type Catalog struct {
	path string
	db   *bolt.DB
}

// Open opens (creating if needed) the catalog at path for reading and writing.
func Open(path string) (*Catalog, error) {
	return open(path, false)
}

// OpenReadOnly opens an existing catalog. A missing file is reported as an
// unavailable source, so a typo in a path does not silently create a database.
func OpenReadOnly(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.SourceUnavailableError{Source: path, Err: err}
		}
		return nil, err
	}
	return open(path, true)
}

func open(path string, readOnly bool) (*Catalog, error) {
	opts := &bolt.Options{
		Timeout:  time.Second,
		ReadOnly: readOnly,
	}
	db, err := bolt.Open(path, 0644, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	return &Catalog{path: path, db: db}, nil
}

// Close releases the file lock.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Save stores def as JSON under name.
func (c *Catalog) Save(ctx context.Context, name string, def *domain.Definition) error {
	js, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(Bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), js)
	})
}

// Get loads the definition stored under name.
func (c *Catalog) Get(ctx context.Context, name string) (*domain.Definition, error) {
	var def *domain.Definition
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(Bucket)
		if b == nil {
			return nil
		}
		bs := b.Get([]byte(name))
		if bs == nil {
			return nil
		}
		// bs is only valid inside the transaction; Unmarshal copies.
		var d domain.Definition
		if err := json.Unmarshal(bs, &d); err != nil {
			return fmt.Errorf("failed to unmarshal definition %s: %w", name, err)
		}
		def = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, &domain.SourceUnavailableError{Source: c.path + "#" + name}
	}
	return def, nil
}

// Delete removes name. A missing bucket or key is not an error.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(Bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	})
}

// List returns the stored names in key order.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, 16)
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(Bucket)
		if b == nil {
			return nil
		}
		cur := b.Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Loader binds one stored definition to ports.DefinitionLoader.
func (c *Catalog) Loader(name string) ports.DefinitionLoader {
	return ports.CatalogLoader{Catalog: c, Name: name}
}
