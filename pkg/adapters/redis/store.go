package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key the catalog writes.
const DefaultPrefix = "dfasim:definition:"

// Catalog implements ports.DefinitionCatalog using Redis.
// Definitions are stored as JSON strings; a sorted set indexes the names.
type Catalog struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Catalog)

// WithTTL sets the expiration for stored definitions.
func WithTTL(ttl time.Duration) Option {
	return func(c *Catalog) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Catalog) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// New creates a new Redis catalog with options.
func New(address, password string, db int, opts ...Option) *Catalog {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis catalog from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Catalog {
	c := &Catalog{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Catalog) key(name string) string {
	return c.prefix + name
}

func (c *Catalog) indexKey() string {
	return c.prefix + "index"
}

func (c *Catalog) revisionKey(name string) string {
	return c.prefix + "rev:" + name
}

// Save stores the definition as JSON.
func (c *Catalog) Save(ctx context.Context, name string, def *domain.Definition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	pipe := c.client.Pipeline()

	// 1. Save JSON with TTL (0 means no expiration)
	pipe.Set(ctx, c.key(name), data, c.ttl)

	// 2. Add to Index (ZSET). Score = expiry, or far future without TTL.
	score := float64(time.Now().Add(c.ttl).Unix())
	if c.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, c.indexKey(), backend.Z{
		Score:  score,
		Member: name,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves a definition. A missing key is reported as an unavailable source.
func (c *Catalog) Get(ctx context.Context, name string) (*domain.Definition, error) {
	val, err := c.client.Get(ctx, c.key(name)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, &domain.SourceUnavailableError{Source: "redis:" + c.key(name)}
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var def domain.Definition
	if err := json.Unmarshal([]byte(val), &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definition: %w", err)
	}
	return &def, nil
}

// Delete removes the definition and its index entry.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	pipe := c.client.Pipeline()

	pipe.Del(ctx, c.key(name), c.revisionKey(name))
	pipe.ZRem(ctx, c.indexKey(), name)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns stored names, pruning entries whose TTL has passed.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := c.client.ZRemRangeByScore(ctx, c.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired definitions: %w", err)
	}

	names, err := c.client.ZRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}
	return names, nil
}

// Revision returns how many times name has been published (0 if never).
func (c *Catalog) Revision(ctx context.Context, name string) (int64, error) {
	rev, err := c.client.Get(ctx, c.revisionKey(name)).Int64()
	if err == backend.Nil {
		return 0, nil
	}
	return rev, err
}

// Publish saves def under name while holding the name's lock and bumps its
// revision. Concurrent publishers of the same name are serialized.
func (c *Catalog) Publish(ctx context.Context, name string, def *domain.Definition) (int64, error) {
	unlock, err := NewLocker(c.client, c.prefix).Lock(ctx, name, 10*time.Second)
	if err != nil {
		return 0, err
	}
	defer func() { _ = unlock(context.WithoutCancel(ctx)) }()

	if err := c.Save(ctx, name, def); err != nil {
		return 0, err
	}
	rev, err := c.client.Incr(ctx, c.revisionKey(name)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to bump revision: %w", err)
	}
	return rev, nil
}

// Loader binds one stored definition to ports.DefinitionLoader.
func (c *Catalog) Loader(name string) ports.DefinitionLoader {
	return ports.CatalogLoader{Catalog: c, Name: name}
}

// Close closes the redis client.
func (c *Catalog) Close() error {
	return c.client.Close()
}
