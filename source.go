package dfasim

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/dfasim/pkg/adapters/bolt"
	"github.com/aretw0/dfasim/pkg/adapters/file"
	loamAdapter "github.com/aretw0/dfasim/pkg/adapters/loam"
	"github.com/aretw0/dfasim/pkg/adapters/redis"
	"github.com/aretw0/dfasim/pkg/adapters/table"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/ports"
	"github.com/aretw0/loam"
)

// Source schemes understood by Open.
const (
	SchemeRedis = "redis"
	SchemeBolt  = "bolt"
)

// Source is a parsed definition location.
type Source struct {
	Scheme string // "redis", "bolt" or empty for paths
	Path   string // file, directory, bolt file, or redis address
	Name   string // redis key, bolt entry, loam document id
	Raw    string

	// redis only
	Password string
	DB       int
}

// ParseSource understands:
//
//	binary.yaml, binary.json        definition document
//	dfa_transitions.xlsx, dfa.csv   transition table
//	./definitions[#id]              loam repository
//	redis://[:password@][host:port][/db]/name
//	bolt://path/to/catalog.db#name
func ParseSource(raw string) (Source, error) {
	if raw == "" {
		return Source{}, errors.New("source is required")
	}
	src := Source{Raw: raw}

	switch {
	case strings.HasPrefix(raw, SchemeRedis+"://"):
		u, err := url.Parse(raw)
		if err != nil {
			return Source{}, fmt.Errorf("invalid redis source: %w", err)
		}
		src.Scheme = SchemeRedis
		src.Path = u.Host
		if u.User != nil {
			src.Password, _ = u.User.Password()
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 {
			db, err := strconv.Atoi(parts[0])
			if err != nil {
				return Source{}, fmt.Errorf("invalid redis db %q", parts[0])
			}
			src.DB = db
			parts = parts[1:]
		}
		if len(parts) != 1 || parts[0] == "" {
			return Source{}, fmt.Errorf("redis source needs exactly one key: %s", raw)
		}
		src.Name = parts[0]
		return src, nil

	case strings.HasPrefix(raw, SchemeBolt+"://"):
		rest := strings.TrimPrefix(raw, SchemeBolt+"://")
		path, name, ok := strings.Cut(rest, "#")
		if !ok || path == "" || name == "" {
			return Source{}, fmt.Errorf("bolt source must look like bolt://path#name: %s", raw)
		}
		src.Scheme = SchemeBolt
		src.Path = path
		src.Name = name
		return src, nil
	}

	src.Path, src.Name, _ = strings.Cut(raw, "#")
	return src, nil
}

// String gives back the source as written.
func (s Source) String() string {
	return s.Raw
}

// Open builds the loader for a source. The closer releases any connection the
// loader holds and must be called once loading is done. redisOpts apply to
// redis sources only.
func Open(src Source, redisOpts ...redis.Option) (ports.DefinitionLoader, io.Closer, error) {
	switch src.Scheme {
	case SchemeRedis:
		catalog := redis.New(src.Path, src.Password, src.DB, redisOpts...)
		return catalog.Loader(src.Name), catalog, nil

	case SchemeBolt:
		catalog, err := bolt.OpenReadOnly(src.Path)
		if err != nil {
			return nil, nil, err
		}
		return catalog.Loader(src.Name), catalog, nil
	}

	switch strings.ToLower(filepath.Ext(src.Path)) {
	case ".yaml", ".yml", ".json":
		return file.NewLoader(src.Path), nopCloser{}, nil
	}
	if table.Supports(src.Path) {
		return table.NewLoader(src.Path), nopCloser{}, nil
	}

	absPath, err := filepath.Abs(src.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, &domain.SourceUnavailableError{Source: src.Path, Err: err}
		}
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("unsupported source %s: expected .yaml, .json, .csv, .xlsx or a directory", src.Path)
	}

	// Strict mode keeps numbers as json.Number so "0" and "1" symbols survive
	// as written. The engine never writes, so the repository is read-only.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	typedRepo := loam.NewTypedRepository[loamAdapter.DefinitionMetadata](repo)
	return loamAdapter.New(typedRepo, src.Name), nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
