package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/dfasim"
	"github.com/aretw0/dfasim/internal/config"
	"github.com/aretw0/dfasim/internal/logging"
	"github.com/aretw0/dfasim/pkg/adapters/redis"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/observability"
)

// DefaultSourceNames are probed, in order, when no source is given.
// dfa_transitions.xlsx is the conventional name of a transition workbook.
var DefaultSourceNames = []string{
	"dfa_transitions.xlsx",
	"dfa_transitions.csv",
	"dfa.yaml",
	"dfa.yml",
	"dfa.json",
}

// repositoryPatterns are the documents that make dir usable as a loam repository.
var repositoryPatterns = []string{"*.md", "*.json", "*.yaml", "*.yml"}

// DefaultSource picks the definition to use in dir: the first existing
// DefaultSourceNames entry, or dir itself when it holds loam documents.
func DefaultSource(dir string) (string, error) {
	for _, name := range DefaultSourceNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	for _, pattern := range repositoryPatterns {
		if matches, _ := filepath.Glob(filepath.Join(dir, pattern)); len(matches) > 0 {
			return dir, nil
		}
	}
	return "", &domain.SourceUnavailableError{
		Source: dir,
		Err: fmt.Errorf("no definition given and none of %s found; pass --source",
			strings.Join(DefaultSourceNames, ", ")),
	}
}

// ResolveSource parses raw, falling back to the working directory, and fills
// a host-less redis source from the redis configuration.
func ResolveSource(raw string, cfg config.RedisConfig) (dfasim.Source, error) {
	if raw == "" {
		wd, err := os.Getwd()
		if err != nil {
			return dfasim.Source{}, err
		}
		raw, err = DefaultSource(wd)
		if err != nil {
			return dfasim.Source{}, err
		}
	}
	src, err := dfasim.ParseSource(raw)
	if err != nil {
		return dfasim.Source{}, err
	}
	if src.Scheme == dfasim.SchemeRedis && src.Path == "" {
		src.Path = cfg.Addr
		if src.Password == "" {
			src.Password = cfg.Password
		}
		if src.DB == 0 {
			src.DB = cfg.DB
		}
	}
	return src, nil
}

// CreateEngine initializes an engine with standard CLI conventions.
func CreateEngine(ctx context.Context, opts Options, logger *slog.Logger, extra ...dfasim.Option) (*dfasim.Engine, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	src, err := ResolveSource(opts.Source, opts.Config.Redis)
	if err != nil {
		return nil, err
	}

	loader, closer, err := dfasim.Open(src, redis.WithPrefix(opts.Config.Redis.Prefix))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	engineOpts := []dfasim.Option{
		dfasim.WithLoader(loader),
		dfasim.WithLogger(logger),
	}
	hooks := opts.Hooks
	if opts.Debug {
		hooks = append([]domain.LifecycleHooks{observability.LogHooks(logger)}, hooks...)
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, dfasim.WithLifecycleHooks(observability.Compose(hooks...)))
	}
	engineOpts = append(engineOpts, extra...)

	engine, err := dfasim.New(ctx, src.String(), engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", src, err)
	}
	logger.Debug("Engine ready", "source", src.String(), "engine", engine.String())
	return engine, nil
}

