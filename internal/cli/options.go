package cli

import (
	"github.com/aretw0/dfasim/internal/config"
	"github.com/aretw0/dfasim/pkg/domain"
)

// Options carries everything a command needs to build and drive an engine.
// Flags are merged over config values before it is filled.
type Options struct {
	Source string
	Debug  bool
	Trace  bool
	JSON   bool
	Quiet  bool // no banner, no closing summary

	// Hooks are installed next to the debug log hooks.
	Hooks []domain.LifecycleHooks

	Config config.Config
}
