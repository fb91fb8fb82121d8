package observability

import (
	"log/slog"

	"github.com/aretw0/dfasim/pkg/domain"
)

// LogHooks logs every evaluation at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(e *domain.EvaluationEvent) {
			attrs := []any{
				"definition", e.Definition,
				"symbols", e.Symbols,
				"result", e.Run.Result,
				"duration", e.Duration,
			}
			if e.Run.Reason != "" {
				attrs = append(attrs, "reason", e.Run.Reason)
			}
			if e.Run.Reason == domain.ReasonUnknownSymbol {
				attrs = append(attrs, "symbol", e.Run.Symbol, "position", e.Run.Position)
			}
			logger.Debug("Evaluated", attrs...)
		},
	}
}

// Compose merges hook sets; each callback runs in argument order.
func Compose(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var onEvaluate []func(*domain.EvaluationEvent)
	for _, s := range sets {
		if s.OnEvaluate != nil {
			onEvaluate = append(onEvaluate, s.OnEvaluate)
		}
	}

	var out domain.LifecycleHooks
	switch len(onEvaluate) {
	case 0:
	case 1:
		out.OnEvaluate = onEvaluate[0]
	default:
		out.OnEvaluate = func(e *domain.EvaluationEvent) {
			for _, fn := range onEvaluate {
				fn(e)
			}
		}
	}
	return out
}
