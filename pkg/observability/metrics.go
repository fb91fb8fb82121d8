package observability

import (
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records evaluation counters and latencies.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Rejections  *prometheus.CounterVec
	Symbols     prometheus.Histogram
	Duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// Pass prometheus.DefaultRegisterer to expose them through promhttp.Handler.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfasim_evaluations_total",
				Help: "Total number of evaluated inputs by result",
			},
			[]string{"definition", "result"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfasim_rejections_total",
				Help: "Rejected inputs by reason",
			},
			[]string{"definition", "reason"},
		),
		Symbols: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dfasim_input_symbols",
				Help:    "Number of symbols per evaluated input",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dfasim_evaluation_duration_seconds",
				Help:    "Duration of evaluations",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.Evaluations, m.Rejections, m.Symbols, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one evaluation.
func (m *Metrics) Observe(e *domain.EvaluationEvent) {
	m.Evaluations.WithLabelValues(e.Definition, string(e.Run.Result)).Inc()
	if e.Run.Result == domain.Rejected {
		m.Rejections.WithLabelValues(e.Definition, string(e.Run.Reason)).Inc()
	}
	m.Symbols.Observe(float64(e.Symbols))
	m.Duration.Observe(e.Duration.Seconds())
}

// Hooks returns lifecycle hooks feeding these metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: m.Observe,
	}
}
