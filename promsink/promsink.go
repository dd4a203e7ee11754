// Package promsink exports resolved measure entries as prometheus metrics.
package promsink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-glx/usertiming/measure"
)

const defaultNamespace = "usertiming"

type (
	// Sink observes every appended entry duration (in seconds)
	// into histogram labeled by measure name.
	Sink struct {
		durations *prometheus.HistogramVec
		negative  *prometheus.CounterVec
	}

	Initializer = func(*config)

	config struct {
		namespace string
		buckets   []float64
	}
)

func WithNamespace(namespace string) Initializer {
	return func(c *config) {
		c.namespace = namespace
	}
}

func WithBuckets(buckets []float64) Initializer {
	return func(c *config) {
		c.buckets = buckets
	}
}

func New(initializers ...Initializer) *Sink {
	cfg := &config{
		namespace: defaultNamespace,
		buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
	}

	for _, init := range initializers {
		init(cfg)
	}

	return &Sink{
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.namespace,
				Name:      "measure_duration_seconds",
				Help:      "Duration of resolved measure entries",
				Buckets:   cfg.buckets,
			},
			[]string{"name"},
		),
		negative: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.namespace,
				Name:      "measure_negative_total",
				Help:      "Resolved measure entries where end time precedes start time",
			},
			[]string{"name"},
		),
	}
}

// Register adds sink collectors to registerer
func (s *Sink) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{s.durations, s.negative} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sink) Append(entry measure.Entry) {
	if entry.Duration() < 0 {
		// histogram cannot hold negative values
		s.negative.WithLabelValues(entry.Name()).Inc()
		return
	}

	s.durations.WithLabelValues(entry.Name()).Observe(entry.Duration() / 1000)
}
