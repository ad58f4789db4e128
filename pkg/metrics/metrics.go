// Package metrics exports slot resolution statistics to Prometheus.
//
// Observer implements slot.Observer, so it can be handed to a layout with
// layout.WithObserver. Metrics collected (with the default namespace):
//
//   - slotkit_resolves_total{layout}
//   - slotkit_regions_filled_total{layout,region}
//   - slotkit_regions_unmatched_total{layout,region}
//   - slotkit_duplicate_children_total{layout,region}
//   - slotkit_unrecognized_children_total{layout}
//   - slotkit_render_duration_seconds{layout}
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/slotkit/pkg/slot"
)

// Config configures the Prometheus observer.
type Config struct {
	// Namespace is the metrics namespace (default: "slotkit").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus observer.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "slotkit",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Observer records slot resolution summaries and render timings.
type Observer struct {
	resolves       *prometheus.CounterVec
	filled         *prometheus.CounterVec
	unmatched      *prometheus.CounterVec
	duplicates     *prometheus.CounterVec
	unrecognized   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// New creates an Observer and registers its collectors. It panics if the
// collectors are already registered with the registry, as promauto does.
func New(opts ...Option) *Observer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}, labels)
	}

	return &Observer{
		resolves: counter("resolves_total",
			"Total number of slot resolutions", "layout"),
		filled: counter("regions_filled_total",
			"Regions that resolved to content", "layout", "region"),
		unmatched: counter("regions_unmatched_total",
			"Regions left empty because no child was tagged for them", "layout", "region"),
		duplicates: counter("duplicate_children_total",
			"Children dropped because an earlier child already filled their region", "layout", "region"),
		unrecognized: counter("unrecognized_children_total",
			"Children dropped because they carry no marker of the layout", "layout"),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_duration_seconds",
			Help:        "Layout render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"layout"}),
	}
}

// ObserveResolve implements slot.Observer.
func (o *Observer) ObserveResolve(s slot.Summary) {
	o.resolves.WithLabelValues(s.Layout).Inc()
	for _, region := range s.Filled {
		o.filled.WithLabelValues(s.Layout, region).Inc()
	}
	for _, region := range s.Unmatched {
		o.unmatched.WithLabelValues(s.Layout, region).Inc()
	}
	for region, count := range s.Duplicates {
		// The first child was rendered; the rest were dropped.
		o.duplicates.WithLabelValues(s.Layout, region).Add(float64(count - 1))
	}
	if s.Unrecognized > 0 {
		o.unrecognized.WithLabelValues(s.Layout).Add(float64(s.Unrecognized))
	}
}

// ObserveRender records how long a layout took to render.
func (o *Observer) ObserveRender(layout string, d time.Duration) {
	o.renderDuration.WithLabelValues(layout).Observe(d.Seconds())
}

var _ slot.Observer = (*Observer)(nil)
