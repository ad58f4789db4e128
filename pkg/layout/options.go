package layout

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/slotkit/pkg/slot"
)

// RenderObserver is implemented by observers that also want render timings.
// The Prometheus observer in pkg/metrics is one.
type RenderObserver interface {
	ObserveRender(layout string, d time.Duration)
}

// Option configures a Page.
type Option func(*Page)

// WithPolicy sets how the page reacts to dropped children and missing
// required regions.
func WithPolicy(p Policy) Option {
	return func(pg *Page) {
		pg.policy = p
	}
}

// WithRequired marks regions that must be filled. Only PolicyWarn and
// PolicyStrict act on missing regions.
func WithRequired(regions ...Region) Option {
	return func(pg *Page) {
		pg.required = append(pg.required, regions...)
	}
}

// WithObserver adds an observer that receives every resolution summary.
func WithObserver(obs slot.Observer) Option {
	return func(pg *Page) {
		if obs != nil {
			pg.observers = append(pg.observers, obs)
		}
	}
}

// WithLogger sets the logger used by PolicyWarn (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(pg *Page) {
		if logger != nil {
			pg.logger = logger
		}
	}
}

// WithClass adds classes to the layout's root element.
func WithClass(classes ...string) Option {
	return func(pg *Page) {
		pg.classes = append(pg.classes, classes...)
	}
}

// WithTracer sets the tracer used for the slot.resolve span.
// The default is the global tracer provider's tracer for this package.
func WithTracer(tracer trace.Tracer) Option {
	return func(pg *Page) {
		if tracer != nil {
			pg.tracer = tracer
		}
	}
}
