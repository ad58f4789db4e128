package layout

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/slotkit/internal/errors"
	"github.com/vango-dev/slotkit/pkg/slot"
	"github.com/vango-dev/slotkit/pkg/vdom"
)

const tracerName = "github.com/vango-dev/slotkit/pkg/layout"

// SpanName is the name of the span opened for every resolution.
const SpanName = "slot.resolve"

// resolver runs a marker set against children and applies a policy to the
// report. Page and Card both resolve through it.
type resolver[M slot.Marker] struct {
	set       *slot.Set[M]
	policy    Policy
	required  []M
	observers slot.Observers
	logger    *slog.Logger
	tracer    trace.Tracer
}

func (r *resolver[M]) resolve(ctx context.Context, children []*vdom.VNode) (slot.Assignment[M], error) {
	tracer := r.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	layout := r.set.Layout()
	ctx, span := tracer.Start(ctx, SpanName,
		trace.WithAttributes(
			attribute.String("slot.layout", layout),
			attribute.String("slot.policy", r.policy.String()),
			attribute.Int("slot.children", len(children)),
		),
	)
	defer span.End()

	a := r.set.Resolve(children)
	report := a.Report()

	span.SetAttributes(
		attribute.Int("slot.filled", len(report.Filled)),
		attribute.Int("slot.unmatched", len(report.Unmatched)),
		attribute.Int("slot.duplicates", len(report.Duplicates)),
		attribute.Int("slot.unrecognized", report.Unrecognized),
	)

	r.observers.ObserveResolve(report.Summary())

	if err := r.apply(ctx, report); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return a, err
	}

	span.SetStatus(codes.Ok, "")
	return a, nil
}

// apply enforces the policy on a report.
func (r *resolver[M]) apply(ctx context.Context, report slot.Report[M]) error {
	missing := report.Missing(r.required...)

	switch r.policy {
	case PolicyWarn:
		r.warn(ctx, report, missing)
		return nil
	case PolicyStrict:
		return violations(report, missing)
	default:
		return nil
	}
}

func (r *resolver[M]) warn(ctx context.Context, report slot.Report[M], missing []M) {
	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, d := range report.Duplicates {
		logger.WarnContext(ctx, "region filled more than once, extra children dropped",
			"layout", report.Layout,
			"region", d.Marker.String(),
			"children", d.Count,
		)
	}
	if report.Unrecognized > 0 {
		logger.WarnContext(ctx, "children not assigned to any region were dropped",
			"layout", report.Layout,
			"count", report.Unrecognized,
		)
	}
	for _, m := range missing {
		logger.WarnContext(ctx, "required region is empty",
			"layout", report.Layout,
			"region", m.String(),
		)
	}
}

// violations converts a report into coded errors, joined in the order
// duplicates, unrecognized children, missing regions.
func violations[M slot.Marker](report slot.Report[M], missing []M) error {
	var errs []error

	for _, d := range report.Duplicates {
		errs = append(errs, errors.New("E201").
			WithDetailf("%s region %q has %d tagged children", report.Layout, d.Marker.String(), d.Count).
			WithSuggestion("Merge the content into a single child or remove the extra ones."))
	}
	if report.Unrecognized > 0 {
		errs = append(errs, errors.New("E202").
			WithDetailf("%s layout dropped %d untagged or foreign children", report.Layout, report.Unrecognized).
			WithSuggestion("Wrap each child in a region builder of this layout."))
	}
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = m.String()
		}
		errs = append(errs, errors.New("E203").
			WithDetailf("%s layout is missing %s", report.Layout, strings.Join(names, ", ")).
			WithSuggestion("Add a child for each required region."))
	}

	return stderrors.Join(errs...)
}
