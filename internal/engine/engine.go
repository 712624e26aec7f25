// Package engine runs the per-frame pipeline: evaluate the circuit, lay it
// out, clear the target, draw the circuit, then draw the enabled fields.
package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"energy-flow/internal/circuit"
	"energy-flow/internal/layout"
	"energy-flow/internal/render"
	"energy-flow/internal/surface"
)

type Engine struct {
	log        zerolog.Logger
	meter      metric.Meter
	components []render.Renderer
	fields     []render.FieldRenderer

	frames   metric.Int64Counter
	rejected metric.Int64Counter
	skipped  metric.Int64Counter
}

type Option func(*Engine)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMeter records frame counters on m. The default is a no-op meter.
func WithMeter(m metric.Meter) Option {
	return func(e *Engine) { e.meter = m }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		log:        zerolog.Nop(),
		meter:      noop.Meter{},
		components: render.Components(),
		fields:     render.Fields(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.frames = e.counter(MetricFrames, "Frames drawn")
	e.rejected = e.counter(MetricErrors, "Frames rejected for an invalid configuration")
	e.skipped = e.counter(MetricSkipped, "Frames skipped for a zero-area target")
	return e
}

func (e *Engine) counter(name, desc string) metric.Int64Counter {
	c, err := e.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		e.log.Warn().Err(err).Str("instrument", name).Msg("metric disabled")
		return noop.Int64Counter{}
	}
	return c
}

// Frame draws one complete frame for simulation time t.
//
// The target size is read once. An invalid configuration is returned before
// anything touches the target; a zero-area target draws nothing and is not
// an error.
func (e *Engine) Frame(target surface.Surface, cfg circuit.Config, t float64) error {
	ctx := context.Background()
	w, h := target.Size()

	st, err := circuit.Evaluate(cfg, t)
	if err != nil {
		e.rejected.Add(ctx, 1)
		return fmt.Errorf("engine: frame at t=%g: %w", t, err)
	}

	g := layout.Compute(w, h)
	if g.Empty() {
		e.skipped.Add(ctx, 1)
		return nil
	}

	target.Clear()
	sc := render.Scene{Geometry: g, State: st, Config: cfg, Time: t}
	for _, r := range e.components {
		r.Draw(target, sc)
	}
	for _, f := range e.fields {
		if cfg.Fields.Has(f.Field) {
			f.Draw(target, sc)
		}
	}
	e.frames.Add(ctx, 1)
	return nil
}
