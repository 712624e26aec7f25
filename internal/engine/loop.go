package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"energy-flow/internal/circuit"
	"energy-flow/internal/clock"
	"energy-flow/internal/surface"
)

var ErrStopped = errors.New("engine: loop is stopped")

// FrameSource is the host's display refresh mechanism.
type FrameSource interface {
	// Register arranges for fn to run once per refresh until the returned
	// function is called.
	Register(fn func()) (unregister func())
}

// Loop binds an Engine to a frame source and owns the Clock. It is driven
// from a single goroutine and does no locking.
type Loop struct {
	engine *Engine
	step   float64
	config func() circuit.Config
	log    zerolog.Logger
	errLog zerolog.Logger

	clock      *clock.Clock
	target     surface.Surface
	unregister func()
	err        error
	onError    func(error)
}

// NewLoop creates a stopped loop. config is called once per frame to fetch
// the host's current configuration.
func NewLoop(e *Engine, step float64, config func() circuit.Config) *Loop {
	l := &Loop{
		engine: e,
		step:   step,
		config: config,
		log:    e.log,
		clock:  clock.New(step),
	}
	l.errLog = l.log.Sample(&zerolog.BurstSampler{Burst: 1, Period: time.Second})
	return l
}

// OnError installs a callback for frame errors.
func (l *Loop) OnError(fn func(error)) { l.onError = fn }

// Start registers with src and draws on target from a fresh clock at zero.
func (l *Loop) Start(src FrameSource, target surface.Surface) {
	if l.Running() {
		l.Stop()
	}
	l.clock = clock.New(l.step)
	l.target = target
	l.err = nil
	l.unregister = src.Register(l.frame)
	l.log.Info().Float64("step", l.clock.Step()).Msg("animation started")
}

// Stop unregisters from the frame source and drops the target.
func (l *Loop) Stop() {
	if l.unregister != nil {
		l.unregister()
		l.unregister = nil
	}
	if l.target != nil {
		l.log.Info().Float64("t", l.clock.Now()).Uint64("ticks", l.clock.Ticks()).Msg("animation stopped")
	}
	l.target = nil
}

func (l *Loop) Restart(src FrameSource, target surface.Surface) {
	l.Stop()
	l.Start(src, target)
}

func (l *Loop) Running() bool { return l.target != nil }

// Time is the simulation time of the last frame.
func (l *Loop) Time() float64 { return l.clock.Now() }

// Err is the error of the last frame, if any.
func (l *Loop) Err() error { return l.err }

func (l *Loop) frame() {
	_ = l.Step()
}

// Step ticks the clock and draws one frame.
func (l *Loop) Step() error {
	if l.target == nil {
		return ErrStopped
	}
	t := l.clock.Tick()
	l.err = l.engine.Frame(l.target, l.config(), t)
	if l.err != nil {
		l.errLog.Error().Err(l.err).Float64("t", t).Msg("frame rejected")
		if l.onError != nil {
			l.onError(l.err)
		}
	}
	return l.err
}
