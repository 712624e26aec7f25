// Package export samples the circuit model over time and writes the
// waveform out as a table or a plot.
package export

import (
	"fmt"
	"math"

	"energy-flow/internal/circuit"
	"energy-flow/internal/clock"
)

type Sample struct {
	Time float64
	circuit.State
}

// Record evaluates cfg at n instants on a fresh clock, starting at t=0.
func Record(cfg circuit.Config, step float64, n int) ([]Sample, error) {
	if n < 0 {
		return nil, fmt.Errorf("export: negative sample count %d", n)
	}
	clk := clock.New(step)
	out := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		t := clk.Now()
		st, err := circuit.Evaluate(cfg, t)
		if err != nil {
			return nil, fmt.Errorf("export: sample %d: %w", i, err)
		}
		out = append(out, Sample{Time: t, State: st})
		clk.Tick()
	}
	return out, nil
}

type Summary struct {
	Samples     int
	MeanPower   float64
	PeakPower   float64
	PeakCurrent float64 // largest |i(t)|
}

func Summarize(samples []Sample) Summary {
	s := Summary{Samples: len(samples)}
	if len(samples) == 0 {
		return s
	}
	var sum float64
	for _, smp := range samples {
		sum += smp.InstantPower
		s.PeakPower = math.Max(s.PeakPower, smp.InstantPower)
		s.PeakCurrent = math.Max(s.PeakCurrent, math.Abs(smp.InstantCurrent))
	}
	s.MeanPower = sum / float64(len(samples))
	return s
}

var columns = []string{"No", "t [s]", "phase", "I [A]", "P [W]", "i(t) [A]", "p(t) [W]"}

func row(i int, s Sample) []any {
	return []any{i + 1, s.Time, s.Phase, s.Current, s.Power, s.InstantCurrent, s.InstantPower}
}
