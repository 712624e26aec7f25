package render

import (
	"math"

	"energy-flow/internal/circuit"
	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

const (
	phaseHalfWidth = 30
	phaseBarHeight = 20
	phaseInsetX    = 80
	phaseTop       = 60
)

// PhaseBarWidth is the signed width of the filled bar for a phase in [-1, 1].
func PhaseBarWidth(phase float64) float64 {
	return math.Max(-1, math.Min(1, phase)) * phaseHalfWidth
}

// DrawPhaseIndicator shows the instantaneous AC phase as a bar growing left
// or right from the centre of a small frame. It draws nothing in DC mode.
func DrawPhaseIndicator(s surface.Surface, sc Scene) {
	if sc.Config.Mode != circuit.AC {
		return
	}
	cx := sc.Geometry.Width - phaseInsetX
	cy := float64(phaseTop)

	s.Text("Phase", cx, cy-20, surface.AlignCenter, surface.Font{Size: 12}, surface.Solid(palette.PhaseLabel, 0))

	frame := &surface.Path{}
	frame.Rect(cx-phaseHalfWidth, cy-phaseBarHeight/2, 2*phaseHalfWidth, phaseBarHeight)
	s.StrokePath(frame, surface.Solid(palette.PhaseFrame, 1))

	if w := PhaseBarWidth(sc.State.Phase); w != 0 {
		bar := &surface.Path{}
		bar.Rect(cx, cy-phaseBarHeight/2, w, phaseBarHeight)
		s.FillPath(bar, surface.Solid(palette.Amber, 0))
	}
}
