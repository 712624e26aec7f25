package render

import (
	"math"

	"energy-flow/internal/circuit"
	"energy-flow/internal/layout"
	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

const (
	PoolSize = 100

	particlesPerWatt = 3
	cycleLength      = 1.5  // progress per cycle; only [0, 1] is on screen
	seedStride       = 13.0 // per-index seed spacing
	lateralSpread    = 0.3  // of loop height
	fadeSpread       = 0.4  // of loop height
	particleBase     = 2

	channelArrowHalf = 15
	channelArrowHead = 10

	endpointArrows   = 4
	endpointInner    = 40
	endpointOuter    = 70
	endpointHead     = 8
	endpointMinLevel = 0.05 // below this the endpoint arrows are hidden
)

var channelArrowAt = [...]float64{0.25, 0.5, 0.75}

// FlowVector summarises the energy flow drawn by the Poynting overlay.
type FlowVector struct {
	// Direction is +1 for source → load. E and B reverse together, so it
	// never changes sign.
	Direction int
	Magnitude float64 // |instantaneous power|
	Level     float64 // Magnitude normalised to [0, 1]
}

func Flow(st circuit.State) FlowVector {
	return FlowVector{
		Direction: 1,
		Magnitude: math.Abs(st.InstantPower),
		Level:     LoadIntensity(st.InstantPower),
	}
}

// ActiveParticles is how many pool entries are in use at this power.
func ActiveParticles(power float64) int {
	return int(math.Min(math.Floor(math.Abs(power)*particlesPerWatt), PoolSize))
}

// Particle is one member of the energy stream for a single frame.
type Particle struct {
	Index    int
	Progress float64 // 0 at the source, 1 at the load
	Lateral  float64 // offset from the channel centreline, px
	X, Y     float64
	Alpha    float64
	Visible  bool
}

// particleSeed is fixed per index, so a particle keeps its lane and phase
// offset from frame to frame.
func particleSeed(i int) (offset, lateral, speed float64) {
	seed := float64(i) * seedStride
	return seed / 100, math.Sin(seed), 1 + float64(i%3)*0.5
}

// PoyntingParticles places the active part of the pool for time t. Each
// particle loops over a cycle longer than the channel and is hidden for the
// part of the cycle past the load, which keeps the stream continuous.
func PoyntingParticles(g layout.Geometry, st circuit.State, t float64) []Particle {
	n := ActiveParticles(st.InstantPower)
	w, h := g.LoopWidth(), g.LoopHeight()
	cy := g.Center().Y

	out := make([]Particle, n)
	for i := range out {
		offset, lateral, speed := particleSeed(i)
		progress := math.Mod(t*speed+offset, cycleLength)
		if progress < 0 {
			progress += cycleLength
		}
		yOff := lateral * h * lateralSpread

		p := Particle{
			Index:    i,
			Progress: progress,
			Lateral:  yOff,
			X:        g.Left + progress*w,
			Y:        cy + yOff,
			Visible:  progress <= 1,
		}
		if h > 0 {
			p.Alpha = math.Max(0, 1-math.Abs(yOff)/(h*fadeSpread))
		}
		out[i] = p
	}
	return out
}

// DrawPoyntingFlow draws the energy stream from source to load, direction
// arrows along the channel centreline and the emission/absorption arrows at
// the two ends. Only sizes and opacities follow the power.
func DrawPoyntingFlow(s surface.Surface, sc Scene) {
	g := sc.Geometry
	flow := Flow(sc.State)

	size := particleBase + flow.Magnitude/PowerRef
	for _, p := range PoyntingParticles(g, sc.State, sc.Time) {
		if !p.Visible {
			continue
		}
		s.FillCircle(p.X, p.Y, size, surface.Solid(palette.Poynting, 0).WithAlpha(p.Alpha).WithGlow(10))
	}

	dir := float64(flow.Direction)
	half := channelArrowHalf * (0.5 + 0.5*flow.Level)
	paint := surface.Solid(palette.Poynting, 3).WithAlpha(0.4 + 0.4*flow.Level)
	cy := g.Center().Y
	for _, at := range channelArrowAt {
		ax := g.Left + at*g.LoopWidth()
		arrow(s, ax-dir*half, cy, ax+dir*half, cy, channelArrowHead, paint)
		if at == 0.5 {
			s.Text("S", ax, cy-25, surface.AlignCenter, surface.Font{Size: 20, Bold: true, Italic: true}, paint)
		}
	}

	drawEndpoints(s, g, flow)
}

// EndpointAlpha gates the endpoint arrows: hidden near zero power instead of
// flickering at a barely visible opacity.
func EndpointAlpha(level float64) float64 {
	if level < endpointMinLevel {
		return 0
	}
	return 0.25 + 0.6*level
}

// drawEndpoints shows energy leaving the source (diverging arrows) and
// entering the load (converging arrows).
func drawEndpoints(s surface.Surface, g layout.Geometry, flow FlowVector) {
	a := EndpointAlpha(flow.Level)
	if a == 0 {
		return
	}
	paint := surface.Solid(palette.Poynting, 2).WithAlpha(a)

	for k := 0; k < endpointArrows; k++ {
		angle := math.Pi/4 + float64(k)*math.Pi/2
		cos, sin := math.Cos(angle), math.Sin(angle)

		sx, sy := g.Source.X, g.Source.Y
		arrow(s, sx+endpointInner*cos, sy+endpointInner*sin, sx+endpointOuter*cos, sy+endpointOuter*sin, endpointHead, paint)

		lx, ly := g.Load.X, g.Load.Y
		arrow(s, lx+endpointOuter*cos, ly+endpointOuter*sin, lx+endpointInner*cos, ly+endpointInner*sin, endpointHead, paint)
	}
}
