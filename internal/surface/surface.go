// Package surface describes the render target the engine draws on.
//
// Every primitive carries its own Paint, so renderers do not depend on
// drawing state left behind by whoever drew before them.
package surface

import (
	"image/color"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Font struct {
	Size   float64
	Bold   bool
	Italic bool
}

// Paint is the complete style of one primitive.
type Paint struct {
	Color color.RGBA
	Alpha float64 // 0..1, multiplied into Color
	Width float64 // stroke width; ignored for fills
	Glow  float64 // blur radius of a soft halo; 0 disables it
}

// Solid returns an opaque paint of the given colour and stroke width.
func Solid(c color.RGBA, width float64) Paint {
	return Paint{Color: c, Alpha: 1, Width: width}
}

func (p Paint) WithAlpha(a float64) Paint {
	p.Alpha = clamp01(a)
	return p
}

func (p Paint) WithGlow(r float64) Paint {
	p.Glow = r
	return p
}

// NRGBA returns the paint colour with Alpha folded in.
func (p Paint) NRGBA() color.NRGBA {
	a := clamp01(p.Alpha) * float64(p.Color.A)
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(a + 0.5)}
}

// Surface is the only thing the engine knows about the host display.
type Surface interface {
	// Size is read once at the start of a frame.
	Size() (width, height float64)
	Clear()
	StrokePath(p *Path, paint Paint)
	FillPath(p *Path, paint Paint)
	FillCircle(cx, cy, r float64, paint Paint)
	Text(s string, x, y float64, align Align, font Font, paint Paint)
}

func clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	}
	return 0
}
