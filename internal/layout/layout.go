// Package layout maps render-target dimensions to circuit geometry.
package layout

import "math"

const (
	WidthFraction  = 0.7 // share of the target width taken by the loop
	HeightFraction = 0.5 // share of the target height
)

type Point struct {
	X, Y float64
}

// Geometry is a pure function of the target size.
type Geometry struct {
	Width, Height float64 // render target

	Left, Right float64
	Top, Bottom float64

	Source Point // midpoint of the left edge
	Load   Point // midpoint of the right edge
}

// Compute lays the circuit out on a width×height target. Non-positive or
// non-finite dimensions are treated as zero and yield a zero-area rectangle.
func Compute(width, height float64) Geometry {
	width = nonNegative(width)
	height = nonNegative(height)

	cx, cy := width/2, height/2
	w, h := width*WidthFraction, height*HeightFraction

	g := Geometry{
		Width:  width,
		Height: height,
		Left:   cx - w/2,
		Right:  cx + w/2,
		Top:    cy - h/2,
		Bottom: cy + h/2,
	}
	g.Source = Point{X: g.Left, Y: cy}
	g.Load = Point{X: g.Right, Y: cy}
	return g
}

func (g Geometry) LoopWidth() float64  { return g.Right - g.Left }
func (g Geometry) LoopHeight() float64 { return g.Bottom - g.Top }

func (g Geometry) Center() Point {
	return Point{X: (g.Left + g.Right) / 2, Y: (g.Top + g.Bottom) / 2}
}

// Perimeter is the length of the wire rectangle.
func (g Geometry) Perimeter() float64 {
	return 2*g.LoopWidth() + 2*g.LoopHeight()
}

// Empty reports a zero-area loop; nothing should be drawn for it.
func (g Geometry) Empty() bool {
	return g.LoopWidth() <= 0 || g.LoopHeight() <= 0
}

func nonNegative(v float64) float64 {
	// NaN and +Inf collapse to zero as well.
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}
