// Package ebitensurface draws surface primitives onto an ebiten image.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"energy-flow/internal/surface"
)

const glowRings = 4 // translucent rings used to fake a blur halo

// Surface adapts an *ebiten.Image to surface.Surface.
type Surface struct {
	img        *ebiten.Image
	background color.Color
	faces      map[surface.Font]font.Face
}

func New(img *ebiten.Image, background color.Color) *Surface {
	return &Surface{
		img:        img,
		background: background,
		faces:      make(map[surface.Font]font.Face),
	}
}

// SetImage retargets the surface, e.g. after the window was resized.
func (s *Surface) SetImage(img *ebiten.Image) { s.img = img }

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear() {
	s.img.Fill(s.background)
}

func (s *Surface) StrokePath(p *surface.Path, paint surface.Paint) {
	if p == nil || p.Empty() {
		return
	}
	vp := toVector(p)

	if paint.Glow > 0 {
		halo := paint
		for i := glowRings; i > 0; i-- {
			k := float64(i) / glowRings
			halo.Width = paint.Width + paint.Glow*k
			halo.Alpha = paint.Alpha * 0.15 * (1 - k + 1.0/glowRings)
			s.stroke(vp, halo)
		}
	}
	s.stroke(vp, paint)
}

func (s *Surface) stroke(vp *vector.Path, paint surface.Paint) {
	sop := &vector.StrokeOptions{
		Width:    float32(paint.Width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	dop := &vector.DrawPathOptions{AntiAlias: true}
	dop.ColorScale.ScaleWithColor(paint.NRGBA())
	vector.StrokePath(s.img, vp, sop, dop)
}

func (s *Surface) FillPath(p *surface.Path, paint surface.Paint) {
	if p == nil || p.Empty() {
		return
	}
	dop := &vector.DrawPathOptions{AntiAlias: true}
	dop.ColorScale.ScaleWithColor(paint.NRGBA())
	vector.FillPath(s.img, toVector(p), &vector.FillOptions{}, dop)
}

func (s *Surface) FillCircle(cx, cy, r float64, paint surface.Paint) {
	if r <= 0 {
		return
	}
	if paint.Glow > 0 {
		halo := paint
		for i := glowRings; i > 0; i-- {
			k := float64(i) / glowRings
			halo.Alpha = paint.Alpha * 0.12 * (1 - k + 1.0/glowRings)
			vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r+paint.Glow*k), halo.NRGBA(), true)
		}
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), paint.NRGBA(), true)
}

func (s *Surface) Text(str string, x, y float64, align surface.Align, f surface.Font, paint surface.Paint) {
	face := s.Face(f)
	w := font.MeasureString(face, str).Ceil()
	px := int(x)
	switch align {
	case surface.AlignCenter:
		px -= w / 2
	case surface.AlignRight:
		px -= w
	}
	text.Draw(s.img, str, face, px, int(y), paint.NRGBA())
}

// Face returns a Go font face for f, built once per style. basicfont is the
// fallback; it has no glyphs outside ASCII.
func (s *Surface) Face(f surface.Font) font.Face {
	if face, ok := s.faces[f]; ok {
		return face
	}
	ttf := goregular.TTF
	switch {
	case f.Bold && f.Italic:
		ttf = gobolditalic.TTF
	case f.Bold:
		ttf = gobold.TTF
	case f.Italic:
		ttf = goitalic.TTF
	}
	var face font.Face = basicfont.Face7x13
	if parsed, err := opentype.Parse(ttf); err == nil && f.Size > 0 {
		if of, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    f.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		}); err == nil {
			face = of
		}
	}
	s.faces[f] = face
	return face
}

func toVector(p *surface.Path) *vector.Path {
	var vp vector.Path
	for _, op := range p.Ops {
		switch op.Kind {
		case surface.OpMoveTo:
			vp.MoveTo(float32(op.X), float32(op.Y))
		case surface.OpLineTo:
			vp.LineTo(float32(op.X), float32(op.Y))
		case surface.OpArc:
			dir := vector.Clockwise
			if op.CounterClockwise {
				dir = vector.CounterClockwise
			}
			vp.Arc(float32(op.X), float32(op.Y), float32(op.Radius), float32(op.Start), float32(op.End), dir)
		case surface.OpClose:
			vp.Close()
		}
	}
	return &vp
}
