package surface

type Kind int

const (
	KindClear Kind = iota
	KindStroke
	KindFill
	KindCircle
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindStroke:
		return "stroke"
	case KindFill:
		return "fill"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Primitive is one recorded drawing call.
type Primitive struct {
	Kind  Kind
	Path  Path
	Paint Paint

	X, Y, R float64 // circle centre/radius, text anchor

	Text  string
	Align Align
	Font  Font
}

// Recorder is a Surface that keeps every call instead of drawing it.
type Recorder struct {
	Width, Height float64
	Prims         []Primitive

	sizeReads int
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) {
	r.sizeReads++
	return r.Width, r.Height
}

// SizeReads counts Size calls, which the engine makes once per frame.
func (r *Recorder) SizeReads() int { return r.sizeReads }

func (r *Recorder) Clear() {
	r.Prims = append(r.Prims, Primitive{Kind: KindClear})
}

func (r *Recorder) StrokePath(p *Path, paint Paint) {
	r.Prims = append(r.Prims, Primitive{Kind: KindStroke, Path: clonePath(p), Paint: paint})
}

func (r *Recorder) FillPath(p *Path, paint Paint) {
	r.Prims = append(r.Prims, Primitive{Kind: KindFill, Path: clonePath(p), Paint: paint})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, paint Paint) {
	r.Prims = append(r.Prims, Primitive{Kind: KindCircle, X: cx, Y: cy, R: radius, Paint: paint})
}

func (r *Recorder) Text(s string, x, y float64, align Align, font Font, paint Paint) {
	r.Prims = append(r.Prims, Primitive{Kind: KindText, Text: s, X: x, Y: y, Align: align, Font: font, Paint: paint})
}

func (r *Recorder) Reset() {
	r.Prims = r.Prims[:0]
}

// Drawn reports whether anything besides Clear was recorded.
func (r *Recorder) Drawn() bool {
	for _, p := range r.Prims {
		if p.Kind != KindClear {
			return true
		}
	}
	return false
}

func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, p := range r.Prims {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Of(kind Kind) []Primitive {
	var out []Primitive
	for _, p := range r.Prims {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, p := range r.Prims {
		if p.Kind == KindText {
			out = append(out, p.Text)
		}
	}
	return out
}

func clonePath(p *Path) Path {
	if p == nil {
		return Path{}
	}
	return Path{Ops: append([]Op(nil), p.Ops...)}
}
