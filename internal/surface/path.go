package surface

type OpKind int

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpArc
	OpClose
)

// Op is one path command. Arc uses X, Y as centre.
type Op struct {
	Kind             OpKind
	X, Y             float64
	Radius           float64
	Start, End       float64 // radians, screen orientation (y down)
	CounterClockwise bool
}

// Path is a backend-neutral vector path.
type Path struct {
	Ops []Op
}

func (p *Path) MoveTo(x, y float64) {
	p.Ops = append(p.Ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

func (p *Path) LineTo(x, y float64) {
	p.Ops = append(p.Ops, Op{Kind: OpLineTo, X: x, Y: y})
}

// Arc appends a circular arc, clockwise on screen unless ccw is set.
func (p *Path) Arc(cx, cy, r, start, end float64, ccw bool) {
	p.Ops = append(p.Ops, Op{Kind: OpArc, X: cx, Y: cy, Radius: r, Start: start, End: end, CounterClockwise: ccw})
}

func (p *Path) Close() {
	p.Ops = append(p.Ops, Op{Kind: OpClose})
}

// Rect appends a closed axis-aligned rectangle. Negative sizes are allowed.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

func (p *Path) Empty() bool { return len(p.Ops) == 0 }

// Line is a two-point path.
func Line(x1, y1, x2, y2 float64) *Path {
	p := &Path{}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}
