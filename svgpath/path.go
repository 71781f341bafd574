// Implements an abstract representation of
// svg paths, as produced by the path data interpreter,
// which can then be consumed by painting drivers.
package svgpath

import (
	"fmt"
	"strings"
)

// Adder is implemented by types accumulating path segments.
// Quadratic curves and arcs are converted to cubic curves
// before being sent to an Adder.
type Adder interface {
	// MoveTo starts a new sub path at the given point.
	MoveTo(p Point)
	// LineTo adds a line segment from the current point to `p`
	LineTo(p Point)
	// CurveTo adds a cubic bezier curve ending at `to`
	CurveTo(to, c1, c2 Point)
	// ClosePath joins the current point to the sub path start
	ClosePath()
}

// Command is one of the drawing instructions of a path:
// MoveTo, LineTo, CurveTo, SmoothCurveTo, QuadraticBezier,
// SmoothQuadraticBezier, EllipticalArc or ClosePath.
// All coordinates are absolute.
type Command interface {
	isCommand()
}

type MoveTo Point

type LineTo Point

// CurveTo is a cubic bezier, with control points C1 and C2.
type CurveTo struct{ To, C1, C2 Point }

// SmoothCurveTo is a cubic bezier whose first control point
// C1 is implied by the previous command.
type SmoothCurveTo struct{ To, C1, C2 Point }

// QuadraticBezier has a single control point C.
type QuadraticBezier struct{ To, C Point }

// SmoothQuadraticBezier has its control point C implied by the previous command.
type SmoothQuadraticBezier struct{ To, C Point }

// EllipticalArc draws an arc from the current point to To.
// Rotation is in degrees.
type EllipticalArc struct {
	To              Point
	Radius          Point
	Rotation        float64
	LargeArc, Sweep bool
}

// ClosePath ends the current sub path, moving the
// current point back to the sub path start.
type ClosePath struct{}

func (MoveTo) isCommand()                {}
func (LineTo) isCommand()                {}
func (CurveTo) isCommand()               {}
func (SmoothCurveTo) isCommand()         {}
func (QuadraticBezier) isCommand()       {}
func (SmoothQuadraticBezier) isCommand() {}
func (EllipticalArc) isCommand()         {}
func (ClosePath) isCommand()             {}

// Path describes a sequence of commands, sharing a running
// current point.
type Path []Command

func formatBool(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ToSVGPath returns a string representation of the path,
// using absolute commands only.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%g,%g", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%g,%g", op.X, op.Y)
		case CurveTo:
			chunks[i] = fmt.Sprintf("C%g,%g,%g,%g,%g,%g", op.C1.X, op.C1.Y, op.C2.X, op.C2.Y, op.To.X, op.To.Y)
		case SmoothCurveTo:
			chunks[i] = fmt.Sprintf("S%g,%g,%g,%g", op.C2.X, op.C2.Y, op.To.X, op.To.Y)
		case QuadraticBezier:
			chunks[i] = fmt.Sprintf("Q%g,%g,%g,%g", op.C.X, op.C.Y, op.To.X, op.To.Y)
		case SmoothQuadraticBezier:
			chunks[i] = fmt.Sprintf("T%g,%g", op.To.X, op.To.Y)
		case EllipticalArc:
			chunks[i] = fmt.Sprintf("A%g,%g %g %d %d %g,%g", op.Radius.X, op.Radius.Y, op.Rotation,
				formatBool(op.LargeArc), formatBool(op.Sweep), op.To.X, op.To.Y)
		case ClosePath:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// MoveTo appends a MoveTo command, so that *Path implements Adder.
func (p *Path) MoveTo(pt Point) { *p = append(*p, MoveTo(pt)) }

func (p *Path) LineTo(pt Point) { *p = append(*p, LineTo(pt)) }

func (p *Path) CurveTo(to, c1, c2 Point) { *p = append(*p, CurveTo{To: to, C1: c1, C2: c2}) }

func (p *Path) ClosePath() { *p = append(*p, ClosePath{}) }

// AddTo sends the path to `q`, converting quadratic
// curves and arcs to cubic curves.
func (p Path) AddTo(q Adder) {
	var current, start Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, start = Point(op), Point(op)
			q.MoveTo(current)
		case LineTo:
			current = Point(op)
			q.LineTo(current)
		case CurveTo:
			q.CurveTo(op.To, op.C1, op.C2)
			current = op.To
		case SmoothCurveTo:
			q.CurveTo(op.To, op.C1, op.C2)
			current = op.To
		case QuadraticBezier:
			c1, c2 := quadToCubic(current, op.C, op.To)
			q.CurveTo(op.To, c1, c2)
			current = op.To
		case SmoothQuadraticBezier:
			c1, c2 := quadToCubic(current, op.C, op.To)
			q.CurveTo(op.To, c1, c2)
			current = op.To
		case EllipticalArc:
			addArc(q, current, op)
			current = op.To
		case ClosePath:
			q.ClosePath()
			current = start
		}
	}
}

// quadToCubic returns the control points of the cubic
// curve equivalent to the quadratic (p0, c, p1).
func quadToCubic(p0, c, p1 Point) (c1, c2 Point) {
	c1 = Point{p0.X + 2./3*(c.X-p0.X), p0.Y + 2./3*(c.Y-p0.Y)}
	c2 = Point{p1.X + 2./3*(c.X-p1.X), p1.Y + 2./3*(c.Y-p1.Y)}
	return c1, c2
}

// Bounds returns the union of every on-curve and control
// point of the path. This is a conservative bound for curves.
// Arcs contribute the control points of their cubic approximation.
func (p Path) Bounds() BoundingBox {
	var (
		bb      BoundingBox
		current Point
		start   Point
	)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, start = Point(op), Point(op)
			bb = bb.AddPoint(current)
		case LineTo:
			current = Point(op)
			bb = bb.AddPoint(current)
		case CurveTo:
			bb = bb.AddPoint(op.C1).AddPoint(op.C2).AddPoint(op.To)
			current = op.To
		case SmoothCurveTo:
			bb = bb.AddPoint(op.C1).AddPoint(op.C2).AddPoint(op.To)
			current = op.To
		case QuadraticBezier:
			bb = bb.AddPoint(op.C).AddPoint(op.To)
			current = op.To
		case SmoothQuadraticBezier:
			bb = bb.AddPoint(op.C).AddPoint(op.To)
			current = op.To
		case EllipticalArc:
			acc := boundsAdder{bb: bb.AddPoint(current)}
			addArc(&acc, current, op)
			bb = acc.bb
			current = op.To
		case ClosePath:
			current = start
		}
	}
	return bb
}

// boundsAdder accumulates every point it receives
type boundsAdder struct{ bb BoundingBox }

func (b *boundsAdder) MoveTo(p Point) { b.bb = b.bb.AddPoint(p) }
func (b *boundsAdder) LineTo(p Point) { b.bb = b.bb.AddPoint(p) }
func (b *boundsAdder) CurveTo(to, c1, c2 Point) {
	b.bb = b.bb.AddPoint(c1).AddPoint(c2).AddPoint(to)
}
func (b *boundsAdder) ClosePath() {}
