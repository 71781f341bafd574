package svgpath

import "math"

// TightBounds returns the exact bounding box of the path outline:
// curves contribute their extrema instead of their control points.
// Quadratic curves and arcs are measured through their cubic form.
func (p Path) TightBounds() BoundingBox {
	var acc tightAdder
	p.AddTo(&acc)
	return acc.bb
}

// tightAdder accumulates the exact bounds of the segments it receives
type tightAdder struct {
	bb      BoundingBox
	current Point
}

func (t *tightAdder) MoveTo(p Point) {
	t.bb = t.bb.AddPoint(p)
	t.current = p
}

func (t *tightAdder) LineTo(p Point) {
	t.bb = t.bb.AddPoint(p)
	t.current = p
}

func (t *tightAdder) CurveTo(to, c1, c2 Point) {
	t.bb = t.bb.Union(cubicBounds(t.current, c1, c2, to))
	t.current = to
}

// ClosePath adds nothing: the closing segment ends on a point already seen.
func (t *tightAdder) ClosePath() {}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// quadraticRoots returns the real solutions of aX^2 + bX + c = 0
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// this is a simple line
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// cubicBounds returns the bounding box of the curve from p0 to p3,
// evaluated at its end points and at the zeros of its derivative.
func cubicBounds(p0, p1, p2, p3 Point) BoundingBox {
	bb := NewBoundingBox(p0, p3)
	aX, bX, cX := cubicDerivative(p0.X, p1.X, p2.X, p3.X)
	aY, bY, cY := cubicDerivative(p0.Y, p1.Y, p2.Y, p3.Y)
	for _, t := range append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		bb = bb.AddPoint(Point{
			bezierSpline(p0.X, p1.X, p2.X, p3.X, t),
			bezierSpline(p0.Y, p1.Y, p2.Y, p3.Y, t),
		})
	}
	return bb
}
