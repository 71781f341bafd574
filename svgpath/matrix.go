package svgpath

import "math"

// Matrix2D represents the affine transform
//
//	A C E
//	B D F
//	0 0 1
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a * b. Applied to a point, b acts first.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate rotates by `theta` radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// SkewX skews along the x axis by `theta` radians.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY skews along the y axis by `theta` radians.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// Apply maps the point `p`.
func (a Matrix2D) Apply(p Point) Point {
	return Point{
		X: a.A*p.X + a.C*p.Y + a.E,
		Y: a.B*p.X + a.D*p.Y + a.F,
	}
}

// ApplyVector maps `v` ignoring the translation part.
func (a Matrix2D) ApplyVector(v Point) Point {
	return Point{X: a.A*v.X + a.C*v.Y, Y: a.B*v.X + a.D*v.Y}
}

// Det returns the determinant of the linear part.
func (a Matrix2D) Det() float64 { return a.A*a.D - a.B*a.C }

// ScaleFactor is the geometric mean of the axis scalings,
// used to convert line widths to device space.
func (a Matrix2D) ScaleFactor() float64 { return math.Sqrt(math.Abs(a.Det())) }

// Invert returns the inverse transform. A singular matrix
// is returned unchanged, with ok set to false.
func (a Matrix2D) Invert() (inv Matrix2D, ok bool) {
	det := a.Det()
	if det == 0 {
		return a, false
	}
	return Matrix2D{
		A: a.D / det,
		B: -a.B / det,
		C: -a.C / det,
		D: a.A / det,
		E: (a.C*a.F - a.D*a.E) / det,
		F: (a.B*a.E - a.A*a.F) / det,
	}, true
}

// Equal compares with a tolerance `eps` on each coefficient.
func (a Matrix2D) Equal(b Matrix2D, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps && math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.C-b.C) <= eps && math.Abs(a.D-b.D) <= eps &&
		math.Abs(a.E-b.E) <= eps && math.Abs(a.F-b.F) <= eps
}

// FitTransform returns the transform mapping `box` onto the
// rectangle (0, 0, width, height), scaling each axis independently.
// When flip is true, the y axis is reversed, as needed for
// bottom-up texture coordinates.
func FitTransform(box BoundingBox, width, height float64, flip bool) Matrix2D {
	m := Identity
	if flip {
		m = m.Translate(0, height).Scale(1, -1)
	}
	if box.IsEmpty() || box.Width() == 0 || box.Height() == 0 {
		return m
	}
	return m.Scale(width/box.Width(), height/box.Height()).Translate(-box.Min.X, -box.Min.Y)
}
