package svgpath

import "math"

// Point is a 2D coordinate in user space.
type Point struct{ X, Y float64 }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the distance to the origin.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// BoundingBox is an axis aligned rectangle, which may be empty.
// The zero value is the empty box.
type BoundingBox struct {
	Min, Max Point
	valid    bool
}

// NewBoundingBox returns the box spanning the two corners,
// given in any order.
func NewBoundingBox(a, b Point) BoundingBox {
	return BoundingBox{}.AddPoint(a).AddPoint(b)
}

// IsEmpty returns true if no point has been added to the box.
func (bb BoundingBox) IsEmpty() bool { return !bb.valid }

func (bb BoundingBox) Width() float64 {
	if !bb.valid {
		return 0
	}
	return bb.Max.X - bb.Min.X
}

func (bb BoundingBox) Height() float64 {
	if !bb.valid {
		return 0
	}
	return bb.Max.Y - bb.Min.Y
}

// AddPoint grows the box to include `p`.
func (bb BoundingBox) AddPoint(p Point) BoundingBox {
	if !bb.valid {
		return BoundingBox{Min: p, Max: p, valid: true}
	}
	bb.Min.X = math.Min(bb.Min.X, p.X)
	bb.Min.Y = math.Min(bb.Min.Y, p.Y)
	bb.Max.X = math.Max(bb.Max.X, p.X)
	bb.Max.Y = math.Max(bb.Max.Y, p.Y)
	return bb
}

// Union returns the smallest box containing both boxes.
// An empty box is the neutral element.
func (bb BoundingBox) Union(other BoundingBox) BoundingBox {
	if !other.valid {
		return bb
	}
	return bb.AddPoint(other.Min).AddPoint(other.Max)
}

// Inset moves every side of the box inward by `d`.
// A negative value grows the box. Insetting past the
// center collapses the box to its center line.
func (bb BoundingBox) Inset(d float64) BoundingBox {
	if !bb.valid {
		return bb
	}
	bb.Min.X += d
	bb.Min.Y += d
	bb.Max.X -= d
	bb.Max.Y -= d
	if bb.Min.X > bb.Max.X {
		c := (bb.Min.X + bb.Max.X) / 2
		bb.Min.X, bb.Max.X = c, c
	}
	if bb.Min.Y > bb.Max.Y {
		c := (bb.Min.Y + bb.Max.Y) / 2
		bb.Min.Y, bb.Max.Y = c, c
	}
	return bb
}

// Outset is Inset(-d)
func (bb BoundingBox) Outset(d float64) BoundingBox { return bb.Inset(-d) }

// Transform returns the bounding box of the four
// corners of `bb` mapped by `m`.
func (bb BoundingBox) Transform(m Matrix2D) BoundingBox {
	if !bb.valid {
		return bb
	}
	var out BoundingBox
	for _, p := range [4]Point{
		bb.Min, {bb.Max.X, bb.Min.Y}, bb.Max, {bb.Min.X, bb.Max.Y},
	} {
		out = out.AddPoint(m.Apply(p))
	}
	return out
}
