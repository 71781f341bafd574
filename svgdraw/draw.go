// Package svgdraw defines the drawing surface targeted by
// the render dispatcher, and the state handling shared by
// the concrete backends (see svgraster and svgpdf).
package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/hudsvg/svgpath"
)

// WindingRule selects how the interior of a path is computed when filling.
type WindingRule uint8

const (
	NonZero WindingRule = iota
	EvenOdd
)

func (w WindingRule) String() string {
	if w == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Surface is an external drawing target.
// Path construction methods are inherited from svgpath.Adder,
// with points expressed in the current user space.
// FillPath and StrokePath paint the current path without
// discarding it: the next MoveTo following a paint operation
// starts a new path.
type Surface interface {
	svgpath.Adder

	SetFillColor(c color.NRGBA)
	SetStrokeColor(c color.NRGBA)
	// SetLineWidth sets the stroke width, in user space units.
	SetLineWidth(w float64)

	FillPath(rule WindingRule)
	StrokePath()

	// PushState saves the colors, the line width and the transform.
	PushState()
	// PopState restores the last saved state.
	PopState()
	// ConcatTransform right multiplies `m` onto the current transform,
	// so that `m` is applied first to subsequent points.
	ConcatTransform(m svgpath.Matrix2D)
}

// MiterLimiter is implemented by surfaces supporting
// a configurable miter limit for stroke joins.
type MiterLimiter interface {
	SetMiterLimit(limit float64)
}

// JoinMode specifies how stroke segments are joined.
type JoinMode uint8

const (
	MiterJoin JoinMode = iota // the SVG default
	RoundJoin
	BevelJoin
)

func (j JoinMode) String() string {
	switch j {
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	default:
		return "miter"
	}
}

// CapMode specifies how the ends of open sub paths are stroked.
type CapMode uint8

const (
	ButtCap CapMode = iota // the SVG default
	RoundCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	default:
		return "butt"
	}
}

// StrokeStyler is implemented by surfaces supporting
// line joins and caps other than the defaults.
type StrokeStyler interface {
	SetLineJoin(j JoinMode)
	SetLineCap(c CapMode)
}
