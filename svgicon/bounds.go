package svgicon

import (
	"fmt"
	"image/color"
	"math"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgpath"
)

// resolvedStyle is the style of an element, with defaults applied
type resolvedStyle struct {
	fill, stroke       color.NRGBA
	hasFill, hasStroke bool
	width              float64 // stroke width
	miterLimit         float64
	fillRule           svgdraw.WindingRule
	join               svgdraw.JoinMode
	cap                svgdraw.CapMode
}

// resolvePaint returns false if the paint is disabled.
// Absent and inherited paints use the default `def`.
func resolvePaint(p *Paint, def Paint, current color.NRGBA) (color.NRGBA, bool) {
	if p == nil || p.Kind == InheritPaint {
		p = &def
	}
	switch p.Kind {
	case NoPaint:
		return color.NRGBA{}, false
	case CurrentColor:
		return current, true
	default:
		return p.Color, true
	}
}

func (st Style) resolve() resolvedStyle {
	current := black
	if st.Color != nil && st.Color.Kind == ColorPaint {
		current = st.Color.Color
	}
	out := resolvedStyle{
		width:      1,
		miterLimit: svgdraw.DefaultMiterLimit,
		fillRule:   st.FillRule,
		join:       st.LineJoin,
		cap:        st.LineCap,
	}
	out.fill, out.hasFill = resolvePaint(st.Fill, Paint{Kind: ColorPaint, Color: black}, current)
	out.stroke, out.hasStroke = resolvePaint(st.Stroke, Paint{Kind: NoPaint}, current)
	if st.StrokeWidth != nil {
		out.width = st.StrokeWidth.Pixels()
	}
	if st.MiterLimit != nil {
		out.miterLimit = *st.MiterLimit
	}
	out.hasStroke = out.hasStroke && out.width > 0
	return out
}

// Bounds looks up the element `id` and returns its bounding box,
// in the element coordinate space.
// It returns an error wrapping ErrMissingElementID if `id` is not found.
func (d *Document) Bounds(id string) (svgpath.BoundingBox, error) {
	n, ok := d.Find(id)
	if !ok {
		return svgpath.BoundingBox{}, fmt.Errorf("%w: %q", ErrMissingElementID, id)
	}
	return d.BoundingBox(n), nil
}

// TransformedBounds returns the bounding box of `n`, mapped
// by the transform of `n`, that is, in its parent coordinate space.
func (d *Document) TransformedBounds(n NodeID) svgpath.BoundingBox {
	return d.BoundingBox(n).Transform(d.Element(n).Transform)
}

// BoundingBox returns the bounds of `n`, including the stroke
// if any, in the coordinate space of `n` (its transform is not applied).
// Groups return the union of their visible children, and
// unknown elements an empty box.
func (d *Document) BoundingBox(n NodeID) svgpath.BoundingBox {
	e := d.Element(n)
	if e.Empty {
		return svgpath.BoundingBox{}
	}
	switch shape := e.Shape.(type) {
	case *Group:
		var out svgpath.BoundingBox
		for _, child := range e.Children {
			if d.Element(child).Hidden() {
				continue
			}
			out = out.Union(d.TransformedBounds(child))
		}
		return out
	case *Unknown:
		return svgpath.BoundingBox{}
	default:
		return shapeBounds(shape, e.Style.resolve())
	}
}

func shapeBounds(shape Shape, style resolvedStyle) svgpath.BoundingBox {
	var bb svgpath.BoundingBox
	switch shape := shape.(type) {
	case *Circle:
		c, r := svgpath.Point{X: shape.CX.Pixels(), Y: shape.CY.Pixels()}, shape.R.Pixels()
		bb = svgpath.NewBoundingBox(svgpath.Point{X: c.X - r, Y: c.Y - r}, svgpath.Point{X: c.X + r, Y: c.Y + r})
	case *Ellipse:
		c := svgpath.Point{X: shape.CX.Pixels(), Y: shape.CY.Pixels()}
		rx, ry := shape.RX.Pixels(), shape.RY.Pixels()
		bb = svgpath.NewBoundingBox(svgpath.Point{X: c.X - rx, Y: c.Y - ry}, svgpath.Point{X: c.X + rx, Y: c.Y + ry})
	case *Line:
		bb = svgpath.NewBoundingBox(svgpath.Point{X: shape.X1.Pixels(), Y: shape.Y1.Pixels()},
			svgpath.Point{X: shape.X2.Pixels(), Y: shape.Y2.Pixels()})
	case *Rect:
		x, y := shape.X.Pixels(), shape.Y.Pixels()
		bb = svgpath.NewBoundingBox(svgpath.Point{X: x, Y: y},
			svgpath.Point{X: x + shape.Width.Pixels(), Y: y + shape.Height.Pixels()})
	case *Polygon:
		return polyBounds(shape.Points, true, style)
	case *Polyline:
		return polyBounds(shape.Points, false, style)
	case *Path:
		bb = shape.Data.Bounds()
	}
	if style.hasStroke {
		bb = bb.Outset(style.width / 2)
	}
	return bb
}

// polyBounds returns the union of the vertices, outset by
// the largest stroke extension, taking miter joins into account.
func polyBounds(points []svgpath.Point, closed bool, style resolvedStyle) svgpath.BoundingBox {
	var bb svgpath.BoundingBox
	for _, p := range points {
		bb = bb.AddPoint(p)
	}
	if !style.hasStroke {
		return bb
	}
	return bb.Outset(miterExtension(points, closed, style.width/2, style.miterLimit))
}

// miterExtension returns the largest distance from a vertex to the
// stroke outline. It starts at the half width `hw`, and for each vertex
// with an angle θ between its edges, the miter length hw / sin(θ/2) is
// used when the ratio 1 / sin(θ/2) does not exceed `miterLimit`.
// Other joins are beveled and do not extend past the half width.
// Only the interior vertices of open polylines have a join.
func miterExtension(points []svgpath.Point, closed bool, hw, miterLimit float64) float64 {
	ext := hw
	n := len(points)
	for i, v := range points {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		a := points[(i-1+n)%n].Sub(v)
		b := points[(i+1)%n].Sub(v)
		la, lb := a.Len(), b.Len()
		if la == 0 || lb == 0 {
			continue
		}
		cos := math.Max(-1, math.Min(1, a.Dot(b)/(la*lb)))
		sin := math.Sin(math.Acos(cos) / 2)
		if sin == 0 {
			continue
		}
		if 1/sin <= miterLimit {
			ext = math.Max(ext, hw/sin)
		}
	}
	return ext
}
