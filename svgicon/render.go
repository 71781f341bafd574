package svgicon

import (
	"fmt"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgpath"
)

// RenderOptions configures Render.
type RenderOptions struct {
	// ID selects the subtree to render.
	// The whole document is rendered if empty.
	ID string
	// Transform is applied after the transforms of the document,
	// to map the user space on the surface.
	// The zero value is interpreted as the identity.
	Transform svgpath.Matrix2D
}

// Render walks the document (or the subtree selected by options.ID)
// depth first, and sends the drawing operations to `surface`.
// Elements with display="none" are skipped, along with their children.
// An error wrapping ErrMissingElementID is returned if options.ID is not found,
// and nothing is drawn.
func (d *Document) Render(surface svgdraw.Surface, options RenderOptions) error {
	start := d.Root()
	if options.ID != "" {
		n, ok := d.Find(options.ID)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingElementID, options.ID)
		}
		start = n
	}
	base := options.Transform
	if base == (svgpath.Matrix2D{}) {
		base = svgpath.Identity
	}
	if base != svgpath.Identity {
		surface.PushState()
		surface.ConcatTransform(base)
		d.renderNode(surface, start)
		surface.PopState()
		return nil
	}
	d.renderNode(surface, start)
	return nil
}

// FitOptions returns the options rendering the element `id`, or the
// whole document if `id` is empty, scaled to fill a width x height target.
// The element is framed by its bounds in its parent space, the whole
// document by its viewBox when it has one.
func (d *Document) FitOptions(id string, width, height float64, flip bool) (RenderOptions, error) {
	box := d.ViewBox
	if id != "" {
		n, ok := d.Find(id)
		if !ok {
			return RenderOptions{}, fmt.Errorf("%w: %q", ErrMissingElementID, id)
		}
		box = d.TransformedBounds(n)
	} else if box.IsEmpty() {
		box = d.TransformedBounds(d.Root())
	}
	return RenderOptions{ID: id, Transform: svgpath.FitTransform(box, width, height, flip)}, nil
}

func (d *Document) renderNode(surface svgdraw.Surface, n NodeID) {
	e := d.Element(n)
	if e.Empty || e.Hidden() {
		return
	}
	switch e.Shape.(type) {
	case *Unknown:
	case *Group:
		surface.PushState()
		if e.Transform != svgpath.Identity {
			surface.ConcatTransform(e.Transform)
		}
		for _, child := range e.Children {
			d.renderNode(surface, child)
		}
		surface.PopState()
	default:
		renderShape(surface, e)
	}
}

// outline returns the path drawing `shape`, or nil
// for shapes with no visible geometry.
func outline(shape Shape) svgpath.Path {
	var out svgpath.Path
	switch shape := shape.(type) {
	case *Circle:
		if r := shape.R.Pixels(); r > 0 {
			svgpath.AddEllipse(&out, svgpath.Point{X: shape.CX.Pixels(), Y: shape.CY.Pixels()}, r, r)
		}
	case *Ellipse:
		rx, ry := shape.RX.Pixels(), shape.RY.Pixels()
		if rx > 0 && ry > 0 {
			svgpath.AddEllipse(&out, svgpath.Point{X: shape.CX.Pixels(), Y: shape.CY.Pixels()}, rx, ry)
		}
	case *Line:
		out.MoveTo(svgpath.Point{X: shape.X1.Pixels(), Y: shape.Y1.Pixels()})
		out.LineTo(svgpath.Point{X: shape.X2.Pixels(), Y: shape.Y2.Pixels()})
	case *Rect:
		w, h := shape.Width.Pixels(), shape.Height.Pixels()
		if w > 0 && h > 0 {
			svgpath.AddRoundRect(&out, shape.X.Pixels(), shape.Y.Pixels(), w, h, shape.RX.Pixels(), shape.RY.Pixels())
		}
	case *Polygon:
		out = polyOutline(shape.Points)
		if out != nil {
			out.ClosePath()
		}
	case *Polyline:
		out = polyOutline(shape.Points)
	case *Path:
		out = shape.Data
	}
	return out
}

func polyOutline(points []svgpath.Point) svgpath.Path {
	if len(points) < 2 {
		return nil
	}
	out := make(svgpath.Path, 0, len(points)+1)
	out.MoveTo(points[0])
	for _, p := range points[1:] {
		out.LineTo(p)
	}
	return out
}

func renderShape(surface svgdraw.Surface, e *Element) {
	style := e.Style.resolve()
	if _, isLine := e.Shape.(*Line); isLine {
		style.hasFill = false // lines have no interior
	}
	if !style.hasFill && !style.hasStroke {
		return
	}
	path := outline(e.Shape)
	if len(path) == 0 {
		return
	}

	hasTransform := e.Transform != svgpath.Identity
	if hasTransform {
		surface.PushState()
		surface.ConcatTransform(e.Transform)
	}

	path.AddTo(surface)
	if style.hasFill {
		surface.SetFillColor(style.fill)
		surface.FillPath(style.fillRule)
	}
	if style.hasStroke {
		surface.SetStrokeColor(style.stroke)
		surface.SetLineWidth(style.width)
		if ml, ok := surface.(svgdraw.MiterLimiter); ok {
			ml.SetMiterLimit(style.miterLimit)
		}
		if ss, ok := surface.(svgdraw.StrokeStyler); ok {
			ss.SetLineJoin(style.join)
			ss.SetLineCap(style.cap)
		}
		surface.StrokePath()
	}

	if hasTransform {
		surface.PopState()
	}
}
