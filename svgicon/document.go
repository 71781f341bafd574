// Package svgicon parses a subset of SVG into a typed,
// read-only scene tree, and provides bounding box
// computation and rendering on a svgdraw.Surface.
// See for example svgraster or svgpdf for concrete surfaces.
package svgicon

import (
	"sort"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgpath"
)

// NodeID indexes an element in its Document.
type NodeID int32

// NoNode is the parent of the root element.
const NoNode NodeID = -1

// Shape is the geometry of an element, one of
// *Group, *Circle, *Ellipse, *Line, *Rect, *Polygon,
// *Polyline, *Path or *Unknown.
type Shape interface {
	isShape()
}

// Group is used for both <svg> and <g> containers.
type Group struct{}

type Circle struct{ CX, CY, R Length }

type Ellipse struct{ CX, CY, RX, RY Length }

type Line struct{ X1, Y1, X2, Y2 Length }

// Rect may have rounded corners when RX or RY is non zero.
type Rect struct{ X, Y, Width, Height, RX, RY Length }

type Polygon struct{ Points []svgpath.Point }

type Polyline struct{ Points []svgpath.Point }

type Path struct{ Data svgpath.Path }

// Unknown is an element outside of the supported subset.
// It is kept in the tree (with its children), but never rendered.
type Unknown struct{}

func (*Group) isShape()    {}
func (*Circle) isShape()   {}
func (*Ellipse) isShape()  {}
func (*Line) isShape()     {}
func (*Rect) isShape()     {}
func (*Polygon) isShape()  {}
func (*Polyline) isShape() {}
func (*Path) isShape()     {}
func (*Unknown) isShape()  {}

// Style stores the presentation attributes declared on an element.
// nil fields were not declared: no inheritance is performed.
type Style struct {
	Fill, Stroke *Paint
	Color        *Paint // used to resolve currentColor
	StrokeWidth  *Length
	MiterLimit   *float64
	FillRule     svgdraw.WindingRule
	LineJoin     svgdraw.JoinMode
	LineCap      svgdraw.CapMode
	Display      string
}

// Element is a node of the scene tree.
type Element struct {
	Tag       string
	ID        string // optional
	Line      int    // source line of the start tag
	Transform svgpath.Matrix2D
	Style     Style
	Shape     Shape
	// Empty is true when the geometry has been discarded
	// because of an invalid attribute.
	Empty bool
	// Raw stores the attributes not interpreted by the parser.
	Raw map[string]string

	Parent   NodeID
	Children []NodeID
}

// IsContainer returns true for <svg> and <g> elements.
func (e *Element) IsContainer() bool {
	_, ok := e.Shape.(*Group)
	return ok
}

// Hidden returns true if the element has display="none".
func (e *Element) Hidden() bool { return e.Style.Display == "none" }

// DefaultDocumentSize is used for the dimensions
// the root element does not declare.
var DefaultDocumentSize = Length{100, Pc}

// Document is the result of parsing an svg file.
// It is read only once built, and may be safely shared between goroutines.
type Document struct {
	// Width and Height are the declared dimensions of the
	// root element, or DefaultDocumentSize.
	Width, Height Length
	// ViewBox is empty if not declared
	ViewBox svgpath.BoundingBox

	// Diagnostics lists the element scoped problems
	// found while parsing.
	Diagnostics []Diagnostic

	elements []Element // root at index 0
	ids      map[string]NodeID
}

// Root returns the root <svg> element.
func (d *Document) Root() NodeID { return 0 }

// Len returns the number of elements in the document.
func (d *Document) Len() int { return len(d.elements) }

// Element returns the element at `n`, which must not be modified.
func (d *Document) Element(n NodeID) *Element { return &d.elements[n] }

// Children returns the children of `n`, in document order.
func (d *Document) Children(n NodeID) []NodeID { return d.elements[n].Children }

// Find looks up an element by id.
func (d *Document) Find(id string) (NodeID, bool) {
	n, ok := d.ids[id]
	return n, ok
}

// IDs returns the sorted list of the declared ids.
func (d *Document) IDs() []string {
	out := make([]string, 0, len(d.ids))
	for id := range d.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Walk calls `fn` for `n` and its descendants, depth first in document order.
// Children of a node are skipped if `fn` returns false.
func (d *Document) Walk(n NodeID, fn func(n NodeID, e *Element) bool) {
	e := d.Element(n)
	if !fn(n, e) {
		return
	}
	for _, child := range e.Children {
		d.Walk(child, fn)
	}
}
