package svgicon

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgpath"
	"golang.org/x/net/html/charset"
)

// attrKind is the value type of a geometry attribute
type attrKind uint8

const (
	lengthAttr attrKind = iota + 1
	coordAttr
	pointsAttr
	pathDataAttr
	numbersAttr
)

// attrKinds lists the geometry attributes. Presentation
// attributes, transform and id are handled separately, and
// the remaining attributes are stored as raw strings.
var attrKinds = map[string]attrKind{
	"width":   lengthAttr,
	"height":  lengthAttr,
	"rx":      lengthAttr,
	"ry":      lengthAttr,
	"r":       lengthAttr,
	"x":       coordAttr,
	"y":       coordAttr,
	"cx":      coordAttr,
	"cy":      coordAttr,
	"x1":      coordAttr,
	"y1":      coordAttr,
	"x2":      coordAttr,
	"y2":      coordAttr,
	"points":  pointsAttr,
	"d":       pathDataAttr,
	"viewBox": numbersAttr,
}

// elementFunc builds the geometry of an element from
// the attributes collected in the parser.
type elementFunc func(c *parser, el *Element) Shape

var elementFuncs = map[string]elementFunc{
	"svg":      svgF,
	"g":        gF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"line":     lineF,
	"rect":     rectF,
	"polygon":  polygonF,
	"polyline": polylineF,
	"path":     pathF,
}

// parser is used while reading an svg file
type parser struct {
	errorMode ErrorMode
	doc       *Document
	stack     []NodeID
	geom      map[string]string // geometry attributes of the current element
	err       error             // set in StrictErrorMode
}

// ReadDocument reads a document from the given io.Reader.
// Only a subset of SVG is supported: unknown elements are
// kept in the tree but ignored when rendering.
// errMode determines if the parser ignores, logs a warning or errors out
// when an attribute value is invalid.
// Malformed XML always returns a *StructuralError.
func ReadDocument(stream io.Reader, errMode ErrorMode) (*Document, error) {
	c := parser{
		errorMode: errMode,
		doc:       &Document{ids: make(map[string]NodeID)},
		geom:      make(map[string]string),
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		line, _ := decoder.InputPos()
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				line = syntaxErr.Line
			}
			return nil, &StructuralError{Line: line, Err: err}
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			if err := c.readStartElement(se, line); err != nil {
				return nil, err
			}
		case xml.EndElement:
			c.stack = c.stack[:len(c.stack)-1]
		}
	}
	if len(c.doc.elements) == 0 {
		return nil, &StructuralError{Err: errEmptyDocument}
	}
	return c.doc, nil
}

// Parse is a convenience wrapper for ReadDocument.
func Parse(content []byte, errMode ErrorMode) (*Document, error) {
	return ReadDocument(bytes.NewReader(content), errMode)
}

// ReadFile reads the document from the named file.
func ReadFile(filename string, errMode ErrorMode) (*Document, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocument(fin, errMode)
}

func (c *parser) readStartElement(se xml.StartElement, line int) error {
	parent := NoNode
	if len(c.stack) == 0 {
		if len(c.doc.elements) != 0 {
			return &StructuralError{Line: line, Err: errMultipleRoots}
		}
		if se.Name.Local != "svg" {
			return &StructuralError{Line: line, Err: errRootElement}
		}
	} else {
		parent = c.stack[len(c.stack)-1]
	}

	n := NodeID(len(c.doc.elements))
	c.doc.elements = append(c.doc.elements, Element{
		Tag:       se.Name.Local,
		Line:      line,
		Transform: svgpath.Identity,
		Parent:    parent,
	})
	el := &c.doc.elements[n]

	df, known := elementFuncs[se.Name.Local]
	c.readAttributes(el, se.Attr, known)
	if known {
		el.Shape = df(c, el)
	} else {
		el.Shape = &Unknown{}
	}
	if c.err != nil {
		return c.err
	}

	if el.ID != "" {
		if _, has := c.doc.ids[el.ID]; has {
			c.warn(Diagnostic{Line: line, Tag: el.Tag, ID: el.ID, Attr: "id", Err: ErrDuplicateID})
		}
		c.doc.ids[el.ID] = n
	}
	if parent != NoNode {
		c.doc.elements[parent].Children = append(c.doc.elements[parent].Children, n)
	}
	c.stack = append(c.stack, n)
	return nil
}

func (c *parser) setRaw(el *Element, name, value string) {
	if el.Raw == nil {
		el.Raw = make(map[string]string)
	}
	el.Raw[name] = value
}

// readAttributes dispatches the attributes of `el`. The geometry
// attributes are stored in c.geom, to be read by the element function.
// Style declarations are applied after the presentation attributes.
func (c *parser) readAttributes(el *Element, attrs []xml.Attr, known bool) {
	for k := range c.geom {
		delete(c.geom, k)
	}
	for _, attr := range attrs {
		if attr.Name.Local == "id" && attr.Name.Space == "" {
			el.ID = attr.Value
		}
	}

	var declarations []string
	for _, attr := range attrs {
		name, value := attr.Name.Local, attr.Value
		switch {
		case attr.Name.Space == "xmlns" || name == "xmlns" || name == "id":
		case attr.Name.Space != "" || !known:
			c.setRaw(el, name, value)
		case name == "style":
			declarations = append(declarations, strings.Split(value, ";")...)
		case name == "transform":
			m, err := svgpath.ParseTransform(value)
			if err != nil {
				c.attrError(el, name, err)
				el.Empty = true
			}
			el.Transform = m
		case c.readPresentation(el, name, value):
		default:
			if _, ok := attrKinds[name]; ok {
				c.geom[name] = value
			} else {
				c.setRaw(el, name, value)
			}
		}
	}

	for _, decl := range declarations {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(kv[0]))
		c.readPresentation(el, k, strings.TrimSpace(kv[1]))
	}
}

func (c *parser) attrError(el *Element, attr string, err error) {
	if c.err != nil {
		return
	}
	c.err = c.report(Diagnostic{Line: el.Line, Tag: el.Tag, ID: el.ID, Attr: attr, Err: err})
}

// readPresentation returns false if `name` is not a presentation attribute.
// Invalid paints are replaced by a transparent color.
func (c *parser) readPresentation(el *Element, name, value string) bool {
	st := &el.Style
	switch name {
	case "fill", "stroke", "color":
		paint, err := ParsePaint(value)
		if err != nil {
			c.attrError(el, name, err)
			paint = Transparent
		}
		switch name {
		case "fill":
			st.Fill = &paint
		case "stroke":
			st.Stroke = &paint
		default:
			st.Color = &paint
		}
	case "stroke-width":
		width, err := ParseLength(value)
		if err != nil {
			c.attrError(el, name, err)
			return true
		}
		st.StrokeWidth = &width
	case "stroke-miterlimit":
		limit, rest, err := svgpath.ParseFloat(value)
		if err == nil && strings.TrimSpace(rest) != "" {
			err = fmt.Errorf("%w: invalid number %q", ErrUnsupportedFeature, value)
		}
		if err != nil {
			c.attrError(el, name, err)
			return true
		}
		st.MiterLimit = &limit
	case "fill-rule":
		if strings.TrimSpace(value) == "evenodd" {
			st.FillRule = svgdraw.EvenOdd
		} else {
			st.FillRule = svgdraw.NonZero
		}
	case "stroke-linejoin":
		switch strings.TrimSpace(value) {
		case "round":
			st.LineJoin = svgdraw.RoundJoin
		case "bevel":
			st.LineJoin = svgdraw.BevelJoin
		default:
			st.LineJoin = svgdraw.MiterJoin
		}
	case "stroke-linecap":
		switch strings.TrimSpace(value) {
		case "round":
			st.LineCap = svgdraw.RoundCap
		case "square":
			st.LineCap = svgdraw.SquareCap
		default:
			st.LineCap = svgdraw.ButtCap
		}
	case "display":
		st.Display = strings.TrimSpace(value)
	default:
		return false
	}
	return true
}

// length parses the geometry attribute `name`, returning
// the zero Length if it is absent.
func (c *parser) length(el *Element, name string) Length {
	v, ok := c.geom[name]
	if !ok {
		return Length{}
	}
	l, err := ParseLength(v)
	if err != nil {
		c.attrError(el, name, err)
		el.Empty = true
	}
	return l
}

// radius is length, rejecting negative values
func (c *parser) radius(el *Element, name string) Length {
	l := c.length(el, name)
	if l.Value < 0 {
		c.attrError(el, name, fmt.Errorf("%w: negative value %s", ErrUnsupportedFeature, l))
		el.Empty = true
	}
	return l
}

func (c *parser) points(el *Element) []svgpath.Point {
	pts, err := ParsePoints(c.geom["points"])
	if err != nil {
		c.attrError(el, "points", err)
		el.Empty = true
		return nil
	}
	return pts
}

func svgF(c *parser, el *Element) Shape {
	if el.Parent != NoNode { // nested svg are simple groups
		return &Group{}
	}
	// invalid dimensions do not discard the content
	empty := el.Empty
	c.doc.Width, c.doc.Height = DefaultDocumentSize, DefaultDocumentSize
	if _, ok := c.geom["width"]; ok {
		c.doc.Width = c.length(el, "width")
	}
	if _, ok := c.geom["height"]; ok {
		c.doc.Height = c.length(el, "height")
	}
	el.Empty = empty
	if v, ok := c.geom["viewBox"]; ok {
		nums, err := svgpath.ParseNumbers(v)
		if err == nil && len(nums) != 4 {
			err = fmt.Errorf("%w: viewBox expects 4 numbers", ErrUnsupportedFeature)
		}
		if err != nil {
			c.attrError(el, "viewBox", err)
		} else {
			c.doc.ViewBox = svgpath.NewBoundingBox(svgpath.Point{X: nums[0], Y: nums[1]},
				svgpath.Point{X: nums[0] + nums[2], Y: nums[1] + nums[3]})
		}
	}
	return &Group{}
}

func gF(*parser, *Element) Shape { return &Group{} } // g only holds style and transform

func circleF(c *parser, el *Element) Shape {
	return &Circle{CX: c.length(el, "cx"), CY: c.length(el, "cy"), R: c.radius(el, "r")}
}

func ellipseF(c *parser, el *Element) Shape {
	return &Ellipse{CX: c.length(el, "cx"), CY: c.length(el, "cy"), RX: c.radius(el, "rx"), RY: c.radius(el, "ry")}
}

func lineF(c *parser, el *Element) Shape {
	return &Line{X1: c.length(el, "x1"), Y1: c.length(el, "y1"), X2: c.length(el, "x2"), Y2: c.length(el, "y2")}
}

func rectF(c *parser, el *Element) Shape {
	r := &Rect{
		X:      c.length(el, "x"),
		Y:      c.length(el, "y"),
		Width:  c.radius(el, "width"),
		Height: c.radius(el, "height"),
		RX:     c.radius(el, "rx"),
		RY:     c.radius(el, "ry"),
	}
	// a single radius applies to both axis
	_, hasRx := c.geom["rx"]
	_, hasRy := c.geom["ry"]
	if hasRx && !hasRy {
		r.RY = r.RX
	} else if hasRy && !hasRx {
		r.RX = r.RY
	}
	return r
}

func polygonF(c *parser, el *Element) Shape { return &Polygon{Points: c.points(el)} }

func polylineF(c *parser, el *Element) Shape { return &Polyline{Points: c.points(el)} }

func pathF(c *parser, el *Element) Shape {
	data, err := svgpath.ParsePath(c.geom["d"])
	if err != nil {
		c.attrError(el, "d", err)
		el.Empty = true
	}
	return &Path{Data: data}
}
