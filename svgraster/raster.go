// Implements a raster backend to render SVG documents,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"io"
	"math"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgicon"
	"github.com/benoitkugler/hudsvg/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var (
	_ svgdraw.Surface      = (*Renderer)(nil) // assert interface conformance
	_ svgdraw.MiterLimiter = (*Renderer)(nil)
	_ svgdraw.StrokeStyler = (*Renderer)(nil)
)

// Renderer is a svgdraw.Surface drawing into an image.
// Paths are recorded in device space by the embedded Context,
// and replayed into rasterx when painted.
type Renderer struct {
	svgdraw.Context

	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize cubic bezier curves.
// The filler and the dasher share `scanner`.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		Context: svgdraw.NewContext(svgpath.Identity),
		dasher:  rasterx.NewDasher(width, height, scanner),
		filler:  rasterx.NewFiller(width, height, scanner),
	}
}

// RasterDocumentToImage uses a ScannerGV instance to render
// the document (or the element selected by options.ID)
// into a new width x height image.
func RasterDocumentToImage(doc *svgicon.Document, width, height int, options svgicon.RenderOptions) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	if err := doc.Render(renderer, options); err != nil {
		return nil, err
	}
	return img, nil
}

// RasterSVGIconToImage parses `icon` and renders it at the size
// of its viewBox (or its width and height when no viewBox is declared).
func RasterSVGIconToImage(icon io.Reader, mode svgicon.ErrorMode) (*image.RGBA, error) {
	doc, err := svgicon.ReadDocument(icon, mode)
	if err != nil {
		return nil, err
	}
	if doc.ViewBox.IsEmpty() {
		width, height := int(math.Ceil(doc.Width.Pixels())), int(math.Ceil(doc.Height.Pixels()))
		return RasterDocumentToImage(doc, width, height, svgicon.RenderOptions{})
	}
	width, height := int(math.Ceil(doc.ViewBox.Width())), int(math.Ceil(doc.ViewBox.Height()))
	options, err := doc.FitOptions("", float64(width), float64(height), false)
	if err != nil {
		return nil, err
	}
	return RasterDocumentToImage(doc, width, height, options)
}

func toFixed(p svgpath.Point) fixed.Point26_6 { return rasterx.ToFixedP(p.X, p.Y) }

// replay sends a device space path made of
// MoveTo, LineTo, CurveTo and ClosePath to `a`.
func replay(path svgpath.Path, a rasterx.Adder) {
	var (
		current, start svgpath.Point
		open           bool
	)
	for _, op := range path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			if open {
				a.Stop(false)
			}
			current, start = svgpath.Point(op), svgpath.Point(op)
			a.Start(toFixed(current))
			open = true
		case svgpath.LineTo:
			if !open {
				a.Start(toFixed(current))
				open = true
			}
			current = svgpath.Point(op)
			a.Line(toFixed(current))
		case svgpath.CurveTo:
			if !open {
				a.Start(toFixed(current))
				open = true
			}
			current = op.To
			a.CubeBezier(toFixed(op.C1), toFixed(op.C2), toFixed(op.To))
		case svgpath.ClosePath:
			if open {
				a.Stop(true)
				open = false
			}
			current = start
		}
	}
	if open {
		a.Stop(false)
	}
}

// FillPath fills the current path. Note that
// ScannerGV only supports the non zero winding rule.
func (rd *Renderer) FillPath(rule svgdraw.WindingRule) {
	rd.filler.Clear()
	rd.filler.SetWinding(rule == svgdraw.NonZero)
	replay(rd.Paint(), rd.filler)
	rd.filler.SetColor(rd.State().Fill)
	rd.filler.Draw()
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.MiterJoin: rasterx.Miter,
		svgdraw.RoundJoin: rasterx.Round,
		svgdraw.BevelJoin: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:   rasterx.ButtCap,
		svgdraw.RoundCap:  rasterx.RoundCap,
		svgdraw.SquareCap: rasterx.SquareCap,
	}
)

// StrokePath strokes the current path with the
// line width, join, cap and miter limit of the current state.
func (rd *Renderer) StrokePath() {
	st := rd.State()
	gap := rasterx.FlatGap
	if st.Join == svgdraw.RoundJoin {
		gap = rasterx.RoundGap
	}
	rd.dasher.Clear()
	rd.dasher.SetStroke(
		fixed.Int26_6(rd.DeviceLineWidth()*64), fixed.Int26_6(st.MiterLimit*64),
		capToFunc[st.Cap], capToFunc[st.Cap], gap, joinToJoin[st.Join], nil, 0,
	)
	replay(rd.Paint(), rd.dasher)
	rd.dasher.SetColor(st.Stroke)
	rd.dasher.Draw()
}
