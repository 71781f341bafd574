// Implements a PDF backend to render SVG documents,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"fmt"
	"io"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgicon"
	"github.com/benoitkugler/hudsvg/svgpath"
	"github.com/jung-kurt/gofpdf"
)

// assert interface conformance
var (
	_ svgdraw.Surface      = (*Renderer)(nil)
	_ svgdraw.MiterLimiter = (*Renderer)(nil)
	_ svgdraw.StrokeStyler = (*Renderer)(nil)
)

// Renderer is a svgdraw.Surface writing vector
// paths in the current page of a gofpdf document.
// Coordinates are given in the document unit, with
// the origin at the top left corner of the page.
type Renderer struct {
	svgdraw.Context

	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{Context: svgdraw.NewContext(svgpath.Identity), pdf: pdf}
}

// RenderDocument writes the document (or the element selected by options.ID)
// in a new width x height page (in points), and outputs the PDF file to `w`.
func RenderDocument(doc *svgicon.Document, width, height float64, options svgicon.RenderOptions, w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	if err := doc.Render(NewRenderer(pdf), options); err != nil {
		return err
	}
	return pdf.Output(w)
}

// writePath sends the current device space path to the pdf.
func (rd *Renderer) writePath() {
	for _, op := range rd.Paint() {
		switch op := op.(type) {
		case svgpath.MoveTo:
			rd.pdf.MoveTo(op.X, op.Y)
		case svgpath.LineTo:
			rd.pdf.LineTo(op.X, op.Y)
		case svgpath.CurveTo:
			rd.pdf.CurveBezierCubicTo(op.C1.X, op.C1.Y, op.C2.X, op.C2.Y, op.To.X, op.To.Y)
		case svgpath.ClosePath:
			rd.pdf.ClosePath()
		}
	}
}

func (rd *Renderer) FillPath(rule svgdraw.WindingRule) {
	fill := rd.State().Fill
	rd.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	rd.pdf.SetAlpha(float64(fill.A)/255, "")
	rd.writePath()
	styleStr := "f"
	if rule == svgdraw.EvenOdd {
		styleStr = "f*"
	}
	rd.pdf.DrawPath(styleStr)
}

var (
	joinToStyle = [...]string{
		svgdraw.MiterJoin: "miter",
		svgdraw.RoundJoin: "round",
		svgdraw.BevelJoin: "bevel",
	}
	capToStyle = [...]string{
		svgdraw.ButtCap:   "butt",
		svgdraw.RoundCap:  "round",
		svgdraw.SquareCap: "square",
	}
)

func (rd *Renderer) StrokePath() {
	st := rd.State()
	rd.pdf.SetDrawColor(int(st.Stroke.R), int(st.Stroke.G), int(st.Stroke.B))
	rd.pdf.SetAlpha(float64(st.Stroke.A)/255, "")
	rd.pdf.SetLineWidth(rd.DeviceLineWidth())
	rd.pdf.SetLineJoinStyle(joinToStyle[st.Join])
	rd.pdf.SetLineCapStyle(capToStyle[st.Cap])
	// gofpdf has no setter for the miter limit
	rd.pdf.RawWriteStr(fmt.Sprintf("%.2f M", st.MiterLimit))
	rd.writePath()
	rd.pdf.DrawPath("D")
}
