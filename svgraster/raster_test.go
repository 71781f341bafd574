package svgraster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgicon"
	"github.com/benoitkugler/hudsvg/svgpath"
	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func parse(t *testing.T, src string) *svgicon.Document {
	t.Helper()
	doc, err := svgicon.Parse([]byte(src), svgicon.StrictErrorMode)
	require.NoError(t, err)
	return doc
}

func assertOpaque(t *testing.T, want color.RGBA, got color.Color) {
	t.Helper()
	c := color.RGBAModel.Convert(got).(color.RGBA)
	assert.InDelta(t, want.R, c.R, 2)
	assert.InDelta(t, want.G, c.G, 2)
	assert.InDelta(t, want.B, c.B, 2)
	assert.InDelta(t, want.A, c.A, 2)
}

var (
	red         = color.RGBA{R: 0xff, A: 0xff}
	blue        = color.RGBA{B: 0xff, A: 0xff}
	transparent = color.RGBA{}
)

func TestFill(t *testing.T) {
	doc := parse(t, `<svg width="10" height="10"><rect x="2" y="2" width="6" height="6" fill="red"/></svg>`)
	img, err := RasterDocumentToImage(doc, 10, 10, svgicon.RenderOptions{})
	require.NoError(t, err)

	assertOpaque(t, red, img.At(5, 5))
	assertOpaque(t, red, img.At(2, 7))
	assertOpaque(t, transparent, img.At(0, 0))
	assertOpaque(t, transparent, img.At(8, 8))
}

func TestStroke(t *testing.T) {
	doc := parse(t, `<svg><line x1="0" y1="5" x2="10" y2="5" stroke="blue" stroke-width="2"/></svg>`)
	img, err := RasterDocumentToImage(doc, 10, 10, svgicon.RenderOptions{})
	require.NoError(t, err)

	assertOpaque(t, blue, img.At(5, 4))
	assertOpaque(t, blue, img.At(5, 5))
	assertOpaque(t, transparent, img.At(5, 2))
	assertOpaque(t, transparent, img.At(5, 7))
}

func TestSiblingPathsAreIndependent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	rd := NewRenderer(20, 20, rasterx.NewScannerGV(20, 20, img, img.Bounds()))
	rd.SetFillColor(color.NRGBA{R: 0xff, A: 0xff})
	svgpath.AddRect(rd, 0, 0, 4, 4)
	rd.FillPath(svgdraw.NonZero)

	// no moveto: the triangle starts at the origin
	rd.LineTo(svgpath.Point{X: 10, Y: 10})
	rd.LineTo(svgpath.Point{X: 10})
	rd.SetFillColor(color.NRGBA{B: 0xff, A: 0xff})
	rd.FillPath(svgdraw.NonZero)

	assertOpaque(t, red, img.At(1, 3))
	assertOpaque(t, blue, img.At(8, 3))
	assertOpaque(t, transparent, img.At(3, 10))

	doc, err := svgicon.Parse([]byte(`<svg><rect width="4" height="4" fill="red"/><path d="L10,10 L10,0" fill="blue"/></svg>`),
		svgicon.IgnoreErrorMode)
	require.NoError(t, err)
	require.Len(t, doc.Diagnostics, 1)
	img, err = RasterDocumentToImage(doc, 20, 20, svgicon.RenderOptions{})
	require.NoError(t, err)
	assertOpaque(t, red, img.At(1, 3))
	assertOpaque(t, transparent, img.At(8, 3))
}

func TestTransformedStroke(t *testing.T) {
	// the line width is scaled by the transform
	doc := parse(t, `<svg><g transform="scale(2,2)"><line x1="0" y1="2.5" x2="5" y2="2.5" stroke="blue"/></g></svg>`)
	img, err := RasterDocumentToImage(doc, 10, 10, svgicon.RenderOptions{})
	require.NoError(t, err)

	assertOpaque(t, blue, img.At(5, 4))
	assertOpaque(t, blue, img.At(5, 5))
	assertOpaque(t, transparent, img.At(5, 2))
}

func TestFitElement(t *testing.T) {
	doc := parse(t, `<svg>
		<rect x="100" y="100" width="10" height="10" fill="red"/>
		<rect id="small" x="-3" y="-3" width="1" height="1" fill="blue"/>
	</svg>`)
	options, err := doc.FitOptions("small", 8, 8, false)
	require.NoError(t, err)
	img, err := RasterDocumentToImage(doc, 8, 8, options)
	require.NoError(t, err)

	// the element covers the whole image, and nothing else is drawn
	for _, p := range []image.Point{{0, 0}, {7, 7}, {3, 4}} {
		assertOpaque(t, blue, img.At(p.X, p.Y))
	}

	_, err = doc.FitOptions("missing", 8, 8, false)
	assert.ErrorIs(t, err, svgicon.ErrMissingElementID)
}

func TestFlip(t *testing.T) {
	doc := parse(t, `<svg>
		<g id="g">
			<rect width="10" height="5" fill="red"/>
			<rect y="5" width="10" height="5" fill="blue"/>
		</g>
	</svg>`)
	options, err := doc.FitOptions("g", 10, 10, true)
	require.NoError(t, err)
	img, err := RasterDocumentToImage(doc, 10, 10, options)
	require.NoError(t, err)

	assertOpaque(t, blue, img.At(5, 1))
	assertOpaque(t, red, img.At(5, 8))
}

func TestRasterSVGIconToImage(t *testing.T) {
	const src = `<svg viewBox="0 0 20 10"><circle cx="10" cy="5" r="4" fill="blue"/></svg>`
	img, err := RasterSVGIconToImage(strings.NewReader(src), svgicon.IgnoreErrorMode)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())
	assertOpaque(t, blue, img.At(10, 5))
	assertOpaque(t, transparent, img.At(1, 1))

	b, err := toPngBytes(img)
	require.NoError(t, err)
	assert.NotEmpty(t, b)

	// no viewBox: the declared size, or the default one
	img, err = RasterSVGIconToImage(strings.NewReader(`<svg width="12" height="1pc"><rect width="2" height="2" fill="blue"/></svg>`), svgicon.IgnoreErrorMode)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 16), img.Bounds())
	assertOpaque(t, blue, img.At(1, 1))

	img, err = RasterSVGIconToImage(strings.NewReader(`<svg><rect width="2" height="2" fill="blue"/></svg>`), svgicon.IgnoreErrorMode)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1600, 1600), img.Bounds())
	assertOpaque(t, blue, img.At(1, 1))

	_, err = RasterSVGIconToImage(strings.NewReader("<g/>"), svgicon.IgnoreErrorMode)
	assert.Error(t, err)
}

type recorder struct{ calls []string }

func pixels(p fixed.Point26_6) string { return fmt.Sprintf("%d %d", p.X>>6, p.Y>>6) }

func (r *recorder) Start(a fixed.Point26_6)            { r.calls = append(r.calls, "start "+pixels(a)) }
func (r *recorder) Line(b fixed.Point26_6)             { r.calls = append(r.calls, "line "+pixels(b)) }
func (r *recorder) QuadBezier(b, c fixed.Point26_6)    { r.calls = append(r.calls, "quad") }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) { r.calls = append(r.calls, "cube "+pixels(d)) }
func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.calls = append(r.calls, "close")
	} else {
		r.calls = append(r.calls, "stop")
	}
}

func TestReplay(t *testing.T) {
	p := func(x, y float64) svgpath.Point { return svgpath.Point{X: x, Y: y} }
	path := svgpath.Path{
		svgpath.MoveTo(p(0, 0)),
		svgpath.LineTo(p(1, 0)),
		svgpath.ClosePath{},
		svgpath.LineTo(p(0, 1)),
		svgpath.MoveTo(p(2, 2)),
		svgpath.CurveTo{To: p(3, 3), C1: p(2, 3), C2: p(3, 2)},
	}
	var rec recorder
	replay(path, &rec)
	assert.Equal(t, []string{
		"start 0 0",
		"line 1 0",
		"close",
		"start 0 0",
		"line 0 1",
		"stop",
		"start 2 2",
		"cube 3 3",
		"stop",
	}, rec.calls)
}

func TestRendererState(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	rd := NewRenderer(4, 4, rasterx.NewScannerGV(4, 4, img, img.Bounds()))
	rd.PushState()
	rd.ConcatTransform(svgpath.Identity.Scale(2, 2))
	rd.SetLineWidth(3)
	assert.Equal(t, 6., rd.DeviceLineWidth())
	rd.PopState()
	assert.Equal(t, 1., rd.DeviceLineWidth())

	// painting an empty path draws nothing
	rd.FillPath(svgdraw.NonZero)
	rd.StrokePath()
	assertOpaque(t, transparent, img.At(1, 1))
}
