package svgpdf

import (
	"bytes"
	"testing"

	"github.com/benoitkugler/hudsvg/svgicon"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderContent renders `src` in an uncompressed 100x100 page
// and returns the whole PDF file.
func renderContent(t *testing.T, src string, options svgicon.RenderOptions) string {
	t.Helper()
	doc, err := svgicon.Parse([]byte(src), svgicon.StrictErrorMode)
	require.NoError(t, err)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: gofpdf.SizeType{Wd: 100, Ht: 100}})
	pdf.SetCompression(false)
	pdf.AddPage()
	require.NoError(t, doc.Render(NewRenderer(pdf), options))

	var out bytes.Buffer
	require.NoError(t, pdf.Output(&out))
	return out.String()
}

func TestFill(t *testing.T) {
	content := renderContent(t, `<svg><rect x="1" y="2" width="3" height="4" fill="red"/></svg>`, svgicon.RenderOptions{})
	for _, op := range []string{
		"1.000 0.000 0.000 rg",
		"1.00 98.00 m",
		"4.00 98.00 l",
		"4.00 94.00 l",
		"1.00 94.00 l",
		"h\nf\n",
	} {
		assert.Contains(t, content, op)
	}
}

func TestFillEvenOdd(t *testing.T) {
	content := renderContent(t, `<svg><polygon points="0,0 10,0 0,10" fill-rule="evenodd"/></svg>`, svgicon.RenderOptions{})
	assert.Contains(t, content, "h\nf*\n")
}

func TestStroke(t *testing.T) {
	content := renderContent(t, `<svg><g transform="scale(2,2)">
		<line x1="0" y1="5" x2="10" y2="5" stroke="blue" stroke-linejoin="bevel" stroke-linecap="round" stroke-miterlimit="3"/>
	</g></svg>`, svgicon.RenderOptions{})
	for _, op := range []string{
		"0.000 0.000 1.000 RG",
		"2.00 w", // scaled line width
		"2 j",
		"1 J",
		"3.00 M",
		"0.00 90.00 m",
		"20.00 90.00 l\nS\n",
	} {
		assert.Contains(t, content, op)
	}
}

func TestRenderDocument(t *testing.T) {
	doc, err := svgicon.Parse([]byte(`<svg><circle id="c" r="5"/></svg>`), svgicon.StrictErrorMode)
	require.NoError(t, err)

	options, err := doc.FitOptions("c", 50, 50, false)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, RenderDocument(doc, 50, 50, options, &out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))

	out.Reset()
	err = RenderDocument(doc, 50, 50, svgicon.RenderOptions{ID: "missing"}, &out)
	assert.ErrorIs(t, err, svgicon.ErrMissingElementID)
}
