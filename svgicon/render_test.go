package svgicon

import (
	"testing"

	"github.com/benoitkugler/hudsvg/svgdraw"
	"github.com/benoitkugler/hudsvg/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trace(t *testing.T, src string, options RenderOptions) []string {
	t.Helper()
	doc, err := Parse([]byte(src), StrictErrorMode)
	require.NoError(t, err)
	var tr svgdraw.Trace
	require.NoError(t, doc.Render(&tr, options))
	return tr.Calls
}

func TestRenderFill(t *testing.T) {
	calls := trace(t, `<svg><rect x="1" y="2" width="3" height="4" fill="red"/></svg>`, RenderOptions{})
	assert.Equal(t, []string{
		"pushState",
		"moveTo 1 2",
		"lineTo 4 2",
		"lineTo 4 6",
		"lineTo 1 6",
		"closePath",
		"setFillColor #ff0000ff",
		"fillPath nonzero",
		"popState",
	}, calls)
}

func TestRenderStroke(t *testing.T) {
	calls := trace(t, `<svg><line id="l" x1="0" y1="0" x2="5" y2="0" stroke="blue" stroke-width="2" transform="translate(1,1)"/></svg>`,
		RenderOptions{ID: "l"})
	assert.Equal(t, []string{
		"pushState",
		"concatTransform 1 0 0 1 1 1",
		"moveTo 0 0",
		"lineTo 5 0",
		"setStrokeColor #0000ffff",
		"setLineWidth 2",
		"setMiterLimit 4",
		"setLineJoin miter",
		"setLineCap butt",
		"strokePath",
		"popState",
	}, calls)
}

func TestRenderFillAndStroke(t *testing.T) {
	calls := trace(t, `<svg><polygon id="p" points="0,0 4,0 0,4" fill="#00ff00" fill-rule="evenodd"
		stroke="black" stroke-linejoin="round" stroke-linecap="square" stroke-miterlimit="2"/></svg>`,
		RenderOptions{ID: "p"})
	assert.Equal(t, []string{
		"moveTo 0 0",
		"lineTo 4 0",
		"lineTo 0 4",
		"closePath",
		"setFillColor #00ff00ff",
		"fillPath evenodd",
		"setStrokeColor #000000ff",
		"setLineWidth 1",
		"setMiterLimit 2",
		"setLineJoin round",
		"setLineCap square",
		"strokePath",
	}, calls)
}

func TestRenderGroups(t *testing.T) {
	calls := trace(t, `<svg>
		<g transform="scale(2)">
			<g><circle r="0"/></g>
		</g>
	</svg>`, RenderOptions{Transform: svgpath.Identity.Translate(3, 4)})
	assert.Equal(t, []string{
		"pushState",
		"concatTransform 1 0 0 1 3 4",
		"pushState", // svg
		"pushState",
		"concatTransform 2 0 0 0 0 0",
		"pushState",
		"popState",
		"popState",
		"popState",
		"popState",
	}, calls)
}

func TestRenderSkipped(t *testing.T) {
	for _, src := range []string{
		`<svg><rect width="1" height="1" fill="none"/></svg>`,
		`<svg><rect width="1" height="1" stroke="red" stroke-width="0" fill="none"/></svg>`,
		`<svg><rect width="1" height="1" display="none"/></svg>`,
		`<svg><g style="display: none"><rect width="1" height="1"/></g></svg>`,
		`<svg><text>hello</text></svg>`,
		`<svg><rect width="0" height="1"/></svg>`,
		`<svg><circle r="0"/></svg>`,
		`<svg><polyline points="1 1"/></svg>`,
		`<svg><line x2="10" fill="red"/></svg>`,
	} {
		calls := trace(t, src, RenderOptions{})
		assert.Equal(t, []string{"pushState", "popState"}, calls, src)
	}
}

func TestRenderErroneousElement(t *testing.T) {
	doc, err := Parse([]byte(`<svg><circle r="-1"/><circle r="1" fill="nope"/></svg>`), IgnoreErrorMode)
	require.NoError(t, err)
	var tr svgdraw.Trace
	require.NoError(t, doc.Render(&tr, RenderOptions{}))
	// the bad paint is transparent, but still drawn
	assert.Contains(t, tr.Calls, "setFillColor #00000000")
	assert.Len(t, tr.Calls, 1+6+2+1)
}

func TestRenderMissingID(t *testing.T) {
	doc, err := Parse([]byte(`<svg><circle id="c" r="1"/></svg>`), StrictErrorMode)
	require.NoError(t, err)
	var tr svgdraw.Trace
	err = doc.Render(&tr, RenderOptions{ID: "missing"})
	assert.ErrorIs(t, err, ErrMissingElementID)
	assert.Empty(t, tr.Calls)
}

func TestRenderCurrentColor(t *testing.T) {
	calls := trace(t, `<svg><circle id="c" r="1" color="#123456" fill="currentColor"/></svg>`, RenderOptions{ID: "c"})
	assert.Contains(t, calls, "setFillColor #123456ff")
}
