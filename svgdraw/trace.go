package svgdraw

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/benoitkugler/hudsvg/svgpath"
)

var (
	_ Surface      = (*Trace)(nil)
	_ MiterLimiter = (*Trace)(nil)
	_ StrokeStyler = (*Trace)(nil)
)

// Trace is a Surface recording every call it receives
// in a textual form, such as "moveTo 1 2".
// It is useful to inspect or debug the output of a render pass.
type Trace struct {
	Calls []string
}

func formatPoints(pts ...svgpath.Point) string {
	chunks := make([]string, len(pts))
	for i, p := range pts {
		chunks[i] = fmt.Sprintf("%g %g", p.X, p.Y)
	}
	return strings.Join(chunks, " ")
}

func formatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (t *Trace) add(format string, args ...interface{}) {
	t.Calls = append(t.Calls, fmt.Sprintf(format, args...))
}

func (t *Trace) MoveTo(p svgpath.Point) { t.add("moveTo %s", formatPoints(p)) }

func (t *Trace) LineTo(p svgpath.Point) { t.add("lineTo %s", formatPoints(p)) }

func (t *Trace) CurveTo(to, c1, c2 svgpath.Point) {
	t.add("curveTo %s", formatPoints(to, c1, c2))
}

func (t *Trace) ClosePath() { t.add("closePath") }

func (t *Trace) SetFillColor(c color.NRGBA) { t.add("setFillColor %s", formatColor(c)) }

func (t *Trace) SetStrokeColor(c color.NRGBA) { t.add("setStrokeColor %s", formatColor(c)) }

func (t *Trace) SetLineWidth(w float64) { t.add("setLineWidth %g", w) }

func (t *Trace) SetMiterLimit(limit float64) { t.add("setMiterLimit %g", limit) }

func (t *Trace) SetLineJoin(j JoinMode) { t.add("setLineJoin %s", j) }

func (t *Trace) SetLineCap(c CapMode) { t.add("setLineCap %s", c) }

func (t *Trace) FillPath(rule WindingRule) { t.add("fillPath %s", rule) }

func (t *Trace) StrokePath() { t.add("strokePath") }

func (t *Trace) PushState() { t.add("pushState") }

func (t *Trace) PopState() { t.add("popState") }

func (t *Trace) ConcatTransform(m svgpath.Matrix2D) {
	t.add("concatTransform %g %g %g %g %g %g", m.A, m.B, m.C, m.D, m.E, m.F)
}

// String returns the calls, one per line.
func (t *Trace) String() string { return strings.Join(t.Calls, "\n") }
