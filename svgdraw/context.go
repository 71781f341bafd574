package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/hudsvg/svgpath"
)

// DefaultMiterLimit is the SVG initial value of stroke-miterlimit.
const DefaultMiterLimit = 4

// State is the graphic state saved by PushState.
type State struct {
	CTM        svgpath.Matrix2D // user to device space
	Fill       color.NRGBA
	Stroke     color.NRGBA
	LineWidth  float64 // in user space
	MiterLimit float64
	Join       JoinMode
	Cap        CapMode
}

// Context implements the state and path construction part
// of Surface. Points are mapped to device space as they are received,
// so that backends only deal with device coordinates.
// It is meant to be embedded by backends, which provide
// FillPath and StrokePath.
type Context struct {
	stack   []State
	path    svgpath.Path
	painted bool
}

// NewContext returns a context with the given base transform,
// black colors and a line width of 1.
func NewContext(base svgpath.Matrix2D) Context {
	return Context{stack: []State{{
		CTM:        base,
		Fill:       color.NRGBA{A: 0xff},
		Stroke:     color.NRGBA{A: 0xff},
		LineWidth:  1,
		MiterLimit: DefaultMiterLimit,
	}}}
}

// State returns the current graphic state.
func (c *Context) State() *State { return &c.stack[len(c.stack)-1] }

func (c *Context) PushState() { c.stack = append(c.stack, *c.State()) }

// PopState restores the last pushed state.
// The base state is never popped.
func (c *Context) PopState() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *Context) ConcatTransform(m svgpath.Matrix2D) {
	st := c.State()
	st.CTM = st.CTM.Mult(m)
}

func (c *Context) SetFillColor(col color.NRGBA)   { c.State().Fill = col }
func (c *Context) SetStrokeColor(col color.NRGBA) { c.State().Stroke = col }
func (c *Context) SetLineWidth(w float64)         { c.State().LineWidth = w }
func (c *Context) SetMiterLimit(limit float64)    { c.State().MiterLimit = limit }
func (c *Context) SetLineJoin(j JoinMode)         { c.State().Join = j }
func (c *Context) SetLineCap(cp CapMode)          { c.State().Cap = cp }

// DeviceLineWidth returns the line width scaled by the current transform.
func (c *Context) DeviceLineWidth() float64 {
	st := c.State()
	return st.LineWidth * st.CTM.ScaleFactor()
}

// addCommand adds `op` to the current path, starting
// a new one if the current path has been painted.
func (c *Context) addCommand(op svgpath.Command) {
	if c.painted {
		c.path = c.path[:0]
		c.painted = false
	}
	c.path = append(c.path, op)
}

func (c *Context) MoveTo(p svgpath.Point) {
	c.addCommand(svgpath.MoveTo(c.State().CTM.Apply(p)))
}

func (c *Context) LineTo(p svgpath.Point) {
	c.addCommand(svgpath.LineTo(c.State().CTM.Apply(p)))
}

func (c *Context) CurveTo(to, c1, c2 svgpath.Point) {
	m := c.State().CTM
	c.addCommand(svgpath.CurveTo{To: m.Apply(to), C1: m.Apply(c1), C2: m.Apply(c2)})
}

func (c *Context) ClosePath() { c.addCommand(svgpath.ClosePath{}) }

// Paint returns the current path, in device space, and
// marks it as painted.
func (c *Context) Paint() svgpath.Path {
	c.painted = true
	return c.path
}
