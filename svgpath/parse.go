package svgpath

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// pathCursor holds the state needed while
// interpreting a path data string
type pathCursor struct {
	data []byte
	pos  int

	current, start Point // current point and sub path start
	lastControl    Point // last control point, used by smooth commands
	prevCmd        byte  // lowercase letter of the previous command

	path Path
}

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// ParsePath interprets the path data mini-language, returning absolute commands.
// The current point and the sub path start both begin at (0, 0) and are threaded
// across the whole string. Path data not starting with a moveto, unknown
// commands or malformed arguments return an error wrapping ErrUnsupportedFeature.
func ParsePath(d string) (Path, error) {
	c := pathCursor{data: []byte(d)}
	c.skip()
	if c.pos < len(c.data) && isLetter(c.data[c.pos]) && toLower(c.data[c.pos]) != 'm' {
		return nil, c.errorf("path should start with a moveto, got %q", c.data[c.pos])
	}
	for c.pos < len(c.data) {
		cmd := c.data[c.pos]
		if !isLetter(cmd) {
			if len(c.path) == 0 {
				return nil, c.errorf("path should start with a command")
			}
			return nil, c.errorf("unknown command %q", cmd)
		}
		c.pos++
		if err := c.compileCommand(cmd); err != nil {
			return nil, err
		}
		c.prevCmd = toLower(cmd)
		c.skip()
	}
	return c.path, nil
}

func (c *pathCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: path data: %s at position %d", ErrUnsupportedFeature, fmt.Sprintf(format, args...), c.pos)
}

func (c *pathCursor) skip() { c.pos += skipCommaWhitespace(c.data[c.pos:]) }

// hasArgs returns true if an argument group follows
func (c *pathCursor) hasArgs() bool {
	c.skip()
	return c.pos < len(c.data) && !isLetter(c.data[c.pos])
}

func (c *pathCursor) number() (float64, bool) {
	c.skip()
	f, n := strconv.ParseFloat(c.data[c.pos:])
	if n == 0 {
		return 0, false
	}
	c.pos += n
	return f, true
}

// flag reads an arc flag, which is always a single
// '0' or '1' character, possibly not separated from what follows.
func (c *pathCursor) flag() (bool, bool) {
	c.skip()
	if c.pos >= len(c.data) {
		return false, false
	}
	switch c.data[c.pos] {
	case '0':
		c.pos++
		return false, true
	case '1':
		c.pos++
		return true, true
	}
	return false, false
}

// point reads a coordinate pair, relative to `base` if rel is true
func (c *pathCursor) point(rel bool, base Point) (Point, bool) {
	x, ok := c.number()
	if !ok {
		return Point{}, false
	}
	y, ok := c.number()
	if !ok {
		return Point{}, false
	}
	if rel {
		return Point{base.X + x, base.Y + y}, true
	}
	return Point{x, y}, true
}

func (c *pathCursor) reflect() Point {
	return Point{2*c.current.X - c.lastControl.X, 2*c.current.Y - c.lastControl.Y}
}

func (c *pathCursor) compileCommand(cmd byte) error {
	rel := 'a' <= cmd && cmd <= 'z'
	lower := toLower(cmd)
	if lower == 'z' {
		c.path = append(c.path, ClosePath{})
		c.current = c.start
		return nil
	}

	argCount := map[byte]int{'m': 2, 'l': 2, 'h': 1, 'v': 1, 'c': 6, 's': 4, 'q': 4, 't': 2, 'a': 7}
	count, ok := argCount[lower]
	if !ok {
		c.pos--
		return c.errorf("unknown command %q", cmd)
	}
	badArgs := func() error {
		return c.errorf("sets of %d numbers should follow command '%c'", count, cmd)
	}

	for first := true; first || c.hasArgs(); first = false {
		base := c.current
		switch lower {
		case 'm':
			p, ok := c.point(rel, base)
			if !ok {
				return badArgs()
			}
			if first {
				c.path = append(c.path, MoveTo(p))
				c.start = p
			} else { // implicit line to
				c.path = append(c.path, LineTo(p))
			}
			c.current = p
		case 'l':
			p, ok := c.point(rel, base)
			if !ok {
				return badArgs()
			}
			c.path = append(c.path, LineTo(p))
			c.current = p
		case 'h':
			x, ok := c.number()
			if !ok {
				return badArgs()
			}
			if rel {
				x += base.X
			}
			c.current = Point{x, base.Y}
			c.path = append(c.path, LineTo(c.current))
		case 'v':
			y, ok := c.number()
			if !ok {
				return badArgs()
			}
			if rel {
				y += base.Y
			}
			c.current = Point{base.X, y}
			c.path = append(c.path, LineTo(c.current))
		case 'c':
			c1, ok1 := c.point(rel, base)
			c2, ok2 := c.point(rel, base)
			to, ok3 := c.point(rel, base)
			if !(ok1 && ok2 && ok3) {
				return badArgs()
			}
			c.path = append(c.path, CurveTo{To: to, C1: c1, C2: c2})
			c.current, c.lastControl = to, c2
		case 's':
			c2, ok1 := c.point(rel, base)
			to, ok2 := c.point(rel, base)
			if !(ok1 && ok2) {
				return badArgs()
			}
			c1 := base
			if prev := c.previous(first); prev == 'c' || prev == 's' {
				c1 = c.reflect()
			}
			c.path = append(c.path, SmoothCurveTo{To: to, C1: c1, C2: c2})
			c.current, c.lastControl = to, c2
		case 'q':
			ctrl, ok1 := c.point(rel, base)
			to, ok2 := c.point(rel, base)
			if !(ok1 && ok2) {
				return badArgs()
			}
			c.path = append(c.path, QuadraticBezier{To: to, C: ctrl})
			c.current, c.lastControl = to, ctrl
		case 't':
			to, ok := c.point(rel, base)
			if !ok {
				return badArgs()
			}
			ctrl := base
			if prev := c.previous(first); prev == 'q' || prev == 't' {
				ctrl = c.reflect()
			}
			c.path = append(c.path, SmoothQuadraticBezier{To: to, C: ctrl})
			c.current, c.lastControl = to, ctrl
		case 'a':
			arc, err := c.arc(rel, base, badArgs)
			if err != nil {
				return err
			}
			c.path = append(c.path, arc)
			c.current = arc.To
		}
	}
	return nil
}

// previous returns the command preceding the current
// argument group: the command itself for repeated groups.
func (c *pathCursor) previous(first bool) byte {
	if first {
		return c.prevCmd
	}
	return toLower(c.lastCommandLetter())
}

func (c *pathCursor) lastCommandLetter() byte {
	switch c.path[len(c.path)-1].(type) {
	case CurveTo:
		return 'c'
	case SmoothCurveTo:
		return 's'
	case QuadraticBezier:
		return 'q'
	case SmoothQuadraticBezier:
		return 't'
	}
	return 0
}

func (c *pathCursor) arc(rel bool, base Point, badArgs func() error) (EllipticalArc, error) {
	rx, ok1 := c.number()
	ry, ok2 := c.number()
	rot, ok3 := c.number()
	if !(ok1 && ok2 && ok3) {
		return EllipticalArc{}, badArgs()
	}
	largeArc, ok := c.flag()
	if !ok {
		return EllipticalArc{}, c.errorf("largeArc and sweep flags should be 0 or 1")
	}
	sweep, ok := c.flag()
	if !ok {
		return EllipticalArc{}, c.errorf("largeArc and sweep flags should be 0 or 1")
	}
	to, ok := c.point(rel, base)
	if !ok {
		return EllipticalArc{}, badArgs()
	}
	return EllipticalArc{
		To:       to,
		Radius:   Point{math.Abs(rx), math.Abs(ry)},
		Rotation: rot,
		LargeArc: largeArc,
		Sweep:    sweep,
	}, nil
}
