package svgicon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/hudsvg/svgpath"
	"golang.org/x/image/colornames"
)

// Unit is the unit suffix of a length.
type Unit uint8

const (
	Unspecified Unit = iota
	Em
	Ex
	Px
	In
	Cm
	Mm
	Pt
	Pc
)

var unitSuffixes = [...]string{
	Em: "em", Ex: "ex", Px: "px", In: "in",
	Cm: "cm", Mm: "mm", Pt: "pt", Pc: "pc",
}

// user units (CSS pixels) per unit, with a 16px font size
var unitToPixels = [...]float64{
	Unspecified: 1, Em: 16, Ex: 8, Px: 1, In: 96,
	Cm: 96 / 2.54, Mm: 96 / 25.4, Pt: 96. / 72, Pc: 16,
}

func (u Unit) String() string { return unitSuffixes[u] }

// Length is a number with an optional unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Pixels converts the length to user units, assuming 96 dpi
// and a 16px font size.
func (l Length) Pixels() float64 { return l.Value * unitToPixels[l.Unit] }

func (l Length) String() string { return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String() }

// ParseLength reads a number followed by an optional unit.
// Unknown suffixes (such as '%') are accepted and
// yield an Unspecified unit.
func ParseLength(s string) (Length, error) {
	f, rest, err := svgpath.ParseFloat(s)
	if err != nil {
		return Length{}, err
	}
	rest = strings.TrimSpace(rest)
	out := Length{Value: f}
	if len(rest) == 2 {
		for u, suffix := range unitSuffixes {
			if suffix == rest {
				out.Unit = Unit(u)
				break
			}
		}
	}
	return out, nil
}

// PaintKind is the variant of a Paint.
type PaintKind uint8

const (
	NoPaint PaintKind = iota
	CurrentColor
	ColorPaint
	InheritPaint
)

// Paint is the value of a fill or stroke attribute.
// Color is only meaningful for the ColorPaint kind.
type Paint struct {
	Kind  PaintKind
	Color color.NRGBA
}

var (
	// Transparent is substituted to invalid paints.
	Transparent = Paint{Kind: ColorPaint}
	black       = color.NRGBA{A: 0xff}
)

// NewColorPaint returns a plain color paint.
func NewColorPaint(r, g, b, a uint8) Paint {
	return Paint{Kind: ColorPaint, Color: color.NRGBA{R: r, G: g, B: b, A: a}}
}

func (p Paint) String() string {
	switch p.Kind {
	case NoPaint:
		return "none"
	case CurrentColor:
		return "currentColor"
	case InheritPaint:
		return "inherit"
	default:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", p.Color.R, p.Color.G, p.Color.B, p.Color.A)
	}
}

// ParsePaint parses a paint value: one of the keywords none,
// currentColor and inherit, a color name, or a rgb(r,g,b), #RGB or #RRGGBB literal.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "none":
		return Paint{Kind: NoPaint}, nil
	case "currentColor":
		return Paint{Kind: CurrentColor}, nil
	case "inherit":
		return Paint{Kind: InheritPaint}, nil
	}
	if cn, ok := colornames.Map[strings.ToLower(s)]; ok {
		return NewColorPaint(cn.R, cn.G, cn.B, cn.A), nil
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGB(s[len("rgb(") : len(s)-1])
	}
	if strings.HasPrefix(s, "#") {
		r, g, b, err := parseColorNum(s[1:])
		if err != nil {
			return Paint{}, fmt.Errorf("%w: %q", ErrColorParse, s)
		}
		return NewColorPaint(r, g, b, 0xff), nil
	}
	return Paint{}, fmt.Errorf("%w: %q", ErrColorParse, s)
}

// parseColorNum reads the hexadecimal color string e.g. FBD9BD or FB9
func parseColorNum(colorStr string) (r, g, b uint8, err error) {
	switch len(colorStr) {
	case 6:
	case 3:
		// duplicate characters in case of 3 digit hex number
		colorStr = string([]byte{colorStr[0], colorStr[0],
			colorStr[1], colorStr[1], colorStr[2], colorStr[2]})
	default:
		return 0, 0, 0, fmt.Errorf("invalid length %d", len(colorStr))
	}
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]},
	} {
		t, err := strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return 0, 0, 0, err
		}
		*v.c = uint8(t)
	}
	return r, g, b, nil
}

func parseRGB(args string) (Paint, error) {
	vals := strings.Split(args, ",")
	if len(vals) != 3 {
		return Paint{}, fmt.Errorf("%w: rgb() expects 3 values, got %d", ErrColorParse, len(vals))
	}
	var cvals [3]uint8
	for i, v := range vals {
		c, err := parseColorValue(strings.TrimSpace(v))
		if err != nil {
			return Paint{}, fmt.Errorf("%w: %s", ErrColorParse, err)
		}
		cvals[i] = c
	}
	return NewColorPaint(cvals[0], cvals[1], cvals[2], 0xff), nil
}

// parseColorValue reads an integer or a percentage,
// clamped to [0, 255]
func parseColorValue(v string) (uint8, error) {
	scale := 1.
	if strings.HasSuffix(v, "%") {
		scale = 255. / 100
		v = strings.TrimSpace(strings.TrimSuffix(v, "%"))
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	f *= scale
	if f < 0 {
		f = 0
	} else if f > 255 {
		f = 255
	}
	return uint8(f + 0.5), nil
}

// ParsePoints reads a list of coordinates, grouped by pairs.
func ParsePoints(s string) ([]svgpath.Point, error) {
	nums, err := svgpath.ParseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("%w (%d)", ErrOddPointCount, len(nums))
	}
	out := make([]svgpath.Point, len(nums)/2)
	for i := range out {
		out[i] = svgpath.Point{X: nums[2*i], Y: nums[2*i+1]}
	}
	return out, nil
}
