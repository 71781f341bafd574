package svgpath

import (
	"fmt"
	"math"
	"strings"
)

func readTransformFunc(m1 Matrix2D, name string, args []float64) (Matrix2D, error) {
	ln := len(args)
	switch name {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(args[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(args[1], args[2]).
				Rotate(args[0]*math.Pi/180).
				Translate(-args[1], -args[2])
		} else {
			return m1, errParamMismatch(name, ln)
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(args[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(args[0], args[1])
		} else {
			return m1, errParamMismatch(name, ln)
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(args[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch(name, ln)
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(args[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch(name, ln)
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(args[0], 0)
		} else if ln == 2 {
			m1 = m1.Scale(args[0], args[1])
		} else {
			return m1, errParamMismatch(name, ln)
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(Matrix2D{
				A: args[0],
				B: args[1],
				C: args[2],
				D: args[3],
				E: args[4],
				F: args[5]})
		} else {
			return m1, errParamMismatch(name, ln)
		}
	default:
		return m1, fmt.Errorf("%w: transform function %q", ErrUnsupportedFeature, name)
	}
	return m1, nil
}

func errParamMismatch(name string, got int) error {
	return fmt.Errorf("%w: wrong number of arguments (%d) for transform %q", ErrUnsupportedFeature, got, name)
}

// ParseTransform reads a transform list such as
// "translate(10, 5) rotate(45)". Functions are applied
// in reading order: each one is right multiplied onto the
// accumulated matrix. An empty string yields Identity.
func ParseTransform(v string) (Matrix2D, error) {
	m1 := Identity
	rest := v
	for {
		rest = strings.TrimLeft(rest, " ,\n\r\t\f")
		if rest == "" {
			return m1, nil
		}
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open <= 0 || end < open {
			return Identity, fmt.Errorf("%w: badly formed transform %q", ErrUnsupportedFeature, v)
		}
		name := strings.ToLower(strings.TrimSpace(rest[:open]))
		args, err := ParseNumbers(rest[open+1 : end])
		if err != nil {
			return Identity, err
		}
		m1, err = readTransformFunc(m1, name, args)
		if err != nil {
			return Identity, err
		}
		rest = rest[end+1:]
	}
}
