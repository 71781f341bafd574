package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrUnsupportedFeature is returned for values written in a syntax,
// or using a function, outside of the supported subset.
var ErrUnsupportedFeature = errors.New("unsupported feature")

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

// skipCommaWhitespace returns the number of leading separators
func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && isSeparator(b[i]) {
		i++
	}
	return i
}

// ParseNumbers splits `s` on commas and whitespace and
// parses every chunk as a float. Numbers may also be
// directly concatenated when unambiguous, as in "10-5" or "0.5.5".
func ParseNumbers(s string) ([]float64, error) {
	b := []byte(s)
	var out []float64
	i := skipCommaWhitespace(b)
	for i < len(b) {
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("%w: invalid number %q at position %d", ErrUnsupportedFeature, s[i:], i)
		}
		out = append(out, f)
		i += n
		i += skipCommaWhitespace(b[i:])
	}
	return out, nil
}

// ParseFloat parses `s`, which must contain exactly one
// number (surrounding whitespace is ignored).
// It returns the number and the unparsed suffix.
func ParseFloat(s string) (float64, string, error) {
	b := []byte(s)
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	f, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0, s, fmt.Errorf("%w: invalid number %q", ErrUnsupportedFeature, s)
	}
	return f, s[i+n:], nil
}
