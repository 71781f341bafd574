package svgicon

import (
	"errors"
	"fmt"
	"log"

	"github.com/benoitkugler/hudsvg/svgpath"
)

// ErrorMode is the for setting how the parser reacts to
// element scoped errors, such as an invalid attribute value.
type ErrorMode uint8

const (
	// IgnoreErrorMode discards the faulty attribute and only records a Diagnostic.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode is IgnoreErrorMode, but also logs the problem.
	WarnErrorMode
	// StrictErrorMode aborts the parsing on the first error.
	StrictErrorMode
)

var (
	// ErrUnsupportedFeature is returned for values outside of
	// the supported subset (path data, transform functions, lengths).
	ErrUnsupportedFeature = svgpath.ErrUnsupportedFeature
	// ErrColorParse is returned for paint values which are not a keyword,
	// a color name, or a rgb() or hexadecimal literal.
	ErrColorParse = errors.New("invalid color")
	// ErrOddPointCount is returned for point lists with an odd number of coordinates.
	ErrOddPointCount = errors.New("odd number of coordinates")
	// ErrMissingElementID is returned when looking up an id not declared in the document.
	ErrMissingElementID = errors.New("no element with this id")
	// ErrDuplicateID is reported when an id is declared twice. The last element wins.
	ErrDuplicateID = errors.New("duplicate id")

	errEmptyDocument = errors.New("no root element")
	errRootElement   = errors.New("root element must be <svg>")
	errMultipleRoots = errors.New("multiple root elements")
)

// StructuralError is returned when the document is not a well
// formed svg document. No Document is returned along with it.
type StructuralError struct {
	Line int // 1-based, 0 if unknown
	Err  error
}

func (e *StructuralError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("invalid svg document: %s", e.Err)
	}
	return fmt.Sprintf("invalid svg document (line %d): %s", e.Line, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// Diagnostic describes an element scoped problem which
// did not prevent the document from being built.
type Diagnostic struct {
	Line int
	Tag  string
	ID   string // may be empty
	Attr string // may be empty
	Err  error
}

func (d Diagnostic) String() string {
	out := fmt.Sprintf("line %d: <%s>", d.Line, d.Tag)
	if d.ID != "" {
		out += fmt.Sprintf(" (id %q)", d.ID)
	}
	if d.Attr != "" {
		out += fmt.Sprintf(" attribute %s", d.Attr)
	}
	return out + ": " + d.Err.Error()
}

// Error makes a Diagnostic usable as an error, as returned in StrictErrorMode.
func (d Diagnostic) Error() string { return d.String() }

func (d Diagnostic) Unwrap() error { return d.Err }

// report records `d` and returns a non nil error if the parsing should stop.
func (c *parser) report(d Diagnostic) error {
	if c.errorMode == StrictErrorMode {
		return d
	}
	if c.errorMode == WarnErrorMode {
		log.Println(d.String())
	}
	c.doc.Diagnostics = append(c.doc.Diagnostics, d)
	return nil
}

// warn records `d` without ever stopping the parsing.
func (c *parser) warn(d Diagnostic) {
	if c.errorMode != IgnoreErrorMode {
		log.Println(d.String())
	}
	c.doc.Diagnostics = append(c.doc.Diagnostics, d)
}
