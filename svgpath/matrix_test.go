package svgpath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseTransforms(t *testing.T) {
	pairs := [][2]string{
		{"translate(5,5)", "translate(-5,-5)"},
		{"rotate(30)", "rotate(-30)"},
		{"scale(2,4)", "scale(0.5,0.25)"},
		{"rotate(45, 10, 20)", "rotate(-45 10 20)"},
		{"skewX(20)", "skewX(-20)"},
		{"matrix(1,0,0,1,3,4)", "translate(-3 -4)"},
	}
	for _, pair := range pairs {
		m, err := ParseTransform(pair[0] + " " + pair[1])
		require.NoError(t, err)
		assert.True(t, m.Equal(Identity, 1e-9), "%s %s: %v", pair[0], pair[1], m)

		m1, _ := ParseTransform(pair[0])
		inv, ok := m1.Invert()
		require.True(t, ok)
		assert.True(t, m1.Mult(inv).Equal(Identity, 1e-9))
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		v    string
		want Matrix2D
	}{
		{"", Identity},
		{"  ", Identity},
		{"translate(10)", Matrix2D{1, 0, 0, 1, 10, 0}},
		{"translate(10, 20)", Matrix2D{1, 0, 0, 1, 10, 20}},
		{"scale(2)", Matrix2D{2, 0, 0, 0, 0, 0}},
		{"scale(2 3)", Matrix2D{2, 0, 0, 3, 0, 0}},
		{"matrix(1 2 3 4 5 6)", Matrix2D{1, 2, 3, 4, 5, 6}},
		{"translate(10,0) scale(2,2)", Matrix2D{2, 0, 0, 2, 10, 0}},
		{"scale(2,2),translate(10,0)", Matrix2D{2, 0, 0, 2, 20, 0}},
		{"TRANSLATE(1 1)", Matrix2D{1, 0, 0, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			m, err := ParseTransform(tt.v)
			require.NoError(t, err)
			assert.True(t, m.Equal(tt.want, 1e-12), "got %v", m)
		})
	}

	m, err := ParseTransform("rotate(90)")
	require.NoError(t, err)
	p := m.Apply(Point{1, 0})
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	m, err = ParseTransform("rotate(90, 1, 1)")
	require.NoError(t, err)
	p = m.Apply(Point{2, 1})
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 2, p.Y, 1e-12)
}

func TestParseTransformErrors(t *testing.T) {
	for _, v := range []string{
		"translate(1,2,3)",
		"rotate(1,2)",
		"matrix(1,2,3)",
		"skewX()",
		"perspective(4)",
		"translate(1,2",
		"(1,2)",
		"scale(a)",
	} {
		m, err := ParseTransform(v)
		assert.True(t, errors.Is(err, ErrUnsupportedFeature), v)
		assert.Equal(t, Identity, m)
	}
}

func TestMatrixOrder(t *testing.T) {
	a := Identity.Translate(10, 0)
	b := Identity.Scale(2, 2)
	p := Point{1, 1}
	// b acts first
	assert.Equal(t, Point{12, 2}, a.Mult(b).Apply(p))
	assert.Equal(t, Point{22, 2}, b.Mult(a).Apply(p))
}

func TestInvertSingular(t *testing.T) {
	_, ok := Matrix2D{1, 0, 0, 0, 0, 0}.Invert()
	assert.False(t, ok)
	assert.InDelta(t, 2, Identity.Scale(2, 2).ScaleFactor(), 1e-12)
	assert.InDelta(t, math.Sqrt(6), Identity.Scale(2, 3).ScaleFactor(), 1e-12)
}

func TestFitTransform(t *testing.T) {
	box := NewBoundingBox(Point{-1, -1}, Point{11, 1})
	m := FitTransform(box, 24, 4, false)
	assert.True(t, m.Apply(box.Min) == Point{0, 0})
	assert.True(t, m.Apply(box.Max) == Point{24, 4})

	m = FitTransform(box, 24, 4, true)
	assert.Equal(t, Point{0, 4}, m.Apply(box.Min))
	assert.Equal(t, Point{24, 0}, m.Apply(box.Max))

	assert.Equal(t, Identity, FitTransform(BoundingBox{}, 10, 10, false))
}
