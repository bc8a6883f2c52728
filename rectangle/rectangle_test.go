package rectangle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdillond/linesim/linesegment"
	"github.com/cdillond/linesim/point"
)

func TestNew_OrdersCornersRegardlessOfInputOrder(t *testing.T) {
	tests := map[string]struct {
		x1, y1, x2, y2 float64
	}{
		"min,min to max,max":   {0, 0, 10, 20},
		"max,max to min,min":   {10, 20, 0, 0},
		"min,max to max,min":   {0, 20, 10, 0},
		"negative coordinates": {-5, -10, 5, 10},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := New(tc.x1, tc.y1, tc.x2, tc.y2)
			assert.Equal(t, New(tc.x2, tc.y2, tc.x1, tc.y1), r)
		})
	}
}

func TestNewFromPoints_PanicsOnNonAxisAlignedInput(t *testing.T) {
	assert.Panics(t, func() {
		NewFromPoints(
			point.New(0, 0),
			point.New(10, 10),
			point.New(5, 5),
			point.New(1, 1),
		)
	})
}

func TestRectangle_ContainsPoint(t *testing.T) {
	r := New(0, 0, 10, 10)

	tests := map[string]struct {
		p        point.Point
		expected bool
	}{
		"center":           {point.New(5, 5), true},
		"on bottom edge":   {point.New(5, 0), true},
		"on corner":        {point.New(10, 10), true},
		"outside to right": {point.New(11, 5), false},
		"outside below":    {point.New(5, -1), false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.ContainsPoint(tc.p))
		})
	}
}

func TestRectangle_Edges(t *testing.T) {
	r := New(0, 0, 10, 10)
	bottom, right, top, left := r.Edges()

	bottomLeft := point.New(0, 0)
	bottomRight := point.New(10, 0)
	topRight := point.New(10, 10)
	topLeft := point.New(0, 10)

	assert.Equal(t, linesegment.NewFromPoints(bottomLeft, bottomRight), bottom)
	assert.Equal(t, linesegment.NewFromPoints(bottomRight, topRight), right)
	assert.Equal(t, linesegment.NewFromPoints(topRight, topLeft), top)
	assert.Equal(t, linesegment.NewFromPoints(topLeft, bottomLeft), left)
}
