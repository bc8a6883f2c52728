package world

import (
	"context"
	"testing"

	"github.com/cdillond/linesim/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arena100() Arena {
	return Arena{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
}

func TestWorld_EmptyWorldHasZeroCounters(t *testing.T) {
	w := New(0.5, arena100(), BruteForce)
	require.NoError(t, w.Frame(context.Background()))
	assert.Equal(t, int64(0), w.LineLineCollisions())
	assert.Equal(t, int64(0), w.LineWallCollisions())
}

func TestWorld_SingleSegmentNeverCountsLineLine(t *testing.T) {
	w := New(0.5, arena100(), BruteForce)
	_, err := w.Add(point.New(10, 10), point.New(20, 10), point.New(1, 0), [3]uint8{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, w.Frame(context.Background()))
	}
	assert.Equal(t, int64(0), w.LineLineCollisions())
}

func TestWorld_Add_RejectsOutOfArenaEndpoint(t *testing.T) {
	w := New(0.5, arena100(), BruteForce)
	_, err := w.Add(point.New(-5, 10), point.New(20, 10), point.New(0, 0), [3]uint8{})
	assert.Error(t, err)
}

func TestWorld_HeadOnCollisionIncrementsLineLineCounter(t *testing.T) {
	w := New(1.0, arena100(), BruteForce)
	_, err := w.Add(point.New(10, 10), point.New(10, 20), point.New(5, 0), [3]uint8{})
	require.NoError(t, err)
	_, err = w.Add(point.New(15, 10), point.New(15, 20), point.New(-5, 0), [3]uint8{})
	require.NoError(t, err)

	require.NoError(t, w.Frame(context.Background()))
	assert.Equal(t, int64(1), w.LineLineCollisions())
}

func TestWorld_WallBounceReversesOutwardVelocity(t *testing.T) {
	w := New(1.0, arena100(), BruteForce)
	s, err := w.Add(point.New(95, 50), point.New(99, 50), point.New(10, 0), [3]uint8{})
	require.NoError(t, err)

	require.NoError(t, w.Frame(context.Background()))

	assert.Equal(t, int64(1), w.LineWallCollisions())
	assert.Less(t, s.Velocity.X(), 0.0)
}

func TestArena_WallsMatchBounds(t *testing.T) {
	a := arena100()
	bottom, right, top, left := a.Walls()

	bLower, bUpper := bottom.Lower(), bottom.Upper()
	assert.Equal(t, 0.0, bLower.Y())
	assert.Equal(t, 0.0, bUpper.Y())

	rLower, rUpper := right.Lower(), right.Upper()
	assert.Equal(t, 100.0, rLower.X())
	assert.Equal(t, 100.0, rUpper.X())

	assert.Equal(t, 100.0, top.Lower().Y())
	assert.Equal(t, 0.0, left.Lower().X())
}

func TestWorld_SetMode_SwitchesDetectionStrategy(t *testing.T) {
	w := New(0.5, arena100(), BruteForce)
	w.SetMode(Quadtree)
	_, err := w.Add(point.New(10, 10), point.New(20, 10), point.New(1, 0), [3]uint8{})
	require.NoError(t, err)
	require.NoError(t, w.Frame(context.Background()))
}

func TestWorld_BruteForceAndQuadtreeAgreeOnLineLineCount(t *testing.T) {
	bf := New(0.5, arena100(), BruteForce)
	qt := New(0.5, arena100(), Quadtree)

	type seed struct{ x1, y1, x2, y2, vx, vy float64 }
	seeds := []seed{
		{10, 10, 10, 20, 3, 0},
		{15, 10, 15, 20, -3, 0},
		{40, 40, 50, 50, 0, 0},
		{42, 48, 52, 38, 0, 0},
		{80, 80, 90, 90, -1, -1},
	}
	for _, sd := range seeds {
		_, err := bf.Add(point.New(sd.x1, sd.y1), point.New(sd.x2, sd.y2), point.New(sd.vx, sd.vy), [3]uint8{})
		require.NoError(t, err)
		_, err = qt.Add(point.New(sd.x1, sd.y1), point.New(sd.x2, sd.y2), point.New(sd.vx, sd.vy), [3]uint8{})
		require.NoError(t, err)
	}

	for i := 0; i < 10; i++ {
		require.NoError(t, bf.Frame(context.Background()))
		require.NoError(t, qt.Frame(context.Background()))
	}

	assert.Equal(t, bf.LineLineCollisions(), qt.LineLineCollisions())
	assert.Equal(t, bf.LineWallCollisions(), qt.LineWallCollisions())
}
