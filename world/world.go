// Package world owns the simulation state: the segment array, the arena bounds, the
// per-frame timestep, and the two collision counters. World.Frame is the pipeline driver
// described by the core's four-stage design (Detect, Resolve, Advance, Wall-bounce).
package world

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/collision"
	"github.com/cdillond/linesim/linesegment"
	"github.com/cdillond/linesim/numeric"
	"github.com/cdillond/linesim/point"
	"github.com/cdillond/linesim/quadtree"
	"github.com/cdillond/linesim/rectangle"
	"github.com/cdillond/linesim/segment"
)

// Mode selects the Detect strategy for a frame.
type Mode int

const (
	// BruteForce tests every O(n²) pair directly; used as both the default mode and the
	// reference implementation path equivalence (§8 invariant 1) is checked against.
	BruteForce Mode = iota
	// Quadtree builds a spatial index each frame and tests only candidate pairs.
	Quadtree
)

// Arena is the axis-aligned square region segments bounce off of.
type Arena struct {
	MinX, MinY, MaxX, MaxY float64
}

// rect builds the equivalent rectangle.Rectangle, reusing the teacher's axis-aligned
// rectangle type for containment testing and wall geometry instead of re-deriving both
// from scratch.
func (a Arena) rect() rectangle.Rectangle {
	return rectangle.New(a.MinX, a.MinY, a.MaxX, a.MaxY)
}

// Walls returns the four arena boundaries as line segments, in the order rectangle.Edges
// reports them: bottom, right, top, left.
func (a Arena) Walls() (bottom, right, top, left linesegment.LineSegment) {
	return a.rect().Edges()
}

// World owns the segment array and the state that evolves frame over frame.
type World struct {
	segments []*segment.Segment
	dt       float64
	arena    Arena
	mode     Mode
	qcfg     []quadtree.Option

	lineLine atomic.Int64
	lineWall atomic.Int64

	solver *collision.Solver
}

// New constructs an empty World with the given timestep, arena, and detection mode.
func New(dt float64, arena Arena, mode Mode, qcfg ...quadtree.Option) *World {
	return &World{
		dt:     dt,
		arena:  arena,
		mode:   mode,
		qcfg:   qcfg,
		solver: collision.NewSolver(),
	}
}

// Add appends a segment to the world, assigning it the next dense id. Returns
// linesim.ErrInvalidInput if the segment starts outside the arena.
func (w *World) Add(p1, p2, velocity point.Point, color [3]uint8) (*segment.Segment, error) {
	if !w.arena.contains(p1) || !w.arena.contains(p2) {
		return nil, fmt.Errorf("world: segment endpoint outside arena: %w", linesim.ErrInvalidInput)
	}
	id := len(w.segments)
	s := segment.New(id, p1, p2, velocity, color)
	w.segments = append(w.segments, s)
	return s, nil
}

func (a Arena) contains(p point.Point) bool {
	return a.rect().ContainsPoint(p)
}

// Segments returns the world's segment slice. The caller must not retain it past the next
// call to Frame, which may mutate endpoints and velocities in place.
func (w *World) Segments() []*segment.Segment {
	return w.segments
}

// Len returns the number of segments owned by the world.
func (w *World) Len() int {
	return len(w.segments)
}

// SetMode changes the detection strategy used by subsequent calls to Frame.
func (w *World) SetMode(mode Mode) {
	w.mode = mode
}

// LineLineCollisions returns the running count of line-line collision events.
func (w *World) LineLineCollisions() int64 {
	return w.lineLine.Load()
}

// LineWallCollisions returns the running count of line-wall bounce events.
func (w *World) LineWallCollisions() int64 {
	return w.lineWall.Load()
}

// Frame runs one iteration of the Detect → Resolve → Advance → Wall-bounce pipeline.
//
// Detect never returns an error to the caller: a quadtree allocation failure is caught,
// logged, and the frame falls back to the brute-force path transparently, matching the
// degrade-to-brute-force error semantics described for InternalInvariantViolation and
// AllocationFailure alike.
func (w *World) Frame(ctx context.Context) error {
	events, err := w.detect(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		w.solver.Resolve(e)
		w.lineLine.Add(1)
	}

	w.advance()
	w.wallBounce()
	return nil
}

func (w *World) detect(ctx context.Context) ([]collision.Event, error) {
	if w.mode == Quadtree {
		events, err := w.detectQuadtree(ctx)
		if err == nil {
			return events, nil
		}
		log.Printf("linesim: quadtree detect failed, falling back to brute force this frame: %v", err)
	}
	return w.detectBruteForce(), nil
}

// detectBruteForce is the O(n²) reference path: every unordered pair is tested directly,
// with no spatial index involved. Its event set is required to equal the quadtree path's
// for any input (§8 invariant 1).
func (w *World) detectBruteForce() []collision.Event {
	var pairs []quadtree.Pair
	for i := 0; i < len(w.segments); i++ {
		for j := i + 1; j < len(w.segments); j++ {
			l1, l2 := segment.Ordered(w.segments[i], w.segments[j])
			pairs = append(pairs, quadtree.Pair{A: l1, B: l2})
		}
	}
	el := collision.NewEventList()
	el.Classify(pairs, w.dt)
	return el.All()
}

func (w *World) detectQuadtree(ctx context.Context) ([]collision.Event, error) {
	tree, err := quadtree.Build(w.segments, w.dt, w.qcfg...)
	if err != nil {
		return nil, err
	}
	defer tree.Destroy()

	pairs, err := tree.FindCandidatePairs(ctx)
	if err != nil {
		return nil, err
	}

	el := collision.NewEventList()
	el.Classify(pairs, w.dt)
	return el.All(), nil
}

// advance translates every segment's endpoints by velocity*dt and refreshes its cached
// length and speed, which the next frame's Detect (speed) and Resolve (length) depend on.
func (w *World) advance() {
	for _, s := range w.segments {
		delta := point.New(s.Velocity.X()*w.dt, s.Velocity.Y()*w.dt)
		s.P1 = s.P1.Translate(delta)
		s.P2 = s.P2.Translate(delta)
		s.Refresh()
	}
}

// wallBounce reflects the velocity component of any segment whose endpoint has crossed an
// arena wall while still moving outward, and counts exactly one wall collision per
// segment per frame even if both endpoints are out of bounds.
func (w *World) wallBounce() {
	for _, s := range w.segments {
		if w.bounceAgainstWalls(s) {
			w.lineWall.Add(1)
		}
	}
}

func (w *World) bounceAgainstWalls(s *segment.Segment) bool {
	origVx, origVy := s.Velocity.X(), s.Velocity.Y()
	flipX, flipY := false, false
	eps := linesim.GetEpsilon()

	for _, p := range [2]point.Point{s.P1, s.P2} {
		if numeric.FloatLessThan(p.X(), w.arena.MinX, eps) && origVx < 0 {
			flipX = true
		}
		if numeric.FloatGreaterThan(p.X(), w.arena.MaxX, eps) && origVx > 0 {
			flipX = true
		}
		if numeric.FloatLessThan(p.Y(), w.arena.MinY, eps) && origVy < 0 {
			flipY = true
		}
		if numeric.FloatGreaterThan(p.Y(), w.arena.MaxY, eps) && origVy > 0 {
			flipY = true
		}
	}

	if !flipX && !flipY {
		return false
	}

	vx, vy := origVx, origVy
	if flipX {
		vx = -vx
	}
	if flipY {
		vy = -vy
	}
	s.Velocity = point.New(vx, vy)
	return true
}
