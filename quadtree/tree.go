// Package quadtree implements a dynamic spatial index over swept segment bounding boxes,
// rebuilt once per frame from scratch. It exists purely as a broad-phase filter: Build
// partitions segments into overlapping cells, and FindCandidatePairs enumerates the pairs
// of segments that share a cell, deferring the expensive exact test to
// [github.com/cdillond/linesim/geomkernel].
//
// The tree never owns segment storage. Nodes hold pointers into the caller's segment
// slice and are only valid for the lifetime of the frame that built them; Destroy drops
// those references so the tree's memory can be reclaimed without waiting on a GC pass to
// walk it.
package quadtree

import (
	"context"
	"fmt"

	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/segment"
)

// Node is a single quadtree cell.
type Node struct {
	Bounds   AABB
	Depth    int
	Segments []*segment.Segment
	Children [4]*Node // nil for a leaf
}

func (n *Node) isLeaf() bool {
	return n.Children[0] == nil
}

// Stats records build-time bookkeeping, populated only when Config.EnableDebugStats is
// set.
type Stats struct {
	NodeCount      int
	LeafCount      int
	MaxDepthSeen   int
	CandidatePairs int
}

// Tree is a quadtree built over a snapshot of segments' swept bounding boxes for a single
// frame's timestep.
type Tree struct {
	Root     *Node
	cfg      Config
	dt       float64
	maxSpeed float64 // tree-wide maximum segment speed for the frame, cached once by Build
	boxes    []AABB  // boxes[s.Id] is s's swept box; computed once by Build, never recomputed
	Stats    Stats
	nodes    int // running node count, checked against a budget during Build
	budget   int
}

// maxNodeBudget bounds the number of nodes a single Build may allocate. There is no
// direct analogue to a failed malloc in Go, so a node-count ceiling stands in for one:
// crossing it returns linesim.ErrAllocationFailure exactly where a C implementation would
// see calloc return NULL.
const maxNodeBudget = 1 << 20

// Build partitions segments into a quadtree, using each segment's swept bounding box over
// dt (see sweptBounds) as its spatial extent. The root region is derived from the union of
// every segment's swept box, padded by cfg.BBoxEpsilon — not the arena — which guarantees
// every segment has a non-empty intersection with the root and therefore lands in at
// least one leaf, even a segment whose swept box happens to lie outside the arena's own
// bounds. A segment whose swept box straddles a split line is stored in every quadrant it
// overlaps, not pushed down into one arbitrarily — this is what lets FindCandidatePairs
// dedup by pair rather than by cell without missing the boundary-straddling case described
// by the "multi-cell membership" requirement.
func Build(segments []*segment.Segment, dt float64, opts ...Option) (*Tree, error) {
	cfg := Apply(opts...)
	t := &Tree{cfg: cfg, dt: dt, budget: maxNodeBudget}

	for _, s := range segments {
		if s.CachedSpeed > t.maxSpeed {
			t.maxSpeed = s.CachedSpeed
		}
	}

	boxes := make([]AABB, len(segments))
	t.boxes = make([]AABB, len(segments))
	for i, s := range segments {
		b := sweptBounds(s, dt, cfg.BBoxEpsilon, cfg.BBoxVelFactor, t.maxSpeed)
		boxes[i] = b
		t.boxes[s.Id] = b
	}

	root, err := t.newNode(unionBounds(boxes, cfg.BBoxEpsilon), 0)
	if err != nil {
		return nil, err
	}
	t.Root = root

	for i, s := range segments {
		if err := t.insert(root, s, boxes[i]); err != nil {
			return nil, err
		}
	}

	if cfg.EnableDebugStats {
		t.Stats.LeafCount = countLeaves(t.Root)
		if pairs, perr := t.FindCandidatePairs(context.Background()); perr == nil {
			t.Stats.CandidatePairs = len(pairs)
		}
	}
	return t, nil
}

func countLeaves(n *Node) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	sum := 0
	for _, child := range n.Children {
		sum += countLeaves(child)
	}
	return sum
}

func (t *Tree) newNode(bounds AABB, depth int) (*Node, error) {
	t.nodes++
	if t.nodes > t.budget {
		return nil, fmt.Errorf("quadtree: node budget exceeded at depth %d: %w", depth, linesim.ErrAllocationFailure)
	}
	if t.cfg.EnableDebugStats {
		t.Stats.NodeCount++
		if depth > t.Stats.MaxDepthSeen {
			t.Stats.MaxDepthSeen = depth
		}
	}
	return &Node{Bounds: bounds, Depth: depth}, nil
}

func (t *Tree) insert(n *Node, s *segment.Segment, box AABB) error {
	if !n.Bounds.Intersects(box) {
		return nil
	}
	if n.isLeaf() {
		n.Segments = append(n.Segments, s)
		if len(n.Segments) > t.cfg.MaxLinesPerNode &&
			n.Depth < t.cfg.MaxDepth &&
			n.Bounds.width() >= 2*t.cfg.MinCellSize &&
			n.Bounds.height() >= 2*t.cfg.MinCellSize {
			if err := t.subdivide(n); err != nil {
				return err
			}
		}
		return nil
	}
	for _, child := range n.Children {
		if err := t.insert(child, s, box); err != nil {
			return err
		}
	}
	return nil
}

// subdivide splits a leaf into four quadrants and redistributes its segments downward,
// looking each segment's swept box up from t.boxes (computed once per frame by Build)
// rather than recomputing it with sweptBounds.
func (t *Tree) subdivide(n *Node) error {
	quads := n.Bounds.quadrants()
	for i, q := range quads {
		child, err := t.newNode(q, n.Depth+1)
		if err != nil {
			return err
		}
		n.Children[i] = child
	}

	existing := n.Segments
	n.Segments = nil
	for _, s := range existing {
		box := t.boxes[s.Id]
		for _, child := range n.Children {
			if err := t.insert(child, s, box); err != nil {
				return err
			}
		}
	}
	return nil
}

// Destroy drops the tree's references into the segment slice it was built over, so the
// tree's node graph can be collected without the caller needing to wait for a full
// frame-to-frame GC cycle.
func (t *Tree) Destroy() {
	destroyNode(t.Root)
	t.Root = nil
}

func destroyNode(n *Node) {
	if n == nil {
		return
	}
	n.Segments = nil
	for i, child := range n.Children {
		destroyNode(child)
		n.Children[i] = nil
	}
}
