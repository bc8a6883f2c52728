package collision

import (
	"github.com/google/btree"

	"github.com/cdillond/linesim/geomkernel"
	"github.com/cdillond/linesim/quadtree"
	"github.com/cdillond/linesim/segment"
)

// eventListDegree is the btree.BTreeG branching factor. The teacher's sweep-line event
// queue and intersection-results structures (both built on github.com/google/btree) use a
// similarly small degree; events per frame are typically in the dozens to low thousands,
// well inside the range where a small degree keeps node overhead low without forcing
// deep trees.
const eventListDegree = 32

// EventList is the canonically ordered, deduplicated set of collision events discovered
// in a single frame. It is the direct descendant of the teacher's btree-backed
// intersection-results structure, repurposed from storing geometric intersection points
// to storing classified collision events.
type EventList struct {
	tree *btree.BTreeG[Event]
}

// NewEventList returns an empty EventList.
func NewEventList() *EventList {
	return &EventList{tree: btree.NewG(eventListDegree, Less)}
}

// Classify converts a slice of quadtree candidate pairs into classified events, in place.
// None-classified pairs are dropped; every non-None pair replaces any existing entry for
// the same (A.Id, B.Id) key, which guarantees single emission per pair even if
// FindCandidatePairs ever surfaced a duplicate.
func (el *EventList) Classify(pairs []quadtree.Pair, dt float64) {
	for _, p := range pairs {
		l1, l2 := segment.Ordered(p.A, p.B)
		kind := geomkernel.Intersect(l1, l2, dt)
		if kind == geomkernel.None {
			continue
		}
		el.tree.ReplaceOrInsert(Event{A: l1, B: l2, Kind: kind})
	}
}

// Len returns the number of events currently held.
func (el *EventList) Len() int {
	return el.tree.Len()
}

// Ascend calls fn for every event in canonical order, stopping early if fn returns false.
func (el *EventList) Ascend(fn func(Event) bool) {
	el.tree.Ascend(func(e Event) bool {
		return fn(e)
	})
}

// All returns every event in canonical order as a slice, for callers that need random
// access rather than a callback.
func (el *EventList) All() []Event {
	out := make([]Event, 0, el.tree.Len())
	el.Ascend(func(e Event) bool {
		out = append(out, e)
		return true
	})
	return out
}
