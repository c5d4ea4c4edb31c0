package internal

import (
	"sort"

	"github.com/google/btree"
)

// Sweep line intersection detection. A vertical line moves left to right
// across the plane; each segment contributes a start event at its left
// endpoint and an end event at its right endpoint. The status structure holds
// the segments currently crossing the line, ordered by their y at the line's
// position, and only segments adjacent in that order are ever tested against
// each other.
//
// This is the classic adjacency-only variant: it does not insert intersection
// points as new events and re-sort the status there, so two segments that
// cross without ever becoming adjacent in the ordering are not reported. That
// limitation is part of the contract, not a bug to fix silently; the sweep's
// output is always a subset of PairwiseIntersections. See
// TestSweepAdjacencyOnlySubset.

type eventKind int

const (
	startEvent eventKind = iota
	endEvent
)

// A segment as seen by one sweep run. The endpoints are reordered so that
// left precedes right in sweep order (x, then y), without touching the
// caller's Segment. The id is the segment's input position; it breaks every
// tie in the event queue and the status, which is what keeps both orders
// total even for vertical segments, shared endpoints, and collinear overlaps.
type sweepSegment struct {
	id          int
	seg         *Segment
	left, right *Point
}

// The segment's y at the sweep position. Vertical segments have no single
// answer, so they key on their lower endpoint; the id tie-break does the rest.
// The position is clamped to the segment's span so that querying at the exact
// endpoint events can never extrapolate.
func (ss *sweepSegment) yAt(x float64) float64 {
	if ss.left.X == ss.right.X {
		return ss.left.Y
	}
	if x <= ss.left.X {
		return ss.left.Y
	}
	if x >= ss.right.X {
		return ss.right.Y
	}
	t := (x - ss.left.X) / (ss.right.X - ss.left.X)
	return ss.left.Y + t*(ss.right.Y-ss.left.Y)
}

type sweepEvent struct {
	x, y float64
	kind eventKind
	ss   *sweepSegment
}

// The status structure: segments currently crossing the sweep line, ordered
// by y at the current x. The comparator reads the position off the owning
// status, so items do not need rekeying as the line advances. One status is
// owned exclusively by one sweep run and discarded at its end.
type sweepStatus struct {
	tree *btree.BTree
	x    float64
}

type statusItem struct {
	ss *sweepSegment
	st *sweepStatus
}

func (item statusItem) Less(than btree.Item) bool {
	other := than.(statusItem)
	y1 := item.ss.yAt(item.st.x)
	y2 := other.ss.yAt(other.st.x)
	if y1 != y2 {
		return y1 < y2
	}
	return item.ss.id < other.ss.id
}

// Neighbor directly above the item in the status order, or nil.
func (st *sweepStatus) above(item statusItem) *sweepSegment {
	var result *sweepSegment
	st.tree.AscendGreaterOrEqual(item, func(i btree.Item) bool {
		other := i.(statusItem)
		if other.ss == item.ss {
			return true
		}
		result = other.ss
		return false
	})
	return result
}

// Neighbor directly below the item in the status order, or nil.
func (st *sweepStatus) below(item statusItem) *sweepSegment {
	var result *sweepSegment
	st.tree.DescendLessOrEqual(item, func(i btree.Item) bool {
		other := i.(statusItem)
		if other.ss == item.ss {
			return true
		}
		result = other.ss
		return false
	})
	return result
}

func (st *sweepStatus) insert(item statusItem) {
	st.tree.ReplaceOrInsert(item)
}

func (st *sweepStatus) remove(item statusItem) {
	if st.tree.Delete(item) != nil {
		return
	}
	// A crossing we never got to reorder at can leave the tree's invariant
	// stale, making a keyed delete miss. Rather than leave the segment in the
	// status forever, rebuild the tree without it under the current position.
	var rest []btree.Item
	st.tree.Ascend(func(i btree.Item) bool {
		if i.(statusItem).ss != item.ss {
			rest = append(rest, i)
		}
		return true
	})
	st.tree.Clear(false)
	for _, i := range rest {
		st.tree.ReplaceOrInsert(i)
	}
}

// Collects pairs, reporting each at most once no matter how many adjacency
// checks rediscover it. Output pairs are ordered by input position so runs
// are deterministic.
type pairSet struct {
	seen  map[[2]int]struct{}
	pairs []SegmentPair
}

func newPairSet() *pairSet {
	return &pairSet{seen: make(map[[2]int]struct{})}
}

func (ps *pairSet) add(a, b *sweepSegment) {
	if b.id < a.id {
		a, b = b, a
	}
	key := [2]int{a.id, b.id}
	if _, ok := ps.seen[key]; ok {
		return
	}
	ps.seen[key] = struct{}{}
	ps.pairs = append(ps.pairs, SegmentPair{A: a.seg, B: b.seg})
}

// SweepIntersections runs the sweep over the given segments and returns the
// intersecting pairs it finds, each reported once. Expected cost is
// O((n + k) log n), where k is the number of pairs found at adjacency checks.
//
// Degenerate segments panic with ErrInvalidSegment (recovered into an error
// at the public API). Segments sharing endpoints, vertical segments, and
// collinear overlaps are all legal input.
func SweepIntersections(segments []*Segment) []SegmentPair {
	events := make([]sweepEvent, 0, 2*len(segments))
	for i, seg := range segments {
		seg.validate()
		left, right := seg.Start, seg.End
		if right.X < left.X || (right.X == left.X && right.Y < left.Y) {
			left, right = right, left
		}
		ss := &sweepSegment{id: i, seg: seg, left: left, right: right}
		events = append(events,
			sweepEvent{x: left.X, y: left.Y, kind: startEvent, ss: ss},
			sweepEvent{x: right.X, y: right.Y, kind: endEvent, ss: ss},
		)
	}

	// Event order: x ascending; at equal x, starts before ends; among events
	// of the same kind, y ascending; finally by id, so the order is total.
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.x != b.x {
			return a.x < b.x
		}
		if a.kind != b.kind {
			return a.kind == startEvent
		}
		if a.y != b.y {
			return a.y < b.y
		}
		return a.ss.id < b.ss.id
	})

	status := &sweepStatus{tree: btree.New(32)}
	found := newPairSet()

	for _, ev := range events {
		status.x = ev.x
		item := statusItem{ss: ev.ss, st: status}

		if ev.kind == startEvent {
			status.insert(item)
			if above := status.above(item); above != nil && ev.ss.seg.SegmentsIntersect(above.seg) {
				found.add(ev.ss, above)
			}
			if below := status.below(item); below != nil && ev.ss.seg.SegmentsIntersect(below.seg) {
				found.add(ev.ss, below)
			}
		} else {
			above := status.above(item)
			below := status.below(item)
			status.remove(item)
			// The former neighbors are adjacent now. This is the only moment
			// this design checks them against each other.
			if above != nil && below != nil && above.seg.SegmentsIntersect(below.seg) {
				found.add(above, below)
			}
		}
	}

	return found.pairs
}
