package interval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned when an interval's start is after its end.
var ErrInvalidRange = errors.New("invalid interval range")

// Interval is a half-open range of positions [Start, End).  Start == End is a
// valid, empty interval.
type Interval struct {
	Start PosType
	End   PosType
}

// Len returns the number of positions covered by the interval, or 0 if it is
// empty or malformed.
func (iv Interval) Len() int64 {
	if iv.End <= iv.Start {
		return 0
	}
	return int64(iv.End - iv.Start)
}

// String returns the interval in "[start, end)" form.
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

func (iv Interval) validate() error {
	if iv.End < iv.Start {
		return errors.Wrapf(ErrInvalidRange, "start %d > end %d", iv.Start, iv.End)
	}
	if iv.End == PosTypeMax {
		return errors.Wrapf(ErrInvalidRange, "end coordinate %d out of range", iv.End)
	}
	return nil
}

// PositionSet is the set of positions covered by a collection of intervals.
//
// It is implemented as a length-2N sequence of endpoints, where N is the number
// of disjoint, non-touching intervals; the start of interval #k is in element
// [2k] and the end in element [2k+1], and the intervals are stored in
// increasing order.  A PositionSet is immutable once built; Intersect and
// Union return new sets.
type PositionSet struct {
	endpoints []PosType
}

// Build returns the set of positions p such that Start <= p < End for some
// interval in intervals.  The intervals may be in any order and may overlap or
// repeat; empty intervals contribute nothing.  An interval with Start > End
// causes ErrInvalidRange to be returned; the bounds are never swapped.
func Build(intervals []Interval) (PositionSet, error) {
	sorted := make([]Interval, 0, len(intervals))
	for i, iv := range intervals {
		if err := iv.validate(); err != nil {
			return PositionSet{}, errors.Wrapf(err, "interval #%d", i)
		}
		if iv.Start == iv.End {
			continue
		}
		sorted = append(sorted, iv)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return PositionSet{endpoints: mergeSorted(sorted)}, nil
}

// mergeSorted collapses a start-sorted list of nonempty intervals into a
// sorted endpoint sequence, merging touching and overlapping intervals.
func mergeSorted(sorted []Interval) []PosType {
	if len(sorted) == 0 {
		return nil
	}
	endpoints := make([]PosType, 0, 2*len(sorted))
	prevStart := sorted[0].Start
	prevEnd := sorted[0].End
	for _, iv := range sorted[1:] {
		if iv.Start > prevEnd {
			// New interval doesn't overlap or touch the previous one, so we can
			// save the previous one.
			endpoints = append(endpoints, prevStart, prevEnd)
			prevStart = iv.Start
			prevEnd = iv.End
			continue
		}
		if iv.End > prevEnd {
			prevEnd = iv.End
		}
	}
	return append(endpoints, prevStart, prevEnd)
}

// Endpoints returns the sorted endpoint sequence backing the set.  The caller
// must not modify it.
func (s PositionSet) Endpoints() []PosType {
	return s.endpoints
}

// Empty returns true if the set covers no positions.
func (s PositionSet) Empty() bool {
	return len(s.endpoints) == 0
}

// NumIntervals returns the number of disjoint intervals making up the set.
func (s PositionSet) NumIntervals() int {
	return len(s.endpoints) / 2
}

// Cardinality returns the number of positions in the set.
func (s PositionSet) Cardinality() int64 {
	var n int64
	for i := 0; i < len(s.endpoints); i += 2 {
		n += int64(s.endpoints[i+1] - s.endpoints[i])
	}
	return n
}

// Contains checks whether pos is in the set.
func (s PositionSet) Contains(pos PosType) bool {
	if pos == PosTypeMax {
		return false
	}
	return NewEndpointIndex(pos, s.endpoints).Contained()
}

// Intervals returns the disjoint, sorted intervals making up the set.
func (s PositionSet) Intervals() []Interval {
	ivs := make([]Interval, 0, len(s.endpoints)/2)
	for i := 0; i < len(s.endpoints); i += 2 {
		ivs = append(ivs, Interval{Start: s.endpoints[i], End: s.endpoints[i+1]})
	}
	return ivs
}

// Positions materializes every position in the set, in increasing order.
// Memory use is proportional to Cardinality(), so this is intended for small
// sets and tests.
func (s PositionSet) Positions() []PosType {
	positions := make([]PosType, 0, s.Cardinality())
	us := NewUnionScanner(s.endpoints)
	var start, end PosType
	for us.Scan(&start, &end, PosTypeMax) {
		for pos := start; pos < end; pos++ {
			positions = append(positions, pos)
		}
	}
	return positions
}

// Equal returns true if the two sets contain exactly the same positions.
func (s PositionSet) Equal(other PositionSet) bool {
	if len(s.endpoints) != len(other.endpoints) {
		return false
	}
	for i, e := range s.endpoints {
		if other.endpoints[i] != e {
			return false
		}
	}
	return true
}

// String returns the set as a union of half-open intervals.
func (s PositionSet) String() string {
	if s.Empty() {
		return "{}"
	}
	parts := make([]string, 0, s.NumIntervals())
	for _, iv := range s.Intervals() {
		parts = append(parts, iv.String())
	}
	return strings.Join(parts, " U ")
}

// Intersect returns the positions present in both a and b.  It is commutative
// and idempotent, and never modifies its inputs.  An empty result is not an
// error.
func Intersect(a, b PositionSet) PositionSet {
	ae, be := a.endpoints, b.endpoints
	var endpoints []PosType
	i, j := 0, 0
	for i < len(ae) && j < len(be) {
		start := ae[i]
		if be[j] > start {
			start = be[j]
		}
		end := ae[i+1]
		if be[j+1] < end {
			end = be[j+1]
		}
		if start < end {
			endpoints = append(endpoints, start, end)
		}
		// Both inputs are merged, so the results of consecutive steps can never
		// touch; the output is already in canonical form.
		if ae[i+1] < be[j+1] {
			i += 2
		} else {
			j += 2
		}
	}
	return PositionSet{endpoints: endpoints}
}

// Union returns the positions present in a or b.
func Union(a, b PositionSet) PositionSet {
	ae, be := a.endpoints, b.endpoints
	merged := make([]Interval, 0, (len(ae)+len(be))/2)
	i, j := 0, 0
	for i < len(ae) || j < len(be) {
		if j == len(be) || (i < len(ae) && ae[i] <= be[j]) {
			merged = append(merged, Interval{Start: ae[i], End: ae[i+1]})
			i += 2
		} else {
			merged = append(merged, Interval{Start: be[j], End: be[j+1]})
			j += 2
		}
	}
	return PositionSet{endpoints: mergeSorted(merged)}
}
