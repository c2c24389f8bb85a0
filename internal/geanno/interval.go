package geanno

import (
	"fmt"

	"github.com/biogo/store/interval"
)

// irange is an integer-specific interval tree entry. Its UID doubles as the
// index of the reference in its IntervalSet's refs slice
type irange struct {
	Start, End int
	UID        uintptr
}

func (i irange) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return i.End > b.Start && i.Start < b.End
}
func (i irange) ID() uintptr              { return i.UID }
func (i irange) Range() interval.IntRange { return interval.IntRange{Start: i.Start, End: i.End} }

// IntervalSet indexes one reference collection's intervals per chromosome
// for overlap queries
type IntervalSet struct {
	refs  []RefInterval
	trees map[string]*interval.IntTree
}

// NewIntervalSet indexes reference intervals, assigning each its load order.
// Intervals with a negative start or an empty span are rejected
func NewIntervalSet(refs []RefInterval) (*IntervalSet, error) {
	s := &IntervalSet{
		refs:  refs,
		trees: make(map[string]*interval.IntTree),
	}

	for i := range refs {
		r := &refs[i]
		if r.Start < 0 || r.Start >= r.End {
			return nil, &DataError{
				Reason: fmt.Sprintf("reference interval %s:%d-%d is not a valid half open span", r.Chrom, r.Start, r.End),
			}
		}
		r.ord = i

		if _, ok := s.trees[r.Chrom]; !ok {
			s.trees[r.Chrom] = &interval.IntTree{}
		}
		s.trees[r.Chrom].Insert(irange{r.Start, r.End, uintptr(i)}, false)
	}

	return s, nil
}

// Candidates returns the references near enough to the base region to
// possibly lie within maxDistance of it, whatever the anchor. The window is
// a superset: callers still filter by exact anchor distance
func (s *IntervalSet) Candidates(b Region, maxDistance int) []RefInterval {
	tree, ok := s.trees[b.Chrom]
	if !ok {
		return nil
	}

	q := irange{Start: b.Start - maxDistance - 1, End: b.End + maxDistance + 1}

	var near []RefInterval
	tree.DoMatching(func(iv interval.IntInterface) bool {
		near = append(near, s.refs[iv.ID()])
		return false
	}, q)

	return near
}

// Len is the number of indexed reference intervals
func (s *IntervalSet) Len() int { return len(s.refs) }

// Chroms is the number of chromosomes the references span
func (s *IntervalSet) Chroms() int { return len(s.trees) }
