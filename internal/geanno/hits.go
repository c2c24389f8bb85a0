package geanno

import (
	"sort"
	"strconv"
)

// Hit is one reference interval that qualified for a base region
type Hit struct {
	// Label is what the hit writes into the annotation cell
	Label string

	// Distance is the signed distance from the reference's anchor to the
	// base region
	Distance int

	// ord is the reference's load order, breaking ties between hits at the
	// same absolute distance
	ord int
}

// String is the hit as it appears in an annotation cell, ex: "MFSD8(-1200)"
func (h Hit) String() string {
	return h.Label + "(" + strconv.Itoa(h.Distance) + ")"
}

// selectHits sorts hits by absolute distance, load order between ties, and
// truncates them to the collection's hit policy. Sorts in place
func selectHits(hits []Hit, policy HitPolicy) []Hit {
	sort.Slice(hits, func(i, j int) bool {
		di, dj := abs(hits[i].Distance), abs(hits[j].Distance)
		if di != dj {
			return di < dj
		}
		return hits[i].ord < hits[j].ord
	})

	keep := len(hits)
	switch policy.Kind {
	case HitsClosest:
		keep = 1
	case HitsCount:
		keep = policy.Count
	}
	if keep > len(hits) {
		keep = len(hits)
	}

	return hits[:keep]
}
