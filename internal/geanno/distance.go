package geanno

// distance is the signed basepair distance between a reference interval and
// a base region, measured to the reference's anchor. Negative means the
// anchor lies before the base region, positive after it, zero within it.
// The nearest position outside a region is 1 away, so bookended intervals
// never come back as overlapping
func distance(r RefInterval, b Region, anchor Anchor) int {
	switch anchor {
	case AnchorStart:
		return pointDistance(r.Start, b.Start, b.End)
	case AnchorEnd:
		return pointDistance(r.End, b.Start, b.End)
	case AnchorMid:
		return pointDistance((r.Start+r.End)/2, b.Start, b.End)
	}
	return regionDistance(r.Start, r.End, b.Start, b.End)
}

// pointDistance is the signed distance from the point to the base region
// [start, end)
func pointDistance(point, start, end int) int {
	if point < start {
		return point - start
	}
	if point >= end {
		return point - end + 1
	}
	return 0
}

// regionDistance is the signed distance between the nearest edges of the
// reference [refStart, refEnd) and the base region [start, end). Zero only
// when they overlap
func regionDistance(refStart, refEnd, start, end int) int {
	if refEnd <= start {
		return refEnd - start - 1
	}
	if refStart >= end {
		return refStart - end + 1
	}
	return 0
}

// abs of a distance
func abs(d int) int {
	if d < 0 {
		return -d
	}
	return d
}
