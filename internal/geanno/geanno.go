// Package geanno annotates genomic "base" regions against collections of
// reference intervals. Each reference collection adds a column to the output:
// the labels of its references within a maximum distance of the base region,
// together with their signed distances.
package geanno

// NoHit is written to an annotation cell when no reference interval
// qualifies for the base region
const NoHit = "NA"

// Region is a base interval to annotate. Coordinates are half open,
// [Start, End), like BED
type Region struct {
	// Chrom is the chromosome or contig name, matched to references verbatim
	Chrom string

	// Start is the 0-based inclusive start coordinate
	Start int

	// End is the exclusive end coordinate
	End int

	// Extras are the columns after chrom, start and end in the input file.
	// They pass through to the output unchanged
	Extras []string
}

// RefInterval is one interval of a reference collection with the label it
// annotates base regions with
type RefInterval struct {
	// Chrom is the chromosome or contig name
	Chrom string

	// Start is the 0-based inclusive start coordinate
	Start int

	// End is the exclusive end coordinate
	End int

	// Label is what the interval writes into an annotation cell: the
	// collection's SOURCE or the value of the interval's NAME.COL column
	Label string

	// ord is the interval's load order within its collection. Hits at the
	// same absolute distance keep this order
	ord int
}
