package geanno

import "strconv"

// Table is an annotation result: one row per base region in input order,
// one annotation column per region type in first-encounter order
type Table struct {
	bases   []Region
	columns []string
	cells   [][]string
}

// newTable makes a Table with every annotation cell set to NoHit
func newTable(bases []Region, columns []string) *Table {
	cells := make([][]string, len(bases))
	for i := range cells {
		row := make([]string, len(columns))
		for j := range row {
			row[j] = NoHit
		}
		cells[i] = row
	}

	return &Table{bases: bases, columns: columns, cells: cells}
}

// Len is the number of base regions in the table
func (t *Table) Len() int { return len(t.bases) }

// Columns returns the annotation column names, one per region type
func (t *Table) Columns() []string { return t.columns }

// Header is the output header: the base file's columns followed by the
// annotation columns
func (t *Table) Header(base []string) []string {
	header := make([]string, 0, len(base)+len(t.columns))
	header = append(header, base...)
	return append(header, t.columns...)
}

// Row is output row i: chrom, start, end, the base region's extra columns,
// then its annotation cells
func (t *Table) Row(i int) []string {
	b := t.bases[i]

	row := make([]string, 0, 3+len(b.Extras)+len(t.columns))
	row = append(row, b.Chrom, strconv.Itoa(b.Start), strconv.Itoa(b.End))
	row = append(row, b.Extras...)
	return append(row, t.cells[i]...)
}

// Cell is the annotation cell at row i for the named region type
func (t *Table) Cell(i int, regionType string) string {
	for j, c := range t.columns {
		if c == regionType {
			return t.cells[i][j]
		}
	}
	return ""
}
