package geanno

import (
	"reflect"
	"testing"
)

func TestTable(t *testing.T) {
	bases := []Region{
		{Chrom: "chr1", Start: 100, End: 200, Extras: []string{"r1", "+"}},
		{Chrom: "chr2", Start: 5, End: 10},
	}

	table := newTable(bases, []string{"Gene.Name", "Enhancer.Roadmap"})
	table.cells[0][1] = "E045(0)"

	t.Run("header appends annotation columns", func(t *testing.T) {
		got := table.Header([]string{"CHROM", "START", "END", "ID", "STRAND"})
		want := []string{"CHROM", "START", "END", "ID", "STRAND", "Gene.Name", "Enhancer.Roadmap"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Table.Header() = %v, want %v", got, want)
		}
	})

	t.Run("rows carry the base columns and cells", func(t *testing.T) {
		got := table.Row(0)
		want := []string{"chr1", "100", "200", "r1", "+", NoHit, "E045(0)"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Table.Row(0) = %v, want %v", got, want)
		}
	})

	t.Run("cells default to no hit", func(t *testing.T) {
		if got := table.Cell(1, "Gene.Name"); got != NoHit {
			t.Errorf("Table.Cell(1, Gene.Name) = %q, want %q", got, NoHit)
		}
	})

	t.Run("unknown region type is empty", func(t *testing.T) {
		if got := table.Cell(0, "CpG.Island"); got != "" {
			t.Errorf("Table.Cell(0, CpG.Island) = %q, want an empty string", got)
		}
	})
}
