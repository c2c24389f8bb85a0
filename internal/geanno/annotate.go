package geanno

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Annotator maps base regions against a set of reference collections. Build
// one with Load or, for collections already in memory, NewAnnotator
type Annotator struct {
	configs []Config
	sets    []*IntervalSet

	// columns are the distinct region types in first-encounter order
	columns []string
	colIdx  map[string]int
}

// AnnotateCmd runs annotate from the command line
func AnnotateCmd(cmd *cobra.Command, args []string) {
	flags, settings := parseCmdFlags(cmd, args)

	start := time.Now()

	a, err := Load(flags.database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the database")
	}

	header, bases, err := ReadBase(flags.in)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read base regions")
	}

	table := a.Annotate(bases, settings.Threads)

	if err := WriteTableFile(flags.out, header, table); err != nil {
		log.Fatal().Err(err).Msg("failed to write the annotated table")
	}

	log.Info().
		Str("regions", humanize.Comma(int64(table.Len()))).
		Int("columns", len(table.Columns())).
		Int("threads", settings.Threads).
		Dur("in", time.Since(start)).
		Msg("annotated")
}

// Load reads a database table and indexes every reference collection it
// lists, returning an Annotator ready for Annotate
func Load(dbPath string) (*Annotator, error) {
	configs, err := ReadDatabase(dbPath)
	if err != nil {
		return nil, err
	}

	sets := make([]*IntervalSet, len(configs))
	for i, c := range configs {
		start := time.Now()

		refs, err := ReadReference(c)
		if err != nil {
			return nil, err
		}
		if sets[i], err = NewIntervalSet(refs); err != nil {
			return nil, errors.Wrapf(err, "failed to index %s", c.File)
		}

		log.Debug().
			Str("file", filepath.Base(c.File)).
			Str("regionType", c.RegionType).
			Str("intervals", humanize.Comma(int64(sets[i].Len()))).
			Int("chroms", sets[i].Chroms()).
			Dur("in", time.Since(start)).
			Msg("indexed")
	}

	return NewAnnotator(configs, sets)
}

// NewAnnotator validates the reference configs and pairs each with its
// indexed interval set. Use Load to build both from a database table on disk
func NewAnnotator(configs []Config, sets []*IntervalSet) (*Annotator, error) {
	if len(configs) != len(sets) {
		return nil, errors.Errorf("%d configs paired with %d interval sets", len(configs), len(sets))
	}

	a := &Annotator{
		configs: configs,
		sets:    sets,
		colIdx:  make(map[string]int),
	}
	for i := range configs {
		if err := configs[i].validate(); err != nil {
			return nil, err
		}
		if _, seen := a.colIdx[configs[i].RegionType]; !seen {
			a.colIdx[configs[i].RegionType] = len(a.columns)
			a.columns = append(a.columns, configs[i].RegionType)
		}
	}

	return a, nil
}

// Annotate maps every base region against every reference collection,
// writing one list of "label(distance)" hits per region type and NoHit
// where nothing qualifies. Rows keep their input order whatever the thread
// count
func (a *Annotator) Annotate(bases []Region, threads int) *Table {
	t := newTable(bases, a.columns)
	if len(bases) == 0 {
		return t
	}

	if threads < 1 {
		threads = 1
	}
	if threads > len(bases) {
		threads = len(bases)
	}

	// each worker annotates its own block of rows so writes never overlap
	var wg sync.WaitGroup
	chunk := (len(bases) + threads - 1) / threads
	for lo := 0; lo < len(bases); lo += chunk {
		hi := lo + chunk
		if hi > len(bases) {
			hi = len(bases)
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				a.annotateRow(t, i)
			}
		}(lo, hi)
	}
	wg.Wait()

	return t
}

// annotateRow fills row i's annotation cells. Collections that share a
// region type append to the same cell in database order
func (a *Annotator) annotateRow(t *Table, i int) {
	b := t.bases[i]

	cells := make([][]string, len(a.columns))
	for ci := range a.configs {
		col := a.colIdx[a.configs[ci].RegionType]
		for _, h := range a.hits(ci, b) {
			cells[col] = append(cells[col], h.String())
		}
	}

	for col, hits := range cells {
		if len(hits) > 0 {
			t.cells[i][col] = strings.Join(hits, ";")
		}
	}
}

// hits collects the references of collection ci within its configured
// distance of the base region, selected down to the collection's hit policy
func (a *Annotator) hits(ci int, b Region) []Hit {
	c := a.configs[ci]

	var hits []Hit
	for _, r := range a.sets[ci].Candidates(b, c.MaxDistance) {
		d := distance(r, b, c.DistanceTo)
		if abs(d) > c.MaxDistance {
			continue
		}
		hits = append(hits, Hit{Label: r.Label, Distance: d, ord: r.ord})
	}

	return selectHits(hits, c.Hits)
}
