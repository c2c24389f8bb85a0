package geanno

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/brentp/xopen"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// AnnotationBy says where a reference collection's labels come from
type AnnotationBy int

const (
	// BySource labels every hit with the collection's SOURCE field
	BySource AnnotationBy = iota

	// ByName labels each hit with the value of the interval's name column
	ByName
)

// Anchor is the point or span of a reference interval that distances are
// measured to
type Anchor int

const (
	// AnchorStart measures to the reference's start coordinate
	AnchorStart Anchor = iota

	// AnchorEnd measures to the reference's end coordinate
	AnchorEnd

	// AnchorMid measures to the midpoint of the reference, rounded down
	AnchorMid

	// AnchorRegion measures between the nearest edges of reference and base
	AnchorRegion
)

// PolicyKind is how a hit policy limits the qualifying hits of a cell
type PolicyKind int

const (
	// HitsAll keeps every qualifying hit
	HitsAll PolicyKind = iota

	// HitsClosest keeps only the hit with the smallest absolute distance
	HitsClosest

	// HitsCount keeps the Count closest hits
	HitsCount
)

// HitPolicy limits how many hits a reference collection writes per cell
type HitPolicy struct {
	Kind  PolicyKind
	Count int
}

// Config describes one reference collection: the file holding its intervals
// and how base regions are annotated with them. One row of a database table
type Config struct {
	// File is the path to the collection's intervals (BED-like, may be .gz)
	File string

	// RegionType is the output column the collection writes to. Collections
	// sharing a RegionType share the column
	RegionType string

	// Source identifies the collection, ex: "E045". Hits are labelled with
	// it under BySource
	Source string

	// By says whether hits are labelled with Source or a name column
	By AnnotationBy

	// MaxDistance is how far from the base region (in basepairs) a
	// reference may lie and still qualify
	MaxDistance int

	// DistanceTo is the reference anchor distances are measured to
	DistanceTo Anchor

	// Hits limits how many qualifying references are written per cell
	Hits HitPolicy

	// NameCol is the 0-based reference column labels come from under
	// ByName. Negative means the BED name column, index 3
	NameCol int

	// table and row are where the config was parsed from, for errors
	table string
	row   int
}

// databaseCols are the required columns of a database table, in print order
var databaseCols = []string{
	"FILENAME", "REGION.TYPE", "SOURCE", "ANNOTATION.BY",
	"MAX.DISTANCE", "DISTANCE.TO", "N.HITS", "NAME.COL",
}

// ReadDatabase reads a tab separated database table: a header row naming at
// least the required columns, then one row per reference collection.
// Relative FILENAMEs are resolved against the table's own directory
func ReadDatabase(path string) (configs []Config, err error) {
	in, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database table %s", path)
	}
	defer in.Close()

	var cols map[string]int
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimRight(scanner.Text(), "\r")
		if row == "" {
			continue
		}

		fields := strings.Split(row, "\t")
		if cols == nil {
			if cols, err = parseDatabaseHeader(fields, path, line); err != nil {
				return nil, err
			}
			continue
		}

		c, err := parseConfig(fields, cols, path, line)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read database table %s", path)
	}

	if cols == nil {
		return nil, &ConfigError{File: path, Reason: "empty database table"}
	}

	return configs, nil
}

// parseDatabaseHeader maps each column name to its index and checks that
// every required column is there
func parseDatabaseHeader(fields []string, path string, line int) (map[string]int, error) {
	cols := make(map[string]int)
	for i, f := range fields {
		cols[strings.TrimPrefix(strings.TrimSpace(f), "#")] = i
	}

	for _, c := range databaseCols {
		if _, ok := cols[c]; !ok {
			return nil, &ConfigError{
				File:   path,
				Row:    line,
				Reason: fmt.Sprintf("%s is a required column of a database table", c),
			}
		}
	}

	return cols, nil
}

// parseConfig builds one reference collection's Config from a database row
func parseConfig(fields []string, cols map[string]int, path string, row int) (c Config, err error) {
	for _, col := range databaseCols {
		if cols[col] >= len(fields) {
			return c, &ConfigError{
				File:   path,
				Row:    row,
				Reason: fmt.Sprintf("%d columns in row, %s expected at column %d", len(fields), col, cols[col]+1),
			}
		}
	}
	get := func(col string) string { return strings.TrimSpace(fields[cols[col]]) }

	c.table = path
	c.row = row
	c.File = get("FILENAME")
	if c.File != "" && c.File != "-" && !filepath.IsAbs(c.File) {
		c.File = filepath.Join(filepath.Dir(path), c.File)
	}
	c.RegionType = get("REGION.TYPE")
	c.Source = get("SOURCE")

	if c.By, err = parseAnnotationBy(get("ANNOTATION.BY")); err != nil {
		return c, &ConfigError{File: path, Row: row, Reason: err.Error()}
	}
	if c.MaxDistance, err = strconv.Atoi(get("MAX.DISTANCE")); err != nil {
		return c, &ConfigError{File: path, Row: row, Reason: fmt.Sprintf("MAX.DISTANCE %q is not an integer", get("MAX.DISTANCE"))}
	}
	if c.DistanceTo, err = parseAnchor(get("DISTANCE.TO")); err != nil {
		return c, &ConfigError{File: path, Row: row, Reason: err.Error()}
	}
	if c.Hits, err = parseHitPolicy(get("N.HITS")); err != nil {
		return c, &ConfigError{File: path, Row: row, Reason: err.Error()}
	}

	if name := get("NAME.COL"); name == "" || name == "NA" {
		c.NameCol = -1
	} else if c.NameCol, err = strconv.Atoi(name); err != nil {
		return c, &ConfigError{File: path, Row: row, Reason: fmt.Sprintf("NAME.COL %q is not NA or a column index", name)}
	}

	return c, c.validate()
}

// validate checks a Config's semantics after parsing, before its reference
// file is read
func (c *Config) validate() error {
	fail := func(reason string) error {
		return &ConfigError{File: c.table, Row: c.row, Reason: reason}
	}

	if c.File == "" {
		return fail("FILENAME must not be empty")
	}
	if c.RegionType == "" {
		return fail("REGION.TYPE must not be empty")
	}
	if c.By == BySource && c.Source == "" {
		return fail("SOURCE must not be empty when ANNOTATION.BY is SOURCE")
	}
	if c.MaxDistance < 0 {
		return fail(fmt.Sprintf("MAX.DISTANCE must be >= 0, not %d", c.MaxDistance))
	}
	if c.Hits.Kind == HitsCount && c.Hits.Count < 1 {
		return fail(fmt.Sprintf("N.HITS must be ALL, CLOSEST or a positive count, not %d", c.Hits.Count))
	}
	if c.NameCol < -1 {
		return fail(fmt.Sprintf("NAME.COL must be NA or a column index, not %d", c.NameCol))
	}

	return nil
}

// nameColumn is the column index labels come from under ByName: the BED
// name column when the config leaves NAME.COL unset
func (c *Config) nameColumn() int {
	if c.NameCol < 0 {
		return 3
	}
	return c.NameCol
}

// parseAnnotationBy maps an ANNOTATION.BY token to its AnnotationBy
func parseAnnotationBy(s string) (AnnotationBy, error) {
	switch strings.ToUpper(s) {
	case "SOURCE":
		return BySource, nil
	case "NAME":
		return ByName, nil
	}
	return 0, fmt.Errorf("ANNOTATION.BY must be SOURCE or NAME, not %q", s)
}

// parseAnchor maps a DISTANCE.TO token to its Anchor
func parseAnchor(s string) (Anchor, error) {
	switch strings.ToUpper(s) {
	case "START":
		return AnchorStart, nil
	case "END":
		return AnchorEnd, nil
	case "MID":
		return AnchorMid, nil
	case "REGION":
		return AnchorRegion, nil
	}
	return 0, fmt.Errorf("DISTANCE.TO must be START, END, MID or REGION, not %q", s)
}

// parseHitPolicy maps an N.HITS token to its HitPolicy. ALL and CLOSEST are
// keywords, anything else must be a positive count
func parseHitPolicy(s string) (HitPolicy, error) {
	switch strings.ToUpper(s) {
	case "ALL":
		return HitPolicy{Kind: HitsAll}, nil
	case "CLOSEST":
		return HitPolicy{Kind: HitsClosest}, nil
	}

	count, err := strconv.Atoi(s)
	if err != nil || count < 1 {
		return HitPolicy{}, fmt.Errorf("N.HITS must be ALL, CLOSEST or a positive count, not %q", s)
	}
	return HitPolicy{Kind: HitsCount, Count: count}, nil
}

func (b AnnotationBy) String() string {
	if b == ByName {
		return "NAME"
	}
	return "SOURCE"
}

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "START"
	case AnchorEnd:
		return "END"
	case AnchorMid:
		return "MID"
	}
	return "REGION"
}

func (p HitPolicy) String() string {
	switch p.Kind {
	case HitsClosest:
		return "CLOSEST"
	case HitsCount:
		return strconv.Itoa(p.Count)
	}
	return "ALL"
}

// nameColString is NAME.COL as it appears in a database table
func (c *Config) nameColString() string {
	if c.NameCol < 0 {
		return "NA"
	}
	return strconv.Itoa(c.NameCol)
}

// DatabaseCmd reads the database table passed over the command line and
// prints its reference collections, erroring out if any row is invalid or
// names a file that isn't there
func DatabaseCmd(cmd *cobra.Command, args []string) {
	path, err := cmd.Flags().GetString("database")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse the database flag")
	}

	configs, err := ReadDatabase(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read the database table")
	}

	missing := 0
	for _, c := range configs {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			log.Error().Str("file", c.File).Int("row", c.row).Msg("reference file not found")
			missing++
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(w, strings.Join(databaseCols, "\t"))
	for _, c := range configs {
		fmt.Fprintf(
			w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			c.File, c.RegionType, c.Source, c.By, c.MaxDistance, c.DistanceTo, c.Hits, c.nameColString(),
		)
	}
	w.Flush()

	if missing > 0 {
		log.Fatal().Int("missing", missing).Msg("database names reference files that are not on the filesystem")
	}
}
