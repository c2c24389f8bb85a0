package geanno

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/HiDiHlabs/geanno/config"
	"github.com/brentp/xopen"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Flags contains parsed cobra flags like "in", "out" and "database" that
// the annotate command runs with
type Flags struct {
	// in is the path to the base regions file ("-" for stdin)
	in string

	// out is the path to write the annotated table to ("-" for stdout)
	out string

	// database is the path to the table listing the reference collections
	database string
}

// inputParser contains methods for parsing flags from the input &cobra.Command
type inputParser struct{}

// parseCmdFlags gathers the in path, out path and database path from a cobra
// cmd object. Returns Flags and the app settings
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, config.Settings) {
	var err error
	fs := &Flags{}
	p := inputParser{}

	if fs.in, err = cmd.Flags().GetString("in"); err != nil || fs.in == "" {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput(); err != nil {
			// no input flag, argument, or BED file in the directory
			log.Fatal().Err(err).Msg("failed to find base regions")
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); err != nil || fs.out == "" {
		fs.out = p.guessOutput(fs.in) // guess at an output name
	}

	if fs.database, err = cmd.Flags().GetString("database"); err != nil {
		log.Fatal().Err(err).Msg("failed to parse the database flag")
	}

	return fs, config.New()
}

// guessInput returns the first BED file in the current directory. Is used
// if the user hasn't specified an input file
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext == ".bed" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no BED file found in %s", dir)
}

// guessOutput gets an output path from an input path (if no output path is
// specified). It uses the same name as the input path to create an output
func (p *inputParser) guessOutput(in string) (out string) {
	if in == "-" {
		return "-" // reading stdin, write stdout
	}

	ext := filepath.Ext(in)
	noExt := in[0 : len(in)-len(ext)]
	return noExt + ".geanno.tsv"
}

// ReadBase reads the base regions to annotate from a BED-like file: tab
// separated chrom, start and end columns with any further columns riding
// along unchanged into the output. A leading "#" line becomes the output
// header. path may be "-" for stdin and may point at a gzipped file
func ReadBase(path string) (header []string, bases []Region, err error) {
	in, err := xopen.Ropen(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open base regions %s", path)
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimRight(scanner.Text(), "\r")
		if row == "" {
			continue
		}
		if strings.HasPrefix(row, "#") {
			if header == nil && len(bases) == 0 {
				header = strings.Split(strings.TrimPrefix(row, "#"), "\t")
			}
			continue
		}

		b, derr := parseRegion(strings.Split(row, "\t"), path, line)
		if derr != nil {
			return nil, nil, derr
		}
		bases = append(bases, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read base regions %s", path)
	}

	if header == nil {
		header = defaultHeader(bases)
	}

	return header, bases, nil
}

// ReadReference reads a reference collection's intervals from its BED-like
// file, labelling each the way the config says: with the collection's
// SOURCE or with the value of the interval's name column
func ReadReference(c Config) (refs []RefInterval, err error) {
	in, err := xopen.Ropen(c.File)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open reference file %s", c.File)
	}
	defer in.Close()

	nameCol := c.nameColumn()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimRight(scanner.Text(), "\r")
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		fields := strings.Split(row, "\t")
		b, derr := parseRegion(fields, c.File, line)
		if derr != nil {
			return nil, derr
		}

		label := c.Source
		if c.By == ByName {
			if nameCol >= len(fields) {
				return nil, &ConfigError{
					File:   c.table,
					Row:    c.row,
					Reason: fmt.Sprintf("NAME.COL %d is out of range for the %d columns of %s (line %d)", nameCol, len(fields), c.File, line),
				}
			}
			label = fields[nameCol]
		}

		refs = append(refs, RefInterval{Chrom: b.Chrom, Start: b.Start, End: b.End, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read reference file %s", c.File)
	}

	return refs, nil
}

// parseRegion parses one tab separated chrom/start/end row. Columns after
// the third are kept as the region's extras
func parseRegion(fields []string, path string, line int) (Region, error) {
	if len(fields) < 3 {
		return Region{}, &DataError{
			File:   path,
			Line:   line,
			Reason: fmt.Sprintf("%d columns, expected at least chrom, start and end", len(fields)),
		}
	}

	start, end, reason := parseSpan(fields[1], fields[2])
	if reason != "" {
		return Region{}, &DataError{File: path, Line: line, Reason: reason}
	}

	return Region{Chrom: fields[0], Start: start, End: end, Extras: fields[3:]}, nil
}

// parseSpan parses and checks a half open [start, end) coordinate pair
func parseSpan(startField, endField string) (start, end int, reason string) {
	var err error
	if start, err = strconv.Atoi(startField); err != nil {
		return 0, 0, fmt.Sprintf("start %q is not an integer", startField)
	}
	if end, err = strconv.Atoi(endField); err != nil {
		return 0, 0, fmt.Sprintf("end %q is not an integer", endField)
	}
	if start < 0 {
		return 0, 0, fmt.Sprintf("start %d is negative", start)
	}
	if end <= start {
		return 0, 0, fmt.Sprintf("end %d is not greater than start %d", end, start)
	}

	return start, end, ""
}

// defaultHeader synthesizes a header for base files without one: CHROM,
// START, END and COL4..COLn covering the extras of the first region
func defaultHeader(bases []Region) []string {
	header := []string{"CHROM", "START", "END"}
	if len(bases) == 0 {
		return header
	}

	for i := range bases[0].Extras {
		header = append(header, fmt.Sprintf("COL%d", i+4))
	}
	return header
}
