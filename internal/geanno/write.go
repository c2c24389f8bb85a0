package geanno

import (
	"fmt"
	"io"
	"strings"

	"github.com/brentp/xopen"
	"github.com/pkg/errors"
)

// WriteTable writes the annotated table as TSV: the header line, then one
// line per base region in input order
func WriteTable(w io.Writer, header []string, t *Table) error {
	if _, err := fmt.Fprintln(w, strings.Join(t.Header(header), "\t")); err != nil {
		return errors.Wrap(err, "failed to write the header")
	}

	for i := 0; i < t.Len(); i++ {
		if _, err := fmt.Fprintln(w, strings.Join(t.Row(i), "\t")); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i+1)
		}
	}

	return nil
}

// WriteTableFile writes the annotated table to path, "-" for stdout. A
// path ending in ".gz" is gzipped on the way out
func WriteTableFile(path string, header []string, t *Table) error {
	out, err := xopen.Wopen(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create the output file %s", path)
	}

	if err := WriteTable(out, header, t); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
