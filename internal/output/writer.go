// internal/output/writer.go
package output

import (
	"fmt"
	"io"

	"fget/internal/fasta"
)

// Writer emits selected FASTA records. With headers enabled each record
// starts with its '>' marker line; content lines are written verbatim,
// one per line.
type Writer struct {
	w       io.Writer
	headers bool
}

func NewWriter(w io.Writer, headers bool) *Writer {
	return &Writer{w: w, headers: headers}
}

func (fw *Writer) Write(rec fasta.Record) error {
	if fw.headers {
		if _, err := fmt.Fprintf(fw.w, ">%s\n", rec.Label); err != nil {
			return err
		}
	}
	for _, line := range rec.Lines {
		if _, err := fmt.Fprintln(fw.w, line); err != nil {
			return err
		}
	}
	return nil
}
