// internal/output/writer_test.go
package output

import (
	"bytes"
	"errors"
	"testing"

	"fget/internal/fasta"
)

var rec = fasta.Record{Label: "seq1 sample", Lines: []string{"ACGT", "NNNN"}}

func TestWriteWithHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, true).Write(rec); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ">seq1 sample\nACGT\nNNNN\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteWithoutHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, false).Write(rec); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "ACGT\nNNNN\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteErrorPropagates(t *testing.T) {
	boom := errors.New("sink closed")
	if err := NewWriter(failWriter{err: boom}, true).Write(rec); !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
