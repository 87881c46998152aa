// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one FASTA block: the header label plus its content lines.
// Lines carry no terminators and appear in input order.
type Record struct {
	Label string
	Lines []string
}

// Reader streams FASTA records from r one block at a time. The input is
// read exactly once; a caller that stops pulling leaves the remainder of
// the stream unread (see Drain).
type Reader struct {
	br      *bufio.Reader
	next    string // label of the block whose header was already consumed
	started bool
	sawEOF  bool
	err     error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next record, or io.EOF when the stream is exhausted.
// Content before the first header line is ignored.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	for !r.started {
		line, err := r.readLine()
		if err != nil {
			r.err = err
			return Record{}, err
		}
		if strings.HasPrefix(line, ">") {
			r.next = strings.TrimSpace(line[1:])
			r.started = true
		}
	}

	rec := Record{Label: r.next}
	for {
		line, err := r.readLine()
		if err == io.EOF {
			r.err = io.EOF
			return rec, nil
		}
		if err != nil {
			r.err = err
			return Record{}, err
		}
		if strings.HasPrefix(line, ">") {
			r.next = strings.TrimSpace(line[1:])
			return rec, nil
		}
		if line == "" {
			continue
		}
		rec.Lines = append(rec.Lines, line)
	}
}

// Drain consumes the rest of the input until EOF. Used to keep an
// upstream writer from taking SIGPIPE after an early stop.
func (r *Reader) Drain() error {
	if _, err := io.Copy(io.Discard, r.br); err != nil {
		return fmt.Errorf("drain input: %w", err)
	}
	return nil
}

func (r *Reader) readLine() (string, error) {
	if r.sawEOF {
		return "", io.EOF
	}
	line, err := r.br.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", fmt.Errorf("read input: %w", err)
		}
		r.sawEOF = true
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
