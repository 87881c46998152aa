// internal/search/search.go
package search

import (
	"context"
	"io"

	"fget/internal/fasta"
	"fget/internal/match"
)

// Source yields records one at a time in stream order; Next returns
// io.EOF once the stream is exhausted. There is no rewind: record
// positions are defined by this single pass.
type Source interface {
	Next() (fasta.Record, error)
}

// Sink consumes selected records.
type Sink interface {
	Write(rec fasta.Record) error
}

// Strategy scans a record source once, writes the selected records and
// reports whether every requested target was found.
type Strategy interface {
	Scan(ctx context.Context, src Source) (bool, error)
}

// SingleLabel looks for records matching one target. With reuse the
// whole stream is scanned and every match is written; without it the
// scan stops at the first match (an exact label is expected once).
type SingleLabel struct {
	match match.Matcher
	reuse bool
	out   Sink
}

func NewSingleLabel(m match.Matcher, reuse bool, out Sink) *SingleLabel {
	return &SingleLabel{match: m, reuse: reuse, out: out}
}

func (s *SingleLabel) Scan(ctx context.Context, src Source) (bool, error) {
	found := false
	for {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		rec, err := src.Next()
		if err == io.EOF {
			return found, nil
		}
		if err != nil {
			return found, err
		}
		if !s.match.Matches(rec.Label) {
			continue
		}
		if err := s.out.Write(rec); err != nil {
			return found, err
		}
		found = true
		if !s.reuse {
			return true, nil
		}
	}
}

// MultiLabel looks for records matching any of an ordered target
// collection. Each record is claimed by the first matching target.
// Without reuse a matched target is consumed, so duplicate labels in
// the input are selected once per requested target and the scan stops
// early when no target is left; with reuse every target stays active
// for the whole stream.
type MultiLabel struct {
	matches []match.Matcher
	reuse   bool
	out     Sink
}

func NewMultiLabel(ms []match.Matcher, reuse bool, out Sink) *MultiLabel {
	return &MultiLabel{matches: ms, reuse: reuse, out: out}
}

func (s *MultiLabel) Scan(ctx context.Context, src Source) (bool, error) {
	found := make([]bool, len(s.matches))
	live := len(s.matches)
	for live > 0 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
		for i, m := range s.matches {
			if !s.reuse && found[i] {
				continue // target already consumed
			}
			if !m.Matches(rec.Label) {
				continue
			}
			if err := s.out.Write(rec); err != nil {
				return false, err
			}
			if !found[i] {
				found[i] = true
				if !s.reuse {
					live--
				}
			}
			break
		}
	}
	for _, ok := range found {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Index selects the single record at a zero-based stream position and
// stops pulling right after writing it.
type Index struct {
	pos int
	out Sink
}

func NewIndex(pos int, out Sink) *Index {
	return &Index{pos: pos, out: out}
}

func (s *Index) Scan(ctx context.Context, src Source) (bool, error) {
	for pos := 0; ; pos++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		rec, err := src.Next()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if pos == s.pos {
			if err := s.out.Write(rec); err != nil {
				return false, err
			}
			return true, nil
		}
	}
}

// Range selects records with start <= position < stop. Start is
// inclusive, stop exclusive; StopNone leaves the range open to the end
// of the stream. Pulling stops as soon as stop is reached, leaving the
// remaining input unread.
type Range struct {
	start int
	stop  int
	out   Sink
}

// StopNone marks a range without an upper bound.
const StopNone = -1

func NewRange(start, stop int, out Sink) *Range {
	return &Range{start: start, stop: stop, out: out}
}

func (s *Range) Scan(ctx context.Context, src Source) (bool, error) {
	pos := -1
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		rec, err := src.Next()
		if err == io.EOF {
			// Exhausted before the range began, or inside a bounded
			// range: the requested window was not fully available.
			if pos < s.start {
				return false, nil
			}
			if s.stop != StopNone && pos < s.stop-1 {
				return false, nil
			}
			return true, nil
		}
		if err != nil {
			return false, err
		}
		pos++
		if s.stop != StopNone && pos >= s.stop {
			return true, nil
		}
		if pos >= s.start {
			if err := s.out.Write(rec); err != nil {
				return false, err
			}
		}
	}
}
