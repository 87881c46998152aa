// internal/match/match.go
package match

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher decides whether a record label is a requested target.
// Implementations are immutable and reusable across a whole scan.
type Matcher interface {
	Matches(label string) bool
}

// Exact matches a label byte-for-byte.
type Exact struct {
	text string
}

func NewExact(text string) Exact { return Exact{text: text} }

func (m Exact) Matches(label string) bool { return m.text == label }

// Regex matches when the pattern is found anywhere in the label.
type Regex struct {
	rx *regexp.Regexp
}

func NewRegex(pattern string) (Regex, error) {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return Regex{}, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return Regex{rx: rx}, nil
}

func (m Regex) Matches(label string) bool { return m.rx.MatchString(label) }

// NewWordRegex builds a Regex anchored to word boundaries, so that
// `cat` matches "the cat sat" but not "category".
func NewWordRegex(pattern string) (Regex, error) {
	return NewRegex(`(^|\W)` + pattern + `(\W|$)`)
}

// IDOnly truncates the label at the first space or tab before
// delegating, so matching sees the sequence ID without the free-text
// description. Matching only; output keeps the full header.
type IDOnly struct {
	m Matcher
}

func NewIDOnly(m Matcher) IDOnly { return IDOnly{m: m} }

func (a IDOnly) Matches(label string) bool {
	if i := strings.IndexAny(label, " \t"); i >= 0 {
		label = label[:i]
	}
	return a.m.Matches(label)
}
