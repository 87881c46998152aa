// internal/cli/spec.go
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// SpecKind discriminates the parsed selection argument.
type SpecKind int

const (
	SpecLabel SpecKind = iota
	SpecIndex
	SpecRange
)

// StopNone marks a range without an upper bound.
const StopNone = -1

// Spec is the parsed positional selection argument.
type Spec struct {
	Kind  SpecKind
	Label string
	Index int
	Start int // inclusive
	Stop  int // exclusive, StopNone for open
}

// IsPositional reports whether the argument uses the '@' index/range
// grammar rather than a label.
func IsPositional(arg string) bool {
	return strings.HasPrefix(arg, "@")
}

// ParseSpec parses the positional argument. Malformed or negative
// bounds and stop <= start are configuration errors.
func ParseSpec(arg string) (Spec, error) {
	if !IsPositional(arg) {
		return Spec{Kind: SpecLabel, Label: arg}, nil
	}
	body := arg[1:]

	colon := strings.IndexByte(body, ':')
	if colon < 0 {
		idx, err := strconv.Atoi(body)
		if err != nil || idx < 0 {
			return Spec{}, fmt.Errorf("invalid index %q", body)
		}
		return Spec{Kind: SpecIndex, Index: idx}, nil
	}

	spec := Spec{Kind: SpecRange, Start: 0, Stop: StopNone}
	if s := body[:colon]; s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return Spec{}, fmt.Errorf("invalid start index %q", s)
		}
		spec.Start = v
	}
	if s := body[colon+1:]; s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return Spec{}, fmt.Errorf("invalid stop index %q", s)
		}
		if v <= spec.Start {
			return Spec{}, fmt.Errorf("stop index %d must be greater than start index %d", v, spec.Start)
		}
		spec.Stop = v
	}
	return spec, nil
}
