// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"fget/internal/cli"
	"fget/internal/fasta"
	"fget/internal/match"
	"fget/internal/output"
	"fget/internal/search"
	"fget/internal/version"
)

// Exit codes: 0 ok (broken pipe downstream included), 1 requested
// records missing, 2 configuration error, 3 I/O error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fget")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(fs, "fget", outw)
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "fget version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !output.IsBrokenPipe(e) {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	w := output.NewWriter(outw, !opts.NoHeaders)
	strategy, err := buildStrategy(opts, w)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	in, err := fasta.Open(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()

	src := fasta.NewReader(in)
	found, err := strategy.Scan(parent, src)
	if err != nil {
		_ = outw.Flush()
		switch {
		case errors.Is(err, context.Canceled):
			return 130
		case output.IsBrokenPipe(err):
			return 0
		default:
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if opts.ReadAll {
		if err := src.Drain(); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if !found && !opts.IgnoreMissing {
		fmt.Fprintln(stderr, "error: some requested FASTA records are missing")
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// buildStrategy turns the parsed options into one search strategy,
// compiling matchers and loading any label file up front so every
// configuration error surfaces before scanning starts.
func buildStrategy(opts cli.Options, w *output.Writer) (search.Strategy, error) {
	spec, err := cli.ParseSpec(opts.Spec)
	if err != nil {
		return nil, err
	}

	switch spec.Kind {
	case cli.SpecIndex:
		return search.NewIndex(spec.Index, w), nil
	case cli.SpecRange:
		return search.NewRange(spec.Start, spec.Stop, w), nil
	}

	reuse := opts.Regexp || opts.WordRegexp
	if opts.FromFile {
		labels, err := cli.LoadLabels(spec.Label)
		if err != nil {
			return nil, err
		}
		matchers := make([]match.Matcher, 0, len(labels))
		for _, l := range labels {
			m, err := newMatcher(opts, l)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, m)
		}
		return search.NewMultiLabel(matchers, reuse, w), nil
	}

	m, err := newMatcher(opts, spec.Label)
	if err != nil {
		return nil, err
	}
	return search.NewSingleLabel(m, reuse, w), nil
}

func newMatcher(opts cli.Options, target string) (match.Matcher, error) {
	var m match.Matcher
	switch {
	case opts.Regexp:
		rx, err := match.NewRegex(target)
		if err != nil {
			return nil, err
		}
		m = rx
	case opts.WordRegexp:
		rx, err := match.NewWordRegex(target)
		if err != nil {
			return nil, err
		}
		m = rx
	default:
		m = match.NewExact(target)
	}
	if opts.IDOnly {
		m = match.NewIDOnly(m)
	}
	return m, nil
}
