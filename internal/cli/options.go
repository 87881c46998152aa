// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"fget/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Spec  string // positional selection argument
	Input string // FASTA path, "-" for stdin

	IDOnly     bool
	Regexp     bool
	WordRegexp bool
	FromFile   bool

	NoHeaders     bool
	IgnoreMissing bool
	ReadAll       bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	// Callers print help explicitly via Usage; keep parse errors quiet.
	fs.Usage = func() {}
	return fs
}

// Usage writes the full help text to w.
func Usage(fs *flag.FlagSet, name string, w io.Writer) {
	fmt.Fprintf(w,
		`%s: extract FASTA records by label, regular expression or position

Version: %s

Usage:
  %s [OPTIONS] SPEC [FILE]

SPEC selects the records to extract:
  LABEL        record with the given label (see -i, -r and -w)
  @IDX         record at zero-based index IDX
  @START:STOP  records with START <= index < STOP; either bound may be
               omitted (START defaults to 0, STOP to the end of input)
  PATH         with -f, a file of labels, one per line

FILE is a FASTA file; use '-' or omit it to read stdin. A '.gz' suffix
enables transparent decompression.

Options:
%s`, name, version.Version, name, fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Option conflicts are reported here, before any input is opened.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVarP(&opt.IDOnly, "id-only", "i", false, "match the label only up to the first space or tab")
	fs.BoolVarP(&opt.Regexp, "regexp", "r", false, "match labels against a regular expression")
	fs.BoolVarP(&opt.WordRegexp, "word-regexp", "w", false, "scan labels for a word matching the given regular expression")
	fs.BoolVarP(&opt.FromFile, "from-file", "f", false, "read labels from the file named by SPEC, one per line")
	fs.BoolVarP(&opt.NoHeaders, "no-headers", "n", false, "do not print record headers")
	fs.BoolVarP(&opt.IgnoreMissing, "ignore-missing", "m", false, "do not signal an error when requested records are missing")
	fs.BoolVarP(&opt.ReadAll, "read-all-input", "p", false, "after extracting, keep reading stdin to EOF to avoid upstream SIGPIPE")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	args := fs.Args()
	switch len(args) {
	case 1:
		opt.Spec, opt.Input = args[0], "-"
	case 2:
		opt.Spec, opt.Input = args[0], args[1]
	default:
		return opt, errors.New("expected SPEC and an optional FASTA file")
	}

	// Validation
	if opt.Regexp && opt.WordRegexp {
		return opt, errors.New("--regexp and --word-regexp cannot be used together")
	}
	if IsPositional(opt.Spec) {
		if opt.Regexp || opt.WordRegexp {
			return opt, errors.New("--regexp and --word-regexp cannot be used with indexes")
		}
		if opt.FromFile {
			return opt, errors.New("--from-file cannot be used with indexes")
		}
	}
	return opt, nil
}
