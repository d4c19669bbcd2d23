package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI argument handling.
var (
	ErrInvalidFlags = errors.New("invalid flags")
	ErrTooManyArgs  = errors.New("usage: md2tex [directory] [out-file]")
)

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	config   string
	manifest string
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses args (including the program name) and returns the flags
// and the remaining positional arguments: an optional book directory and an
// optional output file path.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2tex", flag.ContinueOnError)
	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVar(&f.manifest, "manifest", "", "manifest document name (default SUMMARY.md)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress detail")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	pos := fs.Args()
	if len(pos) > 2 {
		return nil, nil, ErrTooManyArgs
	}
	return f, pos, nil
}
