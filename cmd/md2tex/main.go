package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrCreateOutput marks failures to create the output file.
var ErrCreateOutput = errors.New("failed to create output file")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// bookSettings are the resolved conversion parameters: defaults, overridden
// by config file values, overridden by CLI arguments.
type bookSettings struct {
	dir      string
	outFile  string
	manifest string
}

func defaultSettings() bookSettings {
	return bookSettings{
		dir:      "src",
		outFile:  "book.tex",
		manifest: md2tex.DefaultManifestName,
	}
}

// run parses arguments, resolves settings, and drives the conversion.
func run(args []string, stdout, stderr io.Writer) error {
	flags, pos, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "md2tex %s\n", Version)
		return nil
	}

	settings, err := resolveSettings(flags, pos)
	if err != nil {
		return err
	}

	if flags.verbose && !flags.quiet {
		fmt.Fprintf(stderr, "Converting %s (manifest %s) to %s\n",
			settings.dir, settings.manifest, settings.outFile)
	}

	out, err := os.Create(settings.outFile)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCreateOutput, settings.outFile, err)
	}

	svc := md2tex.New(md2tex.WithManifestName(settings.manifest))
	if err := svc.Convert(out, settings.dir); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", md2tex.ErrWriteOutput, settings.outFile, err)
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", settings.outFile)
	}
	return nil
}

// resolveSettings layers the config file and CLI arguments over defaults.
// An explicit --config must exist; the default config file is optional.
func resolveSettings(flags *cliFlags, pos []string) (bookSettings, error) {
	settings := defaultSettings()

	configPath := flags.config
	if configPath == "" {
		if path, ok := config.Discover("."); ok {
			configPath = path
		}
	}
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return settings, err
		}
		if cfg.Input.Dir != "" {
			settings.dir = cfg.Input.Dir
		}
		if cfg.Input.Manifest != "" {
			settings.manifest = cfg.Input.Manifest
		}
		if cfg.Output.File != "" {
			settings.outFile = cfg.Output.File
		}
	}

	if len(pos) > 0 {
		settings.dir = pos[0]
	}
	if len(pos) > 1 {
		settings.outFile = pos[1]
	}
	if flags.manifest != "" {
		settings.manifest = flags.manifest
	}
	return settings, nil
}
