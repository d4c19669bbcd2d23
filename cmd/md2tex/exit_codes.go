package main

import (
	"errors"
	"os"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
)

// Exit codes for the md2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error (build or render failure)
	ExitUsage   = 2 // Invalid flags, config, or manifest shape
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err) when adding context.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2tex.ErrReadDocument) ||
		errors.Is(err, md2tex.ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutput) {
		return ExitIO
	}

	// Usage, config and manifest-shape errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, md2tex.ErrManifestElement) ||
		errors.Is(err, md2tex.ErrManifestParagraph) ||
		errors.Is(err, md2tex.ErrNavigationListItem) ||
		errors.Is(err, md2tex.ErrSublistWithoutEntry) {
		return ExitUsage
	}

	return ExitGeneral
}
