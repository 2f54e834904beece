package main

import (
	"errors"

	"github.com/mkrylov/go-mdpress/internal/config"
	"github.com/mkrylov/go-mdpress/internal/dateutil"
)

// Exit codes for the mdpress CLI.
// 0=success, 1=runtime failure (missing input, fonts, write), 2=usage.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

// exitCodeFor returns the exit code for an error. It uses errors.Is, so
// callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage, config, and validation errors (exit 2).
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) {
		return ExitUsage
	}

	// Everything else, including a missing input file and font failures,
	// exits 1.
	return ExitGeneral
}
