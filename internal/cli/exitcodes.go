package cli

import (
	"errors"

	"github.com/yaklabco/goemmet/pkg/fsutil"
	"github.com/yaklabco/goemmet/pkg/scanner"
)

// Exit codes for goemmet.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseError indicates the abbreviation could not be parsed.
	ExitParseError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrConfigLoad wraps configuration loading failures for exit code mapping.
var ErrConfigLoad = errors.New("configuration error")

// ExitCodeFromError maps an error returned by a command to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var scanErr *scanner.Error
	switch {
	case errors.As(err, &scanErr):
		return ExitParseError
	case errors.Is(err, ErrConfigLoad):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
