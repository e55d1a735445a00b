package cli

import (
	"errors"

	"github.com/yaklabco/gocss/pkg/cssparse"
)

// Exit codes for gocss, following sysexits where applicable.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseError indicates the input CSS failed to parse.
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

// Sentinel errors the commands wrap their failures with so run can map
// them to exit codes.
var (
	// ErrUsage marks command-line usage errors.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration errors.
	ErrConfig = errors.New("configuration error")

	// ErrIO marks file system and stream errors.
	ErrIO = errors.New("io error")
)

// ExitCodeFor maps an error returned by Execute to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var parseErr *cssparse.ParseError
	switch {
	case errors.As(err, &parseErr):
		return ExitParseError
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
