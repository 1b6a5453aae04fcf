package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/tsukumogami/pvlocate/internal/platform"
	"github.com/tsukumogami/pvlocate/internal/resource"
)

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitUnsupportedPlatform indicates no library build exists for the OS or machine
	ExitUnsupportedPlatform = 3

	// ExitUnsupportedCPU indicates the Linux CPU could not be classified
	ExitUnsupportedCPU = 4

	// ExitMissingResource indicates a named context or keyword was not found
	ExitMissingResource = 5

	// ExitInstallTree indicates the install tree is missing, unreadable or ambiguous
	ExitInstallTree = 6

	// ExitDoctorFailed indicates doctor found missing files
	ExitDoctorFailed = 7
)

// usageError marks errors caused by how pvlocate was invoked.
type usageError struct {
	error
}

func (e usageError) Unwrap() error { return e.error }

// errDoctorFailed is returned by doctor after reporting failed checks.
var errDoctorFailed = errors.New("install tree check failed")

// exitCodeFor maps an error to the exit code scripts can branch on.
func exitCodeFor(err error) int {
	var (
		usage   usageError
		platErr *platform.UnsupportedPlatformError
		cpuErr  *platform.UnsupportedCPUError
		missing *resource.MissingResourceError
		dup     *resource.DuplicateResourceError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, errDoctorFailed):
		return ExitDoctorFailed
	case errors.As(err, &platErr):
		return ExitUnsupportedPlatform
	case errors.As(err, &cpuErr):
		return ExitUnsupportedCPU
	case errors.As(err, &missing):
		return ExitMissingResource
	case errors.As(err, &dup), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitInstallTree
	default:
		return ExitGeneral
	}
}

// exitWithCode exits with the specified exit code
func exitWithCode(code int) {
	os.Exit(code)
}
