//go:build !unix && !windows

package platform

import "runtime"

// hostMachine falls back to GOARCH where uname is unavailable. Detect rejects
// these operating systems anyway.
func hostMachine() (string, error) {
	return runtime.GOARCH, nil
}
