//go:build unix

package platform

import "golang.org/x/sys/unix"

// hostMachine returns the uname(2) machine field, e.g. "x86_64" or "armv7l".
func hostMachine() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Machine[:]), nil
}
