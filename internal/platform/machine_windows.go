//go:build windows

package platform

import (
	"os"
	"runtime"
)

// goarchToWindowsMachine mirrors PROCESSOR_ARCHITECTURE spellings.
var goarchToWindowsMachine = map[string]string{
	"amd64": "AMD64",
	"386":   "x86",
	"arm64": "ARM64",
	"arm":   "ARM",
}

// hostMachine returns the native processor architecture. A 32-bit process
// on a 64-bit host sees PROCESSOR_ARCHITEW6432, which names the host.
func hostMachine() (string, error) {
	if arch := os.Getenv("PROCESSOR_ARCHITEW6432"); arch != "" {
		return arch, nil
	}
	if arch := os.Getenv("PROCESSOR_ARCHITECTURE"); arch != "" {
		return arch, nil
	}
	if arch, ok := goarchToWindowsMachine[runtime.GOARCH]; ok {
		return arch, nil
	}
	return runtime.GOARCH, nil
}
