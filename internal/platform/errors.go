package platform

import "fmt"

// UnsupportedPlatformError reports an operating system, or a Linux machine
// variant, for which no prebuilt libraries exist.
type UnsupportedPlatformError struct {
	OS      string
	Machine string // empty when the OS itself is unsupported
}

func (e *UnsupportedPlatformError) Error() string {
	if e.Machine == "" {
		return fmt.Sprintf("unsupported system %q", e.OS)
	}
	return fmt.Sprintf("unsupported platform %s/%s", e.OS, e.Machine)
}

// Suggestion returns a hint for the user.
func (e *UnsupportedPlatformError) Suggestion() string {
	if e.Machine == "" {
		return "Prebuilt libraries are only shipped for " + supportedOSList()
	}
	return "Linux builds exist for x86_64, Raspberry Pi (arm11, cortex-a7, cortex-a53) and BeagleBone"
}

// UnsupportedCPUError reports a Linux CPU that matched no classification rule.
// CPUInfo carries the full text that was inspected.
type UnsupportedCPUError struct {
	Hardware string
	Model    string
	CPUInfo  string
}

func (e *UnsupportedCPUError) Error() string {
	if e.CPUInfo == "" {
		return fmt.Sprintf("unsupported CPU (hardware %q, model %q)", e.Hardware, e.Model)
	}
	return "unsupported CPU:\n" + e.CPUInfo
}

// Suggestion returns a hint for the user.
func (e *UnsupportedCPUError) Suggestion() string {
	return "Pass --machine to select a build explicitly, or set PVLOCATE_CPUINFO to a cpuinfo dump from a supported board"
}
