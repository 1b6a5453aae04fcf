package platform

import (
	"fmt"
	"os"
	"strings"
)

// DefaultCPUInfoPath is where Linux exposes the CPU descriptor.
const DefaultCPUInfoPath = "/proc/cpuinfo"

// CPUInfoSource supplies the raw text of a CPU descriptor.
type CPUInfoSource interface {
	ReadCPUInfo() (string, error)
}

// CPUInfoFile reads the descriptor from a file path.
type CPUInfoFile string

// ReadCPUInfo returns the file contents.
func (f CPUInfoFile) ReadCPUInfo() (string, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return "", fmt.Errorf("failed to read cpu info: %w", err)
	}
	return string(data), nil
}

// CPUInfoFunc adapts a function to CPUInfoSource.
type CPUInfoFunc func() (string, error)

// ReadCPUInfo calls f.
func (f CPUInfoFunc) ReadCPUInfo() (string, error) {
	return f()
}

// CPUInfo holds the two descriptor lines used for classification.
type CPUInfo struct {
	Hardware  string // first line containing "Hardware", empty if none
	ModelName string // first line containing "model name", empty if none
	Raw       string
}

// ParseCPUInfo extracts the first "Hardware" and "model name" lines from
// /proc/cpuinfo text. Lines are kept whole (key, separator and value) since
// classification only performs substring tests on them.
func ParseCPUInfo(text string) CPUInfo {
	info := CPUInfo{Raw: text}

	// Lines such as Features have no length bound.
	for line := range strings.SplitSeq(text, "\n") {
		if info.Hardware == "" && strings.Contains(line, "Hardware") {
			info.Hardware = line
		}
		if info.ModelName == "" && strings.Contains(line, "model name") {
			info.ModelName = line
		}
		if info.Hardware != "" && info.ModelName != "" {
			break
		}
	}

	return info
}
