// Package config resolves pvlocate's directories and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsukumogami/pvlocate/internal/platform"
)

const (
	// EnvHome overrides the directory holding pvlocate's own config file
	EnvHome = "PVLOCATE_HOME"

	// EnvRoot overrides the engines' install root
	EnvRoot = "PVLOCATE_ROOT"

	// EnvCPUInfo overrides the CPU descriptor read on Linux
	EnvCPUInfo = "PVLOCATE_CPUINFO"

	// EnvLayout points at a TOML file replacing the built-in install layout
	EnvLayout = "PVLOCATE_LAYOUT"

	// EnvOS forces the operating system instead of detecting it
	EnvOS = "PVLOCATE_OS"

	// EnvMachine forces the machine variant instead of detecting it
	EnvMachine = "PVLOCATE_MACHINE"
)

// Config holds pvlocate configuration
type Config struct {
	HomeDir     string // $PVLOCATE_HOME, default ~/.pvlocate
	ConfigFile  string // $PVLOCATE_HOME/config.toml
	InstallRoot string // $PVLOCATE_ROOT, default: directory holding the executable
	CPUInfoPath string // $PVLOCATE_CPUINFO, default /proc/cpuinfo
	LayoutFile  string // $PVLOCATE_LAYOUT, empty for the built-in layout
	OS          string // $PVLOCATE_OS, empty to detect
	Machine     string // $PVLOCATE_MACHINE, empty to detect
}

// DefaultConfig returns the configuration derived from the environment.
func DefaultConfig() (*Config, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		home = filepath.Join(userHome, ".pvlocate")
	}

	root := os.Getenv(EnvRoot)
	if root == "" {
		var err error
		root, err = executableDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine install root: %w", err)
		}
	}

	cpuInfo := os.Getenv(EnvCPUInfo)
	if cpuInfo == "" {
		cpuInfo = platform.DefaultCPUInfoPath
	}

	return &Config{
		HomeDir:     home,
		ConfigFile:  filepath.Join(home, "config.toml"),
		InstallRoot: root,
		CPUInfoPath: cpuInfo,
		LayoutFile:  os.Getenv(EnvLayout),
		OS:          GetOSOverride(),
		Machine:     os.Getenv(EnvMachine),
	}, nil
}

// GetOSOverride returns the operating system forced through PVLOCATE_OS.
// If not set or not a supported OS, returns empty string so the host is detected.
func GetOSOverride() string {
	envValue := os.Getenv(EnvOS)
	if envValue == "" {
		return ""
	}

	if _, err := platform.ParseOS(envValue); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, detecting the host instead\n",
			EnvOS, envValue)
		return ""
	}

	return envValue
}

// EnsureDirectories creates the config home directory
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.HomeDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.HomeDir, err)
	}
	return nil
}

// executableDir returns the directory of the running binary, following symlinks
// so an installed link in a bin directory still points at the real tree.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
