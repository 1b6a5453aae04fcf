// Package platform identifies the host a voice engine is about to run on.
//
// An Identity pairs the operating system with a machine variant. On Darwin
// and Windows the variant is the raw machine name reported by the OS. On
// Linux anything other than x86_64 is refined from /proc/cpuinfo into the
// single-board-computer family the prebuilt libraries were compiled for
// (see Rule). Identities are plain values: Detect builds one for the host,
// NewIdentity builds one for any platform, and resolvers take it as an
// argument rather than consulting global state.
package platform

import (
	"fmt"
	"slices"
	"strings"
)

// OS is an operating system name as the engines' install tree spells it.
type OS string

// Supported operating systems.
const (
	Darwin  OS = "Darwin"
	Linux   OS = "Linux"
	Windows OS = "Windows"
)

// SupportedOSes lists the operating systems prebuilt libraries exist for.
var SupportedOSes = []OS{Darwin, Linux, Windows}

// Machine variants recognized on Linux.
const (
	MachineX86_64     = "x86_64"
	MachineARM11      = "arm11"
	MachineCortexA7   = "cortex-a7"
	MachineCortexA53  = "cortex-a53"
	MachineBeagleBone = "beaglebone"
)

// RaspberryPiMachines lists the Linux variants served by the Raspberry Pi builds.
var RaspberryPiMachines = []string{MachineARM11, MachineCortexA7, MachineCortexA53}

// Class groups identities that share a library build family. The value
// doubles as the per-platform directory name used for context and keyword
// files.
type Class string

// Known classes.
const (
	ClassMac         Class = "mac"
	ClassLinux       Class = "linux"
	ClassRaspberryPi Class = "raspberrypi"
	ClassBeagleBone  Class = "beaglebone"
	ClassWindows     Class = "windows"
)

// ParseOS converts an OS name into an OS. Both GOOS spelling ("linux") and
// display spelling ("Linux") are accepted.
func ParseOS(name string) (OS, error) {
	for _, os := range SupportedOSes {
		if strings.EqualFold(string(os), name) {
			return os, nil
		}
	}
	return "", &UnsupportedPlatformError{OS: name}
}

// supportedOSList renders SupportedOSes for messages, e.g. "Darwin, Linux and Windows".
func supportedOSList() string {
	names := make([]string, len(SupportedOSes))
	for i, os := range SupportedOSes {
		names[i] = string(os)
	}
	last := len(names) - 1
	if last < 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:last], ", ") + " and " + names[last]
}

// Identity is the (OS, machine variant) pair that selects a library build.
type Identity struct {
	os      OS
	machine string
}

// NewIdentity creates an Identity without inspecting the host. It performs
// no validation; use Class to check that the pair is supported.
func NewIdentity(os OS, machine string) Identity {
	return Identity{os: os, machine: machine}
}

// OS returns the operating system.
func (i Identity) OS() OS {
	return i.os
}

// Machine returns the machine variant, e.g. "x86_64" or "cortex-a53".
func (i Identity) Machine() string {
	return i.machine
}

// IsRaspberryPi reports whether the identity is a Linux Raspberry Pi variant.
func (i Identity) IsRaspberryPi() bool {
	return i.os == Linux && slices.Contains(RaspberryPiMachines, i.machine)
}

// Class returns the library build family for the identity.
// Returns UnsupportedPlatformError for OS or Linux variants without a build.
func (i Identity) Class() (Class, error) {
	switch i.os {
	case Darwin:
		return ClassMac, nil
	case Windows:
		return ClassWindows, nil
	case Linux:
		switch {
		case i.machine == MachineX86_64:
			return ClassLinux, nil
		case i.IsRaspberryPi():
			return ClassRaspberryPi, nil
		case i.machine == MachineBeagleBone:
			return ClassBeagleBone, nil
		}
	}
	return "", &UnsupportedPlatformError{OS: string(i.os), Machine: i.machine}
}

// String returns "OS/machine", e.g. "Linux/cortex-a7".
func (i Identity) String() string {
	return fmt.Sprintf("%s/%s", i.os, i.machine)
}
