package platform

import (
	"fmt"
	"runtime"

	"github.com/tsukumogami/pvlocate/internal/log"
)

// Detector gathers the inputs Detect needs. The zero value is not usable;
// construct it through Detect's options.
type Detector struct {
	goos    string
	machine string
	cpuInfo CPUInfoSource
	rules   []Rule
	logger  log.Logger
}

// Option configures detection.
type Option func(*Detector)

// WithGOOS overrides the operating system name (runtime.GOOS by default).
func WithGOOS(goos string) Option {
	return func(d *Detector) {
		d.goos = goos
	}
}

// WithMachine overrides the raw machine name normally read from the host.
func WithMachine(machine string) Option {
	return func(d *Detector) {
		d.machine = machine
	}
}

// WithCPUInfo sets the CPU descriptor source used on Linux.
func WithCPUInfo(src CPUInfoSource) Option {
	return func(d *Detector) {
		d.cpuInfo = src
	}
}

// WithCPUInfoPath reads the CPU descriptor from path instead of /proc/cpuinfo.
func WithCPUInfoPath(path string) Option {
	return func(d *Detector) {
		d.cpuInfo = CPUInfoFile(path)
	}
}

// WithRules replaces the Linux classification table.
func WithRules(rules []Rule) Option {
	return func(d *Detector) {
		d.rules = rules
	}
}

// WithLogger sets a logger for detection diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

func newDetector(opts ...Option) *Detector {
	d := &Detector{
		goos:    runtime.GOOS,
		cpuInfo: CPUInfoFile(DefaultCPUInfoPath),
		rules:   DefaultRules,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = log.Component(d.logger, "platform")
	return d
}

// Detect returns the Identity of the host.
//
// Fails with UnsupportedPlatformError when the OS has no prebuilt libraries
// and with UnsupportedCPUError when a non-x86_64 Linux CPU cannot be
// classified.
func Detect(opts ...Option) (Identity, error) {
	d := newDetector(opts...)

	os, err := ParseOS(d.goos)
	if err != nil {
		return Identity{}, err
	}

	raw := d.machine
	if raw == "" {
		raw, err = hostMachine()
		if err != nil {
			return Identity{}, fmt.Errorf("failed to determine machine type: %w", err)
		}
	}

	machine := raw
	if os == Linux {
		machine, err = d.classifyLinux(raw)
		if err != nil {
			return Identity{}, err
		}
	}

	id := NewIdentity(os, machine)
	d.logger.Debug("platform detected", "os", id.OS(), "machine", id.Machine(), "raw_machine", raw)
	return id, nil
}

// ClassifyLinuxMachine refines a raw Linux machine name into a machine
// variant. "x86_64" is returned unchanged without reading src. Anything else
// is classified from the CPU descriptor using DefaultRules.
func ClassifyLinuxMachine(rawMachine string, src CPUInfoSource) (string, error) {
	return newDetector(WithCPUInfo(src)).classifyLinux(rawMachine)
}

func (d *Detector) classifyLinux(raw string) (string, error) {
	if raw == MachineX86_64 {
		return raw, nil
	}

	text, err := d.cpuInfo.ReadCPUInfo()
	if err != nil {
		return "", err
	}

	info := ParseCPUInfo(text)
	d.logger.Debug("classifying cpu", "raw_machine", raw, "hardware", info.Hardware, "model", info.ModelName)

	machine, err := Classify(info, d.rules)
	if err != nil {
		d.logger.Debug("no classification rule matched", "cpuinfo", text)
		return "", err
	}
	return machine, nil
}
