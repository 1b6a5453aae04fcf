package platform

import "strings"

// Rule maps CPU descriptor substrings to a machine variant.
//
// A rule matches when its Hardware substring occurs in the Hardware line and
// its Model substring (if any) occurs in the model name line. A matching rule
// with an empty Machine rejects the CPU outright.
type Rule struct {
	Hardware string
	Model    string
	Machine  string
}

// DefaultRules is the classification table for the Linux boards prebuilt
// libraries exist for. Rules are evaluated top to bottom; the first match wins.
var DefaultRules = []Rule{
	// Raspberry Pi (Broadcom SoCs), keyed by ARM core revision
	{Hardware: "BCM", Model: "rev 7", Machine: MachineARM11},
	{Hardware: "BCM", Model: "rev 5", Machine: MachineCortexA7},
	{Hardware: "BCM", Model: "rev 4", Machine: MachineCortexA53},
	// Broadcom board with an unknown core revision
	{Hardware: "BCM"},
	// BeagleBone (TI AM335x)
	{Hardware: "AM33", Machine: MachineBeagleBone},
}

// Matches reports whether the rule applies to info.
func (r Rule) Matches(info CPUInfo) bool {
	if !strings.Contains(info.Hardware, r.Hardware) {
		return false
	}
	return r.Model == "" || strings.Contains(info.ModelName, r.Model)
}

// Classify evaluates rules against info and returns the first matching
// variant. Returns UnsupportedCPUError if nothing matches or the matching
// rule rejects the CPU.
func Classify(info CPUInfo, rules []Rule) (string, error) {
	for _, rule := range rules {
		if !rule.Matches(info) {
			continue
		}
		if rule.Machine == "" {
			break
		}
		return rule.Machine, nil
	}
	return "", &UnsupportedCPUError{
		Hardware: info.Hardware,
		Model:    info.ModelName,
		CPUInfo:  info.Raw,
	}
}
