package main

import (
	"github.com/spf13/cobra"

	"github.com/tsukumogami/pvlocate/internal/resource"
)

// detectResult is the platform report printed by detect.
type detectResult struct {
	OS      string `json:"os" toml:"os" yaml:"os"`
	Machine string `json:"machine" toml:"machine" yaml:"machine"`
	Class   string `json:"class" toml:"class" yaml:"class"`
	Subdir  string `json:"subdir" toml:"subdir" yaml:"subdir"`
}

func (r detectResult) entries() []resource.Entry {
	return []resource.Entry{
		{Name: "os", Path: r.OS},
		{Name: "machine", Path: r.Machine},
		{Name: "class", Path: r.Class},
		{Name: "subdir", Path: r.Subdir},
	}
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected platform",
	Long: `Print the operating system and machine variant pvlocate resolves for.

On Linux hosts other than x86_64 the CPU descriptor (/proc/cpuinfo) is read
to tell Raspberry Pi models and BeagleBone boards apart.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		id, err := resolveIdentity(cfg)
		if err != nil {
			return err
		}
		class, err := id.Class()
		if err != nil {
			return err
		}
		layout, err := loadLayout(cfg)
		if err != nil {
			return err
		}
		subdir, err := layout.Subdir(id)
		if err != nil {
			return err
		}

		result := detectResult{
			OS:      string(id.OS()),
			Machine: id.Machine(),
			Class:   string(class),
			Subdir:  subdir,
		}
		return printOutput(result, result.entries())
	},
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// exactArgs requires n positional arguments, reporting a usage error otherwise.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
