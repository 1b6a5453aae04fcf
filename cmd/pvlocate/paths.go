package main

import (
	"github.com/spf13/cobra"

	"github.com/tsukumogami/pvlocate/internal/resource"
)

var (
	pathsContextFlag string
	pathsKeywordFlag string
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the absolute paths of every engine file",
	Long: `Resolve and print the native libraries and model files of both engines
plus the selected context and keyword files.

The context and keyword default to the values in config.toml (coffee and
hey pico unless changed with 'pvlocate config set').

Examples:
  pvlocate paths
  pvlocate paths --format json
  pvlocate paths --context "smart lighting" --machine cortex-a53 --os linux`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := newLocator(cfg)
		if err != nil {
			return err
		}
		sel, err := loadSelection(cfg, pathsContextFlag, pathsKeywordFlag)
		if err != nil {
			return err
		}

		paths, err := loc.Resolve(sel)
		if err != nil {
			return err
		}
		return printOutput(paths, paths.Entries())
	},
}

func init() {
	pathsCmd.Flags().StringVar(&pathsContextFlag, "context", "", "Context to resolve instead of the configured one")
	pathsCmd.Flags().StringVar(&pathsKeywordFlag, "keyword", "", "Keyword to resolve instead of the configured one")
}

// resourcesCmd builds the listing command for one named resource collection.
func resourcesCmd(c resource.Collection, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(c),
		Short: short,
		Long: short + `.

Files are keyed by the text before the first underscore in their name, so
"coffee_linux.rhn" is listed as "coffee".`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			loc, err := newLocator(cfg)
			if err != nil {
				return err
			}

			resources, err := loc.NamedResources(c)
			if err != nil {
				return err
			}
			return printOutput(resources, mappingEntries(resources))
		},
	}
}

var (
	contextsCmd = resourcesCmd(resource.Contexts, "List the speech contexts available for this platform")
	keywordsCmd = resourcesCmd(resource.Keywords, "List the wake words available for this platform")
)
