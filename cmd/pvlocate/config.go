package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsukumogami/pvlocate/internal/config"
	"github.com/tsukumogami/pvlocate/internal/userconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pvlocate configuration",
	Long: `Manage pvlocate configuration settings.

Configuration is stored in ~/.pvlocate/config.toml ($PVLOCATE_HOME/config.toml).

Available settings:
  context    Speech context resolved by paths and doctor (default: coffee)
  keyword    Wake word resolved by paths and doctor (default: hey pico)

Examples:
  pvlocate config get context
  pvlocate config set keyword porcupine`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get the current value of a configuration setting.

Available keys:
  context    Speech context name
  keyword    Wake word name`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		cfg, userCfg, err := loadUserConfig()
		if err != nil {
			return err
		}

		value, ok := userCfg.Get(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "Available keys in %s:\n", cfg.ConfigFile)
			printAvailableKeys(os.Stderr)
			return usageError{fmt.Errorf("unknown config key: %s", key)}
		}

		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  context    Speech context name
  keyword    Wake word name

Values are resource names as listed by 'pvlocate contexts' and
'pvlocate keywords', not file paths.

Examples:
  pvlocate config set context "smart lighting"
  pvlocate config set keyword porcupine`,
	Args: exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := args[1]

		cfg, userCfg, err := loadUserConfig()
		if err != nil {
			return err
		}

		if err := userCfg.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Available keys:\n")
			printAvailableKeys(os.Stderr)
			return usageError{err}
		}

		if err := saveUserConfig(cfg, userCfg); err != nil {
			return err
		}

		printInfof("%s = %s\n", key, value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, userCfg, err := loadUserConfig()
		if err != nil {
			return err
		}

		for _, key := range userconfig.SortedKeys() {
			value, _ := userCfg.Get(key)
			fmt.Printf("%s = %s\n", key, value)
		}
		return nil
	},
}

// loadUserConfig reads config.toml along with the configuration naming it.
func loadUserConfig() (*config.Config, *userconfig.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	userCfg, err := userconfig.Load(cfg.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, userCfg, nil
}

// saveUserConfig writes userCfg to the config file, creating the home
// directory first.
func saveUserConfig(cfg *config.Config, userCfg *userconfig.Config) error {
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	return userCfg.Save(cfg.ConfigFile)
}

func printAvailableKeys(w io.Writer) {
	keys := userconfig.AvailableKeys()
	for _, k := range userconfig.SortedKeys() {
		fmt.Fprintf(w, "  %s - %s\n", k, keys[k])
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}
