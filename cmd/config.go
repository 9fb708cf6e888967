package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/u9djfgoj/gigathon-project/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the solitaire config file",
	Long: `Commands for managing the config file in $XDG_CONFIG_HOME/solitaire.
Every key can also be set with a SOLITAIRE_ environment variable, for example
SOLITAIRE_SEED=42 or SOLITAIRE_SYMBOLS=ascii.`,
}

// configInitCmd writes the default config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigFilePath()
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			// Loading creates the file when it is missing and leaves it alone otherwise
			if _, err := config.LoadFile(path); err != nil {
				return err
			}
		} else if err := config.Save(path, config.Default()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
		return nil
	},
}

// configShowCmd prints the settings in effect
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings in effect, after environment overrides and flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		if err := toml.NewEncoder(out).Encode(settings.config); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		return nil
	},
}

// configPathCmd prints where the config file lives
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file with the defaults")
}
