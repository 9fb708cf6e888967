package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/u9djfgoj/gigathon-project/internal/config"
	"github.com/u9djfgoj/gigathon-project/internal/logging"
)

// settings are resolved once per invocation, before any subcommand runs
var settings struct {
	config *config.Config
	logger *slog.Logger
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Play Klondike solitaire in the terminal",
	Long: `Solitaire is a terminal version of Klondike: build the four foundations
from Ace to King by drawing from the stock and moving cards between seven columns.

Running it without a subcommand starts a game.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runPlay,
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	RootCmd.PersistentFlags().Bool("ascii", false, "Draw suits as letters instead of symbols")
	addPlayFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings merges the config file, SOLITAIRE_* variables and flags, in
// increasing order of precedence.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = false
	}
	if ascii, _ := flags.GetBool("ascii"); ascii {
		cfg.Symbols = config.SymbolsASCII
	}

	settings.config = cfg
	settings.logger = logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	settings.logger.Debug("settings loaded", "config", config.GetConfigFilePath(), "seed", cfg.Seed)
	return nil
}
