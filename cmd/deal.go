package cmd

import (
	"github.com/spf13/cobra"
)

// dealCmd prints a freshly dealt table and exits
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a new deal without playing it",
	Long: `Deal shuffles and deals a new game, prints the table and exits.
With --seed the same table is printed every time.

Examples:
  solitaire deal
  solitaire deal --seed 42 --ascii`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		g := gameFactory(cmd, settings.config, settings.logger)()
		return r.Render(cmd.OutOrStdout(), g)
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	addGameFlags(dealCmd)
}
