package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/they4kman/minesweep/director"
)

var numGames int

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a director play games without a window and report how it did",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if config.Director == "" || config.Director == director.None {
			config.Director = "constraint"
		}

		results, err := director.Autoplay(config, config.Director, numGames)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d games, %d won, %d lost, %d stalled\n",
			config.Director, results.Games, results.Wins, results.Losses, results.Stalled)
		return nil
	},
}

func init() {
	autoplayCmd.Flags().IntVarP(&numGames, "games", "g", 100, "Number of games to play")
	rootCmd.AddCommand(autoplayCmd)
}
