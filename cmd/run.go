package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meghashyamc/curlplanet/game"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and animate the sketch until Esc or Q",
	RunE:  Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func Run(cmd *cobra.Command, args []string) error {
	g, err := game.NewGame(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if err := g.Run(); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
