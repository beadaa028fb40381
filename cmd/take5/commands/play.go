package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// play: one narrated round, the only mode that admits manual players.
func playCmd() *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play narrated rounds, optionally with manual players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds <= 0 {
				return fmt.Errorf("rounds must be positive")
			}
			w, err := wire(cmd, false)
			if err != nil {
				return err
			}
			for i := range rounds {
				if _, err := w.Rounds.Round(cmd.Context(), w.Seeds.Round(i)); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nTotals after %d rounds:\n", rounds)
			for _, p := range w.Players {
				fmt.Fprintf(out, "Player %s: %d\n", p.ID, p.Points())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 1, "number of rounds to play")
	return cmd
}
