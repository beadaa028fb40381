package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// simulate: play many quiet rounds and print per-player totals.
func simulateCmd() *cobra.Command {
	var (
		rounds  int
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many rounds between automated players and print totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds <= 0 {
				return fmt.Errorf("rounds must be positive")
			}
			w, err := wire(cmd, !verbose)
			if err != nil {
				return err
			}

			started := time.Now()
			stats, err := w.Simulation.Run(cmd.Context(), rounds)
			if err != nil && stats.Rounds == 0 {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Point totals after %d rounds:\n", stats.Rounds)
			for _, id := range stats.Order {
				fmt.Fprintf(out, "Player %s: %d (%.3f per round, %d wins)\n",
					id, stats.Totals[id], stats.PerRound(id), stats.Wins[id])
			}

			if w.Reports != nil {
				path, serr := w.Reports.SaveReport(w.Simulation.Report(stats, w.Strategies, started))
				if serr != nil {
					return serr
				}
				fmt.Fprintf(out, "Report saved to %s\n", path)
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 10000, "number of rounds to play")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "narrate every round")
	return cmd
}
