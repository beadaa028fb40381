package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"take5/internal/store"
)

// report <id>: print a report saved by simulate --report-dir.
func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <id>",
		Short: "Print a saved simulation report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reportDir == "" {
				return fmt.Errorf("no report directory configured. use --report-dir")
			}
			r, err := store.NewReportFileStore(reportDir).LoadReport(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (seed %s): %d rounds in %s, started %s\n",
				r.ID, r.Seed, r.Rounds, r.Duration, r.StartedAt.Format("2006-01-02 15:04:05"))
			for i, p := range r.Players {
				fmt.Fprintf(out, "%d. %s [%s]: %d points, %.3f per round, %d wins, %d rows taken, best %d, worst %d\n",
					i+1, p.ID, p.Strategy, p.Points, p.PerRound, p.Wins, p.Takes, p.BestRound, p.WorstRound)
			}
			return nil
		},
	}
}
