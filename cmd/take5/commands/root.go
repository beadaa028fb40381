package commands

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"take5/internal/app"
	"take5/internal/domain"
	"take5/internal/store"
)

var (
	seedPhrase string
	players    []string
	lineupPath string
	reportDir  string
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "take5",
		Short:        "Take 5 card game simulator",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&seedPhrase, "seed", "", "seed phrase for reproducible runs (default random)")
	root.PersistentFlags().StringArrayVar(&players, "player", nil, "seat a player as id=strategy[:alpha] (repeatable, in play order)")
	root.PersistentFlags().StringVar(&lineupPath, "lineup", "", "JSON lineup file, used instead of --player")
	root.PersistentFlags().StringVar(&reportDir, "report-dir", "", "directory for simulation reports (default none)")

	root.AddCommand(simulateCmd(), playCmd(), strategiesCmd(), reportCmd())
	return root
}

// wire builds the app for a command from the persistent flags.
func wire(cmd *cobra.Command, quiet bool) (*app.Wire, error) {
	lineup, err := lineupFromFlags()
	if err != nil {
		return nil, err
	}
	return app.NewWire(app.Config{
		Seed:      seedPhrase,
		Quiet:     quiet,
		Lineup:    lineup,
		ReportDir: reportDir,
		In:        bufio.NewReader(cmd.InOrStdin()),
		Out:       cmd.OutOrStdout(),
		Log:       log.New(cmd.OutOrStdout(), "", 0),
	})
}

func lineupFromFlags() ([]domain.LineupEntry, error) {
	if lineupPath != "" {
		return store.LoadLineup(lineupPath)
	}
	var lineup []domain.LineupEntry
	for _, p := range players {
		e, err := app.ParseLineupEntry(p)
		if err != nil {
			return nil, err
		}
		lineup = append(lineup, e)
	}
	return lineup, nil
}
