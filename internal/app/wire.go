package app

import (
	"fmt"

	"take5/internal/domain"
	"take5/internal/seed"
	"take5/internal/services/round"
	"take5/internal/services/simulation"
	"take5/internal/store"
	"take5/internal/strategy"
)

// Wire bundles the table, services and stores for the CLI.
type Wire struct {
	Seeds      seed.Source
	Players    []*domain.Player
	Strategies map[domain.PlayerID]string
	Rounds     *round.Engine
	Simulation *simulation.Service
	Reports    *store.ReportFileStore // nil when ReportDir is empty
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	seeds, err := seed.New(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	lineup := cfg.Lineup
	if len(lineup) == 0 {
		lineup = DefaultLineup()
	}
	players := make([]*domain.Player, 0, len(lineup))
	names := make(map[domain.PlayerID]string, len(lineup))
	for _, e := range lineup {
		id := domain.PlayerID(e.ID)
		// The cost estimate counts the other plays that could land first.
		others := e.Players
		if others == 0 {
			others = len(lineup) - 1
		}
		s, err := strategy.New(e.Strategy, strategy.Options{
			ID:         id,
			NumPlayers: others,
			Alpha:      e.Alpha,
			Rand:       seeds.Player(e.ID),
			In:         cfg.In,
			Out:        cfg.Out,
		})
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", e.ID, err)
		}
		players = append(players, domain.NewPlayer(id, s))
		names[id] = e.Strategy
	}

	// Round engine validates the table
	engine, err := round.New(players, round.Options{Quiet: cfg.Quiet, Log: cfg.Log})
	if err != nil {
		return nil, err
	}

	w := &Wire{
		Seeds:      seeds,
		Players:    players,
		Strategies: names,
		Rounds:     engine,
		Simulation: simulation.New(engine, seeds, cfg.Log),
	}
	if cfg.ReportDir != "" {
		w.Reports = store.NewReportFileStore(cfg.ReportDir)
	}
	return w, nil
}
