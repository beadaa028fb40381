package simulation

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"take5/internal/domain"
	"take5/internal/seed"
)

// progressEvery is how many rounds pass between progress log lines.
const progressEvery = 1000

// Service drives a round service through a simulation.
type Service struct {
	rounds domain.RoundService
	seeds  seed.Source
	log    *log.Logger
}

// New returns a simulation over rounds, drawing decks from seeds. A nil
// logger discards progress.
func New(rounds domain.RoundService, seeds seed.Source, lg *log.Logger) *Service {
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Service{rounds: rounds, seeds: seeds, log: lg}
}

// Run plays n rounds. Cancelling ctx stops the run between rounds and
// returns the stats gathered so far with the context error.
func (s *Service) Run(ctx context.Context, n int) (*Stats, error) {
	players := s.rounds.Players()
	ids := make([]domain.PlayerID, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	stats := NewStats(ids)

	for i := range n {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		s.rounds.ResetPoints()
		res, err := s.rounds.Round(ctx, s.seeds.Round(i))
		if err != nil {
			return stats, fmt.Errorf("round %d: %w", i+1, err)
		}
		stats.Add(res)
		if (i+1)%progressEvery == 0 {
			s.log.Printf("simulated %d/%d rounds", i+1, n)
		}
	}
	s.rounds.ResetPoints()
	return stats, nil
}

// Report summarises stats for saving. strategies maps each player to the
// strategy name it was built from.
func (s *Service) Report(stats *Stats, strategies map[domain.PlayerID]string, started time.Time) domain.Report {
	rep := domain.Report{
		ID:        uuid.NewString(),
		Seed:      s.seeds.Fingerprint(),
		Rounds:    stats.Rounds,
		StartedAt: started.UTC(),
		Duration:  time.Since(started),
	}
	for _, id := range stats.Ranking() {
		rep.Players = append(rep.Players, domain.PlayerTotals{
			ID:         id,
			Strategy:   strategies[id],
			Points:     stats.Totals[id],
			PerRound:   stats.PerRound(id),
			Wins:       stats.Wins[id],
			Takes:      stats.Takes[id],
			BestRound:  stats.Best[id],
			WorstRound: stats.Worst[id],
		})
	}
	return rep
}
