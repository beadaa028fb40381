package simulation

import (
	"slices"

	"take5/internal/domain"
)

// Stats accumulates round results per player.
type Stats struct {
	Rounds int
	Order  []domain.PlayerID
	Totals map[domain.PlayerID]int
	Wins   map[domain.PlayerID]int // rounds finished with the lowest score, ties included
	Takes  map[domain.PlayerID]int
	Best   map[domain.PlayerID]int
	Worst  map[domain.PlayerID]int
}

// NewStats returns empty stats for players in seat order.
func NewStats(players []domain.PlayerID) *Stats {
	return &Stats{
		Order:  slices.Clone(players),
		Totals: make(map[domain.PlayerID]int, len(players)),
		Wins:   make(map[domain.PlayerID]int, len(players)),
		Takes:  make(map[domain.PlayerID]int, len(players)),
		Best:   make(map[domain.PlayerID]int, len(players)),
		Worst:  make(map[domain.PlayerID]int, len(players)),
	}
}

// Add folds one round into the stats.
func (s *Stats) Add(r domain.RoundResult) {
	low := 0
	for i, id := range s.Order {
		if i == 0 || r.Points[id] < low {
			low = r.Points[id]
		}
	}
	for _, id := range s.Order {
		pts := r.Points[id]
		s.Totals[id] += pts
		s.Takes[id] += r.Takes[id]
		if pts == low {
			s.Wins[id]++
		}
		if s.Rounds == 0 || pts < s.Best[id] {
			s.Best[id] = pts
		}
		if s.Rounds == 0 || pts > s.Worst[id] {
			s.Worst[id] = pts
		}
	}
	s.Rounds++
}

// PerRound returns the average points per round for id.
func (s *Stats) PerRound(id domain.PlayerID) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Totals[id]) / float64(s.Rounds)
}

// Ranking returns the players from fewest to most total points, seat order
// breaking ties.
func (s *Stats) Ranking() []domain.PlayerID {
	out := slices.Clone(s.Order)
	slices.SortStableFunc(out, func(a, b domain.PlayerID) int { return s.Totals[a] - s.Totals[b] })
	return out
}
