package domain

import "time"

// RoundResult is what one round did to each player.
type RoundResult struct {
	Points map[PlayerID]int // penalty points scored this round
	Takes  map[PlayerID]int // rows collected, by overflow or by choice
}

// LineupEntry seats one player: who they are and how they decide.
type LineupEntry struct {
	ID       string  `json:"id"`
	Strategy string  `json:"strategy"`
	Alpha    float64 `json:"alpha,omitempty"`   // cost strategy only; 0 means default
	Players  int     `json:"players,omitempty"` // cost strategy only: other seats; 0 means table size - 1
}

// PlayerTotals aggregates one player's results over a simulation.
type PlayerTotals struct {
	ID         PlayerID `json:"id"`
	Strategy   string   `json:"strategy"`
	Points     int      `json:"points"`
	PerRound   float64  `json:"per_round"`
	Wins       int      `json:"wins"`
	Takes      int      `json:"takes"`
	BestRound  int      `json:"best_round"`
	WorstRound int      `json:"worst_round"`
}

// Report is the saved summary of a simulation run.
type Report struct {
	ID        string         `json:"id"`
	Seed      string         `json:"seed"` // fingerprint of the seed, not the seed itself
	Rounds    int            `json:"rounds"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
	Players   []PlayerTotals `json:"players"`
}
