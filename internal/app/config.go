package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"take5/internal/domain"
	"take5/internal/strategy"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Seed      string               // seed phrase; empty draws a random seed
	Quiet     bool                 // suppress the play-by-play
	Lineup    []domain.LineupEntry // seats in play order; empty uses DefaultLineup
	ReportDir string               // where reports are saved; empty disables saving
	In        *bufio.Reader        // console input for manual players
	Out       io.Writer            // console output for manual players
	Log       *log.Logger          // play-by-play and progress
}

// DefaultLineup is the table used when none is configured.
func DefaultLineup() []domain.LineupEntry {
	return []domain.LineupEntry{
		{ID: "costbot", Strategy: strategy.NameCost, Alpha: strategy.DefaultAlpha},
		{ID: "shortbot", Strategy: strategy.NameShortestRow},
		{ID: "descbot", Strategy: strategy.NameDescending},
		{ID: "gapbot", Strategy: strategy.NameSmallestGap},
		{ID: "cheater", Strategy: strategy.NameCheater},
	}
}

// ParseLineupEntry parses "id=strategy", "id=strategy:alpha" or
// "id=strategy:alpha:players".
func ParseLineupEntry(s string) (domain.LineupEntry, error) {
	id, spec, ok := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return domain.LineupEntry{}, fmt.Errorf("player %q: want id=strategy", s)
	}
	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) > 3 {
		return domain.LineupEntry{}, fmt.Errorf("player %q: want id=strategy[:alpha[:players]]", s)
	}
	e := domain.LineupEntry{ID: id, Strategy: parts[0]}
	if len(parts) > 1 {
		a, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || a <= 0 {
			return domain.LineupEntry{}, fmt.Errorf("player %q: bad alpha %q", s, parts[1])
		}
		e.Alpha = a
	}
	if len(parts) > 2 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n <= 0 {
			return domain.LineupEntry{}, fmt.Errorf("player %q: bad player count %q", s, parts[2])
		}
		e.Players = n
	}
	return e, nil
}
