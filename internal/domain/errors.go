package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned when a card is added to a non-empty row
	// without exceeding its head. Board.PlayCard never does this, so seeing
	// it means a caller bypassed the placement rules.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidRow is returned for a row index outside [0, NumRows).
	ErrInvalidRow = errors.New("invalid row index")

	// ErrNoPlayers is returned when a table is set up without players.
	ErrNoPlayers = errors.New("no players")

	// ErrTooManyPlayers is returned when the deck cannot deal every seat.
	ErrTooManyPlayers = fmt.Errorf("too many players (max %d)", MaxPlayers)

	// ErrDuplicatePlayer is returned when two seats share an id.
	ErrDuplicatePlayer = errors.New("duplicate player id")

	// ErrQuietManual is returned when quiet mode is combined with an
	// interactive player, who could not see the table.
	ErrQuietManual = errors.New("can't play in quiet mode if manual players are playing")

	// ErrDeckExhausted is returned when a deck is too small for the deal.
	ErrDeckExhausted = errors.New("not enough cards to deal")
)
