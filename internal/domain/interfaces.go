package domain

import (
	"context"
	"math/rand/v2"
)

// CardChooser picks the card to play this turn. It removes the card from the
// hand itself; the card must not be put back.
type CardChooser interface {
	ChooseCard(hand *Hand, board *Board) (Card, error)
}

// RowChooser picks the row to take after playing a card lower than every
// head. It is only called in that situation and returns an index in
// [0, NumRows).
type RowChooser interface {
	ChooseRow(hand Hand, board *Board) (int, error)
}

// Strategy is everything a seat needs to play a round.
type Strategy interface {
	CardChooser
	RowChooser
}

// Interactive is implemented by strategies that wait for a person. Such
// strategies need the table narrated to them.
type Interactive interface {
	Interactive() bool
}

// RoundService plays rounds for a fixed table of players.
type RoundService interface {
	Players() []*Player
	Round(ctx context.Context, rng *rand.Rand) (RoundResult, error)
	ResetPoints()
}
