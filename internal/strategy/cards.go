package strategy

import (
	"math/rand/v2"
	"slices"

	"take5/internal/domain"
)

// Random plays a uniformly random card.
type Random struct {
	Rand *rand.Rand
}

// ChooseCard removes and returns a random card.
func (s Random) ChooseCard(hand *domain.Hand, _ *domain.Board) (domain.Card, error) {
	if len(*hand) == 0 {
		return 0, ErrEmptyHand
	}
	return hand.RemoveAt(s.Rand.IntN(len(*hand))), nil
}

// Ascending plays the lowest card.
type Ascending struct{}

// ChooseCard removes and returns the lowest card.
func (Ascending) ChooseCard(hand *domain.Hand, _ *domain.Board) (domain.Card, error) {
	if len(*hand) == 0 {
		return 0, ErrEmptyHand
	}
	return hand.RemoveAt(slices.Index(*hand, hand.Min())), nil
}

// Descending plays the highest card.
type Descending struct{}

// ChooseCard removes and returns the highest card.
func (Descending) ChooseCard(hand *domain.Hand, _ *domain.Board) (domain.Card, error) {
	if len(*hand) == 0 {
		return 0, ErrEmptyHand
	}
	return hand.RemoveAt(slices.Index(*hand, hand.Max())), nil
}
