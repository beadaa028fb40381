package strategy

import "take5/internal/domain"

// Cheater shows what an unpoliced seat can get away with. It always plays a
// 1, whether or not it holds one, so it always has to take a row, and before
// taking row 0 it empties it so there is nothing to collect.
//
// The engine gives it no special treatment: it is just another strategy.
type Cheater struct{}

// ChooseCard returns a 1 and leaves the hand alone.
func (Cheater) ChooseCard(*domain.Hand, *domain.Board) (domain.Card, error) {
	return 1, nil
}

// ChooseRow empties row 0 and returns it.
func (Cheater) ChooseRow(_ domain.Hand, board *domain.Board) (int, error) {
	board.Row(0).Clear()
	return 0, nil
}

var _ domain.Strategy = Cheater{}
