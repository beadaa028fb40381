package strategy

import (
	"errors"

	"take5/internal/domain"
)

// ErrEmptyHand is returned when a card is requested from an empty hand.
var ErrEmptyHand = errors.New("empty hand")

// MinimumRowPoints takes the row holding the fewest points, the first such
// row on a tie.
type MinimumRowPoints struct{}

// ChooseRow returns the index of the cheapest row.
func (MinimumRowPoints) ChooseRow(_ domain.Hand, board *domain.Board) (int, error) {
	pts := board.RowPoints()
	best := 0
	for i, p := range pts {
		if p < pts[best] {
			best = i
		}
	}
	return best, nil
}
