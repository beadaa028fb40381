package strategy

import (
	"math"
	"slices"

	"take5/internal/domain"
)

const (
	// DefaultAlpha is the gap sensitivity used when none is configured.
	DefaultAlpha = 0.3

	costEpsilon = 0.001
)

// CostFunction plays the card with the lowest estimated penalty.
//
// A card below every head is costed at the cheapest row on the board, the
// one MinimumRowPoints would take. Otherwise the cost is the target row's
// points times the chance the row fills up before the card lands, see
// TakeProbability.
type CostFunction struct {
	NumPlayers int
	Alpha      float64
}

// NewCostFunction returns a cost strategy that expects numPlayers other plays
// per turn. A non-positive alpha selects DefaultAlpha.
func NewCostFunction(numPlayers int, alpha float64) *CostFunction {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &CostFunction{NumPlayers: numPlayers, Alpha: alpha}
}

// ChooseCard removes and returns the card with the lowest estimated cost,
// the first one on a tie.
func (s *CostFunction) ChooseCard(hand *domain.Hand, board *domain.Board) (domain.Card, error) {
	if len(*hand) == 0 {
		return 0, ErrEmptyHand
	}
	best, bestValue := 0, 0.0
	for i, c := range *hand {
		value := 1 / (s.Cost(c, board) + costEpsilon)
		if value > bestValue {
			best, bestValue = i, value
		}
	}
	return hand.RemoveAt(best), nil
}

// Cost estimates the penalty points of playing c on board.
func (s *CostFunction) Cost(c domain.Card, board *domain.Board) float64 {
	row, gap, ok := closestBelow(board, c, false)
	if !ok {
		return float64(slices.Min(board.RowPoints()))
	}
	r := board.Row(row)
	p := TakeProbability(gap, r.Len(), s.NumPlayers, s.Alpha)
	return float64(r.Points()) * p
}

// TakeProbability estimates the chance that a card played gap above the head
// of a row holding length cards ends up collecting that row.
//
// A full row is certain to be taken. If the other plays this turn cannot fill
// the row, or nothing fits between head and card, the chance is zero.
// Otherwise it combines how likely the row is to fill with how likely some
// card lands in the gap.
func TakeProbability(gap, length, numPlayers int, alpha float64) float64 {
	remaining := domain.RowCapacity - length
	switch {
	case remaining <= 0:
		return 1.0
	case numPlayers <= remaining || gap == 1:
		return 0.0
	}
	space := 1.0 - float64(remaining)/float64(numPlayers)
	inGap := 1.0 - math.Exp(-alpha*float64(gap-1))
	return space * inGap
}
