package strategy

import (
	"slices"

	"take5/internal/domain"
)

// SmallestGap plays the card that sits closest above the head of a row that
// still has room. The gap is measured against non-full rows only; it does
// not check where the card actually lands, so a card whose real target is a
// full row with a higher head can still be chosen and take that row.
//
// When no card fits above a head with room, the lowest card is played.
type SmallestGap struct{}

// ChooseCard removes and returns the card with the smallest gap.
func (SmallestGap) ChooseCard(hand *domain.Hand, board *domain.Board) (domain.Card, error) {
	if len(*hand) == 0 {
		return 0, ErrEmptyHand
	}
	best, smallest := -1, 0
	for i, c := range *hand {
		_, gap, ok := closestBelow(board, c, true)
		if !ok {
			continue
		}
		if best < 0 || gap < smallest {
			best, smallest = i, gap
		}
	}
	if best < 0 {
		best = lowest(*hand)
	}
	return hand.RemoveAt(best), nil
}

// ShortestRow plays the card whose target row holds the fewest cards,
// preferring the smaller gap to the head on a tie. Cards that would force a
// row choice are skipped; if every card would, the lowest is played.
type ShortestRow struct{}

// ChooseCard removes and returns the card landing on the shortest row.
func (ShortestRow) ChooseCard(hand *domain.Hand, board *domain.Board) (domain.Card, error) {
	if len(*hand) == 0 {
		return 0, ErrEmptyHand
	}
	best, shortest, bestGap := -1, 0, 0
	for i, c := range *hand {
		row, gap, ok := closestBelow(board, c, false)
		if !ok {
			continue
		}
		length := board.Row(row).Len()
		if best < 0 || length < shortest || (length == shortest && gap < bestGap) {
			best, shortest, bestGap = i, length, gap
		}
	}
	if best < 0 {
		best = lowest(*hand)
	}
	return hand.RemoveAt(best), nil
}

// closestBelow finds the row whose head is the greatest value below c and
// returns it with the gap c - head. With roomOnly set, full rows are skipped.
func closestBelow(board *domain.Board, c domain.Card, roomOnly bool) (row, gap int, ok bool) {
	row = -1
	var best domain.Card
	for i, r := range board.Rows() {
		if roomOnly && r.Full() {
			continue
		}
		head, has := r.Head()
		if !has || head >= c {
			continue
		}
		if row < 0 || head > best {
			row, best = i, head
		}
	}
	if row < 0 {
		return 0, 0, false
	}
	return row, int(c - best), true
}

func lowest(hand domain.Hand) int {
	return slices.Index(hand, hand.Min())
}
