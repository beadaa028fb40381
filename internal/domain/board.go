package domain

import (
	"fmt"
	"strings"
)

// MustChoose is returned by Board.PlayCard when the card is lower than every
// row head and its owner has to pick a row to take.
const MustChoose = -1

// Board is the table of NumRows rows.
type Board struct {
	rows [NumRows]Row
}

// NewBoard returns a board with empty rows.
func NewBoard() *Board { return &Board{} }

// Row returns the row at index i. It panics if i is out of range.
func (b *Board) Row(i int) *Row { return &b.rows[i] }

// Rows returns the rows in board order.
func (b *Board) Rows() []*Row {
	out := make([]*Row, NumRows)
	for i := range b.rows {
		out[i] = &b.rows[i]
	}
	return out
}

// Heads returns each row's head, with 0 for an empty row.
func (b *Board) Heads() []Card {
	heads := make([]Card, NumRows)
	for i := range b.rows {
		heads[i], _ = b.rows[i].Head()
	}
	return heads
}

// RowPoints returns the points held by each row.
func (b *Board) RowPoints() []int {
	pts := make([]int, NumRows)
	for i := range b.rows {
		pts[i] = b.rows[i].Points()
	}
	return pts
}

// Clear empties every row.
func (b *Board) Clear() {
	for i := range b.rows {
		b.rows[i].Clear()
	}
}

// Target returns the index of the row whose head is the greatest value below
// c. It reports false when no head is below c. Heads are distinct, so the
// target is unique.
func (b *Board) Target(c Card) (int, bool) {
	best := -1
	var bestHead Card
	for i := range b.rows {
		head, ok := b.rows[i].Head()
		if !ok || head >= c {
			continue
		}
		if best < 0 || head > bestHead {
			best, bestHead = i, head
		}
	}
	return best, best >= 0
}

// PlayCard places c and returns the points its owner collects. An empty row
// takes the card first, which only happens while dealing. If c is lower than
// every head the board is left untouched and MustChoose is returned.
func (b *Board) PlayCard(c Card) (int, error) {
	for i := range b.rows {
		if b.rows[i].Empty() {
			return b.rows[i].AddCard(c)
		}
	}
	i, ok := b.Target(c)
	if !ok {
		return MustChoose, nil
	}
	return b.rows[i].AddCard(c)
}

// ClearRow takes row i for the player who played c: the row's points are
// returned and c becomes its only card.
func (b *Board) ClearRow(i int, c Card) (int, error) {
	if i < 0 || i >= NumRows {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	return b.rows[i].Reset(c), nil
}

// String renders one row per line.
func (b *Board) String() string {
	lines := make([]string, NumRows)
	for i := range b.rows {
		lines[i] = b.rows[i].String()
	}
	return strings.Join(lines, "\n")
}
