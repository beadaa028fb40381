package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Row is an ascending run of cards on the board.
type Row struct {
	cards []Card
}

// Len returns the number of cards in the row.
func (r *Row) Len() int { return len(r.cards) }

// Empty reports whether the row holds no cards.
func (r *Row) Empty() bool { return len(r.cards) == 0 }

// Full reports whether the next card added would overflow the row.
func (r *Row) Full() bool { return len(r.cards) >= RowCapacity }

// Head returns the last card added, which is also the highest.
func (r *Row) Head() (Card, bool) {
	if r.Empty() {
		return 0, false
	}
	return r.cards[len(r.cards)-1], true
}

// Points returns the sum of the penalty points of the cards in the row.
func (r *Row) Points() int {
	pts := 0
	for _, c := range r.cards {
		pts += c.Points()
	}
	return pts
}

// Cards returns a copy of the cards in insertion order.
func (r *Row) Cards() []Card { return slices.Clone(r.cards) }

// AddCard appends c to the row and returns the points collected by doing so:
// zero, unless the row was full and had to be cleared first.
func (r *Row) AddCard(c Card) (int, error) {
	if head, ok := r.Head(); ok && c <= head {
		return 0, fmt.Errorf("%w: card %d on row headed by %d", ErrInvalidMove, c, head)
	}
	pts := 0
	if r.Full() {
		pts = r.Clear()
	}
	r.cards = append(r.cards, c)
	return pts, nil
}

// Clear empties the row and returns the points it held.
func (r *Row) Clear() int {
	pts := r.Points()
	r.cards = r.cards[:0]
	return pts
}

// Reset replaces the row with the single card c and returns the points the
// row held before.
func (r *Row) Reset(c Card) int {
	pts := r.Points()
	r.cards = append(r.cards[:0], c)
	return pts
}

// String renders the row with each card right-aligned to three columns.
func (r *Row) String() string {
	parts := make([]string, len(r.cards))
	for i, c := range r.cards {
		parts[i] = fmt.Sprintf("%3d", c)
	}
	return strings.Join(parts, " ")
}
