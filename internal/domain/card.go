package domain

import "strconv"

const (
	// DeckSize is the number of cards in a deck, valued 1 through DeckSize.
	DeckSize = 104
	// NumRows is the number of rows on the board.
	NumRows = 4
	// RowCapacity is the number of cards a row holds before it is cleared.
	RowCapacity = 5
	// TurnsPerRound is the number of cards dealt to each player and the
	// number of turns in a round.
	TurnsPerRound = 10
	// MaxPlayers caps the number of seats at a table.
	MaxPlayers = 10
)

// Card is a numbered card. Cards order and subtract as plain integers.
type Card int

// Points returns the penalty points carried by the card.
//
// The checks run in priority order: 55 is a multiple of both 11 and 5 and
// must score as the joker.
func (c Card) Points() int {
	switch {
	case c == 55:
		return 7
	case c%11 == 0:
		return 5
	case c%10 == 0:
		return 3
	case c%5 == 0:
		return 2
	default:
		return 1
	}
}

// String returns the card value.
func (c Card) String() string { return strconv.Itoa(int(c)) }

// NewDeck returns the cards 1..DeckSize in ascending order.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i + 1)
	}
	return deck
}
