// Package domain defines the Take 5 game model and the contracts shared across
// the app.
//
// It holds the value types (Card, Hand), the table (Row, Board) with its
// placement rules, the Player that owns a hand and a running score, and the
// strategy interfaces that automated and interactive players satisfy.
//
// # Placement
//
// A played card goes onto the row whose head is the greatest value still
// below the card. A row that already holds RowCapacity cards is cleared first
// and its points go to the player who overflowed it. A card lower than every
// head cannot be placed: Board.PlayCard reports MustChoose and the player
// takes a row of their choosing instead.
package domain
