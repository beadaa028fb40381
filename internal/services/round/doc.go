// Package round runs Take 5 rounds for a fixed table.
//
// A round deals TurnsPerRound cards to every seat and one card to each row,
// then plays TurnsPerRound turns. In a turn every player picks a card without
// seeing the others' picks; the picks are then resolved one at a time in
// ascending card order. A card lower than every head makes its owner take a
// row of their choosing.
//
// The engine is single threaded and keeps no state between rounds apart from
// each player's running score, which the caller clears with ResetPoints.
package round
