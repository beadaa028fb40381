// Package strategy implements the ways a seat can decide what to play.
//
// A strategy is a card chooser paired with a row chooser (see Compose). Most
// automated players share MinimumRowPoints for the row decision and differ
// only in how they pick cards:
//
//   - random        a uniformly random card
//   - ascending     the lowest card
//   - descending    the highest card
//   - smallest-gap  the card closest above a head of a row with room
//   - shortest-row  the card landing on the shortest row, gap as tiebreaker
//   - cost          the card with the lowest estimated penalty
//   - cheater       always 1, and empties row 0 before taking it
//   - manual        asks a person on a console
//
// New builds any of them by name.
package strategy
