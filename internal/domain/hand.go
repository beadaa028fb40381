package domain

import "slices"

// Hand is the set of cards a player still holds.
type Hand []Card

// Contains reports whether c is in the hand.
func (h Hand) Contains(c Card) bool { return slices.Contains(h, c) }

// Remove takes c out of the hand, keeping the order of the remaining cards.
func (h *Hand) Remove(c Card) bool {
	i := slices.Index(*h, c)
	if i < 0 {
		return false
	}
	h.RemoveAt(i)
	return true
}

// RemoveAt takes the card at index i out of the hand and returns it.
func (h *Hand) RemoveAt(i int) Card {
	c := (*h)[i]
	*h = slices.Delete(*h, i, i+1)
	return c
}

// Min returns the lowest card. It panics on an empty hand.
func (h Hand) Min() Card { return slices.Min(h) }

// Max returns the highest card. It panics on an empty hand.
func (h Hand) Max() Card { return slices.Max(h) }

// Sorted returns an ascending copy of the hand.
func (h Hand) Sorted() Hand {
	out := slices.Clone(h)
	slices.Sort(out)
	return out
}
