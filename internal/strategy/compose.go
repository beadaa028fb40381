package strategy

import "take5/internal/domain"

// Combined pairs a card chooser with a row chooser.
type Combined struct {
	Cards domain.CardChooser
	Rows  domain.RowChooser
}

// Compose returns a strategy that picks cards with cards and rows with rows.
func Compose(cards domain.CardChooser, rows domain.RowChooser) *Combined {
	return &Combined{Cards: cards, Rows: rows}
}

// ChooseCard delegates to the card chooser.
func (s *Combined) ChooseCard(hand *domain.Hand, board *domain.Board) (domain.Card, error) {
	return s.Cards.ChooseCard(hand, board)
}

// ChooseRow delegates to the row chooser.
func (s *Combined) ChooseRow(hand domain.Hand, board *domain.Board) (int, error) {
	return s.Rows.ChooseRow(hand, board)
}

// Interactive reports whether either half waits for a person.
func (s *Combined) Interactive() bool {
	return isInteractive(s.Cards) || isInteractive(s.Rows)
}

func isInteractive(v any) bool {
	i, ok := v.(domain.Interactive)
	return ok && i.Interactive()
}

var _ domain.Strategy = (*Combined)(nil)
