package domain

// PlayerID identifies a seat at the table.
type PlayerID string

// String returns the string form of the id.
func (id PlayerID) String() string { return string(id) }

// Player owns a hand and a running score, and delegates decisions to its
// strategy. The score persists across rounds until ClearPoints is called.
type Player struct {
	ID       PlayerID
	Hand     Hand
	points   int
	strategy Strategy
}

// NewPlayer seats a player that decides with s.
func NewPlayer(id PlayerID, s Strategy) *Player {
	return &Player{ID: id, strategy: s}
}

// Strategy returns the player's strategy.
func (p *Player) Strategy() Strategy { return p.strategy }

// ReceiveHand replaces the player's hand.
func (p *Player) ReceiveHand(h Hand) { p.Hand = h }

// AddPoints credits penalty points.
func (p *Player) AddPoints(pts int) { p.points += pts }

// ClearPoints resets the running score.
func (p *Player) ClearPoints() { p.points = 0 }

// Points returns the running score.
func (p *Player) Points() int { return p.points }

// ChooseCard asks the strategy for the card to play from the player's hand.
func (p *Player) ChooseCard(b *Board) (Card, error) {
	return p.strategy.ChooseCard(&p.Hand, b)
}

// ChooseRow asks the strategy which row to take.
func (p *Player) ChooseRow(b *Board) (int, error) {
	return p.strategy.ChooseRow(p.Hand, b)
}

// Interactive reports whether the player's strategy waits for a person.
func (p *Player) Interactive() bool {
	i, ok := p.strategy.(Interactive)
	return ok && i.Interactive()
}
