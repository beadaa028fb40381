package round

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"slices"

	"take5/internal/domain"
)

// Options configures an Engine.
type Options struct {
	// Quiet suppresses the play-by-play. It cannot be combined with
	// interactive players.
	Quiet bool
	// Log receives the play-by-play. Nil writes nowhere.
	Log *log.Logger
}

// Play is one card put down in a turn.
type Play struct {
	Player *domain.Player
	Card   domain.Card
}

// Engine plays rounds on one board for one table of players.
type Engine struct {
	players []*domain.Player
	board   *domain.Board
	log     *log.Logger

	// per-round tallies
	scored map[domain.PlayerID]int
	takes  map[domain.PlayerID]int
}

// New validates the table and returns an engine for it.
func New(players []*domain.Player, opts Options) (*Engine, error) {
	if len(players) == 0 {
		return nil, domain.ErrNoPlayers
	}
	if len(players) > domain.MaxPlayers || len(players)*domain.TurnsPerRound+domain.NumRows > domain.DeckSize {
		return nil, fmt.Errorf("%w: %d", domain.ErrTooManyPlayers, len(players))
	}
	seen := make(map[domain.PlayerID]bool, len(players))
	for _, p := range players {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
		if opts.Quiet && p.Interactive() {
			return nil, domain.ErrQuietManual
		}
	}
	lg := opts.Log
	if opts.Quiet || lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Engine{
		players: slices.Clone(players),
		board:   domain.NewBoard(),
		log:     lg,
	}, nil
}

// Players returns the seats in play order.
func (e *Engine) Players() []*domain.Player { return slices.Clone(e.players) }

// Board returns the live board.
func (e *Engine) Board() *domain.Board { return e.board }

// ResetPoints clears every player's running score.
func (e *Engine) ResetPoints() {
	for _, p := range e.players {
		p.ClearPoints()
	}
}

// Deal shuffles a full deck with rng and deals it.
func (e *Engine) Deal(rng *rand.Rand) error {
	deck := domain.NewDeck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return e.DealFrom(deck)
}

// DealFrom clears the board and deals from the end of deck: TurnsPerRound
// cards to each player in seat order, then one card to each row.
func (e *Engine) DealFrom(deck []domain.Card) error {
	need := len(e.players)*domain.TurnsPerRound + domain.NumRows
	if len(deck) < need {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrDeckExhausted, len(deck), need)
	}
	e.board.Clear()
	for _, p := range e.players {
		n := len(deck) - domain.TurnsPerRound
		p.ReceiveHand(slices.Clone(deck[n:]))
		deck = deck[:n]
	}
	for range domain.NumRows {
		c := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		if _, err := e.board.PlayCard(c); err != nil {
			return err
		}
	}
	return nil
}

// Round deals with rng and plays TurnsPerRound turns. The result holds the
// points each player scored in this round only.
func (e *Engine) Round(ctx context.Context, rng *rand.Rand) (domain.RoundResult, error) {
	e.log.Print("\n\nNEW ROUND")
	if err := e.Deal(rng); err != nil {
		return domain.RoundResult{}, err
	}
	e.scored = make(map[domain.PlayerID]int, len(e.players))
	e.takes = make(map[domain.PlayerID]int, len(e.players))
	for _, p := range e.players {
		e.scored[p.ID] = 0
		e.takes[p.ID] = 0
	}

	for turn := 1; turn <= domain.TurnsPerRound; turn++ {
		e.log.Print("\n-----------------")
		e.log.Printf("Turn %d", turn)
		e.log.Print("-----------------")
		e.log.Print(e.board)
		if err := e.PlayTurn(ctx); err != nil {
			return domain.RoundResult{}, fmt.Errorf("turn %d: %w", turn, err)
		}
		e.log.Print("-----------------")
	}

	e.log.Print("Round results:")
	for _, p := range e.players {
		e.log.Printf("Player %s: %d", p.ID, p.Points())
	}
	return domain.RoundResult{Points: e.scored, Takes: e.takes}, nil
}

// PlayTurn collects a card from every player against the same board and
// resolves them. A cancelled ctx stops the turn before any card is chosen.
func (e *Engine) PlayTurn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	plays := make([]Play, 0, len(e.players))
	for _, p := range e.players {
		c, err := p.ChooseCard(e.board)
		if err != nil {
			return fmt.Errorf("player %s choosing card: %w", p.ID, err)
		}
		plays = append(plays, Play{Player: p, Card: c})
	}
	return e.Resolve(plays)
}

// Resolve places plays in ascending card order. Equal cards, which only a
// misbehaving strategy can produce, keep seat order.
func (e *Engine) Resolve(plays []Play) error {
	plays = slices.Clone(plays)
	slices.SortStableFunc(plays, func(a, b Play) int { return int(a.Card - b.Card) })
	for _, pl := range plays {
		if err := e.resolve(pl); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) resolve(pl Play) error {
	p := pl.Player
	e.log.Printf("Player %s plays %d", p.ID, pl.Card)
	pts, err := e.board.PlayCard(pl.Card)
	if err != nil {
		return fmt.Errorf("player %s playing %d: %w", p.ID, pl.Card, err)
	}
	taken := pts > 0
	if pts == domain.MustChoose {
		e.log.Printf("Player %s has to choose a row to take", p.ID)
		row, err := p.ChooseRow(e.board)
		if err != nil {
			return fmt.Errorf("player %s choosing row: %w", p.ID, err)
		}
		e.log.Printf("Player %s takes row %d", p.ID, row+1)
		if pts, err = e.board.ClearRow(row, pl.Card); err != nil {
			return fmt.Errorf("player %s taking row: %w", p.ID, err)
		}
		taken = true
	}
	if pts != 0 {
		e.log.Printf("Player %s receives %d points", p.ID, pts)
	}
	p.AddPoints(pts)
	if e.scored != nil {
		e.scored[p.ID] += pts
		if taken {
			e.takes[p.ID]++
		}
	}
	e.log.Print(e.board)
	return nil
}

var _ domain.RoundService = (*Engine)(nil)
