package round_test

import (
	"bufio"
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"take5/internal/domain"
	"take5/internal/services/round"
	"take5/internal/strategy"
)

func seat(t *testing.T, id, name string) *domain.Player {
	t.Helper()
	s, err := strategy.New(name, strategy.Options{
		ID:         domain.PlayerID(id),
		NumPlayers: 4,
		Rand:       rand.New(rand.NewPCG(3, 4)),
		In:         bufio.NewReader(strings.NewReader("")),
	})
	if err != nil {
		t.Fatalf("strategy %q: %v", name, err)
	}
	return domain.NewPlayer(domain.PlayerID(id), s)
}

func newEngine(t *testing.T, players ...*domain.Player) *round.Engine {
	t.Helper()
	e, err := round.New(players, round.Options{Quiet: true})
	if err != nil {
		t.Fatalf("round.New: %v", err)
	}
	return e
}

func setHeads(t *testing.T, b *domain.Board, heads ...domain.Card) {
	t.Helper()
	b.Clear()
	for i, h := range heads {
		if _, err := b.Row(i).AddCard(h); err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
	}
}

type badRow struct{ strategy.Ascending }

func (badRow) ChooseRow(domain.Hand, *domain.Board) (int, error) { return 7, nil }

func TestNew_RejectsBadTables(t *testing.T) {
	if _, err := round.New(nil, round.Options{}); !errors.Is(err, domain.ErrNoPlayers) {
		t.Fatalf("err = %v, want ErrNoPlayers", err)
	}

	var many []*domain.Player
	for i := range domain.MaxPlayers + 1 {
		many = append(many, seat(t, string(rune('a'+i)), strategy.NameAscending))
	}
	if _, err := round.New(many, round.Options{}); !errors.Is(err, domain.ErrTooManyPlayers) {
		t.Fatalf("err = %v, want ErrTooManyPlayers", err)
	}
	if _, err := round.New(many[:domain.MaxPlayers], round.Options{}); err != nil {
		t.Fatalf("full table rejected: %v", err)
	}

	dup := []*domain.Player{seat(t, "a", strategy.NameAscending), seat(t, "a", strategy.NameDescending)}
	if _, err := round.New(dup, round.Options{}); !errors.Is(err, domain.ErrDuplicatePlayer) {
		t.Fatalf("err = %v, want ErrDuplicatePlayer", err)
	}

	manual := []*domain.Player{seat(t, "ann", strategy.NameManual), seat(t, "bot", strategy.NameCost)}
	if _, err := round.New(manual, round.Options{Quiet: true}); !errors.Is(err, domain.ErrQuietManual) {
		t.Fatalf("err = %v, want ErrQuietManual", err)
	}
	if _, err := round.New(manual, round.Options{}); err != nil {
		t.Fatalf("manual table rejected when narrated: %v", err)
	}
}

func TestDeal_ConservesDeck(t *testing.T) {
	var players []*domain.Player
	for i := range domain.MaxPlayers {
		players = append(players, seat(t, string(rune('a'+i)), strategy.NameAscending))
	}
	e := newEngine(t, players...)
	if err := e.Deal(rand.New(rand.NewPCG(42, 42))); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	var dealt []domain.Card
	for _, p := range e.Players() {
		if len(p.Hand) != domain.TurnsPerRound {
			t.Fatalf("player %s holds %d cards", p.ID, len(p.Hand))
		}
		dealt = append(dealt, p.Hand...)
	}
	for _, r := range e.Board().Rows() {
		if r.Len() != 1 {
			t.Fatalf("row holds %d cards after deal", r.Len())
		}
		dealt = append(dealt, r.Cards()...)
	}
	slices.Sort(dealt)
	if !slices.Equal(dealt, domain.NewDeck()) {
		t.Fatalf("dealt cards are not the deck: %v", dealt)
	}
}

func TestDealFrom_ShortDeck(t *testing.T) {
	e := newEngine(t, seat(t, "a", strategy.NameAscending))
	if err := e.DealFrom(domain.NewDeck()[:13]); !errors.Is(err, domain.ErrDeckExhausted) {
		t.Fatalf("err = %v, want ErrDeckExhausted", err)
	}
}

func TestPlayTurn_AscendingForcedChoice(t *testing.T) {
	p := seat(t, "asc", strategy.NameAscending)
	e := newEngine(t, p)
	setHeads(t, e.Board(), 10, 50, 70, 90)
	p.ReceiveHand(domain.Hand{60, 5, 20})

	// 5 is below every head; all rows hold 3 points so row 0 is taken.
	if err := e.PlayTurn(context.Background()); err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if got := e.Board().Row(0).Cards(); !slices.Equal(got, []domain.Card{5}) {
		t.Fatalf("row 0 = %v, want [5]", got)
	}
	if p.Points() != 3 {
		t.Fatalf("points = %d, want 3", p.Points())
	}

	for range 2 {
		if err := e.PlayTurn(context.Background()); err != nil {
			t.Fatalf("PlayTurn: %v", err)
		}
	}
	if got := e.Board().Row(0).Cards(); !slices.Equal(got, []domain.Card{5, 20}) {
		t.Fatalf("row 0 = %v, want [5 20]", got)
	}
	if got := e.Board().Row(1).Cards(); !slices.Equal(got, []domain.Card{50, 60}) {
		t.Fatalf("row 1 = %v, want [50 60]", got)
	}
	if p.Points() != 3 || len(p.Hand) != 0 {
		t.Fatalf("points %d, hand %v", p.Points(), p.Hand)
	}
}

func TestResolve_AscendingCardOrder(t *testing.T) {
	a, b := seat(t, "a", strategy.NameAscending), seat(t, "b", strategy.NameAscending)
	e := newEngine(t, a, b)
	setHeads(t, e.Board(), 10, 40, 60, 80)

	// Seat order would put 15 down first and leave 12 below every head.
	if err := e.Resolve([]round.Play{{Player: a, Card: 15}, {Player: b, Card: 12}}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := e.Board().Row(0).Cards(); !slices.Equal(got, []domain.Card{10, 12, 15}) {
		t.Fatalf("row 0 = %v", got)
	}
	if a.Points() != 0 || b.Points() != 0 {
		t.Fatalf("points %d/%d, want none", a.Points(), b.Points())
	}
}

func TestResolve_OverflowScoresPlayer(t *testing.T) {
	a := seat(t, "a", strategy.NameAscending)
	e := newEngine(t, a)
	setHeads(t, e.Board(), 10, 40, 60, 80)
	for _, c := range []domain.Card{11, 12, 13, 14} {
		if err := e.Resolve([]round.Play{{Player: a, Card: c}}); err != nil {
			t.Fatalf("Resolve(%d): %v", c, err)
		}
	}
	if a.Points() != 0 {
		t.Fatalf("points before overflow = %d", a.Points())
	}
	if err := e.Resolve([]round.Play{{Player: a, Card: 15}}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := 3 + 5 + 1 + 1 + 1; a.Points() != want {
		t.Fatalf("points = %d, want %d", a.Points(), want)
	}
}

func TestResolve_BadRowIndex(t *testing.T) {
	p := domain.NewPlayer("bad", badRow{})
	e := newEngine(t, p)
	setHeads(t, e.Board(), 10, 40, 60, 80)
	err := e.Resolve([]round.Play{{Player: p, Card: 2}})
	if !errors.Is(err, domain.ErrInvalidRow) {
		t.Fatalf("err = %v, want ErrInvalidRow", err)
	}
}

func TestRound_ScoresMatchPlayers(t *testing.T) {
	players := []*domain.Player{
		seat(t, "cost", strategy.NameCost),
		seat(t, "short", strategy.NameShortestRow),
		seat(t, "desc", strategy.NameDescending),
		seat(t, "gap", strategy.NameSmallestGap),
		seat(t, "rand", strategy.NameRandom),
	}
	e := newEngine(t, players...)
	rng := rand.New(rand.NewPCG(9, 9))
	for n := range 20 {
		e.ResetPoints()
		res, err := e.Round(context.Background(), rng)
		if err != nil {
			t.Fatalf("round %d: %v", n, err)
		}
		for _, p := range players {
			if res.Points[p.ID] != p.Points() {
				t.Fatalf("round %d: %s scored %d, holds %d", n, p.ID, res.Points[p.ID], p.Points())
			}
			if len(p.Hand) != 0 {
				t.Fatalf("round %d: %s still holds %v", n, p.ID, p.Hand)
			}
			if res.Points[p.ID] > 0 && res.Takes[p.ID] == 0 {
				t.Fatalf("round %d: %s scored without taking a row", n, p.ID)
			}
		}
		for i, r := range e.Board().Rows() {
			if r.Len() < 1 || r.Len() > domain.RowCapacity {
				t.Fatalf("round %d: row %d holds %d cards", n, i, r.Len())
			}
		}
	}
}

func TestRound_CheaterNeverScores(t *testing.T) {
	cheat := seat(t, "isha", strategy.NameCheater)
	e := newEngine(t, seat(t, "asc", strategy.NameAscending), cheat)
	rng := rand.New(rand.NewPCG(5, 6))
	for range 10 {
		res, err := e.Round(context.Background(), rng)
		if err != nil {
			t.Fatalf("Round: %v", err)
		}
		if res.Points["isha"] != 0 || res.Takes["isha"] != domain.TurnsPerRound {
			t.Fatalf("cheater scored %d with %d takes", res.Points["isha"], res.Takes["isha"])
		}
	}
}

func TestRound_Cancelled(t *testing.T) {
	e := newEngine(t, seat(t, "a", strategy.NameAscending))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Round(ctx, rand.New(rand.NewPCG(1, 1))); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestPlayTurn_CancelledBeforeChoosing(t *testing.T) {
	p := seat(t, "asc", strategy.NameAscending)
	e := newEngine(t, p)
	setHeads(t, e.Board(), 10, 50, 70, 90)
	p.ReceiveHand(domain.Hand{60, 5, 20})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.PlayTurn(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(p.Hand) != 3 || e.Board().Row(0).Len() != 1 {
		t.Fatalf("turn ran after cancel: hand %v, row 0 %v", p.Hand, e.Board().Row(0).Cards())
	}
}
