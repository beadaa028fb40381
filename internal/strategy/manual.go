package strategy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"take5/internal/domain"
)

// ErrNoInput is returned when the console runs out of input mid-decision.
var ErrNoInput = errors.New("no more input")

// Console lets a person decide from a terminal. Malformed answers, cards not
// in hand and rows out of range are re-prompted rather than returned as
// errors.
type Console struct {
	ID  domain.PlayerID
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a console strategy for player id. Several consoles may
// share one reader.
func NewConsole(id domain.PlayerID, in *bufio.Reader, out io.Writer) *Console {
	return &Console{ID: id, in: in, out: out}
}

// Interactive reports true: a console always waits for a person.
func (c *Console) Interactive() bool { return true }

// ChooseCard shows the hand and reads a card from it.
func (c *Console) ChooseCard(hand *domain.Hand, _ *domain.Board) (domain.Card, error) {
	fmt.Fprintf(c.out, "Player '%s' has to choose a card to play\n", c.ID)
	fmt.Fprintf(c.out, "Hand: %v\n", hand.Sorted())
	for {
		n, err := c.readInt("Card to play: ")
		if err != nil {
			return 0, err
		}
		card := domain.Card(n)
		if hand.Remove(card) {
			return card, nil
		}
	}
}

// ChooseRow shows each row's points and reads a row number from 1 to 4.
func (c *Console) ChooseRow(_ domain.Hand, board *domain.Board) (int, error) {
	fmt.Fprintf(c.out, "Player '%s' has to choose a row to receive\n", c.ID)
	fmt.Fprintf(c.out, "Points per row: %v\n", board.RowPoints())
	for {
		n, err := c.readInt("Row index to pick (1, 2, 3, 4): ")
		if err != nil {
			return 0, err
		}
		if n >= 1 && n <= domain.NumRows {
			return n - 1, nil
		}
	}
}

// readInt prompts until a line parses as an integer. A line that does not is
// skipped.
func (c *Console) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.in.ReadString('\n')
		if n, perr := strconv.Atoi(strings.TrimSpace(line)); perr == nil {
			return n, nil
		}
		if errors.Is(err, io.EOF) {
			return 0, ErrNoInput
		}
		if err != nil {
			return 0, fmt.Errorf("read console: %w", err)
		}
	}
}

var _ domain.Strategy = (*Console)(nil)
