package strategy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"take5/internal/domain"
)

// ErrUnknownStrategy is returned by New for a name it does not know.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy names accepted by New.
const (
	NameManual      = "manual"
	NameRandom      = "random"
	NameAscending   = "ascending"
	NameDescending  = "descending"
	NameSmallestGap = "smallest-gap"
	NameShortestRow = "shortest-row"
	NameCost        = "cost"
	NameCheater     = "cheater"
)

// Options carries what individual strategies need to be built.
type Options struct {
	ID         domain.PlayerID
	NumPlayers int           // cost: other seats at the table
	Alpha      float64       // cost; 0 selects DefaultAlpha
	Rand       *rand.Rand    // random; nil seeds from the runtime
	In         *bufio.Reader // manual; nil reads stdin
	Out        io.Writer     // manual; nil writes stdout
}

// New builds the strategy called name.
func New(name string, opts Options) (domain.Strategy, error) {
	switch name {
	case NameManual:
		in, out := opts.In, opts.Out
		if in == nil {
			in = bufio.NewReader(os.Stdin)
		}
		if out == nil {
			out = os.Stdout
		}
		return NewConsole(opts.ID, in, out), nil
	case NameRandom:
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		return Compose(Random{Rand: rng}, MinimumRowPoints{}), nil
	case NameAscending:
		return Compose(Ascending{}, MinimumRowPoints{}), nil
	case NameDescending:
		return Compose(Descending{}, MinimumRowPoints{}), nil
	case NameSmallestGap:
		return Compose(SmallestGap{}, MinimumRowPoints{}), nil
	case NameShortestRow:
		return Compose(ShortestRow{}, MinimumRowPoints{}), nil
	case NameCost:
		return Compose(NewCostFunction(opts.NumPlayers, opts.Alpha), MinimumRowPoints{}), nil
	case NameCheater:
		return Cheater{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Names lists the strategies New accepts.
func Names() []string {
	return []string{
		NameManual, NameRandom, NameAscending, NameDescending,
		NameSmallestGap, NameShortestRow, NameCost, NameCheater,
	}
}
