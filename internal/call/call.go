package call

import (
	"fmt"

	"github.com/eseidel/yarborough/internal/card"
)

// Strain is a suit or notrump. Strains are ordered clubs < diamonds <
// hearts < spades < NT for bid legality.
type Strain int

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	StrainNotrump
)

func (s Strain) String() string {
	switch s {
	case StrainClubs:
		return "♣"
	case StrainDiamonds:
		return "♦"
	case StrainHearts:
		return "♥"
	case StrainSpades:
		return "♠"
	case StrainNotrump:
		return "NT"
	default:
		return "?"
	}
}

// StrainFromSuit converts a card.Suit to its matching Strain.
func StrainFromSuit(s card.Suit) Strain {
	switch s {
	case card.Clubs:
		return StrainClubs
	case card.Diamonds:
		return StrainDiamonds
	case card.Hearts:
		return StrainHearts
	case card.Spades:
		return StrainSpades
	default:
		return StrainNotrump
	}
}

// Suit returns the underlying card.Suit; only valid when !IsNotrump.
func (s Strain) Suit() card.Suit {
	return card.Suit(s)
}

// IsNotrump reports whether the strain is NT.
func (s Strain) IsNotrump() bool {
	return s == StrainNotrump
}

// IsMajor reports whether the strain is hearts or spades.
func (s Strain) IsMajor() bool {
	return s == StrainHearts || s == StrainSpades
}

// IsMinor reports whether the strain is clubs or diamonds.
func (s Strain) IsMinor() bool {
	return s == StrainClubs || s == StrainDiamonds
}

// Kind tags the variety of a Call.
type Kind int

const (
	KindPass Kind = iota
	KindDouble
	KindRedouble
	KindBid
)

// Call is a single call in an auction: pass, double, redouble, or a bid
// at level 1-7 in some strain.
type Call struct {
	Kind   Kind
	Level  int // only meaningful for KindBid, 1-7
	Strain Strain
}

// Pass is the Pass call.
var Pass = Call{Kind: KindPass}

// Double is the Double call.
var Double = Call{Kind: KindDouble}

// Redouble is the Redouble call.
var Redouble = Call{Kind: KindRedouble}

// NewBid builds a bid call, validating level range.
func NewBid(level int, strain Strain) (Call, error) {
	if level < 1 || level > 7 {
		return Call{}, fmt.Errorf("bid level %d out of range [1,7]", level)
	}
	return Call{Kind: KindBid, Level: level, Strain: strain}, nil
}

// MustBid is NewBid but panics on invalid level; for literal fixtures.
func MustBid(level int, strain Strain) Call {
	c, err := NewBid(level, strain)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Call) String() string {
	switch c.Kind {
	case KindPass:
		return "Pass"
	case KindDouble:
		return "X"
	case KindRedouble:
		return "XX"
	case KindBid:
		return fmt.Sprintf("%d%s", c.Level, c.Strain)
	default:
		return "?"
	}
}

// rank maps a bid to level*10+strain, so comparing two ranks orders the
// bids in (level, strain) lexicographic order. Only meaningful for
// KindBid calls.
func (c Call) rank() int {
	return c.Level*10 + int(c.Strain)
}

// Higher reports whether c outranks other as a bid, per (level, strain)
// lexicographic order.
func (c Call) Higher(other Call) bool {
	return c.rank() > other.rank()
}

// Equal reports whether two calls are identical.
func (c Call) Equal(other Call) bool {
	return c == other
}
