package card

import (
	"fmt"
	"sort"
)

// InvalidHand is the programmer-error surfaced when a hand is built with
// the wrong number of cards or with duplicates.
type InvalidHand struct {
	Reason string
}

func (e *InvalidHand) Error() string {
	return fmt.Sprintf("invalid hand: %s", e.Reason)
}

// Hand is an immutable 13-card bridge hand.
type Hand struct {
	cards [13]Card
	bySuit [4][]Rank // ranks held in each suit, descending
}

// NewHand builds a hand from exactly 13 distinct card identifiers.
func NewHand(cards []Card) (Hand, error) {
	if len(cards) != 13 {
		return Hand{}, &InvalidHand{Reason: fmt.Sprintf("need 13 cards, got %d", len(cards))}
	}
	seen := make(map[int]bool, 13)
	var h Hand
	for i, c := range cards {
		if seen[c.ID()] {
			return Hand{}, &InvalidHand{Reason: fmt.Sprintf("duplicate card %s", c)}
		}
		seen[c.ID()] = true
		h.cards[i] = c
		h.bySuit[c.Suit] = append(h.bySuit[c.Suit], c.Rank)
	}
	for s := range h.bySuit {
		sort.Slice(h.bySuit[s], func(i, j int) bool { return h.bySuit[s][i] > h.bySuit[s][j] })
	}
	return h, nil
}

// MustNewHand panics on invalid input; for use in tests and embedded
// fixtures where the 13-card invariant is a compile-time guarantee.
func MustNewHand(cards []Card) Hand {
	h, err := NewHand(cards)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns the 13 cards in the hand in construction order.
func (h Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards[:])
	return out
}

// Length returns the number of cards held in suit.
func (h Hand) Length(suit Suit) int {
	return len(h.bySuit[suit])
}

// Ranks returns the ranks held in suit, descending (Ace first).
func (h Hand) Ranks(suit Suit) []Rank {
	out := make([]Rank, len(h.bySuit[suit]))
	copy(out, h.bySuit[suit])
	return out
}

// HCP is the hand's total high-card points.
func (h Hand) HCP() int {
	total := 0
	for _, c := range h.cards {
		total += c.Rank.HCP()
	}
	return total
}

// AceCount is the number of aces in the hand, used by ace-asking
// conventions (Blackwood, Gerber) whose responses encode a count rather
// than an HCP range.
func (h Hand) AceCount() int {
	n := 0
	for _, c := range h.cards {
		if c.Rank == Ace {
			n++
		}
	}
	return n
}

// Distribution returns the suit lengths sorted descending (the hand's
// "shape", e.g. 5-4-3-1).
func (h Hand) Distribution() [4]int {
	var lens [4]int
	for s := range Suits {
		lens[s] = h.Length(Suits[s])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lens[:])))
	return lens
}

// Void reports whether the hand holds no cards in some suit.
func (h Hand) Void() bool {
	for _, s := range Suits {
		if h.Length(s) == 0 {
			return true
		}
	}
	return false
}

// Balanced reports whether the hand has no void, no singleton, and at
// most one doubleton (4-3-3-3, 4-4-3-2, 5-3-3-2).
func (h Hand) Balanced() bool {
	d := h.Distribution()
	if d[3] == 0 || d[3] == 1 {
		return false
	}
	doubletons := 0
	for _, n := range d {
		if n == 2 {
			doubletons++
		}
	}
	return doubletons <= 1
}

// SemiBalanced reports whether the hand is not itself Balanced, has no
// void, and either has exactly two doubletons and no singleton (5-4-2-2,
// 6-3-2-2) or has one singleton and at most one doubleton (4-4-4-1,
// 5-4-3-1, 5-5-2-1).
func (h Hand) SemiBalanced() bool {
	if h.Balanced() {
		return false
	}
	d := h.Distribution()
	if d[3] == 0 {
		return false
	}
	doubletons, singletons := 0, 0
	for _, n := range d {
		switch n {
		case 2:
			doubletons++
		case 1:
			singletons++
		}
	}
	if singletons > 1 {
		return false
	}
	if singletons == 1 && doubletons > 1 {
		return false
	}
	if singletons == 0 && doubletons > 2 {
		return false
	}
	return true
}

// ShapeClass enumerates the hand-shape constraint kinds rules can match on.
type ShapeClass int

const (
	Unbalanced ShapeClass = iota
	SemiBalancedShape
	BalancedShape
)

// Shape classifies the hand for the "Hand shape class" constraint kind.
func (h Hand) Shape() ShapeClass {
	switch {
	case h.Balanced():
		return BalancedShape
	case h.SemiBalanced():
		return SemiBalancedShape
	default:
		return Unbalanced
	}
}

func (s ShapeClass) String() string {
	switch s {
	case BalancedShape:
		return "balanced"
	case SemiBalancedShape:
		return "semi-balanced"
	default:
		return "unbalanced"
	}
}
