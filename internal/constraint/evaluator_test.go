package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
	"github.com/eseidel/yarborough/internal/predicate"
	"github.com/eseidel/yarborough/internal/rules"
)

func handWithAces(n int) card.Hand {
	var cards []card.Card
	aceSuits := []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs}
	for i := 0; i < n; i++ {
		cards = append(cards, card.NewCard(aceSuits[i], card.Ace))
	}
	low := []card.Rank{card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven, card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King}
	for _, s := range aceSuits {
		li := 0
		for len(cards) < 13 {
			if li >= len(low) {
				break
			}
			cards = append(cards, card.NewCard(s, low[li]))
			li++
			if len(cards) == 13 {
				break
			}
		}
		if len(cards) == 13 {
			break
		}
	}
	return card.MustNewHand(cards)
}

func aceCountVariant(minAces, maxAces int) rules.Variant {
	return rules.Variant{
		Name: "test",
		Constraints: []rules.Constraint{
			{Kind: rules.KindAceCount, MinAces: minAces, MaxAces: maxAces},
		},
	}
}

func TestAceCountExactZeroDoesNotMatchOtherCounts(t *testing.T) {
	v := aceCountVariant(0, 0)
	for n := 0; n <= 4; n++ {
		ok, err := Evaluate(handWithAces(n), predicate.Profiles{}, call.History{}, call.North, v)
		require.NoError(t, err)
		require.Equal(t, n == 0, ok, "max_aces: 0 must match only a 0-ace hand, got aces=%d", n)
	}
}

func TestAceCountExactFourMatchesOnlyFourAces(t *testing.T) {
	v := aceCountVariant(4, 4)
	for n := 0; n <= 4; n++ {
		ok, err := Evaluate(handWithAces(n), predicate.Profiles{}, call.History{}, call.North, v)
		require.NoError(t, err)
		require.Equal(t, n == 4, ok, "min/max_aces: 4 must match only a 4-ace hand, got aces=%d", n)
	}
}
