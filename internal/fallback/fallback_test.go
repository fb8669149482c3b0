package fallback

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
)

// TestDecideLOTTPreemptRuleOf234 exercises: a 7-3-2-1 hand with 5 HCP and
// a 7-card club suit, non-vulnerable in 3rd seat, bids 3C. The raw LOTT
// level (own length plus one assumed
// partner card, minus the book of six) is 2; non-vulnerable 3rd/4th
// seat licenses one extra level under the rule of 2-3-4, giving 3.
func TestDecideLOTTPreemptRuleOf234(t *testing.T) {
	hand := card.MustNewHand([]card.Card{
		card.NewCard(card.Clubs, card.King),
		card.NewCard(card.Clubs, card.Queen),
		card.NewCard(card.Clubs, card.Seven),
		card.NewCard(card.Clubs, card.Six),
		card.NewCard(card.Clubs, card.Five),
		card.NewCard(card.Clubs, card.Four),
		card.NewCard(card.Clubs, card.Three),
		card.NewCard(card.Spades, card.Nine),
		card.NewCard(card.Spades, card.Eight),
		card.NewCard(card.Spades, card.Seven),
		card.NewCard(card.Hearts, card.Six),
		card.NewCard(card.Hearts, card.Five),
		card.NewCard(card.Diamonds, card.Four),
	})
	require.Equal(t, 5, hand.HCP())
	require.Equal(t, [4]int{7, 3, 2, 1}, hand.Distribution())

	h := call.History{Dealer: call.North}
	var err error
	h, err = h.Append(call.Pass)
	require.NoError(t, err)
	h, err = h.Append(call.Pass)
	require.NoError(t, err)
	require.Equal(t, call.South, h.CurrentTurn())

	result, err := Default{}.Decide(hand, h, call.VulNone, nil)
	require.NoError(t, err)
	require.Equal(t, call.MustBid(3, call.StrainClubs), result.Call)
}

// TestDecideLOTTPreemptVulnerableNoBonus confirms the rule-of-2-3-4
// bonus does not apply when vulnerable, holding the raw LOTT level.
func TestDecideLOTTPreemptVulnerableNoBonus(t *testing.T) {
	hand := card.MustNewHand([]card.Card{
		card.NewCard(card.Clubs, card.King),
		card.NewCard(card.Clubs, card.Queen),
		card.NewCard(card.Clubs, card.Seven),
		card.NewCard(card.Clubs, card.Six),
		card.NewCard(card.Clubs, card.Five),
		card.NewCard(card.Clubs, card.Four),
		card.NewCard(card.Clubs, card.Three),
		card.NewCard(card.Spades, card.Nine),
		card.NewCard(card.Spades, card.Eight),
		card.NewCard(card.Spades, card.Seven),
		card.NewCard(card.Hearts, card.Six),
		card.NewCard(card.Hearts, card.Five),
		card.NewCard(card.Diamonds, card.Four),
	})

	h := call.History{Dealer: call.North}
	var err error
	h, err = h.Append(call.Pass)
	require.NoError(t, err)
	h, err = h.Append(call.Pass)
	require.NoError(t, err)

	result, err := Default{}.Decide(hand, h, call.VulNS, nil)
	require.NoError(t, err)
	require.Equal(t, call.MustBid(2, call.StrainClubs), result.Call)
}
