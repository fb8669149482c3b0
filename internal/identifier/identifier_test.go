package identifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
)

// fourEvenHands deals the 52-card pack 13 apiece, in ascending card-id
// order, to N/E/S/W in turn: a deterministic fixture deal with no
// bearing on bidding sense, only on codec round-tripping.
func fourEvenHands(t *testing.T) [4]card.Hand {
	t.Helper()
	var cards [4][]card.Card
	for id := 0; id < 52; id++ {
		c, err := card.CardFromID(id)
		require.NoError(t, err)
		cards[id%4] = append(cards[id%4], c)
	}
	var hands [4]card.Hand
	for p := 0; p < 4; p++ {
		h, err := card.NewHand(cards[p])
		require.NoError(t, err)
		hands[p] = h
	}
	return hands
}

func TestEncodeDecodeDealRoundTrip(t *testing.T) {
	hands := fourEvenHands(t)
	hex, err := encodeDeal(hands)
	require.NoError(t, err)
	require.Len(t, hex, 26)

	decoded, err := decodeDeal(hex)
	require.NoError(t, err)
	require.Equal(t, hands, decoded)
}

func TestParseFormatIdentifierRoundTrip(t *testing.T) {
	hands := fourEvenHands(t)
	hex, err := encodeDeal(hands)
	require.NoError(t, err)

	id := Identifier{
		BoardNumber:   3,
		Dealer:        call.South,
		Vulnerability: call.VulEW,
		Deal:          hands,
		History:       call.History{Dealer: call.South},
	}
	id.History, err = id.History.Append(call.MustBid(1, call.StrainSpades))
	require.NoError(t, err)
	id.History, err = id.History.Append(call.Pass)
	require.NoError(t, err)

	s, err := Format(id)
	require.NoError(t, err)

	parsed, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, id.BoardNumber, parsed.BoardNumber)
	require.Equal(t, id.Dealer, parsed.Dealer)
	require.Equal(t, id.Vulnerability, parsed.Vulnerability)
	require.Equal(t, id.Deal, parsed.Deal)
	require.Equal(t, id.History, parsed.History)
}

func TestParseRejectsBadBoardNumber(t *testing.T) {
	hands := fourEvenHands(t)
	hex, err := encodeDeal(hands)
	require.NoError(t, err)

	_, err = Parse("17-" + hex)
	require.Error(t, err)
	var invalid *InvalidIdentifier
	require.ErrorAs(t, err, &invalid)
}

func TestParseRejectsShortHex(t *testing.T) {
	_, err := Parse("1-ABC")
	require.Error(t, err)
}

func TestParseRejectsMissingSeparator(t *testing.T) {
	_, err := Parse("1")
	require.Error(t, err)
}

func TestDecodeDealRejectsUnbalancedHand(t *testing.T) {
	// All 52 cards assigned to North (hex digit 0 packs two North cards).
	hex := ""
	for i := 0; i < 26; i++ {
		hex += "0"
	}
	_, err := decodeDeal(hex)
	require.Error(t, err)
}
