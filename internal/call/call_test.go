package call

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormatTokenRoundTrip(t *testing.T) {
	calls := []Call{Pass, Double, Redouble, MustBid(1, StrainClubs), MustBid(7, StrainNotrump), MustBid(3, StrainHearts)}
	for _, c := range calls {
		tok := FormatToken(c)
		parsed, err := ParseToken(tok)
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
}

func TestParseTokenCaseInsensitive(t *testing.T) {
	c, err := ParseToken("1n")
	require.NoError(t, err)
	require.Equal(t, MustBid(1, StrainNotrump), c)

	c, err = ParseToken("p")
	require.NoError(t, err)
	require.Equal(t, Pass, c)

	c, err = ParseToken("xx")
	require.NoError(t, err)
	require.Equal(t, Redouble, c)
}

func TestBidLegality(t *testing.T) {
	h := History{Dealer: North}
	require.True(t, h.IsLegal(MustBid(1, StrainClubs)))

	h, err := h.Append(MustBid(1, StrainClubs))
	require.NoError(t, err)
	require.False(t, h.IsLegal(MustBid(1, StrainClubs)), "same bid is not higher")
	require.True(t, h.IsLegal(MustBid(1, StrainDiamonds)))
	require.True(t, h.IsLegal(Pass))
	require.False(t, h.IsLegal(Redouble), "no double to redouble")
}

func TestDoubleLegality(t *testing.T) {
	h := History{Dealer: North}
	h, _ = h.Append(MustBid(1, StrainClubs)) // N bids
	h, _ = h.Append(Double)                  // E doubles
	h, _ = h.Append(Pass)                    // S passes
	require.False(t, h.IsLegal(Double), "W cannot double their own side's double")
}

func TestDoubleByOpponent(t *testing.T) {
	h := History{Dealer: North}
	h, _ = h.Append(MustBid(1, StrainClubs)) // N bids
	require.True(t, h.IsLegal(Double), "E (opponent) may double")
	h, err := h.Append(Double)
	require.NoError(t, err)
	require.False(t, h.IsLegal(Double), "no double of a double")
	require.True(t, h.IsLegal(Redouble), "S, on the doubled N/S side, may redouble")
}

func TestRedoubleOnlyByDoubledSide(t *testing.T) {
	h := History{Dealer: North}
	h, _ = h.Append(MustBid(1, StrainClubs)) // N
	h, _ = h.Append(Double)                  // E doubles N's bid
	// S to call: S is partner of N (doubled side); either N or S may redouble a double of their side's bid
	require.True(t, h.IsLegal(Redouble), "S, N's partner, may redouble")
	h, err := h.Append(Redouble)
	require.NoError(t, err)
	require.False(t, h.IsLegal(Redouble))
	require.False(t, h.IsLegal(Double))
}

func TestAuctionCompletion(t *testing.T) {
	h := History{Dealer: North}
	toks := "1C,P,1H,P,1N,P,2N,P,3N,P,P,P"
	calls, err := ParseTokens(toks)
	require.NoError(t, err)
	for _, c := range calls {
		h, err = h.Append(c)
		require.NoError(t, err)
	}
	require.True(t, h.IsComplete())
	require.Equal(t, 12, len(h.Calls))
}

func TestAllPassCompletesAtFour(t *testing.T) {
	h := History{Dealer: North}
	for i := 0; i < 4; i++ {
		var err error
		h, err = h.Append(Pass)
		require.NoError(t, err)
	}
	require.True(t, h.IsComplete())
}

func TestDealerForBoard(t *testing.T) {
	cases := map[int]Position{1: North, 2: East, 3: South, 4: West, 5: North, 16: West}
	for board, want := range cases {
		got, err := DealerForBoard(board)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
