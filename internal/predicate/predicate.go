// Package predicate implements the named auction-predicate atoms
// referenced by rule variants. Each predicate is a pure function of the
// auction history and the profiles inferred for the other seats; none
// of them need the evaluated seat's own hand, which is what lets both
// the hand-aware constraint evaluator and the hand-blind partner-profile
// inferencer share this registry.
package predicate

import (
	"fmt"
	"strings"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
	"github.com/eseidel/yarborough/internal/profile"
)

// Profiles maps each seat to its currently-inferred profile.
type Profiles map[call.Position]*profile.Profile

// Func is a named auction predicate: given the auction so far, the
// profiles inferred for every seat, the seat under consideration (the
// one about to call, or whose historical call is being explained), and
// an optional string argument (typically a suit letter), it reports
// whether the predicate holds.
type Func func(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error)

var registry = map[string]Func{
	"partner_opened_notrump":       partnerOpenedNotrump,
	"partner_opened_major":         partnerOpenedMajor,
	"partner_opened_minor":         partnerOpenedMinor,
	"partner_opened_suit":          partnerOpenedSuit,
	"partner_opened_strong_club":   partnerOpenedStrongClub,
	"partner_bid_suit":             partnerBidSuit,
	"we_have_fit_in":               weHaveFitIn,
	"opponent_opened_suit":         opponentOpenedSuit,
	"opponent_opened_notrump":      opponentOpenedNotrump,
	"is_balancing_seat":            isBalancingSeat,
	"after_blackwood_ask":          afterBlackwoodAsk,
	"after_gerber_ask":             afterGerberAsk,
	"partner_made_takeout_double":  partnerMadeTakeoutDouble,
	"responder_has_not_bid":        responderHasNotBid,
	"after_stayman_ask":            afterStaymanAsk,
	"after_jacoby_transfer_hearts": afterJacobyTransferHearts,
	"after_jacoby_transfer_spades": afterJacobyTransferSpades,
}

// Lookup resolves a predicate name; used by the loader to validate
// that every rule variant references a known atom.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

func suitFromArg(arg string) (card.Suit, error) {
	switch strings.ToUpper(arg) {
	case "C":
		return card.Clubs, nil
	case "D":
		return card.Diamonds, nil
	case "H":
		return card.Hearts, nil
	case "S":
		return card.Spades, nil
	default:
		return 0, fmt.Errorf("predicate: unknown suit arg %q", arg)
	}
}

func partnerOpenedNotrump(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	p := profiles[seat.Partner()]
	return p != nil && p.OpenedStrain != nil && p.OpenedStrain.IsNotrump, nil
}

func partnerOpenedMajor(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	p := profiles[seat.Partner()]
	return p != nil && p.OpenedStrain != nil && !p.OpenedStrain.IsNotrump && p.OpenedStrain.Suit.IsMajor(), nil
}

func partnerOpenedMinor(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	p := profiles[seat.Partner()]
	return p != nil && p.OpenedStrain != nil && !p.OpenedStrain.IsNotrump && p.OpenedStrain.Suit.IsMinor() && p.OpenedStrain.Level == 1, nil
}

func partnerOpenedSuit(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	s, err := suitFromArg(arg)
	if err != nil {
		return false, err
	}
	p := profiles[seat.Partner()]
	return p != nil && p.OpenedStrain != nil && !p.OpenedStrain.IsNotrump && p.OpenedStrain.Suit == s, nil
}

// partnerOpenedStrongClub reports whether partner's opening was the
// artificial strong 2♣.
func partnerOpenedStrongClub(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	p := profiles[seat.Partner()]
	return p != nil && p.OpenedStrain != nil && !p.OpenedStrain.IsNotrump && p.OpenedStrain.Suit == card.Clubs && p.OpenedStrain.Level == 2, nil
}

// partnerBidSuit reports whether partner has made a genuine (non-
// artificial) call showing length in the named suit.
func partnerBidSuit(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	s, err := suitFromArg(arg)
	if err != nil {
		return false, err
	}
	p := profiles[seat.Partner()]
	return p != nil && p.GenuineSuits[s], nil
}

// weHaveFitIn approximates whether the partnership has an 8-card fit in
// a strain. Because this registry has no access to the evaluated seat's
// concrete hand, it cannot sum both sides' lengths directly; it checks
// partner's minimum length alone against a typical 3-card support floor,
// and relies on the hand-aware KindLength constraint on the response
// rule to supply the evaluated seat's own length.
func weHaveFitIn(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	s, err := suitFromArg(arg)
	if err != nil {
		return false, err
	}
	p := profiles[seat.Partner()]
	if p == nil {
		return false, nil
	}
	return p.MinLength[s] >= 3, nil
}

func opponentOpenedSuit(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	s, err := suitFromArg(arg)
	if err != nil {
		return false, err
	}
	for pos := call.North; pos <= call.West; pos++ {
		if pos.SameSide(seat) {
			continue
		}
		p := profiles[pos]
		if p != nil && p.OpenedStrain != nil && !p.OpenedStrain.IsNotrump && p.OpenedStrain.Suit == s {
			return true, nil
		}
	}
	return false, nil
}

func opponentOpenedNotrump(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	for pos := call.North; pos <= call.West; pos++ {
		if pos.SameSide(seat) {
			continue
		}
		p := profiles[pos]
		if p != nil && p.OpenedStrain != nil && p.OpenedStrain.IsNotrump {
			return true, nil
		}
	}
	return false, nil
}

// isBalancingSeat reports whether the auction would pass out if this
// seat passed now.
func isBalancingSeat(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	return h.WouldPassOut(), nil
}

// afterBlackwoodAsk reports whether partner's last bid was a 4NT ask
// treated as Blackwood. The heuristic is positional: the last bid was
// 4NT, it was made by partner, not by an opponent, and partner did not
// open notrump (a 4NT bid by a notrump opener is treated as natural).
func afterBlackwoodAsk(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	last, idx, ok := h.LastBid()
	if !ok || last.Kind != call.KindBid || last.Level != 4 || last.Strain != call.StrainNotrump {
		return false, nil
	}
	bidder := h.PositionOf(idx)
	if bidder != seat.Partner() {
		return false, nil
	}
	p := profiles[bidder]
	return p == nil || p.OpenedStrain == nil || !p.OpenedStrain.IsNotrump, nil
}

func afterGerberAsk(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	last, idx, ok := h.LastBid()
	if !ok || last.Kind != call.KindBid || last.Level != 4 || last.Strain != call.StrainClubs {
		return false, nil
	}
	bidder := h.PositionOf(idx)
	if bidder != seat.Partner() {
		return false, nil
	}
	p := profiles[bidder]
	return p != nil && p.OpenedStrain != nil && p.OpenedStrain.IsNotrump, nil
}

// partnerMadeTakeoutDouble is used by negative/takeout-double response
// rules: true whenever partner's most recent non-pass call was a double
// and this seat has not yet made a call that limited its own hand.
func partnerMadeTakeoutDouble(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	last, idx, ok := h.LastNonPass()
	if !ok || last.Kind != call.KindDouble {
		return false, nil
	}
	if h.PositionOf(idx) != seat.Partner() {
		return false, nil
	}
	p := profiles[seat]
	return p == nil || !p.HasLimitedHand, nil
}

// afterNotrumpAsk reports whether seat opened notrump and partner's
// most recent bid was level-2 in askedStrain — the auction shape shared
// by Stayman and both Jacoby transfer asks.
func afterNotrumpAsk(h call.History, profiles Profiles, seat call.Position, askedStrain call.Strain) bool {
	p := profiles[seat]
	if p == nil || p.OpenedStrain == nil || !p.OpenedStrain.IsNotrump {
		return false
	}
	last, idx, ok := h.LastBid()
	if !ok || last.Level != 2 || last.Strain != askedStrain {
		return false
	}
	return h.PositionOf(idx) == seat.Partner()
}

// afterStaymanAsk reports whether this seat opened notrump and partner
// has just asked Stayman (2C), so the seat must show or deny a 4-card
// major.
func afterStaymanAsk(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	return afterNotrumpAsk(h, profiles, seat, call.StrainClubs), nil
}

// afterJacobyTransferHearts reports whether this seat opened notrump
// and partner has just transferred to hearts (2D), so the seat must
// complete the transfer by bidding 2H (GLOSSARY "Jacoby transfer").
func afterJacobyTransferHearts(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	return afterNotrumpAsk(h, profiles, seat, call.StrainDiamonds), nil
}

// afterJacobyTransferSpades reports whether this seat opened notrump
// and partner has just transferred to spades (2H), so the seat must
// complete the transfer by bidding 2S.
func afterJacobyTransferSpades(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	return afterNotrumpAsk(h, profiles, seat, call.StrainHearts), nil
}

// responderHasNotBid reports whether the given seat has made no calls
// yet in the auction (used to distinguish an opening bid from a later
// rebid sharing the same call token).
func responderHasNotBid(h call.History, profiles Profiles, seat call.Position, arg string) (bool, error) {
	return len(h.CallsBy(seat)) == 0, nil
}
