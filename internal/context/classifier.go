// Package context implements the context classifier: from the
// auction so far, it decides which rule families apply to the seat
// about to call. A seat's context is a set of tags — it
// can be simultaneously, e.g., a responder in competition.
package context

import (
	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/rules"
)

// Tag is one of the recognized context tags a seat's call can be made under.
type Tag = rules.Context

// Classify returns every context tag that applies to the seat whose
// turn it is to call in h.
func Classify(h call.History) []Tag {
	seat := h.CurrentTurn()
	var tags []Tag

	if len(h.Calls) == 0 {
		return []Tag{rules.CtxOpening}
	}

	opener, openerIdx, hasOpener := findOpener(h)

	if !hasOpener {
		// Nobody has opened; it is still an opening decision for this seat.
		tags = append(tags, rules.CtxOpening)
		if h.WouldPassOut() {
			tags = append(tags, rules.CtxBalancing)
		}
		return tags
	}

	switch {
	case opener == seat:
		// This seat opened; anything beyond its first call is a rebid.
		tags = append(tags, rules.CtxOpenerRebid)
	case opener.Partner() == seat:
		if len(h.CallsBy(seat)) == 0 {
			tags = append(tags, rules.CtxResponse)
		} else {
			tags = append(tags, rules.CtxResponderRebid)
		}
	default:
		// RHO or partner-of-RHO relative to the opener: an overcall seat.
		if len(h.CallsBy(seat)) == 0 {
			tags = append(tags, rules.CtxOvercall)
		}
	}

	if openerBidStrongClub(h, openerIdx) {
		tags = append(tags, rules.CtxStrongClubContinuation)
	}
	if lastWasBlackwoodAsk(h) {
		tags = append(tags, rules.CtxAfterBlackwood)
	}
	if lastWasGerberAsk(h) {
		tags = append(tags, rules.CtxAfterGerber)
	}
	if lastWasDoubleByPartner(h, seat) {
		if isNegativeDoubleSituation(h) {
			tags = append(tags, rules.CtxNegativeDouble)
		} else {
			tags = append(tags, rules.CtxTakeoutDouble)
		}
	}
	if openerLevel(h, openerIdx) >= 2 && isPreemptLevel(h, openerIdx) {
		tags = append(tags, rules.CtxPreempt)
	}
	if h.WouldPassOut() {
		tags = append(tags, rules.CtxBalancing)
	}

	return tags
}

func findOpener(h call.History) (call.Position, int, bool) {
	for i, c := range h.Calls {
		if c.Kind == call.KindBid {
			return h.PositionOf(i), i, true
		}
	}
	return 0, -1, false
}

func openerBidStrongClub(h call.History, openerIdx int) bool {
	if openerIdx < 0 {
		return false
	}
	c := h.Calls[openerIdx]
	return c.Kind == call.KindBid && c.Level == 2 && c.Strain == call.StrainClubs
}

func openerLevel(h call.History, openerIdx int) int {
	if openerIdx < 0 {
		return 0
	}
	return h.Calls[openerIdx].Level
}

// isPreemptLevel reports whether the opening bid was a weak two or a
// 3-level-or-higher preempt (not the strong artificial 2♣, handled
// separately via CtxStrongClubContinuation).
func isPreemptLevel(h call.History, openerIdx int) bool {
	if openerBidStrongClub(h, openerIdx) {
		return false
	}
	return openerLevel(h, openerIdx) >= 2
}

func lastWasBlackwoodAsk(h call.History) bool {
	last, _, ok := h.LastBid()
	return ok && last.Kind == call.KindBid && last.Level == 4 && last.Strain == call.StrainNotrump
}

// lastWasGerberAsk reports whether the last bid was 4C made after some
// earlier 1NT or 2NT bid by any seat in the auction (Gerber asks for aces the way
// Blackwood does, but over a notrump-based auction rather than a
// suited one).
func lastWasGerberAsk(h call.History) bool {
	last, _, ok := h.LastBid()
	if !ok || last.Kind != call.KindBid || last.Level != 4 || last.Strain != call.StrainClubs {
		return false
	}
	for _, c := range h.Calls {
		if c.Kind == call.KindBid && c.Strain == call.StrainNotrump && (c.Level == 1 || c.Level == 2) {
			return true
		}
	}
	return false
}

func lastWasDoubleByPartner(h call.History, seat call.Position) bool {
	last, idx, ok := h.LastNonPass()
	return ok && last.Kind == call.KindDouble && h.PositionOf(idx) == seat.Partner()
}

// isNegativeDoubleSituation distinguishes a negative double (partner
// doubling after RHO's overcall of our own side's opening) from a
// takeout double (partner doubling an opening bid with no prior call of
// ours on the auction). Heuristic: a negative double situation exists
// when the partnership (not the opponents) made the first bid of the
// auction.
func isNegativeDoubleSituation(h call.History) bool {
	_, openerIdx, ok := findOpener(h)
	if !ok {
		return false
	}
	doubler, _, _ := h.LastNonPass()
	_ = doubler
	seat := h.CurrentTurn()
	opener := h.PositionOf(openerIdx)
	return opener.SameSide(seat)
}
