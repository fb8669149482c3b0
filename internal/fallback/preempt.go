package fallback

import (
	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
)

// preemptMaxHCP bounds the natural fallback's own preempt path: strong
// hands are left to the rule set's dedicated preempt variants,
// this path only ever fires for genuinely weak long-suit hands.
const preemptMaxHCP = 10

// preemptCandidate looks for a long, weak single-suited hand before any
// partner information exists and bids it at the LOTT-implied level, bumped
// by the rule-of-2-3-4 vulnerability/seat adjustment. It only applies when the seat has made no earlier call
// and nobody has yet opened, i.e. it is this seat's first decision.
func preemptCandidate(hand card.Hand, h call.History, vuln call.Vulnerability, seat call.Position) (Result, bool) {
	if len(h.CallsBy(seat)) > 0 {
		return Result{}, false
	}
	if _, _, opened := h.LastBid(); opened {
		return Result{}, false
	}
	if hand.HCP() > preemptMaxHCP {
		return Result{}, false
	}

	longSuit, length, ok := longestSuit(hand)
	if !ok || length < 7 {
		return Result{}, false
	}

	vulnerable := vuln.IsVulnerable(seat)

	seatNumber := ((int(seat) - int(h.Dealer) + 4) % 4) + 1
	bonus := preemptRuleOf234Bonus(vulnerable, seatNumber == 3 || seatNumber == 4)

	// LOTT assumes partner holds at least one card in the suit even
	// before any partner information exists, so the raw level is length-5, not
	// length-6; the rule-of-2-3-4 bonus then stacks on top of that.
	level := length - 5 + bonus
	if level < 2 {
		level = 2
	}
	if level > 7 {
		level = 7
	}

	strain := call.StrainFromSuit(longSuit)
	c, ok := buildBid(level, strain, h)
	if !ok {
		return Result{}, false
	}
	return Result{Call: c, Forcing: NonForcing, Description: "weak preempt on long suit length"}, true
}

func longestSuit(hand card.Hand) (card.Suit, int, bool) {
	best := -1
	var bestSuit card.Suit
	for _, s := range card.Suits {
		l := hand.Length(s)
		if l > best {
			best = l
			bestSuit = s
		}
	}
	if best < 0 {
		return card.Clubs, 0, false
	}
	return bestSuit, best, true
}
