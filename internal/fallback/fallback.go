package fallback

import (
	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
	"github.com/eseidel/yarborough/internal/profile"
)

// Forcing mirrors the forcing-status vocabulary used by rule variants,
// attached to the fallback's result and reported with the engine's
// suggestion; the inferencer does not read it.
type Forcing string

const (
	NonForcing    Forcing = "non_forcing"
	Invitational  Forcing = "invitational"
	ForcingOneRnd Forcing = "forcing"
)

// Result is what the fallback decided, plus why.
type Result struct {
	Call        call.Call
	Forcing     Forcing
	Description string
}

// passResult is returned whenever no candidate clears its bar; falling
// back to Pass must never panic or return an error.
var passResult = Result{Call: call.Pass, Forcing: NonForcing, Description: "no natural call justified; pass"}

// Strategy is the pluggable natural-bidding hook: the default is the
// sound-points + LOTT heuristic below; a double-dummy strategy could
// implement the same interface without touching the selector.
type Strategy interface {
	Decide(hand card.Hand, h call.History, vuln call.Vulnerability, partner *profile.Profile) (Result, error)
}

// Default is the sound-points + LOTT natural bidder.
type Default struct{}

// Decide implements Strategy.
func (Default) Decide(hand card.Hand, h call.History, vuln call.Vulnerability, partner *profile.Profile) (Result, error) {
	seat := h.CurrentTurn()

	if pre, ok := preemptCandidate(hand, h, vuln, seat); ok {
		return pre, nil
	}

	candidates := generateCandidates(hand, h, partner)
	if len(candidates) == 0 {
		return passResult, nil
	}
	best := applyPreferenceHierarchy(candidates, h)
	return best, nil
}

type candidate struct {
	call        call.Call
	tier        tier
	description string
	forcing     Forcing
}

type tier int

const (
	tierPartscore tier = iota
	tierGame
	tierSlam
	tierGrandSlam
)

func tierOf(level int, gameAt int) tier {
	switch {
	case level >= 7:
		return tierGrandSlam
	case level == 6:
		return tierSlam
	case level >= gameAt:
		return tierGame
	default:
		return tierPartscore
	}
}

// generateCandidates builds one candidate per plausible call: raising a
// strain partner has shown genuine length in, bidding our own 4+ card
// suit, or bidding notrump when balanced with stoppers.
func generateCandidates(hand card.Hand, h call.History, partner *profile.Profile) []candidate {
	var out []candidate
	combinedSuited := hand.HCP() + partner.MinHCP

	for _, s := range card.Suits {
		strain := call.StrainFromSuit(s)
		myLen := hand.Length(s)

		if partner.GenuineSuits[s] && partner.MinLength[s] > 0 {
			level := maxInt(levelForCombinedHCP(combinedSuited, false), lottLevel(myLen, partner.MinLength[s]))
			if c, ok := buildBid(level, strain, h); ok {
				out = append(out, candidate{call: c, tier: tierOf(level, gameLevel(strain)), description: "raise partner's suit on combined strength/fit", forcing: NonForcing})
			}
			continue
		}

		if myLen >= 4 {
			level := levelForCombinedHCP(combinedSuited, false)
			if c, ok := buildBid(level, strain, h); ok {
				out = append(out, candidate{call: c, tier: tierOf(level, gameLevel(strain)), description: "natural bid showing our own suit length", forcing: NonForcing})
			}
		}
	}

	if hand.Balanced() || hand.SemiBalanced() {
		combinedNT := hand.HCP() + partner.MinHCP
		level := levelForCombinedHCP(combinedNT, true)
		allStopped := true
		for _, s := range card.Suits {
			if !hand.Stopper(s) && !partner.Stoppers[s] {
				allStopped = false
				break
			}
		}
		if allStopped {
			if c, ok := buildBid(level, call.StrainNotrump, h); ok {
				out = append(out, candidate{call: c, tier: tierOf(level, gameLevel(call.StrainNotrump)), description: "balanced hand with all suits stopped", forcing: NonForcing})
			}
		}
	}

	return out
}

func buildBid(level int, strain call.Strain, h call.History) (call.Call, bool) {
	if level < 1 {
		return call.Call{}, false
	}
	c, err := call.NewBid(level, strain)
	if err != nil {
		return call.Call{}, false
	}
	if !h.IsLegal(c) {
		return call.Call{}, false
	}
	return c, true
}

// applyPreferenceHierarchy implements strict top-to-
// bottom tie-break: slam > game > partscore; NT slam > suited slam;
// within games, major > NT > minor always (stoppers and the known length
// of a major fit are not considered here); prefer cheaper bids
// otherwise.
func applyPreferenceHierarchy(candidates []candidate, h call.History) Result {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c, best) {
			best = c
		}
	}
	return Result{Call: best.call, Forcing: best.forcing, Description: best.description}
}

func better(a, b candidate) bool {
	if a.tier != b.tier {
		return a.tier > b.tier
	}
	switch a.tier {
	case tierSlam, tierGrandSlam:
		aNT, bNT := a.call.Strain.IsNotrump(), b.call.Strain.IsNotrump()
		if aNT != bNT {
			return aNT
		}
	case tierGame:
		aMajor, bMajor := a.call.Strain.IsMajor(), b.call.Strain.IsMajor()
		aNT, bNT := a.call.Strain.IsNotrump(), b.call.Strain.IsNotrump()
		aMinor, bMinor := a.call.Strain.IsMinor(), b.call.Strain.IsMinor()
		rank := func(major, nt, minor bool) int {
			switch {
			case major:
				return 3
			case nt:
				return 2
			case minor:
				return 1
			default:
				return 0
			}
		}
		ar, br := rank(aMajor, aNT, aMinor), rank(bMajor, bNT, bMinor)
		if ar != br {
			return ar > br
		}
	}
	// Prefer the cheaper (lower-ranked) call when otherwise tied.
	return a.call.Level*10+int(a.call.Strain) < b.call.Level*10+int(b.call.Strain)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
