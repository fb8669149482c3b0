// Package inference implements the partner-profile inferencer:
// from each prior call by each seat, it reconstructs the weakest
// profile compatible with every rule variant that could have produced
// that call.
package inference

import (
	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
	"github.com/eseidel/yarborough/internal/context"
	"github.com/eseidel/yarborough/internal/predicate"
	"github.com/eseidel/yarborough/internal/profile"
	"github.com/eseidel/yarborough/internal/rules"
)

// InferAll replays every call made so far in h and returns the profile
// inferred for each of the four seats, as known immediately before the
// next call.
func InferAll(h call.History, set *rules.Set) (predicate.Profiles, error) {
	profiles := predicate.Profiles{
		call.North: profile.Unknown(),
		call.East:  profile.Unknown(),
		call.South: profile.Unknown(),
		call.West:  profile.Unknown(),
	}
	for i := range h.Calls {
		prefix := call.History{Dealer: h.Dealer, Calls: h.Calls[:i]}
		seat := prefix.CurrentTurn()
		c := h.Calls[i]
		if err := applyCall(prefix, set, profiles, seat, c); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func applyCall(prefix call.History, set *rules.Set, profiles predicate.Profiles, seat call.Position, c call.Call) error {
	if c.Kind == call.KindPass {
		return nil
	}

	candidates, genuineStrainOpen := gatherCandidates(prefix, set, profiles, seat, c)

	minHCP, maxHCP, minLength, stoppers, genuine := profile.MergeCandidates(candidates)

	p := profiles[seat]
	if len(candidates) == 0 {
		// No rule variant matched; fall back to the weakest safe
		// inference so the lattice never narrows on bad information.
		minHCP, maxHCP, minLength, stoppers, genuine = defaultInference(c)
	}

	narrow(p, minHCP, maxHCP, minLength, stoppers, genuine)

	if genuineStrainOpen != nil {
		p.IsOpener = true
		p.OpenedStrain = genuineStrainOpen
	}
	if maxHCP < 37 || minHCP > 0 {
		p.HasLimitedHand = true
	}
	return nil
}

func gatherCandidates(prefix call.History, set *rules.Set, profiles predicate.Profiles, seat call.Position, c call.Call) ([]profile.Candidate, *profile.OpenedStrain) {
	var candidates []profile.Candidate
	var opened *profile.OpenedStrain

	tags := context.Classify(prefix)
	seenRule := map[*rules.BidRule]bool{}
	for _, tag := range tags {
		for _, rule := range set.ByContext(tag) {
			if seenRule[rule] || rule.Call != c {
				continue
			}
			seenRule[rule] = true
			for _, v := range rule.Variants {
				ok, err := VariantAuctionMatch(prefix, profiles, seat, v)
				if err != nil || !ok {
					continue
				}
				candidates = append(candidates, candidateFromVariant(v))
				if tag == rules.CtxOpening && opened == nil {
					opened = openedStrainFromCall(c)
				}
			}
		}
	}
	return candidates, opened
}

// VariantAuctionMatch evaluates only the auction-predicate constraints
// of v (the hand-based constraints are exactly what we are trying to
// infer, so they cannot gate candidacy here). The engine facade
// reuses this for InterpretCalls, which lists schema-level
// interpretations without a concrete hand.
func VariantAuctionMatch(h call.History, profiles predicate.Profiles, seat call.Position, v rules.Variant) (bool, error) {
	for _, c := range v.Constraints {
		if c.Kind != rules.KindAuction {
			continue
		}
		fn, ok := predicate.Lookup(c.Predicate)
		if !ok {
			continue
		}
		match, err := fn(h, profiles, seat, c.Arg)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

func candidateFromVariant(v rules.Variant) profile.Candidate {
	cand := profile.Candidate{MinHCP: 0, MaxHCP: 37, RequiresStopper: map[card.Suit]bool{}, GenuineSuits: map[card.Suit]bool{}}
	for _, c := range v.Constraints {
		switch c.Kind {
		case rules.KindHCP:
			cand.MinHCP = c.MinHCP
			if c.MaxHCP != 0 {
				cand.MaxHCP = c.MaxHCP
			}
		case rules.KindLength:
			if c.MinLength > cand.MinLength[c.Suit] {
				cand.MinLength[c.Suit] = c.MinLength
			}
		case rules.KindStopper:
			cand.RequiresStopper[c.Suit] = true
		}
	}
	for _, s := range v.GenuineSuits {
		suit, err := suitFromLetter(s)
		if err == nil {
			cand.GenuineSuits[suit] = true
		}
	}
	return cand
}

func suitFromLetter(s string) (card.Suit, error) {
	switch s {
	case "C":
		return card.Clubs, nil
	case "D":
		return card.Diamonds, nil
	case "H":
		return card.Hearts, nil
	case "S":
		return card.Spades, nil
	}
	var zero card.Suit
	return zero, &unknownSuitError{s}
}

type unknownSuitError struct{ s string }

func (e *unknownSuitError) Error() string { return "unknown suit letter " + e.s }

func openedStrainFromCall(c call.Call) *profile.OpenedStrain {
	if c.Kind != call.KindBid {
		return nil
	}
	if c.Strain == call.StrainNotrump {
		return &profile.OpenedStrain{IsNotrump: true, Level: c.Level}
	}
	return &profile.OpenedStrain{Suit: c.Strain.Suit(), Level: c.Level}
}

// defaultInference is the conservative, monotone-safe fallback used
// when a call matched no rule variant at all (e.g. a natural call
// chosen by the fallback rather than a convention): a bid shows at
// least a 4-card suit with unbounded HCP, a double shows general
// values, a redouble shows extra strength.
func defaultInference(c call.Call) (minHCP, maxHCP int, minLength [4]int, stoppers, genuine map[card.Suit]bool) {
	stoppers = map[card.Suit]bool{}
	genuine = map[card.Suit]bool{}
	switch c.Kind {
	case call.KindBid:
		if !c.Strain.IsNotrump() {
			minLength[c.Strain.Suit()] = 4
			genuine[c.Strain.Suit()] = true
		}
		return 0, 37, minLength, stoppers, genuine
	case call.KindDouble:
		return 12, 37, minLength, stoppers, genuine
	case call.KindRedouble:
		return 10, 37, minLength, stoppers, genuine
	default:
		return 0, 37, minLength, stoppers, genuine
	}
}

// narrow intersects the seat's running profile p with the bounds
// established by this single call: HCP range shrinks (max of mins, min
// of maxes), minimum suit lengths only grow, and a stopper once shown
// stays shown. This is the across-calls sequential narrowing described
// by monotonicity property.
func narrow(p *profile.Profile, minHCP, maxHCP int, minLength [4]int, stoppers, genuine map[card.Suit]bool) {
	if minHCP > p.MinHCP {
		p.MinHCP = minHCP
	}
	if maxHCP < p.MaxHCP {
		p.MaxHCP = maxHCP
	}
	for s := range p.MinLength {
		if minLength[s] > p.MinLength[s] {
			p.MinLength[s] = minLength[s]
		}
	}
	for s := range stoppers {
		p.Stoppers[s] = true
	}
	for s := range genuine {
		p.GenuineSuits[s] = true
	}
}
