// Package profile implements the PartnerProfile lattice: the
// reconstructed, monotone picture of what a seat has shown so far.
package profile

import "github.com/eseidel/yarborough/internal/card"

// Profile is the per-seat inference result: bounds on HCP, per-suit
// minimum length, inferred stoppers, and a handful of boolean flags
// used by auction predicates and the natural fallback.
type Profile struct {
	MinHCP int
	MaxHCP int

	MinLength [4]int // indexed by card.Suit

	Stoppers map[card.Suit]bool

	IsOpener       bool
	HasLimitedHand bool // true once the seat has made a call that caps or raises the floor of their HCP range
	GenuineSuits   map[card.Suit]bool // suits shown with real length by some call
	OpenedStrain   *OpenedStrain
}

// OpenedStrain records what the seat's opening bid showed, for
// predicates like partner_opened_major / partner_opened_notrump.
type OpenedStrain struct {
	IsNotrump bool
	Suit      card.Suit // valid only if !IsNotrump
	Level     int
}

// Unknown is the zero-information profile: a seat about whom nothing is
// yet known.
func Unknown() *Profile {
	return &Profile{
		MinHCP:       0,
		MaxHCP:       37,
		Stoppers:     map[card.Suit]bool{},
		GenuineSuits: map[card.Suit]bool{},
	}
}

// Candidate is one matching variant's contribution to the lattice join:
// the HCP/length bounds it declares, and whether it requires a stopper
// in a suit.
type Candidate struct {
	MinHCP          int
	MaxHCP          int
	MinLength       [4]int
	RequiresStopper map[card.Suit]bool
	GenuineSuits    map[card.Suit]bool
}

// MergeCandidates computes the union-by-minimum join over every
// candidate variant that could have produced a call: HCP bounds widen
// (min of mins, max of maxes), minimum lengths shrink (min of mins,
// missing suits treated as 0), and a stopper is inferred only when every
// candidate requires it.
func MergeCandidates(candidates []Candidate) (minHCP, maxHCP int, minLength [4]int, stoppers map[card.Suit]bool, genuine map[card.Suit]bool) {
	if len(candidates) == 0 {
		return 0, 37, [4]int{}, map[card.Suit]bool{}, map[card.Suit]bool{}
	}
	minHCP = candidates[0].MinHCP
	maxHCP = candidates[0].MaxHCP
	minLength = candidates[0].MinLength
	stoppers = map[card.Suit]bool{}
	genuine = map[card.Suit]bool{}
	for s := range candidates[0].RequiresStopper {
		stoppers[s] = true
	}
	for _, c := range candidates {
		if c.MinHCP < minHCP {
			minHCP = c.MinHCP
		}
		if c.MaxHCP > maxHCP {
			maxHCP = c.MaxHCP
		}
		for s := range minLength {
			if c.MinLength[s] < minLength[s] {
				minLength[s] = c.MinLength[s]
			}
		}
		for s := range c.GenuineSuits {
			genuine[s] = true
		}
	}
	// A stopper is retained only when EVERY candidate requires it.
	for s := range stoppers {
		for _, c := range candidates {
			if !c.RequiresStopper[s] {
				delete(stoppers, s)
				break
			}
		}
	}
	return minHCP, maxHCP, minLength, stoppers, genuine
}
