// Package constraint implements the constraint evaluator: a pure
// function deciding whether a hand (plus the inferred partner profile
// and auction) satisfies a single rule variant.
package constraint

import (
	"fmt"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
	"github.com/eseidel/yarborough/internal/predicate"
	"github.com/eseidel/yarborough/internal/profile"
	"github.com/eseidel/yarborough/internal/rules"
)

// Evaluate reports whether hand, together with the profiles inferred
// for the other seats and the auction so far, satisfies every
// constraint in variant. It is side-effect-free: it never mutates profiles.
func Evaluate(hand card.Hand, profiles predicate.Profiles, h call.History, seat call.Position, variant rules.Variant) (bool, error) {
	for _, c := range variant.Constraints {
		ok, err := evaluateOne(hand, profiles, h, seat, c)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func evaluateOne(hand card.Hand, profiles predicate.Profiles, h call.History, seat call.Position, c rules.Constraint) (bool, error) {
	switch c.Kind {
	case rules.KindHCP:
		hcp := hand.HCP()
		return hcp >= c.MinHCP && hcp <= effectiveMax(c.MaxHCP), nil
	case rules.KindLength:
		n := hand.Length(c.Suit)
		return n >= c.MinLength && n <= effectiveMaxLen(c.MaxLength), nil
	case rules.KindShape:
		return matchesShape(hand.Distribution(), c), nil
	case rules.KindQuality:
		return hand.SuitQualityOf(c.Suit) >= c.MinQuality, nil
	case rules.KindBalance:
		return matchesShapeClass(hand.Shape(), c.ShapeName), nil
	case rules.KindStopper:
		return hand.Stopper(c.Suit), nil
	case rules.KindAceCount:
		aces := hand.AceCount()
		return aces >= c.MinAces && aces <= c.MaxAces, nil
	case rules.KindAuction:
		fn, ok := predicate.Lookup(c.Predicate)
		if !ok {
			return false, fmt.Errorf("unknown auction predicate %q", c.Predicate)
		}
		return fn(h, profiles, seat, c.Arg)
	default:
		return false, fmt.Errorf("unknown constraint kind %q", c.Kind)
	}
}

// effectiveMax treats an unset (zero) MaxHCP as "no upper bound".
func effectiveMax(max int) int {
	if max == 0 {
		return 37
	}
	return max
}

func effectiveMaxLen(max int) int {
	if max == 0 {
		return 13
	}
	return max
}

// matchesShape compares a sorted-descending distribution against a
// pattern, honoring wildcards (0 entries match any length when
// Wildcard is set).
func matchesShape(dist [4]int, c rules.Constraint) bool {
	for i, want := range c.Pattern {
		if c.Wildcard && want == 0 {
			continue
		}
		if dist[i] != want {
			return false
		}
	}
	return true
}

func matchesShapeClass(shape card.ShapeClass, name string) bool {
	switch name {
	case "balanced":
		return shape == card.BalancedShape
	case "semi_balanced":
		return shape == card.SemiBalancedShape
	case "unbalanced":
		return shape == card.Unbalanced
	default:
		return false
	}
}
