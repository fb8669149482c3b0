// Package selector implements the rule selector: among all legal
// calls whose variants match the current hand, it picks the one with
// the best priority.
package selector

import (
	"sort"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
	"github.com/eseidel/yarborough/internal/constraint"
	"github.com/eseidel/yarborough/internal/context"
	"github.com/eseidel/yarborough/internal/predicate"
	"github.com/eseidel/yarborough/internal/rules"
)

// Selection is the winning (call, variant) pair plus the rule it came
// from, or ok=false if no variant matched anything.
type Selection struct {
	Rule    *rules.BidRule
	Variant rules.Variant
}

// docOrder records the index at which each *rules.BidRule first appears
// in the loaded rule set, to break priority ties by document order.
type docOrder map[*rules.BidRule]int

func buildDocOrder(set *rules.Set) docOrder {
	order := docOrder{}
	for i, r := range set.All() {
		order[r] = i
	}
	return order
}

// Select runs the selection algorithm for the seat whose turn it is in h,
// given hand and the profiles inferred for all four seats by the inferencer.
func Select(hand card.Hand, h call.History, profiles predicate.Profiles, set *rules.Set) (Selection, bool, error) {
	seat := h.CurrentTurn()
	tags := context.Classify(h)
	order := buildDocOrder(set)

	type win struct {
		rule    *rules.BidRule
		variant rules.Variant
	}
	var wins []win

	seenRule := map[*rules.BidRule]bool{}
	for _, tag := range tags {
		for _, rule := range set.ByContext(tag) {
			if seenRule[rule] {
				continue
			}
			if !h.IsLegal(rule.Call) {
				continue
			}
			seenRule[rule] = true

			variants := append([]rules.Variant(nil), rule.Variants...)
			sort.SliceStable(variants, func(i, j int) bool { return variants[i].Priority > variants[j].Priority })

			for _, v := range variants {
				ok, err := constraint.Evaluate(hand, profiles, h, seat, v)
				if err != nil {
					return Selection{}, false, err
				}
				if ok {
					wins = append(wins, win{rule: rule, variant: v})
					break // first (highest-priority) match wins for this rule
				}
			}
		}
	}

	if len(wins) == 0 {
		return Selection{}, false, nil
	}

	best := wins[0]
	for _, w := range wins[1:] {
		switch {
		case w.variant.Priority > best.variant.Priority:
			best = w
		case w.variant.Priority == best.variant.Priority && order[w.rule] < order[best.rule]:
			best = w
		}
	}
	return Selection{Rule: best.rule, Variant: best.variant}, true, nil
}
