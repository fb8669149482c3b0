package rules

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
	"github.com/eseidel/yarborough/internal/predicate"
)

// LoadError is the fatal, startup-time error raised when a rule shard
// fails validation.
type LoadError struct {
	Shard  string
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("rule shard %q: %s", e.Shard, e.Reason)
}

// Set is the read-only, process-wide registry of loaded rules, grouped
// by context for fast lookup by the context classifier and selector.
type Set struct {
	byContext map[Context][]*BidRule
	all       []*BidRule
}

// ByContext returns the rules registered under ctx, in shard/document
// order.
func (s *Set) ByContext(ctx Context) []*BidRule {
	return s.byContext[ctx]
}

// All returns every loaded rule, in document order.
func (s *Set) All() []*BidRule {
	return s.all
}

// Load reads every *.yaml file in dir (an fs.FS, typically an embed.FS
// or os.DirFS) and parses+validates them into a Set. Any failure is
// fatal.
func Load(dir fs.FS) (*Set, error) {
	entries, err := fs.Glob(dir, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("globbing rule shards: %w", err)
	}
	if len(entries) == 0 {
		return nil, &LoadError{Shard: "<none>", Reason: "no rule shards found"}
	}
	set := &Set{byContext: make(map[Context][]*BidRule)}
	for _, name := range entries {
		raw, err := fs.ReadFile(dir, name)
		if err != nil {
			return nil, &LoadError{Shard: name, Reason: err.Error()}
		}
		var shard Shard
		if err := yaml.Unmarshal(raw, &shard); err != nil {
			return nil, &LoadError{Shard: name, Reason: fmt.Sprintf("yaml parse: %s", err)}
		}
		for i := range shard.Rules {
			rule := &shard.Rules[i]
			if err := resolveAndValidate(rule); err != nil {
				return nil, &LoadError{Shard: name, Reason: err.Error()}
			}
			set.byContext[rule.Context] = append(set.byContext[rule.Context], rule)
			set.all = append(set.all, rule)
		}
	}
	return set, nil
}

func resolveAndValidate(rule *BidRule) error {
	c, err := call.ParseToken(rule.CallTok)
	if err != nil {
		return fmt.Errorf("rule call %q: %w", rule.CallTok, err)
	}
	rule.Call = c

	if len(rule.Variants) == 0 {
		return fmt.Errorf("rule for %q has no variants", rule.CallTok)
	}
	seenNames := make(map[string]bool, len(rule.Variants))
	seenPriority := make(map[int]bool, len(rule.Variants))
	for vi := range rule.Variants {
		v := &rule.Variants[vi]
		if v.Name == "" {
			return fmt.Errorf("rule %q: variant %d missing name", rule.CallTok, vi)
		}
		if seenNames[v.Name] {
			return fmt.Errorf("rule %q: duplicate variant name %q", rule.CallTok, v.Name)
		}
		seenNames[v.Name] = true
		if seenPriority[v.Priority] {
			return fmt.Errorf("rule %q: duplicate variant priority %d (variant %q)", rule.CallTok, v.Priority, v.Name)
		}
		seenPriority[v.Priority] = true
		for ci := range v.Constraints {
			if err := resolveConstraint(&v.Constraints[ci]); err != nil {
				return fmt.Errorf("rule %q variant %q: %w", rule.CallTok, v.Name, err)
			}
		}
	}
	return nil
}

func resolveConstraint(c *Constraint) error {
	switch c.Kind {
	case KindHCP, KindShape, KindAceCount:
		// no suit/quality to resolve
	case KindAuction:
		// Auction predicates reference named atoms; the loader validates
		// against the registry the evaluator and inferencer share at
		// evaluation time, so an unresolvable predicate name is fatal at
		// startup rather than surfacing as a per-call InvalidAuction later.
		if _, ok := predicate.Lookup(c.Predicate); !ok {
			return fmt.Errorf("unknown auction predicate %q", c.Predicate)
		}
	case KindLength, KindStopper:
		s, err := parseSuitName(c.SuitName)
		if err != nil {
			return err
		}
		c.Suit = s
	case KindQuality:
		s, err := parseSuitName(c.SuitName)
		if err != nil {
			return err
		}
		c.Suit = s
		q, err := parseQualityName(c.QualityName)
		if err != nil {
			return err
		}
		c.MinQuality = q
	case KindBalance:
		switch strings.ToLower(c.ShapeName) {
		case "balanced", "semi_balanced", "unbalanced":
		default:
			return fmt.Errorf("unknown shape_class %q", c.ShapeName)
		}
	default:
		return fmt.Errorf("unknown constraint kind %q", c.Kind)
	}
	return nil
}

func parseSuitName(name string) (card.Suit, error) {
	switch strings.ToUpper(name) {
	case "C":
		return card.Clubs, nil
	case "D":
		return card.Diamonds, nil
	case "H":
		return card.Hearts, nil
	case "S":
		return card.Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", name)
	}
}

func parseQualityName(name string) (card.SuitQuality, error) {
	switch strings.ToLower(name) {
	case "poor":
		return card.Poor, nil
	case "decent":
		return card.Decent, nil
	case "good":
		return card.Good, nil
	case "strong":
		return card.Strong, nil
	default:
		return 0, fmt.Errorf("unknown suit_quality %q", name)
	}
}
