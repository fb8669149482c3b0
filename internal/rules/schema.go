// Package rules implements the declarative bidding-rule schema: loading
// YAML shards into typed BidRule/Variant/Constraint data, and validating
// them at startup.
package rules

import (
	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
)

// Context tags the rule family a BidRule belongs to.
type Context string

const (
	CtxOpening                Context = "opening"
	CtxResponse                Context = "response"
	CtxOpenerRebid             Context = "opener_rebid"
	CtxResponderRebid          Context = "responder_rebid"
	CtxOvercall                Context = "overcall"
	CtxTakeoutDouble           Context = "takeout_double"
	CtxNegativeDouble          Context = "negative_double"
	CtxBalancing               Context = "balancing"
	CtxAfterBlackwood          Context = "after_blackwood"
	CtxAfterGerber             Context = "after_gerber"
	CtxPreempt                 Context = "preempt"
	CtxStrongClubContinuation  Context = "strong_club_continuation"
)

// ConstraintKind tags the recognized constraint varieties.
type ConstraintKind string

const (
	KindHCP        ConstraintKind = "hcp"
	KindLength     ConstraintKind = "length"
	KindShape      ConstraintKind = "shape"
	KindQuality    ConstraintKind = "suit_quality"
	KindBalance    ConstraintKind = "balanced"
	KindStopper    ConstraintKind = "stopper"
	KindAuction    ConstraintKind = "auction"
	// KindAceCount is not in original constraint list; it
	// generalizes the same min/max-range shape to ace counts, the one
	// hand fact Blackwood/Gerber responses key off that HCP/length
	// alone cannot express.
	KindAceCount ConstraintKind = "ace_count"
)

// Constraint is a tagged sum over the recognized constraint kinds. Only
// the fields relevant to Kind are populated; the evaluator dispatches on
// Kind.
type Constraint struct {
	Kind ConstraintKind `yaml:"kind"`

	// hcp
	MinHCP int `yaml:"min_hcp,omitempty"`
	MaxHCP int `yaml:"max_hcp,omitempty"`

	// length
	Suit      card.Suit `yaml:"-"`
	SuitName  string    `yaml:"suit,omitempty"`
	MinLength int       `yaml:"min_length,omitempty"`
	MaxLength int       `yaml:"max_length,omitempty"`

	// shape: exact multiset match on sorted lengths, e.g. [5,4,3,1]; zero
	// entries act as wildcards when Wildcard is true.
	Pattern  [4]int `yaml:"pattern,omitempty"`
	Wildcard bool   `yaml:"wildcard,omitempty"`

	// suit_quality
	MinQuality card.SuitQuality `yaml:"-"`
	QualityName string         `yaml:"min_quality,omitempty"`

	// balanced: ShapeClass stored by name
	ShapeName string `yaml:"shape_class,omitempty"`

	// stopper: reuses SuitName/Suit above

	// auction: named predicate + argument (e.g. "we_have_fit_in" + "H")
	Predicate string `yaml:"predicate,omitempty"`
	Arg       string `yaml:"arg,omitempty"`

	// ace_count: unlike hcp/length, an omitted max_aces means exactly
	// zero, not unbounded — a hand holds at most 4 aces, so every
	// ace_count constraint must set both bounds explicitly.
	MinAces int `yaml:"min_aces,omitempty"`
	MaxAces int `yaml:"max_aces,omitempty"`
}

// Variant is one disjunct of a BidRule: a priority, a human description,
// a conjunction of constraints, and per-suit genuine/artificial tags for
// the partner-profile inferencer.
type Variant struct {
	Name        string       `yaml:"name"`
	Priority    int          `yaml:"priority"`
	Description string       `yaml:"description"`
	Forcing     string       `yaml:"forcing,omitempty"` // "forcing", "invitational", "non_forcing"
	Constraints []Constraint `yaml:"constraints"`

	// GenuineSuits lists suits (by letter C/D/H/S) this variant shows
	// length in; suits not listed are either unbid by this variant or
	// shown only conventionally.
	GenuineSuits []string `yaml:"genuine_suits,omitempty"`

	// RequiresStopperSuits lists suits this variant's bid asserts a
	// stopper in. The inferencer does not read it; it takes stoppers
	// from the variant's stopper constraints.
	RequiresStopperSuits []string `yaml:"requires_stopper,omitempty"`
}

// BidRule is one call plus its disjunctive set of Variants, scoped to a
// rule context.
type BidRule struct {
	Context  Context   `yaml:"context"`
	CallTok  string    `yaml:"call"`
	Variants []Variant `yaml:"variants"`

	// Call is CallTok resolved to a call.Call by the loader.
	Call call.Call `yaml:"-"`
}

// Shard is the top-level YAML document shape: a named list of rules.
type Shard struct {
	Rules []BidRule `yaml:"rules"`
}
