// Package engine implements the engine facade: the three public
// operations SuggestCall, InterpretCalls, and NextCall that wire the
// card, call, rules, context, inference, selector, and fallback
// packages together. It logs with charmbracelet/log the way
// internal/client and cmd/pokerforbots logged in the host corpus.
package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/context"
	"github.com/eseidel/yarborough/internal/fallback"
	"github.com/eseidel/yarborough/internal/identifier"
	"github.com/eseidel/yarborough/internal/inference"
	"github.com/eseidel/yarborough/internal/predicate"
	"github.com/eseidel/yarborough/internal/rules"
	"github.com/eseidel/yarborough/internal/selector"
)

// Interpretation is the facade's result type: the chosen (or merely
// plausible) call, the rule variant that explains it, and its forcing
// status.
type Interpretation struct {
	Call        call.Call
	RuleName    string
	Description string
	Forcing     string
}

// Engine wires the read-only rule set to the rest of the pipeline.
// It holds no per-request state: every operation below is a pure
// function of its arguments plus the immutable rule set.
type Engine struct {
	rules    *rules.Set
	fallback fallback.Strategy
	logger   *log.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithFallbackStrategy overrides the default sound-points+LOTT natural
// bidder with a pluggable strategy (e.g. a double-dummy-based strategy).
func WithFallbackStrategy(s fallback.Strategy) Option {
	return func(e *Engine) { e.fallback = s }
}

// WithLogger overrides the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an Engine over a loaded rule Set.
func New(set *rules.Set, opts ...Option) *Engine {
	e := &Engine{
		rules:    set,
		fallback: fallback.Default{},
		logger:   log.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// NextCall is SuggestCall's thin wrapper returning just the call, used
// for robot turns in the UI.
func (e *Engine) NextCall(id string) (call.Call, error) {
	interp, err := e.SuggestCall(id)
	if err != nil {
		return call.Call{}, err
	}
	return interp.Call, nil
}

// SuggestCall parses a board identifier, computes the current seat and
// hand, runs the rule selector, and falls back to the natural
// bidder when no rule matches.
func (e *Engine) SuggestCall(id string) (Interpretation, error) {
	parsed, err := identifier.Parse(id)
	if err != nil {
		return Interpretation{}, err
	}
	if parsed.History.IsComplete() {
		return Interpretation{}, &call.InvalidAuction{Reason: "auction is already complete, no further call is possible"}
	}

	seat := parsed.History.CurrentTurn()
	hand := parsed.Deal[seat]
	logger := e.logger.With("seat", seat, "board", parsed.BoardNumber)

	profiles, err := inference.InferAll(parsed.History, e.rules)
	if err != nil {
		return Interpretation{}, fmt.Errorf("inferring partner profiles: %w", err)
	}

	sel, ok, err := selector.Select(hand, parsed.History, profiles, e.rules)
	if err != nil {
		return Interpretation{}, fmt.Errorf("selecting rule: %w", err)
	}
	if ok {
		logger.Debug("rule matched", "call", sel.Rule.Call, "variant", sel.Variant.Name)
		return Interpretation{
			Call:        sel.Rule.Call,
			RuleName:    sel.Variant.Name,
			Description: sel.Variant.Description,
			Forcing:     sel.Variant.Forcing,
		}, nil
	}

	logger.Debug("no rule matched, running natural fallback")
	res, err := e.fallback.Decide(hand, parsed.History, parsed.Vulnerability, profiles[seat.Partner()])
	if err != nil {
		return Interpretation{}, fmt.Errorf("natural fallback: %w", err)
	}
	return Interpretation{
		Call:        res.Call,
		RuleName:    "natural_fallback",
		Description: res.Description,
		Forcing:     string(res.Forcing),
	}, nil
}

// InterpretCalls lists, for the seat about to call, every legal call
// whose rule variants plausibly apply given context and the auction so
// far — schema-level annotations that do not require a concrete hand,
// for the "Explore" UI. limit caps the number of
// interpretations returned; 0 means unlimited.
func (e *Engine) InterpretCalls(callsCSV string, dealer call.Position, vuln call.Vulnerability, limit int) ([]Interpretation, error) {
	calls, err := call.ParseTokens(callsCSV)
	if err != nil {
		return nil, err
	}
	h := call.History{Dealer: dealer}
	for _, c := range calls {
		h, err = h.Append(c)
		if err != nil {
			return nil, err
		}
	}
	if h.IsComplete() {
		return nil, &call.InvalidAuction{Reason: "auction is already complete"}
	}

	profiles, err := inference.InferAll(h, e.rules)
	if err != nil {
		return nil, fmt.Errorf("inferring partner profiles: %w", err)
	}

	seat := h.CurrentTurn()
	tags := context.Classify(h)

	var out []Interpretation
	seenRule := map[*rules.BidRule]bool{}
	for _, tag := range tags {
		for _, rule := range e.rules.ByContext(tag) {
			if seenRule[rule] || !h.IsLegal(rule.Call) {
				continue
			}
			seenRule[rule] = true
			for _, v := range rule.Variants {
				match, err := inference.VariantAuctionMatch(h, profiles, seat, v)
				if err != nil {
					return nil, err
				}
				if !match {
					continue
				}
				out = append(out, Interpretation{
					Call:        rule.Call,
					RuleName:    v.Name,
					Description: v.Description,
					Forcing:     v.Forcing,
				})
				if limit > 0 && len(out) >= limit {
					return out, nil
				}
			}
		}
	}
	return out, nil
}

// ProfilesFor returns the profiles inferred from h, recomputed with the
// same inference SuggestCall runs, for tools that want to show them.
func (e *Engine) ProfilesFor(h call.History) (predicate.Profiles, error) {
	return inference.InferAll(h, e.rules)
}

// Rules exposes the underlying rule set, for tools that want to print
// matched/rejected variants directly.
func (e *Engine) Rules() *rules.Set {
	return e.rules
}
