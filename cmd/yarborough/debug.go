package main

import (
	"fmt"

	"github.com/eseidel/yarborough/cmd/yarborough/shared"
	"github.com/eseidel/yarborough/internal/constraint"
	"github.com/eseidel/yarborough/internal/context"
	"github.com/eseidel/yarborough/internal/engine"
	"github.com/eseidel/yarborough/internal/identifier"
	"github.com/eseidel/yarborough/internal/inference"
)

// DebugCmd renders, for a board identifier, every variant considered
// for the seat on lead: whether it matched and why not when it didn't,
// plus the inferred partner profile and the engine's final suggestion.
type DebugCmd struct {
	Identifier string `arg:"" help:"Board identifier"`
	RulesDir   string `help:"Directory of YAML rule shards (defaults to the embedded SAYC set)"`
	Config     string `help:"Path to the yarborough.hcl ambient config file"`
}

func (c *DebugCmd) Run() error {
	cfg, err := shared.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	set, err := shared.LoadRules(shared.FirstNonEmpty(c.RulesDir, cfg.RulesDir))
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	parsed, err := identifier.Parse(c.Identifier)
	if err != nil {
		return err
	}
	seat := parsed.History.CurrentTurn()
	hand := parsed.Deal[seat]

	profiles, err := inference.InferAll(parsed.History, set)
	if err != nil {
		return fmt.Errorf("inferring partner profiles: %w", err)
	}

	fmt.Printf("seat %s, hand %v\n", seat, hand.Cards())
	fmt.Printf("partner profile: %+v\n\n", profiles[seat.Partner()])

	tags := context.Classify(parsed.History)
	seenRule := map[string]bool{}
	for _, tag := range tags {
		for _, rule := range set.ByContext(tag) {
			key := fmt.Sprintf("%s/%s", tag, rule.Call.String())
			if seenRule[key] {
				continue
			}
			seenRule[key] = true

			legal := parsed.History.IsLegal(rule.Call)
			for _, v := range rule.Variants {
				if !legal {
					fmt.Printf("[illegal]  %-6s %-30s (%s)\n", rule.Call, v.Name, tag)
					continue
				}
				ok, err := constraint.Evaluate(hand, profiles, parsed.History, seat, v)
				if err != nil {
					fmt.Printf("[error]    %-6s %-30s (%s): %v\n", rule.Call, v.Name, tag, err)
					continue
				}
				if ok {
					fmt.Printf("[matched]  %-6s %-30s (%s) priority=%d\n", rule.Call, v.Name, tag, v.Priority)
				} else {
					fmt.Printf("[rejected] %-6s %-30s (%s) priority=%d\n", rule.Call, v.Name, tag, v.Priority)
				}
			}
		}
	}

	e := engine.New(set)
	interp, err := e.SuggestCall(c.Identifier)
	if err != nil {
		return err
	}
	fmt.Printf("\nsuggested: %s (%s, %s) %s\n", interp.Call, interp.RuleName, interp.Forcing, interp.Description)
	return nil
}
