package main

import (
	"fmt"

	"github.com/eseidel/yarborough/cmd/yarborough/shared"
	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/engine"
)

// InterpretCmd lists, for a calls-CSV auction with no concrete hand,
// every call whose rule variants plausibly apply.
type InterpretCmd struct {
	Calls    string `arg:"" help:"Comma-separated calls so far, e.g. '1H,Pass,2H'"`
	Dealer   string `default:"N" help:"Dealer seat: N, E, S, or W"`
	Vuln     string `default:"None" help:"Vulnerability: None, NS, EW, or Both"`
	Limit    int    `default:"0" help:"Cap on interpretations returned (0 = unlimited)"`
	RulesDir string `help:"Directory of YAML rule shards (defaults to the embedded SAYC set)"`
	Config   string `help:"Path to the yarborough.hcl ambient config file"`
}

func (c *InterpretCmd) Run() error {
	cfg, err := shared.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	set, err := shared.LoadRules(shared.FirstNonEmpty(c.RulesDir, cfg.RulesDir))
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	e := engine.New(set)

	dealer, err := parsePosition(c.Dealer)
	if err != nil {
		return err
	}
	vuln, err := parseVulnerability(c.Vuln)
	if err != nil {
		return err
	}

	interps, err := e.InterpretCalls(c.Calls, dealer, vuln, c.Limit)
	if err != nil {
		return err
	}
	for _, i := range interps {
		fmt.Printf("%-6s %-30s %-14s %s\n", i.Call, i.RuleName, i.Forcing, i.Description)
	}
	return nil
}

func parsePosition(s string) (call.Position, error) {
	switch s {
	case "N":
		return call.North, nil
	case "E":
		return call.East, nil
	case "S":
		return call.South, nil
	case "W":
		return call.West, nil
	default:
		return 0, fmt.Errorf("invalid seat %q, want N/E/S/W", s)
	}
}

func parseVulnerability(s string) (call.Vulnerability, error) {
	switch s {
	case "None":
		return call.VulNone, nil
	case "NS":
		return call.VulNS, nil
	case "EW":
		return call.VulEW, nil
	case "Both":
		return call.VulBoth, nil
	default:
		return 0, fmt.Errorf("invalid vulnerability %q, want None/NS/EW/Both", s)
	}
}
