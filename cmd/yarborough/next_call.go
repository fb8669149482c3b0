package main

import (
	"fmt"

	"github.com/eseidel/yarborough/cmd/yarborough/shared"
	"github.com/eseidel/yarborough/internal/engine"
)

// NextCallCmd prints just the suggested call for a board identifier,
// the thin wrapper a robot turn in a UI would call.
type NextCallCmd struct {
	Identifier string `arg:"" help:"Board identifier (e.g. '1-<26 hex deal digits>:<calls csv>')"`
	RulesDir   string `help:"Directory of YAML rule shards (defaults to the embedded SAYC set)"`
	Config     string `help:"Path to the yarborough.hcl ambient config file"`
	Debug      bool   `help:"Enable debug-level logging"`
}

func (c *NextCallCmd) Run() error {
	cfg, err := shared.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	set, err := shared.LoadRules(shared.FirstNonEmpty(c.RulesDir, cfg.RulesDir))
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	e := engine.New(set, engine.WithLogger(shared.SetupLogger(c.Debug)))

	call, err := e.NextCall(c.Identifier)
	if err != nil {
		return err
	}
	fmt.Println(call.String())
	return nil
}
