package main

import (
	"fmt"
	"os"

	"github.com/eseidel/yarborough/cmd/yarborough/shared"
	"github.com/eseidel/yarborough/internal/engine"
	"github.com/eseidel/yarborough/internal/harness"
)

// HarnessCmd replays the on-disk YAML test vectors and reports
// any mismatch against the recorded snapshots, or records fresh
// snapshots when run with --update.
type HarnessCmd struct {
	VectorsDir  string `help:"Directory of *.yaml test vectors (default from config, or testdata/vectors)"`
	SnapshotDir string `help:"Directory of recorded snapshot JSON files (default from config)"`
	Update      bool   `help:"Record fresh snapshots instead of comparing"`
	RulesDir    string `help:"Directory of YAML rule shards (defaults to the embedded SAYC set)"`
	Config      string `help:"Path to the yarborough.hcl ambient config file"`
}

func (c *HarnessCmd) Run() error {
	cfg, err := shared.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	set, err := shared.LoadRules(shared.FirstNonEmpty(c.RulesDir, cfg.RulesDir))
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	vectorsDir := shared.FirstNonEmpty(c.VectorsDir, cfg.HarnessDir, "testdata/vectors")
	snapshotDir := shared.FirstNonEmpty(c.SnapshotDir, cfg.SnapshotDir, "testdata/vectors/snapshots")

	vectors, err := harness.LoadVectors(os.DirFS(vectorsDir))
	if err != nil {
		return fmt.Errorf("loading vectors: %w", err)
	}

	logger := shared.SetupStructuredLogger(false)
	runner := harness.NewRunner(engine.New(set), snapshotDir, logger)
	if c.Update {
		runner.Update = true
	}

	results, err := runner.Run(vectors)
	if err != nil {
		return err
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Printf("ERROR  %-40s %v\n", r.Vector.Name, r.Err)
		case r.Mismatch:
			fmt.Printf("FAIL   %-40s got=%+v want=%+v\n", r.Vector.Name, r.Got, r.Want)
		default:
			fmt.Printf("PASS   %-40s %s\n", r.Vector.Name, r.Got.Call)
		}
	}

	if !harness.Passed(results) {
		return fmt.Errorf("%d/%d vectors failed", countFailed(results), len(results))
	}
	return nil
}

func countFailed(results []harness.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil || r.Mismatch {
			n++
		}
	}
	return n
}
