package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/eseidel/yarborough/cmd/yarborough/shared"
	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/engine"
	"github.com/eseidel/yarborough/internal/harness"
)

// FightCmd replays a batch of board identifiers concurrently against a
// second bidder process and reports any disagreement with this
// engine's own suggestion, modeled on
// internal/regression/orchestrator.go's concurrent batch dispatch but
// over a one-shot stdin/stdout line protocol instead of a WebSocket
// server: the opponent is spawned fresh per board, reads one identifier
// line on stdin, and writes one call token on stdout.
type FightCmd struct {
	VectorsDir  string `help:"Directory of *.yaml test vectors to replay (default from config, or testdata/vectors)"`
	Opponent    string `required:"" help:"Shell command that reads a board identifier on stdin and writes a call token on stdout"`
	Concurrency int    `default:"4" help:"Maximum concurrent opponent processes"`
	RulesDir    string `help:"Directory of YAML rule shards (defaults to the embedded SAYC set)"`
	Config      string `help:"Path to the yarborough.hcl ambient config file"`
}

type fightOutcome struct {
	name     string
	ours     string
	theirs   string
	disagree bool
}

func (c *FightCmd) Run() error {
	cfg, err := shared.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	set, err := shared.LoadRules(shared.FirstNonEmpty(c.RulesDir, cfg.RulesDir))
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	e := engine.New(set)

	vectorsDir := shared.FirstNonEmpty(c.VectorsDir, cfg.HarnessDir, "testdata/vectors")
	vectors, err := harness.LoadVectors(os.DirFS(vectorsDir))
	if err != nil {
		return fmt.Errorf("loading vectors: %w", err)
	}

	logger := shared.SetupStructuredLogger(false)
	logger.Info().Int("boards", len(vectors)).Str("opponent", c.Opponent).Msg("starting fight")

	results := make([]fightOutcome, len(vectors))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(c.Concurrency)

	for i, v := range vectors {
		i, v := i, v
		g.Go(func() error {
			ours, err := e.NextCall(v.Identifier)
			if err != nil {
				mu.Lock()
				results[i] = fightOutcome{name: v.Name, ours: "", theirs: "", disagree: true}
				mu.Unlock()
				logger.Error().Str("vector", v.Name).Err(err).Msg("our engine errored")
				return nil
			}

			theirs, err := askOpponent(ctx, c.Opponent, v.Identifier)
			if err != nil {
				logger.Error().Str("vector", v.Name).Err(err).Msg("opponent errored")
				mu.Lock()
				results[i] = fightOutcome{name: v.Name, ours: ours.String(), theirs: "", disagree: true}
				mu.Unlock()
				return nil
			}

			theirsCall, perr := call.ParseToken(theirs)
			mu.Lock()
			results[i] = fightOutcome{
				name:     v.Name,
				ours:     ours.String(),
				theirs:   theirs,
				disagree: perr != nil || theirsCall != ours,
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })

	disagreements := 0
	for _, r := range results {
		if r.disagree {
			disagreements++
			fmt.Printf("DISAGREE %-40s ours=%-8s theirs=%-8s\n", r.name, r.ours, r.theirs)
		} else {
			fmt.Printf("AGREE    %-40s %s\n", r.name, r.ours)
		}
	}
	logger.Info().Int("disagreements", disagreements).Int("total", len(results)).Msg("fight complete")
	return nil
}

// askOpponent spawns cmdStr fresh, writes identifier followed by a
// newline to its stdin, and returns the first line it writes to
// stdout, trimmed.
func askOpponent(ctx context.Context, cmdStr, identifier string) (string, error) {
	cmd := exec.CommandContext(ctx, "bash", "-c", cmdStr)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", fmt.Errorf("opening opponent stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("opening opponent stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("starting opponent: %w", err)
	}

	if _, err := fmt.Fprintln(stdin, identifier); err != nil {
		return "", fmt.Errorf("writing identifier to opponent: %w", err)
	}
	stdin.Close()

	scanner := bufio.NewScanner(stdout)
	var line string
	if scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
	}

	if err := cmd.Wait(); err != nil {
		return "", fmt.Errorf("opponent process: %w", err)
	}
	return line, nil
}
