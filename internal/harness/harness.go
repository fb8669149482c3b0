// Package harness implements the replay harness: it loads named
// bidding-scenario vectors, replays each through the engine facade, and
// diffs the result against a recorded snapshot, logging with zerolog and
// tagging each run with a uuid the way internal/regression's Orchestrator
// tagged each regression run.
package harness

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/eseidel/yarborough/internal/engine"
	"github.com/eseidel/yarborough/internal/fileutil"
)

// UpdateSnapshotsEnv is the environment variable that, when set to any
// non-empty value, makes Runner.Run overwrite recorded snapshots with
// the engine's current output instead of comparing against them.
const UpdateSnapshotsEnv = "YARBOROUGH_UPDATE_SNAPSHOTS"

// Vector is one named bidding scenario: a board identifier to feed
// Engine.SuggestCall. The call/rule it is pinned to lives in the
// snapshot file named after the vector.
type Vector struct {
	Name       string `yaml:"name"`
	Identifier string `yaml:"identifier"`
}

// vectorFile is the top-level shape of a *.yaml vector file.
type vectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

// LoadVectors reads every *.yaml file in dir and returns their vectors
// in filename, then in-file, order.
func LoadVectors(dir fs.FS) ([]Vector, error) {
	names, err := fs.Glob(dir, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("globbing vectors: %w", err)
	}
	sort.Strings(names)

	var out []Vector
	for _, name := range names {
		raw, err := fs.ReadFile(dir, name)
		if err != nil {
			return nil, fmt.Errorf("reading vector file %s: %w", name, err)
		}
		var vf vectorFile
		if err := yaml.Unmarshal(raw, &vf); err != nil {
			return nil, fmt.Errorf("parsing vector file %s: %w", name, err)
		}
		out = append(out, vf.Vectors...)
	}
	return out, nil
}

// Snapshot is the recorded, comparable shape of a vector's engine
// output: the call plus the rule or fallback strategy that explains it.
type Snapshot struct {
	Call        string `json:"call"`
	RuleName    string `json:"rule_name"`
	Description string `json:"description"`
	Forcing     string `json:"forcing"`
}

// Result is one vector's outcome: whether the current engine output
// matches the recorded snapshot.
type Result struct {
	Vector   Vector
	Got      Snapshot
	Want     Snapshot
	Mismatch bool
	Err      error
}

// Runner replays vectors against an Engine and diffs against (or
// records) on-disk snapshots.
type Runner struct {
	Engine      *engine.Engine
	SnapshotDir string
	Logger      zerolog.Logger
	Update      bool
}

// NewRunner builds a Runner. Update defaults to the value of
// UpdateSnapshotsEnv when not explicitly overridden by the caller.
func NewRunner(e *engine.Engine, snapshotDir string, logger zerolog.Logger) *Runner {
	return &Runner{
		Engine:      e,
		SnapshotDir: snapshotDir,
		Logger:      logger,
		Update:      os.Getenv(UpdateSnapshotsEnv) != "",
	}
}

// Run replays every vector, returning one Result each, in vector order.
// Each run is tagged with a fresh run ID for correlating log lines.
func (r *Runner) Run(vectors []Vector) ([]Result, error) {
	runID := uuid.New()
	log := r.Logger.With().Str("run_id", runID.String()).Logger()
	log.Info().Int("vectors", len(vectors)).Msg("starting harness run")

	results := make([]Result, 0, len(vectors))
	for _, v := range vectors {
		res := r.runOne(log, v)
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runOne(log zerolog.Logger, v Vector) Result {
	interp, err := r.Engine.SuggestCall(v.Identifier)
	if err != nil {
		log.Error().Str("vector", v.Name).Err(err).Msg("engine returned an error")
		return Result{Vector: v, Err: err}
	}
	got := Snapshot{
		Call:        interp.Call.String(),
		RuleName:    interp.RuleName,
		Description: interp.Description,
		Forcing:     interp.Forcing,
	}

	path := r.snapshotPath(v.Name)
	if r.Update {
		if err := r.writeSnapshot(path, got); err != nil {
			return Result{Vector: v, Got: got, Err: err}
		}
		log.Info().Str("vector", v.Name).Msg("snapshot updated")
		return Result{Vector: v, Got: got, Want: got}
	}

	want, err := r.readSnapshot(path)
	if err != nil {
		return Result{Vector: v, Got: got, Err: err}
	}
	mismatch := got != want
	if mismatch {
		log.Warn().Str("vector", v.Name).Interface("got", got).Interface("want", want).Msg("snapshot mismatch")
	}
	return Result{Vector: v, Got: got, Want: want, Mismatch: mismatch}
}

func (r *Runner) snapshotPath(name string) string {
	return filepath.Join(r.SnapshotDir, name+".json")
}

func (r *Runner) writeSnapshot(path string, s Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

func (r *Runner) readSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot %s (run with %s=1 to record it): %w", path, UpdateSnapshotsEnv, err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return s, nil
}

// Passed reports whether every result in results passed (no error, no
// mismatch).
func Passed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil || r.Mismatch {
			return false
		}
	}
	return true
}
