package harness_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/eseidel/yarborough/internal/engine"
	"github.com/eseidel/yarborough/internal/harness"
	"github.com/eseidel/yarborough/internal/rules"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	set, err := rules.LoadDefault()
	require.NoError(t, err)
	return engine.New(set)
}

func TestLoadVectorsReadsTestdata(t *testing.T) {
	vectors, err := harness.LoadVectors(os.DirFS("../../testdata/vectors"))
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	require.Equal(t, "north_opens_with_no_rule_match", vectors[0].Name)
}

func TestRunnerMatchesRecordedSnapshot(t *testing.T) {
	vectors, err := harness.LoadVectors(os.DirFS("../../testdata/vectors"))
	require.NoError(t, err)

	r := harness.NewRunner(testEngine(t), "../../testdata/vectors/snapshots", zerolog.Nop())
	r.Update = false

	results, err := r.Run(vectors)
	require.NoError(t, err)
	require.True(t, harness.Passed(results))
}

func TestRunnerUpdateWritesSnapshot(t *testing.T) {
	dir := t.TempDir()
	r := harness.NewRunner(testEngine(t), dir, zerolog.Nop())
	r.Update = true

	vectors := []harness.Vector{{Name: "scratch", Identifier: "1-1b1b1b1b1b1b1b1b1b1b1b1b1b"}}
	results, err := r.Run(vectors)
	require.NoError(t, err)
	require.True(t, harness.Passed(results))

	_, err = os.Stat(filepath.Join(dir, "scratch.json"))
	require.NoError(t, err)

	r.Update = false
	results, err = r.Run(vectors)
	require.NoError(t, err)
	require.True(t, harness.Passed(results))
}

func TestRunnerFlagsMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.json"), []byte(`{"call":"1C","rule_name":"x","description":"","forcing":""}`), 0o644))

	r := harness.NewRunner(testEngine(t), dir, zerolog.Nop())
	vectors := []harness.Vector{{Name: "scratch", Identifier: "1-1b1b1b1b1b1b1b1b1b1b1b1b1b"}}

	results, err := r.Run(vectors)
	require.NoError(t, err)
	require.False(t, harness.Passed(results))
	require.True(t, results[0].Mismatch)
}
