package rules

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/eseidel/yarborough/internal/card"
)

func shardFS(yamlBody string) fstest.MapFS {
	return fstest.MapFS{
		"shard.yaml": &fstest.MapFile{Data: []byte(yamlBody)},
	}
}

func TestLoadRejectsDuplicateVariantName(t *testing.T) {
	_, err := Load(shardFS(`
rules:
  - call: "1C"
    context: opening
    variants:
      - name: opening_1c
        priority: 10
        constraints:
          - kind: hcp
            min_hcp: 12
      - name: opening_1c
        priority: 9
        constraints:
          - kind: hcp
            min_hcp: 13
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate variant name")
}

func TestLoadRejectsDuplicateVariantPriority(t *testing.T) {
	_, err := Load(shardFS(`
rules:
  - call: "1C"
    context: opening
    variants:
      - name: a
        priority: 10
        constraints:
          - kind: hcp
            min_hcp: 12
      - name: b
        priority: 10
        constraints:
          - kind: hcp
            min_hcp: 13
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate variant priority")
}

func TestLoadRejectsUnknownConstraintKind(t *testing.T) {
	_, err := Load(shardFS(`
rules:
  - call: "1C"
    context: opening
    variants:
      - name: a
        priority: 10
        constraints:
          - kind: bogus
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown constraint kind")
}

func TestLoadRejectsNoShards(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
}

func TestLoadRejectsUnknownAuctionPredicate(t *testing.T) {
	_, err := Load(shardFS(`
rules:
  - call: "1H"
    context: response
    variants:
      - name: a
        priority: 10
        constraints:
          - kind: auction
            predicate: bogus_predicate
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown auction predicate")
}

func TestLoadResolvesSuitAndQuality(t *testing.T) {
	set, err := Load(shardFS(`
rules:
  - call: "1H"
    context: overcall
    variants:
      - name: simple_overcall_1h
        priority: 10
        constraints:
          - kind: length
            suit: H
            min_length: 5
          - kind: suit_quality
            suit: H
            min_quality: decent
`))
	require.NoError(t, err)

	byOvercall := set.ByContext(CtxOvercall)
	require.Len(t, byOvercall, 1)
	rule := byOvercall[0]
	require.Equal(t, "1H", rule.CallTok)
	require.Equal(t, card.Hearts, rule.Variants[0].Constraints[0].Suit)
}
