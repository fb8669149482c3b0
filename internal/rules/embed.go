package rules

import (
	"embed"
	"io/fs"
)

func fsSub(f embed.FS, dir string) (fs.FS, error) {
	return fs.Sub(f, dir)
}

// DefaultShards embeds the built-in SAYC rule shards shipped with the
// binary. LoadDefault loads them the same way Load loads any fs.FS of
// shards.
//
//go:embed shards/*.yaml
var DefaultShards embed.FS

// LoadDefault loads the shards embedded at build time.
func LoadDefault() (*Set, error) {
	sub, err := fsSub(DefaultShards, "shards")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}
