// Package engineconfig loads the engine's startup configuration from an
// HCL file, the way internal/client's ClientConfig did for the host
// corpus's connection settings.
package engineconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is the engine's startup configuration: where the rule shards
// live, which fallback strategy to run, and how noisy the logger is.
type Config struct {
	RulesDir         string `hcl:"rules_dir,optional"`
	FallbackStrategy string `hcl:"fallback_strategy,optional"`
	LogLevel         string `hcl:"log_level,optional"`
	HarnessDir       string `hcl:"harness_dir,optional"`
	SnapshotDir      string `hcl:"snapshot_dir,optional"`
}

// DefaultConfig returns the configuration used when no file is present:
// the embedded default rule shards, the sound-points-plus-LOTT natural
// bidder, info-level logging, and harness/snapshot directories under
// testdata/vectors relative to the working directory.
func DefaultConfig() Config {
	return Config{
		RulesDir:         "",
		FallbackStrategy: "natural",
		LogLevel:         "info",
		HarnessDir:       "testdata/vectors",
		SnapshotDir:      "testdata/vectors/snapshots",
	}
}

// Load reads filename and decodes it over DefaultConfig. A missing file
// is not an error: the caller gets the defaults, the same "absent file
// means defaults" behavior the host corpus's client config used.
func Load(filename string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}
	if err := hclsimple.DecodeFile(filename, nil, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the decoded configuration for internally consistent
// values before the engine starts.
func (c Config) Validate() error {
	switch c.FallbackStrategy {
	case "natural", "":
	default:
		return fmt.Errorf("unknown fallback_strategy %q", c.FallbackStrategy)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
