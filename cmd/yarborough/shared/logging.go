// Package shared holds the small bits cmd/yarborough's subcommands all
// need: logger setup and rule-set loading, split out the way
// cmd/pokerforbots/shared kept its logging helper out of main.go.
package shared

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	"github.com/eseidel/yarborough/internal/engineconfig"
	"github.com/eseidel/yarborough/internal/rules"
)

// SetupLogger configures charmbracelet/log the way internal/engine's
// default logger is configured, for CLI commands that talk to the
// engine directly.
func SetupLogger(debug bool) *charmlog.Logger {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Level: level})
	return l
}

// SetupStructuredLogger configures zerolog for the harness/fight
// commands, which log batch runs rather than single requests.
func SetupStructuredLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// LoadRules loads the rule set from dir if non-empty, otherwise falls
// back to the embedded default shards.
func LoadRules(dir string) (*rules.Set, error) {
	if dir == "" {
		return rules.LoadDefault()
	}
	return rules.Load(os.DirFS(dir))
}

// LoadConfig reads the ambient HCL config from path (defaulting to
// "yarborough.hcl" when empty) and validates it.
func LoadConfig(path string) (engineconfig.Config, error) {
	if path == "" {
		path = "yarborough.hcl"
	}
	cfg, err := engineconfig.Load(path)
	if err != nil {
		return engineconfig.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return engineconfig.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// FirstNonEmpty returns the first non-empty string among vals, for
// subcommands layering an explicit CLI flag over an
// engineconfig.Config default.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
