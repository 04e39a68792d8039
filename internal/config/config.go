// Package config loads the small set of environment-driven knobs the
// interpreter honors in addition to its command-line flags. It is kept
// separate from internal/maincmd so that embedders of lang/engine who
// don't want a CLI can still reuse the same env-var contract.
package config

import "github.com/caarlos0/env/v6"

// Config holds the environment-derived settings layered underneath the
// command-line flags handled by internal/maincmd.
type Config struct {
	// MaxSteps bounds the number of instructions the engine will execute
	// before aborting a runaway program. 0 means no limit.
	MaxSteps int `env:"IPP22_MAX_STEPS" envDefault:"0"`

	// Debug makes the engine log a final snapshot, in the same shape as
	// BREAK's own diagnostic, to stderr when a run completes (whether by
	// EXIT or by falling off the end of the program) — useful even for a
	// program that never executes a BREAK itself. Off by default.
	Debug bool `env:"IPP22_DEBUG" envDefault:"false"`
}

// Load parses the process environment into a Config, applying defaults
// for any variable that is unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
