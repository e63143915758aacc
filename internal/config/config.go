// Package config handles application configuration and setup
package config

import (
	"errors"

	"github.com/retroenv/nesgenie/internal/genie"
	"github.com/retroenv/nesgenie/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Process exit statuses.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitUsage            = 2
	ExitInvalidCharacter = 32
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	if flags.Debug {
		cfg.Level = log.DebugLevel
	} else if flags.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ExitStatus returns the process exit status for the result of a run.
// Codes containing letters outside of the code alphabet get a dedicated
// status.
func ExitStatus(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, genie.ErrInvalidCharacter):
		return ExitInvalidCharacter
	default:
		return ExitFailure
	}
}
