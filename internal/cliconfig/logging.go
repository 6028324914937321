package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/slotbook/pkg/log"
)

// Logger returns the CLI logger: console output on stderr at level.
func Logger(level zerolog.Level) zerolog.Logger {
	return log.NewConsoleLogger(os.Stderr, level)
}
