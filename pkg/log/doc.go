// Package log is the logging port used by slotbook components.
//
// The schedule never talks to a logging library directly. It logs through
// the [Logger] interface, and callers plug in the zerolog adapter, the no-op
// logger, or their own implementation:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	s, err := schedule.NewBuilder().Build(schedule.WithLogger(logger))
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
package log
