package log

const (
	// Version is the current version of the log module.
	Version = "1.1.0"

	// MinCompatibleVersion is the oldest version callers can rely on.
	MinCompatibleVersion = "1.0.0"
)
