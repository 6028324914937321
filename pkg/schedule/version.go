package schedule

const (
	// Version is the current version of the schedule module.
	Version = "1.0.0"

	// MinCompatibleVersion is the oldest version callers can rely on.
	MinCompatibleVersion = "1.0.0"
)
