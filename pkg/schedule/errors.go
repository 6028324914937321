package schedule

import "errors"

// Errors returned by the schedule. Check them with errors.Is.
var (
	// ErrConfiguration is returned by Build and New when the working hours
	// or slot duration are unusable.
	ErrConfiguration = errors.New("schedule: invalid configuration")

	// ErrInvalidArgument is returned by Book when the slot start or the
	// client is missing.
	ErrInvalidArgument = errors.New("schedule: invalid argument")

	// ErrNotASlot is returned by Book under PolicyGenerated when the instant
	// is not the start of a generated slot.
	ErrNotASlot = errors.New("schedule: not a slot start")
)
