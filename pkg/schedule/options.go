package schedule

import (
	"time"

	"github.com/bft-labs/slotbook/pkg/log"
)

// BookingPolicy decides which instants Book accepts.
type BookingPolicy int

const (
	// PolicyUnchecked accepts any instant, including ones outside working
	// hours, on non-working days, or off the slot grid.
	PolicyUnchecked BookingPolicy = iota

	// PolicyGenerated accepts only the start of a slot the schedule
	// generates.
	PolicyGenerated
)

func (p BookingPolicy) String() string {
	switch p {
	case PolicyUnchecked:
		return "unchecked"
	case PolicyGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// Option configures optional behavior of a Schedule.
type Option func(*options)

type options struct {
	logger log.Logger
	now    func() time.Time
	policy BookingPolicy
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		now:    time.Now,
		policy: PolicyUnchecked,
	}
}

// WithLogger sets the logger. Bookings and cancellations are logged at
// debug level. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the source of BookedAt timestamps. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithBookingPolicy sets which instants Book accepts.
func WithBookingPolicy(p BookingPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}
