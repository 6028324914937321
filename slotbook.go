// Package slotbook generates appointment slots from working hours and keeps
// an in-memory ledger of bookings.
//
// Example usage:
//
//	s, err := slotbook.NewBuilder().
//	    WorkingHours(10, 0, 19, 0).
//	    SlotDurationMinutes(40).
//	    OnlyWeekdays().
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local)
//	s.Book(slotbook.Clock(11, 20).On(day), slotbook.Client{Name: "Ivanov"})
//	for slot := range s.FreeSlotsBetween(day, day) {
//	    fmt.Println(slot)
//	}
package slotbook

import (
	"github.com/bft-labs/slotbook/pkg/log"
	"github.com/bft-labs/slotbook/pkg/schedule"
)

// Schedule generates slots and owns the booking ledger.
type Schedule = schedule.Schedule

// Config holds working hours, slot duration and working days.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = schedule.Config

// Builder assembles a Config and validates it once in Build.
type Builder = schedule.Builder

type (
	TimeOfDay     = schedule.TimeOfDay
	Slot          = schedule.Slot
	Client        = schedule.Client
	Booking       = schedule.Booking
	SlotStatus    = schedule.SlotStatus
	BookingPolicy = schedule.BookingPolicy
	Option        = schedule.Option
)

const (
	StatusUnbooked  = schedule.StatusUnbooked
	StatusBooked    = schedule.StatusBooked
	PolicyUnchecked = schedule.PolicyUnchecked
	PolicyGenerated = schedule.PolicyGenerated
)

var (
	ErrConfiguration   = schedule.ErrConfiguration
	ErrInvalidArgument = schedule.ErrInvalidArgument
	ErrNotASlot        = schedule.ErrNotASlot
)

// New validates cfg and returns an empty Schedule.
func New(cfg Config, opts ...Option) (*Schedule, error) {
	return schedule.New(cfg, opts...)
}

// NewBuilder returns a Builder preloaded with DefaultConfig().
func NewBuilder() *Builder {
	return schedule.NewBuilder()
}

// DefaultConfig returns 09:00-18:00, 30 minute slots, every day.
func DefaultConfig() Config {
	return schedule.DefaultConfig()
}

// Clock returns the time of day hour:minute.
func Clock(hour, minute int) TimeOfDay {
	return schedule.Clock(hour, minute)
}

// WithLogger sets the logger used for ledger events.
func WithLogger(l log.Logger) Option {
	return schedule.WithLogger(l)
}

// WithBookingPolicy sets how Book treats starts that are not slot starts.
func WithBookingPolicy(p BookingPolicy) Option {
	return schedule.WithBookingPolicy(p)
}

// ModuleVersions reports the versions of the packages this module exports.
func ModuleVersions() map[string]string {
	return map[string]string{
		"schedule": schedule.Version,
		"log":      log.Version,
	}
}
