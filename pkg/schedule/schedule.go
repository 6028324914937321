package schedule

import (
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/slotbook/pkg/log"
)

// Schedule generates slots from its Config and owns the booking ledger.
// Use New() or Builder.Build() to create one.
type Schedule struct {
	cfg    Config
	days   [7]bool
	logger log.Logger
	now    func() time.Time
	policy BookingPolicy

	mu       sync.RWMutex
	bookings map[instant]Booking
}

// instant identifies a point in time independent of location and monotonic
// clock reading, so equal instants always hit the same ledger entry.
type instant struct {
	sec  int64
	nsec int
}

func instantOf(t time.Time) instant {
	return instant{sec: t.Unix(), nsec: t.Nanosecond()}
}

// New validates cfg and returns an empty Schedule.
// Returns an error matching ErrConfiguration if cfg is invalid.
func New(cfg Config, opts ...Option) (*Schedule, error) {
	cfg.SlotDuration = cfg.SlotDuration.Truncate(time.Minute)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Schedule{
		logger:   o.logger,
		now:      o.now,
		policy:   o.policy,
		bookings: make(map[instant]Booking),
	}
	for _, d := range cfg.WorkingDays {
		s.days[d] = true
	}

	// Keep a deduplicated, Monday-first copy so Config() is stable.
	cfg.WorkingDays = nil
	for _, d := range AllDays {
		if s.days[d] {
			cfg.WorkingDays = append(cfg.WorkingDays, d)
		}
	}
	s.cfg = cfg

	return s, nil
}

// Config returns a copy of the schedule's configuration.
func (s *Schedule) Config() Config {
	cfg := s.cfg
	cfg.WorkingDays = slices.Clone(s.cfg.WorkingDays)
	return cfg
}

// Policy returns the booking policy in effect.
func (s *Schedule) Policy() BookingPolicy {
	return s.policy
}

// IsWorkingDay reports whether slots are generated on day's weekday.
func (s *Schedule) IsWorkingDay(day time.Time) bool {
	return s.days[day.Weekday()]
}

// AllSlotsBetween returns every slot on the working days of the inclusive
// date range [from, to], ordered by start. Only the calendar dates of from
// and to matter; slots are placed in from's location. The sequence is empty
// when from is a later date than to.
func (s *Schedule) AllSlotsBetween(from, to time.Time) iter.Seq[Slot] {
	loc := from.Location()
	first := dateOf(from, loc)
	last := dateOf(to, loc)

	return func(yield func(Slot) bool) {
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if !s.IsWorkingDay(day) {
				continue
			}
			if !s.slotsOn(day, yield) {
				return
			}
		}
	}
}

// FreeSlotsBetween is AllSlotsBetween without the slots whose start is
// booked. The ledger is checked as the sequence is consumed.
func (s *Schedule) FreeSlotsBetween(from, to time.Time) iter.Seq[Slot] {
	all := s.AllSlotsBetween(from, to)

	return func(yield func(Slot) bool) {
		for slot := range all {
			if s.isBooked(slot.Start) {
				continue
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// slotsOn yields the slots of a single day and reports whether the consumer
// wants more. Slots step in absolute time, so a DST shift inside the window
// changes how many fit, not how long each lasts.
func (s *Schedule) slotsOn(day time.Time, yield func(Slot) bool) bool {
	dayStart := s.cfg.WorkDayStart.On(day)
	dayEnd := s.cfg.WorkDayEnd.On(day)
	d := s.cfg.SlotDuration

	for start := dayStart; !start.Add(d).After(dayEnd); start = start.Add(d) {
		slot := Slot{
			Start:        start,
			End:          start.Add(d),
			Duration:     d,
			WorkDayStart: dayStart,
			WorkDayEnd:   dayEnd,
		}
		if !yield(slot) {
			return false
		}
	}
	return true
}

// IsSlotStart reports whether t is the start of a generated slot.
func (s *Schedule) IsSlotStart(t time.Time) bool {
	for slot := range s.AllSlotsBetween(t, t) {
		if slot.Start.Equal(t) {
			return true
		}
	}
	return false
}

// Book records a booking for slotStart unless one already exists.
// Returns true if the booking was added and false if the slot start was
// already taken; an existing booking is never replaced.
// Returns an error matching ErrInvalidArgument when slotStart is the zero
// time or client is the zero Client, and ErrNotASlot when the schedule runs
// with PolicyGenerated and slotStart is not a slot start.
func (s *Schedule) Book(slotStart time.Time, client Client) (bool, error) {
	if slotStart.IsZero() {
		return false, fmt.Errorf("%w: slot start is required", ErrInvalidArgument)
	}
	if client.IsZero() {
		return false, fmt.Errorf("%w: client is required", ErrInvalidArgument)
	}
	if s.policy == PolicyGenerated && !s.IsSlotStart(slotStart) {
		return false, fmt.Errorf("%w: %s", ErrNotASlot, slotStart.Format(time.RFC3339))
	}

	booking := Booking{
		ID:        uuid.New(),
		SlotStart: slotStart,
		Client:    client,
		BookedAt:  s.now(),
	}

	key := instantOf(slotStart)
	s.mu.Lock()
	if existing, ok := s.bookings[key]; ok {
		s.mu.Unlock()
		s.logger.Debug("slot already booked",
			log.Time("slot_start", slotStart),
			log.Any("booking_id", existing.ID))
		return false, nil
	}
	s.bookings[key] = booking
	s.mu.Unlock()

	s.logger.Debug("slot booked",
		log.Time("slot_start", slotStart),
		log.Any("booking_id", booking.ID),
		log.String("client", client.Name))
	return true, nil
}

// Cancel removes the booking for slotStart.
// Returns true if there was one.
func (s *Schedule) Cancel(slotStart time.Time) bool {
	key := instantOf(slotStart)

	s.mu.Lock()
	booking, ok := s.bookings[key]
	if ok {
		delete(s.bookings, key)
	}
	s.mu.Unlock()

	if ok {
		s.logger.Debug("booking cancelled",
			log.Time("slot_start", slotStart),
			log.Any("booking_id", booking.ID))
	}
	return ok
}

// GetBooking returns the booking for exactly slotStart, if any.
func (s *Schedule) GetBooking(slotStart time.Time) (Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[instantOf(slotStart)]
	return b, ok
}

// Status returns StatusBooked if slotStart has a booking.
func (s *Schedule) Status(slotStart time.Time) SlotStatus {
	if s.isBooked(slotStart) {
		return StatusBooked
	}
	return StatusUnbooked
}

// Bookings returns a snapshot of the ledger ordered by slot start.
func (s *Schedule) Bookings() []Booking {
	s.mu.RLock()
	out := make([]Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Booking) int {
		return a.SlotStart.Compare(b.SlotStart)
	})
	return out
}

func (s *Schedule) isBooked(t time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bookings[instantOf(t)]
	return ok
}

// dateOf returns midnight of t's calendar date in loc.
func dateOf(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
