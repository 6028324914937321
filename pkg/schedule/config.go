package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Clock returns the TimeOfDay hour:minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("time of day %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day %q: %w", s, err)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day %q: %w", s, err)
	}
	t := Clock(hour, minute)
	if !t.valid() {
		return TimeOfDay{}, fmt.Errorf("time of day %q: out of range", s)
	}
	return t, nil
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Minutes() < u.Minutes()
}

// On returns t on the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseWeekday accepts English day names, full or three-letter, any case.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// Weekdays is Monday through Friday.
var Weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// AllDays is every day of the week, Monday first.
var AllDays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}

// Config holds the working-hour configuration of a Schedule.
// Use DefaultConfig() or NewBuilder() to start from the defaults.
type Config struct {
	WorkDayStart TimeOfDay
	WorkDayEnd   TimeOfDay

	// SlotDuration is truncated to whole minutes by New.
	SlotDuration time.Duration

	// WorkingDays are the days slots are generated on. Duplicates are
	// ignored. An empty set yields no slots at all.
	WorkingDays []time.Weekday
}

// DefaultConfig returns 09:00-18:00, 30 minute slots, every day.
func DefaultConfig() Config {
	return Config{
		WorkDayStart: Clock(9, 0),
		WorkDayEnd:   Clock(18, 0),
		SlotDuration: 30 * time.Minute,
		WorkingDays:  append([]time.Weekday(nil), AllDays...),
	}
}

// Validate checks the configuration. Errors match ErrConfiguration.
func (c Config) Validate() error {
	if !c.WorkDayStart.valid() {
		return fmt.Errorf("%w: work day start %s out of range", ErrConfiguration, c.WorkDayStart)
	}
	if !c.WorkDayEnd.valid() {
		return fmt.Errorf("%w: work day end %s out of range", ErrConfiguration, c.WorkDayEnd)
	}
	if !c.WorkDayStart.Before(c.WorkDayEnd) {
		return fmt.Errorf("%w: work day start %s must be before end %s", ErrConfiguration, c.WorkDayStart, c.WorkDayEnd)
	}
	if c.SlotDuration.Truncate(time.Minute) <= 0 {
		return fmt.Errorf("%w: slot duration %s must be at least one minute", ErrConfiguration, c.SlotDuration)
	}
	for _, d := range c.WorkingDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrConfiguration, int(d))
		}
	}
	return nil
}

// Builder assembles a Config through chained setters. Nothing is checked
// until Build.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder holding DefaultConfig().
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// WorkingHours sets the working day to startHour:startMinute - endHour:endMinute.
func (b *Builder) WorkingHours(startHour, startMinute, endHour, endMinute int) *Builder {
	return b.WorkingHoursBetween(Clock(startHour, startMinute), Clock(endHour, endMinute))
}

// WorkingHoursBetween sets the working day bounds.
func (b *Builder) WorkingHoursBetween(start, end TimeOfDay) *Builder {
	b.cfg.WorkDayStart = start
	b.cfg.WorkDayEnd = end
	return b
}

// SlotDurationMinutes sets the slot length in whole minutes.
func (b *Builder) SlotDurationMinutes(minutes int) *Builder {
	return b.SlotDuration(time.Duration(minutes) * time.Minute)
}

// SlotDuration sets the slot length. Sub-minute parts are dropped.
func (b *Builder) SlotDuration(d time.Duration) *Builder {
	b.cfg.SlotDuration = d
	return b
}

// OnlyWeekdays restricts working days to Monday through Friday.
func (b *Builder) OnlyWeekdays() *Builder {
	return b.WorkingDays(Weekdays...)
}

// WorkingDays replaces the working days with exactly days.
func (b *Builder) WorkingDays(days ...time.Weekday) *Builder {
	b.cfg.WorkingDays = append([]time.Weekday(nil), days...)
	return b
}

// Config returns a copy of the configuration built so far.
func (b *Builder) Config() Config {
	cfg := b.cfg
	cfg.WorkingDays = append([]time.Weekday(nil), b.cfg.WorkingDays...)
	return cfg
}

// Build validates the configuration and returns a ready Schedule.
func (b *Builder) Build(opts ...Option) (*Schedule, error) {
	return New(b.Config(), opts...)
}
