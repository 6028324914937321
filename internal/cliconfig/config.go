package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/slotbook/pkg/schedule"
)

// BookingLayout is the accepted format for booking times, in local time.
const BookingLayout = "2006-01-02T15:04"

// DateLayout is the accepted format for dates.
const DateLayout = time.DateOnly

// Config holds CLI configuration for slotbook.
type Config struct {
	WorkStart   string
	WorkEnd     string
	SlotMinutes int
	Weekdays    bool
	WorkingDays []string

	// Strict only accepts bookings on generated slot starts.
	Strict bool

	LogLevel string

	// Bookings are replayed into the schedule at startup.
	Bookings []BookingEntry
}

// BookingEntry is a booking listed in the config file.
type BookingEntry struct {
	Start time.Time
	Name  string
	Phone string
}

// DefaultConfig returns a Config matching schedule.DefaultConfig().
func DefaultConfig() Config {
	return Config{
		WorkStart:   "09:00",
		WorkEnd:     "18:00",
		SlotMinutes: 30,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := c.ToScheduleConfig(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	for i, b := range c.Bookings {
		if b.Start.IsZero() {
			return fmt.Errorf("booking %d: start is required", i+1)
		}
		if b.Name == "" && b.Phone == "" {
			return fmt.Errorf("booking %d: name or phone is required", i+1)
		}
	}
	return nil
}

// ToScheduleConfig converts the CLI settings to a validated schedule.Config.
func (c *Config) ToScheduleConfig() (schedule.Config, error) {
	start, err := schedule.ParseTimeOfDay(c.WorkStart)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("work-start: %w", err)
	}
	end, err := schedule.ParseTimeOfDay(c.WorkEnd)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("work-end: %w", err)
	}

	days := schedule.AllDays
	switch {
	case len(c.WorkingDays) > 0:
		days = nil
		for _, name := range c.WorkingDays {
			d, err := schedule.ParseWeekday(name)
			if err != nil {
				return schedule.Config{}, fmt.Errorf("working-days: %w", err)
			}
			days = append(days, d)
		}
	case c.Weekdays:
		days = schedule.Weekdays
	}

	cfg := schedule.Config{
		WorkDayStart: start,
		WorkDayEnd:   end,
		SlotDuration: time.Duration(c.SlotMinutes) * time.Minute,
		WorkingDays:  append([]time.Weekday(nil), days...),
	}
	if err := cfg.Validate(); err != nil {
		return schedule.Config{}, err
	}
	return cfg, nil
}

// Policy returns the booking policy the config asks for.
func (c *Config) Policy() schedule.BookingPolicy {
	if c.Strict {
		return schedule.PolicyGenerated
	}
	return schedule.PolicyUnchecked
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// ParseBookingTime parses a booking start in local time.
// Accepts BookingLayout, "2006-01-02 15:04" and RFC 3339.
func ParseBookingTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{BookingLayout, "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking time %q: want %s", s, BookingLayout)
	}
	return t, nil
}

// ParseDate parses a YYYY-MM-DD date in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// workingDayFlags both select the working-day set. Either one given on the
// command line pins the whole set against file and env values.
var workingDayFlags = []string{"working-days", "weekdays"}

// configSetter applies one config layer, leaving alone any setting pinned by
// a flag the user set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// pinned reports whether any of flags was set on the command line.
func (s *configSetter) pinned(flags []string) bool {
	for _, f := range flags {
		if s.changed[f] {
			return true
		}
	}
	return false
}

// setString copies a non-empty value.
func (s *configSetter) setString(dst *string, value string, flags ...string) {
	if value != "" && !s.pinned(flags) {
		*dst = value
	}
}

// setInt copies a positive value; zero means unset in a file.
func (s *configSetter) setInt(dst *int, value int, flags ...string) {
	if value > 0 && !s.pinned(flags) {
		*dst = value
	}
}

// setBool copies a value present in the file.
func (s *configSetter) setBool(dst *bool, value *bool, flags ...string) {
	if value != nil && !s.pinned(flags) {
		*dst = *value
	}
}

// setStrings replaces the list with a non-empty one.
func (s *configSetter) setStrings(dst *[]string, value []string, flags ...string) {
	if len(value) > 0 && !s.pinned(flags) {
		*dst = append([]string(nil), value...)
	}
}

// setIntText parses an env value. Non-positive numbers are ignored.
func (s *configSetter) setIntText(dst *int, value string, flags ...string) error {
	if value == "" || s.pinned(flags) {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flags[0], err)
	}
	s.setInt(dst, i, flags...)
	return nil
}

// setBoolText treats "true" and "1" as true and anything else as false.
func (s *configSetter) setBoolText(dst *bool, value string, flags ...string) {
	if value == "" {
		return
	}
	v := value == "true" || value == "1"
	s.setBool(dst, &v, flags...)
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
