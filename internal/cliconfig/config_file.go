package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig is the layout of the config file.
type FileConfig struct {
	WorkStart   string        `toml:"work_start" yaml:"work_start"`
	WorkEnd     string        `toml:"work_end" yaml:"work_end"`
	SlotMinutes int           `toml:"slot_minutes" yaml:"slot_minutes"`
	Weekdays    *bool         `toml:"weekdays" yaml:"weekdays"`
	WorkingDays []string      `toml:"working_days" yaml:"working_days"`
	Strict      *bool         `toml:"strict" yaml:"strict"`
	LogLevel    string        `toml:"log_level" yaml:"log_level"`
	Bookings    []FileBooking `toml:"booking" yaml:"booking"`
}

// FileBooking is one [[booking]] table.
type FileBooking struct {
	Start string `toml:"start" yaml:"start"`
	Name  string `toml:"name" yaml:"name"`
	Phone string `toml:"phone" yaml:"phone"`
}

// LoadFileConfig reads and parses a config file from the given path.
// Files ending in .yaml or .yml are read as YAML, anything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	unmarshal := toml.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	}
	if err := unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.slotbook/config.toml, or "" without a home.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".slotbook", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map); --weekdays
// and --working-days pin the working-day set together.
// Bookings from the file replace any bookings already in cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(&cfg.WorkStart, fc.WorkStart, "work-start")
	s.setString(&cfg.WorkEnd, fc.WorkEnd, "work-end")
	s.setString(&cfg.LogLevel, fc.LogLevel, "log-level")
	s.setInt(&cfg.SlotMinutes, fc.SlotMinutes, "slot-minutes")
	s.setBool(&cfg.Weekdays, fc.Weekdays, workingDayFlags...)
	s.setStrings(&cfg.WorkingDays, fc.WorkingDays, workingDayFlags...)
	s.setBool(&cfg.Strict, fc.Strict, "strict")

	if len(fc.Bookings) == 0 {
		return nil
	}
	bookings := make([]BookingEntry, 0, len(fc.Bookings))
	for i, fb := range fc.Bookings {
		start, err := ParseBookingTime(fb.Start)
		if err != nil {
			return fmt.Errorf("booking %d: %w", i+1, err)
		}
		bookings = append(bookings, BookingEntry{Start: start, Name: fb.Name, Phone: fb.Phone})
	}
	cfg.Bookings = bookings
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
