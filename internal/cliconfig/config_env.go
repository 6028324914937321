package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SLOTBOOK_*).
// It respects flags that have been explicitly set (changed map); --weekdays
// and --working-days pin the working-day set together.
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(&cfg.WorkStart, os.Getenv("SLOTBOOK_WORK_START"), "work-start")
	s.setString(&cfg.WorkEnd, os.Getenv("SLOTBOOK_WORK_END"), "work-end")
	s.setString(&cfg.LogLevel, os.Getenv("SLOTBOOK_LOG_LEVEL"), "log-level")

	if err := s.setIntText(&cfg.SlotMinutes, os.Getenv("SLOTBOOK_SLOT_MINUTES"), "slot-minutes"); err != nil {
		return err
	}

	s.setBoolText(&cfg.Weekdays, os.Getenv("SLOTBOOK_WEEKDAYS"), workingDayFlags...)
	s.setStrings(&cfg.WorkingDays, splitCSV(os.Getenv("SLOTBOOK_WORKING_DAYS")), workingDayFlags...)
	s.setBoolText(&cfg.Strict, os.Getenv("SLOTBOOK_STRICT"), "strict")

	return nil
}
