// Package app wires CLI configuration to a schedule and renders its output.
package app

import (
	"fmt"

	"github.com/bft-labs/slotbook/internal/cliconfig"
	"github.com/bft-labs/slotbook/pkg/log"
	"github.com/bft-labs/slotbook/pkg/schedule"
)

// Build creates a schedule from cfg and replays the bookings it lists.
// A booking listed twice for the same start is skipped with a warning.
func Build(cfg cliconfig.Config, logger log.Logger) (*schedule.Schedule, error) {
	scfg, err := cfg.ToScheduleConfig()
	if err != nil {
		return nil, err
	}

	s, err := schedule.New(scfg,
		schedule.WithLogger(logger),
		schedule.WithBookingPolicy(cfg.Policy()),
	)
	if err != nil {
		return nil, err
	}

	for i, b := range cfg.Bookings {
		ok, err := s.Book(b.Start, schedule.Client{Name: b.Name, Phone: b.Phone})
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", i+1, err)
		}
		if !ok {
			logger.Warn("duplicate booking in config skipped",
				log.Int("entry", i+1),
				log.Time("slot_start", b.Start),
				log.String("client", b.Name))
		}
	}

	logger.Debug("schedule ready",
		log.String("hours", scfg.WorkDayStart.String()+"-"+scfg.WorkDayEnd.String()),
		log.Duration("slot", scfg.SlotDuration),
		log.Int("bookings", len(s.Bookings())),
		log.String("policy", s.Policy().String()))

	return s, nil
}
