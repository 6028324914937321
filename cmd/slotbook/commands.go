package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/slotbook/internal/app"
	"github.com/bft-labs/slotbook/internal/cliconfig"
	"github.com/bft-labs/slotbook/internal/watcher"
	"github.com/bft-labs/slotbook/pkg/log"
	"github.com/bft-labs/slotbook/pkg/schedule"
)

// defaultSpan is how many days after --from are listed when --to is unset.
const defaultSpan = 6

var errSlotTaken = errors.New("slot already booked")

// dateRange resolves --from/--to. Both default relative to today.
type dateRange struct {
	from, to string
}

func (r *dateRange) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "first date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&r.to, "to", "", fmt.Sprintf("last date, inclusive (YYYY-MM-DD, default from + %d days)", defaultSpan))
}

func (r *dateRange) resolve(now time.Time) (time.Time, time.Time, error) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if r.from != "" {
		t, err := cliconfig.ParseDate(r.from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
		}
		from = t
	}
	to := from.AddDate(0, 0, defaultSpan)
	if r.to != "" {
		t, err := cliconfig.ParseDate(r.to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
		}
		to = t
	}
	return from, to, nil
}

func newSlotsCmd(c *cli) *cobra.Command {
	var (
		span     dateRange
		freeOnly bool
	)
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List slots in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := span.resolve(c.now())
			if err != nil {
				return err
			}
			s, err := c.schedule()
			if err != nil {
				return err
			}

			slots := s.AllSlotsBetween(from, to)
			if freeOnly {
				slots = s.FreeSlotsBetween(from, to)
			}
			_, err = app.WriteSlots(cmd.OutOrStdout(), slots)
			return err
		},
	}
	span.bind(cmd)
	cmd.Flags().BoolVar(&freeOnly, "free", false, "only list slots without a booking")
	return cmd
}

func newBookCmd(c *cli) *cobra.Command {
	var at, name, phone string
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a slot and show what is left that day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := cliconfig.ParseBookingTime(at)
			if err != nil {
				return err
			}
			s, err := c.schedule()
			if err != nil {
				return err
			}

			ok, err := s.Book(start, schedule.Client{Name: name, Phone: phone})
			if err != nil {
				return err
			}
			if !ok {
				existing, _ := s.GetBooking(start)
				return fmt.Errorf("%w: %s", errSlotTaken, existing)
			}

			out := cmd.OutOrStdout()
			booking, _ := s.GetBooking(start)
			if _, err := fmt.Fprintf(out, "booked %s for %s\n", booking, name); err != nil {
				return err
			}
			_, err = app.WriteSlots(out, s.FreeSlotsBetween(start, start))
			return err
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "slot start (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&name, "name", "", "client name")
	cmd.Flags().StringVar(&phone, "phone", "", "client phone")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func newBookingsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List bookings from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.schedule()
			if err != nil {
				return err
			}
			return app.WriteBookings(cmd.OutOrStdout(), s.Bookings())
		},
	}
}

func newWatchCmd(c *cli) *cobra.Command {
	var span dateRange
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print free slots and reprint them whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := span.resolve(c.now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			render := func(cfg cliconfig.Config) error {
				s, err := app.Build(cfg, log.NewZerologAdapterWithLogger(c.log))
				if err != nil {
					return err
				}
				_, err = app.WriteSlots(out, s.FreeSlotsBetween(from, to))
				return err
			}
			if err := render(c.cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			path := c.configFile()
			w := watcher.New(path, watcher.DefaultDebounce, func() {
				cfg, err := c.load()
				if err != nil {
					// Keep the last good config until the file is fixed.
					c.log.Warn().Err(err).Str("path", path).Msg("config reload failed")
					return
				}
				c.log.Info().Str("path", path).Msg("config reloaded")
				if err := render(cfg); err != nil {
					c.log.Warn().Err(err).Msg("render failed")
				}
			}, log.NewZerologAdapterWithLogger(c.log))

			if err := w.Run(ctx); err != nil {
				return err
			}
			c.log.Info().Msg("received signal, stopping...")
			return nil
		},
	}
	span.bind(cmd)
	return cmd
}
