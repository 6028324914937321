package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/slotbook/internal/app"
	"github.com/bft-labs/slotbook/internal/cliconfig"
	"github.com/bft-labs/slotbook/pkg/log"
	"github.com/bft-labs/slotbook/pkg/schedule"
)

const helpDescription = `
Generate appointment slots from working hours and keep a ledger of bookings.

Highlights:
  - Fixed-length slots inside each working day; partial slots are dropped.
  - Working hours, slot length and working days via file, env, or flags.
  - Seed bookings from the config file; strict mode rejects off-grid starts.

Config: $HOME/.slotbook/config.toml (override with --config)
`

var exampleUsage = strings.TrimSpace(`
  slotbook slots --from 2026-10-13 --to 2026-10-17 --free
  slotbook --work-start 10:00 --work-end 19:00 --slot-minutes 40 --weekdays book --at 2026-10-15T11:20 --name Ivanov --phone 123-321-12
  slotbook watch --config $HOME/.slotbook/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries state shared by the commands of one invocation.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string

	// flagCfg is cfg after flag parsing and before file/env layering,
	// the starting point for every reload.
	flagCfg cliconfig.Config
	changed map[string]bool

	log zerolog.Logger
	out io.Writer
	now func() time.Time
}

func newCLI(out io.Writer) *cli {
	return &cli{
		cfg: cliconfig.DefaultConfig(),
		log: cliconfig.Logger(zerolog.InfoLevel),
		out: out,
		now: time.Now,
	}
}

func (c *cli) configFile() string {
	if c.cfgPath != "" {
		return c.cfgPath
	}
	return cliconfig.DefaultConfigPath()
}

// load layers file and env on top of flags into a fresh config.
func (c *cli) load() (cliconfig.Config, error) {
	cfg := c.flagCfg
	if err := cliconfig.Load(&cfg, c.configFile(), c.changed); err != nil {
		return cliconfig.Config{}, err
	}
	return cfg, nil
}

// schedule builds the schedule for the current config.
func (c *cli) schedule() (*schedule.Schedule, error) {
	return app.Build(c.cfg, log.NewZerologAdapterWithLogger(c.log))
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "slotbook",
		Short:         "Appointment slot generator and booking ledger",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.changed = map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { c.changed[f.Name] = true })
			c.flagCfg = c.cfg

			cfg, err := c.load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = cliconfig.Logger(cfg.Level())

			c.log.Debug().
				Str("config_file", c.configFile()).
				Str("hours", cfg.WorkStart+"-"+cfg.WorkEnd).
				Int("slot_minutes", cfg.SlotMinutes).
				Bool("strict", cfg.Strict).
				Int("seed_bookings", len(cfg.Bookings)).
				Msg("configuration")
			return nil
		},
	}
	root.SetOut(c.out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.slotbook/config.toml)")
	flags.StringVar(&c.cfg.WorkStart, "work-start", c.cfg.WorkStart, "start of the working day (HH:MM)")
	flags.StringVar(&c.cfg.WorkEnd, "work-end", c.cfg.WorkEnd, "end of the working day (HH:MM)")
	flags.IntVar(&c.cfg.SlotMinutes, "slot-minutes", c.cfg.SlotMinutes, "slot length in minutes")
	flags.BoolVar(&c.cfg.Weekdays, "weekdays", c.cfg.Weekdays, "only Monday to Friday are working days")
	flags.StringSliceVar(&c.cfg.WorkingDays, "working-days", c.cfg.WorkingDays, "explicit working days, e.g. mon,wed,fri (overrides --weekdays)")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&c.cfg.Strict, "strict", c.cfg.Strict, "only accept bookings on generated slot starts")

	root.AddCommand(
		newSlotsCmd(c),
		newBookCmd(c),
		newBookingsCmd(c),
		newWatchCmd(c),
	)
	return root
}

func main() {
	c := newCLI(os.Stdout)
	if err := newRootCmd(c).Execute(); err != nil {
		c.log.Error().Err(err).Msg("slotbook")
		os.Exit(1)
	}
}
