package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/slotbook/pkg/schedule"
)

const dentistConfig = `
work_start = "10:00"
work_end = "19:00"
slot_minutes = 40
weekdays = true
log_level = "error"

[[booking]]
start = "2026-10-13T11:20"
name = "Ivanov"
phone = "123-321-12"
`

func run(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if config != "" {
		if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	var out bytes.Buffer
	c := newCLI(&out)
	c.now = func() time.Time { return time.Date(2026, 10, 13, 8, 0, 0, 0, time.Local) }

	root := newRootCmd(c)
	root.SetArgs(append([]string{"--config", path}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSlots_Free(t *testing.T) {
	out, err := run(t, dentistConfig, "slots", "--from", "2026-10-13", "--to", "2026-10-13", "--free")
	if err != nil {
		t.Fatalf("slots error = %v", err)
	}

	if !strings.HasPrefix(out, "2026-10-13 Tuesday\n") {
		t.Errorf("missing day heading:\n%s", out)
	}
	if strings.Contains(out, "11:20 - 12:00") {
		t.Errorf("booked slot listed as free:\n%s", out)
	}
	if !strings.Contains(out, "[TUESDAY] Free: 18:00 - 18:40 (40 min)") {
		t.Errorf("last slot missing:\n%s", out)
	}
	if got := strings.Count(out, "Free:"); got != 12 {
		t.Errorf("got %d free slots, want 12", got)
	}
}

func TestSlots_DefaultRangeSkipsWeekend(t *testing.T) {
	// Tuesday 2026-10-13 through Monday 2026-10-19.
	out, err := run(t, dentistConfig, "slots")
	if err != nil {
		t.Fatalf("slots error = %v", err)
	}
	if strings.Contains(out, "Saturday") || strings.Contains(out, "Sunday") {
		t.Errorf("weekend listed with weekdays = true:\n%s", out)
	}
	if got := strings.Count(out, "Free:"); got != 5*13 {
		t.Errorf("got %d slots, want %d", got, 5*13)
	}
}

func TestSlots_FlagOverridesFile(t *testing.T) {
	out, err := run(t, dentistConfig, "--slot-minutes", "60", "slots", "--from", "2026-10-13", "--to", "2026-10-13")
	if err != nil {
		t.Fatalf("slots error = %v", err)
	}
	if got := strings.Count(out, "Free:"); got != 9 {
		t.Errorf("got %d slots, want 9", got)
	}
}

func TestSlots_NoConfigFile(t *testing.T) {
	out, err := run(t, "", "--log-level", "error", "slots", "--from", "2026-10-18", "--to", "2026-10-18")
	if err != nil {
		t.Fatalf("slots error = %v", err)
	}
	// Defaults: 09:00-18:00, 30 minutes, every day.
	if got := strings.Count(out, "Free:"); got != 18 {
		t.Errorf("got %d slots, want 18", got)
	}
}

func TestSlots_BadDate(t *testing.T) {
	if _, err := run(t, dentistConfig, "slots", "--from", "13/10/2026"); err == nil {
		t.Error("expected error for bad date")
	}
}

func TestBook(t *testing.T) {
	out, err := run(t, dentistConfig, "book", "--at", "2026-10-13T10:40", "--name", "Petrov", "--phone", "555")
	if err != nil {
		t.Fatalf("book error = %v", err)
	}

	if !strings.HasPrefix(out, "booked 2026-10-13 - 10:40 (phone: 555") {
		t.Errorf("unexpected confirmation:\n%s", out)
	}
	if got := strings.Count(out, "Free:"); got != 11 {
		t.Errorf("got %d free slots after booking, want 11", got)
	}
}

func TestBook_Taken(t *testing.T) {
	_, err := run(t, dentistConfig, "book", "--at", "2026-10-13T11:20", "--name", "Petrov")
	if !errors.Is(err, errSlotTaken) {
		t.Errorf("error = %v, want errSlotTaken", err)
	}
}

func TestBook_Strict(t *testing.T) {
	_, err := run(t, dentistConfig, "--strict", "book", "--at", "2026-10-13T11:15", "--name", "Petrov")
	if !errors.Is(err, schedule.ErrNotASlot) {
		t.Errorf("error = %v, want ErrNotASlot", err)
	}
}

func TestBook_NoClient(t *testing.T) {
	_, err := run(t, dentistConfig, "book", "--at", "2026-10-13T10:00")
	if !errors.Is(err, schedule.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestBookings(t *testing.T) {
	out, err := run(t, dentistConfig, "bookings")
	if err != nil {
		t.Fatalf("bookings error = %v", err)
	}
	if !strings.HasPrefix(out, "2026-10-13 - 11:20 (phone: 123-321-12") || !strings.Contains(out, "Ivanov") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, dentistConfig, "--work-end", "09:00", "slots")
	if !errors.Is(err, schedule.ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}
