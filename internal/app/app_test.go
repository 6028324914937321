package app

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/slotbook/internal/cliconfig"
	"github.com/bft-labs/slotbook/pkg/log"
	"github.com/bft-labs/slotbook/pkg/schedule"
)

// mockLogger records warnings.
type mockLogger struct {
	warns []string
}

func (m *mockLogger) Debug(msg string, fields ...log.Field) {}
func (m *mockLogger) Info(msg string, fields ...log.Field)  {}
func (m *mockLogger) Warn(msg string, fields ...log.Field)  { m.warns = append(m.warns, msg) }
func (m *mockLogger) Error(msg string, fields ...log.Field) {}

// 2026-10-13 is a Tuesday.
var tuesday = time.Date(2026, 10, 13, 0, 0, 0, 0, time.Local)

func dentistConfig() cliconfig.Config {
	return cliconfig.Config{
		WorkStart:   "10:00",
		WorkEnd:     "19:00",
		SlotMinutes: 40,
		Weekdays:    true,
	}
}

func TestBuild_SeedsBookings(t *testing.T) {
	cfg := dentistConfig()
	cfg.Bookings = []cliconfig.BookingEntry{
		{Start: schedule.Clock(11, 20).On(tuesday), Name: "Ivanov", Phone: "123-321-12"},
		{Start: schedule.Clock(12, 40).On(tuesday), Name: "Petrov"},
	}

	s, err := Build(cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if n := len(s.Bookings()); n != 2 {
		t.Errorf("got %d bookings, want 2", n)
	}
	if n := len(slices.Collect(s.FreeSlotsBetween(tuesday, tuesday))); n != 11 {
		t.Errorf("got %d free slots, want 11", n)
	}
}

func TestBuild_DuplicateSeedSkipped(t *testing.T) {
	cfg := dentistConfig()
	start := schedule.Clock(11, 20).On(tuesday)
	cfg.Bookings = []cliconfig.BookingEntry{
		{Start: start, Name: "Ivanov"},
		{Start: start, Name: "Petrov"},
	}
	logger := &mockLogger{}

	s, err := Build(cfg, logger)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, ok := s.GetBooking(start)
	if !ok || b.Client.Name != "Ivanov" {
		t.Errorf("booking = %+v, %v; want Ivanov", b, ok)
	}
	if len(logger.warns) != 1 {
		t.Errorf("got %d warnings, want 1", len(logger.warns))
	}
}

func TestBuild_StrictRejectsOffGridSeed(t *testing.T) {
	cfg := dentistConfig()
	cfg.Strict = true
	cfg.Bookings = []cliconfig.BookingEntry{
		{Start: schedule.Clock(11, 21).On(tuesday), Name: "Ivanov"},
	}

	_, err := Build(cfg, &mockLogger{})
	if !errors.Is(err, schedule.ErrNotASlot) {
		t.Errorf("Build() error = %v, want ErrNotASlot", err)
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := dentistConfig()
	cfg.SlotMinutes = 0

	_, err := Build(cfg, &mockLogger{})
	if !errors.Is(err, schedule.ErrConfiguration) {
		t.Errorf("Build() error = %v, want ErrConfiguration", err)
	}
}

func TestWriteSlots(t *testing.T) {
	s, err := Build(dentistConfig(), &mockLogger{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var buf bytes.Buffer
	wednesday := tuesday.AddDate(0, 0, 1)
	n, err := WriteSlots(&buf, s.AllSlotsBetween(tuesday, wednesday))
	if err != nil {
		t.Fatalf("WriteSlots() error = %v", err)
	}
	if n != 26 {
		t.Errorf("wrote %d slots, want 26", n)
	}

	out := buf.String()
	if !strings.Contains(out, "2026-10-13 Tuesday\n") || !strings.Contains(out, "2026-10-14 Wednesday\n") {
		t.Errorf("missing day headings:\n%s", out)
	}
	if !strings.Contains(out, "  [TUESDAY] Free: 10:00 - 10:40 (40 min)\n") {
		t.Errorf("missing first slot:\n%s", out)
	}
}

func TestWriteSlots_Empty(t *testing.T) {
	s, err := Build(dentistConfig(), &mockLogger{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	sunday := tuesday.AddDate(0, 0, 5)

	var buf bytes.Buffer
	n, err := WriteSlots(&buf, s.AllSlotsBetween(sunday, sunday))
	if err != nil || n != 0 {
		t.Fatalf("WriteSlots() = %d, %v", n, err)
	}
	if buf.String() != "no slots\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteBookings(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBookings(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "no bookings\n" {
		t.Errorf("output = %q", buf.String())
	}

	s, _ := Build(dentistConfig(), &mockLogger{})
	_, _ = s.Book(schedule.Clock(11, 20).On(tuesday), schedule.Client{Name: "Ivanov", Phone: "123-321-12"})

	buf.Reset()
	if err := WriteBookings(&buf, s.Bookings()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "2026-10-13 - 11:20 (phone: 123-321-12, booked at: ") {
		t.Errorf("output = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Ivanov") {
		t.Errorf("output missing client name: %q", buf.String())
	}
}
