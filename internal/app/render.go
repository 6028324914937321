package app

import (
	"fmt"
	"io"
	"iter"

	"github.com/bft-labs/slotbook/pkg/schedule"
)

// WriteSlots prints slots grouped under a heading per day and returns how
// many were written.
func WriteSlots(w io.Writer, slots iter.Seq[schedule.Slot]) (int, error) {
	n := 0
	lastDay := ""
	for slot := range slots {
		day := slot.Start.Format("2006-01-02 Monday")
		if day != lastDay {
			if _, err := fmt.Fprintln(w, day); err != nil {
				return n, err
			}
			lastDay = day
		}
		if _, err := fmt.Fprintf(w, "  %s\n", slot); err != nil {
			return n, err
		}
		n++
	}
	if n == 0 {
		if _, err := fmt.Fprintln(w, "no slots"); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// WriteBookings prints one booking per line.
func WriteBookings(w io.Writer, bookings []schedule.Booking) error {
	if len(bookings) == 0 {
		_, err := fmt.Fprintln(w, "no bookings")
		return err
	}
	for _, b := range bookings {
		if _, err := fmt.Fprintf(w, "%s  %s  id=%s\n", b, b.Client.Name, b.ID); err != nil {
			return err
		}
	}
	return nil
}
