package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Client is whoever a booking is for. The schedule does not inspect it.
type Client struct {
	Name  string
	Phone string
}

// IsZero reports whether no client was given.
func (c Client) IsZero() bool {
	return c.Name == "" && c.Phone == ""
}

// Booking binds a slot start to a client.
type Booking struct {
	ID        uuid.UUID
	SlotStart time.Time
	Client    Client
	BookedAt  time.Time
}

func (b Booking) String() string {
	return fmt.Sprintf("%s - %s (phone: %s, booked at: %s)",
		b.SlotStart.Format(time.DateOnly),
		b.SlotStart.Format("15:04"),
		b.Client.Phone,
		b.BookedAt.Format("15:04"))
}

// SlotStatus is the ledger state of a slot start.
type SlotStatus int

const (
	StatusUnbooked SlotStatus = iota
	StatusBooked
)

func (s SlotStatus) String() string {
	switch s {
	case StatusUnbooked:
		return "Unbooked"
	case StatusBooked:
		return "Booked"
	default:
		return "Unknown"
	}
}
