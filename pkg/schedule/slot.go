package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Slot is one bookable interval [Start, End).
type Slot struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration

	// WorkDayStart and WorkDayEnd are the bounds of the day the slot is on.
	WorkDayStart time.Time
	WorkDayEnd   time.Time
}

// Contains reports whether t falls inside [Start, End).
func (s Slot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

func (s Slot) String() string {
	return fmt.Sprintf("[%s] Free: %s - %s (%d min)",
		strings.ToUpper(s.Start.Weekday().String()),
		s.Start.Format("15:04"),
		s.End.Format("15:04"),
		int(s.Duration/time.Minute))
}
