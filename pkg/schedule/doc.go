// Package schedule computes bookable appointment slots from working-hour
// configuration and keeps an in-memory ledger of bookings against them.
//
// # Basic Usage
//
//	s, err := schedule.NewBuilder().
//	    WorkingHours(10, 0, 19, 0).
//	    SlotDurationMinutes(40).
//	    OnlyWeekdays().
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	at := time.Date(2026, 10, 15, 11, 20, 0, 0, time.Local)
//	ok, err := s.Book(at, schedule.Client{Name: "Ivanov", Phone: "123-321-12"})
//
//	for slot := range s.FreeSlotsBetween(from, to) {
//	    fmt.Println(slot)
//	}
//
// # Slots
//
// Slots are never stored. [Schedule.AllSlotsBetween] and
// [Schedule.FreeSlotsBetween] return lazy sequences that are recomputed on
// every iteration, so the same arguments always yield the same slots for an
// unchanged ledger.
//
// # Bookings
//
// The ledger is keyed by slot start instant and holds at most one [Booking]
// per key. Double booking and cancelling a missing booking are reported with
// a false result, not an error. By default [Schedule.Book] accepts any
// instant; pass WithBookingPolicy(PolicyGenerated) to only accept the start
// of a generated slot.
//
// # Concurrency
//
// A Schedule is safe for concurrent use. The ledger sits behind a single
// mutex.
package schedule
