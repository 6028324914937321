package schedule_test

import (
	"fmt"
	"time"

	"github.com/bft-labs/slotbook/pkg/schedule"
)

func Example() {
	dentist, err := schedule.NewBuilder().
		WorkingHours(10, 0, 19, 0).
		SlotDurationMinutes(40).
		OnlyWeekdays().
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	day := time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
	ok, _ := dentist.Book(schedule.Clock(10, 40).On(day), schedule.Client{Name: "Ivanov", Phone: "123-321-12"})
	fmt.Println("booked:", ok)

	n := 0
	for slot := range dentist.FreeSlotsBetween(day, day) {
		if n == 3 {
			break
		}
		fmt.Println(slot)
		n++
	}
	// Output:
	// booked: true
	// [TUESDAY] Free: 10:00 - 10:40 (40 min)
	// [TUESDAY] Free: 11:20 - 12:00 (40 min)
	// [TUESDAY] Free: 12:00 - 12:40 (40 min)
}

func ExampleSchedule_Cancel() {
	s, _ := schedule.NewBuilder().Build()
	start := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

	first, _ := s.Book(start, schedule.Client{Name: "Ivanov"})
	second, _ := s.Book(start, schedule.Client{Name: "Petrov"})
	fmt.Println(first, second)
	fmt.Println(s.Cancel(start), s.Cancel(start))
	// Output:
	// true false
	// true false
}
