package domain

import "time"

// SameDate reports whether a and b fall on the same calendar date. The time
// component of a record's Date is not meaningful for grouping.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// HoursForDate sums the hours of all records on the given date within the
// currently visible set. Classification against a preferred-hours threshold
// is informational only and never blocks an operation.
func HoursForDate(records []Record, date time.Time) int {
	total := 0
	for _, r := range records {
		if SameDate(r.Date, date) {
			total += r.Hour
		}
	}
	return total
}
