package main

import "time"

// TimelineEntry represents a single labeled span on the timeline.
// Start and End are day-precision dates (midnight UTC). Single-day
// milestones use the same date for both. End is allowed to fall before
// Start; the renderer draws such entries as a minimal-width mark rather
// than rejecting them.
type TimelineEntry struct {
	Label string
	Start time.Time
	End   time.Time
}

// date builds a day-precision UTC date, keeping the schedule below terse.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// buildEvents returns the timeline schedule. The schedule is compiled in:
// editing this list is the expected way to change the chart.
//
// The first entry is anchored to the supplied current date so the chart
// always shows the in-progress activity starting "today"; everything else
// is a fixed calendar range. The anchor date is passed in rather than read
// from the clock here, which keeps the builder deterministic.
func buildEvents(today time.Time) []TimelineEntry {
	// Drop any time-of-day component so the anchored entry lines up with
	// the day-precision fixed entries.
	today = date(today.Year(), today.Month(), today.Day())

	return []TimelineEntry{
		{"Internship at Epic", today, date(2025, time.December, 31)},
		{"Funding (18 months)", date(2026, time.January, 1), date(2027, time.June, 30)},
		{"Unfunded period", date(2027, time.July, 1), date(2027, time.December, 31)},
		{"Teaching duties", date(2026, time.January, 1), date(2026, time.December, 31)},

		// Major ML conferences. AAAI and ICML dates vary year to year; the
		// ranges here use typical windows from recent editions. Update as
		// new dates are announced.
		{"NeurIPS 2025", date(2025, time.December, 2), date(2025, time.December, 7)},
		{"AAAI 2026", date(2026, time.January, 20), date(2026, time.January, 27)},
		{"ICML 2026", date(2026, time.July, 13), date(2026, time.July, 19)},
		{"NeurIPS 2026", date(2026, time.December, 1), date(2026, time.December, 7)},
		{"AAAI 2027", date(2027, time.February, 1), date(2027, time.February, 8)},
		{"ICML 2027", date(2027, time.July, 10), date(2027, time.July, 16)},
		{"NeurIPS 2027", date(2027, time.December, 1), date(2027, time.December, 7)},

		// Paper submission goals. Single-day milestones: PIRC targets the
		// NeurIPS abstract deadline, the second paper targets AAAI.
		{"PIRC submission", date(2026, time.May, 16), date(2026, time.May, 16)},
		{"Second paper submission", date(2027, time.August, 15), date(2027, time.August, 15)},
	}
}
