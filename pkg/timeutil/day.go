package timeutil

import "time"

// StartOfDay truncates t to midnight in the local calendar. All day
// bucketing in the journal uses the local device calendar, matching the
// convention entries are captured with.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// WeekdayLabels returns the seven short weekday labels starting at start.
// The week start only changes labeling order on chart headers; it never
// affects which calendar day an entry belongs to.
func WeekdayLabels(start time.Weekday) []string {
	labels := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(start) + i) % 7)
		labels = append(labels, DayLabel(wd))
	}
	return labels
}

// DayLabel renders a weekday as its three-letter label.
func DayLabel(wd time.Weekday) string {
	return wd.String()[:3]
}
