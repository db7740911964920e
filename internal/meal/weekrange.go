package meal

import "time"

// dateFormat renders dates the way the meal-plan writer keys them
// ("March 05, 2025" — the day is zero-padded). WeekRange and the message
// header must both use it: a format mismatch against the writer silently
// turns every lookup into "no meal planned".
const dateFormat = "January 02, 2006"

// WeekRange returns the Monday–Sunday span containing t, formatted as the
// key addressing the week's meal-plan document.
func WeekRange(t time.Time) string {
	// time.Weekday counts from Sunday; the plan writer counts from Monday.
	offset := (int(t.Weekday()) + 6) % 7
	start := t.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start.Format(dateFormat) + " - " + end.Format(dateFormat)
}
