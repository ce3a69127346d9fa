package scheduling

import "time"

// DefaultDurationDays is assumed for activities missing one of their dates.
const DefaultDurationDays = 5

// TruncateDay normalizes a timestamp to UTC midnight. All scheduling math
// runs at day granularity.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, days int) time.Time {
	return TruncateDay(t).AddDate(0, 0, days)
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(TruncateDay(b).Sub(TruncateDay(a)).Hours() / 24)
}

// DurationDays returns a task span's length in days, at least min.
func DurationDays(start, due time.Time, min int) int {
	d := DaysBetween(start, due)
	if d < min {
		return min
	}
	return d
}
