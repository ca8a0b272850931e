package scheduler

import "time"

const dateLayout = "2006-01-02"

// AddDays returns date advanced by n days, in YYYY-MM-DD. An empty or
// unparsable date yields "".
func AddDays(date string, n int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, n).Format(dateLayout)
}

// AddWeeks returns date advanced by n weeks, in YYYY-MM-DD.
func AddWeeks(date string, n int) string {
	return AddDays(date, n*7)
}

// DaysBetween returns the whole days from a to b. Zero when either date
// is empty or unparsable, or when b precedes a.
func DaysBetween(a, b string) int {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	if errA != nil || errB != nil {
		return 0
	}
	days := int(tb.Sub(ta).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// After reports whether date falls strictly after limit. False when either
// value is empty or unparsable.
func After(date, limit string) bool {
	td, errD := time.Parse(dateLayout, date)
	tl, errL := time.Parse(dateLayout, limit)
	if errD != nil || errL != nil {
		return false
	}
	return td.After(tl)
}

// NextWorkday shifts a weekend date forward to the following Monday.
func NextWorkday(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	switch t.Weekday() {
	case time.Saturday:
		return AddDays(date, 2)
	case time.Sunday:
		return AddDays(date, 1)
	}
	return date
}

// SeqItem describes one task for sequential scheduling: its hour estimate
// and the minimum calendar days it should occupy.
type SeqItem struct {
	Hours   int
	MinDays int
}

// Window is a scheduled start/end date pair.
type Window struct {
	Start string
	End   string
}

// DurationDays converts an hour estimate to calendar days at eight working
// hours per day, clamped below by minDays and by one day overall.
func DurationDays(hours, minDays int) int {
	days := (hours + 7) / 8
	if days < minDays {
		days = minDays
	}
	if days < 1 {
		days = 1
	}
	return days
}

// ScheduleSequential walks items in order from start, assigning each a
// start date and an end date derived from its duration. For all but the
// trailing fullAdvanceTail items, the cursor advances only half the
// duration so neighboring tasks overlap; granular implementation work
// would otherwise serialize into an unrealistically long timeline. The
// trailing items advance the full duration so go-live-adjacent work does
// not overlap the phase boundary.
func ScheduleSequential(start string, items []SeqItem, fullAdvanceTail int) []Window {
	out := make([]Window, len(items))
	cursor := start
	for i, it := range items {
		days := DurationDays(it.Hours, it.MinDays)
		out[i] = Window{Start: cursor, End: AddDays(cursor, days)}
		advance := (days + 1) / 2
		if i >= len(items)-fullAdvanceTail {
			advance = days
		}
		cursor = AddDays(cursor, advance)
	}
	return out
}
