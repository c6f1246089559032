// Package calendar provides day, week, and month boundary math over an
// explicit location and first-day-of-week, so aggregation stays deterministic
// under test instead of depending on process-global time state.
package calendar

import (
	"math"
	"time"
)

// Calendar carries the timezone and week convention used for all boundary
// computations. The zero value is not useful; construct via Default or New.
type Calendar struct {
	loc      *time.Location
	firstDay time.Weekday
}

// Default returns a calendar in the process-local timezone with Monday as
// the first day of the week.
func Default() Calendar {
	return Calendar{loc: time.Local, firstDay: time.Monday}
}

// New returns a calendar for the given location and first weekday.
func New(loc *time.Location, firstDay time.Weekday) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc, firstDay: firstDay}
}

// Location returns the calendar's timezone.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// StartOfDay returns local midnight of the calendar day containing t.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	local := t.In(c.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.Location())
}

// EndOfDay returns the last second of the calendar day containing t,
// computed as the start of the next day minus one second. If calendar
// arithmetic cannot advance past t's day, t is returned unchanged so the
// caller sees the edge rather than a crash.
func (c Calendar) EndOfDay(t time.Time) time.Time {
	start := c.StartOfDay(t)
	next := start.AddDate(0, 0, 1)
	if !next.After(start) {
		return t
	}
	return next.Add(-time.Second)
}

// StartOfWeek returns midnight of the first day of the week containing t,
// per the calendar's first-weekday convention.
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	diff := (int(day.Weekday()) - int(c.firstDay) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// EndOfWeek returns the last second of the week containing t.
func (c Calendar) EndOfWeek(t time.Time) time.Time {
	return c.EndOfDay(c.StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns midnight of the first day of the month containing t.
func (c Calendar) StartOfMonth(t time.Time) time.Time {
	local := t.In(c.Location())
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, c.Location())
}

// EndOfMonth returns the last second of the last day of the month containing t.
func (c Calendar) EndOfMonth(t time.Time) time.Time {
	firstOfNext := c.StartOfMonth(t).AddDate(0, 1, 0)
	return firstOfNext.Add(-time.Second)
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	return c.StartOfDay(a).Equal(c.StartOfDay(b))
}

// DaysRange returns the inclusive ascending sequence of day starts from
// start to end. Arguments in either order are accepted. The walk stops
// early if day arithmetic fails to advance.
func (c Calendar) DaysRange(start, end time.Time) []time.Time {
	from := c.StartOfDay(start)
	to := c.StartOfDay(end)
	if from.After(to) {
		from, to = to, from
	}

	var days []time.Time
	for day := from; !day.After(to); {
		days = append(days, day)
		next := day.AddDate(0, 0, 1)
		if !next.After(day) {
			break
		}
		day = next
	}
	return days
}

// DayCount returns the inclusive number of calendar days between start and
// end, never less than 1.
func (c Calendar) DayCount(start, end time.Time) int {
	from := c.StartOfDay(start)
	to := c.StartOfDay(end)
	if from.After(to) {
		from, to = to, from
	}
	// Round rather than truncate so 23h/25h DST days still count as one day.
	days := int(math.Round(to.Sub(from).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DaySpan returns the start of t's day and the real duration until the next
// midnight. The span is normally 24h but differs on DST transition days.
func (c Calendar) DaySpan(t time.Time) (time.Time, time.Duration) {
	start := c.StartOfDay(t)
	next := start.AddDate(0, 0, 1)
	return start, next.Sub(start)
}
