package pipeline

import (
	"time"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/calendar"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

// CurrentUnderLimitStreak counts consecutive days ending at today whose
// total did not exceed planCoins, walking backward one day at a time. Days
// with no entries total zero and extend the streak. The walk is capped at
// the earliest entry's day: without a cap an all-under history would scan
// unboundedly far into the past. No entries at all means no streak.
func CurrentUnderLimitStreak(cal calendar.Calendar, today time.Time, entries []model.Entry, planCoins int) int {
	earliest, ok := earliestDay(cal, entries)
	if !ok {
		return 0
	}

	streak := 0
	for day := cal.StartOfDay(today); !day.Before(earliest); {
		if SummarizeDay(cal, day, entries, planCoins).TotalCoins > planCoins {
			break
		}
		streak++
		prev := day.AddDate(0, 0, -1)
		if !prev.Before(day) {
			break
		}
		day = prev
	}
	return streak
}

// MaxUnderLimitStreak returns the longest run of consecutive days within
// the inclusive range whose total did not exceed planCoins. A day over the
// plan resets the run.
func MaxUnderLimitStreak(cal calendar.Calendar, start, end time.Time, entries []model.Entry, planCoins int) int {
	best, run := 0, 0
	for _, s := range SummarizeRange(cal, start, end, entries, planCoins) {
		if s.TotalCoins > planCoins {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

func earliestDay(cal calendar.Calendar, entries []model.Entry) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, e := range entries {
		day := cal.StartOfDay(e.Time)
		if !found || day.Before(earliest) {
			earliest = day
			found = true
		}
	}
	return earliest, found
}
