package pipeline

import (
	"time"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/calendar"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

// Extrapolation is skipped while less than this much of the day has
// elapsed; a near-zero divisor would project wild end-of-day totals from
// the first entry after midnight.
const minElapsed = 60 * time.Second

// Forecast is a same-day linear projection of the end-of-day total.
type Forecast struct {
	SpentCoins     int
	ProjectedCoins float64
	FillRatio      float64
	Status         model.Status
}

// ForecastDay projects today's end-of-day coin total from the spend rate
// observed since midnight. Within the first minute of the day, or on a
// degenerate day span, the projection is simply the amount already spent.
// The fill ratio is projection/plan clamped to [0, 1] (zero for a
// non-positive plan); the status band comes from the unclamped ratio.
func ForecastDay(cal calendar.Calendar, now time.Time, todayEntries []model.Entry, planCoins int) Forecast {
	spent := TotalCoins(EntriesOnDay(cal, now, todayEntries))

	dayStart, daySpan := cal.DaySpan(now)
	elapsed := now.Sub(dayStart)

	projected := float64(spent)
	if elapsed > minElapsed && daySpan > 0 {
		rate := float64(spent) / elapsed.Seconds()
		projected = rate * daySpan.Seconds()
		if projected < 0 {
			projected = 0
		}
	}

	raw := 0.0
	if planCoins > 0 {
		raw = projected / float64(planCoins)
	}
	ratio := raw
	if ratio > 1 {
		ratio = 1
	}

	return Forecast{
		SpentCoins:     spent,
		ProjectedCoins: projected,
		FillRatio:      ratio,
		Status:         model.StatusForRatio(raw),
	}
}
