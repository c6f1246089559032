// Package pipeline turns a flat list of spending entries into day summaries,
// trend statistics, and a same-day forecast. Every function here is a pure
// computation over its arguments; the store supplies a consistent entry
// snapshot and re-invokes the pipeline after each mutation.
package pipeline

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/calendar"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

// TotalCoins sums coin amounts across entries. Amounts are re-clamped to
// zero here even though construction already clamps, so the sum can never
// go negative on hand-built entries.
func TotalCoins(entries []model.Entry) int {
	total := 0
	for _, e := range entries {
		if e.Coins > 0 {
			total += e.Coins
		}
	}
	return total
}

// TotalMoney sums prices across entries. With a non-empty currency only
// matching entries are counted. With currency == "" every priced entry is
// counted regardless of currency, which mixes units — callers wanting a
// meaningful figure must filter by currency first.
func TotalMoney(entries []model.Entry, currency string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if !e.Money.IsPriced() {
			continue
		}
		if currency != "" && e.Money.Currency() != currency {
			continue
		}
		total = total.Add(e.Money.Amount())
	}
	return total
}

// FilterByCurrency returns the priced entries carrying the given currency.
// An empty currency returns the input unchanged.
func FilterByCurrency(entries []model.Entry, currency string) []model.Entry {
	if currency == "" {
		return entries
	}
	var out []model.Entry
	for _, e := range entries {
		if e.Money.IsPriced() && e.Money.Currency() == currency {
			out = append(out, e)
		}
	}
	return out
}

// EntriesOnDay returns the entries whose day key matches day's calendar day.
func EntriesOnDay(cal calendar.Calendar, day time.Time, entries []model.Entry) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if cal.SameDay(e.Time, day) {
			out = append(out, e)
		}
	}
	return out
}

// EntriesInRange returns the entries whose day key falls within the
// inclusive [start, end] day range. Arguments in either order are accepted.
func EntriesInRange(cal calendar.Calendar, start, end time.Time, entries []model.Entry) []model.Entry {
	from := cal.StartOfDay(start)
	to := cal.StartOfDay(end)
	if from.After(to) {
		from, to = to, from
	}

	var out []model.Entry
	for _, e := range entries {
		day := cal.StartOfDay(e.Time)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SummarizeDay aggregates the entries belonging to day's calendar day into
// a DaySummary against the given plan. Scans all entries linearly; fine at
// personal-ledger scale.
func SummarizeDay(cal calendar.Calendar, day time.Time, entries []model.Entry, planCoins int) model.DaySummary {
	s := model.DaySummary{
		Day:       cal.StartOfDay(day),
		PlanCoins: planCoins,
	}
	for _, e := range entries {
		if !cal.SameDay(e.Time, day) {
			continue
		}
		s.EntryCount++
		if e.Coins > 0 {
			s.TotalCoins += e.Coins
		}
	}
	return s
}

// SummarizeRange returns one DaySummary per day in the inclusive range,
// ascending. Days with no entries are still present with a zero total.
// Callers are expected to pass start <= end; reversed bounds are swapped.
func SummarizeRange(cal calendar.Calendar, start, end time.Time, entries []model.Entry, planCoins int) []model.DaySummary {
	days := cal.DaysRange(start, end)
	out := make([]model.DaySummary, 0, len(days))
	for _, day := range days {
		out = append(out, SummarizeDay(cal, day, entries, planCoins))
	}
	return out
}

// AverageCoins returns the mean coins per day over the inclusive range.
// The divisor is the inclusive day count, never less than one.
func AverageCoins(cal calendar.Calendar, start, end time.Time, entries []model.Entry) float64 {
	total := TotalCoins(EntriesInRange(cal, start, end, entries))
	return float64(total) / float64(cal.DayCount(start, end))
}

// TrendPoint pairs a day with its trailing moving average.
type TrendPoint struct {
	Day     time.Time
	Average float64
}

// MovingAverage computes a trailing moving average over the summaries.
// A point is emitted only once a full window is available, dated at the
// last day of its window, so the output has max(0, len−window+1) points.
// A window below 1 yields nothing.
func MovingAverage(summaries []model.DaySummary, window int) []TrendPoint {
	if window < 1 || len(summaries) < window {
		return nil
	}

	out := make([]TrendPoint, 0, len(summaries)-window+1)
	sum := 0
	for i, s := range summaries {
		sum += s.TotalCoins
		if i >= window {
			sum -= summaries[i-window].TotalCoins
		}
		if i >= window-1 {
			out = append(out, TrendPoint{
				Day:     s.Day,
				Average: float64(sum) / float64(window),
			})
		}
	}
	return out
}

// MoneyByCurrency groups the priced entries in the range by currency and
// sums their amounts. Entries without a price carry no currency by
// construction and are skipped.
func MoneyByCurrency(cal calendar.Calendar, start, end time.Time, entries []model.Entry) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range EntriesInRange(cal, start, end, entries) {
		if !e.Money.IsPriced() {
			continue
		}
		cur := e.Money.Currency()
		totals[cur] = totals[cur].Add(e.Money.Amount())
	}
	return totals
}

// AverageCostPerCoin divides the summed price by the summed coins over the
// priced entries in the range that spent at least one coin. Returns zero
// when nothing qualifies. Prices are summed across currencies when the
// range mixes them; filter the entries beforehand if that matters.
func AverageCostPerCoin(cal calendar.Calendar, start, end time.Time, entries []model.Entry) decimal.Decimal {
	totalPrice := decimal.Zero
	totalCoins := 0
	for _, e := range EntriesInRange(cal, start, end, entries) {
		if !e.Money.IsPriced() || e.Coins <= 0 {
			continue
		}
		totalPrice = totalPrice.Add(e.Money.Amount())
		totalCoins += e.Coins
	}
	if totalCoins == 0 {
		return decimal.Zero
	}
	return totalPrice.Div(decimal.NewFromInt(int64(totalCoins)))
}
