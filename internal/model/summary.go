package model

import "time"

// Status classifies how full the daily budget is.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusOver
)

// Thresholds on the fill ratio separating the status bands.
const (
	warnThreshold = 0.80
	overThreshold = 1.00
)

// StatusForRatio maps a fill ratio to a status band.
func StatusForRatio(ratio float64) Status {
	switch {
	case ratio < warnThreshold:
		return StatusOK
	case ratio <= overThreshold:
		return StatusWarning
	default:
		return StatusOver
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// DaySummary holds the aggregate for one calendar day. Day is the local
// midnight identifying the day; PlanCoins is the budget in effect when the
// summary was computed.
type DaySummary struct {
	Day        time.Time
	TotalCoins int
	EntryCount int
	PlanCoins  int
}

// RemainingCoins returns how much of the plan is left, floored at zero.
func (d DaySummary) RemainingCoins() int {
	if r := d.PlanCoins - d.TotalCoins; r > 0 {
		return r
	}
	return 0
}

// OverspentCoins returns how far past the plan the day went, floored at zero.
func (d DaySummary) OverspentCoins() int {
	if o := d.TotalCoins - d.PlanCoins; o > 0 {
		return o
	}
	return 0
}

// FillRatio returns the consumed fraction of the plan, clamped to [0, 1].
// A plan of zero or less yields 0 rather than a division blow-up.
func (d DaySummary) FillRatio() float64 {
	if d.PlanCoins <= 0 {
		return 0
	}
	r := float64(d.TotalCoins) / float64(d.PlanCoins)
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

// RawRatio returns the unclamped total/plan ratio, 0 when the plan is
// non-positive. Status bands are derived from this value so an overspent
// day still classifies as over.
func (d DaySummary) RawRatio() float64 {
	if d.PlanCoins <= 0 {
		return 0
	}
	return float64(d.TotalCoins) / float64(d.PlanCoins)
}

// Status returns the status band for the day.
func (d DaySummary) Status() Status {
	return StatusForRatio(d.RawRatio())
}
