package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

func TestForecastLinearExtrapolation(t *testing.T) {
	cal := testCal()
	day := mustDay(t, "2025-04-01")
	now := day.Add(6 * time.Hour) // quarter of the day elapsed
	entries := []model.Entry{coinEntry(day, 2, 30)}

	fc := ForecastDay(cal, now, entries, 100)
	if fc.SpentCoins != 30 {
		t.Fatalf("SpentCoins = %d, want 30", fc.SpentCoins)
	}
	if math.Abs(fc.ProjectedCoins-120) > 1e-9 {
		t.Fatalf("ProjectedCoins = %.2f, want 120", fc.ProjectedCoins)
	}
	if fc.FillRatio != 1.0 {
		t.Fatalf("FillRatio = %.2f, want clamped 1.0", fc.FillRatio)
	}
	if fc.Status != model.StatusOver {
		t.Fatalf("Status = %s, want over", fc.Status)
	}
}

func TestForecastGuardNearMidnight(t *testing.T) {
	cal := testCal()
	day := mustDay(t, "2025-04-01")
	entries := []model.Entry{coinEntry(day, 0, 10)}

	// Exactly 60 seconds elapsed: still guarded, no extrapolation
	for _, elapsed := range []time.Duration{0, 30 * time.Second, 60 * time.Second} {
		fc := ForecastDay(cal, day.Add(elapsed), entries, 100)
		if fc.ProjectedCoins != 10 {
			t.Fatalf("elapsed %v: ProjectedCoins = %.2f, want spent total 10",
				elapsed, fc.ProjectedCoins)
		}
	}

	// Just past the guard the extrapolation kicks in
	fc := ForecastDay(cal, day.Add(61*time.Second), entries, 100)
	if fc.ProjectedCoins <= 10 {
		t.Fatalf("elapsed 61s: ProjectedCoins = %.2f, want extrapolated above 10", fc.ProjectedCoins)
	}
}

func TestForecastZeroPlan(t *testing.T) {
	cal := testCal()
	day := mustDay(t, "2025-04-01")
	entries := []model.Entry{coinEntry(day, 2, 30)}

	fc := ForecastDay(cal, day.Add(6*time.Hour), entries, 0)
	if fc.FillRatio != 0 {
		t.Fatalf("FillRatio with zero plan = %.2f, want 0", fc.FillRatio)
	}
	if fc.Status != model.StatusOK {
		t.Fatalf("Status with zero plan = %s, want ok", fc.Status)
	}
}

func TestForecastNoSpendProjectsZero(t *testing.T) {
	cal := testCal()
	day := mustDay(t, "2025-04-01")

	fc := ForecastDay(cal, day.Add(12*time.Hour), nil, 100)
	if fc.ProjectedCoins != 0 {
		t.Fatalf("ProjectedCoins = %.2f, want 0", fc.ProjectedCoins)
	}
	if fc.Status != model.StatusOK {
		t.Fatalf("Status = %s, want ok", fc.Status)
	}
}

func TestForecastMidBands(t *testing.T) {
	cal := testCal()
	day := mustDay(t, "2025-04-01")

	// Half the day gone, 45 spent: projects 90, warning band
	entries := []model.Entry{coinEntry(day, 3, 45)}
	fc := ForecastDay(cal, day.Add(12*time.Hour), entries, 100)
	if math.Abs(fc.ProjectedCoins-90) > 1e-9 {
		t.Fatalf("ProjectedCoins = %.2f, want 90", fc.ProjectedCoins)
	}
	if fc.Status != model.StatusWarning {
		t.Fatalf("Status = %s, want warning", fc.Status)
	}

	// Half the day gone, 30 spent: projects 60, ok band
	entries = []model.Entry{coinEntry(day, 3, 30)}
	fc = ForecastDay(cal, day.Add(12*time.Hour), entries, 100)
	if fc.Status != model.StatusOK {
		t.Fatalf("Status = %s, want ok", fc.Status)
	}
	if math.Abs(fc.FillRatio-0.6) > 1e-9 {
		t.Fatalf("FillRatio = %.2f, want 0.60", fc.FillRatio)
	}
}

func TestForecastIgnoresOtherDays(t *testing.T) {
	cal := testCal()
	day := mustDay(t, "2025-04-01")
	entries := []model.Entry{
		coinEntry(day, 2, 30),
		coinEntry(day.AddDate(0, 0, -1), 12, 500),
	}

	fc := ForecastDay(cal, day.Add(6*time.Hour), entries, 100)
	if fc.SpentCoins != 30 {
		t.Fatalf("SpentCoins = %d, want 30 (yesterday excluded)", fc.SpentCoins)
	}
}
