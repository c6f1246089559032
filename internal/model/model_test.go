package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewEntryClampsNegativeCoins(t *testing.T) {
	e := NewEntry(time.Now(), -25)
	if e.Coins != 0 {
		t.Fatalf("Coins = %d, want 0", e.Coins)
	}
	if e.ID == "" {
		t.Fatal("NewEntry produced an empty id")
	}
}

func TestPricedMoneyDefaultsCurrency(t *testing.T) {
	m := Priced(decimal.NewFromInt(10), "")
	if !m.IsPriced() {
		t.Fatal("IsPriced = false for priced money")
	}
	if m.Currency() != DefaultCurrency {
		t.Fatalf("Currency = %q, want %q", m.Currency(), DefaultCurrency)
	}
}

func TestUnpricedMoneyHasNoCurrency(t *testing.T) {
	m := Unpriced()
	if m.IsPriced() {
		t.Fatal("IsPriced = true for unpriced money")
	}
	if m.Currency() != "" {
		t.Fatalf("Currency = %q, want empty", m.Currency())
	}
	if !m.Amount().IsZero() {
		t.Fatalf("Amount = %v, want zero", m.Amount())
	}
}

func TestPlanKindRecommendations(t *testing.T) {
	cases := []struct {
		kind PlanKind
		want int
	}{
		{PlanReduce, 80},
		{PlanMaintain, 100},
		{PlanGain, 130},
		{PlanCustom, 0},
	}
	for _, tc := range cases {
		if got := tc.kind.RecommendedCoins(); got != tc.want {
			t.Fatalf("RecommendedCoins(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestNewPlanCustomKeepsExplicitBudget(t *testing.T) {
	p := NewPlan(PlanCustom, 150)
	if p.DailyCoins != 150 {
		t.Fatalf("DailyCoins = %d, want 150", p.DailyCoins)
	}

	// Non-custom kinds ignore the explicit value
	p = NewPlan(PlanReduce, 999)
	if p.DailyCoins != 80 {
		t.Fatalf("DailyCoins = %d, want 80", p.DailyCoins)
	}
}

func TestStatusThresholds(t *testing.T) {
	cases := []struct {
		ratio float64
		want  Status
	}{
		{0, StatusOK},
		{0.79, StatusOK},
		{0.80, StatusWarning},
		{1.00, StatusWarning},
		{1.01, StatusOver},
		{2.5, StatusOver},
	}
	for _, tc := range cases {
		if got := StatusForRatio(tc.ratio); got != tc.want {
			t.Fatalf("StatusForRatio(%.2f) = %s, want %s", tc.ratio, got, tc.want)
		}
	}
}

func TestDaySummaryDerivedValues(t *testing.T) {
	s := DaySummary{TotalCoins: 65, EntryCount: 3, PlanCoins: 100}
	if got := s.RemainingCoins(); got != 35 {
		t.Fatalf("RemainingCoins = %d, want 35", got)
	}
	if got := s.OverspentCoins(); got != 0 {
		t.Fatalf("OverspentCoins = %d, want 0", got)
	}
	if got := s.FillRatio(); got != 0.65 {
		t.Fatalf("FillRatio = %.2f, want 0.65", got)
	}
	if got := s.Status(); got != StatusOK {
		t.Fatalf("Status = %s, want ok", got)
	}
}

func TestDaySummaryOverspend(t *testing.T) {
	s := DaySummary{TotalCoins: 120, EntryCount: 4, PlanCoins: 100}
	if got := s.FillRatio(); got != 1.0 {
		t.Fatalf("FillRatio = %.2f, want clamped 1.0", got)
	}
	if got := s.OverspentCoins(); got != 20 {
		t.Fatalf("OverspentCoins = %d, want 20", got)
	}
	if got := s.RemainingCoins(); got != 0 {
		t.Fatalf("RemainingCoins = %d, want 0", got)
	}
	if got := s.Status(); got != StatusOver {
		t.Fatalf("Status = %s, want over", got)
	}
}

func TestDaySummaryZeroPlan(t *testing.T) {
	s := DaySummary{TotalCoins: 50, PlanCoins: 0}
	if got := s.FillRatio(); got != 0 {
		t.Fatalf("FillRatio with zero plan = %.2f, want 0", got)
	}
	s.PlanCoins = -10
	if got := s.FillRatio(); got != 0 {
		t.Fatalf("FillRatio with negative plan = %.2f, want 0", got)
	}
}
