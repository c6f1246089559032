package store

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/calendar"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testEntry(t *testing.T, day string, hour, coins int) model.Entry {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", day, err)
	}
	return model.NewEntry(d.Add(time.Duration(hour)*time.Hour), coins)
}

func TestEntriesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	e := testEntry(t, "2025-04-01", 9, 42)
	e.Note = "coffee"
	e.Money = model.Priced(decimal.RequireFromString("3.50"), "EUR")
	e.PresetID = "preset-1"
	e.Color = "teal"
	e.Icon = "cup"

	if err := s.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}

	got := entries[0]
	if got.ID != e.ID {
		t.Fatalf("ID = %s, want %s", got.ID, e.ID)
	}
	if !got.Time.Equal(e.Time) {
		t.Fatalf("Time = %v, want %v", got.Time, e.Time)
	}
	if got.Coins != 42 || got.Note != "coffee" || got.PresetID != "preset-1" ||
		got.Color != "teal" || got.Icon != "cup" {
		t.Fatalf("fields did not round-trip: %+v", got)
	}
	if !got.Money.IsPriced() {
		t.Fatal("Money.IsPriced = false after round trip")
	}
	if !got.Money.Amount().Equal(decimal.RequireFromString("3.50")) {
		t.Fatalf("Money.Amount = %v, want 3.50", got.Money.Amount())
	}
	if got.Money.Currency() != "EUR" {
		t.Fatalf("Money.Currency = %s, want EUR", got.Money.Currency())
	}
}

func TestEntriesUnpricedRoundTrip(t *testing.T) {
	s := openTestStore(t)
	if err := s.Add(testEntry(t, "2025-04-01", 9, 10)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if entries[0].Money.IsPriced() {
		t.Fatal("Money.IsPriced = true for unpriced entry")
	}
}

func TestEntriesSortedByTime(t *testing.T) {
	s := openTestStore(t)

	// Inserted out of order
	for _, e := range []model.Entry{
		testEntry(t, "2025-04-03", 10, 1),
		testEntry(t, "2025-04-01", 10, 2),
		testEntry(t, "2025-04-02", 10, 3),
	} {
		if err := s.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Time.Before(entries[i-1].Time) {
			t.Fatalf("entries not sorted ascending at index %d", i)
		}
	}
}

func TestReplaceKeepsIdentity(t *testing.T) {
	s := openTestStore(t)

	e := testEntry(t, "2025-04-01", 9, 10)
	if err := s.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}

	e.Coins = 25
	e.Note = "edited"
	if err := s.Replace(e); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}
	if entries[0].Coins != 25 || entries[0].Note != "edited" {
		t.Fatalf("replace did not apply: %+v", entries[0])
	}
}

func TestReplaceUnknownIdFails(t *testing.T) {
	s := openTestStore(t)
	err := s.Replace(testEntry(t, "2025-04-01", 9, 10))
	if err != ErrNotFound {
		t.Fatalf("Replace unknown id error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	s := openTestStore(t)

	e := testEntry(t, "2025-04-01", 9, 10)
	if err := s.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Delete(e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries length = %d, want 0", len(entries))
	}

	if err := s.Delete(e.ID); err != ErrNotFound {
		t.Fatalf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteDay(t *testing.T) {
	s := openTestStore(t)
	cal := calendar.New(time.UTC, time.Monday)

	for _, e := range []model.Entry{
		testEntry(t, "2025-04-01", 9, 10),
		testEntry(t, "2025-04-01", 20, 15),
		testEntry(t, "2025-04-02", 9, 20),
	} {
		if err := s.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	day := time.Date(2025, 4, 1, 14, 0, 0, 0, time.UTC)
	n, err := s.DeleteDay(cal, day)
	if err != nil {
		t.Fatalf("DeleteDay: %v", err)
	}
	if n != 2 {
		t.Fatalf("deleted = %d, want 2", n)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}
	if !cal.SameDay(entries[0].Time, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("surviving entry on wrong day: %v", entries[0].Time)
	}
}

func TestPlanDefaultsWhenUnset(t *testing.T) {
	s := openTestStore(t)

	plan, err := s.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan != model.DefaultPlan() {
		t.Fatalf("Plan = %+v, want default", plan)
	}
}

func TestPlanRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := model.NewPlan(model.PlanCustom, 120)
	if err := s.SavePlan(want); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	got, err := s.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if got != want {
		t.Fatalf("Plan = %+v, want %+v", got, want)
	}
}

func TestSubscribeFiresOnMutations(t *testing.T) {
	s := openTestStore(t)

	fired := 0
	s.Subscribe(func() { fired++ })

	e := testEntry(t, "2025-04-01", 9, 10)
	if err := s.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.SavePlan(model.NewPlan(model.PlanReduce, 0)); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if err := s.Delete(e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if fired != 3 {
		t.Fatalf("subscriber fired %d times, want 3", fired)
	}

	// Reads do not notify
	if _, err := s.Entries(); err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if fired != 3 {
		t.Fatalf("subscriber fired on read: %d", fired)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)

	e1 := testEntry(t, "2025-04-01", 9, 10)
	e1.Money = model.Priced(decimal.RequireFromString("2.25"), "USD")
	e2 := testEntry(t, "2025-04-02", 12, 30)
	for _, e := range []model.Entry{e1, e2} {
		if err := src.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := src.SavePlan(model.NewPlan(model.PlanCustom, 90)); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	var buf bytes.Buffer
	if err := src.Export(&buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := openTestStore(t)
	n, err := dst.Import(&buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported = %d, want 2", n)
	}

	plan, err := dst.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Kind != model.PlanCustom || plan.DailyCoins != 90 {
		t.Fatalf("imported plan = %+v, want custom/90", plan)
	}

	entries, err := dst.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries length = %d, want 2", len(entries))
	}
	if !entries[0].Money.IsPriced() || entries[0].Money.Currency() != "USD" {
		t.Fatalf("priced entry did not survive import: %+v", entries[0])
	}
}

// Snapshots are hand-editable JSON, so ids can be any string. Short ids
// must survive as-is and empty ids get a fresh one assigned.
func TestImportHandWrittenIDs(t *testing.T) {
	s := openTestStore(t)

	snap := `{
		"plan": {"kind": "maintain", "daily_coins": 100},
		"entries": [
			{"id": "abc", "time": "2025-04-01T09:00:00Z", "coins": 10},
			{"id": "", "time": "2025-04-01T12:00:00Z", "coins": 20}
		]
	}`
	n, err := s.Import(strings.NewReader(snap))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported = %d, want 2", n)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if entries[0].ID != "abc" {
		t.Fatalf("short id = %q, want \"abc\"", entries[0].ID)
	}
	if entries[1].ID == "" {
		t.Fatal("empty id was not replaced on import")
	}
}
