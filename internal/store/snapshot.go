package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

// Snapshot is the JSON export format: the plan plus every entry.
type Snapshot struct {
	ExportedAt time.Time       `json:"exported_at"`
	Plan       snapshotPlan    `json:"plan"`
	Entries    []snapshotEntry `json:"entries"`
}

type snapshotPlan struct {
	Kind       string `json:"kind"`
	DailyCoins int    `json:"daily_coins"`
}

type snapshotEntry struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Coins    int       `json:"coins"`
	Note     string    `json:"note,omitempty"`
	Price    *string   `json:"price,omitempty"`
	Currency string    `json:"currency,omitempty"`
	PresetID string    `json:"preset_id,omitempty"`
	Color    string    `json:"color,omitempty"`
	Icon     string    `json:"icon,omitempty"`
}

// Export writes the current plan and entries as JSON.
func (s *Store) Export(w io.Writer) error {
	plan, err := s.Plan()
	if err != nil {
		return err
	}
	entries, err := s.Entries()
	if err != nil {
		return err
	}

	snap := Snapshot{
		ExportedAt: time.Now().UTC(),
		Plan:       snapshotPlan{Kind: string(plan.Kind), DailyCoins: plan.DailyCoins},
		Entries:    make([]snapshotEntry, 0, len(entries)),
	}
	for _, e := range entries {
		se := snapshotEntry{
			ID:       e.ID,
			Time:     e.Time,
			Coins:    e.Coins,
			Note:     e.Note,
			PresetID: e.PresetID,
			Color:    e.Color,
			Icon:     e.Icon,
		}
		if e.Money.IsPriced() {
			p := e.Money.Amount().String()
			se.Price = &p
			se.Currency = e.Money.Currency()
		}
		snap.Entries = append(snap.Entries, se)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// Import reads a snapshot and replaces the stored plan and entries with its
// contents. Returns the number of entries imported.
func (s *Store) Import(r io.Reader) (int, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}

	entries := make([]model.Entry, 0, len(snap.Entries))
	for _, se := range snap.Entries {
		e := model.Entry{
			ID:       se.ID,
			Time:     se.Time,
			Coins:    se.Coins,
			Note:     se.Note,
			PresetID: se.PresetID,
			Color:    se.Color,
			Icon:     se.Icon,
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.Coins < 0 {
			e.Coins = 0
		}
		if se.Price != nil {
			amount, err := decimal.NewFromString(*se.Price)
			if err != nil {
				return 0, fmt.Errorf("entry %s: parsing price %q: %w", se.ID, *se.Price, err)
			}
			e.Money = model.Priced(amount, se.Currency)
		}
		entries = append(entries, e)
	}

	s.mu.Lock()
	err := func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.Exec("DELETE FROM entries"); err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := tx.Exec(insertEntrySQL, entryArgs(e)...); err != nil {
				return err
			}
		}
		return tx.Commit()
	}()
	s.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("importing entries: %w", err)
	}

	kind := model.PlanKind(snap.Plan.Kind)
	if kind.Valid() {
		if err := s.SavePlan(model.Plan{Kind: kind, DailyCoins: snap.Plan.DailyCoins}); err != nil {
			return 0, err
		}
	} else {
		s.notify()
	}
	return len(entries), nil
}
