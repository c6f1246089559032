// Package store persists spending entries and the plan in a local SQLite
// database. It owns the canonical collections; the pipeline only ever sees
// snapshots handed out by Entries.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/KenyaRunnerApps/roadhotmeal/internal/calendar"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

// ErrNotFound is returned when an entry id does not exist.
var ErrNotFound = errors.New("entry not found")

const (
	settingPlanKind  = "plan_kind"
	settingPlanCoins = "plan_coins"
)

// Store wraps the SQLite database. Mutations notify subscribers after
// commit so views can recompute; the mutex only serializes access to the
// subscriber list and the multi-statement write paths.
type Store struct {
	db *sql.DB

	mu   sync.Mutex
	subs []func()
}

// Open opens or creates the database at dbPath.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Subscribe registers fn to run after every committed mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Plan loads the stored plan, or the default when none has been saved.
func (s *Store) Plan() (model.Plan, error) {
	kind, okKind, err := s.setting(settingPlanKind)
	if err != nil {
		return model.Plan{}, err
	}
	coinsStr, okCoins, err := s.setting(settingPlanCoins)
	if err != nil {
		return model.Plan{}, err
	}
	if !okKind || !okCoins {
		return model.DefaultPlan(), nil
	}

	coins, err := strconv.Atoi(coinsStr)
	if err != nil {
		return model.Plan{}, fmt.Errorf("corrupt plan_coins setting: %w", err)
	}
	return model.Plan{Kind: model.PlanKind(kind), DailyCoins: coins}, nil
}

// SavePlan stores the plan and notifies subscribers.
func (s *Store) SavePlan(p model.Plan) error {
	s.mu.Lock()
	err := func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		for key, value := range map[string]string{
			settingPlanKind:  string(p.Kind),
			settingPlanCoins: strconv.Itoa(p.DailyCoins),
		} {
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value,
			); err != nil {
				return err
			}
		}
		return tx.Commit()
	}()
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	s.notify()
	return nil
}

func (s *Store) setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Entries returns all entries sorted ascending by timestamp. The slice is
// a fresh snapshot each call; the pipeline assumes it is not mutated while
// aggregating.
func (s *Store) Entries() ([]model.Entry, error) {
	rows, err := s.db.Query(`SELECT id, at, coins, note, price, currency, preset_id, color, icon
		FROM entries ORDER BY at ASC`)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// ORDER BY at (RFC3339 text) is almost ascending already; re-sort
	// because variable fractional-second digits break lexical ordering.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
	return entries, nil
}

// Add inserts a new entry.
func (s *Store) Add(e model.Entry) error {
	if err := s.exec(insertEntrySQL, entryArgs(e)...); err != nil {
		return fmt.Errorf("adding entry: %w", err)
	}
	s.notify()
	return nil
}

// Replace overwrites the entry with e's id. Identity is immutable; every
// other field takes e's value.
func (s *Store) Replace(e model.Entry) error {
	args := append(entryArgs(e)[1:], e.ID) // same order as insert, id moved to the WHERE
	res, err := s.db.Exec(`UPDATE entries
		SET at = ?, coins = ?, note = ?, price = ?, currency = ?, preset_id = ?, color = ?, icon = ?
		WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("replacing entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notify()
	return nil
}

// Delete removes the entry with the given id.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notify()
	return nil
}

// DeleteDay removes every entry on day's calendar day and returns how many
// were removed.
func (s *Store) DeleteDay(cal calendar.Calendar, day time.Time) (int, error) {
	entries, err := s.Entries()
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	deleted, err := func() (int, error) {
		tx, err := s.db.Begin()
		if err != nil {
			return 0, err
		}
		defer func() { _ = tx.Rollback() }()

		count := 0
		for _, e := range entries {
			if !cal.SameDay(e.Time, day) {
				continue
			}
			if _, err := tx.Exec("DELETE FROM entries WHERE id = ?", e.ID); err != nil {
				return 0, err
			}
			count++
		}
		return count, tx.Commit()
	}()
	s.mu.Unlock()

	if err != nil {
		return 0, fmt.Errorf("deleting day: %w", err)
	}
	if deleted > 0 {
		s.notify()
	}
	return deleted, nil
}

const insertEntrySQL = `INSERT INTO entries
	(id, at, coins, note, price, currency, preset_id, color, icon)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *Store) exec(query string, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(query, args...)
	return err
}

func entryArgs(e model.Entry) []any {
	var price, currency any
	if e.Money.IsPriced() {
		price = e.Money.Amount().String()
		currency = e.Money.Currency()
	}
	return []any{
		e.ID,
		e.Time.UTC().Format(time.RFC3339Nano),
		e.Coins,
		e.Note,
		price,
		currency,
		e.PresetID,
		e.Color,
		e.Icon,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (model.Entry, error) {
	var (
		e        model.Entry
		at       string
		price    sql.NullString
		currency sql.NullString
	)
	if err := row.Scan(&e.ID, &at, &e.Coins, &e.Note, &price, &currency,
		&e.PresetID, &e.Color, &e.Icon); err != nil {
		return model.Entry{}, fmt.Errorf("scanning entry: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing entry time %q: %w", at, err)
	}
	e.Time = t

	if price.Valid {
		amount, err := decimal.NewFromString(price.String)
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing entry price %q: %w", price.String, err)
		}
		e.Money = model.Priced(amount, currency.String)
	}
	return e, nil
}
