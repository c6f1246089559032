// Package model holds the value types shared across the engine: spending
// entries, plan configuration, day summaries, and status indicators.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a price is recorded without an explicit currency.
const DefaultCurrency = "USD"

// Money is a tagged variant: either unpriced, or an amount in a currency.
// Constructing a priced value always yields a non-empty currency, so the
// "price implies currency" invariant holds structurally.
type Money struct {
	priced   bool
	amount   decimal.Decimal
	currency string
}

// Unpriced returns the zero Money variant.
func Unpriced() Money {
	return Money{}
}

// Priced returns a Money carrying amount in the given currency.
// An empty currency falls back to DefaultCurrency.
func Priced(amount decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{priced: true, amount: amount, currency: currency}
}

// IsPriced reports whether the variant carries an amount.
func (m Money) IsPriced() bool { return m.priced }

// Amount returns the monetary amount, or decimal zero when unpriced.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency code, or "" when unpriced.
func (m Money) Currency() string { return m.currency }

// Entry is a single spending record. Identity is immutable; the remaining
// fields are replaced wholesale via the store's replace-by-id path.
type Entry struct {
	ID       string
	Time     time.Time
	Coins    int
	Note     string
	Money    Money
	PresetID string
	Color    string
	Icon     string
}

// NewEntry creates an entry with a fresh id at the given time. Negative coin
// amounts are clamped to zero at construction.
func NewEntry(at time.Time, coins int) Entry {
	if coins < 0 {
		coins = 0
	}
	return Entry{
		ID:    uuid.NewString(),
		Time:  at,
		Coins: coins,
	}
}
