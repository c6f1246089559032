// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

// FormatCoins formats a coin count with comma separators, e.g. 1234 -> "1,234".
func FormatCoins(n int) string {
	return FormatNumber(int64(n))
}

// FormatMoney formats a decimal amount with its currency code,
// e.g. 12.5 USD -> "12.50 USD".
func FormatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatAverage formats a fractional coin average with two decimals.
func FormatAverage(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// FormatStatus returns the display word for a status band.
func FormatStatus(s model.Status) string {
	switch s {
	case model.StatusOK:
		return "OK"
	case model.StatusWarning:
		return "WARNING"
	case model.StatusOver:
		return "OVER"
	default:
		return "?"
	}
}

// FormatID shortens an entry id for table display. Ids are opaque strings,
// not necessarily uuids, so short ones pass through unchanged.
func FormatID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday < 0 || weekday >= len(days) {
		return "?"
	}
	return days[weekday]
}

// FormatStreak renders a day count, e.g. 0 -> "—", 5 -> "5 days".
func FormatStreak(days int) string {
	switch days {
	case 0:
		return "—"
	case 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
