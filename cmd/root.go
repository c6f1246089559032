package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/calendar"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/config"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/store"
)

var (
	flagDays     int
	flagWeek     bool
	flagMonth    bool
	flagCurrency string
	flagDataDir  string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "roadhotmeal",
	Short: "Daily coin-budget tracker",
	Long:  "Track daily spending in coins against a plan: summaries, trends, streaks, and a same-day forecast.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagWeek, "week", false, "Window from the start of the current week")
	rootCmd.PersistentFlags().BoolVar(&flagMonth, "month", false, "Window from the start of the current month")
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Currency filter for money totals")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory override")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// appContext bundles what every command needs: preferences, the calendar
// derived from them, and the open store.
type appContext struct {
	cfg   config.Config
	cal   calendar.Calendar
	store *store.Store
}

func (a *appContext) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

// openApp loads config, builds the calendar, and opens the entry store.
func openApp() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dataDir := config.DataDir(cfg)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	st, err := store.Open(filepath.Join(dataDir, "entries.db"))
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:   cfg,
		cal:   calendar.New(time.Local, config.ParseWeekday(cfg.General.FirstWeekday)),
		store: st,
	}, nil
}

// windowDays resolves the --days flag against the configured default.
func (a *appContext) windowDays() int {
	if flagDays > 0 {
		return flagDays
	}
	if a.cfg.General.DefaultDays > 0 {
		return a.cfg.General.DefaultDays
	}
	return 30
}

// window returns the inclusive [start, end] day range ending today.
func (a *appContext) window() (time.Time, time.Time) {
	return resolveWindow(a.cal, time.Now(), a.windowDays(), flagWeek, flagMonth)
}

// windowLabel describes the active window for table titles.
func (a *appContext) windowLabel() string {
	switch {
	case flagWeek:
		return "This week"
	case flagMonth:
		return "This month"
	}
	return fmt.Sprintf("Last %dd", a.windowDays())
}

// resolveWindow picks the day range for the active flags: week and month
// windows run from the calendar period start through today, otherwise the
// range covers the trailing days count. Week wins if both flags are set.
func resolveWindow(cal calendar.Calendar, now time.Time, days int, week, month bool) (time.Time, time.Time) {
	end := cal.StartOfDay(now)
	switch {
	case week:
		return cal.StartOfWeek(now), end
	case month:
		return cal.StartOfMonth(now), end
	}
	return end.AddDate(0, 0, -(days - 1)), end
}
