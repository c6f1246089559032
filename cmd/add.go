package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

var (
	flagNote   string
	flagPrice  string
	flagAt     string
	flagPreset string
	flagColor  string
	flagIcon   string
)

var addCmd = &cobra.Command{
	Use:   "add <coins>",
	Short: "Record a spending entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagNote, "note", "", "Free-text note")
	addCmd.Flags().StringVar(&flagPrice, "price", "", "Real-currency price (decimal)")
	addCmd.Flags().StringVar(&flagAt, "at", "", "Timestamp (RFC3339 or 2006-01-02 15:04), default now")
	addCmd.Flags().StringVar(&flagPreset, "preset", "", "Preset id to link")
	addCmd.Flags().StringVar(&flagColor, "color", "", "Color tag")
	addCmd.Flags().StringVar(&flagIcon, "icon", "", "Icon tag")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	coins, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid coin amount %q: %w", args[0], err)
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	at := time.Now()
	if flagAt != "" {
		at, err = parseWhen(flagAt)
		if err != nil {
			return err
		}
	}

	e := model.NewEntry(at, coins)
	e.Note = flagNote
	e.PresetID = flagPreset
	e.Color = flagColor
	e.Icon = flagIcon

	if flagPrice != "" {
		amount, err := decimal.NewFromString(flagPrice)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", flagPrice, err)
		}
		currency := flagCurrency
		if currency == "" {
			currency = app.cfg.General.DefaultCurrency
		}
		e.Money = model.Priced(amount, currency)
	}

	if err := app.store.Add(e); err != nil {
		return err
	}

	if !flagQuiet {
		line := fmt.Sprintf("  Added %s coins", cli.FormatCoins(e.Coins))
		if e.Money.IsPriced() {
			line += " (" + cli.FormatMoney(e.Money.Amount(), e.Money.Currency()) + ")"
		}
		fmt.Printf("%s  id=%s\n", line, e.ID)
	}
	return nil
}

func parseWhen(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
