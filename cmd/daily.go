package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Per-day summary table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	plan, err := app.store.Plan()
	if err != nil {
		return err
	}
	entries, err := app.store.Entries()
	if err != nil {
		return err
	}

	start, end := app.window()
	summaries := pipeline.SummarizeRange(app.cal, start, end, entries, plan.DailyCoins)

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAILY COINS  " + app.windowLabel()))
	fmt.Println()

	// Most recent first, like a ledger
	rows := make([][]string, 0, len(summaries))
	for i := len(summaries) - 1; i >= 0; i-- {
		s := summaries[i]
		rows = append(rows, []string{
			s.Day.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(s.Day.Weekday())),
			cli.FormatCoins(s.TotalCoins),
			cli.FormatCoins(s.EntryCount),
			cli.FormatCoins(s.RemainingCoins()),
			cli.FormatPercent(s.FillRatio()),
			cli.FormatStatus(s.Status()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Coins", "Entries", "Left", "Fill", "Status"},
		Rows:    rows,
	}))

	return nil
}
