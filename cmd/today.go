package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's spending and end-of-day forecast",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
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

	now := time.Now()
	s := pipeline.SummarizeDay(app.cal, now, entries, plan.DailyCoins)
	fc := pipeline.ForecastDay(app.cal, now, entries, plan.DailyCoins)

	fmt.Println()
	fmt.Println(cli.RenderTitle("TODAY  " + s.Day.Format("Mon 2 Jan")))
	fmt.Println()

	fmt.Printf("  Spent        %s / %s coins (%d entries)\n",
		cli.FormatCoins(s.TotalCoins), cli.FormatCoins(plan.DailyCoins), s.EntryCount)
	fmt.Printf("  Fill         %s %s\n",
		cli.RenderFillBar(s.FillRatio(), s.Status(), 28), cli.FormatPercent(s.FillRatio()))
	if over := s.OverspentCoins(); over > 0 {
		fmt.Printf("  Overspent    %s coins\n", cli.FormatCoins(over))
	} else {
		fmt.Printf("  Remaining    %s coins\n", cli.FormatCoins(s.RemainingCoins()))
	}
	fmt.Println()

	fmt.Printf("  Forecast     %s coins by midnight  %s\n",
		cli.FormatCoins(int(fc.ProjectedCoins)), cli.RenderStatus(fc.Status))
	fmt.Printf("               %s of plan at the current rate\n\n",
		cli.FormatPercent(fc.FillRatio))

	for _, e := range pipeline.EntriesOnDay(app.cal, now, entries) {
		line := fmt.Sprintf("  %s  %4s coins", e.Time.Format("15:04"), cli.FormatCoins(e.Coins))
		if e.Money.IsPriced() {
			line += "  " + cli.FormatMoney(e.Money.Amount(), e.Money.Currency())
		}
		if e.Note != "" {
			line += "  " + cli.Muted(e.Note)
		}
		fmt.Println(line)
	}
	fmt.Println()

	return nil
}
