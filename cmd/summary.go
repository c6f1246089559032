package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
)

func runSummary(_ *cobra.Command, _ []string) error {
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
	ranged := pipeline.EntriesInRange(app.cal, start, end, entries)
	now := time.Now()

	today := pipeline.SummarizeDay(app.cal, now, entries, plan.DailyCoins)
	fc := pipeline.ForecastDay(app.cal, now, entries, plan.DailyCoins)

	fmt.Println()
	fmt.Println(cli.RenderTitle("COIN BUDGET  " + app.windowLabel()))
	fmt.Println()

	fmt.Printf("  Today        %s / %s coins  %s  %s\n",
		cli.FormatCoins(today.TotalCoins),
		cli.FormatCoins(plan.DailyCoins),
		cli.RenderFillBar(today.FillRatio(), today.Status(), 20),
		cli.RenderStatus(today.Status()),
	)
	fmt.Printf("  Forecast     %s coins by midnight (%s of plan)\n",
		cli.FormatCoins(int(fc.ProjectedCoins)),
		cli.FormatPercent(fc.FillRatio),
	)
	fmt.Println()

	rows := [][]string{
		{"Plan", fmt.Sprintf("%s (%s coins/day)", plan.Kind, cli.FormatCoins(plan.DailyCoins))},
		{"Entries", cli.FormatCoins(len(ranged))},
		{"Total coins", cli.FormatCoins(pipeline.TotalCoins(ranged))},
		{"Avg coins/day", cli.FormatAverage(pipeline.AverageCoins(app.cal, start, end, entries))},
		{"Current streak", cli.FormatStreak(pipeline.CurrentUnderLimitStreak(app.cal, now, entries, plan.DailyCoins))},
		{"Best streak", cli.FormatStreak(pipeline.MaxUnderLimitStreak(app.cal, start, end, entries, plan.DailyCoins))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	money := pipeline.MoneyByCurrency(app.cal, start, end, entries)
	if len(money) > 0 {
		currencies := make([]string, 0, len(money))
		for cur := range money {
			currencies = append(currencies, cur)
		}
		sort.Strings(currencies)

		moneyRows := make([][]string, 0, len(currencies))
		for _, cur := range currencies {
			moneyRows = append(moneyRows, []string{cur, cli.FormatMoney(money[cur], cur)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Money",
			Headers: []string{"Currency", "Total"},
			Rows:    moneyRows,
		}))
	}

	return nil
}
