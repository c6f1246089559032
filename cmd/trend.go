package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
)

var flagWindow int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Moving average of daily coin spend",
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().IntVarP(&flagWindow, "window", "w", 7, "Moving-average window in days")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
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
	points := pipeline.MovingAverage(summaries, flagWindow)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TREND  %dd window, %s", flagWindow, app.windowLabel())))
	fmt.Println()

	if len(points) == 0 {
		fmt.Printf("  Not enough days for a %d-day window.\n\n", flagWindow)
		return nil
	}

	values := make([]float64, 0, len(points))
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		values = append(values, p.Average)
		rows = append(rows, []string{
			p.Day.Format("2006-01-02"),
			cli.FormatAverage(p.Average),
		})
	}

	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", fmt.Sprintf("%dd avg", flagWindow)},
		Rows:    rows,
	}))

	return nil
}
