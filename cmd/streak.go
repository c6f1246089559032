package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Under-limit streaks",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
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
	now := time.Now()
	current := pipeline.CurrentUnderLimitStreak(app.cal, now, entries, plan.DailyCoins)
	best := pipeline.MaxUnderLimitStreak(app.cal, start, end, entries, plan.DailyCoins)

	fmt.Println()
	fmt.Println(cli.RenderTitle("UNDER-LIMIT STREAKS"))
	fmt.Println()
	fmt.Printf("  Current   %s\n", cli.FormatStreak(current))
	fmt.Printf("  Best (%s)  %s\n\n", app.windowLabel(), cli.FormatStreak(best))

	return nil
}
