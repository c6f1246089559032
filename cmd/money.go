package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
)

var moneyCmd = &cobra.Command{
	Use:   "money",
	Short: "Real-currency totals for priced entries",
	RunE:  runMoney,
}

func init() {
	rootCmd.AddCommand(moneyCmd)
}

func runMoney(_ *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	entries, err := app.store.Entries()
	if err != nil {
		return err
	}

	start, end := app.window()
	ranged := pipeline.EntriesInRange(app.cal, start, end, entries)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONEY  " + app.windowLabel()))
	fmt.Println()

	if flagCurrency != "" {
		total := pipeline.TotalMoney(ranged, flagCurrency)
		fmt.Printf("  Total (%s)       %s\n", flagCurrency, cli.FormatMoney(total, flagCurrency))
	} else {
		byCurrency := pipeline.MoneyByCurrency(app.cal, start, end, entries)
		if len(byCurrency) == 0 {
			fmt.Println("  No priced entries in range.")
			fmt.Println()
			return nil
		}

		currencies := make([]string, 0, len(byCurrency))
		for cur := range byCurrency {
			currencies = append(currencies, cur)
		}
		sort.Strings(currencies)

		rows := make([][]string, 0, len(currencies))
		for _, cur := range currencies {
			rows = append(rows, []string{cur, cli.FormatMoney(byCurrency[cur], cur)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Currency", "Total"},
			Rows:    rows,
		}))
	}

	perCoin := pipeline.AverageCostPerCoin(app.cal, start, end, pipeline.FilterByCurrency(entries, flagCurrency))
	if !perCoin.IsZero() {
		fmt.Printf("  Avg cost/coin    %s\n", perCoin.StringFixed(4))
		if flagCurrency == "" {
			fmt.Println(cli.Muted("  (mixed currencies are summed as-is; pass --currency for an exact figure)"))
		}
	}
	fmt.Println()

	return nil
}
