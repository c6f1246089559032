package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries in the current window",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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
	if len(ranged) == 0 {
		fmt.Println("\n  No entries in range.")
		return nil
	}

	rows := make([][]string, 0, len(ranged))
	for _, e := range ranged {
		price := ""
		if e.Money.IsPriced() {
			price = cli.FormatMoney(e.Money.Amount(), e.Money.Currency())
		}
		rows = append(rows, []string{
			e.Time.Format("2006-01-02 15:04"),
			cli.FormatCoins(e.Coins),
			price,
			e.Note,
			cli.FormatID(e.ID),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Time", "Coins", "Price", "Note", "ID"},
		Rows:    rows,
	}))
	return nil
}
