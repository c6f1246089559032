package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagRemoveDay string

var removeCmd = &cobra.Command{
	Use:   "remove [id-prefix]",
	Short: "Remove an entry by id, or a whole day with --day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&flagRemoveDay, "day", "", "Remove every entry on this day (2006-01-02)")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	if flagRemoveDay != "" {
		day, err := parseWhen(flagRemoveDay)
		if err != nil {
			return err
		}
		n, err := app.store.DeleteDay(app.cal, day)
		if err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Removed %d entries on %s\n", n, app.cal.StartOfDay(day).Format("2006-01-02"))
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("need an id prefix or --day")
	}
	prefix := args[0]

	entries, err := app.store.Entries()
	if err != nil {
		return err
	}

	matched := ""
	for _, e := range entries {
		if !strings.HasPrefix(e.ID, prefix) {
			continue
		}
		if matched != "" {
			return fmt.Errorf("id prefix %q is ambiguous", prefix)
		}
		matched = e.ID
	}
	if matched == "" {
		return fmt.Errorf("no entry matches id prefix %q", prefix)
	}

	if err := app.store.Delete(matched); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Removed entry %s\n", matched)
	}
	return nil
}
