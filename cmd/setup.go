package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to roadhotmeal!")
	fmt.Println()

	// 1. Default time range
	fmt.Println("  1. Default time range")
	fmt.Println("     (1) 7 days")
	fmt.Println("     (2) 30 days [default]")
	fmt.Println("     (3) 90 days")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.General.DefaultDays = 7
	case "3":
		cfg.General.DefaultDays = 90
	default:
		cfg.General.DefaultDays = 30
	}
	fmt.Println()

	// 2. Default currency
	fmt.Println("  2. Default currency for priced entries")
	fmt.Printf("     Current: %s (Enter to keep)\n", cfg.General.DefaultCurrency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != "" {
		cfg.General.DefaultCurrency = currency
	}
	fmt.Println()

	// 3. First day of week
	fmt.Println("  3. First day of the week")
	fmt.Println("     (1) Monday [default]")
	fmt.Println("     (2) Sunday")
	fmt.Print("     > ")
	weekday, _ := reader.ReadString('\n')
	switch strings.TrimSpace(weekday) {
	case "2":
		cfg.General.FirstWeekday = "sunday"
	default:
		cfg.General.FirstWeekday = "monday"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `roadhotmeal setup` anytime to reconfigure, and `roadhotmeal plan` to pick a budget.")
	fmt.Println()

	return nil
}
