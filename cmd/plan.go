package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan [kind] [coins]",
	Short: "Show or change the daily plan",
	Long: "With no arguments, runs an interactive chooser. " +
		"Pass a kind (reduce/maintain/gain/custom) and, for custom, a coin budget.",
	Args: cobra.MaximumNArgs(2),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	if len(args) > 0 {
		return setPlanFromArgs(app, args)
	}

	current, err := app.store.Plan()
	if err != nil {
		return err
	}

	kind := current.Kind
	customCoins := strconv.Itoa(current.DailyCoins)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.PlanKind]().
				Title("Daily plan").
				Description(fmt.Sprintf("Currently %s (%s coins/day)", current.Kind, cli.FormatCoins(current.DailyCoins))).
				Options(
					huh.NewOption("Reduce — 80 coins/day", model.PlanReduce),
					huh.NewOption("Maintain — 100 coins/day", model.PlanMaintain),
					huh.NewOption("Gain — 130 coins/day", model.PlanGain),
					huh.NewOption("Custom", model.PlanCustom),
				).
				Value(&kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Coins per day").
				Value(&customCoins).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive whole number")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return kind != model.PlanCustom }),
	)

	if err := form.Run(); err != nil {
		return err
	}

	coins, _ := strconv.Atoi(customCoins)
	plan := model.NewPlan(kind, coins)
	if err := app.store.SavePlan(plan); err != nil {
		return err
	}

	fmt.Printf("  Plan set to %s (%s coins/day)\n", plan.Kind, cli.FormatCoins(plan.DailyCoins))
	return nil
}

func setPlanFromArgs(app *appContext, args []string) error {
	kind := model.PlanKind(args[0])
	if !kind.Valid() {
		return fmt.Errorf("unknown plan kind %q (want reduce, maintain, gain, or custom)", args[0])
	}

	coins := 0
	if kind == model.PlanCustom {
		if len(args) < 2 {
			return fmt.Errorf("custom plan needs a coin budget, e.g. `plan custom 120`")
		}
		var err error
		coins, err = strconv.Atoi(args[1])
		if err != nil || coins <= 0 {
			return fmt.Errorf("invalid coin budget %q", args[1])
		}
	}

	plan := model.NewPlan(kind, coins)
	if err := app.store.SavePlan(plan); err != nil {
		return err
	}
	fmt.Printf("  Plan set to %s (%s coins/day)\n", plan.Kind, cli.FormatCoins(plan.DailyCoins))
	return nil
}
