// Package tui renders a live dashboard for today's budget: spend so far,
// the end-of-day forecast, the recent daily trend, and the current streak.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KenyaRunnerApps/roadhotmeal/internal/calendar"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/cli"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/model"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/pipeline"
	"github.com/KenyaRunnerApps/roadhotmeal/internal/store"
)

const chartDays = 14

type tickMsg time.Time

type changedMsg struct{}

type loadedMsg struct {
	plan    model.Plan
	entries []model.Entry
	err     error
}

// App is the bubbletea model for the dashboard.
type App struct {
	store   *store.Store
	cal     calendar.Calendar
	changes chan struct{}

	plan    model.Plan
	entries []model.Entry
	bar     progress.Model
	width   int
	err     error
}

// New builds the dashboard around an open store. Store mutations from any
// other writer in the process wake the view through the subscription.
func New(st *store.Store, cal calendar.Calendar) App {
	changes := make(chan struct{}, 1)
	st.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return App{
		store:   st,
		cal:     cal,
		changes: changes,
		bar:     progress.New(progress.WithDefaultGradient()),
		width:   80,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.load, a.waitForChange, tick())
}

func (a App) load() tea.Msg {
	plan, err := a.store.Plan()
	if err != nil {
		return loadedMsg{err: err}
	}
	entries, err := a.store.Entries()
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{plan: plan, entries: entries}
}

func (a App) waitForChange() tea.Msg {
	<-a.changes
	return changedMsg{}
}

func tick() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "r":
			return a, a.load
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.bar.Width = min(msg.Width-20, 48)

	case loadedMsg:
		a.plan = msg.plan
		a.entries = msg.entries
		a.err = msg.err

	case changedMsg:
		return a, tea.Batch(a.load, a.waitForChange)

	case tickMsg:
		// The forecast drifts with the clock even when nothing changed.
		return a, tick()
	}
	return a, nil
}

var (
	tuiTitle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	tuiLabel = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	tuiValue = lipgloss.NewStyle().Foreground(cli.ColorText)
	tuiHint  = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)

func (a App) View() string {
	if a.err != nil {
		return fmt.Sprintf("\n  error: %v\n\n  q to quit\n", a.err)
	}

	now := time.Now()
	today := pipeline.SummarizeDay(a.cal, now, a.entries, a.plan.DailyCoins)
	fc := pipeline.ForecastDay(a.cal, now, a.entries, a.plan.DailyCoins)
	streak := pipeline.CurrentUnderLimitStreak(a.cal, now, a.entries, a.plan.DailyCoins)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(tuiTitle.Render("  roadhotmeal — " + today.Day.Format("Mon 2 Jan")))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s / %s coins  %s\n",
		tuiLabel.Render("today"),
		tuiValue.Render(cli.FormatCoins(today.TotalCoins)),
		tuiValue.Render(cli.FormatCoins(a.plan.DailyCoins)),
		cli.RenderStatus(today.Status()),
	))
	b.WriteString("  " + a.bar.ViewAs(today.FillRatio()) + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s coins by midnight (%s of plan)\n",
		tuiLabel.Render("forecast"),
		tuiValue.Render(cli.FormatCoins(int(fc.ProjectedCoins))),
		cli.FormatPercent(fc.FillRatio),
	))
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		tuiLabel.Render("streak  "),
		tuiValue.Render(cli.FormatStreak(streak)),
	))

	b.WriteString(a.renderChart(now))
	b.WriteString("\n")
	b.WriteString(tuiHint.Render("  r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderChart(now time.Time) string {
	end := a.cal.StartOfDay(now)
	start := end.AddDate(0, 0, -(chartDays - 1))
	summaries := pipeline.SummarizeRange(a.cal, start, end, a.entries, a.plan.DailyCoins)

	values := make([]float64, 0, len(summaries))
	for _, s := range summaries {
		values = append(values, float64(s.TotalCoins))
	}

	return fmt.Sprintf("  %s %s\n",
		tuiLabel.Render(fmt.Sprintf("last %dd", chartDays)),
		cli.RenderSparkline(values),
	)
}
