// Package tui provides the interactive Bubble Tea dashboard for grana.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"grana/internal/analytics"
	"grana/internal/cli"
	"grana/internal/config"
	"grana/internal/model"
	"grana/internal/scoring"
	"grana/internal/store"
	"grana/internal/tui/components"
	"grana/internal/tui/theme"
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
	historyPageSize  = 15
)

// App is the root Bubble Tea model.
type App struct {
	st     *store.Store
	engine *scoring.Engine

	// Store snapshots
	profile    model.UserProfile
	expenses   []model.Expense
	categories []model.Category
	goals      []model.Goal
	tips       []model.SmartTip

	// Derived for the active window
	window     analytics.Window
	total      float64
	budget     analytics.BudgetSummary
	byCategory []analytics.CategoryTotal

	// UI state
	width     int
	height    int
	activeTab int
	histPage  int
	feedback  string

	// Add-expense form (huh)
	addForm *huh.Form
	addVals addValues
	adding  bool
}

type addValues struct {
	Value       string
	CategoryID  string
	Description string
}

// NewApp creates the dashboard model and takes its first data snapshot.
func NewApp(st *store.Store, cfg config.Config) (App, error) {
	theme.Active = theme.ByName(cfg.Appearance.Theme)

	window := analytics.WindowMonth
	if cfg.General.DefaultWindow == string(analytics.WindowWeek) {
		window = analytics.WindowWeek
	}

	a := App{
		st:     st,
		engine: scoring.New(st),
		window: window,
	}
	if err := a.reload(); err != nil {
		return App{}, err
	}

	// First dashboard run: greet once, then remember it was shown.
	if !a.profile.SeenTutorial {
		a.feedback = "Bem-vindo(a)! Pressione [a] para registrar um gasto."
		if err := st.MarkTutorialSeen(); err != nil {
			return App{}, err
		}
	}
	return a, nil
}

// Run starts the dashboard in the alternate screen.
func Run(st *store.Store, cfg config.Config) error {
	app, err := NewApp(st, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// reload re-reads every store and recomputes the derived figures.
func (a *App) reload() error {
	profile, err := a.st.Profile()
	if err != nil {
		return err
	}
	a.profile = profile
	a.expenses = a.st.Expenses(profile.ID)
	a.categories = a.st.Categories()
	a.goals = a.st.Goals(profile.ID)
	a.tips = analytics.GenerateTips(a.expenses, a.categories)
	a.recompute()
	return nil
}

// recompute refreshes the window-dependent aggregates.
func (a *App) recompute() {
	visible := analytics.FilterByWindow(a.expenses, a.window, model.Today())
	a.total = analytics.SumValues(visible)
	a.budget = analytics.Budget(a.goals, a.window, a.total)
	a.byCategory = analytics.AggregateByCategory(visible, a.categories)
	a.histPage = 0
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = ws.Width
		a.height = ws.Height
		if a.adding && a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.contentWidth())
		}
		return a, nil
	}

	if a.adding && a.addForm != nil {
		return a.updateAddForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit

	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "shift+tab", "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)

	case "a":
		a.addVals = addValues{}
		a.addForm = newAddForm(a.categories, &a.addVals).WithWidth(a.contentWidth())
		a.adding = true
		return a, a.addForm.Init()

	case "w":
		if a.window == analytics.WindowMonth {
			a.window = analytics.WindowWeek
		} else {
			a.window = analytics.WindowMonth
		}
		a.recompute()

	case "j", "down":
		if a.activeTab == 2 && (a.histPage+1)*historyPageSize < len(a.expenses) {
			a.histPage++
		}
	case "k", "up":
		if a.activeTab == 2 && a.histPage > 0 {
			a.histPage--
		}

	default:
		if len(key.Runes) == 1 {
			if idx := components.TabIdxByKey(key.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}

	return a, nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		a.adding = false
		a.addForm = nil
		a.feedback = a.submitExpense()
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.adding = false
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

// submitExpense runs the scoring engine on the form values and returns
// the feedback line for the status bar.
func (a *App) submitExpense() string {
	value, err := parseValue(a.addVals.Value)
	if err != nil {
		return "Valor inválido."
	}

	today := model.Today()
	_, report, err := a.engine.LogExpense(model.Expense{
		Value:       value,
		CategoryID:  a.addVals.CategoryID,
		Description: a.addVals.Description,
		Date:        today,
	}, today)
	if err != nil {
		return err.Error()
	}

	if err := a.reload(); err != nil {
		return err.Error()
	}

	feedback := cli.FormatXP(report.XPGained)
	for _, id := range report.NewBadges {
		if badge, ok := model.BadgeByID(id); ok {
			feedback += "  ★ " + badge.Name
		}
	}
	return feedback
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return "\n  Terminal muito estreito para o painel.\n  Use `grana` para o resumo em texto.\n"
	}

	if a.adding && a.addForm != nil {
		return "\n" + a.addForm.View()
	}

	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(titleStyle.Render("GRANA"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(windowTitle(a.window)))
	b.WriteString("\n\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case 0:
		b.WriteString(a.viewOverview())
	case 1:
		b.WriteString(a.viewProgress())
	default:
		b.WriteString(a.viewHistory())
	}

	b.WriteString("\n\n")
	b.WriteString(a.viewStatusBar())
	return b.String()
}

func windowTitle(w analytics.Window) string {
	if w == analytics.WindowWeek {
		return "últimos 7 dias"
	}
	return "este mês"
}

func (a App) viewStatusBar() string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(a.contentWidth())

	left := " [a]dicionar  [w]janela  [tab]abas  [q]sair"
	right := a.feedback + " "

	padding := a.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return style.Render(left + strings.Repeat(" ", padding) + right)
}

func newAddForm(categories []model.Category, vals *addValues) *huh.Form {
	opts := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		opts = append(opts, huh.NewOption(c.Name, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Valor (R$)").
				Placeholder("0,00").
				Value(&vals.Value),
			huh.NewSelect[string]().
				Title("Categoria").
				Options(opts...).
				Value(&vals.CategoryID),
			huh.NewInput().
				Title("Descrição").
				Placeholder("opcional").
				Value(&vals.Description),
		),
	)
}

func parseValue(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), "%f", &v)
	return v, err
}
