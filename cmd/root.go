// Package cmd wires up the grana command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grana/internal/analytics"
	"grana/internal/cli"
	"grana/internal/config"
	"grana/internal/model"
	"grana/internal/store"
)

var (
	flagDataDir string
	flagWindow  string
)

var rootCmd = &cobra.Command{
	Use:   "grana",
	Short: "Controle de gastos pessoal com gamificação",
	Long:  "Registre gastos, acompanhe metas por categoria e ganhe XP, streaks e conquistas — tudo local, sem servidor.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Diretório do banco de dados (padrão: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagWindow, "window", "w", "", "Janela de tempo: week ou month")
}

// loadConfig reads the config file, falling back to defaults on error so
// no command dies over a broken config.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  aviso: %v\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openStore opens the database for the active config.
func openStore() (*store.Store, config.Config, error) {
	cfg := loadConfig()
	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, cfg, fmt.Errorf("abrindo banco de dados: %w", err)
	}
	return st, cfg, nil
}

// activeWindow resolves the dashboard window from the flag or config.
func activeWindow(cfg config.Config) analytics.Window {
	w := flagWindow
	if w == "" {
		w = cfg.General.DefaultWindow
	}
	if w == string(analytics.WindowWeek) {
		return analytics.WindowWeek
	}
	return analytics.WindowMonth
}

func windowLabel(w analytics.Window) string {
	if w == analytics.WindowWeek {
		return "Últimos 7 dias"
	}
	return "Este mês"
}

// runOverview prints the text dashboard: spend, budget, categories,
// gamification state and tips for the active window.
func runOverview(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}

	window := activeWindow(cfg)
	today := model.Today()
	expenses := st.Expenses(profile.ID)
	categories := st.Categories()
	goals := st.Goals(profile.ID)

	visible := analytics.FilterByWindow(expenses, window, today)
	total := analytics.SumValues(visible)
	budget := analytics.Budget(goals, window, total)
	byCategory := analytics.AggregateByCategory(visible, categories)
	tips := analytics.GenerateTips(expenses, categories)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GRANA  %s", windowLabel(window))))
	fmt.Println()

	rows := [][]string{
		{"Total gasto", cli.FormatBRL(total)},
	}
	if budget.HasBudget {
		rows = append(rows, []string{"Orçamento", cli.FormatBRL(budget.Budget)})
		if budget.OverBudget {
			rows = append(rows, []string{"Estourado em", cli.FormatBRL(-budget.Delta)})
		} else {
			rows = append(rows, []string{"Disponível", cli.FormatBRL(budget.Delta)})
		}
	}
	rows = append(rows, []string{"---"})
	for _, ct := range byCategory {
		share := ct.Total / total
		rows = append(rows, []string{
			ct.Category.Name,
			fmt.Sprintf("%s  (%s)", cli.FormatBRL(ct.Total), cli.FormatPercent(share)),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Nível", fmt.Sprintf("%d", profile.Level)})
	rows = append(rows, []string{"XP", fmt.Sprintf("%d", profile.XP)})
	rows = append(rows, []string{"Streak", cli.FormatStreak(profile.Streak)})
	rows = append(rows, []string{"Conquistas", fmt.Sprintf("%d/%d", len(profile.Badges), len(model.Badges))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Resumo", "Valor"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, tip := range tips {
		fmt.Println(cli.RenderTip(tip))
	}
	fmt.Println()

	return nil
}
