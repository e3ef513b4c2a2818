package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/model"
)

var (
	flagGoalCategory string
	flagGoalAmount   float64
	flagGoalPeriod   string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Gerencia metas de gasto por categoria",
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista as metas ativas",
	RunE:  runGoalList,
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Define uma meta, substituindo a anterior da mesma categoria e período",
	RunE:  runGoalSet,
}

func init() {
	goalSetCmd.Flags().StringVarP(&flagGoalCategory, "category", "c", "", "ID ou nome da categoria (ou TOTAL)")
	goalSetCmd.Flags().Float64VarP(&flagGoalAmount, "amount", "v", 0, "Valor limite da meta")
	goalSetCmd.Flags().StringVarP(&flagGoalPeriod, "period", "p", "monthly", "Período: monthly ou weekly")
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalSetCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalSet(_ *cobra.Command, _ []string) error {
	if flagGoalAmount <= 0 {
		return fmt.Errorf("meta precisa de um valor maior que zero")
	}
	if flagGoalCategory == "" {
		return fmt.Errorf("meta precisa de uma categoria")
	}

	period := model.PeriodMonthly
	if flagGoalPeriod == string(model.PeriodWeekly) {
		period = model.PeriodWeekly
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}

	categories := st.Categories()
	categoryID := flagGoalCategory
	if categoryID != model.TotalCategory {
		categoryID = resolveCategory(categories, categoryID)
	}

	goal, err := st.SetGoal(model.Goal{
		UserID:     profile.ID,
		CategoryID: categoryID,
		Amount:     flagGoalAmount,
		Period:     period,
	})
	if err != nil {
		return err
	}

	name := "Total"
	if goal.CategoryID != model.TotalCategory {
		name = model.CategoryName(categories, goal.CategoryID)
	}
	fmt.Printf("  Meta definida: %s até %s por %s.\n", name, cli.FormatBRL(goal.Amount), periodLabel(goal.Period))
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}

	goals := st.Goals(profile.ID)
	if len(goals) == 0 {
		fmt.Println("\n  Nenhuma meta definida. Use `grana goal set`.")
		return nil
	}

	categories := st.Categories()

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		name := "Total"
		if g.CategoryID != model.TotalCategory {
			name = model.CategoryName(categories, g.CategoryID)
		}
		rows = append(rows, []string{name, periodLabel(g.Period), cli.FormatBRL(g.Amount)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Categoria", "Período", "Limite"},
		Rows:    rows,
	}))
	return nil
}

func periodLabel(p model.Period) string {
	if p == model.PeriodWeekly {
		return "semana"
	}
	return "mês"
}
