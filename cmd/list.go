package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grana/internal/analytics"
	"grana/internal/cli"
	"grana/internal/model"
)

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista os gastos registrados",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListAll, "all", "a", false, "Mostrar o histórico completo, sem janela de tempo")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}

	expenses := st.Expenses(profile.ID)
	categories := st.Categories()

	title := "Histórico completo"
	if !flagListAll {
		window := activeWindow(cfg)
		expenses = analytics.FilterByWindow(expenses, window, model.Today())
		title = windowLabel(window)
	}

	if len(expenses) == 0 {
		fmt.Println("\n  Nenhum gasto registrado. Use `grana add` para começar.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GASTOS  %s", title)))
	fmt.Println()

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.ID[:8],
			cli.FormatDate(e.Date),
			cli.FormatDayOfWeek(int(e.Date.Weekday())),
			model.CategoryName(categories, e.CategoryID),
			e.Description,
			cli.FormatBRL(e.Value),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "", "Total", cli.FormatBRL(analytics.SumValues(expenses))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Data", "Dia", "Categoria", "Descrição", "Valor"},
		Rows:    rows,
	}))

	return nil
}
