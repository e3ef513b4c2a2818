package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"grana/internal/cli"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Lista as categorias de gasto",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rows := [][]string{}
	for _, c := range st.Categories() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
		rows = append(rows, []string{c.ID, swatch + " " + c.Name})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Categoria"},
		Rows:    rows,
	}))
	return nil
}
