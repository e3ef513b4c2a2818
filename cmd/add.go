package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/model"
	"grana/internal/scoring"
)

var (
	flagAddValue    float64
	flagAddCategory string
	flagAddDesc     string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Registra um gasto e calcula XP, streak e conquistas",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().Float64VarP(&flagAddValue, "value", "v", 0, "Valor do gasto")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "ID ou nome da categoria")
	addCmd.Flags().StringVarP(&flagAddDesc, "description", "m", "", "Descrição do gasto")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Data (YYYY-MM-DD, padrão: hoje)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	categories := st.Categories()

	exp := model.Expense{
		Value:       flagAddValue,
		CategoryID:  resolveCategory(categories, flagAddCategory),
		Description: flagAddDesc,
	}
	if flagAddDate != "" {
		d, err := model.ParseDate(flagAddDate)
		if err != nil {
			return err
		}
		exp.Date = d
	}

	// No flags given: collect the expense interactively.
	if exp.Value == 0 && exp.CategoryID == "" {
		filled, err := promptExpense(categories)
		if err != nil {
			return err
		}
		exp = filled
	}
	if exp.Date.IsZero() {
		exp.Date = model.Today()
	}

	engine := scoring.New(st)
	exp, report, err := engine.LogExpense(exp, model.Today())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Gasto registrado: %s em %s  %s\n",
		cli.FormatBRL(exp.Value),
		model.CategoryName(categories, exp.CategoryID),
		cli.RenderXPGain(report.XPGained),
	)
	for _, id := range report.NewBadges {
		if badge, ok := model.BadgeByID(id); ok {
			fmt.Printf("  Conquista desbloqueada! %s\n", cli.RenderBadge(badge, true))
		}
	}
	fmt.Println()

	return nil
}

// promptExpense runs the interactive add form.
func promptExpense(categories []model.Category) (model.Expense, error) {
	var (
		valueIn    string
		categoryID string
		desc       string
	)

	opts := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		opts = append(opts, huh.NewOption(c.Name, c.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Valor (R$)").
				Placeholder("0,00").
				Value(&valueIn).
				Validate(validateValue),
			huh.NewSelect[string]().
				Title("Categoria").
				Options(opts...).
				Value(&categoryID),
			huh.NewInput().
				Title("Descrição").
				Placeholder("opcional").
				Value(&desc),
		),
	)

	if err := form.Run(); err != nil {
		return model.Expense{}, err
	}

	value, err := parseValue(valueIn)
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		Value:       value,
		CategoryID:  categoryID,
		Description: desc,
	}, nil
}

func validateValue(s string) error {
	v, err := parseValue(s)
	if err != nil {
		return fmt.Errorf("valor inválido")
	}
	if v <= 0 {
		return scoring.ErrValueRequired
	}
	return nil
}

// parseValue accepts both "12.50" and the Brazilian "12,50".
func parseValue(s string) (float64, error) {
	normalized := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ',' {
			r = '.'
		}
		normalized = append(normalized, r)
	}
	return strconv.ParseFloat(string(normalized), 64)
}

// resolveCategory matches a flag value against catalog ids and names.
func resolveCategory(categories []model.Category, in string) string {
	if in == "" {
		return ""
	}
	for _, c := range categories {
		if c.ID == in || c.Name == in {
			return c.ID
		}
	}
	return in
}
