package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Apaga todos os dados (perfil, gastos, metas e categorias)",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Não pedir confirmação")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagResetYes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Apagar todos os dados?").
			Description("Perfil, gastos, metas e categorias serão perdidos. Não há como desfazer.").
			Affirmative("Apagar").
			Negative("Cancelar").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Cancelado.")
			return nil
		}
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Reset(); err != nil {
		return fmt.Errorf("apagando dados: %w", err)
	}
	fmt.Println("  Dados apagados. Comece de novo com `grana onboard`.")
	return nil
}
