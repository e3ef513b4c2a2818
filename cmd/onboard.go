package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/scoring"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Questionário inicial com bônus de XP",
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

// Onboarding quiz. The answers only personalize the welcome text; the
// XP bonus is what matters.
var onboardQuestions = []struct {
	Text    string
	Options []string
}{
	{"Qual seu principal objetivo financeiro?", []string{"Sair das dívidas", "Começar a investir", "Juntar para um sonho", "Controlar gastos"}},
	{"Como você se sente sobre suas finanças?", []string{"Ansioso", "No controle", "Perdido", "Esperançoso"}},
	{"Com que frequência você verifica seu saldo?", []string{"Todo dia", "Uma vez por semana", "Só quando preciso", "Tenho medo de olhar"}},
}

func runOnboard(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}
	if profile.Onboarded {
		fmt.Println("  Você já completou o questionário inicial.")
		return nil
	}

	answers := make([]string, len(onboardQuestions))
	groups := make([]*huh.Group, 0, len(onboardQuestions))
	for i, q := range onboardQuestions {
		opts := make([]huh.Option[string], 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, huh.NewOption(o, o))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().Title(q.Text).Options(opts...).Value(&answers[i]),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	engine := scoring.New(st)
	updated, err := engine.CompleteOnboarding()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Pronto! %s  Você está no nível %d.\n",
		cli.RenderXPGain(scoring.OnboardingBonusXP), updated.Level)
	fmt.Println("  Registre seu primeiro gasto com `grana add`.")
	fmt.Println()
	return nil
}
