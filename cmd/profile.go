package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Mostra o perfil e o progresso de gamificação",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Login()
	if err != nil {
		return err
	}

	// XP inside the current level, out of the span to the next one.
	levelFloor := (profile.Level - 1) * store.XPPerLevel
	intoLevel := profile.XP - levelFloor

	rows := [][]string{
		{"Nome", profile.Name},
		{"E-mail", orDash(profile.Email)},
		{"Status", string(profile.Status)},
		{"---"},
		{"Nível", fmt.Sprintf("%d", profile.Level)},
		{"XP", fmt.Sprintf("%d  (%d/%d até o próximo nível)", profile.XP, intoLevel, store.XPPerLevel)},
		{"Streak", cli.FormatStreak(profile.Streak)},
		{"Último registro", cli.FormatDate(profile.LastLog)},
		{"Conquistas", fmt.Sprintf("%d", len(profile.Badges))},
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Perfil", "Valor"},
		Rows:    rows,
	}))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
