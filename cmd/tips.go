package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grana/internal/analytics"
	"grana/internal/cli"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Dicas geradas a partir dos seus gastos",
	RunE:  runTips,
}

func init() {
	rootCmd.AddCommand(tipsCmd)
}

func runTips(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}

	tips := analytics.GenerateTips(st.Expenses(profile.ID), st.Categories())

	fmt.Println()
	for _, tip := range tips {
		fmt.Println(cli.RenderTip(tip))
	}
	fmt.Println()
	return nil
}
