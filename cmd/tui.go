package cmd

import (
	"github.com/spf13/cobra"

	"grana/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Abre o painel interativo",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	return tui.Run(st, cfg)
}
