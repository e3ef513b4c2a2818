package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grana/internal/config"
)

var (
	flagCfgWindow string
	flagCfgTheme  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Mostra ou altera a configuração",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCfgWindow, "default-window", "", "Janela padrão do painel: week ou month")
	configCmd.Flags().StringVar(&flagCfgTheme, "theme", "", "Tema do painel interativo")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	changed := false
	if flagCfgWindow == "week" || flagCfgWindow == "month" {
		cfg.General.DefaultWindow = flagCfgWindow
		changed = true
	}
	if flagCfgTheme != "" {
		cfg.Appearance.Theme = flagCfgTheme
		changed = true
	}

	if changed {
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("  Configuração salva.")
	} else if !config.Exists() {
		fmt.Println("  Nenhum arquivo de configuração; usando os padrões.")
	}

	fmt.Println()
	fmt.Printf("  Arquivo:        %s\n", config.ConfigPath())
	fmt.Printf("  Banco de dados: %s\n", config.DBPath(cfg))
	fmt.Printf("  Janela padrão:  %s\n", cfg.General.DefaultWindow)
	fmt.Printf("  Tema:           %s\n", cfg.Appearance.Theme)
	fmt.Println()
	return nil
}
