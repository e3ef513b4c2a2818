package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagRegName  string
	flagRegEmail string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Dá um nome ao seu perfil local",
	Long:  "Cadastro local: nenhum dado sai da sua máquina. A senha existe apenas para manter a paridade com o fluxo de cadastro.",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&flagRegName, "name", "n", "", "Seu nome")
	registerCmd.Flags().StringVarP(&flagRegEmail, "email", "e", "", "Seu e-mail (opcional)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(_ *cobra.Command, _ []string) error {
	name := flagRegName
	email := flagRegEmail
	var password string

	if name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Nome").Value(&name),
				huh.NewInput().Title("E-mail (opcional)").Value(&email),
				huh.NewInput().Title("Senha").EchoMode(huh.EchoModePassword).Value(&password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	} else {
		// Non-interactive path still satisfies the stub's password rule.
		password = "local-stub"
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Register(name, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("  Bem-vindo(a), %s!\n", profile.Name)
	return nil
}
