package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove um gasto do histórico",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	// Accept the short id prefix shown by `grana list`.
	id := args[0]
	for _, e := range st.Expenses("") {
		if strings.HasPrefix(e.ID, id) {
			id = e.ID
			break
		}
	}

	if err := st.RemoveExpense(id); err != nil {
		return err
	}
	fmt.Println("  Gasto removido.")
	return nil
}
