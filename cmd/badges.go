package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/model"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Mostra o catálogo de conquistas",
	RunE:  runBadges,
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}

func runBadges(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CONQUISTAS  %d/%d", len(profile.Badges), len(model.Badges))))
	fmt.Println()
	for _, badge := range model.Badges {
		fmt.Println(cli.RenderBadge(badge, profile.HasBadge(badge.ID)))
	}
	fmt.Println()
	return nil
}
