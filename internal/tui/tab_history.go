package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grana/internal/cli"
	"grana/internal/model"
	"grana/internal/tui/theme"
)

func (a App) viewHistory() string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.expenses) == 0 {
		return dimStyle.Render("  Nenhum gasto registrado ainda. Pressione [a] para adicionar.")
	}

	// Most recent first.
	ordered := make([]model.Expense, len(a.expenses))
	for i, e := range a.expenses {
		ordered[len(a.expenses)-1-i] = e
	}

	start := a.histPage * historyPageSize
	end := start + historyPageSize
	if end > len(ordered) {
		end = len(ordered)
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, e := range ordered[start:end] {
		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			dimStyle.Render(cli.FormatDate(e.Date)),
			labelStyle.Render(padTo(model.CategoryName(a.categories, e.CategoryID), 14)),
			valueStyle.Render(padTo(cli.FormatBRL(e.Value), 14)),
			dimStyle.Render(e.Description),
		))
	}

	if len(ordered) > historyPageSize {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d-%d de %d  [j/k] rolar", start+1, end, len(ordered))))
	}

	return b.String()
}

func padTo(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
