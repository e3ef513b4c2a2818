package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grana/internal/cli"
	"grana/internal/model"
	"grana/internal/tui/components"
	"grana/internal/tui/theme"
)

func (a App) viewOverview() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Total gasto  "))
	b.WriteString(valueStyle.Render(cli.FormatBRL(a.total)))
	b.WriteString("\n")

	if a.budget.HasBudget {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Orçamento    "))
		b.WriteString(valueStyle.Render(cli.FormatBRL(a.budget.Budget)))
		b.WriteString("  ")
		if a.budget.OverBudget {
			b.WriteString(warnStyle.Render("estourado em " + cli.FormatBRL(-a.budget.Delta)))
		} else {
			b.WriteString(okStyle.Render(cli.FormatBRL(a.budget.Delta) + " disponíveis"))
		}
		b.WriteString("\n\n  ")
		b.WriteString(components.BudgetBar(a.budget.Spend, a.budget.Budget, a.contentWidth()-14))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bars := make([]components.CategoryBar, 0, len(a.byCategory))
	for _, ct := range a.byCategory {
		share := 0.0
		if a.total > 0 {
			share = ct.Total / a.total
		}
		bars = append(bars, components.CategoryBar{
			Label: ct.Category.Name,
			Color: ct.Category.Color,
			Value: ct.Total,
			Share: share,
		})
	}
	b.WriteString(components.CategoryChart(bars, cli.FormatBRL, a.contentWidth()))
	b.WriteString("\n\n")

	for i, tip := range a.tips {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderTipLine(tip))
	}

	return b.String()
}

func renderTipLine(tip model.SmartTip) string {
	t := theme.Active
	var marker string
	switch tip.Type {
	case model.TipWarning:
		marker = lipgloss.NewStyle().Foreground(t.Orange).Render("▲")
	case model.TipSuccess:
		marker = lipgloss.NewStyle().Foreground(t.Green).Render("●")
	default:
		marker = lipgloss.NewStyle().Foreground(t.Blue).Render("○")
	}
	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(tip.Title)
	msg := lipgloss.NewStyle().Foreground(t.TextMuted).Render(tip.Message)
	return "  " + marker + " " + title + "  " + msg
}
