package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"grana/internal/tui/theme"
)

// ColorForPct returns green/yellow/orange/red based on utilization.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// XPBar renders the progress toward the next level.
func XPBar(intoLevel, span, barWidth int) string {
	t := theme.Active

	pct := float64(intoLevel) / float64(span)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Yellow)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	return bar.ViewAs(pct) + " " + labelStyle.Render(fmt.Sprintf("%d/%d XP", intoLevel, span))
}

// BudgetBar renders budget utilization with a usage-colored fill.
func BudgetBar(spend, budget float64, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if budget > 0 {
		pct = spend / budget
	}
	display := pct
	if display > 1 {
		display = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)
	return bar.ViewAs(display) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
