package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grana/internal/tui/theme"
)

// CategoryBar is one row of the horizontal category chart.
type CategoryBar struct {
	Label string
	Color string
	Value float64
	Share float64 // 0-1 share of the window total
}

// CategoryChart renders horizontal bars scaled against the largest
// category. Values are pre-formatted by the caller so the chart stays
// currency-agnostic.
func CategoryChart(bars []CategoryBar, format func(float64) string, width int) string {
	if len(bars) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("  Sem gastos na janela selecionada.")
	}

	t := theme.Active

	labelW := 0
	valueW := 0
	for _, b := range bars {
		if w := lipgloss.Width(b.Label); w > labelW {
			labelW = w
		}
		if w := lipgloss.Width(format(b.Value)); w > valueW {
			valueW = w
		}
	}

	peak := bars[0].Value
	for _, b := range bars[1:] {
		if b.Value > peak {
			peak = b.Value
		}
	}
	if peak == 0 {
		peak = 1
	}

	barW := width - labelW - valueW - 10
	if barW < 8 {
		barW = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	shareStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, bar := range bars {
		if i > 0 {
			b.WriteString("\n")
		}

		filled := int(bar.Value / peak * float64(barW))
		if filled < 1 {
			filled = 1
		}
		fill := lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(strings.Repeat("█", filled))
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", barW-filled))

		b.WriteString(fmt.Sprintf("  %s %s%s %s %s",
			labelStyle.Render(padRight(bar.Label, labelW)),
			fill,
			empty,
			valueStyle.Render(padLeft(format(bar.Value), valueW)),
			shareStyle.Render(fmt.Sprintf("%3.0f%%", bar.Share*100)),
		))
	}

	return b.String()
}

func padRight(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap < 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func padLeft(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap < 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
