package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grana/internal/cli"
	"grana/internal/model"
	"grana/internal/store"
	"grana/internal/tui/components"
	"grana/internal/tui/theme"
)

func (a App) viewProgress() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	flameStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	levelFloor := (a.profile.Level - 1) * store.XPPerLevel
	intoLevel := a.profile.XP - levelFloor

	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Olá, "))
	b.WriteString(valueStyle.Render(a.profile.Name))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(valueStyle.Render(fmt.Sprintf("Nível %d", a.profile.Level)))
	b.WriteString("\n  ")
	b.WriteString(components.XPBar(intoLevel, store.XPPerLevel, a.contentWidth()-20))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(flameStyle.Render("🔥 " + cli.FormatStreak(a.profile.Streak)))
	if !a.profile.LastLog.IsZero() {
		b.WriteString(dimStyle.Render("   último registro em " + cli.FormatDate(a.profile.LastLog)))
	}
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Conquistas  %d/%d", len(a.profile.Badges), len(model.Badges))))
	b.WriteString("\n\n")
	for _, badge := range model.Badges {
		b.WriteString(renderBadgeLine(badge, a.profile.HasBadge(badge.ID)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderBadgeLine(badge model.Badge, unlocked bool) string {
	t := theme.Active
	if !unlocked {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return "  " + dim.Render("◇ "+badge.Name+"  "+badge.Description)
	}
	mark := lipgloss.NewStyle().Foreground(lipgloss.Color(badge.Color)).Render("◆")
	name := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(badge.Name)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted).Render(badge.Description)
	return "  " + mark + " " + name + "  " + desc
}
