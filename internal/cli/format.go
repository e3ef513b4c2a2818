// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"grana/internal/model"
)

// FormatBRL formats a currency amount in Brazilian style.
// e.g., 1234.5 -> "R$ 1.234,50"
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	cents := int64(v*100+0.5) - whole*100
	if cents >= 100 { // rounding carried into the next unit
		whole++
		cents -= 100
	}

	s := strconv.FormatInt(whole, 10)
	var grouped strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		grouped.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(s[i : i+3])
	}

	out := fmt.Sprintf("R$ %s,%02d", grouped.String(), cents)
	if neg {
		return "-" + out
	}
	return out
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDate renders a calendar date in Brazilian day/month/year order.
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "—"
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}

// FormatDayOfWeek returns a 3-letter pt-BR day abbreviation.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatXP renders an XP delta for feedback lines, e.g. "+70 XP".
func FormatXP(xp int) string {
	return fmt.Sprintf("+%d XP", xp)
}

// FormatStreak renders a streak count, e.g. "4 dias seguidos".
func FormatStreak(streak int) string {
	if streak == 1 {
		return "1 dia"
	}
	return fmt.Sprintf("%d dias seguidos", streak)
}
