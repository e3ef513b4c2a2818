// Package analytics derives dashboard figures from the current stores:
// time-window filtering, category aggregation, budget deltas and smart
// tips. Every function is pure and recomputable; nothing here caches or
// writes.
package analytics

import (
	"grana/internal/model"
)

// Window selects the dashboard timeframe.
type Window string

// Windows. Month is a calendar month; Week is a rolling seven days.
// The two deliberately use different semantics.
const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Period returns the goal period a window is budgeted against.
func (w Window) Period() model.Period {
	if w == WindowWeek {
		return model.PeriodWeekly
	}
	return model.PeriodMonthly
}

// FilterByWindow keeps the expenses visible in the given window.
// Month keeps entries in the same calendar month and year as ref. Week
// keeps entries dated on or after ref minus seven days; only the lower
// bound is applied.
func FilterByWindow(expenses []model.Expense, w Window, ref model.Date) []model.Expense {
	var out []model.Expense
	switch w {
	case WindowWeek:
		cutoff := ref.AddDays(-7)
		for _, e := range expenses {
			if !e.Date.Before(cutoff) {
				out = append(out, e)
			}
		}
	default:
		for _, e := range expenses {
			if e.Date.SameMonth(ref) {
				out = append(out, e)
			}
		}
	}
	return out
}

// SumValues totals the expense amounts.
func SumValues(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Value
	}
	return total
}

// CategoryTotal is one chart slice.
type CategoryTotal struct {
	Category model.Category
	Total    float64
}

// AggregateByCategory totals expenses per catalog category, in catalog
// order, dropping categories with nothing spent.
func AggregateByCategory(expenses []model.Expense, cats []model.Category) []CategoryTotal {
	var out []CategoryTotal
	for _, c := range cats {
		var total float64
		for _, e := range expenses {
			if e.CategoryID == c.ID {
				total += e.Value
			}
		}
		if total > 0 {
			out = append(out, CategoryTotal{Category: c, Total: total})
		}
	}
	return out
}

// BudgetSummary reports the window's spend against its goals.
type BudgetSummary struct {
	Budget     float64
	Spend      float64
	Delta      float64 // Budget - Spend
	HasBudget  bool    // a zero budget means "no budget defined"
	OverBudget bool
}

// Budget sums the goals for the window's period and compares them with
// the given spend.
func Budget(goals []model.Goal, w Window, spend float64) BudgetSummary {
	period := w.Period()

	var budget float64
	for _, g := range goals {
		if g.Period == period {
			budget += g.Amount
		}
	}

	s := BudgetSummary{
		Budget: budget,
		Spend:  spend,
		Delta:  budget - spend,
	}
	s.HasBudget = budget > 0
	s.OverBudget = s.HasBudget && s.Delta < 0
	return s
}
