package analytics

import (
	"testing"

	"grana/internal/model"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return d
}

func TestFilterByWindowMonth(t *testing.T) {
	ref := mustDate(t, "2024-03-15")
	expenses := []model.Expense{
		{ID: "a", Value: 10, Date: mustDate(t, "2024-03-01")},
		{ID: "b", Value: 20, Date: mustDate(t, "2024-03-31")},
		{ID: "c", Value: 30, Date: mustDate(t, "2024-02-28")},
		{ID: "d", Value: 40, Date: mustDate(t, "2023-03-15")},
	}

	got := FilterByWindow(expenses, WindowMonth, ref)
	if len(got) != 2 {
		t.Fatalf("kept %d entries, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("kept %s/%s, want a/b", got[0].ID, got[1].ID)
	}
}

func TestFilterByWindowWeek(t *testing.T) {
	ref := mustDate(t, "2024-03-15")
	expenses := []model.Expense{
		// "in" sits exactly seven days back; "out" is one past the
		// cutoff; the future entry survives since only the lower bound
		// applies.
		{ID: "in", Value: 10, Date: mustDate(t, "2024-03-08")},
		{ID: "out", Value: 20, Date: mustDate(t, "2024-03-07")},
		{ID: "future", Value: 30, Date: mustDate(t, "2024-04-01")},
	}

	got := FilterByWindow(expenses, WindowWeek, ref)
	if len(got) != 2 {
		t.Fatalf("kept %d entries, want 2", len(got))
	}
	if got[0].ID != "in" || got[1].ID != "future" {
		t.Errorf("kept %s/%s, want in/future", got[0].ID, got[1].ID)
	}
}

func TestAggregateByCategory(t *testing.T) {
	cats := model.DefaultCategories()
	expenses := []model.Expense{
		{Value: 10, CategoryID: "cat_3"},
		{Value: 5, CategoryID: "cat_1"},
		{Value: 15, CategoryID: "cat_3"},
	}

	got := AggregateByCategory(expenses, cats)
	if len(got) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(got))
	}
	// Catalog order, not spend order.
	if got[0].Category.ID != "cat_1" || got[0].Total != 5 {
		t.Errorf("first bucket = %s/%v, want cat_1/5", got[0].Category.ID, got[0].Total)
	}
	if got[1].Category.ID != "cat_3" || got[1].Total != 25 {
		t.Errorf("second bucket = %s/%v, want cat_3/25", got[1].Category.ID, got[1].Total)
	}
}

func TestBudgetSummary(t *testing.T) {
	goals := []model.Goal{
		{CategoryID: "cat_1", Amount: 100, Period: model.PeriodMonthly},
		{CategoryID: model.TotalCategory, Amount: 400, Period: model.PeriodMonthly},
		{CategoryID: "cat_1", Amount: 50, Period: model.PeriodWeekly},
	}

	s := Budget(goals, WindowMonth, 450)
	if s.Budget != 500 {
		t.Errorf("month budget = %v, want 500", s.Budget)
	}
	if s.Delta != 50 || s.OverBudget {
		t.Errorf("delta = %v overBudget = %v, want 50/false", s.Delta, s.OverBudget)
	}

	s = Budget(goals, WindowWeek, 80)
	if s.Budget != 50 || !s.OverBudget {
		t.Errorf("week budget = %v overBudget = %v, want 50/true", s.Budget, s.OverBudget)
	}

	s = Budget(nil, WindowMonth, 200)
	if s.HasBudget || s.OverBudget {
		t.Error("no goals should mean no budget and never over")
	}
}
