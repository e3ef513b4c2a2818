package scoring

import (
	"path/filepath"
	"testing"

	"grana/internal/model"
	"grana/internal/store"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return d
}

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "grana.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return New(st), st
}

func TestLogExpenseValidation(t *testing.T) {
	eng, st := newTestEngine(t)
	today := mustDate(t, "2024-03-10")

	if _, _, err := eng.LogExpense(model.Expense{Value: 0, CategoryID: "cat_1", Date: today}, today); err != ErrValueRequired {
		t.Errorf("zero value: err = %v, want ErrValueRequired", err)
	}
	if _, _, err := eng.LogExpense(model.Expense{Value: 10, Date: today}, today); err != ErrCategoryRequired {
		t.Errorf("missing category: err = %v, want ErrCategoryRequired", err)
	}
	if _, _, err := eng.LogExpense(model.Expense{Value: 10, CategoryID: "cat_1"}, today); err != ErrDateRequired {
		t.Errorf("missing date: err = %v, want ErrDateRequired", err)
	}
	if got := st.Expenses(""); len(got) != 0 {
		t.Errorf("rejected submissions reached the ledger: %d entries", len(got))
	}
}

func TestFirstExpenseAwardsBaseXP(t *testing.T) {
	eng, st := newTestEngine(t)
	today := mustDate(t, "2024-03-10")

	exp, report, err := eng.LogExpense(model.Expense{Value: 25, CategoryID: "cat_1", Date: today}, today)
	if err != nil {
		t.Fatal(err)
	}
	if report.XPGained != BaseXP {
		t.Errorf("XPGained = %d, want %d", report.XPGained, BaseXP)
	}
	if exp.ID == "" {
		t.Error("stored expense has no id")
	}

	profile, err := st.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if profile.XP != BaseXP || profile.Level != 1 || profile.Streak != 1 {
		t.Errorf("profile = xp %d level %d streak %d, want xp %d level 1 streak 1",
			profile.XP, profile.Level, profile.Streak, BaseXP)
	}
	if !profile.HasBadge(model.BadgeFirstLog) {
		t.Error("first expense did not unlock the first-log badge")
	}
}

func TestFirstExpenseWithinGoalAddsBudgetBonus(t *testing.T) {
	eng, st := newTestEngine(t)
	if _, err := st.SetGoal(model.Goal{UserID: model.LocalUserID, CategoryID: "cat_1", Amount: 50, Period: model.PeriodMonthly}); err != nil {
		t.Fatal(err)
	}

	day := mustDate(t, "2024-03-10")
	_, report, err := eng.LogExpense(model.Expense{Value: 25, CategoryID: "cat_1", Date: day}, day)
	if err != nil {
		t.Fatal(err)
	}
	if want := BaseXP + BudgetBonusXP; report.XPGained != want {
		t.Errorf("XPGained = %d, want %d", report.XPGained, want)
	}
}

func TestStreakProgression(t *testing.T) {
	eng, st := newTestEngine(t)

	log := func(day string) Report {
		t.Helper()
		d := mustDate(t, day)
		_, report, err := eng.LogExpense(model.Expense{Value: 10, CategoryID: "cat_1", Date: d}, d)
		if err != nil {
			t.Fatal(err)
		}
		return report
	}
	streak := func() int {
		t.Helper()
		p, err := st.Profile()
		if err != nil {
			t.Fatal(err)
		}
		return p.Streak
	}

	log("2024-03-10")
	if got := streak(); got != 1 {
		t.Fatalf("after first log streak = %d, want 1", got)
	}

	// Same day: unchanged, no bonus.
	if r := log("2024-03-10"); r.XPGained != BaseXP {
		t.Errorf("same-day XPGained = %d, want %d", r.XPGained, BaseXP)
	}
	if got := streak(); got != 1 {
		t.Errorf("same-day streak = %d, want 1", got)
	}

	// Next day: increments and pays the bonus.
	if r := log("2024-03-11"); r.XPGained != BaseXP+StreakBonusXP {
		t.Errorf("consecutive-day XPGained = %d, want %d", r.XPGained, BaseXP+StreakBonusXP)
	}
	if got := streak(); got != 2 {
		t.Errorf("consecutive-day streak = %d, want 2", got)
	}

	// Two-day gap: resets to 1.
	if r := log("2024-03-14"); r.XPGained != BaseXP {
		t.Errorf("post-gap XPGained = %d, want %d", r.XPGained, BaseXP)
	}
	if got := streak(); got != 1 {
		t.Errorf("post-gap streak = %d, want 1", got)
	}
}

func TestBudgetBonusUsesRunningTotal(t *testing.T) {
	eng, st := newTestEngine(t)
	if _, err := st.SetGoal(model.Goal{UserID: model.LocalUserID, CategoryID: "cat_2", Amount: 100, Period: model.PeriodMonthly}); err != nil {
		t.Fatal(err)
	}
	day := mustDate(t, "2024-03-10")

	_, r1, err := eng.LogExpense(model.Expense{Value: 60, CategoryID: "cat_2", Date: day}, day)
	if err != nil {
		t.Fatal(err)
	}
	if want := BaseXP + BudgetBonusXP; r1.XPGained != want {
		t.Errorf("within-budget XPGained = %d, want %d", r1.XPGained, want)
	}

	// Second log pushes the category total past the goal: no bonus.
	_, r2, err := eng.LogExpense(model.Expense{Value: 60, CategoryID: "cat_2", Date: day}, day)
	if err != nil {
		t.Fatal(err)
	}
	if r2.XPGained != BaseXP {
		t.Errorf("over-budget XPGained = %d, want %d", r2.XPGained, BaseXP)
	}
}

func TestLevelTracksXP(t *testing.T) {
	profile := model.DefaultProfile()
	profile.XP = 490
	profile.LastLog = mustDate(t, "2024-03-09")
	profile.Streak = 1
	exp := model.Expense{ID: "e1", Value: 10, CategoryID: "cat_1", Date: mustDate(t, "2024-03-10")}

	updated, report := Score(profile, exp, []model.Expense{exp}, nil, exp.Date)
	if want := BaseXP + StreakBonusXP; report.XPGained != want {
		t.Fatalf("XPGained = %d, want %d", report.XPGained, want)
	}
	if updated.XP != 520 || updated.Level != 2 {
		t.Errorf("profile = xp %d level %d, want xp 520 level 2", updated.XP, updated.Level)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	eng, st := newTestEngine(t)

	profile, err := eng.CompleteOnboarding()
	if err != nil {
		t.Fatal(err)
	}
	if profile.XP != OnboardingBonusXP || !profile.Onboarded {
		t.Errorf("profile = xp %d onboarded %v, want xp %d onboarded true",
			profile.XP, profile.Onboarded, OnboardingBonusXP)
	}

	// A second call changes nothing.
	again, err := eng.CompleteOnboarding()
	if err != nil {
		t.Fatal(err)
	}
	if again.XP != OnboardingBonusXP {
		t.Errorf("repeat call XP = %d, want %d", again.XP, OnboardingBonusXP)
	}

	stored, err := st.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if stored.XP != OnboardingBonusXP {
		t.Errorf("stored XP = %d, want %d", stored.XP, OnboardingBonusXP)
	}
}
