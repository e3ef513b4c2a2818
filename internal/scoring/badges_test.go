package scoring

import (
	"testing"

	"grana/internal/model"
)

func TestStreakBadges(t *testing.T) {
	eng, st := newTestEngine(t)

	days := []string{
		"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04",
		"2024-03-05", "2024-03-06", "2024-03-07",
	}
	var unlockedOn = map[string]string{}
	for _, day := range days {
		d := mustDate(t, day)
		_, report, err := eng.LogExpense(model.Expense{Value: 10, CategoryID: "cat_1", Date: d}, d)
		if err != nil {
			t.Fatal(err)
		}
		for _, id := range report.NewBadges {
			unlockedOn[id] = day
		}
	}

	if got := unlockedOn[model.BadgeStreak3]; got != "2024-03-03" {
		t.Errorf("streak_3 unlocked on %q, want 2024-03-03", got)
	}
	if got := unlockedOn[model.BadgeStreak7]; got != "2024-03-07" {
		t.Errorf("streak_7 unlocked on %q, want 2024-03-07", got)
	}

	profile, err := st.Profile()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{model.BadgeFirstLog, model.BadgeStreak3, model.BadgeStreak7} {
		if !profile.HasBadge(id) {
			t.Errorf("stored profile missing %s", id)
		}
	}
}

func TestXPMasterUnlocksAtLevelFive(t *testing.T) {
	profile := model.DefaultProfile()
	profile.XP = 1990 // one submission away from level 5
	profile.Level = 4
	profile.LastLog = mustDate(t, "2024-03-09")
	profile.Streak = 1
	exp := model.Expense{ID: "e1", Value: 10, CategoryID: "cat_1", Date: mustDate(t, "2024-03-10")}

	updated, report := Score(profile, exp, []model.Expense{exp, {ID: "e0"}}, nil, exp.Date)
	if updated.Level != 5 {
		t.Fatalf("level = %d, want 5", updated.Level)
	}
	if !contains(report.NewBadges, model.BadgeXPMaster) {
		t.Errorf("NewBadges = %v, want xp_master included", report.NewBadges)
	}
}

func TestSmartSaverRequiresMonthEnd(t *testing.T) {
	goals := []model.Goal{{CategoryID: "cat_1", Amount: 100, Period: model.PeriodMonthly}}
	exp := model.Expense{ID: "e1", Value: 40, CategoryID: "cat_1", Date: mustDate(t, "2024-03-31")}
	ledger := []model.Expense{
		{ID: "e0", Value: 30, CategoryID: "cat_1", Date: mustDate(t, "2024-03-02")},
		exp,
	}
	base := model.DefaultProfile()

	c := unlockContext{Profile: base, Expense: exp, Ledger: ledger, Goals: goals, Today: exp.Date, LedgerSize: len(ledger)}
	if !smartSaverUnlocked(c) {
		t.Error("within budget on the last day of the month should unlock")
	}

	c.Today = mustDate(t, "2024-03-30")
	if smartSaverUnlocked(c) {
		t.Error("mid-month log should not unlock")
	}
}

func TestSmartSaverIgnoresOtherMonths(t *testing.T) {
	goals := []model.Goal{{CategoryID: "cat_1", Amount: 100, Period: model.PeriodMonthly}}
	exp := model.Expense{ID: "e1", Value: 90, CategoryID: "cat_1", Date: mustDate(t, "2024-03-31")}
	ledger := []model.Expense{
		// February spend blows past the goal but is out of scope.
		{ID: "e0", Value: 500, CategoryID: "cat_1", Date: mustDate(t, "2024-02-10")},
		exp,
	}

	c := unlockContext{Profile: model.DefaultProfile(), Expense: exp, Ledger: ledger, Goals: goals, Today: exp.Date, LedgerSize: len(ledger)}
	if !smartSaverUnlocked(c) {
		t.Error("prior-month spend should not count against the goal")
	}

	// Over the goal within the month blocks the unlock.
	c.Ledger = append(c.Ledger, model.Expense{ID: "e2", Value: 50, CategoryID: "cat_1", Date: mustDate(t, "2024-03-05")})
	if smartSaverUnlocked(c) {
		t.Error("over-budget month should not unlock")
	}
}

func contains(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
