package scoring

import "grana/internal/model"

// unlockContext carries everything a badge predicate may inspect.
// Profile is the post-award state of the current scoring pass.
type unlockContext struct {
	Profile    model.UserProfile
	Expense    model.Expense
	Ledger     []model.Expense
	Goals      []model.Goal
	Today      model.Date
	LedgerSize int
}

// unlockChecks maps each catalog badge to its predicate. Every predicate
// runs on every scoring pass; unlocks are monotonic and idempotent (a
// badge already in the set is never re-awarded).
var unlockChecks = []struct {
	ID       string
	Unlocked func(unlockContext) bool
}{
	{model.BadgeFirstLog, func(c unlockContext) bool {
		return c.LedgerSize == 1
	}},
	{model.BadgeStreak3, func(c unlockContext) bool {
		return c.Profile.Streak >= 3
	}},
	{model.BadgeStreak7, func(c unlockContext) bool {
		return c.Profile.Streak >= 7
	}},
	{model.BadgeSmartSaver, smartSaverUnlocked},
	{model.BadgeXPMaster, func(c unlockContext) bool {
		return c.Profile.Level >= 5
	}},
}

// evaluateBadges returns the ids newly unlocked by this pass, in catalog
// order.
func evaluateBadges(c unlockContext) []string {
	var unlocked []string
	for _, check := range unlockChecks {
		if c.Profile.HasBadge(check.ID) {
			continue
		}
		if check.Unlocked(c) {
			unlocked = append(unlocked, check.ID)
		}
	}
	return unlocked
}

// smartSaverUnlocked awards Economista when the month closes with the
// expense's category still inside its monthly goal: the log lands on the
// last day of the month and the category's spend for that month,
// including this expense, is within the goal amount.
func smartSaverUnlocked(c unlockContext) bool {
	if !c.Today.LastOfMonth() {
		return false
	}
	goal, ok := monthlyGoalFor(c.Goals, c.Expense.CategoryID)
	if !ok {
		return false
	}

	var monthSpend float64
	for _, e := range c.Ledger {
		if e.CategoryID == c.Expense.CategoryID && e.Date.SameMonth(c.Today) {
			monthSpend += e.Value
		}
	}
	return monthSpend <= goal.Amount
}
