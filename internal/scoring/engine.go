// Package scoring implements the gamification engine: XP awards, streak
// tracking, budget-adherence bonuses and badge unlocks, evaluated once
// per logged expense.
package scoring

import (
	"errors"

	"grana/internal/model"
	"grana/internal/store"
)

// XP constants.
const (
	BaseXP            = 20  // every logged expense
	StreakBonusXP     = 10  // logging on consecutive days
	BudgetBonusXP     = 50  // staying within a matching monthly goal
	OnboardingBonusXP = 100 // completing the onboarding quiz
)

// Validation errors raised before anything is written.
var (
	ErrValueRequired    = errors.New("valor deve ser maior que zero")
	ErrCategoryRequired = errors.New("categoria é obrigatória")
	ErrDateRequired     = errors.New("data é obrigatória")
)

// Report is the informational delta of a single LogExpense call. It is
// returned for UI feedback and never re-derived from the stored profile.
type Report struct {
	XPGained  int
	NewBadges []string
}

// Engine scores expense submissions against the persisted state.
type Engine struct {
	store *store.Store
}

// New returns an engine backed by the given store.
func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// LogExpense validates the expense, appends it to the ledger, scores it
// and commits the updated profile. The profile value is computed in full
// before the commit; a failure part-way never leaves a half-updated
// profile behind.
func (e *Engine) LogExpense(exp model.Expense, today model.Date) (model.Expense, Report, error) {
	if exp.Value <= 0 {
		return model.Expense{}, Report{}, ErrValueRequired
	}
	if exp.CategoryID == "" {
		return model.Expense{}, Report{}, ErrCategoryRequired
	}
	if exp.Date.IsZero() {
		return model.Expense{}, Report{}, ErrDateRequired
	}

	profile, err := e.store.Profile()
	if err != nil {
		return model.Expense{}, Report{}, err
	}
	if exp.UserID == "" {
		exp.UserID = profile.ID
	}

	exp, err = e.store.AppendExpense(exp)
	if err != nil {
		return model.Expense{}, Report{}, err
	}

	ledger := e.store.Expenses("")
	goals := e.store.Goals("")

	updated, report := Score(profile, exp, ledger, goals, today)
	if err := e.store.SaveProfile(updated); err != nil {
		return model.Expense{}, Report{}, err
	}
	return exp, report, nil
}

// Score computes the updated profile and the per-call report for one
// newly appended expense. It is a pure function of its inputs: the
// caller owns the profile value and threads it through.
//
// The ledger must already contain exp.
func Score(profile model.UserProfile, exp model.Expense, ledger []model.Expense, goals []model.Goal, today model.Date) (model.UserProfile, Report) {
	xpGained := BaseXP
	streak := profile.Streak

	switch {
	case profile.LastLog.IsZero():
		// First-ever log: a streak starts but earns no bonus.
		streak = 1
	case today.DaysSince(profile.LastLog) == 1:
		streak++
		xpGained += StreakBonusXP
	case today.DaysSince(profile.LastLog) > 1:
		streak = 1
	}
	// Same-day logs leave the streak untouched.

	// Budget adherence: compare the category's running total against a
	// matching monthly goal. The total is all-time, not month-scoped.
	if goal, ok := monthlyGoalFor(goals, exp.CategoryID); ok {
		if categoryTotal(ledger, exp.CategoryID) <= goal.Amount {
			xpGained += BudgetBonusXP
		}
	}

	updated := profile
	updated.XP = profile.XP + xpGained
	updated.Level = store.LevelFor(updated.XP)
	updated.Streak = streak
	updated.LastLog = today

	newBadges := evaluateBadges(unlockContext{
		Profile:    updated,
		Expense:    exp,
		Ledger:     ledger,
		Goals:      goals,
		Today:      today,
		LedgerSize: len(ledger),
	})
	if len(newBadges) > 0 {
		updated.Badges = append(append([]string(nil), profile.Badges...), newBadges...)
	}

	return updated, Report{XPGained: xpGained, NewBadges: newBadges}
}

// CompleteOnboarding awards the one-time onboarding XP bonus and marks
// the profile onboarded. Calling it again is a no-op.
func (e *Engine) CompleteOnboarding() (model.UserProfile, error) {
	profile, err := e.store.Profile()
	if err != nil {
		return model.UserProfile{}, err
	}
	if profile.Onboarded {
		return profile, nil
	}

	profile.XP += OnboardingBonusXP
	profile.Level = store.LevelFor(profile.XP)
	profile.Onboarded = true
	if err := e.store.SaveProfile(profile); err != nil {
		return model.UserProfile{}, err
	}
	return profile, nil
}

func monthlyGoalFor(goals []model.Goal, categoryID string) (model.Goal, bool) {
	for _, g := range goals {
		if g.CategoryID == categoryID && g.Period == model.PeriodMonthly {
			return g, true
		}
	}
	return model.Goal{}, false
}

func categoryTotal(ledger []model.Expense, categoryID string) float64 {
	var total float64
	for _, e := range ledger {
		if e.CategoryID == categoryID {
			total += e.Value
		}
	}
	return total
}
