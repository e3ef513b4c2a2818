package model

// Period is the span a spending goal covers.
type Period string

// Goal periods.
const (
	PeriodMonthly Period = "monthly"
	PeriodWeekly  Period = "weekly"
)

// TotalCategory is the sentinel category id for a goal covering all
// spending rather than one category.
const TotalCategory = "TOTAL"

// Goal is a user-defined spending ceiling for a category and period.
// At most one goal exists per (CategoryID, Period) pair.
type Goal struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
	Period     Period  `json:"period"`
}

// GoalKey identifies the unique slot a goal occupies.
type GoalKey struct {
	CategoryID string
	Period     Period
}

// Key returns the replace-by key for this goal.
func (g Goal) Key() GoalKey {
	return GoalKey{CategoryID: g.CategoryID, Period: g.Period}
}
