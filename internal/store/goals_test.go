package store

import (
	"testing"

	"grana/internal/model"
)

func TestSetGoalReplacesSameSlot(t *testing.T) {
	st := openTestStore(t)

	first, err := st.SetGoal(model.Goal{UserID: model.LocalUserID, CategoryID: "cat_1", Amount: 100, Period: model.PeriodMonthly})
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.SetGoal(model.Goal{UserID: model.LocalUserID, CategoryID: "cat_1", Amount: 250, Period: model.PeriodMonthly})
	if err != nil {
		t.Fatal(err)
	}

	goals := st.Goals("")
	if len(goals) != 1 {
		t.Fatalf("goal count = %d, want 1", len(goals))
	}
	if goals[0].Amount != 250 {
		t.Errorf("amount = %v, want 250", goals[0].Amount)
	}
	if first.ID == second.ID {
		t.Error("replacement kept the old id")
	}
}

func TestSetGoalDistinctSlotsCoexist(t *testing.T) {
	st := openTestStore(t)

	slots := []model.Goal{
		{UserID: model.LocalUserID, CategoryID: "cat_1", Amount: 100, Period: model.PeriodMonthly},
		{UserID: model.LocalUserID, CategoryID: "cat_1", Amount: 30, Period: model.PeriodWeekly},
		{UserID: model.LocalUserID, CategoryID: model.TotalCategory, Amount: 900, Period: model.PeriodMonthly},
	}
	for _, g := range slots {
		if _, err := st.SetGoal(g); err != nil {
			t.Fatal(err)
		}
	}

	if got := st.Goals(model.LocalUserID); len(got) != 3 {
		t.Errorf("goal count = %d, want 3", len(got))
	}
}
