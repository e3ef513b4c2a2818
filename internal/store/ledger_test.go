package store

import (
	"testing"

	"grana/internal/model"
)

func TestAppendExpenseAssignsUniqueIDs(t *testing.T) {
	st := openTestStore(t)

	first, err := st.AppendExpense(model.Expense{UserID: model.LocalUserID, Value: 12.5, CategoryID: "cat_1", Date: model.Today()})
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.AppendExpense(model.Expense{UserID: model.LocalUserID, Value: 30, CategoryID: "cat_2", Date: model.Today()})
	if err != nil {
		t.Fatal(err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatal("append left an empty id")
	}
	if first.ID == second.ID {
		t.Fatalf("duplicate id %q", first.ID)
	}

	ledger := st.Expenses("")
	if len(ledger) != 2 {
		t.Fatalf("ledger length = %d, want 2", len(ledger))
	}
	// Insertion order is preserved.
	if ledger[0].ID != first.ID || ledger[1].ID != second.ID {
		t.Error("ledger order does not match insertion order")
	}
}

func TestRemoveExpense(t *testing.T) {
	st := openTestStore(t)

	e, err := st.AppendExpense(model.Expense{UserID: model.LocalUserID, Value: 5, CategoryID: "cat_1", Date: model.Today()})
	if err != nil {
		t.Fatal(err)
	}

	if err := st.RemoveExpense(e.ID); err != nil {
		t.Fatal(err)
	}
	if got := st.Expenses(""); len(got) != 0 {
		t.Errorf("ledger length after remove = %d, want 0", len(got))
	}

	// Removing an unknown id is a no-op, not an error.
	if err := st.RemoveExpense("nope"); err != nil {
		t.Errorf("remove of unknown id returned %v", err)
	}
}

func TestExpensesFiltersByUser(t *testing.T) {
	st := openTestStore(t)

	if _, err := st.AppendExpense(model.Expense{UserID: "local_user", Value: 5, CategoryID: "cat_1", Date: model.Today()}); err != nil {
		t.Fatal(err)
	}

	if got := st.Expenses("local_user"); len(got) != 1 {
		t.Errorf("own records = %d, want 1", len(got))
	}
	if got := st.Expenses("someone_else"); len(got) != 0 {
		t.Errorf("foreign records = %d, want 0", len(got))
	}
}
