package model

import (
	"encoding/json"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestDaysSince(t *testing.T) {
	base := mustDate(t, "2024-03-15")

	if got := base.DaysSince(mustDate(t, "2024-03-14")); got != 1 {
		t.Errorf("one day gap = %d, want 1", got)
	}
	if got := base.DaysSince(base); got != 0 {
		t.Errorf("same day gap = %d, want 0", got)
	}
	if got := base.DaysSince(mustDate(t, "2024-02-29")); got != 15 {
		t.Errorf("leap-month gap = %d, want 15", got)
	}
	if got := mustDate(t, "2024-03-01").DaysSince(mustDate(t, "2024-02-28")); got != 2 {
		t.Errorf("month boundary gap = %d, want 2", got)
	}
}

func TestSameMonth(t *testing.T) {
	ref := mustDate(t, "2024-03-15")

	if !mustDate(t, "2024-03-01").SameMonth(ref) {
		t.Error("2024-03-01 should share 2024-03-15's month")
	}
	if mustDate(t, "2024-02-28").SameMonth(ref) {
		t.Error("2024-02-28 should not share 2024-03-15's month")
	}
	if mustDate(t, "2023-03-15").SameMonth(ref) {
		t.Error("same month of a different year should not match")
	}
}

func TestLastOfMonth(t *testing.T) {
	if !mustDate(t, "2024-02-29").LastOfMonth() {
		t.Error("2024-02-29 is the end of a leap February")
	}
	if mustDate(t, "2023-02-28").LastOfMonth() != true {
		t.Error("2023-02-28 is the end of February")
	}
	if mustDate(t, "2024-02-28").LastOfMonth() {
		t.Error("2024-02-28 is not the end of a leap February")
	}
	if !mustDate(t, "2024-12-31").LastOfMonth() {
		t.Error("2024-12-31 is a year end")
	}
}

func TestDateJSONZeroValue(t *testing.T) {
	type wrapper struct {
		D Date `json:"d"`
	}

	data, err := json.Marshal(wrapper{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"d":""}` {
		t.Errorf("zero date encoded as %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"d":""}`), &w); err != nil {
		t.Fatal(err)
	}
	if !w.D.IsZero() {
		t.Error("empty string should decode to the zero date")
	}

	if err := json.Unmarshal([]byte(`{"d":"2024-03-08"}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.D.String() != "2024-03-08" {
		t.Errorf("decoded date = %q, want 2024-03-08", w.D)
	}
}

func TestDateOfTruncates(t *testing.T) {
	d := DateOf(time.Date(2024, time.March, 15, 23, 59, 59, 0, time.Local))
	if d.String() != "2024-03-15" {
		t.Errorf("DateOf kept a time component: %q", d)
	}
}
