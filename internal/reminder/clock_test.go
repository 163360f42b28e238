package reminder

import (
	"testing"
	"time"
)

const day = 24 * time.Hour

func TestParseTaskKind(t *testing.T) {
	if k, err := ParseTaskKind("stove"); err != nil || k != Stove {
		t.Fatalf("stove: got (%v,%v)", k, err)
	}
	if k, err := ParseTaskKind("fridge"); err != nil || k != Fridge {
		t.Fatalf("fridge: got (%v,%v)", k, err)
	}
	if _, err := ParseTaskKind("oven"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if _, err := ParseTaskKind(""); err == nil {
		t.Fatalf("expected error for empty kind")
	}
}

func TestIsDueBoundary(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := TaskState{LastCleaned: t0, NextDue: t0.Add(30 * day)}

	if IsDue(s, s.NextDue.Add(-time.Second)) {
		t.Fatalf("one second before next_due must not be due")
	}
	if !IsDue(s, s.NextDue) {
		t.Fatalf("now == next_due must be due")
	}
	if !IsDue(s, s.NextDue.Add(time.Second)) {
		t.Fatalf("past next_due must be due")
	}
}

func TestFreshScheduleNotDueWithinInterval(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s := Advance(t0, 30*day)

	for _, offset := range []time.Duration{0, time.Hour, 15 * day, 30*day - time.Second} {
		if IsDue(s, t0.Add(offset)) {
			t.Fatalf("fresh schedule due at t0+%s", offset)
		}
	}
	if !IsDue(s, t0.Add(30*day)) {
		t.Fatalf("fresh schedule must come due exactly one interval out")
	}
}

func TestAdvance(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	s := Advance(now, 30*day)
	if !s.LastCleaned.Equal(now) {
		t.Fatalf("last cleaned: want %v, got %v", now, s.LastCleaned)
	}
	if !s.NextDue.Equal(now.Add(30 * day)) {
		t.Fatalf("next due: want %v, got %v", now.Add(30*day), s.NextDue)
	}
}

// Walks the scenario of a schedule through one due/acknowledge cycle:
// created at T0, still quiet at T0+29d, due at T0+31d, advanced by a
// mark-done at T0+31d, quiet again at T0+32d until T0+61d.
func TestDueCycle(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	interval := 30 * day

	stove := Advance(t0, interval)
	if IsDue(stove, t0.Add(29*day)) {
		t.Fatalf("not due expected at T0+29d")
	}
	if !IsDue(stove, t0.Add(31*day)) {
		t.Fatalf("due expected at T0+31d")
	}

	// user acknowledges at T0+31d
	stove = Advance(t0.Add(31*day), interval)
	if !stove.NextDue.Equal(t0.Add(61 * day)) {
		t.Fatalf("next due after ack: want T0+61d, got %v", stove.NextDue)
	}
	if IsDue(stove, t0.Add(32*day)) {
		t.Fatalf("not due expected at T0+32d after ack")
	}
	if !IsDue(stove, t0.Add(61*day)) {
		t.Fatalf("due expected again at T0+61d")
	}
}

func TestTaskIndependence(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	st := State{
		Stove:  Advance(t0, 30*day),
		Fridge: Advance(t0, 30*day),
	}
	fridgeBefore := st.Fridge

	// stove marked done much later; fridge must be untouched
	st.Stove = Advance(t0.Add(40*day), 30*day)
	if st.Fridge != fridgeBefore {
		t.Fatalf("fridge schedule changed by a stove mark-done")
	}
	if st.Task(Fridge) != fridgeBefore {
		t.Fatalf("Task(Fridge) returned the wrong schedule")
	}
	if st.Task(Stove) != st.Stove {
		t.Fatalf("Task(Stove) returned the wrong schedule")
	}
}
