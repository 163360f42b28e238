package rating

import "testing"

func TestAverageEmpty(t *testing.T) {
	if avg, ok := Average(nil); ok || avg != 0 {
		t.Fatalf("want (0,false) for no scores, got (%v,%v)", avg, ok)
	}
	if _, ok := Average([]int{}); ok {
		t.Fatalf("empty slice must report no ratings")
	}
}

func TestAverageExact(t *testing.T) {
	avg, ok := Average([]int{4, 5, 3})
	if !ok {
		t.Fatalf("expected a mean for non-empty scores")
	}
	if avg != 4.0 {
		t.Fatalf("want 4.0, got %v", avg)
	}
}

func TestAverageMatchesSumOverLen(t *testing.T) {
	cases := [][]int{
		{1},
		{5, 5, 5, 5},
		{1, 2},
		{2, 3, 4, 5, 1, 3},
	}
	for _, scores := range cases {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		want := float64(sum) / float64(len(scores))
		got, ok := Average(scores)
		if !ok || got != want {
			t.Fatalf("scores %v: want %v, got (%v,%v)", scores, want, got, ok)
		}
	}
}

func TestAverageZeroScoresIsNotNoData(t *testing.T) {
	// a recipe whose every score is 0 has a real mean of 0; the ok flag
	// is the only way to tell that apart from "no ratings"
	avg, ok := Average([]int{0, 0})
	if !ok || avg != 0 {
		t.Fatalf("want (0,true), got (%v,%v)", avg, ok)
	}
}
