// Package rating computes aggregate scores for recipes.  Aggregates are
// a pure read-time projection: they are never persisted, always
// recomputed from whatever rating rows exist at query time.
package rating

// Average returns the arithmetic mean of the given scores.  The second
// return value is false when there are no scores at all; callers must
// use it to distinguish "no ratings yet" from a genuine mean of zero
// rather than treating 0 as a sentinel.
func Average(scores []int) (float64, bool) {
	if len(scores) == 0 {
		return 0, false
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores)), true
}
