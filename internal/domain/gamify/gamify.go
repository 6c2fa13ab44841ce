// internal/domain/gamify/gamify.go
//
// Package gamify holds the pure progress arithmetic: point accrual, badge
// threshold evaluation and the derived snapshot shown on the lesson
// dashboard. Nothing here touches storage or HTTP.
package gamify

// Evaluate returns the badge set after applying the threshold table to the
// current completed count. Earned badges are never removed: the result is
// always a superset of current, so lowering a threshold table later cannot
// demote a learner. Iteration order over thresholds does not affect the
// outcome.
func Evaluate(completedCount int, thresholds map[string]int, current []string) []string {
	earned := make(map[string]bool, len(current))
	for _, key := range current {
		earned[key] = true
	}

	out := make([]string, len(current))
	copy(out, current)

	for key, threshold := range thresholds {
		if earned[key] {
			continue
		}
		if completedCount >= threshold {
			out = append(out, key)
			earned[key] = true
		}
	}
	return out
}

// Snapshot is the derived progress view. Points and percent are always
// recomputed from the completed count; persisted scalars are never trusted.
type Snapshot struct {
	CompletedCount  int
	Points          int
	ProgressPercent int
}

// Derive computes the snapshot for a completed count against the lesson's
// gamification settings. Percent is clamped to [0,100] and reported as zero
// when totalSections is not positive.
func Derive(completedCount, pointsPerSection, totalSections int) Snapshot {
	s := Snapshot{
		CompletedCount: completedCount,
		Points:         completedCount * pointsPerSection,
	}
	if totalSections > 0 {
		pct := completedCount * 100 / totalSections
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		s.ProgressPercent = pct
	}
	return s
}
