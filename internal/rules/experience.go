package rules

// Per-level grants
const (
	SkillPointsPerLevel = 1
	StatPointsPerLevel  = 3
)

// StatBaseline is the value ResetStats returns every primary stat to
const StatBaseline = 5

// StatFloor is the lowest value a primary stat may be deallocated to
const StatFloor = 1

// NextThreshold returns floor(prev * 1.5), the experience needed for the
// level after one that required prev. It always grows by at least one point.
func NextThreshold(prev int) int {
	next := prev * 3 / 2
	if next <= prev {
		next = prev + 1
	}
	return next
}
