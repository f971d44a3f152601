package scheduler

import "time"

// priority bounds for queue entries
const (
	MinPriority = 1
	MaxPriority = 10
)

// OverdueBonus returns the anti-starvation increment for a listing that has
// exceeded its due time. The bonus grows with overdue time so low-tier
// listings eventually out-rank fresh high-tier work, bounding worst-case
// wait independent of tier.
func OverdueBonus(overdue time.Duration) int {
	switch {
	case overdue > 24*time.Hour:
		return 5
	case overdue > 12*time.Hour:
		return 3
	case overdue > 6*time.Hour:
		return 2
	case overdue > 0:
		return 1
	default:
		return 0
	}
}

// Priority computes the queue priority for a listing: tier base priority
// plus overdue bonus, clamped to [MinPriority, MaxPriority]. Negative
// overdue (not yet due) counts as zero.
func Priority(basePriority int, overdue time.Duration) int {
	p := basePriority + OverdueBonus(overdue)
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}
