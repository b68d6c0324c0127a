package models

import (
	"math"
	"time"
)

// Priority is the urgency bucket derived from days-until-due.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities from most to least urgent, for sorting.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// DaysRemaining is the number of days until due, counted with a ceiling:
// a due date later today or tomorrow counts as 1, an overdue date is
// negative.
func DaysRemaining(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// Classify maps a due date to its urgency bucket. Thresholds are
// evaluated in order on the day ceiling: <=1 critical, <=3 high,
// <=7 medium, otherwise low. The due date is assumed valid; callers
// guard against zero or unparsed dates.
func Classify(due, now time.Time) Priority {
	days := DaysRemaining(due, now)
	switch {
	case days <= 1:
		return PriorityCritical
	case days <= 3:
		return PriorityHigh
	case days <= 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
