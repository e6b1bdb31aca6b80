package checklist

import "cloud.google.com/go/civil"

// ResolvedTask is a catalog entry expanded against an anchor date.
// It is derived on demand and never stored.
type ResolvedTask struct {
	Key      Key
	Label    string
	Deadline civil.Date
}

// Resolve expands catalog against anchor. A nil anchor means no date has been
// chosen yet and yields an empty, non-nil slice.
func Resolve(catalog Catalog, anchor *civil.Date) []ResolvedTask {
	if anchor == nil {
		return []ResolvedTask{}
	}

	tasks := make([]ResolvedTask, 0, len(catalog.Tasks))

	for i, def := range catalog.Tasks {
		tasks = append(tasks, ResolvedTask{
			Key:      Key{Category: catalog.Category, Index: i + 1},
			Label:    def.Label,
			Deadline: anchor.AddDays(-def.OffsetDays),
		})
	}

	return tasks
}

// Urgency classifies a deadline relative to today.
type Urgency int

// Urgency values.
const (
	Upcoming Urgency = iota
	DueToday
	Overdue
)

func (u Urgency) String() string {
	switch u {
	case Upcoming:
		return "upcoming"
	case DueToday:
		return "due-today"
	case Overdue:
		return "overdue"
	default:
		return "unknown"
	}
}

// DaysRemaining returns deadline - today in calendar days. Negative means the
// deadline has passed.
func DaysRemaining(deadline, today civil.Date) int {
	return deadline.DaysSince(today)
}

// Classify returns the urgency of deadline as seen on today.
func Classify(deadline, today civil.Date) Urgency {
	switch days := DaysRemaining(deadline, today); {
	case days > 0:
		return Upcoming
	case days == 0:
		return DueToday
	default:
		return Overdue
	}
}
