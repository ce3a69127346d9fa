package scheduling

import (
	"sort"
	"time"

	"planboard/internal/core/domain"
)

// Assignment is one planned date pair from a sequential auto-schedule run.
type Assignment struct {
	TaskID    string
	StartDate time.Time
	DueDate   time.Time
}

// PlanSequential assigns dates back-to-back along a fixed canonical code
// order, ignoring dependency edges entirely. Only tasks that already carry
// at least one date take part. Tasks whose code appears in codeOrder sort
// by list position; the rest sort after them, stable among themselves.
//
// Activities keep their existing duration (minimum one day) or fall back to
// DefaultDurationDays; milestones have duration zero and consume no gap
// day, so the next task may start on the milestone's date. Packing is
// anchored at anchor when given, else at the first sorted task's start
// date, else at now.
func PlanSequential(tasks []domain.Task, codeOrder []string, anchor *time.Time, now time.Time) []Assignment {
	var dated []domain.Task
	for _, t := range tasks {
		if t.StartDate != nil || t.DueDate != nil {
			dated = append(dated, t)
		}
	}
	if len(dated) == 0 {
		return nil
	}

	rank := make(map[string]int, len(codeOrder))
	for i, code := range codeOrder {
		rank[code] = i
	}
	pos := func(t domain.Task) int {
		if t.Code != "" {
			if r, ok := rank[t.Code]; ok {
				return r
			}
		}
		return len(codeOrder)
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return pos(dated[i]) < pos(dated[j])
	})

	current := TruncateDay(now)
	switch {
	case anchor != nil:
		current = TruncateDay(*anchor)
	case dated[0].StartDate != nil:
		current = TruncateDay(*dated[0].StartDate)
	}

	assignments := make([]Assignment, 0, len(dated))
	for _, t := range dated {
		duration := 0
		if t.TaskType != domain.TaskTypeMilestone {
			duration = DefaultDurationDays
			if t.StartDate != nil && t.DueDate != nil {
				duration = DurationDays(*t.StartDate, *t.DueDate, 1)
			}
		}

		due := AddDays(current, duration)
		assignments = append(assignments, Assignment{
			TaskID:    t.ID,
			StartDate: current,
			DueDate:   due,
		})

		current = due
		if t.TaskType != domain.TaskTypeMilestone {
			current = AddDays(current, 1)
		}
	}
	return assignments
}
