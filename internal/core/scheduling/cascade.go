package scheduling

import (
	"time"

	"planboard/internal/core/domain"
)

// Shift is one planned date move for a transitively affected task. Start
// and due move together by Days, so the task's own duration never changes.
type Shift struct {
	TaskID    string
	Days      int
	StartDate time.Time
	DueDate   time.Time
}

// span is the working view of a task's dates while a cascade is computed.
type span struct {
	start, due time.Time
	hasStart   bool
	hasDue     bool
}

func spanOf(t domain.Task) span {
	s := span{}
	if t.StartDate != nil {
		s.start = TruncateDay(*t.StartDate)
		s.hasStart = true
	}
	if t.DueDate != nil {
		s.due = TruncateDay(*t.DueDate)
		s.hasDue = true
	}
	return s
}

// PlanCascade computes the date shifts required to keep every transitive
// successor of the trigger task consistent after the trigger's end date
// moved from oldDue to its current value. tasks must already contain the
// trigger with its new dates applied; the direct edit always wins and is
// not validated against the trigger's own predecessors.
//
// Successors are processed in topological order of the affected subgraph so
// a task with several moved predecessors sees all of their new dates before
// its own shift is computed. Each dependency edge is evaluated per its
// declared type; the latest resulting constraint wins. Tasks already in
// place (zero shift) and tasks without dates are skipped. No writes happen
// here: the caller applies the returned shifts one at a time.
func PlanCascade(tasks []domain.Task, triggerID string, oldDue *time.Time) []Shift {
	idx := newRefIndex(tasks)

	var trigger *domain.Task
	for i := range tasks {
		if tasks[i].ID == triggerID {
			trigger = &tasks[i]
			break
		}
	}
	if trigger == nil || trigger.DueDate == nil {
		return nil
	}
	if oldDue != nil && DaysBetween(*oldDue, *trigger.DueDate) == 0 {
		return nil
	}

	affected := AllAffected(tasks, triggerID)
	if len(affected) == 0 {
		return nil
	}

	// Working dates: the trigger's new span plus every affected task's
	// current span, updated as shifts are planned.
	spans := map[string]span{triggerID: spanOf(*trigger)}
	byID := make(map[string]domain.Task, len(affected))
	for _, t := range affected {
		spans[t.ID] = spanOf(t)
		byID[t.ID] = t
	}

	var shifts []Shift
	for _, id := range topoOrder(tasks, idx, affected) {
		task := byID[id]
		cur := spans[id]
		if !cur.hasStart && !cur.hasDue {
			continue
		}

		shiftDays, constrained := requiredShift(task, idx, spans, cur)
		if !constrained || shiftDays == 0 {
			continue
		}

		if cur.hasStart {
			cur.start = AddDays(cur.start, shiftDays)
		}
		if cur.hasDue {
			cur.due = AddDays(cur.due, shiftDays)
		}
		spans[id] = cur

		shifts = append(shifts, Shift{
			TaskID:    id,
			Days:      shiftDays,
			StartDate: cur.start,
			DueDate:   cur.due,
		})
	}
	return shifts
}

// requiredShift evaluates every edge of task pointing at an already-planned
// predecessor and returns the largest shift needed to satisfy them all.
func requiredShift(task domain.Task, idx refIndex, spans map[string]span, cur span) (int, bool) {
	best := 0
	constrained := false
	for _, dep := range task.Dependencies {
		predID, ok := idx.resolve(dep.PredecessorRef)
		if !ok {
			continue
		}
		pred, ok := spans[predID]
		if !ok {
			// Predecessor outside the affected set keeps its dates.
			continue
		}

		var shift int
		switch dep.Type {
		case domain.DependencyStartToStart:
			if !pred.hasStart || !cur.hasStart {
				continue
			}
			shift = DaysBetween(cur.start, AddDays(pred.start, dep.LagDays))
		case domain.DependencyFinishToFinish:
			if !pred.hasDue || !cur.hasDue {
				continue
			}
			shift = DaysBetween(cur.due, AddDays(pred.due, dep.LagDays))
		case domain.DependencyStartToFinish:
			if !pred.hasStart || !cur.hasDue {
				continue
			}
			shift = DaysBetween(cur.due, AddDays(pred.start, dep.LagDays))
		default:
			// Finish-to-start: start strictly after the predecessor's end.
			if !pred.hasDue || !cur.hasStart {
				continue
			}
			shift = DaysBetween(cur.start, AddDays(pred.due, dep.LagDays+1))
		}

		if !constrained || shift > best {
			best = shift
			constrained = true
		}
	}
	return best, constrained
}

// topoOrder orders the affected tasks so every task follows all of its
// affected predecessors (Kahn's algorithm over the induced subgraph).
// Tasks on a cycle never reach in-degree zero; they are appended in
// discovery order so the cascade still terminates on bad input.
func topoOrder(tasks []domain.Task, idx refIndex, affected []domain.Task) []string {
	inSet := make(map[string]bool, len(affected))
	for _, t := range affected {
		inSet[t.ID] = true
	}

	inDegree := make(map[string]int, len(affected))
	successors := make(map[string][]string, len(affected))
	for _, t := range affected {
		inDegree[t.ID] = 0
	}
	for _, t := range affected {
		for _, dep := range t.Dependencies {
			predID, ok := idx.resolve(dep.PredecessorRef)
			if !ok || !inSet[predID] {
				continue
			}
			inDegree[t.ID]++
			successors[predID] = append(successors[predID], t.ID)
		}
	}

	var queue []string
	for _, t := range affected {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	ordered := make([]string, 0, len(affected))
	placed := make(map[string]bool, len(affected))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered = append(ordered, id)
		placed[id] = true
		for _, succ := range successors[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	for _, t := range affected {
		if !placed[t.ID] {
			ordered = append(ordered, t.ID)
		}
	}
	return ordered
}
