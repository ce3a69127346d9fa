// Package scheduling holds the dependency-graph and date-shift logic as
// pure functions over an explicit task slice. Nothing here touches a
// repository: callers pass in the snapshot of tasks they already hold, and
// resolution only ever considers that snapshot.
package scheduling

import "planboard/internal/core/domain"

// refIndex resolves dependency references for one task set. It is built
// once per operation by a single scan of the set.
type refIndex struct {
	ids    map[string]bool
	byCode map[string]string
}

func newRefIndex(tasks []domain.Task) refIndex {
	idx := refIndex{
		ids:    make(map[string]bool, len(tasks)),
		byCode: make(map[string]string),
	}
	for _, t := range tasks {
		idx.ids[t.ID] = true
		if t.Code != "" {
			idx.byCode[t.Code] = t.ID
		}
	}
	return idx
}

// resolve maps a reference, which may be a task's code or its id, to a task
// id. Codes win over ids; an unmatched code falls through to an id lookup.
// ok is false when the reference points at nothing in the set, in which
// case the dependency contributes no edge.
func (idx refIndex) resolve(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if id, ok := idx.byCode[raw]; ok {
		return id, true
	}
	if idx.ids[raw] {
		return raw, true
	}
	return "", false
}

// ResolveReference resolves a single dependency reference against a task
// set. See refIndex.resolve for the lookup rules.
func ResolveReference(tasks []domain.Task, raw string) (string, bool) {
	return newRefIndex(tasks).resolve(raw)
}

func directSuccessors(tasks []domain.Task, idx refIndex, taskID string) []domain.Task {
	var successors []domain.Task
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if id, ok := idx.resolve(dep.PredecessorRef); ok && id == taskID {
				successors = append(successors, t)
				break
			}
		}
	}
	return successors
}

// DirectSuccessors returns every task in the set holding a dependency that
// resolves to taskID.
func DirectSuccessors(tasks []domain.Task, taskID string) []domain.Task {
	return directSuccessors(tasks, newRefIndex(tasks), taskID)
}

// AllAffected returns the transitive successors of taskID in discovery
// order. The visited set guarantees termination even when the input graph
// contains a cycle; revisited tasks are skipped, not an error.
func AllAffected(tasks []domain.Task, taskID string) []domain.Task {
	idx := newRefIndex(tasks)
	visited := map[string]bool{taskID: true}
	var affected []domain.Task

	queue := []string{taskID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, succ := range directSuccessors(tasks, idx, current) {
			if visited[succ.ID] {
				continue
			}
			visited[succ.ID] = true
			affected = append(affected, succ)
			queue = append(queue, succ.ID)
		}
	}
	return affected
}

// WouldCreateCycle reports whether replacing taskID's dependency edges with
// deps would close a cycle, i.e. make taskID a transitive successor of
// itself. Used to reject bad edges at write time; traversal stays
// cycle-safe regardless for data that predates the check.
func WouldCreateCycle(tasks []domain.Task, taskID string, deps []domain.Dependency) bool {
	candidate := make([]domain.Task, len(tasks))
	copy(candidate, tasks)
	found := false
	for i := range candidate {
		if candidate[i].ID == taskID {
			candidate[i].Dependencies = deps
			found = true
		}
	}
	if !found {
		return false
	}

	idx := newRefIndex(candidate)
	reachable := map[string]bool{}
	for _, succ := range AllAffected(candidate, taskID) {
		reachable[succ.ID] = true
	}
	for _, dep := range deps {
		predID, ok := idx.resolve(dep.PredecessorRef)
		if !ok {
			continue
		}
		if predID == taskID || reachable[predID] {
			return true
		}
	}
	return false
}
