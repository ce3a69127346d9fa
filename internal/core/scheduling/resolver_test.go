package scheduling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"planboard/internal/core/domain"
)

func fsDep(ref string) domain.Dependency {
	return domain.Dependency{PredecessorRef: ref, Type: domain.DependencyFinishToStart}
}

func TestResolveReference_CodeWinsOverID(t *testing.T) {
	tasks := []domain.Task{
		{ID: "id-1", Code: "M1"},
		{ID: "M1"}, // id that collides with another task's code
	}

	id, ok := ResolveReference(tasks, "M1")
	require.True(t, ok)
	require.Equal(t, "id-1", id)
}

func TestResolveReference_FallsBackToID(t *testing.T) {
	tasks := []domain.Task{{ID: "id-1", Code: "M1"}, {ID: "id-2"}}

	id, ok := ResolveReference(tasks, "id-2")
	require.True(t, ok)
	require.Equal(t, "id-2", id)
}

func TestResolveReference_Dangling(t *testing.T) {
	tasks := []domain.Task{{ID: "id-1"}}

	_, ok := ResolveReference(tasks, "gone")
	require.False(t, ok)

	_, ok = ResolveReference(tasks, "")
	require.False(t, ok)
}

func TestDirectSuccessors_CodeAndIDResolveToSameSet(t *testing.T) {
	pred := domain.Task{ID: "id-1", Code: "M1"}

	byCode := []domain.Task{pred, {ID: "id-2", Dependencies: []domain.Dependency{fsDep("M1")}}}
	byID := []domain.Task{pred, {ID: "id-2", Dependencies: []domain.Dependency{fsDep("id-1")}}}

	succCode := DirectSuccessors(byCode, "id-1")
	succID := DirectSuccessors(byID, "id-1")

	require.Len(t, succCode, 1)
	require.Len(t, succID, 1)
	require.Equal(t, succCode[0].ID, succID[0].ID)
}

func TestDirectSuccessors_DanglingReferenceContributesNoEdge(t *testing.T) {
	tasks := []domain.Task{
		{ID: "id-1"},
		{ID: "id-2", Dependencies: []domain.Dependency{fsDep("deleted-task")}},
	}

	require.Empty(t, DirectSuccessors(tasks, "id-1"))
	require.Empty(t, DirectSuccessors(tasks, "deleted-task"))
}

func TestAllAffected_TransitiveDiscoveryOrder(t *testing.T) {
	// a -> b -> d, a -> c
	tasks := []domain.Task{
		{ID: "a"},
		{ID: "b", Dependencies: []domain.Dependency{fsDep("a")}},
		{ID: "c", Dependencies: []domain.Dependency{fsDep("a")}},
		{ID: "d", Dependencies: []domain.Dependency{fsDep("b")}},
	}

	affected := AllAffected(tasks, "a")
	ids := make([]string, len(affected))
	for i, task := range affected {
		ids[i] = task.ID
	}
	require.Equal(t, []string{"b", "c", "d"}, ids)
}

func TestAllAffected_CycleTerminates(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Dependencies: []domain.Dependency{fsDep("b")}},
		{ID: "b", Dependencies: []domain.Dependency{fsDep("a")}},
	}

	affected := AllAffected(tasks, "a")
	require.Len(t, affected, 1)
	require.Equal(t, "b", affected[0].ID)
}

func TestAllAffected_ExcludesFilteredOutPredecessors(t *testing.T) {
	// Resolution only considers the task set passed in, not a global store.
	tasks := []domain.Task{
		{ID: "b", Dependencies: []domain.Dependency{fsDep("a")}},
	}

	require.Empty(t, AllAffected(tasks, "a"))
}

func TestWouldCreateCycle(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a"},
		{ID: "b", Dependencies: []domain.Dependency{fsDep("a")}},
		{ID: "c", Dependencies: []domain.Dependency{fsDep("b")}},
	}

	require.True(t, WouldCreateCycle(tasks, "a", []domain.Dependency{fsDep("c")}))
	require.True(t, WouldCreateCycle(tasks, "a", []domain.Dependency{fsDep("a")}))
	require.False(t, WouldCreateCycle(tasks, "c", []domain.Dependency{fsDep("a")}))
	require.False(t, WouldCreateCycle(tasks, "a", []domain.Dependency{fsDep("missing")}))
}
