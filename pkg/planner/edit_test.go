package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninefold/novena/pkg/principle"
)

func TestPlanEditAlreadyAttuned(t *testing.T) {
	p := principle.Default()
	plan, err := PlanEdit("ABC", 6, p, nil, false, "", 0)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
	assert.Equal(t, 6, plan.RootAfter)
}

func TestPlanEditSingleSubstitution(t *testing.T) {
	p := principle.Default()
	// X carries energy 6; replacing it with A (1) closes the gap to 1.
	plan, err := PlanEdit("X", 1, p, map[string][]string{"X": {"A"}}, false, "", 0)
	require.NoError(t, err)
	require.Len(t, plan.Ops, 1)
	assert.Equal(t, OpSubstitute, plan.Ops[0].Kind)
	assert.Equal(t, 0, plan.Ops[0].Pos)
	assert.Equal(t, "A", plan.Ops[0].Char)
	assert.Equal(t, 1, plan.RootAfter)
}

func TestPlanEditDeletion(t *testing.T) {
	p := principle.Default()
	// "AB" totals 3; deleting A (energy 1) leaves 2.
	plan, err := PlanEdit("AB", 2, p, nil, true, "", 0)
	require.NoError(t, err)
	require.Len(t, plan.Ops, 1)
	assert.Equal(t, OpDelete, plan.Ops[0].Kind)
	assert.Equal(t, 0, plan.Ops[0].Pos)
	assert.Equal(t, 2, plan.RootAfter)
}

func TestPlanEditFirstSeenWins(t *testing.T) {
	p := principle.Default()
	// D and M share delta 3 against A; the catalog's first entry wins.
	plan, err := PlanEdit("A", 4, p, map[string][]string{"A": {"D", "M"}}, false, "", 0)
	require.NoError(t, err)
	require.Len(t, plan.Ops, 1)
	assert.Equal(t, "D", plan.Ops[0].Char)
}

func TestPlanEditInsertionFallback(t *testing.T) {
	p := principle.Default()
	// No substitutions or deletions available: fall back to appending '!'.
	plan, err := PlanEdit("AAA", 6, p, nil, false, "!", 0)
	require.NoError(t, err)
	require.Len(t, plan.Ops, 1)
	assert.Equal(t, OpInsert, plan.Ops[0].Kind)
	assert.Equal(t, 3, plan.Ops[0].Pos, "fallback appends at the end")
	assert.Equal(t, "!", plan.Ops[0].Char)
	assert.Equal(t, 6, plan.RootAfter)
}

func TestPlanEditInfeasible(t *testing.T) {
	p := principle.Default()
	_, err := PlanEdit("AAA", 6, p, nil, false, "", 0)
	assert.ErrorIs(t, err, ErrInfeasiblePlan)
}

func TestPlanEditOnePositionOneEdit(t *testing.T) {
	p := principle.Default()
	// Gap 4 but the single position only offers delta 1: infeasible
	// without the insertion fallback.
	_, err := PlanEdit("A", 5, p, map[string][]string{"A": {"B"}}, false, "", 0)
	assert.ErrorIs(t, err, ErrInfeasiblePlan)
}

func TestPlanEditRespectsBudget(t *testing.T) {
	p := principle.Default()
	// Each of the four As can move by 1; gap 4 needs all four but the
	// budget allows two.
	_, err := PlanEdit("AAAA", 8, p, map[string][]string{"A": {"B"}}, false, "", 2)
	assert.ErrorIs(t, err, ErrInfeasiblePlan)

	plan, err := PlanEdit("AAAA", 8, p, map[string][]string{"A": {"B"}}, false, "", 4)
	require.NoError(t, err)
	assert.Len(t, plan.Ops, 4)
	assert.Equal(t, 8, plan.RootAfter)
}

func TestPlanEditUsesDistinctPositions(t *testing.T) {
	p := principle.Default()
	// "AAB" totals 4; gap to 8 is 4 and every option carries delta 1 or 2,
	// so the minimal plan must spread three edits across all positions.
	// A rolling DP table used to reconstruct this as two edits stacked on
	// the last position, silently missing the target.
	catalog := map[string][]string{"A": {"B"}, "B": {"C", "D"}}
	plan, err := PlanEdit("AAB", 8, p, catalog, false, "", 0)
	require.NoError(t, err)
	require.Len(t, plan.Ops, 3)

	used := map[int]bool{}
	for _, op := range plan.Ops {
		assert.False(t, used[op.Pos], "position %d edited twice", op.Pos)
		used[op.Pos] = true
	}

	out, err := ApplyEditPlan("AAB", plan)
	require.NoError(t, err)
	assert.Equal(t, "BBD", out)
	assert.Equal(t, 8, plan.RootAfter)
}

func TestPlanEditInvalidTarget(t *testing.T) {
	p := principle.Default()
	_, err := PlanEdit("ABC", 0, p, nil, false, "", 0)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestPlanEditDeterministic(t *testing.T) {
	p := principle.Default()
	catalog := map[string][]string{"A": {"B", "C"}, "B": {"E"}}
	first, err := PlanEdit("ABAB", 9, p, catalog, true, "", 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := PlanEdit("ABAB", 9, p, catalog, true, "", 0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPlanEditPostcondition(t *testing.T) {
	p := principle.Default()
	catalog := map[string][]string{
		"l": {"k", "m"},
		"o": {"p"},
		"e": {"a"},
	}
	for target := 1; target <= 9; target++ {
		plan, err := PlanEdit("hello people", target, p, catalog, true, DefaultAllowedSymbols, 0)
		require.NoError(t, err, "target %d", target)
		assert.Equal(t, target, plan.RootAfter, "target %d", target)
	}
}
