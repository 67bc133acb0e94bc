package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

func TestPlanInsertionAlreadyAttuned(t *testing.T) {
	p := principle.Default()
	// "ABC" totals 6.
	plan, err := PlanInsertion("ABC", 6, p, "", 0)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
	assert.Equal(t, 6, plan.RootBefore)
	assert.Equal(t, 6, plan.RootAfter)
	assert.Equal(t, plan.TotalBefore, plan.TotalAfter)
}

func TestPlanInsertionSingleSymbol(t *testing.T) {
	p := principle.Default()
	// Gap from 6 to 1 is 4; '?' carries energy 4.
	plan, err := PlanInsertion("ABC", 1, p, "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.InsertCount())
	assert.Equal(t, 1, plan.RootAfter)
}

func TestPlanInsertionReachesEveryTarget(t *testing.T) {
	p := principle.Default()
	for target := 1; target <= 9; target++ {
		plan, err := PlanInsertion("hello world", target, p, "", 0)
		require.NoError(t, err, "target %d", target)
		assert.Equal(t, target, plan.RootAfter, "target %d", target)
	}
}

func TestPlanInsertionMinimality(t *testing.T) {
	p := principle.Default()
	// With only '.' (energy 1) available, the gap equals the insertion count.
	plan, err := PlanInsertion("ABC", 1, p, ".", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.InsertCount())
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, ".", plan.Steps[0].Symbol)
}

func TestPlanInsertionInvalidTarget(t *testing.T) {
	p := principle.Default()
	for _, target := range []int{0, -1, 10} {
		_, err := PlanInsertion("ABC", target, p, "", 0)
		assert.ErrorIs(t, err, ErrInvalidTarget, "target %d", target)
	}
}

func TestPlanInsertionEmptyAllowedSet(t *testing.T) {
	p := principle.Default()
	// Whitespace carries no energy, so the candidate set is empty.
	_, err := PlanInsertion("ABC", 1, p, " \t", 0)
	assert.ErrorIs(t, err, ErrEmptyAllowedSet)
}

func TestPlanInsertionUnreachableResidue(t *testing.T) {
	p := principle.Default()
	// '*' has energy 9: inserting it never changes the residue.
	_, err := PlanInsertion("ABC", 1, p, "*", 0)
	assert.ErrorIs(t, err, ErrUnreachableResidue)
}

func TestPlanInsertionBudgetExceeded(t *testing.T) {
	p := principle.Default()
	// Gap 4 with only '.' (energy 1) needs four insertions; one is allowed.
	_, err := PlanInsertion("ABC", 1, p, ".", 1)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
}

func TestPlanInsertionDeterministic(t *testing.T) {
	p := principle.Default()
	first, err := PlanInsertion("some longer input text", 3, p, "", 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := PlanInsertion("some longer input text", 3, p, "", 0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPlanInsertionEmptyText(t *testing.T) {
	p := principle.Default()
	// Empty text roots to 9.
	plan, err := PlanInsertion("", 9, p, "", 0)
	require.NoError(t, err)
	assert.True(t, plan.Empty())

	plan, err = PlanInsertion("", 5, p, "", 0)
	require.NoError(t, err)
	assert.False(t, plan.Empty())
	assert.Equal(t, 5, plan.RootAfter)
}

func TestPlanInsertionStepsFollowSymbolOrder(t *testing.T) {
	p := principle.Default()
	// Gap 4 out of ".!": one '.' (1) plus one '!' (3), reported in the
	// caller's symbol order.
	plan, err := PlanInsertion("ABC", 1, p, ".!", 0)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, ".", plan.Steps[0].Symbol)
	assert.Equal(t, "!", plan.Steps[1].Symbol)
}

func TestPlanInsertionTotalsAccountForInserts(t *testing.T) {
	p := principle.Default()
	plan, err := PlanInsertion("ABC", 4, p, "", 0)
	require.NoError(t, err)

	added := 0
	for _, s := range plan.Steps {
		for _, r := range s.Symbol {
			added += s.Count * energy.CharEnergy(r, p)
		}
	}
	assert.Equal(t, plan.TotalBefore+added, plan.TotalAfter)
	assert.Equal(t, 4, plan.RootAfter)
}
