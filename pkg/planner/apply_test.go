package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

func insertionPlan(steps ...InsertStep) *Plan {
	return &Plan{Target: 9, Steps: steps}
}

func TestApplyInsertionAppend(t *testing.T) {
	out, err := ApplyInsertionPlan("abc", insertionPlan(InsertStep{Symbol: ".", Count: 2}), MethodAppend, 0)
	require.NoError(t, err)
	assert.Equal(t, "abc..", out)
}

func TestApplyInsertionPrepend(t *testing.T) {
	out, err := ApplyInsertionPlan("abc", insertionPlan(InsertStep{Symbol: "!", Count: 1}), MethodPrepend, 0)
	require.NoError(t, err)
	assert.Equal(t, "!abc", out)
}

func TestApplyInsertionIntersperse(t *testing.T) {
	// Six runes, two inserts: interval 6/(2+1) = 2.
	out, err := ApplyInsertionPlan("abcdef", insertionPlan(InsertStep{Symbol: ".", Count: 2}), MethodIntersperse, 0)
	require.NoError(t, err)
	assert.Equal(t, "ab.cd.ef", out)
}

func TestApplyInsertionIntersperseExplicitSpread(t *testing.T) {
	out, err := ApplyInsertionPlan("abcdef", insertionPlan(InsertStep{Symbol: ".", Count: 2}), MethodIntersperse, 1)
	require.NoError(t, err)
	assert.Equal(t, "a.b.cdef", out)
}

func TestApplyInsertionIntersperseRemainderAppends(t *testing.T) {
	// More inserts than slots: the surplus lands at the end.
	out, err := ApplyInsertionPlan("ab", insertionPlan(InsertStep{Symbol: ".", Count: 4}), MethodIntersperse, 0)
	require.NoError(t, err)
	assert.Equal(t, "a.b...", out)
}

func TestApplyInsertionEmptyTextIntersperse(t *testing.T) {
	out, err := ApplyInsertionPlan("", insertionPlan(InsertStep{Symbol: "*", Count: 3}), MethodIntersperse, 0)
	require.NoError(t, err)
	assert.Equal(t, "***", out)
}

func TestApplyInsertionEmptyPlanIsIdentity(t *testing.T) {
	out, err := ApplyInsertionPlan("abc", &Plan{Target: 3}, MethodIntersperse, 0)
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestApplyInsertionUnknownMethod(t *testing.T) {
	_, err := ApplyInsertionPlan("abc", insertionPlan(InsertStep{Symbol: ".", Count: 1}), InsertMethod("shuffle"), 0)
	assert.Error(t, err)
}

func TestApplyInsertionMethodPreservesEnergy(t *testing.T) {
	p := principle.Default()
	plan := insertionPlan(InsertStep{Symbol: "?", Count: 1}, InsertStep{Symbol: ".", Count: 2})
	var totals []int
	for _, method := range []InsertMethod{MethodAppend, MethodPrepend, MethodIntersperse} {
		out, err := ApplyInsertionPlan("hello world", plan, method, 0)
		require.NoError(t, err)
		total, _ := energy.StringEnergy(out, p)
		totals = append(totals, total)
	}
	assert.Equal(t, totals[0], totals[1], "placement must not change the total")
	assert.Equal(t, totals[0], totals[2], "placement must not change the total")
}

func TestApplyEditPlanMixedOps(t *testing.T) {
	// Positions refer to the original buffer: delete 'f' (pos 5),
	// substitute 'c' (pos 2), insert at pos 1. Order in the plan is
	// deliberately scrambled.
	plan := &EditPlan{Target: 1, Ops: []Operation{
		{Kind: OpInsert, Pos: 1, Char: "+", Count: 1},
		{Kind: OpDelete, Pos: 5},
		{Kind: OpSubstitute, Pos: 2, Char: "X"},
	}}
	out, err := ApplyEditPlan("abcdef", plan)
	require.NoError(t, err)
	assert.Equal(t, "a+bXde", out)
}

func TestApplyEditPlanMultipleDeletionsIndependentOfOrder(t *testing.T) {
	forward := &EditPlan{Target: 1, Ops: []Operation{
		{Kind: OpDelete, Pos: 1},
		{Kind: OpDelete, Pos: 3},
	}}
	backward := &EditPlan{Target: 1, Ops: []Operation{
		{Kind: OpDelete, Pos: 3},
		{Kind: OpDelete, Pos: 1},
	}}
	outF, err := ApplyEditPlan("abcde", forward)
	require.NoError(t, err)
	outB, err := ApplyEditPlan("abcde", backward)
	require.NoError(t, err)
	assert.Equal(t, "ace", outF)
	assert.Equal(t, outF, outB)
}

func TestApplyEditPlanRejectsOutOfRange(t *testing.T) {
	for _, ops := range [][]Operation{
		{{Kind: OpSubstitute, Pos: 3, Char: "x"}},
		{{Kind: OpDelete, Pos: -1}},
		{{Kind: OpInsert, Pos: 4, Char: "."}},
	} {
		_, err := ApplyEditPlan("abc", &EditPlan{Target: 1, Ops: ops})
		assert.ErrorIs(t, err, ErrInvalidPlan)
	}
}

func TestApplyEditPlanEmptyIsIdentity(t *testing.T) {
	out, err := ApplyEditPlan("abc", &EditPlan{Target: 3})
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestPlannedEditsReachTarget(t *testing.T) {
	p := principle.Default()
	catalog := map[string][]string{"a": {"b", "c"}, "o": {"u"}}
	for target := 1; target <= 9; target++ {
		plan, err := PlanEdit("a quick round of checks", target, p, catalog, true, DefaultAllowedSymbols, 0)
		require.NoError(t, err, "target %d", target)

		out, err := ApplyEditPlan("a quick round of checks", plan)
		require.NoError(t, err)
		_, root := energy.StringEnergy(out, p)
		assert.Equal(t, target, root, "target %d", target)
	}
}
