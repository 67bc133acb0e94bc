package novena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninefold/novena"
	"github.com/ninefold/novena/pkg/planner"
	"github.com/ninefold/novena/pkg/principle"
	"github.com/ninefold/novena/pkg/subs"
	"github.com/ninefold/novena/pkg/tokenize"
)

func TestNewDefaults(t *testing.T) {
	eng := novena.New()
	require.NotNil(t, eng.Principle())
	assert.Equal(t, "Ninefold Grid", eng.Principle().Name)
}

func TestWithPrinciple(t *testing.T) {
	p := principle.Default()
	p.Name = "House Rules"
	p.SymbolEnergy["~"] = 5

	eng := novena.New(novena.WithPrinciple(p))
	assert.Equal(t, "House Rules", eng.Principle().Name)

	total, root := eng.Checksum("~")
	assert.Equal(t, 5, total)
	assert.Equal(t, 5, root)
}

func TestChecksum(t *testing.T) {
	eng := novena.New()
	total, root := eng.Checksum("ABC")
	assert.Equal(t, 6, total)
	assert.Equal(t, 6, root)
}

func TestAnalyze(t *testing.T) {
	eng := novena.New()
	analysis := eng.Analyze("Hi there. Bye now.")
	assert.Len(t, analysis.Sentences, 2)

	total, root := eng.Checksum("Hi there. Bye now.")
	assert.Equal(t, total, analysis.Document.Total)
	assert.Equal(t, root, analysis.Document.Energy)
}

func TestTokenize(t *testing.T) {
	eng := novena.New()
	delims := "."
	tokens := eng.Tokenize("ab.cd", tokenize.Options{Delims: &delims})
	require.Len(t, tokens, 3)
	assert.Equal(t, "ab", tokens[0].Text)
	assert.Equal(t, ".", tokens[1].Text)
	assert.Equal(t, "cd", tokens[2].Text)
}

func TestAttuneReachesTarget(t *testing.T) {
	eng := novena.New()
	for target := 1; target <= 9; target++ {
		attuned, plan, err := eng.Attune("some ordinary text", target, "", planner.MethodAppend)
		require.NoError(t, err, "target %d", target)
		require.Equal(t, target, plan.Target)

		_, root := eng.Checksum(attuned)
		assert.Equal(t, target, root, "target %d", target)
	}
}

func TestAttunePropagatesPlannerErrors(t *testing.T) {
	eng := novena.New()
	_, _, err := eng.Attune("abc", 12, "", planner.MethodAppend)
	assert.ErrorIs(t, err, planner.ErrInvalidTarget)
}

func TestPlanEditFallsBackToProfileInserts(t *testing.T) {
	eng := novena.New()
	// Without a catalog or deletions the only in-place moves are case
	// flips, which carry no energy under the default principle, so the
	// plan must come back as insertions drawn from the profile.
	profile := &subs.Profile{AllowedInserts: "!"}
	plan, err := eng.PlanEdit("AAA", 6, profile, false, 4)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Ops)
	for _, op := range plan.Ops {
		assert.Equal(t, planner.OpInsert, op.Kind)
	}
	assert.Equal(t, 6, plan.RootAfter)
}

func TestPlanEditNilProfileInfeasible(t *testing.T) {
	eng := novena.New()
	// A nil profile supplies no insert symbols, so there is nothing to
	// fall back to.
	_, err := eng.PlanEdit("AAA", 6, nil, false, 4)
	assert.ErrorIs(t, err, planner.ErrInfeasiblePlan)
}

func TestPlanAndApplyEditRoundtrip(t *testing.T) {
	eng := novena.New()
	profile := &subs.Profile{Subs: map[string][]string{"X": {"A"}}}

	plan, err := eng.PlanEdit("X", 1, profile, false, 2)
	require.NoError(t, err)

	edited, err := eng.ApplyEdit("X", plan)
	require.NoError(t, err)
	assert.Equal(t, "A", edited)

	_, root := eng.Checksum(edited)
	assert.Equal(t, 1, root)
}
