package lra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSimpleConjunction(t *testing.T) {
	b := NewBuilder()
	x := b.NewVar("x")
	b.AssertHard(Lit(AtomGeq(Var(x), Const(2))))
	b.AssertHard(Lit(AtomLeq(Var(x), Const(5))))

	status, model := b.Solve(context.Background(), time.Second)
	require.Equal(t, Sat, status)
	assert.GreaterOrEqual(t, model[x], 2.0-1e-6)
	assert.LessOrEqual(t, model[x], 5.0+1e-6)
}

func TestSolveUnsatConjunction(t *testing.T) {
	b := NewBuilder()
	x := b.NewVar("x")
	b.AssertHard(Lit(AtomGeq(Var(x), Const(10))))
	b.AssertHard(Lit(AtomLeq(Var(x), Const(5))))

	status, _ := b.Solve(context.Background(), time.Second)
	assert.Equal(t, Unsat, status)
}

func TestSolveDisjunctionPicksFeasibleBranch(t *testing.T) {
	b := NewBuilder()
	x := b.NewVar("x")
	// x <= -10 OR x >= 10, plus x <= 0: only the first branch is feasible.
	b.AssertHard(Lit(AtomLeq(Var(x), Const(-10))), Lit(AtomGeq(Var(x), Const(10))))
	b.AssertHard(Lit(AtomLeq(Var(x), Const(0))))

	status, model := b.Solve(context.Background(), time.Second)
	require.Equal(t, Sat, status)
	assert.LessOrEqual(t, model[x], -10.0+1e-6)
}

func TestAssumptionRetraction(t *testing.T) {
	b := NewBuilder()
	x := b.NewVar("x")
	b.AssertAssumption("bound", Lit(AtomGeq(Var(x), Const(100))))
	b.AssertHard(Lit(AtomLeq(Var(x), Const(5))))

	status, _ := b.Solve(context.Background(), time.Second)
	assert.Equal(t, Unsat, status)

	require.NoError(t, b.RemoveAssumption("bound"))
	status, model := b.Solve(context.Background(), time.Second)
	require.Equal(t, Sat, status)
	assert.LessOrEqual(t, model[x], 5.0+1e-6)
}

func TestRemoveUnknownAssumption(t *testing.T) {
	b := NewBuilder()
	assert.ErrorIs(t, b.RemoveAssumption("missing"), ErrUnknownAssumption)
}

func TestTemporalOrderingSeparatesUndecidedPair(t *testing.T) {
	b := NewBuilder()
	ti := b.NewVar("ti")
	tj := b.NewVar("tj")
	TemporalOrderingUndecided(b, ti, tj, 16)

	status, model := b.Solve(context.Background(), time.Second)
	require.Equal(t, Sat, status)
	diff := model[ti] - model[tj]
	if diff < 0 {
		diff = -diff
	}
	assert.Greater(t, diff, 16.0)
}

func TestConsequentialPresencePinsValue(t *testing.T) {
	b := NewBuilder()
	ti := b.NewVar("ti")
	ConsequentialPresence(b, "obj1", ti, true, 16)

	status, model := b.Solve(context.Background(), time.Second)
	require.Equal(t, Sat, status)
	assert.Greater(t, model[ti], 16.0)
}
