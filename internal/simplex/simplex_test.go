package simplex

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cnvxlabs/cnvx/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gonumBackend(rows, cols int) matrix.Matrix {
	return matrix.NewGonum(rows, cols)
}

// maximize 3x + 2y s.t. x + y = 4, 2x + 3y = 9 -> x=3, y=1, obj=11
func TestSolveEqualityOnly(t *testing.T) {
	for name, backend := range map[string]NewBackend{"dense": DenseBackend, "gonum": gonumBackend} {
		t.Run(name, func(t *testing.T) {
			p := Problem{
				NumVars:  2,
				Maximize: true,
				Objective: []Term{
					{Var: 0, Coeff: 3},
					{Var: 1, Coeff: 2},
				},
				Constraints: []Constraint{
					{Terms: []Term{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}}, RHS: 4, Cmp: Eq},
					{Terms: []Term{{Var: 0, Coeff: 2}, {Var: 1, Coeff: 3}}, RHS: 9, Cmp: Eq},
				},
			}

			result, err := Solve(p, 1000, 1e-8, backend, nil)
			require.NoError(t, err)
			require.Equal(t, Optimal, result.Status)
			assert.InDelta(t, 3.0, result.Values[0], 1e-6)
			assert.InDelta(t, 1.0, result.Values[1], 1e-6)
			assert.InDelta(t, 11.0, result.ObjectiveValue, 1e-6)
		})
	}
}

// minimize 3x + 2y s.t. 2x+y<=10, x+3y<=12, x,y>=0 -> optimum at origin
func TestSolveMinimizeAtOrigin(t *testing.T) {
	p := Problem{
		NumVars: 2,
		Objective: []Term{
			{Var: 0, Coeff: 3},
			{Var: 1, Coeff: 2},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 2}, {Var: 1, Coeff: 1}}, RHS: 10, Cmp: Leq},
			{Terms: []Term{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 3}}, RHS: 12, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 0.0, result.Values[0], 1e-6)
	assert.InDelta(t, 0.0, result.Values[1], 1e-6)
	assert.InDelta(t, 0.0, result.ObjectiveValue, 1e-6)
}

// maximize 3x1 + 5x2 + 2x3 s.t. x1+x2+x3<=40, 2x1+x2<=60, x2+3x3<=75 -> some finite optimum
func TestSolveThreeVariableFiniteOptimum(t *testing.T) {
	p := threeVariableProblem()

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.Greater(t, result.ObjectiveValue, 0.0)
	for _, v := range result.Values {
		assert.GreaterOrEqual(t, v, -1e-6)
	}
}

// threeVariableProblem is shared with TestSolveExceedsIterationLimit: its
// all-slack starting basis has zero basic objective coefficients, so the
// first iteration's reduced costs equal the raw (all-positive) objective
// coefficients and a pivot is guaranteed before any iteration cap is hit.
func threeVariableProblem() Problem {
	return Problem{
		NumVars:  3,
		Maximize: true,
		Objective: []Term{
			{Var: 0, Coeff: 3},
			{Var: 1, Coeff: 5},
			{Var: 2, Coeff: 2},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}, {Var: 2, Coeff: 1}}, RHS: 40, Cmp: Leq},
			{Terms: []Term{{Var: 0, Coeff: 2}, {Var: 1, Coeff: 1}}, RHS: 60, Cmp: Leq},
			{Terms: []Term{{Var: 1, Coeff: 1}, {Var: 2, Coeff: 3}}, RHS: 75, Cmp: Leq},
		},
	}
}

// x == 1 and x == 2 simultaneously is infeasible.
func TestSolveConflictingEqualitiesInfeasible(t *testing.T) {
	p := Problem{
		NumVars:  1,
		Maximize: true,
		Objective: []Term{
			{Var: 0, Coeff: 1},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 1, Cmp: Eq},
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 2, Cmp: Eq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, result.Status)
}

// maximize x with no upper bound on x is unbounded.
func TestSolveUnbounded(t *testing.T) {
	p := Problem{
		NumVars:  1,
		Maximize: true,
		Objective: []Term{
			{Var: 0, Coeff: 1},
		},
		Constraints: nil,
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Unbounded, result.Status)
}

// a model with constraints but no objective terms still solves; the
// objective value is just zero.
func TestSolveNoObjectiveTerms(t *testing.T) {
	p := Problem{
		NumVars: 1,
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 5, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 0.0, result.ObjectiveValue, 1e-6)
}

// a single variable bounded only from above via a Leq constraint.
func TestSolveSingleVariableBound(t *testing.T) {
	p := Problem{
		NumVars:  1,
		Maximize: true,
		Objective: []Term{
			{Var: 0, Coeff: 1},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 10, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 10.0, result.Values[0], 1e-6)
	assert.InDelta(t, 10.0, result.ObjectiveValue, 1e-6)
}

// a model with no variables and no constraints (only a constant-0
// objective, which here is simply the absence of any objective terms)
// solves immediately to Optimal with objective 0.
func TestSolveEmptyModel(t *testing.T) {
	p := Problem{}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.Empty(t, result.Values)
	assert.Equal(t, 0.0, result.ObjectiveValue)
}

// Representative hand-built stand-ins for the Netlib afiro/adlittle/sc50b
// LP shapes (fetching the real Netlib set requires network access, out of
// scope here); each has an optimum derivable by hand.

// afiro-like: minimize 2x + 3y s.t. x+y>=10, x<=6, y<=8 -> x=6, y=4, obj=24.
func TestSolveAfiroLikeShape(t *testing.T) {
	p := Problem{
		NumVars: 2,
		Objective: []Term{
			{Var: 0, Coeff: 2},
			{Var: 1, Coeff: 3},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}}, RHS: 10, Cmp: Geq},
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 6, Cmp: Leq},
			{Terms: []Term{{Var: 1, Coeff: 1}}, RHS: 8, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 6.0, result.Values[0], 1e-6)
	assert.InDelta(t, 4.0, result.Values[1], 1e-6)
	assert.InDelta(t, 24.0, result.ObjectiveValue, 1e-6)
}

// adlittle-like: maximize 3x + 2y + z s.t. x+y+z<=10, x<=4, y<=4, z<=4 ->
// x=4, y=4, z=2, obj=22 (continuous-knapsack, greedy by coefficient).
func TestSolveAdlittleLikeShape(t *testing.T) {
	p := Problem{
		NumVars:  3,
		Maximize: true,
		Objective: []Term{
			{Var: 0, Coeff: 3},
			{Var: 1, Coeff: 2},
			{Var: 2, Coeff: 1},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}, {Var: 2, Coeff: 1}}, RHS: 10, Cmp: Leq},
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 4, Cmp: Leq},
			{Terms: []Term{{Var: 1, Coeff: 1}}, RHS: 4, Cmp: Leq},
			{Terms: []Term{{Var: 2, Coeff: 1}}, RHS: 4, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 4.0, result.Values[0], 1e-6)
	assert.InDelta(t, 4.0, result.Values[1], 1e-6)
	assert.InDelta(t, 2.0, result.Values[2], 1e-6)
	assert.InDelta(t, 22.0, result.ObjectiveValue, 1e-6)
}

// sc50b-like: minimize 4a+3b+5c+2d s.t. a+b+c+d=20, a<=5, b<=8, c<=10,
// d unbounded above -> all demand routed to the cheapest variable d:
// a=b=c=0, d=20, obj=40.
func TestSolveSc50bLikeShape(t *testing.T) {
	p := Problem{
		NumVars: 4,
		Objective: []Term{
			{Var: 0, Coeff: 4},
			{Var: 1, Coeff: 3},
			{Var: 2, Coeff: 5},
			{Var: 3, Coeff: 2},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}, {Var: 2, Coeff: 1}, {Var: 3, Coeff: 1}}, RHS: 20, Cmp: Eq},
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 5, Cmp: Leq},
			{Terms: []Term{{Var: 1, Coeff: 1}}, RHS: 8, Cmp: Leq},
			{Terms: []Term{{Var: 2, Coeff: 1}}, RHS: 10, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 0.0, result.Values[0], 1e-6)
	assert.InDelta(t, 0.0, result.Values[1], 1e-6)
	assert.InDelta(t, 0.0, result.Values[2], 1e-6)
	assert.InDelta(t, 20.0, result.Values[3], 1e-6)
	assert.InDelta(t, 40.0, result.ObjectiveValue, 1e-6)
}

// duplicate VarIds within a single constraint's Terms are summed rather
// than rejected or overwritten: 2x + 3x <= 10 behaves as 5x <= 10.
func TestSolveDuplicateVarIdSummed(t *testing.T) {
	p := Problem{
		NumVars:  1,
		Maximize: true,
		Objective: []Term{
			{Var: 0, Coeff: 1},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 2}, {Var: 0, Coeff: 3}}, RHS: 10, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 2.0, result.Values[0], 1e-6)
	assert.InDelta(t, 2.0, result.ObjectiveValue, 1e-6)
}

// duplicate VarIds in the objective itself are summed the same way:
// 1x + 1x maximized under x<=2 behaves as 2x, obj=4.
func TestSolveDuplicateVarIdInObjectiveSummed(t *testing.T) {
	p := Problem{
		NumVars:  1,
		Maximize: true,
		Objective: []Term{
			{Var: 0, Coeff: 1},
			{Var: 0, Coeff: 1},
		},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coeff: 1}}, RHS: 2, Cmp: Leq},
		},
	}

	result, err := Solve(p, 1000, 1e-8, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, result.Status)
	assert.InDelta(t, 2.0, result.Values[0], 1e-6)
	assert.InDelta(t, 4.0, result.ObjectiveValue, 1e-6)
}

// a maxIterations of 1 against a model that needs one pivot and a second
// iteration to confirm optimality genuinely exhausts the budget and
// surfaces IterationLimitError, unlike
// TestSolveWithToleranceAndIterationOptions in the root package, which
// only demonstrates that a generous limit is accepted.
func TestSolveExceedsIterationLimit(t *testing.T) {
	p := threeVariableProblem()

	_, err := Solve(p, 1, 1e-8, nil, nil)
	require.Error(t, err)

	var limitErr *IterationLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 1, limitErr.Limit)
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Print(v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprint(v...))
}

// installing a logger yields at least one line per phase transition and
// per iteration, matching the ambient-stack logging contract.
func TestSolveLogsPhaseAndIterationTraces(t *testing.T) {
	logger := &recordingLogger{}
	p := threeVariableProblem()

	_, err := Solve(p, 1000, 1e-8, nil, logger)
	require.NoError(t, err)
	assert.NotEmpty(t, logger.lines)
}

func TestIterationLimitErrorMessage(t *testing.T) {
	err := &IterationLimitError{Limit: 5}
	assert.Contains(t, err.Error(), "5")
}

func TestInvalidModelErrorMessage(t *testing.T) {
	err := &InvalidModelError{Reason: "boom"}
	assert.Contains(t, err.Error(), "boom")
}
