/*
Copyright © 2026 The CNVX Authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package cnvx

import (
	"errors"
	"fmt"

	"github.com/cnvxlabs/cnvx/internal/matrix"
	"github.com/cnvxlabs/cnvx/internal/simplex"
)

// Solver is implemented by anything that can turn a Model into a
// Solution. SimplexSolver is the only implementation this package
// provides; the interface exists so a future algorithm (interior
// point, a MIP branch-and-bound wrapper, ...) can be swapped in
// without changing the Solution contract.
type Solver interface {
	Solve(model *Model, opts ...SolveOption) (*Solution, error)
}

// SimplexSolver solves an LP with the two-phase revised simplex
// method. It holds no state between calls.
type SimplexSolver struct {
	// Backend selects the matrix.Matrix implementation the tableau is
	// built on. The zero value, DenseBackend, means matrix.Dense.
	Backend BackendKind
}

// BackendKind names a matrix.Matrix backend for the simplex tableau.
type BackendKind int

const (
	// DenseBackend stores the tableau in internal/matrix's own
	// row-major matrix.Dense.
	DenseBackend BackendKind = iota
	// GonumBackend stores the tableau in a matrix.Gonum, backed by
	// gonum.org/v1/gonum/mat. The basis solves use matrix.Dense with
	// either backend.
	GonumBackend
)

func (b BackendKind) newMatrix() simplex.NewBackend {
	switch b {
	case GonumBackend:
		return func(rows, cols int) matrix.Matrix { return matrix.NewGonum(rows, cols) }
	default:
		return simplex.DenseBackend
	}
}

// Solve builds a Model's LP tableau and runs the two-phase simplex
// method over it, dispatching through a zero-value SimplexSolver.
// Solve is the entry point most callers use; construct
// a SimplexSolver directly to choose a non-default matrix backend.
func Solve(model *Model, opts ...SolveOption) (*Solution, error) {
	return (&SimplexSolver{}).Solve(model, opts...)
}

// Solve implements Solver.
func (s *SimplexSolver) Solve(model *Model, opts ...SolveOption) (*Solution, error) {
	if err := validate(model); err != nil {
		return nil, err
	}

	cfg := newSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	problem := toProblem(model)

	cfg.logger.Print(fmt.Sprintf("cnvx: solving %d-variable, %d-constraint model (tolerance=%g, max_iterations=%d)",
		len(model.Vars), len(model.Constraints), cfg.tolerance, cfg.maxIterations))

	result, err := simplex.Solve(problem, cfg.maxIterations, cfg.tolerance, s.Backend.newMatrix(), cfg.logger)
	if err != nil {
		return nil, translateSolveErr(err)
	}

	cfg.logger.Print(fmt.Sprintf("cnvx: finished after %d iterations, status=%s", result.Iterations, translateStatus(result.Status)))

	objective := result.ObjectiveValue
	if result.Status == simplex.Optimal {
		objective += model.Objective.Expr.Constant
	}

	return &Solution{
		Status:         translateStatus(result.Status),
		Values:         result.Values,
		ObjectiveValue: objective,
		Iterations:     result.Iterations,
	}, nil
}

func toProblem(model *Model) simplex.Problem {
	p := simplex.Problem{
		NumVars:  len(model.Vars),
		Maximize: model.Objective.Sense == SenseMaximize,
	}

	for _, t := range model.Objective.Expr.Terms {
		p.Objective = append(p.Objective, simplex.Term{Var: int(t.Var), Coeff: t.Coeff})
	}

	for _, c := range model.Constraints {
		sc := simplex.Constraint{RHS: c.RHS - c.Expr.Constant, Cmp: translateCmp(c.Cmp)}
		for _, t := range c.Expr.Terms {
			sc.Terms = append(sc.Terms, simplex.Term{Var: int(t.Var), Coeff: t.Coeff})
		}
		p.Constraints = append(p.Constraints, sc)
	}

	return p
}

func translateCmp(c Cmp) simplex.Cmp {
	switch c {
	case Leq:
		return simplex.Leq
	case Geq:
		return simplex.Geq
	default:
		return simplex.Eq
	}
}

func translateStatus(s simplex.Status) SolveStatus {
	switch s {
	case simplex.Optimal:
		return Optimal
	case simplex.Infeasible:
		return Infeasible
	case simplex.Unbounded:
		return Unbounded
	default:
		return NotSolved
	}
}

func translateSolveErr(err error) error {
	var invalid *simplex.InvalidModelError
	if errors.As(err, &invalid) {
		return &InvalidModelError{Reason: invalid.Reason}
	}
	var iterLimit *simplex.IterationLimitError
	if errors.As(err, &iterLimit) {
		return &IterationLimitError{Limit: iterLimit.Limit}
	}
	return &NumericalFailureError{Reason: "simplex engine failed", Err: err}
}
