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

import "fmt"

// SolveStatus reports the outcome category of a solve attempt.
type SolveStatus int

const (
	// NotSolved is the zero value: never returned from Solve, only
	// useful as a Solution's status before a solve is attempted.
	NotSolved SolveStatus = iota
	// Optimal means the engine found a provably optimal basic
	// feasible solution.
	Optimal
	// Infeasible means no point satisfies every constraint.
	Infeasible
	// Unbounded means the objective can be improved without limit
	// while remaining feasible.
	Unbounded
)

func (s SolveStatus) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "not solved"
	}
}

// Solution is the result of a successful Solve call: it is only ever
// produced for Optimal, Infeasible or Unbounded outcomes. Failures
// that prevent the engine from reaching any of those three states
// (bad model, numerical breakdown, iteration limit) are reported as an
// error (ErrNoObjective, InvalidModelError, NumericalFailureError or
// IterationLimitError) instead of a Solution.
type Solution struct {
	Status SolveStatus

	// Values holds one entry per variable, indexed by VarId, valid
	// only when Status is Optimal.
	Values []float64

	// ObjectiveValue is the objective function evaluated at Values,
	// valid only when Status is Optimal.
	ObjectiveValue float64

	// Iterations is the number of simplex pivots performed across
	// both phases, reported regardless of outcome.
	Iterations int
}

// Value returns the solution's value for v, or 0 if the solution has
// no entry for it (e.g. the status isn't Optimal).
func (s *Solution) Value(v VarId) float64 {
	if int(v) < 0 || int(v) >= len(s.Values) {
		return 0
	}
	return s.Values[v]
}

func (s *Solution) String() string {
	if s.Status != Optimal {
		return s.Status.String()
	}
	return fmt.Sprintf("optimal: objective=%g values=%v (%d iterations)", s.ObjectiveValue, s.Values, s.Iterations)
}
