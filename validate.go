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
	"fmt"
	"math"
)

// validate checks structural preconditions Solve relies on before
// ever constructing a tableau: every referenced VarId must exist, the
// model must have an objective, and every coefficient must be finite.
func validate(model *Model) error {
	if model.Objective == nil {
		return ErrNoObjective
	}

	n := len(model.Vars)

	if err := validateExpr(model.Objective.Expr, n); err != nil {
		return &InvalidModelError{Reason: fmt.Sprintf("objective: %v", err)}
	}

	for i, c := range model.Constraints {
		if err := validateExpr(c.Expr, n); err != nil {
			return &InvalidModelError{Reason: fmt.Sprintf("constraint %d: %v", i, err)}
		}
		if !isFinite(c.RHS) {
			return &InvalidModelError{Reason: fmt.Sprintf("constraint %d: non-finite right-hand side", i)}
		}
	}

	return nil
}

func validateExpr(e LinExpr, numVars int) error {
	if !isFinite(e.Constant) {
		return fmt.Errorf("non-finite constant")
	}
	for _, t := range e.Terms {
		if int(t.Var) < 0 || int(t.Var) >= numVars {
			return fmt.Errorf("references unknown variable %d", t.Var)
		}
		if !isFinite(t.Coeff) {
			return fmt.Errorf("non-finite coefficient for variable %d", t.Var)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
