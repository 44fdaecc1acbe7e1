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
)

// ErrNoObjective is returned by Solve when the model has no objective
// set.
var ErrNoObjective = errors.New("cnvx: model has no objective")

// ErrUnsupported is returned by parsers for recognized-but-not-
// implemented input (e.g. the AMPL dialect).
var ErrUnsupported = errors.New("cnvx: unsupported")

// InvalidModelError reports a structural problem with a Model that
// prevents it from being solved at all, e.g. a constraint referencing
// a VarId the model never registered.
type InvalidModelError struct {
	Reason string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("cnvx: invalid model: %s", e.Reason)
}

// NumericalFailureError reports that the simplex engine's internal
// linear solve broke down (e.g. a singular basis matrix), distinct
// from Infeasible/Unbounded
// which are legitimate solve outcomes, not failures.
type NumericalFailureError struct {
	Reason string
	Err    error
}

func (e *NumericalFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cnvx: numerical failure: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("cnvx: numerical failure: %s", e.Reason)
}

func (e *NumericalFailureError) Unwrap() error {
	return e.Err
}

// IterationLimitError is returned when the simplex engine exhausts
// its iteration budget without reaching optimality or a terminal
// status.
type IterationLimitError struct {
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("cnvx: exceeded iteration limit (%d)", e.Limit)
}
