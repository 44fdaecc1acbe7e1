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

// Cmp is the comparison operator relating a LinExpr to its right-hand
// side in a Constraint.
type Cmp int

const (
	Leq Cmp = iota
	Geq
	Eq
)

func (c Cmp) String() string {
	switch c {
	case Leq:
		return "<="
	case Geq:
		return ">="
	case Eq:
		return "=="
	default:
		return fmt.Sprintf("Cmp(%d)", int(c))
	}
}

// Constraint restricts a LinExpr relative to a constant right-hand
// side. Constraints are value types and carry no identity of their
// own; a Model holds them positionally.
type Constraint struct {
	Expr LinExpr
	RHS  float64
	Cmp  Cmp

	// Name is an optional human-readable label shown by String. Empty
	// means unnamed.
	Name string
}

// Named attaches a label to the constraint, mirroring the fluent style
// used by VarBuilder and Objective.
func (c Constraint) Named(name string) Constraint {
	c.Name = name
	return c
}

func (c Constraint) String() string {
	label := c.Name
	if label == "" {
		label = "<unnamed>"
	}
	return fmt.Sprintf("%s: %s %s %g", label, c.Expr, c.Cmp, c.RHS)
}
