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

// VarId is the opaque, non-negative index identifying a decision
// variable within a single Model. It is never reused: variables are
// appended monotonically and deletion is unsupported.
type VarId int

// Leq creates a "self <= rhs" constraint.
func (v VarId) Leq(rhs float64) Constraint {
	return LinExpr{}.AddTerm(v, 1).Leq(rhs)
}

// Geq creates a "self >= rhs" constraint.
func (v VarId) Geq(rhs float64) Constraint {
	return LinExpr{}.AddTerm(v, 1).Geq(rhs)
}

// Eq creates a "self == rhs" constraint.
func (v VarId) Eq(rhs float64) Constraint {
	return LinExpr{}.AddTerm(v, 1).Eq(rhs)
}

// Var is a decision variable in a Model.
//
// Bounds and the integer flag are accepted by the modelling layer but
// are not enforced by the two-phase simplex engine: it treats every
// variable as continuous and non-negative, per the core's documented
// scope.
type Var struct {
	ID VarId

	// LB and UB are the variable's bounds. A nil LB defaults to 0 (the
	// engine's implicit non-negativity), a nil UB means unbounded above.
	LB *float64
	UB *float64

	// IsInteger marks the variable as integer or binary. Accepted, not
	// enforced: the engine always returns continuous values.
	IsInteger bool
}

// VarBuilder configures a Var just added to a Model via a fluent API,
// mirroring the way Constraint and Objective are built.
type VarBuilder struct {
	model *Model
	id    VarId
}

// Bounds sets the variable's lower and upper bound.
func (b *VarBuilder) Bounds(lb, ub float64) *VarBuilder {
	v := &b.model.Vars[b.id]
	v.LB = &lb
	v.UB = &ub
	return b
}

// Integer marks the variable as integer-valued.
func (b *VarBuilder) Integer() *VarBuilder {
	b.model.Vars[b.id].IsInteger = true
	return b
}

// Binary marks the variable as binary: integer with bounds [0, 1].
func (b *VarBuilder) Binary() *VarBuilder {
	b.Integer()
	return b.Bounds(0, 1)
}

// Finish returns the VarId for the variable under construction.
func (b *VarBuilder) Finish() VarId {
	return b.id
}
