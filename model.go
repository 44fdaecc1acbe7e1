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

// Model is the aggregate root of the modelling layer: a set of
// variables, a set of constraints and at most one objective.
//
// A Model is meant to be built once and handed to Solve; nothing in
// this package prevents mutating it afterwards, but the solver never
// mutates the Model it is given.
type Model struct {
	Vars        []Var
	Constraints []Constraint
	Objective   *Objective
}

// NewModel returns an empty Model ready to have variables and
// constraints added to it.
func NewModel() *Model {
	return &Model{}
}

// AddVar appends a new continuous, non-negative variable to the model
// and returns a builder to further configure it (bounds, integrality).
func (m *Model) AddVar() *VarBuilder {
	id := VarId(len(m.Vars))
	m.Vars = append(m.Vars, Var{ID: id})
	return &VarBuilder{model: m, id: id}
}

// AddConstraint appends c to the model.
func (m *Model) AddConstraint(c Constraint) {
	m.Constraints = append(m.Constraints, c)
}

// SetObjective replaces the model's objective.
func (m *Model) SetObjective(o Objective) {
	m.Objective = &o
}

// NumVars returns the number of variables registered so far.
func (m *Model) NumVars() int {
	return len(m.Vars)
}
