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
	"strings"
)

// LinTerm is a single coeff*var term in a LinExpr.
type LinTerm struct {
	Var   VarId
	Coeff float64
}

// LinExpr is a linear expression a1*x1 + a2*x2 + ... + constant.
//
// Duplicate VarIds across Terms are allowed and are semantically
// summed; no simplification happens at construction time, the engine
// is expected to tolerate accumulated duplicates.
type LinExpr struct {
	Terms    []LinTerm
	Constant float64
}

// Term creates a new linear expression from a single variable and
// coefficient: coeff*v.
func Term(v VarId, coeff float64) LinExpr {
	return LinExpr{Terms: []LinTerm{{Var: v, Coeff: coeff}}}
}

// Sum creates a linear expression consisting of v alone (coefficient 1).
func Sum(v VarId) LinExpr {
	return Term(v, 1)
}

// Constant creates a constant-only linear expression.
func Constant(c float64) LinExpr {
	return LinExpr{Constant: c}
}

// Add returns a new expression that is the sum of e and rhs.
func (e LinExpr) Add(rhs LinExpr) LinExpr {
	terms := make([]LinTerm, 0, len(e.Terms)+len(rhs.Terms))
	terms = append(terms, e.Terms...)
	terms = append(terms, rhs.Terms...)
	return LinExpr{Terms: terms, Constant: e.Constant + rhs.Constant}
}

// AddTerm returns e with an additional coeff*v term appended.
func (e LinExpr) AddTerm(v VarId, coeff float64) LinExpr {
	terms := make([]LinTerm, len(e.Terms), len(e.Terms)+1)
	copy(terms, e.Terms)
	terms = append(terms, LinTerm{Var: v, Coeff: coeff})
	return LinExpr{Terms: terms, Constant: e.Constant}
}

// AddVar returns e with v added with coefficient 1, the Go equivalent
// of the algebra's "expr + var" form.
func (e LinExpr) AddVar(v VarId) LinExpr {
	return e.AddTerm(v, 1)
}

// Plus returns e with a constant added: e + c.
func (e LinExpr) Plus(c float64) LinExpr {
	return LinExpr{Terms: e.Terms, Constant: e.Constant + c}
}

// Scale creates a linear expression representing coeff*v, the
// scalar-on-the-left form (coeff * v, as opposed to Term(v, coeff)).
func Scale(coeff float64, v VarId) LinExpr {
	return Term(v, coeff)
}

// Leq creates a "e <= rhs" constraint.
func (e LinExpr) Leq(rhs float64) Constraint {
	return Constraint{Expr: e, RHS: rhs, Cmp: Leq}
}

// Geq creates a "e >= rhs" constraint.
func (e LinExpr) Geq(rhs float64) Constraint {
	return Constraint{Expr: e, RHS: rhs, Cmp: Geq}
}

// Eq creates a "e == rhs" constraint.
func (e LinExpr) Eq(rhs float64) Constraint {
	return Constraint{Expr: e, RHS: rhs, Cmp: Eq}
}

func (e LinExpr) String() string {
	parts := make([]string, 0, len(e.Terms)+1)
	for _, t := range e.Terms {
		parts = append(parts, fmt.Sprintf("%g*x%d", t.Coeff, t.Var))
	}
	if e.Constant != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%g", e.Constant))
	}
	return strings.Join(parts, " + ")
}
