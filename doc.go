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

/*
Package cnvx is a small library for modelling and solving linear
programming problems.

As an example of the API, the model of the following problem:

	Maximize:
	  z = 3 x + 2 y
	Subject to:
	  x + y = 4
	  2x + 3y = 9

can be expressed with cnvx like this:

	model := cnvx.NewModel()
	x := model.AddVar().Finish()
	y := model.AddVar().Finish()

	model.SetObjective(cnvx.Maximize(cnvx.Term(x, 3).Add(cnvx.Term(y, 2))).Name("z"))
	model.AddConstraint(cnvx.Term(x, 1).AddTerm(y, 1).Eq(4))
	model.AddConstraint(cnvx.Term(x, 2).AddTerm(y, 3).Eq(9))

	solution, err := cnvx.Solve(model)
	if err != nil {
		// handle error
	}
	fmt.Println(solution.Status, solution.ObjectiveValue, solution.Value(x))
*/
package cnvx
