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

// defaultTolerance and defaultMaxIterations are the values Solve passes
// to the simplex engine when no SolveOption overrides them.
const (
	defaultTolerance     = 1e-8
	defaultMaxIterations = 1000
)

// solveConfig collects the settings a SolveOption may adjust.
type solveConfig struct {
	tolerance     float64
	maxIterations int
	logger        Logger
}

func newSolveConfig() *solveConfig {
	return &solveConfig{
		tolerance:     defaultTolerance,
		maxIterations: defaultMaxIterations,
		logger:        noopLogger{},
	}
}

// SolveOption configures a single call to Solve.
type SolveOption func(*solveConfig)

// WithTolerance overrides the numerical tolerance used for feasibility
// and optimality checks.
func WithTolerance(tol float64) SolveOption {
	return func(c *solveConfig) {
		c.tolerance = tol
	}
}

// WithMaxIterations overrides the iteration limit before the solver
// gives up with an IterationLimitError.
func WithMaxIterations(n int) SolveOption {
	return func(c *solveConfig) {
		c.maxIterations = n
	}
}

// WithLogger installs a Logger that receives one line per phase
// transition and per simplex iteration.
func WithLogger(logger Logger) SolveOption {
	return func(c *solveConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
