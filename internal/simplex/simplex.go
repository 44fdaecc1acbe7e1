// Package simplex implements a two-phase revised simplex method over
// the matrix.Matrix capability interface.
//
// The tableau (the constraint matrix A) may be backed by any
// matrix.Matrix implementation; the basis matrix B used for the
// repeated linear solves inside the main iteration loop is always a
// matrix.Dense, built once per phase and then updated in place, one
// column per pivot.
package simplex

import (
	"errors"
	"fmt"

	"github.com/cnvxlabs/cnvx/internal/matrix"
)

// zeroTol is the magnitude below which a computed value is snapped to
// exactly zero, matching the reference engine's numerical cleanup.
const zeroTol = 1e-12

// Logger is the minimal logging interface the engine writes phase and
// iteration traces to. It matches cnvx.Logger's method set exactly so
// callers can pass one through without an adapter.
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// Status mirrors the outward-facing solve status without importing
// the root package, avoiding an import cycle (the root package
// imports this one).
type Status int

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
)

// Term is one coeff*variable pair of a linear expression, mirroring
// cnvx.LinTerm without depending on the root package's type.
type Term struct {
	Var   int
	Coeff float64
}

// Cmp mirrors cnvx.Cmp.
type Cmp int

const (
	Leq Cmp = iota
	Geq
	Eq
)

// Constraint is one row of the model to be solved.
type Constraint struct {
	Terms []Term
	RHS   float64
	Cmp   Cmp
}

// Problem is the engine-facing view of a cnvx.Model: plain slices of
// terms and constraints, already validated by the caller.
type Problem struct {
	NumVars     int
	Objective   []Term
	Maximize    bool
	Constraints []Constraint
}

// Result is the engine's outcome: a status plus, when Optimal, a
// values vector indexed by original variable index and the objective
// value evaluated at it.
type Result struct {
	Status         Status
	Values         []float64
	ObjectiveValue float64
	Iterations     int
}

// NewBackend constructs the matrix.Matrix used for the problem's
// tableau. Exposed so callers (the façade) can choose an alternate
// backend, e.g. matrix.NewGonum, for the same Problem.
type NewBackend func(rows, cols int) matrix.Matrix

// DenseBackend builds the tableau on matrix.Dense, the default.
func DenseBackend(rows, cols int) matrix.Matrix {
	return matrix.NewDense(rows, cols)
}

// Solve runs the two-phase simplex method over p, building the
// tableau with newBackend (DenseBackend if nil). logger receives one
// line per phase transition and per iteration; pass nil to discard
// these traces.
func Solve(p Problem, maxIterations int, tolerance float64, newBackend NewBackend, logger Logger) (Result, error) {
	if newBackend == nil {
		newBackend = DenseBackend
	}
	if logger == nil {
		logger = noopLogger{}
	}
	s := newState(p, newBackend, logger)
	values, obj, err := s.solveLP(maxIterations, tolerance)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Status:         s.status,
		Values:         values[:p.NumVars],
		ObjectiveValue: obj,
		Iterations:     s.iteration,
	}, nil
}

// state is the mutable working set for one solve, directly mirroring
// the reference engine's SimplexState.
type state struct {
	iteration int

	basis    []int
	nonBasis []int
	xB       []float64

	a matrix.Matrix
	b []float64
	c []float64

	objective float64
	status    Status

	minimise bool

	newBackend NewBackend
	logger     Logger
}

func newState(p Problem, newBackend NewBackend, logger Logger) *state {
	nVars := p.NumVars
	nCons := len(p.Constraints)

	nTotal := nVars
	for _, cons := range p.Constraints {
		if cons.Cmp == Leq || cons.Cmp == Geq {
			nTotal++
		}
	}

	a := newBackend(nCons, nTotal)
	b := make([]float64, nCons)
	c := make([]float64, nTotal)

	for _, term := range p.Objective {
		if p.Maximize {
			c[term.Var] += term.Coeff
		} else {
			c[term.Var] -= term.Coeff
		}
	}

	extraIdx := nVars
	for i, cons := range p.Constraints {
		b[i] = cons.RHS
		for _, term := range cons.Terms {
			a.Set(i, term.Var, a.At(i, term.Var)+term.Coeff)
		}
		switch cons.Cmp {
		case Leq:
			a.Set(i, extraIdx, 1.0)
			extraIdx++
		case Geq:
			a.Set(i, extraIdx, -1.0)
			extraIdx++
		case Eq:
		}
	}

	nonBasis := make([]int, nVars)
	for i := range nonBasis {
		nonBasis[i] = i
	}

	return &state{
		basis:      nil,
		nonBasis:   nonBasis,
		xB:         make([]float64, nCons),
		a:          a,
		b:          b,
		c:          c,
		status:     NotSolved,
		minimise:   !p.Maximize,
		newBackend: newBackend,
		logger:     logger,
	}
}

func (s *state) solveLP(maxIter int, tol float64) ([]float64, float64, error) {
	s.initBasis()
	origN := s.a.Cols()

	s.logger.Print("simplex: attempting direct phase 2 against slack basis")
	ok, err := s.tryPhase2(maxIter, tol)
	if err != nil {
		return nil, 0, err
	}
	if ok {
		s.logger.Print(fmt.Sprintf("simplex: solved in phase 2 directly, status=%v", s.status))
		vals, obj := s.extractSolution(origN)
		return vals, obj, nil
	}

	s.logger.Print("simplex: entering phase 1")
	if err := s.phase1(origN, maxIter, tol); err != nil {
		return nil, 0, err
	}
	if s.status == Infeasible {
		s.logger.Print("simplex: phase 1 found the model infeasible")
		return make([]float64, origN), 0, nil
	}
	s.logger.Print("simplex: phase 1 complete, entering phase 2")
	if err := s.phase2(maxIter, tol); err != nil {
		return nil, 0, err
	}
	s.logger.Print(fmt.Sprintf("simplex: phase 2 complete, status=%v", s.status))

	vals, obj := s.extractSolution(origN)
	return vals, obj, nil
}

// tryPhase2 attempts to run phase 2 directly against the starting
// basis found by initBasis, skipping phase 1 entirely when that basis
// is already feasible (all x_B >= -tol).
func (s *state) tryPhase2(maxIter int, tol float64) (bool, error) {
	// With fewer columns than rows, initBasis's fallback basis names
	// columns that do not exist; phase 1 must run instead.
	if s.a.Rows() > s.a.Cols() {
		return false, nil
	}
	bmat := s.buildBmat()
	xb, err := s.computeBasicSolution(bmat)
	if err != nil {
		return false, nil
	}
	for _, v := range xb {
		if v < -tol {
			return false, nil
		}
	}

	s.xB = xb
	if err := s.removeArtificialFromBasis(bmat, s.a.Cols()); err != nil {
		return false, &InvalidModelError{Reason: err.Error()}
	}
	if err := s.runSimplex(bmat, maxIter, tol); err != nil {
		return false, err
	}
	return true, nil
}

func (s *state) phase1(origN, maxIter int, tol float64) error {
	origA, origC, bmat := s.setupPhase1(origN)

	if err := s.runSimplex(bmat, maxIter, tol); err != nil {
		return err
	}

	var sumArt float64
	for i, v := range s.basis {
		sumArt += s.c[v] * s.xB[i]
	}
	sumArt = -sumArt

	if sumArt > tol {
		s.status = Infeasible
		return nil
	}

	if err := s.removeArtificialFromBasis(bmat, origN); err != nil {
		return &InvalidModelError{Reason: err.Error()}
	}

	s.a = origA
	s.c = origC
	return nil
}

func (s *state) phase2(maxIter int, tol float64) error {
	bmat := s.buildBmat()
	return s.runSimplex(bmat, maxIter, tol)
}

// initBasis looks for an implicit identity sub-matrix among A's
// columns (columns whose only nonzero entry is a +1, such as the slack
// columns added for Leq rows) and uses it as the starting basis. If no
// such identity exists for every row (e.g. the model is all
// equalities), it falls back to the first m columns, which phase 1
// will then need to fix up via artificials.
func (s *state) initBasis() {
	m := s.a.Rows()
	n := s.a.Cols()

	basis := make([]int, m)
	for i := range basis {
		basis[i] = -1
	}
	used := make([]bool, n)

	for j := 0; j < n; j++ {
		oneRow := -1
		ok := true
		for i := 0; i < m; i++ {
			v := s.a.At(i, j)
			av := v
			if av < 0 {
				av = -av
			}
			if av > 1e-12 {
				if absF(v-1.0) < 1e-12 {
					if oneRow != -1 {
						ok = false
						break
					}
					oneRow = i
				} else {
					ok = false
					break
				}
			}
		}
		if ok && oneRow != -1 && basis[oneRow] == -1 {
			basis[oneRow] = j
			used[j] = true
		}
	}

	complete := true
	for _, b := range basis {
		if b == -1 {
			complete = false
			break
		}
	}

	if complete {
		s.basis = basis
		nonBasis := make([]int, 0, n-m)
		for j := 0; j < n; j++ {
			if !used[j] {
				nonBasis = append(nonBasis, j)
			}
		}
		s.nonBasis = nonBasis
	} else {
		s.basis = make([]int, m)
		for i := 0; i < m; i++ {
			s.basis[i] = i
		}
		s.nonBasis = nil
		for j := m; j < n; j++ {
			s.nonBasis = append(s.nonBasis, j)
		}
	}
}

func (s *state) buildBmat() *matrix.Dense {
	m := s.a.Rows()
	bmat := matrix.NewDense(m, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			bmat.Set(i, j, s.a.At(i, s.basis[j]))
		}
	}
	return bmat
}

func (s *state) computeBasicSolution(bmat *matrix.Dense) ([]float64, error) {
	xb := make([]float64, len(s.b))
	copy(xb, s.b)
	if err := bmat.SolveInPlace(xb); err != nil {
		return nil, fmt.Errorf("gauss failed: %w", err)
	}
	return xb, nil
}

func (s *state) runSimplex(bmat *matrix.Dense, maxIter int, tol float64) error {
	for iter := s.iteration; iter < maxIter; iter++ {
		s.iteration = iter

		pi, err := s.computeDuals(bmat)
		if err != nil {
			return err
		}

		nbPos, entering, found := s.chooseEntering(pi, tol)
		if !found {
			s.status = Optimal
			return nil
		}

		d, err := s.computeDirection(bmat, entering)
		if err != nil {
			return err
		}

		leaveRow, theta, found := s.chooseLeaving(d, tol)
		if !found {
			s.status = Unbounded
			return nil
		}

		leaving := s.basis[leaveRow]
		s.updatePrimal(d, leaveRow, theta)
		s.pivot(bmat, nbPos, leaveRow, entering)
		s.updateObjective()
		s.logger.Print(fmt.Sprintf("simplex: iteration %d: entering=%d leaving=%d objective=%g", iter, entering, leaving, s.objective))
	}

	return &IterationLimitError{Limit: maxIter}
}

func (s *state) computeDuals(bmat *matrix.Dense) ([]float64, error) {
	m := bmat.Rows()
	pi := make([]float64, m)
	for i := range pi {
		pi[i] = s.c[s.basis[i]]
	}

	bt := matrix.NewDense(m, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			bt.Set(i, j, bmat.At(j, i))
		}
	}

	if err := bt.SolveInPlace(pi); err != nil {
		return nil, fmt.Errorf("dual solve failed: %w", err)
	}
	return pi, nil
}

func (s *state) chooseEntering(pi []float64, tol float64) (pos int, variable int, found bool) {
	bestRC := tol
	bestPos, bestVar := -1, -1
	for pos, j := range s.nonBasis {
		var dot float64
		for i := range pi {
			dot += pi[i] * s.a.At(i, j)
		}
		rc := s.c[j] - dot
		if rc > bestRC {
			bestRC = rc
			bestPos = pos
			bestVar = j
		}
	}
	if bestVar == -1 {
		return 0, 0, false
	}
	return bestPos, bestVar, true
}

func (s *state) computeDirection(bmat *matrix.Dense, entering int) ([]float64, error) {
	d := make([]float64, bmat.Rows())
	for i := range d {
		d[i] = s.a.At(i, entering)
	}
	if err := bmat.SolveInPlace(d); err != nil {
		return nil, fmt.Errorf("direction solve failed: %w", err)
	}
	return d, nil
}

func (s *state) chooseLeaving(d []float64, tol float64) (row int, theta float64, found bool) {
	bestRow := -1
	bestTheta := 0.0
	for i, di := range d {
		if di > tol {
			t := s.xB[i] / di
			if bestRow == -1 || t < bestTheta {
				bestRow = i
				bestTheta = t
			}
		}
	}
	if bestRow == -1 {
		return 0, 0, false
	}
	return bestRow, bestTheta, true
}

func (s *state) updatePrimal(d []float64, leave int, theta float64) {
	for i := range s.xB {
		s.xB[i] -= theta * d[i]
		if absF(s.xB[i]) < zeroTol {
			s.xB[i] = 0
		}
	}
	s.xB[leave] = theta
}

func (s *state) pivot(bmat *matrix.Dense, enterPos, leaveRow, entering int) {
	leaving := s.basis[leaveRow]
	s.basis[leaveRow] = entering
	s.nonBasis[enterPos] = leaving

	for i := 0; i < bmat.Rows(); i++ {
		bmat.Set(i, leaveRow, s.a.At(i, entering))
	}
}

func (s *state) updateObjective() {
	var obj float64
	for i, v := range s.basis {
		obj += s.c[v] * s.xB[i]
	}
	s.objective = obj
}

// setupPhase1 augments the tableau with one artificial variable per
// row (flipping rows with a negative right-hand side so every
// artificial can start at a non-negative value) and returns the
// original A and c so phase1 can restore them afterwards.
func (s *state) setupPhase1(origN int) (matrix.Matrix, []float64, *matrix.Dense) {
	m := s.a.Rows()
	n := s.a.Cols()

	aAug := s.newBackend(m, n+m)
	bAug := make([]float64, m)
	copy(bAug, s.b)

	for i := 0; i < m; i++ {
		if bAug[i] < 0 {
			bAug[i] = -bAug[i]
			for j := 0; j < n; j++ {
				aAug.Set(i, j, -s.a.At(i, j))
			}
		} else {
			for j := 0; j < n; j++ {
				aAug.Set(i, j, s.a.At(i, j))
			}
		}
		for j := 0; j < m; j++ {
			if i == j {
				aAug.Set(i, n+j, 1.0)
			}
		}
	}

	cAug := make([]float64, n+m)
	for j := 0; j < m; j++ {
		cAug[n+j] = -1.0
	}

	origA := s.a
	origC := s.c

	s.a = aAug
	s.c = cAug
	s.basis = make([]int, m)
	for i := 0; i < m; i++ {
		s.basis[i] = origN + i
	}
	s.nonBasis = make([]int, origN)
	for i := 0; i < origN; i++ {
		s.nonBasis[i] = i
	}
	s.xB = bAug

	bmat := matrix.NewDense(m, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			bmat.Set(i, j, s.a.At(i, s.basis[j]))
		}
	}

	return origA, origC, bmat
}

// removeArtificialFromBasis pivots any artificial variable still in
// the basis (at zero value, since feasibility has already been
// established) out in favour of an original-tableau column with a
// nonzero entry in its row. When no such column exists and the
// artificial's value is zero, the artificial stays in the basis; when
// its value is nonzero, an error is returned.
func (s *state) removeArtificialFromBasis(bmat *matrix.Dense, origN int) error {
	m := bmat.Rows()
	for row := 0; row < m; row++ {
		if s.basis[row] >= origN {
			nbPos, j, found := -1, -1, false
			for pos, col := range s.nonBasis {
				if col < origN && absF(s.a.At(row, col)) > 1e-12 {
					nbPos, j, found = pos, col, true
					break
				}
			}

			if found {
				leaving := s.basis[row]
				s.basis[row] = j
				s.nonBasis[nbPos] = leaving
				for i := 0; i < m; i++ {
					bmat.Set(i, row, s.a.At(i, j))
				}
			} else if absF(s.xB[row]) > 1e-12 {
				return errors.New("artificial variable left in basis with non-zero value")
			}
		}
	}
	return nil
}

func (s *state) extractSolution(origN int) ([]float64, float64) {
	m := s.a.Rows()
	sol := make([]float64, origN)

	for i := 0; i < m; i++ {
		if s.basis[i] < origN {
			sol[s.basis[i]] = s.xB[i]
		}
	}

	var obj float64
	for i, v := range s.basis {
		if v < origN {
			obj += s.c[v] * s.xB[i]
		}
	}

	if s.minimise {
		obj = -obj
	}

	return sol, obj
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// InvalidModelError reports a structural problem discovered only
// while pivoting (e.g. an artificial variable that cannot be driven
// out of the basis), as opposed to a problem caught by up-front
// validation.
type InvalidModelError struct {
	Reason string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("simplex: invalid model: %s", e.Reason)
}

// IterationLimitError is returned when the main loop exhausts its
// iteration budget without reaching Optimal or Unbounded.
type IterationLimitError struct {
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("simplex: exceeded iteration limit (%d)", e.Limit)
}
