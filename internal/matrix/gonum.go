package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum is a second Matrix backend, storing elements in a
// gonum.org/v1/gonum/mat.Dense and solving via its LU-based Solve. It
// satisfies the same capability interface as Dense, demonstrating that the
// simplex engine's use of Matrix never assumes row-major slice storage:
// any backend that can answer At/Set/Row/SolveInPlace will do.
type Gonum struct {
	m *mat.Dense
}

// NewGonum allocates a zero-initialised rows×cols matrix backed by gonum.
func NewGonum(rows, cols int) *Gonum {
	return &Gonum{m: mat.NewDense(rows, cols, nil)}
}

func (g *Gonum) Rows() int { return g.m.RawMatrix().Rows }
func (g *Gonum) Cols() int { return g.m.RawMatrix().Cols }

func (g *Gonum) At(r, c int) float64 { return g.m.At(r, c) }

func (g *Gonum) Set(r, c int, v float64) { g.m.Set(r, c, v) }

func (g *Gonum) Row(r int) []float64 {
	cols := g.Cols()
	out := make([]float64, cols)
	for c := 0; c < cols; c++ {
		out[c] = g.m.At(r, c)
	}
	return out
}

// SolveInPlace solves A x = rhs using gonum's LU-backed mat.Dense.Solve,
// overwriting rhs with x. A must be square.
func (g *Gonum) SolveInPlace(rhs []float64) error {
	n := g.Rows()
	if len(rhs) != n {
		return fmt.Errorf("%w: have %d, want %d", ErrDimensionMismatch, len(rhs), n)
	}

	b := mat.NewDense(n, 1, append([]float64(nil), rhs...))
	var x mat.Dense
	if err := x.Solve(g.m, b); err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}
	for i := 0; i < n; i++ {
		rhs[i] = x.At(i, 0)
	}
	return nil
}
