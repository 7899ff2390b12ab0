package mac

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is the MAC result: a dense N1×N2 matrix where entry (i, j) is the
// MAC value between mode i of the first set and mode j of the second.
// Every invocation of Compute allocates a fresh Matrix; the caller owns it.
type Matrix struct {
	rows, cols int
	data       []float64 // row-major
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Dims returns the matrix dimensions (modes in set 1, modes in set 2).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the MAC value between mode i of the first set and mode j of the
// second. Panics if the indices are out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("mac: index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of row i. Panics if i is out of range.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("mac: row index %d out of range [0,%d)", i, m.rows))
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Data returns a copy of the matrix entries in row-major order.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Dense exports the matrix as a fresh gonum dense matrix.
func (m *Matrix) Dense() *mat.Dense {
	d := make([]float64, len(m.data))
	copy(d, m.data)
	return mat.NewDense(m.rows, m.cols, d)
}

// Diagonal returns the paired-mode values m[i][i] for i up to
// min(rows, cols). For a square result of comparing two orderings of the
// same physical modes, these are the values of interest.
func (m *Matrix) Diagonal() []float64 {
	n := min(m.rows, m.cols)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.cols+i]
	}
	return out
}

// BestMatches returns, for each mode of the first set, the index of the mode
// in the second set with the highest MAC value. This is the usual pairing
// step when matching experimental modes against numerical ones. An entry is
// -1 when every value in the row is NaN.
func (m *Matrix) BestMatches() []int {
	out := make([]int, m.rows)
	for i := 0; i < m.rows; i++ {
		best := -1
		bestVal := 0.0
		for j := 0; j < m.cols; j++ {
			v := m.data[i*m.cols+j]
			if math.IsNaN(v) {
				continue
			}
			if best < 0 || v > bestVal {
				best, bestVal = j, v
			}
		}
		out[i] = best
	}
	return out
}
