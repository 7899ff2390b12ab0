package mac

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ModeSet is an ordered collection of same-length mode-shape vectors, the
// columns of an L×N matrix: L entries per shape, N shapes. The engine treats
// a ModeSet as read-only; constructors copy their input, so the caller may
// reuse the source data freely.
//
// Entries are not checked for NaN or Inf. Non-finite values propagate through
// the computation according to IEEE 754 arithmetic.
type ModeSet struct {
	length int // entries per mode shape (L)
	count  int // number of mode shapes (N)

	// Column-major storage: mode j occupies data[j*length : (j+1)*length].
	data []float64
}

// NewModeSet builds a ModeSet from column-major flat data: mode j occupies
// data[j*length : (j+1)*length]. length and count must be >= 1 and
// len(data) must equal length*count.
func NewModeSet(length, count int, data []float64) (*ModeSet, error) {
	if length < 1 {
		return nil, fmt.Errorf("mac: mode shape length must be >= 1, got %d", length)
	}
	if count < 1 {
		return nil, fmt.Errorf("mac: mode count must be >= 1, got %d", count)
	}
	if len(data) != length*count {
		return nil, fmt.Errorf("mac: data length %d does not match length*count = %d", len(data), length*count)
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &ModeSet{length: length, count: count, data: d}, nil
}

// ModeSetFromColumns builds a ModeSet from one slice per mode shape.
// All columns must have the same non-zero length.
func ModeSetFromColumns(cols [][]float64) (*ModeSet, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("mac: mode count must be >= 1, got 0")
	}
	length := len(cols[0])
	if length < 1 {
		return nil, fmt.Errorf("mac: mode shape length must be >= 1, got 0")
	}
	data := make([]float64, length*len(cols))
	for j, c := range cols {
		if len(c) != length {
			return nil, fmt.Errorf("mac: column %d has length %d, want %d: %w", j, len(c), length, ErrShapeMismatch)
		}
		copy(data[j*length:], c)
	}
	return &ModeSet{length: length, count: len(cols), data: data}, nil
}

// ModeSetFromDense builds a ModeSet from a gonum dense matrix, taking each
// matrix column as one mode shape.
func ModeSetFromDense(d *mat.Dense) (*ModeSet, error) {
	if d == nil {
		return nil, fmt.Errorf("mac: nil matrix")
	}
	r, c := d.Dims()
	if r < 1 || c < 1 {
		return nil, fmt.Errorf("mac: matrix must be at least 1x1, got %dx%d", r, c)
	}
	data := make([]float64, r*c)
	for j := 0; j < c; j++ {
		mat.Col(data[j*r:(j+1)*r], j, d)
	}
	return &ModeSet{length: r, count: c, data: data}, nil
}

// Len returns the number of entries in each mode shape (the row count L).
func (s *ModeSet) Len() int { return s.length }

// Count returns the number of mode shapes (the column count N).
func (s *ModeSet) Count() int { return s.count }

// Mode returns mode shape j as a view into the set's storage.
// The returned slice must not be modified. Panics if j is out of range.
func (s *ModeSet) Mode(j int) []float64 {
	if j < 0 || j >= s.count {
		panic(fmt.Sprintf("mac: mode index %d out of range [0,%d)", j, s.count))
	}
	return s.data[j*s.length : (j+1)*s.length]
}

// Dense exports the set as a fresh L×N gonum dense matrix with one mode
// shape per column.
func (s *ModeSet) Dense() *mat.Dense {
	d := mat.NewDense(s.length, s.count, nil)
	for j := 0; j < s.count; j++ {
		d.SetCol(j, s.data[j*s.length:(j+1)*s.length])
	}
	return d
}
