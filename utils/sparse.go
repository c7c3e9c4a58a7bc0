package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// DOK is the assembly-phase sparse matrix: arbitrary insertion order with
// additive accumulation. Compact to CSR via ToCSR before the solve phase.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)              { return m.M.Dims() }
func (m DOK) At(i, j int) float64           { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix                 { return m.M.T() }
func (m DOK) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) Set(i, j int, val float64) {
	m.M.Set(i, j, val)
}

// Add accumulates val into entry (i,j). Entries touched by multiple
// elements sum all contributions.
func (m DOK) Add(i, j int, val float64) {
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

// CSR is the solve-phase sparse matrix: fixed sorted layout for
// cache-friendly matrix-vector products and triangular sweeps.
type CSR struct {
	M *sparse.CSR
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

func (m CSR) NNZ() int { return m.M.NNZ() }

// MulVec computes dst = A*x over the compressed rows.
func (m CSR) MulVec(dst, x []float64) {
	var (
		raw = m.RawMatrix()
	)
	if len(x) != raw.J || len(dst) != raw.I {
		err := fmt.Errorf("dimension mismatch: matrix is %dx%d, len(x) = %d, len(dst) = %d",
			raw.I, raw.J, len(x), len(dst))
		panic(err)
	}
	for i := 0; i < raw.I; i++ {
		var sum float64
		for ind := raw.Indptr[i]; ind < raw.Indptr[i+1]; ind++ {
			sum += raw.Data[ind] * x[raw.Ind[ind]]
		}
		dst[i] = sum
	}
}

// DoRow visits the stored entries of row i in ascending column order.
func (m CSR) DoRow(i int, fn func(j int, v float64)) {
	var (
		raw = m.RawMatrix()
	)
	for ind := raw.Indptr[i]; ind < raw.Indptr[i+1]; ind++ {
		fn(raw.Ind[ind], raw.Data[ind])
	}
}

// Diagonal extracts the main diagonal into a dense slice, zero where no
// entry is stored.
func (m CSR) Diagonal() (d []float64) {
	var (
		raw = m.RawMatrix()
	)
	d = make([]float64, raw.I)
	for i := 0; i < raw.I; i++ {
		for ind := raw.Indptr[i]; ind < raw.Indptr[i+1]; ind++ {
			if raw.Ind[ind] == i {
				d[i] = raw.Data[ind]
				break
			}
		}
	}
	return
}

// IsSymmetric verifies A[i][j] == A[j][i] for all stored entries to within
// tol. Used by tests and construction checks.
func (m DOK) IsSymmetric(tol float64) (sym bool) {
	sym = true
	m.DoNonZero(func(i, j int, v float64) {
		d := v - m.At(j, i)
		if d < -tol || d > tol {
			sym = false
		}
	})
	return
}
