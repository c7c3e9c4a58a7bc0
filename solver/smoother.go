package solver

import (
	"fmt"

	"github.com/notargets/gofes/utils"
)

// Preconditioner applies z = M⁻¹r for an implicitly defined M.
type Preconditioner interface {
	Apply(r, z []float64)
}

// GSSmoother is one application of symmetric Gauss-Seidel: a forward sweep
// in ascending row order followed by a backward sweep in descending order,
// both as in-place triangular solves over the CSR rows. This corresponds
// to M = (D+L) D⁻¹ (D+U), which is SPD whenever A is, so it is a valid
// conjugate gradient preconditioner. M⁻¹ is never formed.
type GSSmoother struct {
	A    utils.CSR
	diag []float64
}

func NewGSSmoother(A utils.CSR) (gs *GSSmoother, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("Gauss-Seidel needs a square matrix, got %dx%d", nr, nc)
		return
	}
	d := A.Diagonal()
	for i, di := range d {
		if di == 0 {
			err = fmt.Errorf("Gauss-Seidel breakdown: zero diagonal at row %d", i)
			return
		}
	}
	gs = &GSSmoother{A: A, diag: d}
	return
}

// Apply runs the forward then backward sweep on A z = r starting from
// z = 0. Sweep ordering is fixed for reproducibility.
func (gs *GSSmoother) Apply(r, z []float64) {
	var (
		n = len(gs.diag)
	)
	for i := range z {
		z[i] = 0
	}
	for i := 0; i < n; i++ {
		gs.relaxRow(i, r, z)
	}
	for i := n - 1; i >= 0; i-- {
		gs.relaxRow(i, r, z)
	}
}

func (gs *GSSmoother) relaxRow(i int, r, z []float64) {
	var sum float64
	gs.A.DoRow(i, func(j int, v float64) {
		if j != i {
			sum += v * z[j]
		}
	})
	z[i] = (r[i] - sum) / gs.diag[i]
}
