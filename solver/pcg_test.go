package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofes/utils"
)

// laplacian1D builds the tridiagonal (-1, 2, -1) SPD matrix.
func laplacian1D(n int) utils.CSR {
	A := utils.NewDOK(n, n)
	for i := 0; i < n; i++ {
		A.Set(i, i, 2)
		if i > 0 {
			A.Set(i, i-1, -1)
		}
		if i < n-1 {
			A.Set(i, i+1, -1)
		}
	}
	return A.ToCSR()
}

func TestGSSmoother(t *testing.T) {
	// On a diagonal matrix the symmetric sweep is an exact solve
	{
		A := utils.NewDOK(3, 3)
		A.Set(0, 0, 2)
		A.Set(1, 1, 4)
		A.Set(2, 2, 8)
		gs, err := NewGSSmoother(A.ToCSR())
		require.NoError(t, err)
		z := make([]float64, 3)
		gs.Apply([]float64{2, 2, 2}, z)
		assert.InDeltaSlice(t, []float64{1, 0.5, 0.25}, z, utils.NODETOL)
	}
	// Zero diagonal is a construction error
	{
		A := utils.NewDOK(2, 2)
		A.Set(0, 0, 1)
		A.Set(0, 1, 1)
		A.Set(1, 0, 1)
		_, err := NewGSSmoother(A.ToCSR())
		assert.Error(t, err)
	}
}

func TestPCGConvergence(t *testing.T) {
	// Standard CG guarantee: exact convergence within dimension
	// iterations for SPD systems, here well inside it with the smoother
	var (
		n = 100
		A = laplacian1D(n)
		b = utils.NewVectorConst(n, 1)
		x = utils.NewVector(n)
	)
	gs, err := NewGSSmoother(A)
	require.NoError(t, err)
	res := PCG(A, gs, b, x, n, 1.e-24, 0)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, n)
	// Verify A x = b
	ax := make([]float64, n)
	A.MulVec(ax, x.Data())
	for i := range ax {
		assert.InDelta(t, 1, ax[i], 1.e-8)
	}
}

func TestPCGKnownSolution(t *testing.T) {
	// 2x2 system with hand-computable solution
	A := utils.NewDOK(2, 2)
	A.Set(0, 0, 4)
	A.Set(0, 1, 1)
	A.Set(1, 0, 1)
	A.Set(1, 1, 3)
	R := A.ToCSR()
	b := utils.NewVector(2, []float64{1, 2})
	x := utils.NewVector(2)
	gs, err := NewGSSmoother(R)
	require.NoError(t, err)
	res := PCG(R, gs, b, x, 10, 1.e-24, 0)
	assert.True(t, res.Converged)
	assert.InDelta(t, 1./11., x.AtVec(0), 1.e-10)
	assert.InDelta(t, 7./11., x.AtVec(1), 1.e-10)
}

func TestPCGZeroResidualStart(t *testing.T) {
	// Initial guess already solves the system: zero iterations
	A := laplacian1D(4)
	x := utils.NewVector(4, []float64{1, 1, 1, 1})
	b := utils.NewVector(4)
	A.MulVec(b.Data(), x.Data())
	gs, err := NewGSSmoother(A)
	require.NoError(t, err)
	res := PCG(A, gs, b, x, 10, 1.e-12, 1.e-28)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
}

func TestPCGBreakdown(t *testing.T) {
	// Indefinite matrix: the curvature p·Ap hits zero and the solver
	// reports non-convergence instead of propagating NaN
	A := utils.NewDOK(2, 2)
	A.Set(0, 0, 1)
	A.Set(1, 1, -1)
	R := A.ToCSR()
	b := utils.NewVector(2, []float64{1, 1})
	x := utils.NewVector(2)
	gs, err := NewGSSmoother(R)
	require.NoError(t, err)
	res := PCG(R, gs, b, x, 10, 1.e-24, 0)
	assert.False(t, res.Converged)
	assert.False(t, math.IsNaN(x.AtVec(0)))
	assert.False(t, math.IsNaN(x.AtVec(1)))
}

func TestPCGMaxIterations(t *testing.T) {
	// Iteration cap reached: soft failure with the residual reported
	var (
		n = 50
		A = laplacian1D(n)
		b = utils.NewVectorConst(n, 1)
		x = utils.NewVector(n)
	)
	gs, err := NewGSSmoother(A)
	require.NoError(t, err)
	res := PCG(A, gs, b, x, 1, 1.e-30, 0)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Greater(t, res.ResidualNorm, 0.)
}
