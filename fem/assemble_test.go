package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofes/mesh"
	"github.com/notargets/gofes/utils"
)

func TestAssembleSymmetry(t *testing.T) {
	for _, kind := range []mesh.GeomType{mesh.Triangle, mesh.Quad} {
		msh := mesh.GenerateUnitSquare(3, kind)
		sp, err := NewFESpace(msh, 1)
		require.NoError(t, err)
		A, b := Assemble(sp, NewIntegrator(sp), 1)
		nr, nc := A.Dims()
		assert.Equal(t, sp.NDofs, nr)
		assert.Equal(t, sp.NDofs, nc)
		assert.Equal(t, sp.NDofs, b.Len())
		assert.True(t, A.IsSymmetric(utils.NODETOL))
	}
}

func TestAssembleNullSpace(t *testing.T) {
	// Unconstrained Laplacian annihilates constants: A * 1 = 0
	msh := mesh.GenerateUnitSquare(2, mesh.Triangle)
	sp, err := NewFESpace(msh, 1)
	require.NoError(t, err)
	A, _ := Assemble(sp, NewIntegrator(sp), 1)
	ones := make([]float64, sp.NDofs)
	for i := range ones {
		ones[i] = 1
	}
	dst := make([]float64, sp.NDofs)
	A.ToCSR().MulVec(dst, ones)
	for i := range dst {
		assert.InDelta(t, 0, dst[i], 1.e-13)
	}
}

func TestAssembleAccumulates(t *testing.T) {
	// The load at a shared vertex is the sum of element contributions:
	// on a 2-segment line with constant source, the middle vertex
	// collects h/2 from each side.
	msh := mesh.GenerateLine(0, 1, 2)
	sp, err := NewFESpace(msh, 1)
	require.NoError(t, err)
	A, b := Assemble(sp, NewIntegrator(sp), 1)
	assert.True(t, near(b.AtVec(0), 0.25))
	assert.True(t, near(b.AtVec(1), 0.5))
	assert.True(t, near(b.AtVec(2), 0.25))
	// Interior diagonal sums the two element diagonals: 1/h + 1/h
	assert.True(t, near(A.At(1, 1), 4))
	assert.True(t, near(A.At(0, 1), -2))
}
