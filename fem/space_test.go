package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofes/mesh"
	"github.com/notargets/gofes/utils"
)

func TestFESpace(t *testing.T) {
	// Shared vertices alias to the same global DOF
	{
		msh := mesh.GenerateUnitSquare(1, mesh.Triangle)
		sp, err := NewFESpace(msh, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, sp.NDofs)
		d0 := sp.LocalToGlobal(0)
		d1 := sp.LocalToGlobal(1)
		// Elements [v00,v10,v11] and [v00,v11,v01] share the diagonal
		assert.Equal(t, d0[0], d1[0])
		assert.Equal(t, d0[2], d1[1])
	}
	// Malformed topology is a construction error
	{
		msh := mesh.GenerateUnitSquare(1, mesh.Quad)
		msh.Elements[0].Verts[0] = -1
		_, err := NewFESpace(msh, 1)
		assert.Error(t, err)
	}
	// Unsupported degree is a construction error
	{
		msh := mesh.GenerateUnitSquare(1, mesh.Quad)
		_, err := NewFESpace(msh, 2)
		assert.Error(t, err)
	}
}

func TestEssentialDofs(t *testing.T) {
	msh := mesh.GenerateUnitSquare(2, mesh.Quad)
	sp, err := NewFESpace(msh, 1)
	require.NoError(t, err)
	// All four markers essential: every boundary vertex, center excluded
	{
		ess, err := sp.EssentialDofs([]bool{true, true, true, true})
		require.NoError(t, err)
		assert.Equal(t, utils.Index{0, 1, 2, 3, 5, 6, 7, 8}, ess)
	}
	// Only the bottom marker
	{
		ess, err := sp.EssentialDofs([]bool{true, false, false, false})
		require.NoError(t, err)
		assert.Equal(t, utils.Index{0, 1, 2}, ess)
	}
	// Wrong marker count
	{
		_, err := sp.EssentialDofs([]bool{true})
		assert.Error(t, err)
	}
}
