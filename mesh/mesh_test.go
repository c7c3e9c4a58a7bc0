package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUnitSquare(t *testing.T) {
	// Quad grid
	{
		msh := GenerateUnitSquare(2, Quad)
		assert.NoError(t, msh.Validate())
		assert.Equal(t, 9, msh.NumVertices())
		assert.Equal(t, 4, msh.NumElements())
		assert.Equal(t, 8, len(msh.Boundary))
		assert.Equal(t, []string{"bottom", "right", "top", "left"}, msh.Markers)
		// Center vertex
		assert.Equal(t, 0.5, msh.VX.AtVec(4))
		assert.Equal(t, 0.5, msh.VY.AtVec(4))
	}
	// Triangle grid has twice the elements
	{
		msh := GenerateUnitSquare(3, Triangle)
		assert.NoError(t, msh.Validate())
		assert.Equal(t, 16, msh.NumVertices())
		assert.Equal(t, 18, msh.NumElements())
	}
}

func TestGenerateLine(t *testing.T) {
	msh := GenerateLine(0, 2, 4)
	assert.NoError(t, msh.Validate())
	assert.Equal(t, 1, msh.Dim)
	assert.Equal(t, 5, msh.NumVertices())
	assert.Equal(t, 4, msh.NumElements())
	assert.Equal(t, 0.5, msh.VX.AtVec(1))
	assert.Equal(t, 2, len(msh.Boundary))
	assert.Equal(t, Point, msh.Boundary[0].Type)
}

func TestValidate(t *testing.T) {
	// Out of range vertex reference is fatal
	{
		msh := GenerateUnitSquare(1, Triangle)
		msh.Elements[0].Verts[2] = 99
		assert.Error(t, msh.Validate())
	}
	// Element dimension must match the mesh
	{
		msh := GenerateLine(0, 1, 2)
		msh.Elements[0].Type = Triangle
		msh.Elements[0].Verts = []int{0, 1, 2}
		assert.Error(t, msh.Validate())
	}
	// Boundary attribute must index a marker
	{
		msh := GenerateUnitSquare(1, Quad)
		msh.Boundary[0].Attr = 7
		assert.Error(t, msh.Validate())
	}
}

func TestMeshPrint(t *testing.T) {
	msh := GenerateUnitSquare(1, Quad)
	var sb strings.Builder
	msh.Print(&sb)
	out := sb.String()
	assert.Contains(t, out, "MFEM mesh v1.0")
	assert.Contains(t, out, "dimension\n2")
	assert.Contains(t, out, "vertices\n4\n2\n")
}
