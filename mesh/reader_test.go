package mesh

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTriMesh = `% unit square, two triangles
NDIME= 2
NELEM= 2
5 0 1 2
5 0 2 3
NPOIN= 4
0.0 0.0
1.0 0.0
1.0 1.0
0.0 1.0
NMARK= 2
MARKER_TAG= bottom
MARKER_ELEMS= 1
3 0 1
MARKER_TAG= rest
MARKER_ELEMS= 3
3 1 2
3 2 3
3 3 0
`

func TestReadSU2(t *testing.T) {
	msh := ReadSU2From(bufio.NewReader(strings.NewReader(twoTriMesh)), false)
	require.NotNil(t, msh)
	assert.Equal(t, 2, msh.Dim)
	assert.Equal(t, 2, msh.NumElements())
	assert.Equal(t, 4, msh.NumVertices())
	assert.Equal(t, Triangle, msh.Elements[0].Type)
	assert.Equal(t, []int{0, 2, 3}, msh.Elements[1].Verts)
	assert.Equal(t, 1.0, msh.VX.AtVec(2))
	assert.Equal(t, 1.0, msh.VY.AtVec(2))
	assert.Equal(t, []string{"bottom", "rest"}, msh.Markers)
	require.Equal(t, 4, len(msh.Boundary))
	assert.Equal(t, 0, msh.Boundary[0].Attr)
	assert.Equal(t, 1, msh.Boundary[3].Attr)
	assert.Equal(t, []int{3, 0}, msh.Boundary[3].Verts)
}

func TestReadSU2Malformed(t *testing.T) {
	// Out of range vertex index fails validation
	{
		bad := strings.Replace(twoTriMesh, "5 0 2 3", "5 0 2 9", 1)
		assert.Panics(t, func() {
			ReadSU2From(bufio.NewReader(strings.NewReader(bad)), false)
		})
	}
	// Unknown element type code
	{
		bad := strings.Replace(twoTriMesh, "5 0 1 2", "7 0 1 2", 1)
		assert.Panics(t, func() {
			ReadSU2From(bufio.NewReader(strings.NewReader(bad)), false)
		})
	}
	// Truncated file
	{
		trunc := twoTriMesh[:strings.Index(twoTriMesh, "NMARK")]
		assert.Panics(t, func() {
			ReadSU2From(bufio.NewReader(strings.NewReader(trunc)), false)
		})
	}
}
