package mesh

import (
	"fmt"
	"io"

	"github.com/notargets/gofes/utils"
)

type GeomType uint8

const (
	Point GeomType = iota
	Segment
	Triangle
	Quad
)

func (g GeomType) String() string {
	switch g {
	case Point:
		return "Point"
	case Segment:
		return "Segment"
	case Triangle:
		return "Triangle"
	case Quad:
		return "Quad"
	}
	return "Unknown"
}

func (g GeomType) NumVerts() int {
	switch g {
	case Point:
		return 1
	case Segment:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	}
	return 0
}

func (g GeomType) Dimension() int {
	switch g {
	case Point:
		return 0
	case Segment:
		return 1
	}
	return 2
}

// Element is one interior mesh element: a geometry kind plus its vertex
// indices in counter-clockwise local order.
type Element struct {
	Type  GeomType
	Verts []int
}

// BoundaryElement is one boundary face (a Point in 1D, a Segment in 2D),
// tagged with the attribute index of the marker it belongs to.
type BoundaryElement struct {
	Type  GeomType
	Verts []int
	Attr  int
}

// Mesh is the read-only topology consumed by the FEM pipeline: vertex
// coordinates, element-vertex incidence and attributed boundary faces.
// Markers names the boundary attributes; BoundaryElement.Attr indexes it.
type Mesh struct {
	Dim      int
	VX, VY   utils.Vector
	Elements []Element
	Boundary []BoundaryElement
	Markers  []string
}

func (msh *Mesh) NumVertices() int { return msh.VX.Len() }
func (msh *Mesh) NumElements() int { return len(msh.Elements) }

// Validate checks element/boundary incidence against the vertex count.
// A malformed topology is unusable; callers treat this as fatal.
func (msh *Mesh) Validate() (err error) {
	var (
		nv = msh.NumVertices()
	)
	if msh.Dim == 2 && msh.VY.Len() != nv {
		return fmt.Errorf("mesh has %d X coordinates but %d Y coordinates", nv, msh.VY.Len())
	}
	for k, el := range msh.Elements {
		if el.Type.Dimension() != msh.Dim {
			return fmt.Errorf("element %d: %s element in a %dD mesh", k, el.Type, msh.Dim)
		}
		if len(el.Verts) != el.Type.NumVerts() {
			return fmt.Errorf("element %d: %s element with %d vertices", k, el.Type, len(el.Verts))
		}
		for _, v := range el.Verts {
			if v < 0 || v >= nv {
				return fmt.Errorf("element %d references vertex %d, mesh has %d vertices", k, v, nv)
			}
		}
	}
	for n, be := range msh.Boundary {
		if be.Type.Dimension() != msh.Dim-1 {
			return fmt.Errorf("boundary element %d: %s face in a %dD mesh", n, be.Type, msh.Dim)
		}
		for _, v := range be.Verts {
			if v < 0 || v >= nv {
				return fmt.Errorf("boundary element %d references vertex %d, mesh has %d vertices", n, v, nv)
			}
		}
		if be.Attr < 0 || be.Attr >= len(msh.Markers) {
			return fmt.Errorf("boundary element %d has attribute %d, mesh has %d markers", n, be.Attr, len(msh.Markers))
		}
	}
	return
}

// ElemCoords gathers the vertex coordinates of element k into X, Y slices
// ordered by the local vertex convention.
func (msh *Mesh) ElemCoords(k int) (X, Y []float64) {
	var (
		el  = msh.Elements[k]
		vxD = msh.VX.Data()
	)
	X = make([]float64, len(el.Verts))
	Y = make([]float64, len(el.Verts))
	for i, v := range el.Verts {
		X[i] = vxD[v]
		if msh.Dim == 2 {
			Y[i] = msh.VY.Data()[v]
		}
	}
	return
}

// Print writes the mesh in MFEM v1.0 text format, the payload consumed by
// GLVis alongside the solution grid function.
func (msh *Mesh) Print(w io.Writer) {
	fmt.Fprintf(w, "MFEM mesh v1.0\n\ndimension\n%d\n", msh.Dim)
	fmt.Fprintf(w, "\nelements\n%d\n", len(msh.Elements))
	for _, el := range msh.Elements {
		fmt.Fprintf(w, "1 %d", mfemGeomCode(el.Type))
		for _, v := range el.Verts {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\nboundary\n%d\n", len(msh.Boundary))
	for _, be := range msh.Boundary {
		fmt.Fprintf(w, "%d %d", be.Attr+1, mfemGeomCode(be.Type))
		for _, v := range be.Verts {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\nvertices\n%d\n%d\n", msh.NumVertices(), msh.Dim)
	vxD := msh.VX.Data()
	for i := 0; i < msh.NumVertices(); i++ {
		if msh.Dim == 2 {
			fmt.Fprintf(w, "%g %g\n", vxD[i], msh.VY.Data()[i])
		} else {
			fmt.Fprintf(w, "%g\n", vxD[i])
		}
	}
}

func mfemGeomCode(g GeomType) int {
	switch g {
	case Point:
		return 0
	case Segment:
		return 1
	case Triangle:
		return 2
	case Quad:
		return 3
	}
	return -1
}
