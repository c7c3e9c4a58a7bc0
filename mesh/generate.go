package mesh

import (
	"fmt"

	"github.com/notargets/gofes/utils"
)

// GenerateLine builds a 1D mesh of K equal segments on [xmin,xmax], with
// "left" and "right" boundary markers on the end points.
func GenerateLine(xmin, xmax float64, K int) (msh *Mesh) {
	if K < 1 {
		panic(fmt.Errorf("cannot generate a line mesh with %d elements", K))
	}
	var (
		Nv = K + 1
		h  = (xmax - xmin) / float64(K)
		vx = make([]float64, Nv)
	)
	for i := range vx {
		vx[i] = xmin + float64(i)*h
	}
	msh = &Mesh{
		Dim:     1,
		VX:      utils.NewVector(Nv, vx),
		VY:      utils.NewVector(Nv),
		Markers: []string{"left", "right"},
		Boundary: []BoundaryElement{
			{Point, []int{0}, 0},
			{Point, []int{K}, 1},
		},
	}
	msh.Elements = make([]Element, K)
	for k := 0; k < K; k++ {
		msh.Elements[k] = Element{Segment, []int{k, k + 1}}
	}
	return
}

// GenerateUnitSquare builds a structured n x n mesh of the unit square out
// of quads, or of triangles by splitting each cell along its diagonal.
// Boundary markers: "bottom", "right", "top", "left".
func GenerateUnitSquare(n int, kind GeomType) (msh *Mesh) {
	if n < 1 {
		panic(fmt.Errorf("cannot generate a unit square mesh with n = %d", n))
	}
	if kind != Triangle && kind != Quad {
		panic(fmt.Errorf("unit square mesh supports Triangle or Quad elements, got %s", kind))
	}
	var (
		Nv = (n + 1) * (n + 1)
		vx = make([]float64, Nv)
		vy = make([]float64, Nv)
		h  = 1. / float64(n)
	)
	vid := func(i, j int) int { return j*(n+1) + i }
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			vx[vid(i, j)] = float64(i) * h
			vy[vid(i, j)] = float64(j) * h
		}
	}
	msh = &Mesh{
		Dim:     2,
		VX:      utils.NewVector(Nv, vx),
		VY:      utils.NewVector(Nv, vy),
		Markers: []string{"bottom", "right", "top", "left"},
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00, v10 := vid(i, j), vid(i+1, j)
			v11, v01 := vid(i+1, j+1), vid(i, j+1)
			if kind == Quad {
				msh.Elements = append(msh.Elements,
					Element{Quad, []int{v00, v10, v11, v01}})
			} else {
				msh.Elements = append(msh.Elements,
					Element{Triangle, []int{v00, v10, v11}},
					Element{Triangle, []int{v00, v11, v01}})
			}
		}
	}
	for i := 0; i < n; i++ {
		msh.Boundary = append(msh.Boundary,
			BoundaryElement{Segment, []int{vid(i, 0), vid(i+1, 0)}, 0},
			BoundaryElement{Segment, []int{vid(n, i), vid(n, i+1)}, 1},
			BoundaryElement{Segment, []int{vid(i+1, n), vid(i, n)}, 2},
			BoundaryElement{Segment, []int{vid(0, i+1), vid(0, i)}, 3})
	}
	return
}
