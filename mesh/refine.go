package mesh

import (
	"fmt"

	"github.com/notargets/gofes/utils"
)

type edgeKey [2]int

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// UniformRefinement subdivides every element in place: segments into 2,
// triangles and quads into 4. Edge midpoint vertices are shared between
// the elements flanking the edge, and boundary faces are split with their
// attribute inherited, so the refined topology stays consistent.
func (msh *Mesh) UniformRefinement() {
	var (
		vx   = append([]float64{}, msh.VX.Data()...)
		vy   = append([]float64{}, msh.VY.Data()...)
		mids = make(map[edgeKey]int)
	)
	midpoint := func(a, b int) (m int) {
		key := newEdgeKey(a, b)
		if m, ok := mids[key]; ok {
			return m
		}
		m = len(vx)
		vx = append(vx, 0.5*(vx[a]+vx[b]))
		vy = append(vy, 0.5*(vy[a]+vy[b]))
		mids[key] = m
		return
	}
	newElements := make([]Element, 0, 4*len(msh.Elements))
	for _, el := range msh.Elements {
		v := el.Verts
		switch el.Type {
		case Segment:
			m := midpoint(v[0], v[1])
			newElements = append(newElements,
				Element{Segment, []int{v[0], m}},
				Element{Segment, []int{m, v[1]}})
		case Triangle:
			ab := midpoint(v[0], v[1])
			bc := midpoint(v[1], v[2])
			ca := midpoint(v[2], v[0])
			newElements = append(newElements,
				Element{Triangle, []int{v[0], ab, ca}},
				Element{Triangle, []int{ab, v[1], bc}},
				Element{Triangle, []int{ca, bc, v[2]}},
				Element{Triangle, []int{ab, bc, ca}})
		case Quad:
			ab := midpoint(v[0], v[1])
			bc := midpoint(v[1], v[2])
			cd := midpoint(v[2], v[3])
			da := midpoint(v[3], v[0])
			// Face center vertex, never shared
			ce := len(vx)
			vx = append(vx, 0.25*(vx[v[0]]+vx[v[1]]+vx[v[2]]+vx[v[3]]))
			vy = append(vy, 0.25*(vy[v[0]]+vy[v[1]]+vy[v[2]]+vy[v[3]]))
			newElements = append(newElements,
				Element{Quad, []int{v[0], ab, ce, da}},
				Element{Quad, []int{ab, v[1], bc, ce}},
				Element{Quad, []int{ce, bc, v[2], cd}},
				Element{Quad, []int{da, ce, cd, v[3]}})
		default:
			panic(fmt.Errorf("cannot refine element of type %s", el.Type))
		}
	}
	newBoundary := make([]BoundaryElement, 0, 2*len(msh.Boundary))
	for _, be := range msh.Boundary {
		switch be.Type {
		case Point:
			newBoundary = append(newBoundary, be)
		case Segment:
			a, b := be.Verts[0], be.Verts[1]
			m, ok := mids[newEdgeKey(a, b)]
			if !ok {
				panic(fmt.Errorf("boundary face (%d,%d) is not an edge of any element", a, b))
			}
			newBoundary = append(newBoundary,
				BoundaryElement{Segment, []int{a, m}, be.Attr},
				BoundaryElement{Segment, []int{m, b}, be.Attr})
		default:
			panic(fmt.Errorf("cannot refine boundary face of type %s", be.Type))
		}
	}
	msh.VX = utils.NewVector(len(vx), vx)
	msh.VY = utils.NewVector(len(vy), vy)
	msh.Elements = newElements
	msh.Boundary = newBoundary
}
