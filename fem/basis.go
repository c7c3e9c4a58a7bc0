package fem

import (
	"fmt"
	"math"

	"github.com/notargets/gofes/mesh"
)

// QuadPoint is one reference-element quadrature point with its weight.
type QuadPoint struct {
	R, S, W float64
}

// Basis holds the reference element for one geometry kind: nodal shape
// functions of the given degree plus a quadrature rule exact for the
// stiffness and constant-source load integrands of that degree.
type Basis struct {
	Geom   mesh.GeomType
	Degree int
	Np     int // local basis function count
	Quad   []QuadPoint
}

func NewBasis(geom mesh.GeomType, degree int) (b *Basis, err error) {
	if degree != 1 {
		err = fmt.Errorf("only degree-1 (linear) bases are implemented, got degree %d", degree)
		return
	}
	var (
		g = 0.5 / math.Sqrt(3.)
	)
	b = &Basis{Geom: geom, Degree: degree}
	switch geom {
	case mesh.Segment:
		b.Np = 2
		b.Quad = []QuadPoint{
			{0.5 - g, 0, 0.5},
			{0.5 + g, 0, 0.5},
		}
	case mesh.Triangle:
		// Edge midpoint rule, exact through degree 2
		b.Np = 3
		b.Quad = []QuadPoint{
			{0.5, 0.0, 1. / 6.},
			{0.5, 0.5, 1. / 6.},
			{0.0, 0.5, 1. / 6.},
		}
	case mesh.Quad:
		// Tensor product 2x2 Gauss
		b.Np = 4
		b.Quad = []QuadPoint{
			{0.5 - g, 0.5 - g, 0.25},
			{0.5 + g, 0.5 - g, 0.25},
			{0.5 + g, 0.5 + g, 0.25},
			{0.5 - g, 0.5 + g, 0.25},
		}
	default:
		err = fmt.Errorf("no basis for element geometry %s", geom)
		b = nil
	}
	return
}

// Shape evaluates the nodal shape functions at reference coordinates (r,s).
// Local node ordering matches the mesh vertex convention per geometry.
func (b *Basis) Shape(r, s float64) (N []float64) {
	switch b.Geom {
	case mesh.Segment:
		N = []float64{1 - r, r}
	case mesh.Triangle:
		N = []float64{1 - r - s, r, s}
	case mesh.Quad:
		N = []float64{(1 - r) * (1 - s), r * (1 - s), r * s, (1 - r) * s}
	}
	return
}

// ShapeGrad evaluates the reference-space gradients [dN/dr, dN/ds] of the
// shape functions at (r,s).
func (b *Basis) ShapeGrad(r, s float64) (dN [][2]float64) {
	switch b.Geom {
	case mesh.Segment:
		dN = [][2]float64{{-1, 0}, {1, 0}}
	case mesh.Triangle:
		dN = [][2]float64{{-1, -1}, {1, 0}, {0, 1}}
	case mesh.Quad:
		dN = [][2]float64{
			{-(1 - s), -(1 - r)},
			{1 - s, -r},
			{s, r},
			{-s, 1 - r},
		}
	}
	return
}
