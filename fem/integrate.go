package fem

import (
	"fmt"
	"math"

	"github.com/notargets/gofes/mesh"
	"github.com/notargets/gofes/utils"
)

// ElemGeom is the geometry of one element: its kind and vertex coordinates
// in local ordering.
type ElemGeom struct {
	Geom mesh.GeomType
	X, Y []float64
}

// Integrator computes local element integrals from the reference-element
// basis tables of an FESpace. It carries no per-element state: elements
// can be processed in any order before accumulation.
type Integrator struct {
	sp *FESpace
}

func NewIntegrator(sp *FESpace) *Integrator {
	return &Integrator{sp: sp}
}

func (intg *Integrator) basisFor(eg ElemGeom) (b *Basis) {
	b = intg.sp.Basis(eg.Geom)
	if b == nil {
		panic(fmt.Errorf("no basis registered for element geometry %s", eg.Geom))
	}
	if len(eg.X) != b.Np {
		panic(fmt.Errorf("element geometry has %d vertices, basis %s has %d nodes",
			len(eg.X), eg.Geom, b.Np))
	}
	return
}

// Stiffness integrates the diffusion bilinear form over one element,
// returning the Np x Np local stiffness matrix.
func (intg *Integrator) Stiffness(eg ElemGeom) (K utils.Matrix) {
	var (
		b  = intg.basisFor(eg)
		gx = make([]float64, b.Np)
		gy = make([]float64, b.Np)
	)
	K = utils.NewMatrix(b.Np, b.Np)
	for _, qp := range b.Quad {
		detJ := physGradients(b, eg, qp, gx, gy)
		for i := 0; i < b.Np; i++ {
			for j := 0; j < b.Np; j++ {
				K.AddAt(i, j, qp.W*detJ*(gx[i]*gx[j]+gy[i]*gy[j]))
			}
		}
	}
	return
}

// Load integrates the linear form for a constant source over one element,
// returning the local load vector. Exact for the degree-1 basis.
func (intg *Integrator) Load(eg ElemGeom, source float64) (f utils.Vector) {
	var (
		b = intg.basisFor(eg)
	)
	f = utils.NewVector(b.Np)
	for _, qp := range b.Quad {
		detJ := jacobianDet(b, eg, qp)
		N := b.Shape(qp.R, qp.S)
		for i := 0; i < b.Np; i++ {
			f.AddAt(i, qp.W*detJ*N[i]*source)
		}
	}
	return
}

// physGradients maps the reference shape gradients at qp through the
// element Jacobian, filling gx, gy with physical-space gradients and
// returning |det J|. A degenerate (zero area) element is fatal.
func physGradients(b *Basis, eg ElemGeom, qp QuadPoint, gx, gy []float64) (detJ float64) {
	var (
		dN = b.ShapeGrad(qp.R, qp.S)
	)
	if eg.Geom.Dimension() == 1 {
		var dxdr float64
		for i := range dN {
			dxdr += dN[i][0] * eg.X[i]
		}
		detJ = math.Abs(dxdr)
		checkDet(detJ, eg)
		for i := range dN {
			gx[i] = dN[i][0] / dxdr
			gy[i] = 0
		}
		return
	}
	var j00, j01, j10, j11 float64
	for i := range dN {
		j00 += dN[i][0] * eg.X[i] // dx/dr
		j01 += dN[i][1] * eg.X[i] // dx/ds
		j10 += dN[i][0] * eg.Y[i] // dy/dr
		j11 += dN[i][1] * eg.Y[i] // dy/ds
	}
	det := j00*j11 - j01*j10
	detJ = math.Abs(det)
	checkDet(detJ, eg)
	for i := range dN {
		gx[i] = (j11*dN[i][0] - j10*dN[i][1]) / det
		gy[i] = (-j01*dN[i][0] + j00*dN[i][1]) / det
	}
	return
}

func jacobianDet(b *Basis, eg ElemGeom, qp QuadPoint) (detJ float64) {
	var (
		gx = make([]float64, b.Np)
		gy = make([]float64, b.Np)
	)
	detJ = physGradients(b, eg, qp, gx, gy)
	return
}

func checkDet(detJ float64, eg ElemGeom) {
	if detJ < utils.NODETOL {
		panic(fmt.Errorf("degenerate %s element with vertices X=%v Y=%v", eg.Geom, eg.X, eg.Y))
	}
}
