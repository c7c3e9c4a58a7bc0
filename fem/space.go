package fem

import (
	"fmt"

	"github.com/notargets/gofes/mesh"
	"github.com/notargets/gofes/utils"
)

// FESpace maps the local basis functions of every element to global degrees
// of freedom. For degree-1 elements there is one DOF per mesh vertex, so
// basis functions centered at a shared vertex alias to the same global
// index, which is what makes the assembled solution continuous across
// element boundaries.
type FESpace struct {
	Msh    *mesh.Mesh
	Degree int
	NDofs  int
	l2g    []utils.Index
	bases  map[mesh.GeomType]*Basis
}

func NewFESpace(msh *mesh.Mesh, degree int) (sp *FESpace, err error) {
	if err = msh.Validate(); err != nil {
		return
	}
	if degree != 1 {
		err = fmt.Errorf("only degree-1 (linear) finite element spaces are implemented, got degree %d", degree)
		return
	}
	sp = &FESpace{
		Msh:    msh,
		Degree: degree,
		NDofs:  msh.NumVertices(),
		l2g:    make([]utils.Index, msh.NumElements()),
		bases:  make(map[mesh.GeomType]*Basis),
	}
	for k, el := range msh.Elements {
		sp.l2g[k] = utils.Index(el.Verts).Copy()
		if _, ok := sp.bases[el.Type]; !ok {
			var b *Basis
			if b, err = NewBasis(el.Type, degree); err != nil {
				sp = nil
				return
			}
			sp.bases[el.Type] = b
		}
	}
	return
}

// LocalToGlobal returns the global DOF index of each local basis function
// of element k, ordered by the local basis convention.
func (sp *FESpace) LocalToGlobal(k int) utils.Index {
	return sp.l2g[k]
}

func (sp *FESpace) Basis(geom mesh.GeomType) *Basis {
	return sp.bases[geom]
}

// ElemGeom gathers the geometry of element k for the local integrator.
func (sp *FESpace) ElemGeom(k int) (eg ElemGeom) {
	eg.Geom = sp.Msh.Elements[k].Type
	eg.X, eg.Y = sp.Msh.ElemCoords(k)
	return
}

// EssentialDofs collects the global DOFs lying on boundary faces whose
// attribute is marked true in essAttr, ascending and de-duplicated.
// essAttr has one entry per mesh boundary marker.
func (sp *FESpace) EssentialDofs(essAttr []bool) (ess utils.Index, err error) {
	if len(essAttr) != len(sp.Msh.Markers) {
		err = fmt.Errorf("essAttr has %d entries, mesh has %d boundary markers",
			len(essAttr), len(sp.Msh.Markers))
		return
	}
	var raw utils.Index
	for _, be := range sp.Msh.Boundary {
		if essAttr[be.Attr] {
			raw = append(raw, be.Verts...)
		}
	}
	ess = raw.SortUnique()
	return
}
