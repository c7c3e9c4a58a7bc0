package fem

import (
	"github.com/notargets/gofes/utils"
)

// Assemble accumulates the local stiffness and load contributions of every
// element into the global sparse system A x = b, using the FESpace's
// local-to-global index lists. Accumulation is additive: a global entry
// shared by adjacent elements sums all their contributions. No boundary
// conditions are applied here.
func Assemble(sp *FESpace, intg *Integrator, source float64) (A utils.DOK, b utils.Vector) {
	A = utils.NewDOK(sp.NDofs, sp.NDofs)
	b = utils.NewVector(sp.NDofs)
	bD := b.Data()
	for k := range sp.Msh.Elements {
		var (
			eg   = sp.ElemGeom(k)
			Kloc = intg.Stiffness(eg)
			floc = intg.Load(eg, source)
			dofs = sp.LocalToGlobal(k)
		)
		for i, gi := range dofs {
			bD[gi] += floc.AtVec(i)
			for j, gj := range dofs {
				A.Add(gi, gj, Kloc.At(i, j))
			}
		}
	}
	return
}
