package Poisson

import (
	"fmt"
	"math"

	"github.com/notargets/gofes/fem"
	"github.com/notargets/gofes/mesh"
	"github.com/notargets/gofes/solver"
	"github.com/notargets/gofes/types"
	"github.com/notargets/gofes/utils"
)

// Poisson drives the full pipeline for -Δu = f with Dirichlet boundary
// conditions: finite element space → assembly → essential boundary
// elimination → PCG solve. The assembled system is owned by the instance
// and flows through the stages by mutation, never through package state,
// so independent solves never share anything.
type Poisson struct {
	Msh     *mesh.Mesh
	Source  float64
	MaxIter int
	RelTolSq, AbsTolSq float64
	Verbose bool

	Sp  *fem.FESpace
	A   utils.DOK
	B   utils.Vector
	U   *fem.GridFunction
	Ess utils.Index
}

func NewPoisson(msh *mesh.Mesh, source float64) (c *Poisson) {
	c = &Poisson{
		Msh:      msh,
		Source:   source,
		MaxIter:  200,
		RelTolSq: 1.e-12,
		AbsTolSq: 1.e-28,
	}
	return
}

// RefineToLimit uniformly refines until one more refinement would push the
// element count past maxElems.
func (c *Poisson) RefineToLimit(maxElems int) {
	if maxElems <= c.Msh.NumElements() {
		return
	}
	var (
		dim    = float64(c.Msh.Dim)
		growth = math.Log(float64(maxElems)/float64(c.Msh.NumElements())) / math.Log(2.)
		levels = int(math.Floor(growth / dim))
	)
	for l := 0; l < levels; l++ {
		c.Msh.UniformRefinement()
	}
	if c.Verbose {
		fmt.Printf("Refined %d levels: %d elements, %d vertices\n",
			levels, c.Msh.NumElements(), c.Msh.NumVertices())
	}
}

// EssentialAttrs marks each boundary marker essential or not from a
// marker-name → bc-name map. Markers absent from the map default to
// Dirichlet, matching the all-boundaries-essential base problem.
func (c *Poisson) EssentialAttrs(bcs map[string]string) (essAttr []bool) {
	essAttr = make([]bool, len(c.Msh.Markers))
	for i, name := range c.Msh.Markers {
		bc := types.BC_Dirichlet
		if bcName, ok := bcs[name]; ok {
			bc = types.ParseBCName(bcName)
		}
		essAttr[i] = bc == types.BC_Dirichlet
	}
	return
}

// Setup assembles the unconstrained system and eliminates the essential
// DOFs in place. The solution grid function starts at zero, which
// satisfies the homogeneous boundary conditions trivially.
func (c *Poisson) Setup(essAttr []bool) (err error) {
	if c.Sp, err = fem.NewFESpace(c.Msh, 1); err != nil {
		return
	}
	intg := fem.NewIntegrator(c.Sp)
	c.A, c.B = fem.Assemble(c.Sp, intg, c.Source)
	c.U = fem.NewGridFunction(c.Sp)
	if c.Ess, err = c.Sp.EssentialDofs(essAttr); err != nil {
		return
	}
	fem.EliminateEssentialBC(c.A, c.U.V, c.B, c.Ess)
	if c.Verbose {
		fmt.Printf("Assembled %d DOFs, %d nonzeros, %d essential\n",
			c.Sp.NDofs, c.A.NNZ(), len(c.Ess))
	}
	return
}

// Solve compacts the system to CSR and runs Gauss-Seidel preconditioned
// CG. Non-convergence is reported in the Result, not as an error.
func (c *Poisson) Solve() (res solver.Result, err error) {
	var (
		Acsr = c.A.ToCSR()
		gs   *solver.GSSmoother
	)
	if gs, err = solver.NewGSSmoother(Acsr); err != nil {
		return
	}
	res = solver.PCG(Acsr, gs, c.B, c.U.V, c.MaxIter, c.RelTolSq, c.AbsTolSq)
	if c.Verbose {
		fmt.Printf("PCG: converged = %v, iterations = %d, residual = %g\n",
			res.Converged, res.Iterations, res.ResidualNorm)
	}
	return
}

// SaveSolution writes the solution grid function to a GLVis-readable file.
func (c *Poisson) SaveSolution(filename string) (err error) {
	return c.U.SaveFile(filename)
}
