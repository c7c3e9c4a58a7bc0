package Poisson

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gofes/mesh"
)

// CreateAVSGraphMesh converts the 2D mesh to an AVS TriMesh, splitting
// each quad along its diagonal so the plotter only sees triangles.
func (c *Poisson) CreateAVSGraphMesh() (gm geometry.TriMesh) {
	var (
		msh = c.Msh
		Nv  = msh.NumVertices()
		vxD = msh.VX.Data()
		vyD = msh.VY.Data()
	)
	if msh.Dim != 2 {
		panic(fmt.Errorf("graph mesh requires a 2D mesh, got %dD", msh.Dim))
	}
	gm.XY = make([]float32, 2*Nv)
	for i := 0; i < Nv; i++ {
		gm.XY[2*i] = float32(vxD[i])
		gm.XY[2*i+1] = float32(vyD[i])
	}
	for _, el := range msh.Elements {
		v := el.Verts
		switch el.Type {
		case mesh.Triangle:
			gm.TriVerts = append(gm.TriVerts,
				[3]int64{int64(v[0]), int64(v[1]), int64(v[2])})
		case mesh.Quad:
			gm.TriVerts = append(gm.TriVerts,
				[3]int64{int64(v[0]), int64(v[1]), int64(v[2])},
				[3]int64{int64(v[0]), int64(v[2]), int64(v[3])})
		}
	}
	return
}

// PlotSolution renders the solution field as a shaded vertex scalar over
// the mesh. Blocks forever: intended for the end of an interactive run.
func (c *Poisson) PlotSolution() {
	var (
		gm     = c.CreateAVSGraphMesh()
		field  = c.U.V.Data()
		pField = make([]float32, len(field))
	)
	for i, f := range field {
		pField[i] = float32(f)
	}
	xMin, xMax := float32(c.Msh.VX.Min()), float32(c.Msh.VX.Max())
	yMin, yMax := float32(c.Msh.VY.Min()), float32(c.Msh.VY.Max())
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	vs := geometry.VertexScalar{
		TMesh:       &gm,
		FieldValues: pField,
	}
	fMin, fMax := float32(c.U.V.Min()), float32(c.U.V.Max())
	fmt.Printf("fMin: %f, fMax: %f\n", fMin, fMax)
	ch.AddShadedVertexScalar(&vs, fMin, fMax)
	ch.AddTriMesh(gm)
	for {
	}
}
