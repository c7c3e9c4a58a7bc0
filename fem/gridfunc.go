package fem

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/gofes/utils"
)

// GridFunction is a finite element function: one coefficient per global
// DOF of its space. For the Poisson pipeline it holds the solution vector,
// initialized to the prescribed boundary values (zero everywhere for the
// homogeneous problem) and overwritten at the free DOFs by the solver.
type GridFunction struct {
	Sp *FESpace
	V  utils.Vector
}

func NewGridFunction(sp *FESpace) (gf *GridFunction) {
	gf = &GridFunction{
		Sp: sp,
		V:  utils.NewVector(sp.NDofs),
	}
	return
}

// SetConstant sets every coefficient to val.
func (gf *GridFunction) SetConstant(val float64) {
	var (
		data = gf.V.Data()
	)
	for i := range data {
		data[i] = val
	}
}

// Save writes the grid function in GLVis .gf text format.
func (gf *GridFunction) Save(w io.Writer) (err error) {
	if _, err = fmt.Fprintf(w, "FiniteElementSpace\nFiniteElementCollection: Linear\nVDim: 1\nOrdering: 0\n\n"); err != nil {
		return
	}
	for _, val := range gf.V.Data() {
		if _, err = fmt.Fprintf(w, "%.16g\n", val); err != nil {
			return
		}
	}
	return
}

func (gf *GridFunction) SaveFile(filename string) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return
	}
	defer file.Close()
	err = gf.Save(file)
	return
}
