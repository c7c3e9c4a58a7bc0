package fem

import (
	"github.com/notargets/gofes/utils"
)

// EliminateEssentialBC constrains the essential DOFs to the values already
// stored in x, mutating A and b in place without resizing. For each
// essential DOF d: every off-diagonal A[k][d] is folded into b[k]
// (b[k] -= A[k][d]*x[d]) and zeroed together with its symmetric partner,
// then row and column d are reduced to the identity row with b[d] = x[d].
// The reduced system restricted to the free DOFs equals the Schur
// complement of the eliminated block, while DOF indexing stays stable so
// the solver needs no special casing of constrained rows. Re-running on an
// already eliminated set is a no-op.
func EliminateEssentialBC(A utils.DOK, x, b utils.Vector, ess utils.Index) {
	var (
		isEss = make(map[int]bool, len(ess))
		bD    = b.Data()
		xD    = x.Data()
	)
	for _, d := range ess {
		isEss[d] = true
	}
	// Collect first: the structure must not mutate mid-scan
	type entry struct {
		i, j int
		v    float64
	}
	var constrained []entry
	A.DoNonZero(func(i, j int, v float64) {
		if (isEss[i] || isEss[j]) && i != j {
			constrained = append(constrained, entry{i, j, v})
		}
	})
	for _, e := range constrained {
		if !isEss[e.i] {
			// Free row, essential column: move the known value to the RHS
			bD[e.i] -= e.v * xD[e.j]
		}
		A.Set(e.i, e.j, 0)
	}
	for _, d := range ess {
		A.Set(d, d, 1)
		bD[d] = xD[d]
	}
}
