package solver

import (
	"math"

	"github.com/notargets/gofes/utils"
)

// Result reports the outcome of an iterative solve. Non-convergence is a
// status, not an error: the caller decides whether the approximation in x
// is acceptable, or retries with a relaxed tolerance or more iterations.
type Result struct {
	Converged    bool
	Iterations   int
	ResidualNorm float64
}

const breakdownTol = 1.e-300

// PCG solves A x = b for symmetric positive-definite A by preconditioned
// Conjugate Gradient, updating x in place from its initial guess. The
// iteration stops once ‖r‖² ≤ max(relTolSq·‖r0‖², absTolSq), or reports
// Converged=false after maxIter iterations or on breakdown (a zero or
// negative curvature direction, which SPD input cannot produce in exact
// arithmetic). All reductions are double precision dot products.
func PCG(A utils.CSR, M Preconditioner, b, x utils.Vector, maxIter int, relTolSq, absTolSq float64) (res Result) {
	var (
		n  = x.Len()
		xD = x.Data()
		bD = b.Data()
		r  = make([]float64, n)
		z  = make([]float64, n)
		p  = make([]float64, n)
		ap = make([]float64, n)
	)
	// r0 = b - A x0
	A.MulVec(r, xD)
	for i := range r {
		r[i] = bD[i] - r[i]
	}
	rNormSq := dot(r, r)
	threshold := math.Max(relTolSq*rNormSq, absTolSq)
	if rNormSq <= threshold {
		return Result{Converged: true, Iterations: 0, ResidualNorm: math.Sqrt(rNormSq)}
	}
	M.Apply(r, z)
	copy(p, z)
	rz := dot(r, z)
	for k := 1; k <= maxIter; k++ {
		if rz <= breakdownTol {
			// Indefinite preconditioned residual: report, never continue
			return Result{Converged: false, Iterations: k - 1, ResidualNorm: math.Sqrt(rNormSq)}
		}
		A.MulVec(ap, p)
		den := dot(p, ap)
		if den <= breakdownTol {
			return Result{Converged: false, Iterations: k - 1, ResidualNorm: math.Sqrt(rNormSq)}
		}
		alpha := rz / den
		for i := range xD {
			xD[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rNormSq = dot(r, r)
		if rNormSq <= threshold {
			return Result{Converged: true, Iterations: k, ResidualNorm: math.Sqrt(rNormSq)}
		}
		M.Apply(r, z)
		rzNext := dot(r, z)
		beta := rzNext / rz
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rz = rzNext
	}
	return Result{Converged: false, Iterations: maxIter, ResidualNorm: math.Sqrt(rNormSq)}
}

func dot(a, b []float64) (sum float64) {
	for i, val := range a {
		sum += val * b[i]
	}
	return
}
