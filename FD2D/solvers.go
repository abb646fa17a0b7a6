package FD2D

import "math"

type Status uint8

const (
	Converged Status = iota
	IterationLimitReached
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case IterationLimitReached:
		return "IterationLimitReached"
	}
	return "Unknown"
}

// SolveResult reports the terminal state of a relaxation run. Hitting the
// iteration cap is a normal outcome, not an error - MaxDelta lets the caller
// judge the quality of the unconverged field.
type SolveResult struct {
	Status     Status
	Iterations int
	MaxDelta   float64
}

// RunJacobi relaxes the grid using two generations of the field, reading every
// neighbor from the previous sweep. The buffers are swapped by reference each
// sweep, never reallocated. Convergence is declared once the sweep count
// exceeds minIter and the whole-grid max |next - cur| falls below tol.
func (g *Grid) RunJacobi(tol float64, minIter, maxIter int) (r SolveResult) {
	var (
		cur  = g.U
		next = g.U.Copy()
	)
	r.Status = IterationLimitReached
	for iter := 1; iter <= maxIter; iter++ {
		var maxDelta float64
		for i := 0; i < g.Nr; i++ {
			for j := 0; j < g.Nc; j++ {
				var uNew float64
				if g.fixed[i*g.Nc+j] {
					uNew = g.FixedVal.At(i, j)
				} else {
					uNew = neighborAverage(cur, i, j)
				}
				next.Set(i, j, uNew)
				if delta := math.Abs(uNew - cur.At(i, j)); delta > maxDelta {
					maxDelta = delta
				}
			}
		}
		g.U = next
		if iter > minIter && maxDelta < tol {
			return SolveResult{Converged, iter, maxDelta}
		}
		r = SolveResult{IterationLimitReached, iter, maxDelta}
		cur, next = next, cur
	}
	return
}

// RunGaussSeidel relaxes the grid in place, sweeping in row-major order so
// each update sees a mix of this sweep's and last sweep's neighbor values.
// The convergence test uses the running per-cell max delta tracked during the
// sweep itself, unlike Jacobi's whole-grid generation comparison.
func (g *Grid) RunGaussSeidel(tol float64, minIter, maxIter int) (r SolveResult) {
	r.Status = IterationLimitReached
	for iter := 1; iter <= maxIter; iter++ {
		var maxDelta float64
		for i := 0; i < g.Nr; i++ {
			for j := 0; j < g.Nc; j++ {
				if g.fixed[i*g.Nc+j] {
					g.U.Set(i, j, g.FixedVal.At(i, j))
					continue
				}
				old := g.U.At(i, j)
				uNew := neighborAverage(g.U, i, j)
				g.U.Set(i, j, uNew)
				if delta := math.Abs(uNew - old); delta > maxDelta {
					maxDelta = delta
				}
			}
		}
		if iter > minIter && maxDelta < tol {
			return SolveResult{Converged, iter, maxDelta}
		}
		r = SolveResult{IterationLimitReached, iter, maxDelta}
	}
	return
}

// RunSOR is Gauss-Seidel with the update overcorrected by the relaxation
// factor omega: u += omega * (avg - u). Values of omega in (0,2) are
// meaningful, omega >= 2 diverges or stagnates - a numerical property of the
// method, deliberately not validated here.
func (g *Grid) RunSOR(omega, tol float64, minIter, maxIter int) (r SolveResult) {
	r.Status = IterationLimitReached
	for iter := 1; iter <= maxIter; iter++ {
		var maxDelta float64
		for i := 0; i < g.Nr; i++ {
			for j := 0; j < g.Nc; j++ {
				if g.fixed[i*g.Nc+j] {
					g.U.Set(i, j, g.FixedVal.At(i, j))
					continue
				}
				old := g.U.At(i, j)
				uNew := old + omega*(neighborAverage(g.U, i, j)-old)
				g.U.Set(i, j, uNew)
				if delta := math.Abs(uNew - old); delta > maxDelta {
					maxDelta = delta
				}
			}
		}
		if iter > minIter && maxDelta < tol {
			return SolveResult{Converged, iter, maxDelta}
		}
		r = SolveResult{IterationLimitReached, iter, maxDelta}
	}
	return
}
