package FD2D

import (
	"fmt"
	"math"

	"github.com/notargets/gorelax/utils"
	"gonum.org/v1/gonum/mat"
)

// AssembleLaplacian builds the 5 point stencil system A*u = b over the
// non-fixed cells, 4*u(i,j) - u(N) - u(S) - u(E) - u(W) = 0, with fixed
// neighbor values folded into b. cells maps each unknown back to its
// row-major cell index. Every non-fixed cell must have four in-grid
// neighbors, otherwise assembly fails.
func (g *Grid) AssembleLaplacian() (A utils.DOK, b utils.Vector, cells []int, err error) {
	var (
		unknown = make([]int, g.Nr*g.Nc) // Cell index -> unknown index
	)
	for idx := range unknown {
		unknown[idx] = -1
	}
	for i := 0; i < g.Nr; i++ {
		for j := 0; j < g.Nc; j++ {
			if !g.fixed[i*g.Nc+j] {
				unknown[i*g.Nc+j] = len(cells)
				cells = append(cells, i*g.Nc+j)
			}
		}
	}
	if len(cells) == 0 {
		err = fmt.Errorf("no unknowns: every cell of the %dx%d grid is fixed", g.Nr, g.Nc)
		return
	}
	A = utils.NewDOK(len(cells), len(cells))
	b = utils.NewVector(len(cells))
	bData := b.RawVector().Data
	for k, idx := range cells {
		i, j := idx/g.Nc, idx%g.Nc
		if i == 0 || i == g.Nr-1 || j == 0 || j == g.Nc-1 {
			err = fmt.Errorf("non-fixed cell (%d,%d) has no full neighbor ring", i, j)
			return
		}
		A.Set(k, k, 4)
		for _, nb := range [4][2]int{{i - 1, j}, {i + 1, j}, {i, j - 1}, {i, j + 1}} {
			ni, nj := nb[0], nb[1]
			if g.fixed[ni*g.Nc+nj] {
				bData[k] += g.FixedVal.At(ni, nj)
			} else {
				A.Set(k, unknown[ni*g.Nc+nj], -1)
			}
		}
	}
	return
}

// SolveDirect fills the non-fixed cells with the dense LU solution of the
// assembled system and returns the infinity norm of the residual b - A*x,
// computed through the sparse CSR form of the operator.
func (g *Grid) SolveDirect() (resid float64, err error) {
	A, b, cells, err := g.AssembleLaplacian()
	if err != nil {
		return
	}
	X, err := A.ToMatrix().LUSolve(b.ToMatrix())
	if err != nil {
		return
	}
	for k, idx := range cells {
		g.U.Set(idx/g.Nc, idx%g.Nc, X.At(k, 0))
	}
	var r mat.VecDense
	r.MulVec(A.ToCSR(), X.Col(0).V)
	for k := 0; k < r.Len(); k++ {
		if d := math.Abs(b.AtVec(k) - r.AtVec(k)); d > resid {
			resid = d
		}
	}
	return
}

// JacobiSpectralRadius returns the largest magnitude eigenvalue of the Jacobi
// iteration matrix D^-1 * (D - A). For an n x n square of unknowns this is
// cos(pi/(n+1)), which governs the asymptotic convergence rate of all three
// relaxation sweeps.
func (g *Grid) JacobiSpectralRadius() (rho float64, err error) {
	Adok, _, _, err := g.AssembleLaplacian()
	if err != nil {
		return
	}
	var (
		A    = Adok.ToMatrix()
		n, _ = A.Dims()
		D    = utils.NewMatrix(n, n)
	)
	for k := 0; k < n; k++ {
		D.Set(k, k, A.At(k, k))
	}
	Dinv, err := D.Inverse()
	if err != nil {
		return
	}
	RJ := Dinv.Mul(D.Copy().Subtract(A))
	lambda := RJ.Eigenvalues()
	if lambda == nil {
		err = fmt.Errorf("eigendecomposition of the iteration matrix failed")
		return
	}
	rho = math.Max(math.Abs(lambda[0]), math.Abs(lambda[len(lambda)-1]))
	return
}

// OptimalOmega returns the SOR relaxation factor 2/(1+sqrt(1-rho^2)) that
// minimizes the spectral radius of the SOR iteration for this grid.
func (g *Grid) OptimalOmega() (omega float64, err error) {
	rho, err := g.JacobiSpectralRadius()
	if err != nil {
		return
	}
	if rho >= 1 {
		err = fmt.Errorf("jacobi iteration does not converge, rho = %v", rho)
		return
	}
	omega = 2 / (1 + math.Sqrt(1-rho*rho))
	return
}

// OperatorConditionNumber reports the 2-norm condition number of the
// assembled Laplacian via its singular values.
func (g *Grid) OperatorConditionNumber() (kappa float64, err error) {
	Adok, _, _, err := g.AssembleLaplacian()
	if err != nil {
		return
	}
	kappa = Adok.ToMatrix().ConditionNumber()
	return
}
