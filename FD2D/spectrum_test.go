package FD2D

import (
	"math"
	"testing"

	"github.com/notargets/gorelax/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleLaplacian(t *testing.T) {
	// 4x4 ring leaves a 2x2 block of unknowns
	g, _ := NewGrid(4, 4)
	g.SetBoundaryRing(1)
	A, b, cells, err := g.AssembleLaplacian()
	require.NoError(t, err)
	require.Len(t, cells, 4)
	for k := 0; k < 4; k++ {
		assert.Equal(t, 4.0, A.At(k, k))
		// Two fixed neighbors contribute to each RHS entry
		assert.Equal(t, 2.0, b.AtVec(k))
	}
	// Unknowns couple to exactly two other unknowns
	for k := 0; k < 4; k++ {
		var offDiag float64
		for l := 0; l < 4; l++ {
			if l != k {
				offDiag += A.At(k, l)
			}
		}
		assert.Equal(t, -2.0, offDiag)
	}

	// All cells fixed: nothing to solve
	g2, _ := NewGrid(2, 2)
	g2.SetBoundaryRing(0)
	_, _, _, err = g2.AssembleLaplacian()
	assert.Error(t, err)

	// Missing boundary ring: edge cells have no full neighbor set
	g3, _ := NewGrid(4, 4)
	_, _, _, err = g3.AssembleLaplacian()
	assert.Error(t, err)
}

func TestSolveDirect(t *testing.T) {
	var (
		buildGrid = func() (g *Grid) {
			g, _ = NewGrid(8, 8)
			g.SetBoundaryRing(0)
			// Hot top edge
			for j := 0; j < g.Nc; j++ {
				g.SetBoundary(0, j, 10)
			}
			return
		}
	)
	gd := buildGrid()
	resid, err := gd.SolveDirect()
	require.NoError(t, err)
	assert.Less(t, resid, utils.NODETOL)

	// The direct solution is the fixed point of the relaxation sweeps
	gi := buildGrid()
	r := gi.RunGaussSeidel(1.e-12, 1, 100000)
	require.Equal(t, Converged, r.Status)
	for i := 0; i < gd.Nr; i++ {
		for j := 0; j < gd.Nc; j++ {
			assert.InDelta(t, gd.U.At(i, j), gi.U.At(i, j), 1.e-8)
		}
	}
}

func TestJacobiSpectralRadius(t *testing.T) {
	// For an n x n interior the Jacobi iteration matrix has spectral radius
	// cos(pi/(n+1))
	for _, n := range []int{3, 8} {
		g, _ := NewGrid(n+2, n+2)
		g.SetBoundaryRing(0)
		rho, err := g.JacobiSpectralRadius()
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(math.Pi/float64(n+1)), rho, 1.e-10)
	}
}

func TestOptimalOmega(t *testing.T) {
	g, _ := NewGrid(10, 10)
	g.SetBoundaryRing(0)
	omega, err := g.OptimalOmega()
	require.NoError(t, err)
	rho := math.Cos(math.Pi / 9)
	assert.InDelta(t, 2/(1+math.Sqrt(1-rho*rho)), omega, 1.e-10)
	assert.Greater(t, omega, 1.0)
	assert.Less(t, omega, 2.0)

	// The predicted omega should beat plain Gauss-Seidel on the same problem
	gGS := testGrid(t, 10, 10, 10)
	rGS := gGS.RunGaussSeidel(1.e-6, 1, 10000)
	gSOR := testGrid(t, 10, 10, 10)
	rSOR := gSOR.RunSOR(omega, 1.e-6, 1, 10000)
	assert.Less(t, rSOR.Iterations, rGS.Iterations)
}

func TestOperatorConditionNumber(t *testing.T) {
	g, _ := NewGrid(10, 10)
	g.SetBoundaryRing(0)
	kappa, err := g.OperatorConditionNumber()
	require.NoError(t, err)
	// Eigenvalues of the 8x8 interior Laplacian are 4 - 2cos(p*pi/9) - 2cos(q*pi/9)
	lMin := 4 - 4*math.Cos(math.Pi/9)
	lMax := 4 + 4*math.Cos(math.Pi/9)
	assert.InDelta(t, lMax/lMin, kappa, 1.e-8)
}
