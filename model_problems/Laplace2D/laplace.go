package Laplace2D

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/gorelax/FD2D"
	"github.com/notargets/gorelax/InputParameters"
)

type SolverType uint8

const (
	Jacobi SolverType = iota
	GaussSeidel
	SOR
)

var solverNames = map[string]SolverType{
	"Jacobi":      Jacobi,
	"GaussSeidel": GaussSeidel,
	"SOR":         SOR,
}

func NewSolverType(label string) SolverType {
	if st, ok := solverNames[label]; ok {
		return st
	}
	err := fmt.Errorf("unable to use solver named %s", label)
	panic(err)
}

func (st SolverType) String() string {
	switch st {
	case Jacobi:
		return "Jacobi"
	case GaussSeidel:
		return "GaussSeidel"
	case SOR:
		return "SOR"
	}
	return "Unknown"
}

// Laplace drives one of the three relaxation sweeps over a rectangular grid
// with the perimeter ring held at a fixed boundary value.
type Laplace struct {
	Params   *InputParameters.RelaxationParameters
	Grid     *FD2D.Grid
	Solver   SolverType
	Omega    float64
	Result   FD2D.SolveResult
	History  []float64 // Max delta at the end of each reporting chunk
	PlotOnce sync.Once
	chart    *chart2d.Chart2D
	colorMap *utils2.ColorMap
}

func NewLaplace(rp *InputParameters.RelaxationParameters) (c *Laplace, err error) {
	applyDefaults(rp)
	g, err := FD2D.NewGrid(rp.Rows, rp.Cols)
	if err != nil {
		return
	}
	g.SetBoundaryRing(rp.BCValue)
	g.InitializeInterior(rp.InitMin, rp.InitMax, rand.New(rand.NewPCG(rp.Seed, rp.Seed)))
	c = &Laplace{
		Params: rp,
		Grid:   g,
		Solver: NewSolverType(rp.Solver),
		Omega:  rp.Omega,
	}
	if c.Solver == SOR && c.Omega == 0 {
		// Predict the optimal relaxation factor from the Jacobi spectral radius
		if c.Omega, err = g.OptimalOmega(); err != nil {
			return
		}
		fmt.Printf("using predicted optimal omega = %8.5f\n", c.Omega)
	}
	return
}

func applyDefaults(rp *InputParameters.RelaxationParameters) {
	if rp.Rows == 0 {
		rp.Rows = 10
	}
	if rp.Cols == 0 {
		rp.Cols = 10
	}
	if rp.Tolerance == 0 {
		rp.Tolerance = 1.e-6
	}
	if rp.MinIterations == 0 {
		rp.MinIterations = 1
	}
	if rp.MaxIterations == 0 {
		rp.MaxIterations = 10000
	}
	if rp.PlotSteps == 0 {
		rp.PlotSteps = 25
	}
	if rp.Solver == "" {
		rp.Solver = "GaussSeidel"
	}
}

// Run iterates the configured solver in PlotSteps sized chunks so residual
// progress can be reported and plotted between chunks. Chunking does not
// change the sweep sequence - each chunk resumes from the field the previous
// one left behind.
func (c *Laplace) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		rp    = c.Params
		total = 0
	)
	for total < rp.MaxIterations {
		steps := rp.PlotSteps
		if total+steps > rp.MaxIterations {
			steps = rp.MaxIterations - total
		}
		minIter := rp.MinIterations - total
		if minIter < 0 {
			minIter = 0
		}
		var r FD2D.SolveResult
		switch c.Solver {
		case Jacobi:
			r = c.Grid.RunJacobi(rp.Tolerance, minIter, steps)
		case GaussSeidel:
			r = c.Grid.RunGaussSeidel(rp.Tolerance, minIter, steps)
		case SOR:
			r = c.Grid.RunSOR(c.Omega, rp.Tolerance, minIter, steps)
		}
		total += r.Iterations
		c.History = append(c.History, r.MaxDelta)
		c.Result = FD2D.SolveResult{Status: r.Status, Iterations: total, MaxDelta: r.MaxDelta}
		fmt.Printf("iter = %5d, max_delta = %10.3e, umin = %8.4f, umax = %8.4f\n",
			total, r.MaxDelta, c.Grid.U.Min(), c.Grid.U.Max())
		c.Plot(showGraph, graphDelay)
		if r.Status == FD2D.Converged {
			break
		}
	}
	fmt.Printf("%s: %s after %d iterations, final max_delta = %10.3e\n",
		c.Solver, c.Result.Status, c.Result.Iterations, c.Result.MaxDelta)
}

// CrossCheck solves the same boundary value problem directly by dense LU
// factorization and reports how far the relaxed field is from it, along with
// the condition number of the assembled operator.
func (c *Laplace) CrossCheck() (maxDiff float64, err error) {
	var (
		rp = c.Params
	)
	gd, err := FD2D.NewGrid(rp.Rows, rp.Cols)
	if err != nil {
		return
	}
	gd.SetBoundaryRing(rp.BCValue)
	resid, err := gd.SolveDirect()
	if err != nil {
		return
	}
	for i := 0; i < gd.Nr; i++ {
		for j := 0; j < gd.Nc; j++ {
			if diff := math.Abs(c.Grid.U.At(i, j) - gd.U.At(i, j)); diff > maxDiff {
				maxDiff = diff
			}
		}
	}
	kappa, err := gd.OperatorConditionNumber()
	if err != nil {
		return
	}
	fmt.Printf("direct LU residual = %10.3e, max |iterative - direct| = %10.3e, cond(A) = %8.2f\n",
		resid, maxDiff, kappa)
	return
}

// Plot shows the mid-row profile of the field while the solution evolves.
func (c *Laplace) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		g          = c.Grid
		rp         = c.Params
		pMin, pMax = float32(rp.InitMin), float32(rp.InitMax)
	)
	if !showGraph {
		return
	}
	if float32(rp.BCValue) > pMax {
		pMax = float32(rp.BCValue)
	}
	if float32(rp.BCValue) < pMin {
		pMin = float32(rp.BCValue)
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, 0, float32(g.Nc-1), pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})
	x := make([]float64, g.Nc)
	for j := range x {
		x[j] = float64(j)
	}
	if err := c.chart.AddSeries("U", x, g.U.Row(g.Nr/2).RawVector().Data,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
