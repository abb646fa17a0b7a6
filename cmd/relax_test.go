package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/notargets/gorelax/InputParameters"
	"github.com/notargets/gorelax/model_problems/Laplace2D"
)

func TestRunRelax(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Solver: SOR
Rows: 8
Cols: 8
BCValue: 10.0
InitMax: 10.0
Seed: 42
Omega: 1.5
Tolerance: 1.0e-6
MaxIterations: 10000
PlotSteps: 25
`)
	var input InputParameters.RelaxationParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Solver, "SOR")
	assert.Equal(t, input.Omega, 1.5)
	assert.Equal(t, input.Tolerance, 1.e-6)
	input.Print()

	c, err := Laplace2D.NewLaplace(&input)
	if err != nil {
		panic(err)
	}
	c.Run(false)
	assert.Equal(t, c.Result.Status.String(), "Converged")
}
