/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/notargets/gorelax/InputParameters"
	"github.com/notargets/gorelax/model_problems/Laplace2D"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type ModelRelax struct {
	ICFile     string
	Graph      bool
	Delay      time.Duration
	CrossCheck bool
	PlotFile   string
	HistFile   string
	Profile    bool
}

// RelaxCmd represents the relax command
var RelaxCmd = &cobra.Command{
	Use:   "relax",
	Short: "Relaxation solution of the 2D Laplace boundary value problem",
	Long: `
Builds a rectangular grid with the perimeter held at a fixed value, seeds the
interior randomly and relaxes it to steady state with the selected solver,

gorelax relax -I laplace.yml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			mr  = &ModelRelax{}
		)
		fmt.Println("relax called")
		if mr.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mr.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mr.Delay = time.Duration(dr) * time.Millisecond
		mr.CrossCheck, _ = cmd.Flags().GetBool("check")
		mr.PlotFile, _ = cmd.Flags().GetString("plotFile")
		mr.HistFile, _ = cmd.Flags().GetString("historyFile")
		mr.Profile, _ = cmd.Flags().GetBool("profile")
		rp := processInput(mr)
		overrideFromFlags(cmd, rp)
		RunRelax(mr, rp)
	},
}

func processInput(mr *ModelRelax) (rp *InputParameters.RelaxationParameters) {
	rp = &InputParameters.RelaxationParameters{}
	if len(mr.ICFile) == 0 {
		return
	}
	data, err := os.ReadFile(mr.ICFile)
	if err != nil {
		panic(err)
	}
	if err = rp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func overrideFromFlags(cmd *cobra.Command, rp *InputParameters.RelaxationParameters) {
	if cmd.Flags().Changed("solver") {
		rp.Solver, _ = cmd.Flags().GetString("solver")
	}
	if cmd.Flags().Changed("rows") {
		rp.Rows, _ = cmd.Flags().GetInt("rows")
	}
	if cmd.Flags().Changed("cols") {
		rp.Cols, _ = cmd.Flags().GetInt("cols")
	}
	if cmd.Flags().Changed("omega") {
		rp.Omega, _ = cmd.Flags().GetFloat64("omega")
	}
	if cmd.Flags().Changed("tolerance") {
		rp.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
	}
	if cmd.Flags().Changed("maxIterations") {
		rp.MaxIterations, _ = cmd.Flags().GetInt("maxIterations")
	}
	if cmd.Flags().Changed("bcValue") {
		rp.BCValue, _ = cmd.Flags().GetFloat64("bcValue")
	}
	if cmd.Flags().Changed("seed") {
		rp.Seed, _ = cmd.Flags().GetUint64("seed")
	}
}

func RunRelax(mr *ModelRelax, rp *InputParameters.RelaxationParameters) {
	if mr.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	c, err := Laplace2D.NewLaplace(rp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	rp.Print()
	c.Run(mr.Graph, mr.Delay)
	if mr.CrossCheck {
		if _, err = c.CrossCheck(); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	if len(mr.PlotFile) != 0 {
		if err = c.SaveHeatMap(mr.PlotFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	if len(mr.HistFile) != 0 {
		if err = c.SaveConvergenceHistory(mr.HistFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
}

func init() {
	rootCmd.AddCommand(RelaxCmd)
	RelaxCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Solver\n\t- Omega\n\t- Tolerance")
	RelaxCmd.Flags().StringP("solver", "m", "GaussSeidel", "solver to run: Jacobi, GaussSeidel or SOR")
	RelaxCmd.Flags().IntP("rows", "r", 10, "number of grid rows")
	RelaxCmd.Flags().IntP("cols", "c", 10, "number of grid columns")
	RelaxCmd.Flags().Float64P("omega", "w", 0, "SOR relaxation factor, 0 = predicted optimum")
	RelaxCmd.Flags().Float64("tolerance", 1.e-6, "max delta below which the sweep is converged")
	RelaxCmd.Flags().Int("maxIterations", 10000, "iteration cap - hitting it is reported, not fatal")
	RelaxCmd.Flags().Float64("bcValue", 10, "Dirichlet value held on the perimeter ring")
	RelaxCmd.Flags().Uint64("seed", 42, "seed for the interior initialization")
	RelaxCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	RelaxCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	RelaxCmd.Flags().Bool("check", false, "cross check the relaxed field against a direct LU solve")
	RelaxCmd.Flags().String("plotFile", "", "write a PNG heat map of the final field")
	RelaxCmd.Flags().String("historyFile", "", "write a PNG of the residual history")
	RelaxCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}
