package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type RelaxationParameters struct {
	Title         string  `yaml:"Title"`
	Solver        string  `yaml:"Solver"` // Jacobi, GaussSeidel or SOR
	Rows          int     `yaml:"Rows"`
	Cols          int     `yaml:"Cols"`
	BCValue       float64 `yaml:"BCValue"` // Dirichlet value on the perimeter ring
	InitMin       float64 `yaml:"InitMin"`
	InitMax       float64 `yaml:"InitMax"`
	Seed          uint64  `yaml:"Seed"`
	Omega         float64 `yaml:"Omega"` // SOR relaxation factor, 0 = use predicted optimum
	Tolerance     float64 `yaml:"Tolerance"`
	MinIterations int     `yaml:"MinIterations"`
	MaxIterations int     `yaml:"MaxIterations"`
	PlotSteps     int     `yaml:"PlotSteps"` // Sweeps between residual reports / plot frames
}

func (rp *RelaxationParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RelaxationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t= Solver\n", rp.Solver)
	fmt.Printf("[%d x %d]\t\t= Grid\n", rp.Rows, rp.Cols)
	fmt.Printf("%8.5f\t\t= BCValue\n", rp.BCValue)
	fmt.Printf("%8.5f\t\t= Omega\n", rp.Omega)
	fmt.Printf("%8.1e\t\t= Tolerance\n", rp.Tolerance)
	fmt.Printf("[%d]\t\t\t= MaxIterations\n", rp.MaxIterations)
}
