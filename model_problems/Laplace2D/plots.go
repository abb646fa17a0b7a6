package Laplace2D

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// fieldGrid adapts the relaxation grid to the plotter.GridXYZ interface.
// Rows grow upward in the heat map, so row i maps to Y = Nr-1-i.
type fieldGrid struct {
	c *Laplace
}

func (fg fieldGrid) Dims() (nc, nr int) { return fg.c.Grid.Nc, fg.c.Grid.Nr }
func (fg fieldGrid) Z(j, i int) float64 { return fg.c.Grid.U.At(fg.c.Grid.Nr-1-i, j) }
func (fg fieldGrid) X(j int) float64    { return float64(j) }
func (fg fieldGrid) Y(i int) float64    { return float64(i) }

// SaveHeatMap writes a color map of the current field to a PNG file.
func (c *Laplace) SaveHeatMap(fileName string) (err error) {
	p := plot.New()
	p.Title.Text = c.Params.Title
	p.X.Label.Text = "j"
	p.Y.Label.Text = "i"
	hm := plotter.NewHeatMap(fieldGrid{c}, palette.Heat(16, 1))
	p.Add(hm)
	return p.Save(6*vg.Inch, 6*vg.Inch, fileName)
}

// SaveConvergenceHistory writes the per-chunk residual history to a PNG file.
func (c *Laplace) SaveConvergenceHistory(fileName string) (err error) {
	p := plot.New()
	p.Title.Text = c.Params.Title
	p.X.Label.Text = "Sweep chunk"
	p.Y.Label.Text = "Max delta"
	pts := make(plotter.XYs, 0, len(c.History))
	for n, delta := range c.History {
		pts = append(pts, plotter.XY{X: float64(n + 1), Y: delta})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(c.Solver.String(), line)
	return p.Save(8*vg.Inch, 4*vg.Inch, fileName)
}
