package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *DOK) SetWritable() DOK {
	m.readOnly = false
	return *m
}

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	if i < 0 || i >= nr || j < 0 || j >= nc {
		err := fmt.Errorf("index out of bounds: i,j = %v,%v, nr,nc = %v,%v", i, j, nr, nc)
		panic(err)
	}
	m.M.Set(i, j, val)
	return m
}

func (m DOK) ToCSR() *sparse.CSR {
	return m.M.ToCSR()
}

// ToMatrix expands the sparse matrix into a dense Matrix.
func (m DOK) ToMatrix() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	m.M.DoNonZero(func(i, j int, val float64) {
		R.M.Set(i, j, val)
	})
	return
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
