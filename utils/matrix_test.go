package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.RawMatrix().Data, []float64{1, 4, 2, 5, 3, 6})
	}
	// Copy is independent of the source
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := M.Copy()
		A.Set(0, 0, 99)
		assert.Equal(t, 1.0, M.At(0, 0))
		assert.Equal(t, 99.0, A.At(0, 0))
	}
	// Chained elementwise ops
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		M.Scale(2).AddScalar(-1)
		assert.Equal(t, M.RawMatrix().Data, []float64{1, 3, 5, 7})
		M.Apply(math.Abs)
		assert.Equal(t, 7.0, M.Max())
		assert.Equal(t, 1.0, M.Min())
	}
	// Add / Subtract
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := NewMatrix(2, 2, []float64{4, 3, 2, 1})
		M.Add(A)
		assert.Equal(t, M.RawMatrix().Data, []float64{5, 5, 5, 5})
		M.Subtract(A)
		assert.Equal(t, M.RawMatrix().Data, []float64{1, 2, 3, 4})
	}
	// Row and Col views
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, M.Row(1).RawVector().Data, []float64{4, 5, 6})
		assert.Equal(t, M.Col(2).RawVector().Data, []float64{3, 6})
	}
	// Mul
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		I := NewMatrix(2, 2, []float64{1, 0, 0, 1})
		assert.Equal(t, M.Mul(I).RawMatrix().Data, M.RawMatrix().Data)
	}
	// ReadOnly guard
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
	}
}

func TestMatrixSolvers(t *testing.T) {
	// Inverse
	{
		M := NewMatrix(2, 2, []float64{4, 7, 2, 6})
		R, err := M.Inverse()
		assert.NoError(t, err)
		P := M.Mul(R)
		assert.InDelta(t, 1, P.At(0, 0), NODETOL)
		assert.InDelta(t, 0, P.At(0, 1), NODETOL)
		assert.InDelta(t, 0, P.At(1, 0), NODETOL)
		assert.InDelta(t, 1, P.At(1, 1), NODETOL)
	}
	// Singular matrix
	{
		M := NewMatrix(2, 2, []float64{1, 2, 2, 4})
		_, err := M.Inverse()
		assert.Error(t, err)
	}
	// LUSolve
	{
		A := NewMatrix(2, 2, []float64{3, 1, 1, 2})
		B := NewMatrix(2, 1, []float64{9, 8})
		X, err := A.LUSolve(B)
		assert.NoError(t, err)
		assert.InDelta(t, 2, X.At(0, 0), NODETOL)
		assert.InDelta(t, 3, X.At(1, 0), NODETOL)
		// B untouched
		assert.Equal(t, B.RawMatrix().Data, []float64{9, 8})
	}
	// Eigenvalues of a diagonal matrix
	{
		M := NewMatrix(3, 3, []float64{
			3, 0, 0,
			0, 1, 0,
			0, 0, 2,
		})
		lambda := M.Eigenvalues()
		assert.InDeltaSlice(t, []float64{1, 2, 3}, lambda, NODETOL)
	}
	// Condition number and singular values
	{
		M := NewMatrix(2, 2, []float64{2, 0, 0, 1})
		min, max := M.SingularValues()
		assert.InDelta(t, 1, min, NODETOL)
		assert.InDelta(t, 2, max, NODETOL)
		assert.InDelta(t, 2, M.ConditionNumber(), NODETOL)
	}
}

func TestVector(t *testing.T) {
	{
		V := NewVector(3, []float64{1, -2, 3})
		assert.Equal(t, 3, V.Len())
		assert.Equal(t, -2.0, V.AtVec(1))
		assert.Equal(t, 3.0, V.Max())
		assert.Equal(t, -2.0, V.Min())
	}
	{
		V := NewVector(3, []float64{1, -2, 3})
		V.Apply(math.Abs).Add(1)
		assert.Equal(t, V.RawVector().Data, []float64{2, 3, 4})
	}
	{
		V := NewVector(2, []float64{5, 7})
		W := V.Copy()
		W.Add(1)
		assert.Equal(t, V.RawVector().Data, []float64{5, 7})
		M := V.ToMatrix()
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 1, nc)
	}
	{
		V := NewVector(2, []float64{5, 7})
		V.Sub(NewVector(2, []float64{1, 2}))
		assert.Equal(t, V.RawVector().Data, []float64{4, 5})
	}
}

func TestDOK(t *testing.T) {
	{
		A := NewDOK(3, 3)
		A.Set(0, 0, 4).Set(0, 1, -1).Set(2, 2, 4)
		assert.Equal(t, 4.0, A.At(0, 0))
		assert.Equal(t, -1.0, A.At(0, 1))
		assert.Equal(t, 0.0, A.At(1, 1))
		D := A.ToMatrix()
		assert.Equal(t, 4.0, D.At(2, 2))
		assert.Equal(t, 0.0, D.At(1, 0))
	}
	// Out of range indices panic
	{
		A := NewDOK(2, 2)
		assert.Panics(t, func() { A.Set(2, 0, 1) })
	}
	// CSR conversion preserves entries
	{
		A := NewDOK(2, 2)
		A.Set(0, 0, 1).Set(1, 1, 2)
		csr := A.ToCSR()
		assert.Equal(t, 1.0, csr.At(0, 0))
		assert.Equal(t, 2.0, csr.At(1, 1))
	}
}
