package utils

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDThin) {
		// SVD failure indicates poor conditioning
		return 1e16
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 1e16
	}
	// Singular values arrive in descending order
	minVal := values[len(values)-1]
	maxVal := values[0]
	if minVal < 1e-16 {
		return 1e16
	}
	return maxVal / minVal
}

// Eigenvalues returns the sorted real parts of the eigenvalues of a square matrix.
func (m Matrix) Eigenvalues() []float64 {
	rows, cols := m.Dims()
	if rows != cols {
		panic("Eigenvalues only defined for square matrices")
	}
	var eigen mat.Eigen
	if !eigen.Factorize(m.M, mat.EigenRight) {
		return nil
	}
	values := eigen.Values(nil)
	realValues := make([]float64, len(values))
	for i, val := range values {
		realValues[i] = real(val)
	}
	sort.Float64s(realValues)
	return realValues
}

func (m Matrix) SingularValues() (min, max float64) {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDThin) {
		return 0, 1e16
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, 1e16
	}
	return values[len(values)-1], values[0]
}
