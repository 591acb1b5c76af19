/*
 * v3.go, part of gaussian-wranger.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

// Package v3 handles sets of vectors in 3D space. A "vector" is a row of
// the underlying gonum matrix, i.e. the Cartesian coordinates of one
// point. The package makes no assumption about units.
package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space, implemented over a gonum
// dense matrix with 3 columns.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates a Matrix with 3 columns from data, which is read
// in row-major order. The length of data must be divisible by 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("v3: input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vectors in the Matrix.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// SomeVecs returns a new Matrix with copies of the vectors of F in the
// positions given by indexes, in order.
func (F *Matrix) SomeVecs(indexes []int) (*Matrix, error) {
	nvecs := F.NVecs()
	ret := Zeros(len(indexes))
	for k, j := range indexes {
		if j < 0 || j >= nvecs {
			return nil, Error{fmt.Sprintf("v3: vector %d (position %d) out of range", j, k), []string{"SomeVecs"}, true}
		}
		ret.SetVec(k, F.RawRowView(j))
	}
	return ret, nil
}

// SetVec sets the ith vector of F to the first 3 elements of coords.
func (F *Matrix) SetVec(i int, coords []float64) {
	if len(coords) < 3 {
		panic(ErrNotXx3Matrix)
	}
	for k := 0; k < 3; k++ {
		F.Set(i, k, coords[k])
	}
}

// Dist returns the Euclidean distance between vectors i and j of the
// Matrix. It does not allocate.
func (F *Matrix) Dist(i, j int) float64 {
	var tot float64
	for k := 0; k < 3; k++ {
		d := F.At(i, k) - F.At(j, k)
		tot += d * d
	}
	return math.Sqrt(tot)
}

// Copy returns a copy of the Matrix.
func (F *Matrix) Copy() *Matrix {
	ret := Zeros(F.NVecs())
	ret.Dense.Copy(F.Dense)
	return ret
}
