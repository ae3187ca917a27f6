/*
 * matrix.go, part of goic.
 *
 * Copyright 2024 Raul Mera rauldotmeraatusachdotcl
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space. Within the package a "vector"
// is a row, i.e. the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	if vecs <= 0 {
		panic(ErrShape)
	}
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

// NewMatrix returns a Matrix with 3 columns using data as backing
// storage. data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// FromFlat copies data, which must contain 3N elements, into a new Matrix.
func FromFlat(data []float64) (*Matrix, error) {
	c := make([]float64, len(data))
	copy(c, data)
	return NewMatrix(c)
}

// Dense2Matrix wraps A, which must have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NVecs returns the number of vectors (rows) in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of F. Changes in the view
// are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)}
}

// Flat returns a copy of the data in F, row after row.
func (F *Matrix) Flat() []float64 {
	r := F.NVecs()
	ret := make([]float64, 0, r*cols)
	for i := 0; i < r; i++ {
		ret = append(ret, F.RawRowView(i)...)
	}
	return ret
}

// Dot returns the dot product between the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	return floats.Dot(F.RawRowView(0), B.RawRowView(0))
}

// Norm2 returns the euclidean norm of the first vector of F.
func (F *Matrix) Norm2() float64 {
	return floats.Norm(F.RawRowView(0), 2)
}

// Cross puts the cross product of the first vecs of a and b in the first vec of F.
// F must not be a or b.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	x, y := a.RawRowView(0), b.RawRowView(0)
	f := F.RawRowView(0)
	f[0] = x[1]*y[2] - x[2]*y[1]
	f[1] = x[2]*y[0] - x[0]*y[2]
	f[2] = x[0]*y[1] - x[1]*y[0]
}

// Unit puts in F the first vector of A divided by its norm, and returns
// that norm. A zero vector is copied unchanged and 0 is returned.
func (F *Matrix) Unit(A *Matrix) float64 {
	f := F.RawRowView(0)
	copy(f, A.RawRowView(0))
	norm := floats.Norm(f, 2)
	if norm == 0 {
		return 0
	}
	floats.Scale(1/norm, f)
	return norm
}

// SubVec subtracts the vector vec from each vector of A, putting the
// result in F.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar != fr {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < ar; i++ {
		floats.SubTo(F.RawRowView(i), A.RawRowView(i), v)
	}
}

// SetVec sets the ith vector of F to the first 3 elements of v.
func (F *Matrix) SetVec(i int, v []float64) {
	if len(v) < cols {
		panic(ErrNotEnoughElements)
	}
	copy(F.VecView(i).RawRowView(0), v[:cols])
}

// Dist returns the distance between the ith and jth vectors of F.
func (F *Matrix) Dist(i, j int) float64 {
	a, b := F.RawRowView(i), F.RawRowView(j)
	return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
}

// String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf(" %8.4f %8.4f %8.4f", row[0], row[1], row[2]))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}
