/*
 * v3_test.go, part of goic.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
}

func TestFromFlatCopies(Te *testing.T) {
	data := []float64{1, 2, 3}
	A, err := FromFlat(data)
	require.NoError(Te, err)
	A.Set(0, 0, 10)
	assert.Equal(Te, 1.0, data[0])
	assert.Equal(Te, []float64{10, 2, 3}, A.Flat())
}

func TestCrossUnitDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{2, 0, 0})
	y, _ := NewMatrix([]float64{0, 3, 0})
	z := Zeros(1)
	z.Cross(x, y)
	assert.Equal(Te, []float64{0, 0, 6}, z.Flat())
	u := Zeros(1)
	n := u.Unit(z)
	assert.InDelta(Te, 6, n, 1e-12)
	assert.InDelta(Te, 1, u.Norm2(), 1e-12)
	assert.InDelta(Te, 0, x.Dot(y), 1e-12)
	zero := Zeros(1)
	assert.Equal(Te, 0.0, u.Unit(zero))
}

func TestSubVecDist(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 4, 5, 1})
	c, _ := NewMatrix([]float64{1, 1, 1})
	B := Zeros(2)
	B.SubVec(A, c)
	assert.Equal(Te, []float64{0, 0, 0, 3, 4, 0}, B.Flat())
	assert.InDelta(Te, 5, A.Dist(0, 1), 1e-12)
	B.SetVec(0, []float64{math.Pi, 0, 0})
	assert.Equal(Te, math.Pi, B.At(0, 0))
}

func TestPanics(Te *testing.T) {
	A := Zeros(2)
	assert.Panics(Te, func() { A.VecView(2) })
	assert.Panics(Te, func() { Zeros(0) })
	assert.Panics(Te, func() { A.SetVec(0, []float64{1}) })
}
