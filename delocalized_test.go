/*
 * delocalized_test.go, part of goic.
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

package ic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestDelocalizedDOF(Te *testing.T) {
	for name, m := range map[string]*Molecule{
		"water":   water(Te),
		"hooh":    hooh(Te),
		"ammonia": ammonia(Te),
		"dimer":   waterDimer(Te, 3),
	} {
		Te.Run(name, func(Te *testing.T) {
			D, err := NewDelocalized(m, nil)
			require.NoError(Te, err)
			n := m.Len()
			assert.Equal(Te, 3*n-6, D.Len())
			r, c := D.B().Dims()
			assert.Equal(Te, []int{3*n - 6, 3 * n}, []int{r, c})
			r, c = D.BInv().Dims()
			assert.Equal(Te, []int{3*n - 6, 3 * n}, []int{r, c})
			r, c = D.U().Dims()
			assert.Equal(Te, []int{D.Redundant().Len(), 3*n - 6}, []int{r, c})
			for _, w := range D.Eigenvalues() {
				assert.Greater(Te, math.Abs(w), 1e-6)
			}
			//the active vectors are orthonormal.
			var UtU mat.Dense
			UtU.Mul(D.U().T(), D.U())
			assert.True(Te, mat.EqualApprox(&UtU, eye(3*n-6), 1e-10))
		})
	}
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}

func TestDelocalizedLinear(Te *testing.T) {
	_, err := NewDelocalized(acetylene(Te), nil)
	require.Error(Te, err)
	var derr *DOFError
	require.True(Te, errors.As(err, &derr))
	assert.Equal(Te, 5, derr.Found)
	assert.Equal(Te, 6, derr.Expected)
	assert.Equal(Te, 4, derr.Atoms)
	assert.True(Te, errors.Is(err, ErrDOFMismatch))
}

func TestDelocalizedValues(Te *testing.T) {
	m := hooh(Te)
	D, err := NewDelocalized(m, nil)
	require.NoError(Te, err)
	s, err := D.Values(m.Coords())
	require.NoError(Te, err)
	q, err := D.Redundant().Values(m.Coords())
	require.NoError(Te, err)
	//U is square and orthogonal here, so q = U*s
	var back mat.VecDense
	back.MulVec(D.U(), mat.NewVecDense(len(s), s))
	assert.InDeltaSlice(Te, q, back.RawVector().Data, 1e-10)
}

func TestDelocalizedBackTransform(Te *testing.T) {
	m := ammonia(Te)
	D, err := NewDelocalized(m, nil)
	require.NoError(Te, err)
	s0, err := D.Values(m.Coords())
	require.NoError(Te, err)
	ds := []float64{0.01, -0.02, 0.01, 0.015, -0.01, 0.02}
	res, err := D.BackTransform(ds)
	require.NoError(Te, err)
	require.True(Te, res.Converged)
	s, err := D.Values(res.Coords)
	require.NoError(Te, err)
	floats.Sub(s, s0)
	assert.InDeltaSlice(Te, ds, s, 1e-5)

	_, err = D.BackTransform(ds[:2])
	assert.Error(Te, err)

	g, err := D.InternalGradient(make([]float64, 3*m.Len()))
	require.NoError(Te, err)
	assert.Len(Te, g, 6)
}
