/*
 * rho_test.go, part of goic.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProximityWeights(Te *testing.T) {
	m := water(Te)
	rho, err := ProximityWeights(m.Atoms(), m.Coords3d())
	require.NoError(Te, err)
	assert.Equal(Te, 3, rho.SymmetricDim())
	for i := 0; i < 3; i++ {
		assert.Equal(Te, 0.0, rho.At(i, i))
		for j := 0; j < 3; j++ {
			assert.Equal(Te, rho.At(i, j), rho.At(j, i))
		}
	}
	rO, _ := CovalentRadius("O")
	rH, _ := CovalentRadius("H")
	c := m.Coords3d()
	d := c.Dist(0, 1)
	ref := rO + rH
	assert.InDelta(Te, math.Exp(0.3949*(ref*ref-d*d)), rho.At(0, 1), 1e-12)
	d = c.Dist(1, 2)
	assert.InDelta(Te, math.Exp(1.0*(4*rH*rH-d*d)), rho.At(1, 2), 1e-12)
	//bonded pairs weigh more than non bonded ones
	assert.Greater(Te, rho.At(0, 1), rho.At(1, 2))

	R, err := NewRedundant(m, nil)
	require.NoError(Te, err)
	assert.Equal(Te, rho.At(0, 2), R.Rho().At(0, 2))
}

func TestProximityWeightsHeavy(Te *testing.T) {
	m, err := NewMolecule([]string{"C", "Br"}, []float64{0, 0, 0, 0, 0, 3.6})
	require.NoError(Te, err)
	rho, err := ProximityWeights(m.Atoms(), m.Coords3d())
	require.NoError(Te, err)
	rC, _ := CovalentRadius("C")
	rBr, _ := CovalentRadius("Br")
	ref := rC + rBr
	assert.InDelta(Te, math.Exp(0.28*(ref*ref-3.6*3.6)), rho.At(1, 0), 1e-12)
}

func TestElementData(Te *testing.T) {
	r, err := CovalentRadius("cl")
	require.NoError(Te, err)
	assert.InDelta(Te, 1.02*A2Bohr, r, 1e-12)
	p, err := Period(" NA")
	require.NoError(Te, err)
	assert.Equal(Te, 3, p)
	p, err = Period("He")
	require.NoError(Te, err)
	assert.Equal(Te, 1, p)
	_, err = Period("Qq")
	assert.Error(Te, err)
	assert.InDelta(Te, 1.0, A2Bohr*Bohr2A, 1e-15)
	assert.InDelta(Te, 180.0, math.Pi*Rad2Deg, 1e-12)
}
