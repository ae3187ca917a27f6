/*
 * geometry_test.go, part of goic.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMolecule(Te *testing.T) {
	atoms := []string{"o", "H", "h"}
	coords := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	m, err := NewMolecule(atoms, coords)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"O", "H", "H"}, m.Atoms())
	assert.Equal(Te, 3, m.Len())
	coords[0] = 10
	assert.Equal(Te, 0.0, m.Coords()[0], "the coordinates must be copied")
	c := m.Coords()
	c[1] = 5
	assert.Equal(Te, 0.0, m.Coords()[1])
	assert.Equal(Te, 3, m.Coords3d().NVecs())
	assert.Equal(Te, 1.0, m.Coords3d().At(1, 0))

	cp := m.Copy()
	require.NoError(Te, cp.SetCoords([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3}))
	assert.Equal(Te, 0.0, m.Coords()[0])
	assert.Equal(Te, 3.0, cp.Coords()[8])
	assert.True(Te, errors.Is(cp.SetCoords([]float64{1}), ErrShape))
}

func TestNewMoleculeErrors(Te *testing.T) {
	_, err := NewMolecule([]string{"O", "H"}, []float64{0, 0, 0})
	assert.True(Te, errors.Is(err, ErrShape))
	_, err = NewMolecule(nil, nil)
	assert.True(Te, errors.Is(err, ErrShape))
	_, err = NewMoleculeAngstrom([]string{"Zz"}, []float64{0, 0, 0})
	assert.True(Te, errors.Is(err, ErrUnknownElement))
}

func TestErrorDecoration(Te *testing.T) {
	_, err := NewMoleculeAngstrom([]string{"Zz"}, []float64{0, 0, 0})
	var e *Error
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, []string{"CovalentRadius", "NewMolecule", "NewMoleculeAngstrom"}, e.Decorate(""))
	assert.Equal(Te, UnknownElement, e.Kind())
	assert.True(Te, e.Critical())
	assert.Contains(Te, e.Error(), "unknown element")
}
