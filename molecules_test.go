/*
 * molecules_test.go, part of goic.
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

	v3 "github.com/rmera/goic/v3"
	"github.com/stretchr/testify/require"
)

// Test structures, built in A.

func water(Te *testing.T) *Molecule {
	Te.Helper()
	r, a := 0.96, 104.5*Deg2Rad
	m, err := NewMoleculeAngstrom([]string{"O", "H", "H"}, []float64{
		0, 0, 0,
		r, 0, 0,
		r * math.Cos(a), r * math.Sin(a), 0,
	})
	require.NoError(Te, err)
	return m
}

// hooh is hydrogen peroxide with the atoms along the chain H-O-O-H,
// and a dihedral of 111.5 degrees.
func hooh(Te *testing.T) *Molecule {
	Te.Helper()
	oo, oh := 1.475, 0.95
	t, ph := 94.8*Deg2Rad, 111.5*Deg2Rad
	m, err := NewMoleculeAngstrom([]string{"H", "O", "O", "H"}, []float64{
		oh * math.Cos(t), oh * math.Sin(t), 0,
		0, 0, 0,
		oo, 0, 0,
		oo - oh*math.Cos(t), oh * math.Sin(t) * math.Cos(ph), oh * math.Sin(t) * math.Sin(ph),
	})
	require.NoError(Te, err)
	return m
}

func ammonia(Te *testing.T) *Molecule {
	Te.Helper()
	nh, hnh := 1.012, 106.67*Deg2Rad
	th := math.Asin(2 * math.Sin(hnh/2) / math.Sqrt(3))
	c := []float64{0, 0, 0}
	for k := 0; k < 3; k++ {
		phi := float64(120*k) * Deg2Rad
		c = append(c, nh*math.Sin(th)*math.Cos(phi), nh*math.Sin(th)*math.Sin(phi), -nh*math.Cos(th))
	}
	m, err := NewMoleculeAngstrom([]string{"N", "H", "H", "H"}, c)
	require.NoError(Te, err)
	return m
}

func acetylene(Te *testing.T) *Molecule {
	Te.Helper()
	m, err := NewMoleculeAngstrom([]string{"H", "C", "C", "H"}, []float64{
		0, 0, -1.66,
		0, 0, -0.60,
		0, 0, 0.60,
		0, 0, 1.66,
	})
	require.NoError(Te, err)
	return m
}

// waterDimer returns two water molecules with their oxygens d A apart.
func waterDimer(Te *testing.T, d float64) *Molecule {
	Te.Helper()
	w := water(Te).Coords()
	c := append([]float64{}, w...)
	for i := 0; i < 3; i++ {
		c = append(c, w[3*i], w[3*i+1], w[3*i+2]+d*A2Bohr)
	}
	m, err := NewMolecule([]string{"O", "H", "H", "O", "H", "H"}, c)
	require.NoError(Te, err)
	return m
}

// numGrad returns the central finite-difference gradient of c.
func numGrad(c Coord, flat []float64) []float64 {
	const h = 1e-5
	ret := make([]float64, len(flat))
	x := append([]float64{}, flat...)
	for i := range x {
		x[i] = flat[i] + h
		p, _ := v3.NewMatrix(x)
		vp := c.Eval(p, nil)
		x[i] = flat[i] - h
		vm := c.Eval(p, nil)
		x[i] = flat[i]
		ret[i] = (vp - vm) / (2 * h)
	}
	return ret
}
