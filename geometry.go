/*
 * geometry.go, part of goic.
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
	v3 "github.com/rmera/goic/v3"
)

// Geometry is what the package needs from a molecular structure: the
// element symbols, the flat cartesian coordinates (3N, in bohr) and a way
// of setting new coordinates.
type Geometry interface {
	//Atoms returns the element symbols, one per atom.
	Atoms() []string

	//Coords returns the flat cartesian coordinates, x1,y1,z1,x2...
	Coords() []float64

	//SetCoords replaces the coordinates. It should fail if the
	//length of c does not match the number of atoms.
	SetCoords(c []float64) error
}

// Molecule is a simple Geometry.
type Molecule struct {
	atoms  []string
	coords []float64
}

// NewMolecule returns a Molecule with the given atoms and flat coordinates,
// in bohr. Both slices are copied. All the elements must be known.
func NewMolecule(atoms []string, coords []float64) (*Molecule, error) {
	if len(atoms) == 0 || len(coords) != 3*len(atoms) {
		return nil, newError(ShapeMismatch, "NewMolecule", "%d coordinates given for %d atoms", len(coords), len(atoms))
	}
	M := &Molecule{atoms: make([]string, len(atoms)), coords: make([]float64, len(coords))}
	for i, v := range atoms {
		if _, err := CovalentRadius(v); err != nil {
			return nil, errDecorate(err, "NewMolecule")
		}
		M.atoms[i] = normalizeSymbol(v)
	}
	copy(M.coords, coords)
	return M, nil
}

// NewMoleculeAngstrom is like NewMolecule, but the coordinates are
// given in A and converted to bohr.
func NewMoleculeAngstrom(atoms []string, coords []float64) (*Molecule, error) {
	c := make([]float64, len(coords))
	for i, v := range coords {
		c[i] = v * A2Bohr
	}
	M, err := NewMolecule(atoms, c)
	if err != nil {
		return nil, errDecorate(err, "NewMoleculeAngstrom")
	}
	return M, nil
}

// Atoms returns a copy of the element symbols of M.
func (M *Molecule) Atoms() []string {
	ret := make([]string, len(M.atoms))
	copy(ret, M.atoms)
	return ret
}

// Coords returns a copy of the flat coordinates of M.
func (M *Molecule) Coords() []float64 {
	ret := make([]float64, len(M.coords))
	copy(ret, M.coords)
	return ret
}

// SetCoords copies c into the coordinates of M.
func (M *Molecule) SetCoords(c []float64) error {
	if len(c) != len(M.coords) {
		return newError(ShapeMismatch, "SetCoords", "%d coordinates given, %d expected", len(c), len(M.coords))
	}
	copy(M.coords, c)
	return nil
}

// Len returns the number of atoms in M.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

// Coords3d returns a copy of the coordinates of M as an Nx3 matrix.
func (M *Molecule) Coords3d() *v3.Matrix {
	m, _ := v3.FromFlat(M.coords) //the length was checked on construction
	return m
}

// Copy returns a deep copy of M.
func (M *Molecule) Copy() *Molecule {
	r, _ := NewMolecule(M.atoms, M.coords)
	return r
}
