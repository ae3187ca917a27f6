/*
 * rho.go, part of goic.
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

	v3 "github.com/rmera/goic/v3"
	"gonum.org/v1/gonum/mat"
)

// Decay constants, in bohr^-2, for the proximity weights. See [3].
// Heavier elements use the value for the third row.
const (
	alphaHH = 1.0
	alphaHX = 0.3949
	alphaXX = 0.28
)

// ProximityWeights returns the symmetric matrix of weights
// rho_ij = exp(alpha_ij*(r_ij^2 - d_ij^2)) used by the Lindh model Hessian, where
// d_ij is the distance between atoms i and j and r_ij is the sum of their covalent
// radii, which stands for the tabulated reference distances. The diagonal is zero.
func ProximityWeights(atoms []string, coords *v3.Matrix) (*mat.SymDense, error) {
	n := coords.NVecs()
	if n != len(atoms) {
		return nil, newError(ShapeMismatch, "ProximityWeights", "%d atoms but %d coordinate vectors", len(atoms), n)
	}
	radii, err := covalentRadii(atoms)
	if err != nil {
		return nil, errDecorate(err, "ProximityWeights")
	}
	first := make([]bool, n)
	for i, a := range atoms {
		p, err := Period(a)
		if err != nil {
			return nil, errDecorate(err, "ProximityWeights")
		}
		first[i] = p == 1
	}
	rho := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			alpha := alphaXX
			if first[i] && first[j] {
				alpha = alphaHH
			} else if first[i] || first[j] {
				alpha = alphaHX
			}
			ref := radii[i] + radii[j]
			d := coords.Dist(i, j)
			rho.SetSym(i, j, math.Exp(alpha*(ref*ref-d*d)))
		}
	}
	return rho, nil
}
