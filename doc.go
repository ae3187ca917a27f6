/*
 * doc.go, part of goic.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package ic re-expresses the cartesian coordinates of a molecule in a redundant set of
primitive internal coordinates (bond stretches, bends and dihedrals), and moves
between both representations. It is meant to be used by geometry optimizers.

	**Capabilities**

    Builds a connected bond graph from covalent radii, adding the shortest
	inter-fragment bonds when the molecule is split.

    Enumerates bends and dihedrals from the bond graph.

    Evaluates the value and cartesian gradient of each primitive, and builds
	the Wilson B matrix and its generalized inverse.

    Transforms a step in internal coordinates back to cartesian coordinates,
	iteratively, reporting whether the procedure converged.

    Builds delocalized internal coordinates from the eigenvectors of
	G = B*B^T.

    Computes the rho proximity weights of the Lindh model hessian.

All lengths are in bohr and all angles in radians.

Nothing in the package modifies a Geometry given to it. The result of a
back-transformation must be explicitly committed by the caller.

References:
	[1] https://doi.org/10.1063/1.1515483 optimization review
	[2] https://doi.org/10.1063/1.471864 delocalized internal coordinates
	[3] https://doi.org/10.1016/0009-2614(95)00646-L lindh model hessian
*/
package ic
