/*
 * indexer.go, part of goic.
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
	"golang.org/x/exp/slices"
)

// BendIndices returns the (terminal, center, terminal) triples for all pairs of bonds
// sharing exactly one atom. The first terminal belongs to the bond that comes first
// in bonds. Nearly linear triples are included like any other.
func BendIndices(bonds [][2]int) [][3]int {
	ret := make([][3]int, 0, len(bonds))
	for a := 0; a < len(bonds); a++ {
		for b := a + 1; b < len(bonds); b++ {
			t1, c, t2, ok := sharedAtom(bonds[a], bonds[b])
			if ok {
				ret = append(ret, [3]int{t1, c, t2})
			}
		}
	}
	return ret
}

// sharedAtom returns the non-shared atom of a, the shared atom and the
// non-shared atom of b. ok is false unless a and b share exactly one atom.
func sharedAtom(a, b [2]int) (t1, c, t2 int, ok bool) {
	switch {
	case a == b || a == [2]int{b[1], b[0]}:
		return 0, 0, 0, false
	case a[0] == b[0]:
		return a[1], a[0], b[1], true
	case a[0] == b[1]:
		return a[1], a[0], b[0], true
	case a[1] == b[0]:
		return a[0], a[1], b[1], true
	case a[1] == b[1]:
		return a[0], a[1], b[0], true
	}
	return 0, 0, 0, false
}

// DihedralIndices returns the dihedrals that can be built by adding a bond to either
// end of a bend. The bond must contain exactly one of the bend's terminal atoms, and
// not its center. The new atom goes on the same end as the terminal it is bonded to.
// Dihedrals with the same set of atoms are only included once. Nothing is done for
// structures that would need a dihedral but where none can be found this way.
func DihedralIndices(bonds [][2]int, bends [][3]int) [][4]int {
	ret := make([][4]int, 0, len(bends))
	seen := make([][4]int, 0, len(bends))
	for _, bond := range bonds {
		for _, bend := range bends {
			center := bend[1]
			if bond[0] == center || bond[1] == center {
				continue
			}
			var d [4]int
			switch {
			case bondHas(bond, bend[0]) && !bondHas(bond, bend[2]):
				d = [4]int{bondOther(bond, bend[0]), bend[0], bend[1], bend[2]}
			case bondHas(bond, bend[2]) && !bondHas(bond, bend[0]):
				d = [4]int{bend[0], bend[1], bend[2], bondOther(bond, bend[2])}
			default:
				continue
			}
			key := sortedTuple(d)
			if slices.Contains(seen, key) {
				continue
			}
			seen = append(seen, key)
			ret = append(ret, d)
		}
	}
	return ret
}

func bondHas(b [2]int, i int) bool {
	return b[0] == i || b[1] == i
}

func bondOther(b [2]int, i int) int {
	if b[0] == i {
		return b[1]
	}
	return b[0]
}

func sortedTuple(d [4]int) [4]int {
	s := d[:]
	slices.Sort(s)
	return d
}

// Diagnostics reports the known limitations of the coordinate set built
// for a structure. None of them prevents the coordinates from being used.
type Diagnostics struct {
	//ForcedBonds are the bonds added only to join fragments.
	ForcedBonds [][2]int
	//NearLinearBends are indexes, in the bend list, of the angles within the
	//linear threshold of pi. No additional orthogonal coordinates are added for them.
	NearLinearBends []int
	//MissingDihedrals is true when the structure has 4 or more atoms
	//but no dihedral was found.
	MissingDihedrals bool
	//DegenerateDihedrals are indexes, in the dihedral list, of the dihedrals
	//where three consecutive atoms are collinear. Their value and gradient are set to zero.
	DegenerateDihedrals []int
}

// Empty returns true if no diagnostic was raised.
func (D *Diagnostics) Empty() bool {
	return len(D.ForcedBonds) == 0 && len(D.NearLinearBends) == 0 && !D.MissingDihedrals && len(D.DegenerateDihedrals) == 0
}
