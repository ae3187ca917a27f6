/*
 * bonds.go, part of goic.
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
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// DefaultBondFactor scales the sum of covalent radii to obtain the
// bonding threshold. See [1], A.1.
const DefaultBondFactor = 1.3

// BondSet is the set of covalent bonds of a structure. Every pair has
// its lower index first.
type BondSet struct {
	//Pairs contains all the bonds, first those detected from the distances,
	//then the ones forced to join fragments.
	Pairs [][2]int
	//Forced contains only the bonds added to join fragments.
	Forced [][2]int
	//InitialFragments is the number of fragments present before forcing any bond.
	InitialFragments int
}

// Len returns the number of bonds in B.
func (B *BondSet) Len() int {
	return len(B.Pairs)
}

// AssignBonds determines the bonds for the atoms with the given symbols and
// coordinates (in bohr). Two atoms are bonded when their distance is not
// larger than factor times the sum of their covalent radii. If the bonded atoms
// form more than one fragment, the shortest inter-fragment bond is added, and
// the process is repeated until only one fragment remains. A *FragmentError is
// returned if, after that, some atom has no bonds. Isolated atoms are never
// part of a fragment, so they are not rescued by the forced bonds.
func AssignBonds(atoms []string, coords *v3.Matrix, factor float64) (*BondSet, error) {
	n := coords.NVecs()
	if n != len(atoms) {
		return nil, newError(ShapeMismatch, "AssignBonds", "%d atoms but %d coordinate vectors", len(atoms), n)
	}
	if factor <= 0 {
		factor = DefaultBondFactor
	}
	radii, err := covalentRadii(atoms)
	if err != nil {
		return nil, errDecorate(err, "AssignBonds")
	}
	B := &BondSet{Pairs: make([][2]int, 0, n)}
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if coords.Dist(i, j) <= factor*(radii[i]+radii[j]) {
				B.Pairs = append(B.Pairs, [2]int{i, j})
				addBondEdge(g, i, j)
			}
		}
	}
	frags := fragments(g)
	B.InitialFragments = len(frags)
	for len(frags) > 1 {
		b := shortestInterFragment(coords, frags)
		B.Pairs = append(B.Pairs, b)
		B.Forced = append(B.Forced, b)
		addBondEdge(g, b[0], b[1])
		frags = fragments(g)
	}
	var unbonded []int
	for i := 0; i < n; i++ {
		if g.Node(int64(i)) == nil {
			unbonded = append(unbonded, i)
		}
	}
	if len(unbonded) > 0 {
		return nil, &FragmentError{
			err:       newError(UnresolvedFragments, "AssignBonds", "atoms %v have no bonds", unbonded),
			Unbonded:  unbonded,
			Fragments: frags,
		}
	}
	return B, nil
}

func addBondEdge(g *simple.UndirectedGraph, i, j int) {
	g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
}

// fragments returns the connected components of g as sorted slices of
// atom indexes, ordered by their first element.
func fragments(g graph.Undirected) [][]int {
	comps := topo.ConnectedComponents(g)
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		f := make([]int, 0, len(c))
		for _, node := range c {
			f = append(f, int(node.ID()))
		}
		slices.Sort(f)
		ret = append(ret, f)
	}
	slices.SortFunc(ret, func(a, b []int) int { return a[0] - b[0] })
	return ret
}

// shortestInterFragment returns the closest pair of atoms that belong
// to different fragments.
func shortestInterFragment(coords *v3.Matrix, frags [][]int) [2]int {
	best := math.Inf(1)
	var ret [2]int
	for a := 0; a < len(frags); a++ {
		for b := a + 1; b < len(frags); b++ {
			for _, i := range frags[a] {
				for _, j := range frags[b] {
					if d := coords.Dist(i, j); d < best {
						best = d
						ret = [2]int{min(i, j), max(i, j)}
					}
				}
			}
		}
	}
	return ret
}
