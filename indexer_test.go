/*
 * indexer_test.go, part of goic.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestBendIndices(Te *testing.T) {
	assert.Equal(Te, [][3]int{{1, 0, 2}}, BendIndices([][2]int{{0, 1}, {0, 2}}))
	assert.Equal(Te, [][3]int{{0, 1, 2}, {1, 2, 3}}, BendIndices([][2]int{{0, 1}, {1, 2}, {2, 3}}))
	//ammonia-like star
	assert.Equal(Te, [][3]int{{1, 0, 2}, {1, 0, 3}, {2, 0, 3}}, BendIndices([][2]int{{0, 1}, {0, 2}, {0, 3}}))
	//repeated bonds don't make bends
	assert.Empty(Te, BendIndices([][2]int{{0, 1}, {1, 0}}))
}

func TestDihedralIndicesChain(Te *testing.T) {
	bonds := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	bends := BendIndices(bonds)
	assert.Equal(Te, [][4]int{{0, 1, 2, 3}}, DihedralIndices(bonds, bends))
}

func TestDihedralIndicesStar(Te *testing.T) {
	//no dihedral can be built for a center with only terminal atoms.
	bonds := [][2]int{{0, 1}, {0, 2}, {0, 3}}
	assert.Empty(Te, DihedralIndices(bonds, BendIndices(bonds)))
}

// ethane-like topology: 0-1 is the C-C bond, 2,3,4 on 0 and 5,6,7 on 1.
func TestNoDuplicatePrimitives(Te *testing.T) {
	bonds := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 5}, {1, 6}, {1, 7}}
	bends := BendIndices(bonds)
	diheds := DihedralIndices(bonds, bends)
	assert.Len(Te, bends, 12)
	assert.Len(Te, diheds, 9)
	seenB := make([][3]int, 0, len(bends))
	for _, b := range bends {
		key := [3]int{min(b[0], b[2]), b[1], max(b[0], b[2])}
		assert.False(Te, slices.Contains(seenB, key), "repeated bend %v", b)
		seenB = append(seenB, key)
	}
	seenD := make([][4]int, 0, len(diheds))
	for _, d := range diheds {
		assert.Equal(Te, []int{0, 1}, []int{min(d[1], d[2]), max(d[1], d[2])}, "%v not along the C-C bond", d)
		key := sortedTuple(d)
		assert.False(Te, slices.Contains(seenD, key), "repeated dihedral %v", d)
		seenD = append(seenD, key)
	}
}

func TestDiagnosticsEmpty(Te *testing.T) {
	var D Diagnostics
	assert.True(Te, D.Empty())
	D.MissingDihedrals = true
	assert.False(Te, D.Empty())
}
