/*
 * redundant.go, part of goic.
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

// Redundant is a set of redundant primitive internal coordinates (stretches, bends and
// dihedrals) for a structure, together with its Wilson B matrix and the generalized
// inverse of the latter, evaluated at the coordinates the set was built with.
// A Redundant never modifies the Geometry it was built from.
type Redundant struct {
	atoms  []string
	coords []float64
	bonds  *BondSet
	prims  []Coord //stretches, then bends, then dihedrals
	counts [3]int
	values []Primitive
	b      *mat.Dense
	binv   *mat.Dense
	rho    *mat.SymDense
	diag   Diagnostics
	opts   *Options
}

// NewRedundant builds the bonds and primitive internal coordinates for g, and
// evaluates them at the current coordinates of g. A nil o means DefaultOptions.
func NewRedundant(g Geometry, o *Options) (*Redundant, error) {
	o = o.orDefault()
	if err := o.Validate(); err != nil {
		return nil, errDecorate(err, "NewRedundant")
	}
	R := &Redundant{atoms: g.Atoms(), coords: g.Coords(), opts: o}
	c3, err := v3.FromFlat(R.coords)
	if err != nil || c3.NVecs() != len(R.atoms) {
		return nil, newError(ShapeMismatch, "NewRedundant", "%d coordinates for %d atoms", len(R.coords), len(R.atoms))
	}
	R.bonds, err = AssignBonds(R.atoms, c3, o.BondFactor)
	if err != nil {
		return nil, errDecorate(err, "NewRedundant")
	}
	bends := BendIndices(R.bonds.Pairs)
	diheds := DihedralIndices(R.bonds.Pairs, bends)
	R.prims = make([]Coord, 0, R.bonds.Len()+len(bends)+len(diheds))
	for _, v := range R.bonds.Pairs {
		R.prims = append(R.prims, StretchInd(v))
	}
	for _, v := range bends {
		R.prims = append(R.prims, BendInd(v))
	}
	for _, v := range diheds {
		R.prims = append(R.prims, DihedralInd(v))
	}
	R.counts = [3]int{R.bonds.Len(), len(bends), len(diheds)}
	R.values = R.calculate(c3)
	R.b = WilsonB(R.values)
	R.binv, err = GeneralizedInverse(R.b, o.PinvTolerance)
	if err != nil {
		return nil, errDecorate(err, "NewRedundant")
	}
	R.rho, err = ProximityWeights(R.atoms, c3)
	if err != nil {
		return nil, errDecorate(err, "NewRedundant")
	}
	R.diagnose(c3)
	return R, nil
}

// diagnose fills the diagnostics for R, and logs them, if any.
func (R *Redundant) diagnose(c3 *v3.Matrix) {
	D := &R.diag
	D.ForcedBonds = R.bonds.Forced
	for i, p := range R.values {
		switch p.Kind {
		case Bend:
			if p.Value > math.Pi-R.opts.LinearThreshold {
				D.NearLinearBends = append(D.NearLinearBends, i-R.counts[0])
			}
		case Dihedral:
			d := R.prims[i].(DihedralInd)
			if _, degenerate := calcDihedral(c3, d[0], d[1], d[2], d[3], nil); degenerate {
				D.DegenerateDihedrals = append(D.DegenerateDihedrals, i-R.counts[0]-R.counts[1])
			}
		}
	}
	D.MissingDihedrals = len(R.atoms) >= 4 && R.counts[2] == 0
	if D.Empty() {
		return
	}
	R.opts.Logger.Warn().
		Interface("forced_bonds", D.ForcedBonds).
		Ints("near_linear_bends", D.NearLinearBends).
		Ints("degenerate_dihedrals", D.DegenerateDihedrals).
		Bool("missing_dihedrals", D.MissingDihedrals).
		Msg("internal coordinates built with limitations")
}

func (R *Redundant) calculate(c3 *v3.Matrix) []Primitive {
	ret := make([]Primitive, len(R.prims))
	for i, c := range R.prims {
		ret[i] = Evaluate(c, c3)
	}
	return ret
}

func (R *Redundant) coords3d(coords []float64) (*v3.Matrix, error) {
	if len(coords) != 3*len(R.atoms) {
		return nil, newError(ShapeMismatch, "coords3d", "%d coordinates given, %d expected", len(coords), 3*len(R.atoms))
	}
	return v3.NewMatrix(coords)
}

// Len returns the number of primitive coordinates.
func (R *Redundant) Len() int {
	return len(R.prims)
}

// Counts returns the number of stretches, bends and dihedrals.
func (R *Redundant) Counts() (stretches, bends, dihedrals int) {
	return R.counts[0], R.counts[1], R.counts[2]
}

// Coords returns the primitive coordinates, in order.
func (R *Redundant) Coords() []Coord {
	ret := make([]Coord, len(R.prims))
	copy(ret, R.prims)
	return ret
}

// Bonds returns the bonds the coordinates were built from.
func (R *Redundant) Bonds() *BondSet {
	return R.bonds
}

// Atoms returns the element symbols of the structure.
func (R *Redundant) Atoms() []string {
	return R.atoms
}

// Primitives returns the primitives evaluated at the coordinates R was built with.
func (R *Redundant) Primitives() []Primitive {
	return R.values
}

// Calculate evaluates the primitive coordinates of R, with their gradients,
// at the given flat cartesian coordinates.
func (R *Redundant) Calculate(coords []float64) ([]Primitive, error) {
	c3, err := R.coords3d(coords)
	if err != nil {
		return nil, errDecorate(err, "Calculate")
	}
	return R.calculate(c3), nil
}

// Values returns only the values of the primitive coordinates of R at coords.
func (R *Redundant) Values(coords []float64) ([]float64, error) {
	c3, err := R.coords3d(coords)
	if err != nil {
		return nil, errDecorate(err, "Values")
	}
	ret := make([]float64, len(R.prims))
	for i, c := range R.prims {
		ret[i] = c.Eval(c3, nil)
	}
	return ret, nil
}

// ValueDiffs returns q(coords1)-q(coords2). Differences in dihedrals are not
// wrapped.
func (R *Redundant) ValueDiffs(coords1, coords2 []float64) ([]float64, error) {
	v1, err := R.Values(coords1)
	if err != nil {
		return nil, errDecorate(err, "ValueDiffs")
	}
	v2, err := R.Values(coords2)
	if err != nil {
		return nil, errDecorate(err, "ValueDiffs")
	}
	for i := range v1 {
		v1[i] -= v2[i]
	}
	return v1, nil
}

// B returns the Wilson B matrix, one row per primitive and one column per
// cartesian coordinate.
func (R *Redundant) B() *mat.Dense {
	return R.b
}

// BInv returns the generalized inverse of B, pinv(B*Bt)*B. It has the
// same shape as B.
func (R *Redundant) BInv() *mat.Dense {
	return R.binv
}

// Rho returns the proximity weights for the atoms of the structure.
func (R *Redundant) Rho() *mat.SymDense {
	return R.rho
}

// Diagnostics returns the known limitations of the coordinate set.
func (R *Redundant) Diagnostics() Diagnostics {
	return R.diag
}

// InternalGradient transforms a cartesian gradient into a gradient in the
// primitive internal coordinates, using BInv.
func (R *Redundant) InternalGradient(cartGrad []float64) ([]float64, error) {
	return internalGradient(R.binv, cartGrad)
}

func internalGradient(binv *mat.Dense, cartGrad []float64) ([]float64, error) {
	k, n := binv.Dims()
	if len(cartGrad) != n {
		return nil, newError(ShapeMismatch, "InternalGradient", "gradient with %d elements, %d expected", len(cartGrad), n)
	}
	ret := mat.NewVecDense(k, nil)
	ret.MulVec(binv, mat.NewVecDense(n, cartGrad))
	return ret.RawVector().Data, nil
}

// BackTransform finds the cartesian coordinates for which the primitive internal
// coordinates are displaced by dq from their values at the coordinates R was built
// with. Failing to converge is not an error: check the Converged field of the result.
func (R *Redundant) BackTransform(dq []float64) (*Result, error) {
	res, err := backTransform(R.coords, dq, R.binv, R.Values, R.opts)
	if err != nil {
		return nil, errDecorate(err, "BackTransform")
	}
	return res, nil
}
