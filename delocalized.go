/*
 * delocalized.go, part of goic.
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

	"gonum.org/v1/gonum/mat"
)

// Delocalized is a set of non-redundant delocalized internal coordinates [2]: linear
// combinations of the primitives of a Redundant set, given by the eigenvectors of
// G = B*Bt with non-zero eigenvalues. There are exactly 3N-6 of them.
type Delocalized struct {
	red   *Redundant
	u     *mat.Dense //one active vector per column
	eigen []float64
	b     *mat.Dense
	binv  *mat.Dense
}

// NewDelocalized builds the redundant primitives for g and the delocalized coordinates
// from them. A *DOFError is returned if the number of active vectors is not 3N-6,
// which is always the case for linear molecules.
func NewDelocalized(g Geometry, o *Options) (*Delocalized, error) {
	o = o.orDefault()
	red, err := NewRedundant(g, o)
	if err != nil {
		return nil, errDecorate(err, "NewDelocalized")
	}
	D := &Delocalized{red: red}
	nprim, ncart := red.b.Dims()
	G := mat.NewSymDense(nprim, nil)
	G.SymOuterK(1, red.b)
	var es mat.EigenSym
	if ok := es.Factorize(G, true); !ok {
		return nil, newError(Singular, "NewDelocalized", "eigendecomposition of G (%dx%d) failed", nprim, nprim)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	active := make([]int, 0, ncart)
	for i, w := range vals {
		if math.Abs(w) > o.EigenThreshold {
			active = append(active, i)
		}
	}
	natoms := len(red.atoms)
	if expected := 3*natoms - 6; len(active) != expected {
		derr := &DOFError{
			err:      newError(DegreeOfFreedomMismatch, "NewDelocalized", "%d active coordinates found for %d atoms, %d expected", len(active), natoms, expected),
			Found:    len(active),
			Expected: expected,
			Atoms:    natoms,
		}
		o.Logger.Error().Int("found", derr.Found).Int("expected", derr.Expected).Int("atoms", natoms).Msg("wrong number of delocalized coordinates")
		return nil, derr
	}
	D.u = mat.NewDense(nprim, len(active), nil)
	D.eigen = make([]float64, len(active))
	for j, i := range active {
		D.u.SetCol(j, mat.Col(nil, i, &vecs))
		D.eigen[j] = vals[i]
	}
	D.b = mat.NewDense(len(active), ncart, nil)
	D.b.Mul(D.u.T(), red.b)
	D.binv, err = GeneralizedInverse(D.b, o.PinvTolerance)
	if err != nil {
		return nil, errDecorate(err, "NewDelocalized")
	}
	return D, nil
}

// Redundant returns the primitive coordinate set D was built from.
func (D *Delocalized) Redundant() *Redundant {
	return D.red
}

// Len returns the number of delocalized coordinates.
func (D *Delocalized) Len() int {
	_, c := D.u.Dims()
	return c
}

// U returns the active vectors, one per column, in the basis of the primitives.
func (D *Delocalized) U() *mat.Dense {
	return D.u
}

// Eigenvalues returns the eigenvalues of G for the active vectors, in
// increasing order.
func (D *Delocalized) Eigenvalues() []float64 {
	return D.eigen
}

// B returns the Wilson B matrix for the delocalized coordinates, Ut*Bprim.
func (D *Delocalized) B() *mat.Dense {
	return D.b
}

// BInv returns the generalized inverse of B, with the same shape as B.
func (D *Delocalized) BInv() *mat.Dense {
	return D.binv
}

// Values returns the delocalized coordinates at the flat cartesian coordinates
// coords, i.e. Ut*q, where q are the primitive values.
func (D *Delocalized) Values(coords []float64) ([]float64, error) {
	q, err := D.red.Values(coords)
	if err != nil {
		return nil, errDecorate(err, "Delocalized.Values")
	}
	ret := mat.NewVecDense(D.Len(), nil)
	ret.MulVec(D.u.T(), mat.NewVecDense(len(q), q))
	return ret.RawVector().Data, nil
}

// InternalGradient transforms a cartesian gradient into the delocalized coordinates.
func (D *Delocalized) InternalGradient(cartGrad []float64) ([]float64, error) {
	return internalGradient(D.binv, cartGrad)
}

// BackTransform is like Redundant.BackTransform, but ds is a displacement in
// the delocalized coordinates.
func (D *Delocalized) BackTransform(ds []float64) (*Result, error) {
	res, err := backTransform(D.red.coords, ds, D.binv, D.Values, D.red.opts)
	if err != nil {
		return nil, errDecorate(err, "Delocalized.BackTransform")
	}
	return res, nil
}
