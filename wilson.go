/*
 * wilson.go, part of goic.
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

// WilsonB stacks the gradients of prims, in order, into the Wilson B matrix.
// All the gradients must have the same length. It returns nil if prims is empty.
func WilsonB(prims []Primitive) *mat.Dense {
	if len(prims) == 0 {
		return nil
	}
	cols := len(prims[0].Grad)
	B := mat.NewDense(len(prims), cols, nil)
	for i, p := range prims {
		if len(p.Grad) != cols {
			panic(ErrShape)
		}
		B.SetRow(i, p.Grad)
	}
	return B
}

// GeneralizedInverse returns B- = pinv(B*Bt)*B, which has the same shape as B.
// The singular values of B*Bt smaller than tol are discarded. A tol of 0 or less
// uses eps*max(rows,cols)*sigma_max.
func GeneralizedInverse(B mat.Matrix, tol float64) (*mat.Dense, error) {
	r, c := B.Dims()
	G := mat.NewDense(r, r, nil)
	G.Mul(B, B.T())
	Gp, err := Pinv(G, tol)
	if err != nil {
		return nil, errDecorate(err, "GeneralizedInverse")
	}
	Binv := mat.NewDense(r, c, nil)
	Binv.Mul(Gp, B)
	return Binv, nil
}

// Pinv returns the Moore-Penrose pseudoinverse of A, obtained from its
// singular value decomposition. tol works as in GeneralizedInverse.
func Pinv(A mat.Matrix, tol float64) (*mat.Dense, error) {
	r, c := A.Dims()
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return nil, newError(Singular, "Pinv", "SVD factorization of a %dx%d matrix failed", r, c)
	}
	s := svd.Values(nil)
	if tol <= 0 {
		smax := 0.0
		if len(s) > 0 {
			smax = s[0]
		}
		tol = math.Nextafter(1, 2) - 1
		tol *= float64(max(r, c)) * smax
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	//v becomes V*S+, and the result V*S+*Ut
	for j, sv := range s {
		inv := 0.0
		if sv > tol {
			inv = 1 / sv
		}
		col := mat.Col(nil, j, &v)
		for i := range col {
			v.Set(i, j, col[i]*inv)
		}
	}
	ret := mat.NewDense(c, r, nil)
	ret.Mul(&v, u.T())
	return ret, nil
}
