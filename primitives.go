/*
 * primitives.go, part of goic.
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
	"fmt"
	"math"

	v3 "github.com/rmera/goic/v3"
	"gonum.org/v1/gonum/floats"
)

// Kind is the type of a primitive internal coordinate.
type Kind int

const (
	Stretch Kind = iota
	Bend
	Dihedral
)

func (k Kind) String() string {
	switch k {
	case Stretch:
		return "stretch"
	case Bend:
		return "bend"
	case Dihedral:
		return "dihedral"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// parallelThreshold is the tolerance, in radians, to consider
// two unit vectors parallel or antiparallel when building a bend gradient.
const parallelThreshold = 1e-6

// degenerateSin2 is the smallest squared sine of a dihedral's bend
// angles for which the dihedral is defined.
const degenerateSin2 = 1e-12

// Coord is a primitive internal coordinate: a stretch, a bend or a dihedral
// given by the indexes of its atoms. Only StretchInd, BendInd and DihedralInd
// implement it.
type Coord interface {
	Kind() Kind
	//Atoms returns the indexes of the atoms involved, in order.
	Atoms() []int
	//Eval returns the value of the coordinate. If grad is not nil, it must
	//have 3N elements, and the gradient is put in the rows of the atoms involved.
	//The rest of grad is not touched.
	Eval(coords *v3.Matrix, grad []float64) float64
	primitive()
}

// StretchInd is a bond length between two atoms.
type StretchInd [2]int

func (s StretchInd) Kind() Kind { return Stretch }
func (s StretchInd) Atoms() []int { return []int{s[0], s[1]} }
func (s StretchInd) primitive() {}
func (s StretchInd) String() string { return fmt.Sprintf("stretch%v", [2]int(s)) }

func (s StretchInd) Eval(coords *v3.Matrix, grad []float64) float64 {
	return CalcStretch(coords, s[0], s[1], grad)
}

// BendInd is an angle given as (terminal, center, terminal).
type BendInd [3]int

func (b BendInd) Kind() Kind { return Bend }
func (b BendInd) Atoms() []int { return []int{b[0], b[1], b[2]} }
func (b BendInd) primitive() {}
func (b BendInd) String() string { return fmt.Sprintf("bend%v", [3]int(b)) }

func (b BendInd) Eval(coords *v3.Matrix, grad []float64) float64 {
	return CalcBend(coords, b[0], b[1], b[2], grad)
}

// DihedralInd is a dihedral angle along the bonded chain m-o-p-n.
type DihedralInd [4]int

func (d DihedralInd) Kind() Kind { return Dihedral }
func (d DihedralInd) Atoms() []int { return []int{d[0], d[1], d[2], d[3]} }
func (d DihedralInd) primitive() {}
func (d DihedralInd) String() string { return fmt.Sprintf("dihedral%v", [4]int(d)) }

func (d DihedralInd) Eval(coords *v3.Matrix, grad []float64) float64 {
	return CalcDihedral(coords, d[0], d[1], d[2], d[3], grad)
}

// Primitive is an evaluated primitive internal coordinate.
type Primitive struct {
	Kind    Kind
	Indices []int
	Value   float64   //bohr or radians
	Grad    []float64 //3N elements, a row of the Wilson B matrix
}

// Evaluate returns the value and gradient of c at coords.
func Evaluate(c Coord, coords *v3.Matrix) Primitive {
	grad := make([]float64, 3*coords.NVecs())
	val := c.Eval(coords, grad)
	return Primitive{Kind: c.Kind(), Indices: c.Atoms(), Value: val, Grad: grad}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// row returns the part of a flat gradient that corresponds to atom i.
func row(grad []float64, i int) []float64 {
	return grad[3*i : 3*i+3]
}

// CalcStretch returns the distance between atoms m and n. If grad is not nil
// the unit vector from n to m is put in the row of m, and its negative
// in the row of n.
func CalcStretch(coords *v3.Matrix, m, n int, grad []float64) float64 {
	bond := v3.Zeros(1)
	bond.SubVec(coords.VecView(m), coords.VecView(n))
	length := bond.Unit(bond)
	if grad != nil {
		b := bond.RawRowView(0)
		copy(row(grad, m), b)
		floats.ScaleTo(row(grad, n), -1, b)
	}
	return length
}

// parallel returns true if the unit vectors u and v are
// parallel or antiparallel.
func parallel(u, v *v3.Matrix) bool {
	rad := math.Acos(clamp(u.Dot(v), -1, 1))
	return rad > math.Pi-parallelThreshold || rad < parallelThreshold
}

// CalcBend returns the angle, in radians, between the atoms m, o and n,
// where o is the center. If grad is not nil, the gradient is put in the rows of
// the three atoms. For (anti)parallel bonds the gradient is built
// using an auxiliary axis, so it is always finite.
func CalcBend(coords *v3.Matrix, m, o, n int, grad []float64) float64 {
	u := v3.Zeros(1)
	v := v3.Zeros(1)
	u.SubVec(coords.VecView(m), coords.VecView(o))
	v.SubVec(coords.VecView(n), coords.VecView(o))
	unorm := u.Unit(u)
	vnorm := v.Unit(v)
	angle := math.Acos(clamp(u.Dot(v), -1, 1))
	if grad == nil {
		return angle
	}
	w := v3.Zeros(1)
	if parallel(u, v) {
		aux := v3.Zeros(1)
		aux.SetVec(0, []float64{1, -1, 1})
		aux.Unit(aux)
		if parallel(u, aux) && parallel(v, aux) {
			aux.SetVec(0, []float64{-1, 1, 1})
			aux.Unit(aux)
		}
		w.Cross(u, aux)
	} else {
		w.Cross(u, v)
	}
	w.Unit(w)
	uxw := v3.Zeros(1)
	wxv := v3.Zeros(1)
	uxw.Cross(u, w)
	wxv.Cross(w, v)
	gm, gc, gn := row(grad, m), row(grad, o), row(grad, n)
	floats.ScaleTo(gm, 1/unorm, uxw.RawRowView(0))
	floats.ScaleTo(gn, 1/vnorm, wxv.RawRowView(0))
	floats.AddTo(gc, gm, gn)
	floats.Scale(-1, gc)
	return angle
}

// CalcDihedral returns the dihedral angle, in radians and in [0, pi], along
// the chain m-o-p-n. If grad is not nil the gradient is put in the rows of the
// four atoms. When three consecutive atoms are collinear the dihedral is
// not defined, and 0 is returned, with a zero gradient.
func CalcDihedral(coords *v3.Matrix, m, o, p, n int, grad []float64) float64 {
	val, _ := calcDihedral(coords, m, o, p, n, grad)
	return val
}

// calcDihedral is CalcDihedral that also reports whether the
// dihedral was degenerate.
func calcDihedral(coords *v3.Matrix, m, o, p, n int, grad []float64) (float64, bool) {
	u := v3.Zeros(1)
	v := v3.Zeros(1)
	w := v3.Zeros(1)
	u.SubVec(coords.VecView(m), coords.VecView(o))
	v.SubVec(coords.VecView(n), coords.VecView(p))
	w.SubVec(coords.VecView(p), coords.VecView(o))
	//the sign of the dihedral, from the unnormalized vectors.
	wxv := v3.Zeros(1)
	wxv.Cross(w, v)
	sign := 1.0
	if u.Dot(wxv) > 0 {
		sign = -1
	}
	unorm := u.Unit(u)
	vnorm := v.Unit(v)
	wnorm := w.Unit(w)
	cosu := clamp(u.Dot(w), -1, 1)
	cosv := clamp(w.Dot(v), -1, 1)
	sin2u := 1 - cosu*cosu
	sin2v := 1 - cosv*cosv
	if sin2u < degenerateSin2 || sin2v < degenerateSin2 {
		if grad != nil {
			for _, i := range []int{m, o, p, n} {
				floats.Scale(0, row(grad, i))
			}
		}
		return 0, true
	}
	uxw := v3.Zeros(1)
	vxw := v3.Zeros(1)
	uxw.Cross(u, w)
	vxw.Cross(v, w)
	cosd := clamp(uxw.Dot(vxw)/math.Sqrt(sin2u*sin2v), -1, 1)
	dihedral := math.Acos(cosd)
	if grad == nil {
		return dihedral, false
	}
	a, c := uxw.RawRowView(0), vxw.RawRowView(0)
	first := make([]float64, 3)
	second := make([]float64, 3)
	third := make([]float64, 3)
	floats.ScaleTo(first, 1/(unorm*sin2u), a)
	floats.ScaleTo(second, 1/(vnorm*sin2v), c)
	floats.ScaleTo(third, cosu/(wnorm*sin2u), a)
	floats.AddScaled(third, -cosv/(wnorm*sin2v), c)

	gm, gn, g2, g3 := row(grad, m), row(grad, n), row(grad, o), row(grad, p)
	copy(gm, first)
	floats.ScaleTo(gn, -1, second)
	floats.SubTo(g2, third, first)
	floats.SubTo(g3, second, third)
	for _, g := range [][]float64{gm, gn, g2, g3} {
		floats.Scale(sign, g)
	}
	return dihedral, false
}
