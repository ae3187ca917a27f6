/*
 * backtransform.go, part of goic.
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

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Tracer receives the cartesian coordinates obtained at each cycle
// of a back-transformation.
type Tracer interface {
	Frame(cycle int, coords []float64, rms float64) error
}

// Result is the outcome of a back-transformation. The geometry used to build
// the coordinates is not modified. Use Commit to write the new coordinates to it.
type Result struct {
	//Coords are the final cartesian coordinates, flat, in bohr.
	Coords []float64
	//Converged is true if the RMS of the last cartesian step was below the threshold.
	Converged bool
	Cycles    int
	//RMS contains the RMS of the cartesian step at each cycle.
	RMS       []float64
	FinalRMS  float64
	Threshold float64
	//Residual is the part of the requested internal displacement that was not achieved.
	Residual []float64
}

// Err returns nil if R converged, or an error of kind BackTransformNonConvergence
// otherwise. The error is not critical.
func (R *Result) Err() error {
	if R.Converged {
		return nil
	}
	err := newError(BackTransformNonConvergence, "Result.Err", "RMS %.3e above %.1e after %d cycles", R.FinalRMS, R.Threshold, R.Cycles)
	err.critical = false
	return err
}

// Commit writes the coordinates of R to g, if R converged. Otherwise it
// returns the error from R.Err and g is not touched.
func (R *Result) Commit(g Geometry) error {
	if err := R.Err(); err != nil {
		return errDecorate(err, "Commit")
	}
	if err := g.SetCoords(R.Coords); err != nil {
		return errDecorate(err, "Commit")
	}
	return nil
}

// Summary returns the mean and largest values of the RMS of the
// cartesian steps taken.
func (R *Result) Summary() (mean, largest float64) {
	if len(R.RMS) == 0 {
		return 0, 0
	}
	return stat.Mean(R.RMS, nil), floats.Max(R.RMS)
}

// valuer returns the internal coordinates for a set of cartesian coordinates.
type valuer func(coords []float64) ([]float64, error)

// backTransform iteratively finds the cartesian coordinates that displace the internal
// coordinates given by values by dq, starting from x0. Each cycle takes the cartesian
// step binvT*r, where r is the displacement not achieved so far.
func backTransform(x0, dq []float64, binv mat.Matrix, values valuer, O *Options) (*Result, error) {
	k, n := binv.Dims()
	if len(dq) != k || len(x0) != n {
		return nil, newError(ShapeMismatch, "backTransform", "displacement of %d elements for %d coordinates", len(dq), k)
	}
	log := O.Logger.With().Str("stage", "back-transformation").Logger()
	res := &Result{Threshold: O.CartRMSThreshold, RMS: make([]float64, 0, O.MaxCycles)}
	r := make([]float64, k)
	copy(r, dq)
	x := make([]float64, n)
	copy(x, x0)
	old, err := values(x)
	if err != nil {
		return nil, errDecorate(err, "backTransform")
	}
	step := mat.NewVecDense(n, nil)
	for i := 0; i < O.MaxCycles; i++ {
		step.MulVec(binv.T(), mat.NewVecDense(k, r))
		s := step.RawVector().Data
		floats.Add(x, s)
		rms := math.Sqrt(floats.Dot(s, s) / float64(n))
		nw, err := values(x)
		if err != nil {
			return nil, errDecorate(err, "backTransform")
		}
		for j := range r {
			r[j] -= nw[j] - old[j]
		}
		old = nw
		res.Cycles = i + 1
		res.RMS = append(res.RMS, rms)
		res.FinalRMS = rms
		log.Debug().Int("cycle", i).Float64("cart_rms", rms).Msg("cycle done")
		if O.Tracer != nil {
			if err := O.Tracer.Frame(i, x, rms); err != nil {
				return nil, errDecorate(err, "backTransform")
			}
		}
		if rms < O.CartRMSThreshold {
			res.Converged = true
			break
		}
	}
	res.Coords = x
	res.Residual = r
	logResult(log, res)
	return res, nil
}

func logResult(log zerolog.Logger, res *Result) {
	if res.Converged {
		log.Info().Int("cycles", res.Cycles).Float64("cart_rms", res.FinalRMS).Msg("converged")
		return
	}
	log.Warn().Int("cycles", res.Cycles).Float64("cart_rms", res.FinalRMS).Float64("threshold", res.Threshold).Msg("not converged")
}
