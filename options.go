/*
 * options.go, part of goic.
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
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Options controls the construction of internal coordinates and
// the back-transformation to cartesians.
type Options struct {
	//BondFactor scales the sum of covalent radii to get the bonding distance.
	BondFactor float64 `yaml:"bond_factor"`
	//LinearThreshold is the distance from pi, in radians, below which
	//a bend is reported as nearly linear.
	LinearThreshold float64 `yaml:"linear_threshold"`
	//CartRMSThreshold is the RMS of the cartesian step (bohr) below which
	//the back-transformation is considered converged.
	CartRMSThreshold float64 `yaml:"cart_rms_threshold"`
	//MaxCycles is the iteration budget for the back-transformation.
	MaxCycles int `yaml:"max_cycles"`
	//PinvTolerance is the singular value cutoff for pseudoinverses.
	//0 means automatic.
	PinvTolerance float64 `yaml:"pinv_tolerance"`
	//EigenThreshold is the smallest eigenvalue of G whose eigenvector
	//is kept as a delocalized coordinate.
	EigenThreshold float64 `yaml:"eigen_threshold"`

	Logger zerolog.Logger `yaml:"-"`
	//Tracer, if not nil, receives the coordinates at each back-transformation cycle.
	Tracer Tracer `yaml:"-"`
}

// DefaultOptions returns the default options. Nothing is logged.
func DefaultOptions() *Options {
	return &Options{
		BondFactor:       DefaultBondFactor,
		LinearThreshold:  5 * Deg2Rad,
		CartRMSThreshold: 1e-6,
		MaxCycles:        25,
		PinvTolerance:    0,
		EigenThreshold:   1e-6,
		Logger:           zerolog.Nop(),
	}
}

// Validate returns an error if some option has a value that can't be used.
func (O *Options) Validate() error {
	switch {
	case O.BondFactor <= 0:
		return newError(InvalidOptions, "Validate", "bond_factor must be positive, got %g", O.BondFactor)
	case O.LinearThreshold < 0:
		return newError(InvalidOptions, "Validate", "linear_threshold can't be negative, got %g", O.LinearThreshold)
	case O.CartRMSThreshold <= 0:
		return newError(InvalidOptions, "Validate", "cart_rms_threshold must be positive, got %g", O.CartRMSThreshold)
	case O.MaxCycles <= 0:
		return newError(InvalidOptions, "Validate", "max_cycles must be positive, got %d", O.MaxCycles)
	case O.PinvTolerance < 0:
		return newError(InvalidOptions, "Validate", "pinv_tolerance can't be negative, got %g", O.PinvTolerance)
	case O.EigenThreshold <= 0:
		return newError(InvalidOptions, "Validate", "eigen_threshold must be positive, got %g", O.EigenThreshold)
	}
	return nil
}

// LoadOptions reads YAML-formatted options from r. Keys not present keep
// their default values. Unknown keys are an error.
func LoadOptions(r io.Reader) (*Options, error) {
	O := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(O); err != nil && err != io.EOF {
		return nil, newError(InvalidOptions, "LoadOptions", "can't decode options: %s", err.Error())
	}
	if err := O.Validate(); err != nil {
		return nil, errDecorate(err, "LoadOptions")
	}
	return O, nil
}

// ReadOptionsFile reads options from the YAML file at path.
func ReadOptionsFile(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	O, err := LoadOptions(f)
	if err != nil {
		return nil, errDecorate(err, "ReadOptionsFile")
	}
	return O, nil
}

func (O *Options) orDefault() *Options {
	if O == nil {
		return DefaultOptions()
	}
	return O
}
