/*
 * errors.go, part of goic.
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
	"errors"
	"fmt"
)

// ErrorKind identifies the failure classes of the package.
type ErrorKind int

const (
	UnresolvedFragments ErrorKind = iota + 1
	DegreeOfFreedomMismatch
	BackTransformNonConvergence
	UnknownElement
	ShapeMismatch
	Singular
	InvalidOptions
)

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedFragments:
		return "unresolved fragments"
	case DegreeOfFreedomMismatch:
		return "degree of freedom mismatch"
	case BackTransformNonConvergence:
		return "back-transformation not converged"
	case UnknownElement:
		return "unknown element"
	case ShapeMismatch:
		return "shape mismatch"
	case Singular:
		return "singular matrix"
	case InvalidOptions:
		return "invalid options"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type for the package. The Decorate method allows to add
// the names of the functions the error went through, without wrapping it.
type Error struct {
	msg      string
	kind     ErrorKind
	deco     []string
	critical bool
}

func newError(kind ErrorKind, caller string, format string, a ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, a...), kind: kind, deco: []string{caller}, critical: true}
}

// Error returns the error message.
func (err *Error) Error() string {
	return fmt.Sprintf("goic: %s: %s", err.kind, err.msg)
}

// Decorate adds dec to the decoration slice of the error, and returns the
// resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

// Kind returns the failure class of the error.
func (err *Error) Kind() ErrorKind { return err.kind }

// Is reports whether target is an *Error of the same kind, so the
// sentinel values below can be used with errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == err.kind
}

// Sentinels for errors.Is. They are never returned directly.
var (
	ErrUnresolvedFragments = &Error{msg: "bond graph is not connected", kind: UnresolvedFragments, critical: true}
	ErrDOFMismatch         = &Error{msg: "wrong number of active coordinates", kind: DegreeOfFreedomMismatch, critical: true}
	ErrNotConverged        = &Error{msg: "iteration budget exhausted", kind: BackTransformNonConvergence}
	ErrUnknownElement      = &Error{msg: "no data for element", kind: UnknownElement, critical: true}
	ErrShape               = &Error{msg: "dimension mismatch", kind: ShapeMismatch, critical: true}
	ErrSingular            = &Error{msg: "matrix could not be factorized", kind: Singular, critical: true}
	ErrInvalidOptions      = &Error{msg: "option out of range", kind: InvalidOptions, critical: true}
)

// FragmentError is returned when the bond graph could not be made to
// span all the atoms.
type FragmentError struct {
	err       *Error
	Unbonded  []int   //atoms without any bond
	Fragments [][]int //the fragments present after the forced connection
}

func (e *FragmentError) Error() string { return e.err.Error() }

// Unwrap gives access to the underlying *Error.
func (e *FragmentError) Unwrap() error { return e.err }

// DOFError is returned when the number of active delocalized coordinates
// is not 3N-6.
type DOFError struct {
	err      *Error
	Found    int
	Expected int
	Atoms    int
}

func (e *DOFError) Error() string { return e.err.Error() }

// Unwrap gives access to the underlying *Error.
func (e *DOFError) Unwrap() error { return e.err }

// errDecorate decorates err with the name of the caller, if err
// implements the Decorate method, and returns it.
func errDecorate(err error, caller string) error {
	var d interface{ Decorate(string) []string }
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
