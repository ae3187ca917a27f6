/*
 * doc.go, part of goic.
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

// Package ictrace writes and reads traces of back-transformations from internal to
// cartesian coordinates: the cartesian coordinates obtained at each cycle, together
// with the cycle number and the RMS of the cartesian step.
//
// The format follows the simple trajectory format (stf) of goChem, and the same
// rules apply:
//
// A trace is an ASCII text compressed with z-standard (zstd).
//
// It starts with a header of key=value lines, one of which may be "prec", a positive
// integer. The header ends with a line that starts with "**" followed by one or more
// spaces and the number of atoms per frame.
//
// After the header, each frame has one line per atom, with the x, y and z coordinates,
// in bohr, multiplied by 10 to the power of prec and rounded to an integer. The default
// prec is 6. A frame ends with a line that starts with "*", followed by one or more
// spaces, the cycle number and the RMS of the cartesian step, separated by spaces.
//
// The "**" sequence is only used to end the header.
package ictrace
