/*
 * trace.go, part of goic.
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

package ictrace

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultPrec is the number of decimal places, in bohr, kept for the coordinates.
const DefaultPrec = 6

// Writer writes a compressed trace. It implements the Tracer interface
// of package ic.
type Writer struct {
	z      *zstd.Encoder
	w      *bufio.Writer
	f      *os.File //only set by Create
	natoms int
	prec   int
	closed bool
}

// NewWriter returns a Writer that compresses a trace for natoms atoms into w.
// The key/value pairs in header are written, sorted by key. The "prec" key, if present,
// sets the precision. Closing the Writer does not close w.
func NewWriter(w io.Writer, natoms int, header map[string]string) (*Writer, error) {
	if natoms <= 0 {
		return nil, Error{fmt.Sprintf("%s: %d atoms", WrongNAtoms, natoms), []string{"NewWriter"}, true}
	}
	W := &Writer{natoms: natoms, prec: DefaultPrec}
	if p, ok := header["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil || prec <= 0 {
			return nil, Error{fmt.Sprintf("invalid precision %q", p), []string{"NewWriter"}, true}
		}
		W.prec = prec
	}
	var err error
	W.z, err = zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, Error{"can't start compression: " + err.Error(), []string{"NewWriter"}, true}
	}
	W.w = bufio.NewWriter(W.z)
	keys := maps.Keys(header)
	slices.Sort(keys)
	for _, k := range keys {
		v := header[k]
		if k == "" || strings.HasPrefix(k, "*") || strings.ContainsAny(k, "=\n") || strings.Contains(v, "\n") {
			W.z.Close()
			return nil, Error{fmt.Sprintf("%s: %q", BadHeader, k), []string{"NewWriter"}, true}
		}
		fmt.Fprintf(W.w, "%s=%s\n", k, v)
	}
	if _, ok := header["prec"]; !ok {
		fmt.Fprintf(W.w, "prec=%d\n", W.prec)
	}
	fmt.Fprintf(W.w, "** %d\n", natoms)
	return W, nil
}

// Create creates the file name and returns a Writer to it. The file
// is closed with the Writer.
func Create(name string, natoms int, header map[string]string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	W, err := NewWriter(f, natoms, header)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Create")
	}
	W.f = f
	return W, nil
}

// Len returns the number of atoms per frame.
func (W *Writer) Len() int {
	return W.natoms
}

// Frame writes the flat coordinates coords, with the cycle number and rms.
func (W *Writer) Frame(cycle int, coords []float64, rms float64) error {
	if W.closed {
		return Error{Closed, []string{"Frame"}, true}
	}
	if len(coords) != 3*W.natoms {
		return Error{fmt.Sprintf("%s: %d given, %d expected", WrongNAtoms, len(coords), 3*W.natoms), []string{"Frame"}, true}
	}
	p := math.Pow(10, float64(W.prec))
	for i := 0; i < len(coords); i += 3 {
		fmt.Fprintf(W.w, "%d %d %d\n", int64(math.RoundToEven(coords[i]*p)),
			int64(math.RoundToEven(coords[i+1]*p)), int64(math.RoundToEven(coords[i+2]*p)))
	}
	_, err := fmt.Fprintf(W.w, "* %d %.6e\n", cycle, rms)
	if err != nil {
		return Error{err.Error(), []string{"Frame"}, true}
	}
	return nil
}

// Close flushes the trace. The Writer can't be used afterwards.
func (W *Writer) Close() error {
	if W.closed {
		return nil
	}
	W.closed = true
	err := W.w.Flush()
	if err2 := W.z.Close(); err == nil {
		err = err2
	}
	if W.f != nil {
		if err2 := W.f.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return Error{err.Error(), []string{"Close"}, true}
	}
	return nil
}

// Reader reads a compressed trace.
type Reader struct {
	z      *zstd.Decoder
	h      *bufio.Reader
	f      *os.File //only set by Open
	natoms int
	prec   int
}

// NewReader reads the header of the trace in r, and returns a Reader positioned
// at the first frame, and the header.
func NewReader(r io.Reader) (*Reader, map[string]string, error) {
	z, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, Error{"can't start decompression: " + err.Error(), []string{"NewReader"}, true}
	}
	R := &Reader{z: z, h: bufio.NewReader(z), prec: DefaultPrec, natoms: -1}
	header := make(map[string]string)
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			z.Close()
			return nil, nil, Error{NoHeaderEnd, []string{"NewReader"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) != 2 {
				z.Close()
				return nil, nil, Error{fmt.Sprintf("%s: can't read atom number from %q", WrongFormat, str), []string{"NewReader"}, true}
			}
			R.natoms, err = strconv.Atoi(fields[1])
			if err != nil || R.natoms <= 0 {
				z.Close()
				return nil, nil, Error{fmt.Sprintf("%s: can't read atom number from %q", WrongFormat, str), []string{"NewReader"}, true}
			}
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			z.Close()
			return nil, nil, Error{fmt.Sprintf("%s: malformed header line %q", WrongFormat, str), []string{"NewReader"}, true}
		}
		header[k] = v
	}
	if p, ok := header["prec"]; ok {
		R.prec, err = strconv.Atoi(p)
		if err != nil || R.prec <= 0 {
			z.Close()
			return nil, nil, Error{fmt.Sprintf("%s: invalid precision %q", WrongFormat, p), []string{"NewReader"}, true}
		}
	}
	return R, header, nil
}

// Open opens the trace file name for reading. The file is closed
// with the Reader.
func Open(name string) (*Reader, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	R, h, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, errDecorate(err, "Open")
	}
	R.f = f
	return R, h, nil
}

// Len returns the number of atoms per frame.
func (R *Reader) Len() int {
	return R.natoms
}

// Next reads the next frame into dst, which must have 3N elements, and
// returns the cycle number and RMS stored with it. If dst is nil, the
// frame is read and checked, but the coordinates are discarded. At the end
// of the trace, io.EOF is returned.
func (R *Reader) Next(dst []float64) (cycle int, rms float64, err error) {
	if dst != nil && len(dst) != 3*R.natoms {
		return 0, 0, Error{fmt.Sprintf("%s: room for %d given, %d needed", WrongNAtoms, len(dst), 3*R.natoms), []string{"Next"}, true}
	}
	p := math.Pow(10, float64(R.prec))
	var temp [3]float64
	for i := 0; i < R.natoms; i++ {
		str, err := R.h.ReadString('\n')
		if err != nil {
			if err == io.EOF && i == 0 && str == "" {
				return 0, 0, io.EOF
			}
			return 0, 0, Error{"truncated frame: " + err.Error(), []string{"Next"}, true}
		}
		if err := decodeCoords(str, &temp, p); err != nil {
			return 0, 0, errDecorate(err, "Next")
		}
		if dst != nil {
			copy(dst[3*i:3*i+3], temp[:])
		}
	}
	str, err := R.h.ReadString('\n')
	if err != nil || !strings.HasPrefix(str, "*") {
		return 0, 0, Error{WrongFormat + ": can't read the frame termination mark", []string{"Next"}, true}
	}
	fields := strings.Fields(str)
	if len(fields) != 3 {
		return 0, 0, Error{fmt.Sprintf("%s: bad termination mark %q", WrongFormat, strings.TrimSpace(str)), []string{"Next"}, true}
	}
	cycle, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, Error{WrongFormat + ": " + err.Error(), []string{"Next"}, true}
	}
	rms, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, Error{WrongFormat + ": " + err.Error(), []string{"Next"}, true}
	}
	return cycle, rms, nil
}

func decodeCoords(str string, temp *[3]float64, p float64) error {
	s := strings.Fields(str)
	if len(s) != 3 {
		return Error{fmt.Sprintf("%s: %d fields in coordinates line %q", WrongFormat, len(s), strings.TrimSpace(str)), []string{"decodeCoords"}, true}
	}
	for i, v := range s {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Error{fmt.Sprintf("%s: can't parse coordinate %d (%s)", WrongFormat, i, v), []string{"decodeCoords"}, true}
		}
		temp[i] = float64(n) / p
	}
	return nil
}

// Close releases the resources of the Reader.
func (R *Reader) Close() error {
	R.z.Close()
	if R.f != nil {
		return R.f.Close()
	}
	return nil
}
