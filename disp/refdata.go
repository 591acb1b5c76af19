/*
 * refdata.go, part of gaussian-wranger.
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
 */

package disp

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The D3 correction is parameterized up to Pu.
const maxElem = 94

// maxC is the maximum number of reference coordination environments
// ("hybridization slots") per element in the C6 table.
const maxC = 5

// C6Ref is one entry of the reference C6 table: the C6 coefficient for
// a pair of reference systems, and the coordination numbers those
// systems have.
type C6Ref struct {
	C6  float64
	CNA float64
	CNB float64
}

// RefData holds the dispersion reference data, loaded once and
// read-only afterwards, so one RefData can serve any number of
// sequential calculations.
//
// Slices are indexed by atomic number (index 0 unused). R0 is kept in
// atomic units; Rcov in Angstrom, as the coordination-number damping
// works in Angstrom.
type RefData struct {
	Rcov [maxElem + 1]float64
	R2R4 [maxElem + 1]float64
	r0   [maxElem + 1][maxElem + 1]float64
	c6ab [maxElem + 1][maxElem + 1]*[maxC][maxC]*C6Ref
	mxc  [maxElem + 1]int
}

// builtin is an abbreviated starter dataset covering H, C, N and O so
// that the tools work out of the box. The cross-pair C6 values are
// combined geometrically from the self-pair references; for production
// numbers load the full Grimme parameterization with LoadRefData.
//
//go:embed data/d3param.dat
var builtin []byte

// DefaultRefData returns the built-in reference dataset.
func DefaultRefData() *RefData {
	ref, err := ReadRefData(bytes.NewReader(builtin))
	if err != nil {
		// the embedded file ships with the binary; failing to parse it
		// is a build defect, not a runtime condition
		panic(PanicMsg("disp: embedded reference data corrupted: " + err.Error()))
	}
	return ref
}

// LoadRefData reads a reference-data file from disk.
func LoadRefData(path string) (*RefData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{err.Error(), []string{"LoadRefData"}}
	}
	defer f.Close()
	ref, err := ReadRefData(f)
	return ref, errDecorate(err, "LoadRefData "+path)
}

// ReadRefData parses reference data from r. The format is line
// oriented, whitespace separated, with # comments:
//
//	rcov Z radius         covalent radius, Angstrom
//	r2r4 Z value          sqrt(Q) multipole term
//	r0   Za Zb radius     diatomic cutoff radius, Angstrom
//	c6   Za Zb i j C6 CNA CNB   reference C6 for slot pair (i,j), i,j in [0,5)
//
// r0 and c6 lines are mirrored automatically, so each unordered pair
// appears once. Atomic numbers outside [1,94] are an error.
func ReadRefData(r io.Reader) (*RefData, error) {
	ref := new(RefData)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "rcov":
			err = ref.addRcov(fields[1:])
		case "r2r4":
			err = ref.addR2R4(fields[1:])
		case "r0":
			err = ref.addR0(fields[1:])
		case "c6":
			err = ref.addC6(fields[1:])
		default:
			err = CError{fmt.Sprintf("unknown record type %q", fields[0]), nil}
		}
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ReadRefData: line %d", lineno))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{err.Error(), []string{"ReadRefData"}}
	}
	ref.countSlots()
	return ref, nil
}

func parseZ(s string) (int, error) {
	z, err := strconv.Atoi(s)
	if err != nil || z < 1 || z > maxElem {
		return 0, CError{fmt.Sprintf("atomic number %q outside [1,%d]", s, maxElem), nil}
	}
	return z, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, CError{fmt.Sprintf("bad number %q", f), nil}
		}
		out[i] = v
	}
	return out, nil
}

func (ref *RefData) addRcov(fields []string) error {
	if len(fields) != 2 {
		return CError{"rcov wants 2 fields: Z radius", nil}
	}
	z, err := parseZ(fields[0])
	if err != nil {
		return err
	}
	v, err := parseFloats(fields[1:])
	if err != nil {
		return err
	}
	ref.Rcov[z] = v[0]
	return nil
}

func (ref *RefData) addR2R4(fields []string) error {
	if len(fields) != 2 {
		return CError{"r2r4 wants 2 fields: Z value", nil}
	}
	z, err := parseZ(fields[0])
	if err != nil {
		return err
	}
	v, err := parseFloats(fields[1:])
	if err != nil {
		return err
	}
	ref.R2R4[z] = v[0]
	return nil
}

func (ref *RefData) addR0(fields []string) error {
	if len(fields) != 3 {
		return CError{"r0 wants 3 fields: Za Zb radius", nil}
	}
	za, err := parseZ(fields[0])
	if err != nil {
		return err
	}
	zb, err := parseZ(fields[1])
	if err != nil {
		return err
	}
	v, err := parseFloats(fields[2:])
	if err != nil {
		return err
	}
	// stored in atomic units; the pairwise pass works in au
	ref.r0[za][zb] = v[0] / autoang
	ref.r0[zb][za] = v[0] / autoang
	return nil
}

func (ref *RefData) addC6(fields []string) error {
	if len(fields) != 7 {
		return CError{"c6 wants 7 fields: Za Zb i j C6 CNA CNB", nil}
	}
	za, err := parseZ(fields[0])
	if err != nil {
		return err
	}
	zb, err := parseZ(fields[1])
	if err != nil {
		return err
	}
	i, err1 := strconv.Atoi(fields[2])
	j, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || i < 0 || i >= maxC || j < 0 || j >= maxC {
		return CError{fmt.Sprintf("slot indexes %q %q outside [0,%d)", fields[2], fields[3], maxC), nil}
	}
	v, err := parseFloats(fields[4:])
	if err != nil {
		return err
	}
	ref.setC6(za, zb, i, j, C6Ref{C6: v[0], CNA: v[1], CNB: v[2]})
	ref.setC6(zb, za, j, i, C6Ref{C6: v[0], CNA: v[2], CNB: v[1]})
	return nil
}

func (ref *RefData) setC6(za, zb, i, j int, c C6Ref) {
	tab := ref.c6ab[za][zb]
	if tab == nil {
		tab = new([maxC][maxC]*C6Ref)
		ref.c6ab[za][zb] = tab
	}
	tab[i][j] = &c
}

// countSlots fills mxc: for each element, the number of populated
// diagonal slots in its self-pair table, which bounds the
// interpolation loops.
func (ref *RefData) countSlots() {
	for z := 1; z <= maxElem; z++ {
		n := 0
		tab := ref.c6ab[z][z]
		if tab == nil {
			continue
		}
		for l := 0; l < maxC; l++ {
			if tab[l][l] != nil && tab[l][l].C6 > 0 {
				n++
			}
		}
		ref.mxc[z] = n
	}
}

// R0 returns the diatomic cutoff radius for an element pair, in atomic
// units, and whether one is tabulated.
func (ref *RefData) R0(za, zb int) (float64, bool) {
	if za < 1 || za > maxElem || zb < 1 || zb > maxElem {
		return 0, false
	}
	r := ref.r0[za][zb]
	return r, r > 0
}

// HasElement reports whether the dataset carries the per-element data
// (covalent radius, r2r4 and at least one C6 reference) for z.
func (ref *RefData) HasElement(z int) bool {
	return z >= 1 && z <= maxElem && ref.Rcov[z] > 0 && ref.R2R4[z] > 0 && ref.mxc[z] > 0
}
