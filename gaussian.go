/*
 * gaussian.go, part of gaussian-wranger.
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

package chem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/team-mayes/gaussian-wranger/v3"
)

// functionalFromRoute extracts the density-functional name from a
// Gaussian route section, e.g. "m062x" out of "#p M062X/Def2TZVP
// nosymm". It returns the empty string when no method/basis token is
// present.
func functionalFromRoute(route string) string {
	for _, f := range strings.Fields(route) {
		if i := strings.Index(f, "/"); i > 0 && !strings.HasPrefix(f, "#") {
			return f[:i]
		}
	}
	return ""
}

// ComRead reads a Gaussian input (com/gjf) file with a Cartesian
// geometry from r. The route section fills Molecule.Functional, and a
// geom=connectivity section, when present, fills Molecule.Bonds.
func ComRead(r io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(r)
	var (
		route     string
		inRoute   bool
		routeDone bool
	)
	// header: link-0 commands, then the route section, terminated by a
	// blank line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "%"):
			continue
		case strings.HasPrefix(line, "#"):
			inRoute = true
			route += " " + line
		case inRoute && line != "":
			route += " " + line
		case inRoute && line == "":
			routeDone = true
		}
		if routeDone {
			break
		}
	}
	if !routeDone {
		return nil, CError{"chem: no route section (# line) found in Gaussian input", []string{"ComRead"}}
	}
	// title block, until the next blank line
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			break
		}
	}
	// charge and multiplicity
	var charge, multi int
	if !scanner.Scan() {
		return nil, CError{"chem: Gaussian input ends before the charge/multiplicity line", []string{"ComRead"}}
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		return nil, CError{fmt.Sprintf("chem: malformed charge/multiplicity line %q", scanner.Text()), []string{"ComRead"}}
	}
	charge, err1 := strconv.Atoi(fields[0])
	multi, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return nil, CError{fmt.Sprintf("chem: malformed charge/multiplicity line %q", scanner.Text()), []string{"ComRead"}}
	}
	// the geometry, until a blank line or EOF
	var (
		atoms  []*Atom
		coords []float64
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, CError{fmt.Sprintf("chem: not a Cartesian geometry line: %q", line), []string{"ComRead"}}
		}
		at, err := NewAtom(cleanGaussSymbol(fields[0]))
		if err != nil {
			return nil, errDecorate(err, "ComRead")
		}
		var xyz [3]float64
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[len(fields)-3+k], 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("chem: bad coordinate in line %q: %v", line, err), []string{"ComRead"}}
			}
			xyz[k] = v
		}
		atoms = append(atoms, at)
		coords = append(coords, xyz[0], xyz[1], xyz[2])
	}
	if len(atoms) == 0 {
		return nil, CError{"chem: no atoms found in Gaussian input", []string{"ComRead"}}
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "ComRead")
	}
	mol, err := NewMolecule(atoms, m)
	if err != nil {
		return nil, errDecorate(err, "ComRead")
	}
	mol.Charge = charge
	mol.Multi = multi
	mol.Functional = functionalFromRoute(route)
	if strings.Contains(strings.ToLower(route), "connectivity") {
		bonds, err := readConnectivity(scanner, len(atoms))
		if err != nil {
			return nil, errDecorate(err, "ComRead")
		}
		mol.Bonds = bonds
	}
	return mol, nil
}

// cleanGaussSymbol strips the extra specifications Gaussian allows on
// the element field of a geometry line, such as "C(Fragment=1)" or
// "C-C1", keeping only the element symbol.
func cleanGaussSymbol(s string) string {
	if i := strings.IndexAny(s, "(-"); i > 0 {
		return s[:i]
	}
	return s
}

// readConnectivity parses the geom=connectivity block of a Gaussian
// input file: one line per atom, "serial [neighbor order]...".
func readConnectivity(scanner *bufio.Scanner, natoms int) ([][]bool, error) {
	bonds := make([][]bool, natoms)
	for i := range bonds {
		bonds[i] = make([]bool, natoms)
	}
	read := 0
	for read < natoms && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if read == 0 {
				continue // tolerate a blank line before the block
			}
			break
		}
		fields := strings.Fields(line)
		serial, err := strconv.Atoi(fields[0])
		if err != nil || serial < 1 || serial > natoms {
			return nil, CError{fmt.Sprintf("chem: bad connectivity line %q", line), []string{"readConnectivity"}}
		}
		for k := 1; k+1 < len(fields); k += 2 {
			neigh, err := strconv.Atoi(fields[k])
			if err != nil || neigh < 1 || neigh > natoms {
				return nil, CError{fmt.Sprintf("chem: bad neighbor in connectivity line %q", line), []string{"readConnectivity"}}
			}
			bonds[serial-1][neigh-1] = true
			bonds[neigh-1][serial-1] = true
		}
		read++
	}
	if read < natoms {
		return nil, CError{fmt.Sprintf("chem: connectivity block has %d lines, want %d", read, natoms), []string{"readConnectivity"}}
	}
	return bonds, nil
}

// ComFileRead reads a Gaussian input file from disk. Gzipped files
// (.com.gz, .gjf.gz) are decompressed on the fly.
func ComFileRead(path string) (*Molecule, error) {
	r, closer, err := openMaybeGz(path)
	if err != nil {
		return nil, errDecorate(err, "ComFileRead")
	}
	defer closer()
	mol, err := ComRead(r)
	return mol, errDecorate(err, "ComFileRead "+path)
}

// GaussLog holds everything extracted from a Gaussian output file:
// the atoms, every geometry printed (in order), the SCF energies (in
// order), and the metadata from the echoed input section.
type GaussLog struct {
	Atoms      []*Atom
	Geoms      []*v3.Matrix
	Energies   []float64 // Hartree, one per completed SCF
	Charge     int
	Multi      int
	Functional string
	Normal     bool // Gaussian reported normal termination
}

// LogRead reads a Gaussian output file from r.
func LogRead(r io.Reader) (*GaussLog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	log := new(GaussLog)
	var (
		route   string
		inRoute bool
	)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case !inRoute && route == "" && strings.HasPrefix(trimmed, "#"):
			inRoute = true
			route = trimmed
		case inRoute:
			if strings.HasPrefix(trimmed, "---") {
				inRoute = false
			} else {
				// Gaussian wraps long routes over several lines
				route += " " + trimmed
			}
		case strings.HasPrefix(trimmed, "Charge =") && strings.Contains(trimmed, "Multiplicity"):
			fields := strings.Fields(trimmed)
			if len(fields) >= 6 {
				log.Charge, _ = strconv.Atoi(fields[2])
				log.Multi, _ = strconv.Atoi(fields[5])
			}
		case strings.Contains(line, "Standard orientation:") ||
			strings.Contains(line, "Input orientation:"):
			geom, zs, err := readOrientation(scanner)
			if err != nil {
				return nil, errDecorate(err, "LogRead")
			}
			if log.Atoms == nil {
				ats, err := atomsFromNumbers(zs)
				if err != nil {
					return nil, errDecorate(err, "LogRead")
				}
				log.Atoms = ats
			}
			log.Geoms = append(log.Geoms, geom)
		case strings.Contains(line, "SCF Done:"):
			fields := strings.Fields(line)
			if len(fields) >= 5 {
				if e, err := strconv.ParseFloat(fields[4], 64); err == nil {
					log.Energies = append(log.Energies, e)
				}
			}
		case strings.Contains(line, "Normal termination of Gaussian"):
			log.Normal = true
		}
	}
	if len(log.Geoms) == 0 {
		return nil, CError{"chem: no coordinates found in Gaussian output", []string{"LogRead"}}
	}
	log.Functional = functionalFromRoute(route)
	return log, nil
}

// readOrientation parses one orientation table. The scanner must have
// just consumed the "Standard orientation:" header line.
func readOrientation(scanner *bufio.Scanner) (*v3.Matrix, []int, error) {
	// dashes, two header lines, dashes
	for i := 0; i < 4; i++ {
		if !scanner.Scan() {
			return nil, nil, CError{"chem: truncated orientation table", []string{"readOrientation"}}
		}
	}
	var (
		zs     []int
		coords []float64
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "---") {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return nil, nil, CError{fmt.Sprintf("chem: malformed orientation line %q", line), []string{"readOrientation"}}
		}
		z, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, CError{fmt.Sprintf("chem: bad atomic number in %q", line), []string{"readOrientation"}}
		}
		if z <= 0 { // dummy atoms and ghost centers are skipped
			continue
		}
		var xyz [3]float64
		for k := 0; k < 3; k++ {
			xyz[k], err = strconv.ParseFloat(fields[3+k], 64)
			if err != nil {
				return nil, nil, CError{fmt.Sprintf("chem: bad coordinate in %q", line), []string{"readOrientation"}}
			}
		}
		zs = append(zs, z)
		coords = append(coords, xyz[0], xyz[1], xyz[2])
	}
	if len(zs) == 0 {
		return nil, nil, CError{"chem: empty orientation table", []string{"readOrientation"}}
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, errDecorate(err, "readOrientation")
	}
	return m, zs, nil
}

func atomsFromNumbers(zs []int) ([]*Atom, error) {
	ats := make([]*Atom, len(zs))
	for i, z := range zs {
		s := Symbol(z)
		if s == "" {
			return nil, CError{fmt.Sprintf("chem: atomic number %d out of the supported range [1,%d]", z, MaxZ), []string{"atomsFromNumbers"}}
		}
		ats[i] = &Atom{Name: s, Symbol: s, Z: z}
	}
	return ats, nil
}

// LogFileRead reads a Gaussian output file from disk, decompressing
// .gz files on the fly.
func LogFileRead(path string) (*GaussLog, error) {
	r, closer, err := openMaybeGz(path)
	if err != nil {
		return nil, errDecorate(err, "LogFileRead")
	}
	defer closer()
	log, err := LogRead(r)
	return log, errDecorate(err, "LogFileRead "+path)
}

// LastGeom returns the last geometry of the log.
func (g *GaussLog) LastGeom() *v3.Matrix {
	return g.Geoms[len(g.Geoms)-1]
}

// LowestEnergyGeom returns the geometry paired with the lowest SCF
// energy. Geometries printed after the last completed SCF are ignored.
func (g *GaussLog) LowestEnergyGeom() (*v3.Matrix, error) {
	if len(g.Energies) == 0 {
		return nil, CError{"chem: no SCF energies in Gaussian output", []string{"LowestEnergyGeom"}}
	}
	best := 0
	for i, e := range g.Energies {
		if e < g.Energies[best] {
			best = i
		}
	}
	if best >= len(g.Geoms) {
		best = len(g.Geoms) - 1
	}
	return g.Geoms[best], nil
}

// Molecule assembles a Molecule from the log, using the given
// geometry (usually LastGeom or LowestEnergyGeom).
func (g *GaussLog) Molecule(geom *v3.Matrix) (*Molecule, error) {
	ats := make([]*Atom, len(g.Atoms))
	for i, at := range g.Atoms {
		ats[i] = at.Copy()
	}
	mol, err := NewMolecule(ats, geom.Copy())
	if err != nil {
		return nil, errDecorate(err, "GaussLog.Molecule")
	}
	mol.Charge = g.Charge
	mol.Multi = g.Multi
	mol.Functional = g.Functional
	return mol, nil
}

// ComTemplate is a Gaussian input file split around its geometry, used
// to re-head coordinates extracted from a finished job. Head runs
// through the charge/multiplicity line; Tail is everything after the
// geometry block (extra blank lines excluded).
type ComTemplate struct {
	Head   []string
	Charge int
	Multi  int
	Tail   []string
}

// ReadComTemplate loads a Gaussian input template from path.
func ReadComTemplate(path string) (*ComTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errDecorate(err, "ReadComTemplate")
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	t := new(ComTemplate)
	blanks := 0
	geomDone := false
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case blanks < 2: // header: through route and title sections
			t.Head = append(t.Head, line)
			if trimmed == "" {
				blanks++
			}
		case blanks == 2: // charge/multiplicity line
			fields := strings.Fields(trimmed)
			if len(fields) < 2 {
				return nil, CError{fmt.Sprintf("chem: malformed charge/multiplicity line %q in template", line), []string{"ReadComTemplate"}}
			}
			c, err1 := strconv.Atoi(fields[0])
			m, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				return nil, CError{fmt.Sprintf("chem: malformed charge/multiplicity line %q in template", line), []string{"ReadComTemplate"}}
			}
			t.Charge, t.Multi = c, m
			t.Head = append(t.Head, line)
			blanks++
		case !geomDone: // skip the template's own geometry
			if trimmed == "" {
				geomDone = true
			}
		default:
			t.Tail = append(t.Tail, line)
		}
	}
	if blanks < 3 {
		return nil, CError{"chem: template is not a complete Gaussian input file", []string{"ReadComTemplate"}}
	}
	return t, nil
}

// WriteCom writes mol as a Gaussian input using the template's header
// and tail. When tplChargeMult is false the molecule's own charge and
// multiplicity replace the template's.
func (t *ComTemplate) WriteCom(w io.Writer, mol *Molecule, tplChargeMult bool) error {
	charge, multi := mol.Charge, mol.Multi
	if tplChargeMult {
		charge, multi = t.Charge, t.Multi
	}
	for i, line := range t.Head {
		if i == len(t.Head)-1 { // the charge/multiplicity line
			fmt.Fprintf(w, "%d %d\n", charge, multi)
			break
		}
		fmt.Fprintln(w, line)
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		fmt.Fprintf(w, "%-3s %15.6f %15.6f %15.6f\n", at.Symbol,
			mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2))
	}
	fmt.Fprintln(w)
	for _, line := range t.Tail {
		fmt.Fprintln(w, line)
	}
	return nil
}

// WriteFragmentCom writes a Gaussian input with the given route line,
// title and charge/multiplicity line; counterpoise jobs put several
// charge/multiplicity pairs on that line, one per fragment after the
// supermolecule. Atoms with a nonzero fragment label are tagged in the
// counterpoise style ("symbol(Fragment=n)").
func WriteFragmentCom(w io.Writer, route, title, chargeMult string, mol *Molecule, fragments []int) error {
	fmt.Fprintf(w, "%s\n\n%s\n\n%s\n", route, title, chargeMult)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		label := at.Symbol
		if fragments != nil && fragments[i] > 0 {
			label = fmt.Sprintf("%s(Fragment=%d)", at.Symbol, fragments[i])
		}
		fmt.Fprintf(w, "%-16s %15.6f %15.6f %15.6f\n", label,
			mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2))
	}
	fmt.Fprintln(w)
	return nil
}
