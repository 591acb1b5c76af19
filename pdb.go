/*
 * pdb.go, part of gaussian-wranger.
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
	"strconv"
	"strings"

	v3 "github.com/team-mayes/gaussian-wranger/v3"
)

// PDBRead reads ATOM and HETATM records from a PDB file. Only the
// first model is read; the element is taken from columns 77-78 when
// present and derived from the atom name otherwise.
func PDBRead(r io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(r)
	var (
		atoms  []*Atom
		coords []float64
	)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		het := strings.HasPrefix(line, "HETATM")
		if !strings.HasPrefix(line, "ATOM") && !het {
			continue
		}
		if len(line) < 54 {
			return nil, CError{fmt.Sprintf("chem: PDB record too short: %q", line), []string{"PDBRead"}}
		}
		name := strings.TrimSpace(line[12:16])
		symbol := ""
		if len(line) >= 78 {
			symbol = strings.TrimSpace(line[76:78])
		}
		if symbol == "" {
			var err error
			symbol, err = symbolFromName(name)
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
		}
		at, err := NewAtom(symbol)
		if err != nil {
			return nil, errDecorate(err, "PDBRead")
		}
		at.Name = name
		at.Het = het
		var xyz [3]float64
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(line[30+8*k:38+8*k]), 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("chem: bad coordinate in PDB record %q", line), []string{"PDBRead"}}
			}
			xyz[k] = v
		}
		atoms = append(atoms, at)
		coords = append(coords, xyz[0], xyz[1], xyz[2])
	}
	if len(atoms) == 0 {
		return nil, CError{"chem: no ATOM/HETATM records found", []string{"PDBRead"}}
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	mol, err := NewMolecule(atoms, m)
	return mol, errDecorate(err, "PDBRead")
}

// PDBFileRead reads a PDB file from disk, decompressing .pdb.gz on
// the fly.
func PDBFileRead(path string) (*Molecule, error) {
	r, closer, err := openMaybeGz(path)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	defer closer()
	mol, err := PDBRead(r)
	return mol, errDecorate(err, "PDBFileRead "+path)
}

// PDBWrite writes mol as minimal PDB ATOM/HETATM records followed by
// END. Molecule ids, when assigned, become the residue sequence
// number, which keeps fragments distinguishable in viewers.
func PDBWrite(w io.Writer, mol *Molecule) error {
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		record := "ATOM  "
		if at.Het {
			record = "HETATM"
		}
		resSeq := at.MolID
		if resSeq == 0 {
			resSeq = 1
		}
		name := at.Name
		if name == "" {
			name = at.Symbol
		}
		_, err := fmt.Fprintf(w, "%s%5d %-4s %3s %s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			record, i+1, name, "UNL", "A", resSeq,
			mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2),
			1.0, 0.0, strings.ToUpper(at.Symbol))
		if err != nil {
			return errDecorate(err, "PDBWrite")
		}
	}
	_, err := fmt.Fprintln(w, "END")
	return errDecorate(err, "PDBWrite")
}
