/*
 * chem.go, part of gaussian-wranger.
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
	"fmt"

	v3 "github.com/team-mayes/gaussian-wranger/v3"
)

// Atom contains the per-atom data read from a structure file, except
// for the coordinates, which live in a matrix in the Molecule. The
// atomic number Z is resolved once, when the atom is created, so no
// later stage needs to match symbol strings.
type Atom struct {
	Name   string // the name in the file, e.g. a PDB atom name
	Symbol string
	Z      int
	MolID  int  // 1-based molecule id from connectivity, 0 if unassigned
	Het    bool // was a HETATM in the PDB file
}

// NewAtom builds an Atom from an element symbol, resolving the atomic
// number. It returns an error for unsupported elements.
func NewAtom(symbol string) (*Atom, error) {
	z, err := AtomicNumber(symbol)
	if err != nil {
		return nil, errDecorate(err, "NewAtom")
	}
	return &Atom{Name: symbol, Symbol: Symbol(z), Z: z}, nil
}

// Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilMolecule)
	}
	at := *A
	return &at
}

// Molecule is one structure read from a file: an ordered set of atoms,
// their Cartesian coordinates in Angstrom, and whatever metadata the
// file carried. The atom order is the file order and is preserved by
// every operation in the library.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Charge int
	Multi  int
	// Functional is the density functional read from a Gaussian route
	// section, empty when none was found.
	Functional string
	// Bonds is an optional symmetric connectivity matrix. Bonds[i][j]
	// is true when atoms i and j are bonded.
	Bonds [][]bool
}

// NewMolecule builds a Molecule and checks that the number of
// coordinate vectors matches the number of atoms.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if atoms == nil || coords == nil {
		return nil, CError{"chem: nil atoms or coordinates", []string{"NewMolecule"}}
	}
	if len(atoms) != coords.NVecs() {
		return nil, CError{fmt.Sprintf("chem: %d atoms but %d coordinate vectors", len(atoms), coords.NVecs()), []string{"NewMolecule"}}
	}
	return &Molecule{Atoms: atoms, Coords: coords, Multi: 1}, nil
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Atom returns the atom at index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic(ErrAtomOutOfRange)
	}
	return M.Atoms[i]
}

// Numbers returns the atomic numbers of all atoms, in order.
func (M *Molecule) Numbers() []int {
	ret := make([]int, M.Len())
	for i, at := range M.Atoms {
		ret[i] = at.Z
	}
	return ret
}

// MolIDs returns the per-atom molecule ids, in order. Ids are zero
// until AssignMolIDs has run.
func (M *Molecule) MolIDs() []int {
	ret := make([]int, M.Len())
	for i, at := range M.Atoms {
		ret[i] = at.MolID
	}
	return ret
}

// Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	if M == nil {
		panic(ErrNilMolecule)
	}
	ret := &Molecule{
		Atoms:      make([]*Atom, M.Len()),
		Coords:     M.Coords.Copy(),
		Charge:     M.Charge,
		Multi:      M.Multi,
		Functional: M.Functional,
	}
	for i, at := range M.Atoms {
		ret.Atoms[i] = at.Copy()
	}
	if M.Bonds != nil {
		ret.Bonds = make([][]bool, len(M.Bonds))
		for i, row := range M.Bonds {
			ret.Bonds[i] = append([]bool(nil), row...)
		}
	}
	return ret
}

// SomeAtoms returns a new Molecule with copies of the atoms and
// coordinates at the given indexes, in order. Connectivity is not
// carried over.
func (M *Molecule) SomeAtoms(indexes []int) (*Molecule, error) {
	ats := make([]*Atom, 0, len(indexes))
	for k, j := range indexes {
		if j < 0 || j >= M.Len() {
			return nil, CError{fmt.Sprintf("chem: atom requested (number %d, value %d) out of range", k, j), []string{"SomeAtoms"}}
		}
		ats = append(ats, M.Atoms[j].Copy())
	}
	coords, err := M.Coords.SomeVecs(indexes)
	if err != nil {
		return nil, errDecorate(err, "SomeAtoms")
	}
	ret, err := NewMolecule(ats, coords)
	if err != nil {
		return nil, errDecorate(err, "SomeAtoms")
	}
	ret.Charge = M.Charge
	ret.Multi = M.Multi
	ret.Functional = M.Functional
	return ret, nil
}
