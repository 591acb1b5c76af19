/*
 * bonds_test.go, part of gaussian-wranger.
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

import "testing"

func TestAssignBonds(Te *testing.T) {
	mol, err := PDBFileRead("test/water_dimer.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if err := AssignBonds(mol, 0); err != nil {
		Te.Fatal(err)
	}
	if !mol.Bonds[0][1] || !mol.Bonds[0][2] || !mol.Bonds[3][4] || !mol.Bonds[3][5] {
		Te.Error("O-H bonds within the waters missing")
	}
	if mol.Bonds[0][3] || mol.Bonds[1][3] || mol.Bonds[2][4] {
		Te.Error("spurious bonds between the two waters")
	}
}

func TestAssignMolIDs(Te *testing.T) {
	mol, err := PDBFileRead("test/water_dimer.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := AssignMolIDs(mol); err == nil {
		Te.Error("AssignMolIDs worked without connectivity")
	}
	if err := AssignBonds(mol, 0); err != nil {
		Te.Fatal(err)
	}
	n, err := AssignMolIDs(mol)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 2 {
		Te.Fatalf("found %d molecules, want 2", n)
	}
	want := []int{1, 1, 1, 2, 2, 2}
	for i, w := range want {
		if mol.Atom(i).MolID != w {
			Te.Errorf("atom %d in molecule %d, want %d", i, mol.Atom(i).MolID, w)
		}
	}
	frags := FragmentAtoms(mol, n)
	if len(frags) != 2 || len(frags[0]) != 3 || frags[1][0] != 3 {
		Te.Errorf("FragmentAtoms gave %v", frags)
	}
}

func TestCutBond(Te *testing.T) {
	mol, err := ComFileRead("test/ethanol.com")
	if err != nil {
		Te.Fatal(err)
	}
	if err := CutBond(mol, 0, 2); err == nil {
		Te.Error("CutBond cut a bond that does not exist")
	}
	if err := CutBond(mol, 1, 2); err != nil { // the C-O bond
		Te.Fatal(err)
	}
	n, err := AssignMolIDs(mol)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 2 {
		Te.Errorf("cutting C-O left %d fragments, want 2", n)
	}
	// ethyl keeps 7 atoms, the hydroxyl 2
	frags := FragmentAtoms(mol, n)
	if len(frags[0]) != 7 || len(frags[1]) != 2 {
		Te.Errorf("fragment sizes %d and %d, want 7 and 2", len(frags[0]), len(frags[1]))
	}
}
