/*
 * bonds.go, part of gaussian-wranger.
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
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// AssignBonds fills mol.Bonds with a simple distance criterion on
// covalent radii: atoms bond when their distance is below the sum of
// their covalent radii plus a tolerance, and below maxDist when
// maxDist is positive. Atoms closer than a fraction of the radii sum
// are an error (clashing input geometry). Not meant for proteins or
// macromolecules; it is quadratic on the number of atoms.
func AssignBonds(mol *Molecule, maxDist float64) error {
	n := mol.Len()
	bonds := make([][]bool, n)
	for i := range bonds {
		bonds[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		cov1, ok := CovalentRadius(mol.Atom(i).Symbol)
		if !ok {
			return CError{fmt.Sprintf("chem: no covalent radius for element %s", mol.Atom(i).Symbol), []string{"AssignBonds"}}
		}
		for j := i + 1; j < n; j++ {
			cov2, ok := CovalentRadius(mol.Atom(j).Symbol)
			if !ok {
				return CError{fmt.Sprintf("chem: no covalent radius for element %s", mol.Atom(j).Symbol), []string{"AssignBonds"}}
			}
			d := mol.Coords.Dist(i, j)
			if d < tooclose*(cov1+cov2) {
				return CError{fmt.Sprintf("chem: atoms %d and %d too close (%.3f A)", i+1, j+1, d), []string{"AssignBonds"}}
			}
			if d > cov1+cov2+bondtol {
				continue
			}
			if maxDist > 0 && d > maxDist {
				continue
			}
			bonds[i][j] = true
			bonds[j][i] = true
		}
	}
	mol.Bonds = bonds
	return nil
}

// CutBond removes the bond between atoms i and j (0-based) from the
// connectivity matrix. Cutting a bond that is not there is an error,
// as it almost always means a mistyped atom pair.
func CutBond(mol *Molecule, i, j int) error {
	if mol.Bonds == nil {
		return CError{"chem: molecule has no connectivity", []string{"CutBond"}}
	}
	if i < 0 || j < 0 || i >= mol.Len() || j >= mol.Len() {
		return CError{fmt.Sprintf("chem: bond %d-%d out of range", i+1, j+1), []string{"CutBond"}}
	}
	if !mol.Bonds[i][j] {
		return CError{fmt.Sprintf("chem: atoms %d and %d are not bonded", i+1, j+1), []string{"CutBond"}}
	}
	mol.Bonds[i][j] = false
	mol.Bonds[j][i] = false
	return nil
}

// AssignMolIDs walks the connected components of the bond graph and
// gives every atom a 1-based molecule id, numbered by the smallest
// atom index in each component. It returns the number of molecules
// found. The molecule must have a connectivity matrix.
func AssignMolIDs(mol *Molecule) (int, error) {
	if mol.Bonds == nil {
		return 0, CError{"chem: molecule has no connectivity; run AssignBonds or use a file with a connectivity section", []string{"AssignMolIDs"}}
	}
	g := simple.NewUndirectedGraph()
	for i := 0; i < mol.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < mol.Len(); i++ {
		for j := i + 1; j < mol.Len(); j++ {
			if mol.Bonds[i][j] {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	comps := topo.ConnectedComponents(g)
	// deterministic ids: order components by their smallest atom index
	mins := make([]int, len(comps))
	for k, comp := range comps {
		mins[k] = minNodeID(comp)
	}
	order := make([]int, len(comps))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return mins[order[a]] < mins[order[b]] })
	for id, k := range order {
		for _, node := range comps[k] {
			mol.Atoms[int(node.ID())].MolID = id + 1
		}
	}
	return len(comps), nil
}

func minNodeID(comp []graph.Node) int {
	min := int(comp[0].ID())
	for _, n := range comp[1:] {
		if int(n.ID()) < min {
			min = int(n.ID())
		}
	}
	return min
}

// FragmentAtoms returns, for each molecule id 1..n, the list of atom
// indexes belonging to it, preserving file order within fragments.
func FragmentAtoms(mol *Molecule, n int) [][]int {
	ret := make([][]int, n)
	for i, at := range mol.Atoms {
		if at.MolID >= 1 && at.MolID <= n {
			ret[at.MolID-1] = append(ret[at.MolID-1], i)
		}
	}
	return ret
}
