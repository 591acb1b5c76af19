/*
 * disp_test.go, part of gaussian-wranger.
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
	"math"
	"strings"
	"testing"

	chem "github.com/team-mayes/gaussian-wranger"
	v3 "github.com/team-mayes/gaussian-wranger/v3"
)

func testMol(Te *testing.T, symbols []string, coords []float64) *chem.Molecule {
	atoms := make([]*chem.Atom, len(symbols))
	for i, s := range symbols {
		at, err := chem.NewAtom(s)
		if err != nil {
			Te.Fatal(err)
		}
		atoms[i] = at
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := chem.NewMolecule(atoms, m)
	if err != nil {
		Te.Fatal(err)
	}
	mol.Functional = "b3lyp"
	return mol
}

func TestResolve(Te *testing.T) {
	p := Params{Damp: Zero}
	if err := p.Resolve("B3LYP"); err != nil {
		Te.Fatal(err)
	}
	if p.S6 != 1.0 || p.RS6 != 1.261 || p.S8 != 1.703 {
		Te.Errorf("B3LYP zero-damping defaults wrong: %+v", p)
	}
	// hyphens and case must not matter
	p = Params{Damp: BJ}
	if err := p.Resolve("B97-D"); err != nil {
		Te.Fatal(err)
	}
	if p.A1 != 0.5545 || p.A2 != 3.2297 {
		Te.Errorf("B97-D BJ defaults wrong: %+v", p)
	}
	// explicit parameters survive any functional name
	p = Params{Damp: Zero, S6: 1.0, RS6: 1.2, S8: 0.7}
	if err := p.Resolve("nosuchfunctional"); err != nil {
		Te.Fatal(err)
	}
	if p.RS6 != 1.2 {
		Te.Error("explicit parameters were overwritten")
	}
	// unset parameters and an unknown functional have no defaults
	p = Params{Damp: Zero}
	if err := p.Resolve("nosuchfunctional"); err == nil {
		Te.Error("Resolve invented parameters for an unknown functional")
	}
	p = Params{Damp: BJ, A1: 0.4}
	if err := p.Resolve(""); err == nil {
		Te.Error("Resolve accepted a partial BJ parameter set with no functional")
	}
}

func TestKnownFunctional(Te *testing.T) {
	if !KnownFunctional("b3lyp", Zero) || !KnownFunctional("B3LYP", BJ) {
		Te.Error("B3LYP should be known under both schemes")
	}
	if !KnownFunctional("M06-2X", Zero) {
		Te.Error("M06-2X should normalize to a known functional")
	}
	if KnownFunctional("m062x", BJ) {
		Te.Error("M06-2X has no BJ parameterization")
	}
	if KnownFunctional("nosuch", Zero) {
		Te.Error("unknown functional reported as known")
	}
}

func TestCalcZero(Te *testing.T) {
	ref := testRef(Te)
	// H2 at the equilibrium bond length
	mol := testMol(Te, []string{"H", "H"}, []float64{0, 0, 0, 0.741, 0, 0})
	res, err := Calc(mol, ref, Params{Damp: Zero}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.R6 >= 0 || res.R8 >= 0 {
		Te.Errorf("dispersion must be attractive, got R6 = %v R8 = %v", res.R6, res.R8)
	}
	if res.HasThreeBody {
		Te.Error("three-body term computed without being requested")
	}
	if math.Abs(res.TotalHartree()*autokcal-res.TotalKcal()) > 1e-12 {
		Te.Error("unit conversion between TotalKcal and TotalHartree inconsistent")
	}
	// past the damping region the correction decays with distance
	mid := testMol(Te, []string{"H", "H"}, []float64{0, 0, 0, 4.0, 0, 0})
	resMid, err := Calc(mid, ref, Params{Damp: Zero}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	far := testMol(Te, []string{"H", "H"}, []float64{0, 0, 0, 8.0, 0, 0})
	resFar, err := Calc(far, ref, Params{Damp: Zero}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if resMid.TotalKcal() >= 0 || resFar.TotalKcal() >= 0 {
		Te.Errorf("far pairs not attractive: %v and %v kcal/mol", resMid.TotalKcal(), resFar.TotalKcal())
	}
	if math.Abs(resFar.TotalKcal()) >= math.Abs(resMid.TotalKcal()) {
		Te.Errorf("dispersion grew from 4 to 8 A: %v vs %v kcal/mol", resMid.TotalKcal(), resFar.TotalKcal())
	}
}

func TestCalcBJ(Te *testing.T) {
	ref := testRef(Te)
	mol := testMol(Te, []string{"C", "C"}, []float64{0, 0, 0, 1.53, 0, 0})
	res, err := Calc(mol, ref, Params{Damp: BJ}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.TotalKcal() >= 0 {
		Te.Errorf("BJ dispersion = %v kcal/mol, want negative", res.TotalKcal())
	}
	// unlike zero damping, BJ stays finite as the distance vanishes
	near := testMol(Te, []string{"C", "C"}, []float64{0, 0, 0, 0.99, 0, 0})
	resNear, err := Calc(near, ref, Params{Damp: BJ}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if math.IsInf(resNear.TotalKcal(), 0) || math.IsNaN(resNear.TotalKcal()) {
		Te.Error("BJ damping diverged at short range")
	}
}

func TestCalcUnknownElement(Te *testing.T) {
	ref := testRef(Te)
	mol := testMol(Te, []string{"H", "Fe"}, []float64{0, 0, 0, 2.0, 0, 0})
	if _, err := Calc(mol, ref, Params{Damp: Zero}, nil); err == nil {
		Te.Error("Calc accepted an element missing from the dataset")
	}
}

func TestCalcUnknownFunctional(Te *testing.T) {
	ref := testRef(Te)
	mol := testMol(Te, []string{"H", "H"}, []float64{0, 0, 0, 0.741, 0, 0})
	mol.Functional = "nosuch"
	if _, err := Calc(mol, ref, Params{Damp: Zero}, nil); err == nil {
		Te.Error("Calc ran with neither parameters nor a known functional")
	}
	// all-sentinel BJ parameters with no functional at all
	mol.Functional = ""
	if _, err := Calc(mol, ref, Params{Damp: BJ}, nil); err == nil {
		Te.Error("Calc ran BJ damping with sentinel parameters and no functional")
	}
}

func TestThreeBody(Te *testing.T) {
	ref := testRef(Te)
	// a diatomic has no triples: the term must be exactly zero
	mol := testMol(Te, []string{"H", "H"}, []float64{0, 0, 0, 0.741, 0, 0})
	res, err := Calc(mol, ref, Params{Damp: Zero}, &Options{ThreeBody: true})
	if err != nil {
		Te.Fatal(err)
	}
	if !res.HasThreeBody || res.ThreeBody != 0 {
		Te.Errorf("three-body term for a diatomic = %v, want 0", res.ThreeBody)
	}
	// an equilateral triangle has ang > 1 everywhere: repulsive term
	s := 1.6
	tri := testMol(Te, []string{"C", "C", "C"}, []float64{
		0, 0, 0,
		s, 0, 0,
		s / 2, s * math.Sqrt(3) / 2, 0,
	})
	res, err = Calc(tri, ref, Params{Damp: Zero}, &Options{ThreeBody: true})
	if err != nil {
		Te.Fatal(err)
	}
	if res.ThreeBody <= 0 {
		Te.Errorf("three-body term for an equilateral triangle = %v, want > 0", res.ThreeBody)
	}
}

func TestPermutationInvariance(Te *testing.T) {
	ref := testRef(Te)
	coords := []float64{
		0, 0, 0,
		1.53, 0, 0,
		1.53, 1.53, 0,
		0, 0, 1.1,
	}
	mol := testMol(Te, []string{"C", "C", "C", "H"}, coords)
	res, err := Calc(mol, ref, Params{Damp: Zero}, &Options{ThreeBody: true})
	if err != nil {
		Te.Fatal(err)
	}
	// same geometry, atoms listed in reverse order
	rev := []float64{
		0, 0, 1.1,
		1.53, 1.53, 0,
		1.53, 0, 0,
		0, 0, 0,
	}
	molRev := testMol(Te, []string{"H", "C", "C", "C"}, rev)
	resRev, err := Calc(molRev, ref, Params{Damp: Zero}, &Options{ThreeBody: true})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(res.TotalKcal()-resRev.TotalKcal()) > 1e-10 {
		Te.Errorf("relabeling the atoms changed the energy: %v vs %v", res.TotalKcal(), resRev.TotalKcal())
	}
}

func TestThreeBodyCollinear(Te *testing.T) {
	ref := testRef(Te)
	// three atoms on a line: the triangle terms must evaluate without
	// dividing by zero
	mol := testMol(Te, []string{"C", "C", "C"}, []float64{
		0, 0, 0,
		1.5, 0, 0,
		3.0, 0, 0,
	})
	res, err := Calc(mol, ref, Params{Damp: Zero}, &Options{ThreeBody: true})
	if err != nil {
		Te.Fatal(err)
	}
	if math.IsNaN(res.ThreeBody) || math.IsInf(res.ThreeBody, 0) {
		Te.Errorf("collinear three-body term = %v", res.ThreeBody)
	}
}

func TestIntermolecular(Te *testing.T) {
	ref := testRef(Te)
	mol := testMol(Te, []string{"H", "H"}, []float64{0, 0, 0, 2.0, 0, 0})
	// without molecule ids the mode is a configuration error
	if _, err := Calc(mol, ref, Params{Damp: Zero}, &Options{Intermolecular: true}); err == nil {
		Te.Error("intermolecular mode ran without molecule ids")
	}
	// a single molecule has no intermolecular pairs at all
	mol.Atom(0).MolID = 1
	mol.Atom(1).MolID = 1
	res, err := Calc(mol, ref, Params{Damp: Zero}, &Options{Intermolecular: true})
	if err != nil {
		Te.Fatal(err)
	}
	if res.TotalKcal() != 0 {
		Te.Errorf("intramolecular-only system gave %v kcal/mol, want exactly 0", res.TotalKcal())
	}
	// with the atoms in different molecules the result matches the
	// unrestricted one
	mol.Atom(1).MolID = 2
	res, err = Calc(mol, ref, Params{Damp: Zero}, &Options{Intermolecular: true})
	if err != nil {
		Te.Fatal(err)
	}
	full, err := Calc(mol, ref, Params{Damp: Zero}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.TotalKcal() != full.TotalKcal() {
		Te.Errorf("intermolecular %v != unrestricted %v", res.TotalKcal(), full.TotalKcal())
	}
}

func TestBondedMask(Te *testing.T) {
	// propane-like carbon chain: 0-1-2-3 bonded in sequence
	mol := testMol(Te, []string{"C", "C", "C", "C"}, []float64{
		0, 0, 0,
		1.53, 0, 0,
		3.06, 0, 0,
		4.59, 0, 0,
	})
	n := mol.Len()
	mol.Bonds = make([][]bool, n)
	for i := range mol.Bonds {
		mol.Bonds[i] = make([]bool, n)
	}
	for i := 0; i < n-1; i++ {
		mol.Bonds[i][i+1] = true
		mol.Bonds[i+1][i] = true
	}
	var mask BondedMask
	if s := mask.Scale(mol, 0, 1); s != 0 {
		Te.Errorf("bonded pair scale = %v, want 0", s)
	}
	if s := mask.Scale(mol, 0, 2); s != 0 {
		Te.Errorf("1,3 pair scale = %v, want 0", s)
	}
	if s := mask.Scale(mol, 0, 3); math.Abs(s-1/1.2) > 1e-12 {
		Te.Errorf("1,4 pair scale = %v, want 1/1.2", s)
	}
	// without connectivity the mask is a no-op
	mol.Bonds = nil
	if s := mask.Scale(mol, 0, 1); s != 1 {
		Te.Errorf("maskless scale = %v, want 1", s)
	}
}

func TestCalcOutput(Te *testing.T) {
	ref := testRef(Te)
	mol := testMol(Te, []string{"H", "H"}, []float64{0, 0, 0, 0.741, 0, 0})
	var out strings.Builder
	if _, err := Calc(mol, ref, Params{Damp: Zero}, &Options{Out: &out, PrintPairs: true}); err != nil {
		Te.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "zero-damping") {
		Te.Error("banner missing from the explanatory output")
	}
	if !strings.Contains(got, "Pairwise interaction between atoms 1 and 2") {
		Te.Error("per-pair line missing from the explanatory output")
	}
}
