/*
 * main.go, part of gaussian-wranger.
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

// dftd3 computes the Grimme D3 dispersion correction for one or more
// structure files (Gaussian .com/.gjf/.log/.out or .pdb, optionally
// gzipped). The density functional is taken from the file's route
// section when present, and can be overridden through the damping
// parameters.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	chem "github.com/team-mayes/gaussian-wranger"
	"github.com/team-mayes/gaussian-wranger/disp"
)

var (
	dampName  = flag.String("damp", "zero", "damping scheme: zero or bj")
	s6        = flag.Float64("s6", 0.0, "s6 scale factor, 0 means the functional default")
	rs6       = flag.Float64("rs6", 0.0, "rs6 (zero damping), 0 means the functional default")
	s8        = flag.Float64("s8", 0.0, "s8 scale factor, 0 means the functional default")
	a1        = flag.Float64("a1", 0.0, "a1 (Becke-Johnson damping), 0 means the functional default")
	a2        = flag.Float64("a2", 0.0, "a2 (Becke-Johnson damping), 0 means the functional default")
	threebody = flag.Bool("3body", false, "include the Axilrod-Teller-Muto three-body term")
	inter     = flag.Bool("im", false, "intermolecular pairs only (needs, or derives, connectivity)")
	pairwise  = flag.Bool("pw", false, "print every pairwise contribution")
	terse     = flag.Bool("terse", false, "print only the energies")
	paramFile = flag.String("param", "", "D3 reference data file (default: built-in dataset)")
	funcName  = flag.String("func", "", "density functional, overriding the one in the input file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: dftd3 [flags] file.com [file2.log ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	ref, err := loadRef(*paramFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dftd3: %v\n", err)
		os.Exit(1)
	}
	failed := false
	for _, path := range flag.Args() {
		if err := oneFile(path, ref); err != nil {
			fmt.Fprintf(os.Stderr, "dftd3: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadRef(path string) (*disp.RefData, error) {
	if path == "" {
		return disp.DefaultRefData(), nil
	}
	return disp.LoadRefData(path)
}

func oneFile(path string, ref *disp.RefData) error {
	mol, err := chem.MoleculeFromFile(path)
	if err != nil {
		return err
	}
	par := disp.Params{S6: *s6, RS6: *rs6, S8: *s8, A1: *a1, A2: *a2}
	switch strings.ToLower(*dampName) {
	case "zero":
		par.Damp = disp.Zero
	case "bj":
		par.Damp = disp.BJ
	default:
		return fmt.Errorf("unknown damping scheme %q", *dampName)
	}
	functional := mol.Functional
	if *funcName != "" {
		functional = *funcName
	}
	if err := par.Resolve(functional); err != nil {
		return err
	}
	if *inter && mol.Bonds == nil {
		// Formats without connectivity get distance-derived bonds.
		if err := chem.AssignBonds(mol, 0); err != nil {
			return err
		}
	}
	if *inter {
		if _, err := chem.AssignMolIDs(mol); err != nil {
			return err
		}
	}
	var out io.Writer
	if !*terse {
		out = os.Stdout
	}
	opts := &disp.Options{
		ThreeBody:      *threebody,
		Intermolecular: *inter,
		PrintPairs:     *pairwise,
		Out:            out,
	}
	res, err := disp.Calc(mol, ref, par, opts)
	if err != nil {
		return err
	}
	report(os.Stdout, path, res)
	return nil
}

func report(w io.Writer, path string, res *disp.Result) {
	if res.HasThreeBody {
		fmt.Fprintf(w, "%s: E6 = %.8f  E8 = %.8f  E(ABC) = %.8f  Edisp = %.8f Hartree\n",
			path, res.R6/disp.AutoKcal, res.R8/disp.AutoKcal,
			res.ThreeBody/disp.AutoKcal, res.TotalHartree())
		return
	}
	fmt.Fprintf(w, "%s: E6 = %.18f  E8 = %.18f  Edisp = %.18f Hartree\n",
		path, res.R6/disp.AutoKcal, res.R8/disp.AutoKcal, res.TotalHartree())
}
