/*
 * atomicdata.go, part of gaussian-wranger.
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
	"strings"
)

// MaxZ is the largest atomic number handled by the library. The D3
// dispersion correction is parameterized up to Pu (94), so nothing
// here needs to go further.
const MaxZ = 94

// symbols holds the element symbols for Z = 1..MaxZ. Index 0 is a
// placeholder so that symbols[Z] is the symbol for atomic number Z.
var symbols = [MaxZ + 1]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu",
}

var symbol2Z = func() map[string]int {
	m := make(map[string]int, MaxZ)
	for z := 1; z <= MaxZ; z++ {
		m[symbols[z]] = z
	}
	return m
}()

// AtomicNumber returns the atomic number for an element symbol. The
// symbol is case-normalized first, so "CL", "cl" and "Cl" are all
// chlorine. Symbols that do not match any element up to Pu (Z=94)
// produce an error: such atoms cannot take part in any calculation of
// this library.
func AtomicNumber(symbol string) (int, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return 0, CError{"chem: empty element symbol", []string{"AtomicNumber"}}
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	z, ok := symbol2Z[s]
	if !ok {
		return 0, CError{fmt.Sprintf("chem: unsupported element symbol %q (elements up to Z=%d)", symbol, MaxZ), []string{"AtomicNumber"}}
	}
	return z, nil
}

// Symbol returns the element symbol for an atomic number, or the empty
// string if z is outside [1, MaxZ].
func Symbol(z int) string {
	if z < 1 || z > MaxZ {
		return ""
	}
	return symbols[z]
}

// symbolFromName derives an element symbol from a PDB-style atom name
// such as "CA", "HB1" or "Cl1": digits are stripped and a two-letter
// match is preferred over a one-letter one.
func symbolFromName(name string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == ' ' || r == '\'' {
			return -1
		}
		return r
	}, name)
	if clean == "" {
		return "", CError{fmt.Sprintf("chem: cannot derive an element from atom name %q", name), []string{"symbolFromName"}}
	}
	if len(clean) >= 2 {
		two := strings.ToUpper(clean[:1]) + strings.ToLower(clean[1:2])
		if _, ok := symbol2Z[two]; ok {
			return two, nil
		}
	}
	one := strings.ToUpper(clean[:1])
	if _, ok := symbol2Z[one]; ok {
		return one, nil
	}
	return "", CError{fmt.Sprintf("chem: cannot derive an element from atom name %q", name), []string{"symbolFromName"}}
}

// A map assigning covalent radii (Angstrom) to elements, used for the
// distance-criterion bond assignment. Values from Cordero et al., 2008
// (DOI:10.1039/B801115J). The H radius is enlarged a little; H can
// only take one bond anyway and the shortest candidate wins.
var symbolCovrad = map[string]float64{
	"H":  0.4,
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Ar": 1.06,
	"K":  2.03,
	"Ca": 1.76,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.5,  //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Se": 1.2,
	"Br": 1.2,
	"I":  1.39,
}

// CovalentRadius returns the covalent radius for an element symbol and
// whether one is tabulated.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}
