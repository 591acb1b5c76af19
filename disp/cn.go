/*
 * cn.go, part of gaussian-wranger.
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
	"fmt"
	"math"

	v3 "github.com/team-mayes/gaussian-wranger/v3"
)

// Constants used to determine fractional connectivities between two
// atoms: k1 is the exponent of the logistic damping, k2 scales the sum
// of the single-bond covalent radii, k3 is the exponent of the
// Gaussian weights in the C6 interpolation.
const (
	k1 = 16.0
	k2 = 4.0 / 3.0
	k3 = -4.0
)

// Ncoord computes the fractional coordination number of every atom: a
// sum over all other atoms of a logistic function that saturates to 1
// for neighbors well within the scaled covalent-radii sum and decays
// to 0 with distance. Coordinates are in Angstrom; zs are the atomic
// numbers, which must all be covered by ref.
func Ncoord(coords *v3.Matrix, zs []int, ref *RefData) ([]float64, error) {
	n := coords.NVecs()
	if len(zs) != n {
		return nil, CError{fmt.Sprintf("disp: %d atomic numbers for %d coordinates", len(zs), n), []string{"Ncoord"}}
	}
	for _, z := range zs {
		if z < 1 || z > maxElem || ref.Rcov[z] <= 0 {
			return nil, CError{fmt.Sprintf("disp: no covalent radius for atomic number %d", z), []string{"Ncoord"}}
		}
	}
	cn := make([]float64, n)
	for i := 0; i < n; i++ {
		var xn float64
		for iat := 0; iat < n; iat++ {
			if iat == i {
				continue
			}
			r := coords.Dist(i, iat)
			rco := k2 * (ref.Rcov[zs[i]] + ref.Rcov[zs[iat]])
			xn += 1.0 / (1.0 + math.Exp(-k1*(rco/r-1.0)))
		}
		cn[i] = xn
	}
	return cn, nil
}

// lin packs an unordered pair of 0-based indexes into a linear index.
// lin(i,j) == lin(j,i), and the mapping is injective over unordered
// pairs with i != j, so a cache of n*(n-1)/2 entries holds all pairs.
func lin(i1, i2 int) int {
	hi, lo := i1, i2
	if hi < lo {
		hi, lo = lo, hi
	}
	return lo + hi*(hi-1)/2
}

// C6 interpolates the C6 coefficient for the interaction of an atom of
// element za with coordination number cna and one of zb with cnb: each
// populated reference-system pair contributes its C6 with a Gaussian
// weight in the coordination-number distance. When every weight
// underflows to zero the largest positive reference C6 seen is used;
// when the pair has no positive reference at all, that is an error
// (the dataset simply does not describe this interaction).
func (ref *RefData) C6(za, zb int, cna, cnb float64) (float64, error) {
	if za < 1 || za > maxElem || zb < 1 || zb > maxElem {
		return 0, CError{fmt.Sprintf("disp: atomic number outside [1,%d]", maxElem), []string{"C6"}}
	}
	tab := ref.c6ab[za][zb]
	if tab == nil {
		return 0, CError{fmt.Sprintf("disp: no C6 reference data for element pair %d-%d", za, zb), []string{"C6"}}
	}
	c6mem := math.Inf(-1)
	var rsum, csum float64
	for i := 0; i < ref.mxc[za]; i++ {
		for j := 0; j < ref.mxc[zb]; j++ {
			c := tab[i][j]
			if c == nil || c.C6 <= 0 {
				continue
			}
			if c.C6 > c6mem {
				c6mem = c.C6
			}
			r := (c.CNA-cna)*(c.CNA-cna) + (c.CNB-cnb)*(c.CNB-cnb)
			w := math.Exp(k3 * r)
			rsum += w
			csum += w * c.C6
		}
	}
	if rsum > 0 {
		return csum / rsum, nil
	}
	if c6mem > 0 {
		return c6mem, nil
	}
	return 0, CError{fmt.Sprintf("disp: no valid C6 reference entry for element pair %d-%d", za, zb), []string{"C6"}}
}

// C8C10 derives the C8 and C10 coefficients for a pair from its C6 and
// the elements' multipole terms. C10 is not used by the energy but is
// part of the pedagogical per-pair output.
func (ref *RefData) C8C10(za, zb int, c6 float64) (c8, c10 float64) {
	c8 = 3.0 * c6 * ref.R2R4[za] * ref.R2R4[zb]
	c10 = 49.0 / 40.0 * c8 * c8 / c6
	return c8, c10
}
