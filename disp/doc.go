/*
 * doc.go, part of gaussian-wranger.
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

// Package disp computes the density-independent Grimme D3 dispersion
// correction for a molecule: damped pairwise R^-6 and R^-8 terms plus
// an optional Axilrod-Teller-Muto three-body term, with zero or
// Becke-Johnson short-range damping.
//
// There is no new science here. The correction is the one most
// electronic-structure packages implement internally; computing it
// standalone is useful pedagogically and to look at individual terms
// of the correction between pairs of atoms or molecules.
//
// A calculation needs a chem.Molecule, a RefData table (built-in
// starter set or the full Grimme parameterization loaded from a
// file), and Params, resolved either explicitly or from a known
// density functional. Everything is single threaded; a RefData can be
// shared by sequential calculations.
package disp
