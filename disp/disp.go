/*
 * disp.go, part of gaussian-wranger.
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
	"io"
	"math"

	chem "github.com/team-mayes/gaussian-wranger"
)

// Distance and energy conversion factors.
const (
	autoang  = 0.52917726 // Angstrom per bohr
	autokcal = 627.509541 // kcal/mol per Hartree
)

// AutoKcal is the Hartree to kcal/mol conversion used throughout; it
// is exported so callers can report energies in atomic units.
const AutoKcal = autokcal

// Exponents of the distance-dependent damping factors for the R6 and
// R8 terms; the three-body damping reuses alpha6.
const (
	alpha6 = 14
	alpha8 = alpha6 + 2
)

// rs8 is fixed in the zero-damping scheme.
const rs8 = 1.0

// Damping selects the short-range damping scheme.
type Damping int

const (
	Zero Damping = iota // original Grimme zero-damping
	BJ                  // Becke-Johnson rational damping
)

func (d Damping) String() string {
	if d == BJ {
		return "bj"
	}
	return "zero"
}

// Params holds the scalar parameters of one damping scheme. A zero
// value means "unset": Resolve replaces unset parameters with the
// defaults of a known functional, and it is an error to reach the
// energy computation with unresolved parameters and no functional.
type Params struct {
	Damp Damping
	S6   float64
	RS6  float64 // zero damping only
	S8   float64
	A1   float64 // BJ damping only
	A2   float64 // BJ damping only

	resolved bool
}

// Resolve fills unset parameters from the per-functional default
// tables. With every scheme parameter set explicitly it does nothing
// but mark the Params usable. A partially-set parameter list is
// replaced wholesale by the functional defaults.
func (p *Params) Resolve(functional string) error {
	switch p.Damp {
	case Zero:
		if p.S6 != 0 && p.RS6 != 0 && p.S8 != 0 {
			break
		}
		parm, ok := zeroParams[normFunc(functional)]
		if !ok {
			return CError{fmt.Sprintf("disp: zero-damping parameters not specified and no defaults for functional %q", functional), []string{"Resolve"}}
		}
		p.S6, p.RS6, p.S8 = parm[0], parm[1], parm[2]
	case BJ:
		if p.S6 != 0 && p.S8 != 0 && p.A1 != 0 && p.A2 != 0 {
			break
		}
		parm, ok := bjParams[normFunc(functional)]
		if !ok {
			return CError{fmt.Sprintf("disp: BJ-damping parameters not specified and no defaults for functional %q", functional), []string{"Resolve"}}
		}
		p.S6, p.A1, p.S8, p.A2 = parm[0], parm[1], parm[2], parm[3]
	default:
		return CError{fmt.Sprintf("disp: unknown damping scheme %d", p.Damp), []string{"Resolve"}}
	}
	p.resolved = true
	return nil
}

// PairMask lets a caller scale individual pair contributions, e.g. to
// switch off dispersion between bonded or geminal atoms. It is
// consulted after the intermolecular-only masking.
type PairMask interface {
	// Scale returns the factor applied to the pair (i, j) energy.
	Scale(mol *chem.Molecule, i, j int) float64
}

// BondedMask is an experimental bonded/geminal down-weighting:
// directly bonded and 1,3 pairs are removed,
// 1,4 pairs are scaled by 1/1.2. The molecule must carry a
// connectivity matrix; without one the mask is a no-op.
type BondedMask struct{}

func (BondedMask) Scale(mol *chem.Molecule, j, k int) float64 {
	b := mol.Bonds
	if b == nil {
		return 1.0
	}
	scale := 1.0
	if b[j][k] {
		scale = 0
	}
	n := mol.Len()
	for l := 0; l < n; l++ {
		if b[j][l] && b[k][l] && j != k && !b[j][k] {
			scale = 0
		}
		for m := 0; m < n; m++ {
			if b[j][l] && b[l][m] && b[k][m] && j != m && k != l && !b[j][m] {
				scale = 1 / 1.2
			}
		}
	}
	return scale
}

// Options selects the optional parts of a calculation.
type Options struct {
	// ThreeBody includes the Axilrod-Teller-Muto term.
	ThreeBody bool
	// Intermolecular restricts the pairwise sum to atoms of different
	// molecules; every atom needs a molecule id (chem.AssignMolIDs).
	Intermolecular bool
	// PrintPairs writes every pairwise interaction to Out.
	PrintPairs bool
	// Out receives explanatory output. A nil Out silences everything.
	Out io.Writer
	// Mask optionally scales individual pairs. Nil applies no mask.
	Mask PairMask
}

// Result is the outcome of one D3 calculation, in kcal/mol. The R6
// and R8 terms are attractive (negative), the three-body term
// repulsive.
type Result struct {
	R6           float64
	R8           float64
	ThreeBody    float64
	HasThreeBody bool
}

// TotalKcal returns the total correction in kcal/mol.
func (r *Result) TotalKcal() float64 {
	return r.R6 + r.R8 + r.ThreeBody
}

// TotalHartree returns the total correction in atomic units.
func (r *Result) TotalHartree() float64 {
	return r.TotalKcal() / autokcal
}

// pairCache holds per-pair quantities computed in the pairwise pass
// and consumed read-only by the three-body pass, packed by the
// symmetric lin index into exactly n*(n-1)/2 slots.
type pairCache struct {
	populated []bool
	cc6       []float64 // sqrt(C6)
	r2        []float64 // squared distance, au
	dmp       []float64 // reduced damping radius
}

func newPairCache(n int) *pairCache {
	m := n * (n - 1) / 2
	return &pairCache{
		populated: make([]bool, m),
		cc6:       make([]float64, m),
		r2:        make([]float64, m),
		dmp:       make([]float64, m),
	}
}

// Calc computes the D3 dispersion correction for mol using the
// reference dataset ref. Unresolved parameters are resolved against
// the molecule's functional first, and that failing is fatal for the
// calculation, before any pair is computed.
func Calc(mol *chem.Molecule, ref *RefData, par Params, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if !par.resolved {
		if err := par.Resolve(mol.Functional); err != nil {
			return nil, errDecorate(err, "Calc")
		}
	}
	n := mol.Len()
	zs := mol.Numbers()
	for i, z := range zs {
		if !ref.HasElement(z) {
			return nil, CError{fmt.Sprintf("disp: no dispersion parameters for element %s (atom %d)", mol.Atom(i).Symbol, i+1), []string{"Calc"}}
		}
	}
	var mols []int
	if opts.Intermolecular {
		mols = mol.MolIDs()
		for i, id := range mols {
			if id == 0 {
				return nil, CError{fmt.Sprintf("disp: intermolecular-only mode needs molecule ids, atom %d has none", i+1), []string{"Calc"}}
			}
		}
	}
	if opts.Out != nil {
		describe(opts.Out, par, opts)
	}

	cn, err := Ncoord(mol.Coords, zs, ref)
	if err != nil {
		return nil, errDecorate(err, "Calc")
	}

	res := new(Result)
	cache := newPairCache(n)
	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			scale := 1.0
			if opts.Intermolecular && mols[j] == mols[k] {
				scale = 0
				if opts.Out != nil {
					fmt.Fprintf(opts.Out, "   --- Ignoring interaction between atoms %d and %d\n", j+1, k+1)
				}
			}
			if opts.Mask != nil {
				scale *= opts.Mask.Scale(mol, j, k)
			}

			c6, err := ref.C6(zs[j], zs[k], cn[j], cn[k])
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("Calc: atoms %d and %d", j+1, k+1))
			}
			c8, c10 := ref.C8C10(zs[j], zs[k], c6)

			dist := mol.Coords.Dist(j, k) / autoang
			var e6, e8, rr float64
			switch par.Damp {
			case Zero:
				r0, ok := ref.R0(zs[j], zs[k])
				if !ok {
					return nil, CError{fmt.Sprintf("disp: no cutoff radius for element pair %s-%s", mol.Atom(j).Symbol, mol.Atom(k).Symbol), []string{"Calc"}}
				}
				rr = r0 / dist
				damp6 := 1.0 / (1.0 + 6.0*math.Pow(par.RS6*rr, alpha6))
				damp8 := 1.0 / (1.0 + 6.0*math.Pow(rs8*rr, alpha8))
				e6 = -par.S6 * c6 * damp6 / math.Pow(dist, 6) * autokcal * scale
				e8 = -par.S8 * c8 * damp8 / math.Pow(dist, 8) * autokcal * scale
			case BJ:
				rr = math.Sqrt(c8 / c6)
				tmp := par.A1*rr + par.A2
				e6 = -par.S6 * c6 / (math.Pow(dist, 6) + math.Pow(tmp, 6)) * autokcal * scale
				e8 = -par.S8 * c8 / (math.Pow(dist, 8) + math.Pow(tmp, 8)) * autokcal * scale
			}
			if opts.PrintPairs && opts.Out != nil && scale != 0 {
				fmt.Fprintf(opts.Out, "   --- Pairwise interaction between atoms %d and %d: C6 = %.4f, C8 = %.4f, C10 = %.4f, Edisp = %.6f kcal/mol\n",
					j+1, k+1, c6, c8, c10, e6+e8)
			}
			res.R6 += e6
			res.R8 += e8

			// cached for the three-body pass; masked pairs take part in
			// triples and are cached too
			jk := lin(k, j)
			cache.populated[jk] = true
			cache.cc6[jk] = math.Sqrt(c6)
			cache.r2[jk] = dist * dist
			cache.dmp[jk] = math.Cbrt(1.0 / rr)
		}
	}

	if opts.ThreeBody {
		res.ThreeBody = threeBody(cache, n, par.S6)
		res.HasThreeBody = true
	}
	return res, nil
}

func describe(w io.Writer, par Params, opts *Options) {
	switch par.Damp {
	case Zero:
		fmt.Fprintf(w, "\n   D3-dispersion correction with zero-damping: s6 = %g rs6 = %g s8 = %g\n", par.S6, par.RS6, par.S8)
	case BJ:
		fmt.Fprintf(w, "\n   D3-dispersion correction with Becke-Johnson damping: s6 = %g s8 = %g a1 = %g a2 = %g\n", par.S6, par.S8, par.A1, par.A2)
	}
	if opts.ThreeBody {
		fmt.Fprintln(w, "   Including the Axilrod-Teller-Muto 3-body dispersion term")
	} else {
		fmt.Fprintln(w, "   3-body term will not be calculated")
	}
	if opts.Intermolecular {
		fmt.Fprintln(w, "   Only computing intermolecular dispersion interactions! This is not the total D3-correction")
	}
}
