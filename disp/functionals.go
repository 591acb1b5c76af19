/*
 * functionals.go, part of gaussian-wranger.
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

import "strings"

// Default damping parameters per density functional, from Grimme's
// parameterizations. Zero damping: s6, rs6, s8 (rs8 is fixed at 1).
// BJ damping: s6, a1, s8, a2. Functional names are normalized with
// normFunc before lookup.
var zeroParams = map[string][3]float64{
	"blyp":  {1.0, 1.094, 1.682},
	"bp86":  {1.0, 1.139, 1.683},
	"b97d":  {1.0, 0.892, 0.909},
	"b3lyp": {1.0, 1.261, 1.703},
	"pbe":   {1.0, 1.217, 0.722},
	"pbe0":  {1.0, 1.287, 0.928},
	"tpss":  {1.0, 1.166, 1.105},
	"m06":   {1.0, 1.325, 0.0},
	"m06l":  {1.0, 1.581, 0.0},
	"m062x": {1.0, 1.619, 0.0},
	"hf":    {1.0, 1.158, 1.746},
}

var bjParams = map[string][4]float64{
	"blyp":  {1.0, 0.4298, 2.6996, 4.2359},
	"bp86":  {1.0, 0.3946, 3.2822, 4.8516},
	"b97d":  {1.0, 0.5545, 2.2609, 3.2297},
	"b3lyp": {1.0, 0.3981, 1.9889, 4.4211},
	"pbe":   {1.0, 0.4289, 0.7875, 4.4407},
	"pbe0":  {1.0, 0.4145, 1.2177, 4.8593},
	"tpss":  {1.0, 0.4535, 1.9435, 4.4752},
	"hf":    {1.0, 0.3385, 0.9171, 2.8830},
}

// normFunc normalizes a functional name as read from a route section:
// lower case, hyphens removed, so "B97-D" and "b97d" are the same key.
func normFunc(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
}

// KnownFunctional reports whether default parameters exist for the
// functional under the given damping scheme.
func KnownFunctional(name string, damp Damping) bool {
	switch damp {
	case Zero:
		_, ok := zeroParams[normFunc(name)]
		return ok
	case BJ:
		_, ok := bjParams[normFunc(name)]
		return ok
	}
	return false
}
