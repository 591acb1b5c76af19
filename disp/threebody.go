/*
 * threebody.go, part of gaussian-wranger.
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

import "math"

// threeBody sums the repulsive Axilrod-Teller-Muto term over every
// atom triple whose three pair entries were cached by the pairwise
// pass, and returns it scaled by s6 in kcal/mol. O(N^3), which is fine
// for the small and medium molecules this tool targets.
func threeBody(cache *pairCache, n int, s6 float64) float64 {
	var e63 float64
	for iat := 0; iat < n; iat++ {
		for jat := iat + 1; jat < n; jat++ {
			ij := lin(jat, iat)
			if !cache.populated[ij] {
				continue
			}
			for kat := jat + 1; kat < n; kat++ {
				ik := lin(kat, iat)
				jk := lin(kat, jat)
				if !cache.populated[ik] || !cache.populated[jk] {
					continue
				}
				rav := (4.0 / 3.0) / (cache.dmp[ik] * cache.dmp[jk] * cache.dmp[ij])
				damp := 1.0 / (1.0 + 6.0*math.Pow(rav, alpha6))

				c9 := cache.cc6[ij] * cache.cc6[ik] * cache.cc6[jk]
				d0 := cache.r2[ij]
				d1 := cache.r2[jk]
				d2 := cache.r2[ik]
				t1 := (d0 + d1 - d2) / math.Sqrt(d0*d1)
				t2 := (d0 + d2 - d1) / math.Sqrt(d0*d2)
				t3 := (d2 + d1 - d0) / math.Sqrt(d1*d2)
				ang := 0.375*t1*t2*t3 + 1.0
				e63 += damp * c9 * ang / math.Pow(d0*d1*d2, 1.5)
			}
		}
	}
	return s6 * e63 * autokcal
}
