/*
 * cn_test.go, part of gaussian-wranger.
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
	"testing"

	v3 "github.com/team-mayes/gaussian-wranger/v3"
)

func TestLin(Te *testing.T) {
	const n = 10
	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			idx := lin(i, j)
			if idx != lin(j, i) {
				Te.Fatalf("lin(%d,%d) != lin(%d,%d)", i, j, j, i)
			}
			if idx < 0 || idx >= n*(n-1)/2 {
				Te.Fatalf("lin(%d,%d) = %d outside [0,%d)", i, j, idx, n*(n-1)/2)
			}
			if j > i {
				if seen[idx] {
					Te.Fatalf("lin(%d,%d) = %d collides with another pair", i, j, idx)
				}
				seen[idx] = true
			}
		}
	}
	if len(seen) != n*(n-1)/2 {
		Te.Errorf("lin covered %d indexes, want %d", len(seen), n*(n-1)/2)
	}
}

func TestNcoord(Te *testing.T) {
	ref := testRef(Te)
	// H2 at the equilibrium bond length
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0.741, 0, 0})
	cn, err := Ncoord(coords, []int{1, 1}, ref)
	if err != nil {
		Te.Fatal(err)
	}
	if cn[0] != cn[1] {
		Te.Errorf("equivalent atoms got different coordination numbers: %v", cn)
	}
	if cn[0] < 0.8 || cn[0] > 1.0 {
		Te.Errorf("H2 coordination number %v, want close below 1", cn[0])
	}
	// and essentially zero for a far-apart pair
	far, _ := v3.NewMatrix([]float64{0, 0, 0, 10, 0, 0})
	cn, err = Ncoord(far, []int{1, 1}, ref)
	if err != nil {
		Te.Fatal(err)
	}
	if cn[0] > 1e-5 {
		Te.Errorf("coordination number %v at 10 A, want ~0", cn[0])
	}
	// unknown element
	if _, err := Ncoord(coords, []int{1, 2}, ref); err == nil {
		Te.Error("Ncoord accepted an element with no covalent radius")
	}
	if _, err := Ncoord(coords, []int{1}, ref); err == nil {
		Te.Error("Ncoord accepted mismatched slice lengths")
	}
}

func TestC6Interpolation(Te *testing.T) {
	ref := testRef(Te)
	// right at a reference environment the interpolation must come
	// out next to that reference value
	c6, err := ref.C6(6, 6, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(c6-49.1130) > 0.1 {
		Te.Errorf("C6(C,C, cn=0) = %v, want about 49.113", c6)
	}
	c6, err = ref.C6(6, 6, 3.9844, 3.9844)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(c6-18.2067) > 0.1 {
		Te.Errorf("C6(C,C, cn=3.98) = %v, want about 18.207", c6)
	}
	// far outside every reference the weights underflow and the
	// largest reference C6 is the fallback
	c6, err = ref.C6(6, 6, 1e3, 1e3)
	if err != nil {
		Te.Fatal(err)
	}
	if c6 != 49.1130 {
		Te.Errorf("fallback C6 = %v, want the largest reference 49.113", c6)
	}
	// no reference data at all
	if _, err = ref.C6(2, 2, 0, 0); err == nil {
		Te.Error("C6 returned a value for an element pair with no data")
	}
}

func TestC8C10(Te *testing.T) {
	ref := testRef(Te)
	c6 := 40.0
	c8, c10 := ref.C8C10(6, 6, c6)
	wantC8 := 3.0 * c6 * ref.R2R4[6] * ref.R2R4[6]
	if math.Abs(c8-wantC8) > 1e-10 {
		Te.Errorf("C8 = %v, want %v", c8, wantC8)
	}
	wantC10 := 49.0 / 40.0 * c8 * c8 / c6
	if math.Abs(c10-wantC10) > 1e-10 {
		Te.Errorf("C10 = %v, want %v", c10, wantC10)
	}
}
