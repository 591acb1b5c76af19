/*
 * refdata_test.go, part of gaussian-wranger.
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
)

// a small hydrogen/carbon dataset used across the package tests
const testRefData = `
# synthetic reference data for tests
rcov 1 0.32
rcov 6 0.75
r2r4 1 2.00734898
r2r4 6 3.10492822
r0 1 1 2.1823
r0 1 6 2.2755
r0 6 6 2.9125
c6 1 1 0 0 3.0267 0.9118 0.9118
c6 1 1 1 1 7.5916 0.0000 0.0000
c6 6 6 0 0 49.1130 0.0000 0.0000
c6 6 6 1 1 43.2452 0.9868 0.9868
c6 6 6 2 2 29.3602 1.9985 1.9985
c6 6 6 3 3 25.7809 2.9987 2.9987
c6 6 6 4 4 18.2067 3.9844 3.9844
c6 1 6 0 0 12.1402 0.9118 0.0000
c6 1 6 1 3 8.5528 0.0000 2.9987
`

func testRef(Te *testing.T) *RefData {
	ref, err := ReadRefData(strings.NewReader(testRefData))
	if err != nil {
		Te.Fatal(err)
	}
	return ref
}

func TestReadRefData(Te *testing.T) {
	ref := testRef(Te)
	if ref.Rcov[1] != 0.32 || ref.Rcov[6] != 0.75 {
		Te.Error("covalent radii not read")
	}
	if ref.mxc[1] != 2 || ref.mxc[6] != 5 {
		Te.Errorf("slot counts H=%d C=%d, want 2 and 5", ref.mxc[1], ref.mxc[6])
	}
	// r0 is converted to atomic units and mirrored
	r, ok := ref.R0(1, 6)
	if !ok {
		Te.Fatal("no H-C cutoff radius")
	}
	if math.Abs(r-2.2755/autoang) > 1e-10 {
		Te.Errorf("R0(1,6) = %v, want %v", r, 2.2755/autoang)
	}
	if r2, _ := ref.R0(6, 1); r2 != r {
		Te.Error("R0 is not symmetric")
	}
	// c6 entries are mirrored with the coordination numbers swapped
	c := ref.c6ab[6][1][3][1]
	if c == nil || c.CNA != 2.9987 || c.CNB != 0.0 {
		Te.Errorf("mirrored C6 entry wrong: %+v", c)
	}
	if !ref.HasElement(1) || !ref.HasElement(6) {
		Te.Error("HasElement misses tabulated elements")
	}
	if ref.HasElement(8) || ref.HasElement(0) || ref.HasElement(95) {
		Te.Error("HasElement reports untabulated elements")
	}
}

func TestReadRefDataErrors(Te *testing.T) {
	bad := []string{
		"rcov 0 0.32",           // Z below range
		"rcov 95 0.32",          // Z above range
		"r2r4 6",                // missing value
		"r0 1 6",                // missing radius
		"c6 1 1 0 5 1.0 0 0",    // slot out of range
		"c6 1 1 0 0 x 0 0",      // not a number
		"quux 1 2 3",            // unknown record
	}
	for _, line := range bad {
		if _, err := ReadRefData(strings.NewReader(line)); err == nil {
			Te.Errorf("ReadRefData accepted %q", line)
		}
	}
}

func TestDefaultRefData(Te *testing.T) {
	ref := DefaultRefData()
	for _, z := range []int{1, 6, 7, 8} {
		if !ref.HasElement(z) {
			Te.Errorf("built-in dataset misses element %d", z)
		}
		if _, ok := ref.R0(z, 1); !ok {
			Te.Errorf("built-in dataset misses the %d-H cutoff radius", z)
		}
	}
	if ref.HasElement(26) {
		Te.Error("built-in dataset unexpectedly covers iron")
	}
}
