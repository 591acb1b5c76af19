/*
 * v3_test.go, part of gaussian-wranger.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("NewMatrix accepted a slice whose length is not a multiple of 3")
	}
	m, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if m.NVecs() != 2 {
		Te.Errorf("got %d vectors, want 2", m.NVecs())
	}
}

func TestDist(Te *testing.T) {
	m, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0, 1, 1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	if d := m.Dist(0, 1); math.Abs(d-5) > 1e-12 {
		Te.Errorf("Dist(0,1) = %v, want 5", d)
	}
	if d := m.Dist(1, 0); math.Abs(d-5) > 1e-12 {
		Te.Errorf("Dist is not symmetric: %v", d)
	}
	if d := m.Dist(2, 2); d != 0 {
		Te.Errorf("Dist to self = %v, want 0", d)
	}
}

func TestSomeVecs(Te *testing.T) {
	m, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
	s, err := m.SomeVecs([]int{2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if s.NVecs() != 2 || s.At(0, 0) != 3 || s.At(1, 0) != 1 {
		Te.Errorf("SomeVecs gave the wrong rows: %v", s.RawMatrix().Data)
	}
	if _, err := m.SomeVecs([]int{5}); err == nil {
		Te.Error("SomeVecs accepted an out-of-range index")
	}
}
