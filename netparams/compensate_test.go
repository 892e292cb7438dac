// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netparams

import (
	"testing"

	"cogentcore.org/core/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

// testTable returns a two-layer (four population) table with simple numbers.
func testTable() *Table {
	return &Table{
		Pops: []string{"L23E", "L23I", "L4E", "L4I"},
		N:    []int{800, 200, 1000, 250},
		K: [][]float32{
			{200, 100, 100, 0},
			{200, 100, 50, 0},
			{50, 20, 300, 80},
			{50, 20, 300, 80},
		},
		W: [][]float32{
			{10, -40, 10, -40},
			{10, -40, 10, -40},
			{10, -40, 10, -40},
			{10, -40, 10, -40},
		},
		WRelSD:      0.1,
		KExt:        []int{1000, 800, 1200, 900},
		BgRate:      8,
		WExt:        10,
		RefRates:    []float32{3, 6, 4, 5},
		TauSynE:     2,
		TauSynI:     2,
		DelayOffset: 0.5,
		PropSpeed:   0.3,
		Extent:      1,
	}
}

func TestExtAdjustmentExample(t *testing.T) {
	// one excluded source: weight 10, tau 2, wExt 1, tauExt 2,
	// rate 2 vs background 1, in-degree 100 -> (10*2)/(1*2) * (2/1) * 100 = 2000
	adj := ExtAdjustment([]float32{10}, []float32{2}, []float32{100}, []float32{2}, 1, 2, 1)
	if math32.Abs(adj-2000) > difTol {
		t.Errorf("adjustment: got %v, want 2000", adj)
	}
}

func TestCompensateNoneExcluded(t *testing.T) {
	pt := testTable()
	// all populations simulated: adjusted in-degree is exactly the baseline
	for i, nm := range pt.Pops {
		kx := pt.CompensateExt(nm, pt.Pops)
		if kx != pt.KExt[i] {
			t.Errorf("%s: got %v, want baseline %v", nm, kx, pt.KExt[i])
		}
	}
}

func TestCompensateZeroWeights(t *testing.T) {
	pt := testTable()
	for i := range pt.W {
		for j := range pt.W[i] {
			pt.W[i][j] = 0
		}
	}
	// rates at background with zero recurrent weights: zero adjustment
	for j := range pt.RefRates {
		pt.RefRates[j] = pt.BgRate
	}
	kx := pt.CompensateExt("L23E", []string{"L23E", "L23I"})
	if kx != pt.KExt[0] {
		t.Errorf("got %v, want baseline %v", kx, pt.KExt[0])
	}
}

func TestCompensateMonotone(t *testing.T) {
	pt := testTable()
	sim := []string{"L23E", "L23I"}
	// L4E -> L23E is excitatory: adjustment non-decreasing in its rate
	prev := pt.CompensateExt("L23E", sim)
	for r := float32(5); r <= 20; r += 5 {
		pt.RefRates[2] = r
		kx := pt.CompensateExt("L23E", sim)
		if kx < prev {
			t.Errorf("excitatory: rate %v gave %v < %v", r, kx, prev)
		}
		prev = kx
	}
	// make L4I project to L23E; inhibitory: non-increasing in its rate
	pt = testTable()
	pt.K[0][3] = 50
	prev = pt.CompensateExt("L23E", sim)
	for r := float32(5); r <= 20; r += 5 {
		pt.RefRates[3] = r
		kx := pt.CompensateExt("L23E", sim)
		if kx > prev {
			t.Errorf("inhibitory: rate %v gave %v > %v", r, kx, prev)
		}
		prev = kx
	}
}

func TestCompensateRounding(t *testing.T) {
	pt := testTable()
	// single excluded source tuned for an adjustment of exactly 0.5:
	// (10*2)/(10*2) * (4/8) * 1 = 0.5 -> rounds up (half away from zero)
	pt.K[0][2] = 1
	pt.K[0][3] = 0
	kx := pt.CompensateExt("L23E", []string{"L23E", "L23I", "L4I"})
	if kx != pt.KExt[0]+1 {
		t.Errorf("half rounds up: got %v, want %v", kx, pt.KExt[0]+1)
	}
}

func TestCompensateExample(t *testing.T) {
	pt := testTable()
	// L23E excluded sources L4E, L4I (K[0][3] = 0):
	// L4E: (10*2)/(10*2) * (4/8) * 100 = 50
	kx := pt.CompensateExt("L23E", []string{"L23E", "L23I"})
	if kx != 1050 {
		t.Errorf("got %v, want 1050", kx)
	}
}

func TestTauSynAlternation(t *testing.T) {
	pt := testTable()
	pt.TauSynI = 4
	for j := range pt.Pops {
		want := pt.TauSynE
		if j%2 == 1 {
			want = pt.TauSynI
		}
		if pt.TauSyn(j) != want {
			t.Errorf("pop %v: got %v, want %v", j, pt.TauSyn(j), want)
		}
	}
}
