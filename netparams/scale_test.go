// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netparams

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestScaleInt(t *testing.T) {
	tests := []struct {
		n     int
		scale float32
		want  int
	}{
		{1000, 1, 1000},
		{1000, 0.1, 100},
		{77, 0.5, 39}, // 38.5 rounds half away from zero
		{3, 0.1, 0},
		{0, 2, 0},
	}
	for _, tst := range tests {
		got := ScaleInt(tst.n, tst.scale)
		if got != tst.want {
			t.Errorf("ScaleInt(%v, %v): got %v, want %v", tst.n, tst.scale, got, tst.want)
		}
	}
}

func TestScaledTable(t *testing.T) {
	pt := testTable()
	sc := pt.Scaled(0.5, 0.25)
	for i := range pt.Pops {
		if sc.N[i] != ScaleInt(pt.N[i], 0.5) {
			t.Errorf("N[%v]: got %v", i, sc.N[i])
		}
		if sc.KExt[i] != ScaleInt(pt.KExt[i], 0.25) {
			t.Errorf("KExt[%v]: got %v", i, sc.KExt[i])
		}
		for j := range pt.Pops {
			want := math32.Round(pt.K[i][j] * 0.25)
			if math32.Abs(sc.K[i][j]-want) > difTol {
				t.Errorf("K[%v][%v]: got %v, want %v", i, j, sc.K[i][j], want)
			}
		}
	}
	// original untouched
	if pt.N[0] != 800 || pt.K[0][0] != 200 || pt.KExt[0] != 1000 {
		t.Errorf("original table was modified by Scaled")
	}
	// weights and rates carried through unscaled
	if sc.W[0][1] != pt.W[0][1] || sc.RefRates[2] != pt.RefRates[2] {
		t.Errorf("weights / rates should be unchanged")
	}
}

func TestDelay(t *testing.T) {
	pt := testTable()
	got := pt.Delay(0.6)
	want := float32(0.5 + 0.6/0.3)
	if math32.Abs(got-want) > difTol {
		t.Errorf("Delay: got %v, want %v", got, want)
	}
}

func TestDCAmp(t *testing.T) {
	// 8 spikes/s through 1000 synapses of weight 10, tau 2ms
	got := DCAmp(8, 1000, 10, 2)
	want := float32(0.001 * 8 * 1000 * 10 * 2)
	if math32.Abs(got-want) > difTol {
		t.Errorf("DCAmp: got %v, want %v", got, want)
	}
}

func TestThresholdRate(t *testing.T) {
	// Brunel-style numbers: theta=20mV, J=0.1mV, CE=1000, tauM=20ms
	got := ThresholdRate(20, 0.1, 1000, 20)
	want := float32(10)
	if math32.Abs(got-want) > difTol {
		t.Errorf("ThresholdRate: got %v, want %v", got, want)
	}
}
