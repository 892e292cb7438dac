// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/Sebrm2/LACONEU2025-NEST/netparams"
	"github.com/emer/emergent/v2/etime"
)

// TestCircleFootprint checks that the connection footprint follows the
// receiver's row of the pairwise spatial decay matrix.
func TestCircleFootprint(t *testing.T) {
	ss := &Sim{}
	ss.Scaled = &netparams.Table{
		Pops:   []string{"L23E", "L23I"},
		Beta:   [][]float32{{0.3, 0.25}, {0.1, 0.05}},
		Extent: 1,
	}
	tests := []struct {
		i, j, side int
		radius     int
	}{
		{0, 0, 20, 12},
		{0, 1, 20, 10},
		{1, 0, 20, 4},
		{1, 1, 20, 2},
	}
	for _, tst := range tests {
		circ := ss.circleFor(tst.i, tst.j, tst.side)
		if circ.Radius != tst.radius {
			t.Errorf("circleFor(%v, %v, %v): radius got %v, want %v",
				tst.i, tst.j, tst.side, circ.Radius, tst.radius)
		}
		if !circ.TopoWeights {
			t.Errorf("circleFor(%v, %v, %v): topographic weights should be on",
				tst.i, tst.j, tst.side)
		}
	}
}

// TestHeadlessRun runs the full trial loop without a GUI, which is how the
// sim runs when config GUI = false.
func TestHeadlessRun(t *testing.T) {
	ss := &Sim{}
	ss.New()
	ss.Config.GUI = false
	ss.Config.Run.NTrials = 1
	ss.Config.Run.Cycles = 100
	ss.Order = 0.01
	ss.ConfigAll()
	ss.Loops.Run(etime.Test)

	dt := ss.Logs.Table(etime.Test, etime.Trial)
	if dt.Rows < 1 {
		t.Errorf("trial log rows: got %v, want at least 1", dt.Rows)
	}
}
