// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/emer/emergent/v2/etime"
)

// TestHeadlessRun runs the full trial loop without a GUI, which is how the
// sim runs when config GUI = false.
func TestHeadlessRun(t *testing.T) {
	ss := &Sim{}
	ss.New()
	ss.Config.GUI = false
	ss.Config.Run.NTrials = 1
	ss.Config.Run.Cycles = 100
	ss.ConfigAll()
	ss.Loops.Run(etime.Test)

	dt := ss.Logs.Table(etime.Test, etime.Trial)
	if dt.Rows < 1 {
		t.Errorf("trial log rows: got %v, want at least 1", dt.Rows)
	}
	cyc := ss.Logs.Table(etime.Test, etime.Cycle)
	if cyc.Rows < 1 {
		t.Errorf("cycle log rows: got %v, want at least 1", cyc.Rows)
	}
}
