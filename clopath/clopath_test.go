// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

// TestAssemblySizing checks that the rate-driven assembly's synapse state
// and weight grid stay sized to the layer as built, so that editing the
// neuron count field mid-session (it only takes effect on a rebuild) cannot
// push indexing past the layer.
func TestAssemblySizing(t *testing.T) {
	ss := &Sim{}
	ss.New()
	ss.ConfigAll()
	ss.Init()

	asm := ss.Net.LayerByName("Assembly")
	n := len(asm.Neurons)
	if len(ss.RateSyns) != n*n {
		t.Fatalf("synapses: got %v, want %v", len(ss.RateSyns), n*n)
	}

	ss.NRate = 2 * n
	ss.RateCycles = 100
	ss.RunRateNet(false)

	if len(ss.RateSyns) != n*n {
		t.Errorf("synapses after run: got %v, want %v", len(ss.RateSyns), n*n)
	}
	wts := ss.Stats.F32Tensor("RateWts")
	if wts.DimSize(0) != n || wts.DimSize(1) != n {
		t.Errorf("weight grid: got %v x %v, want %v x %v",
			wts.DimSize(0), wts.DimSize(1), n, n)
	}
}
