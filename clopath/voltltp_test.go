// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

const vmRest = float32(0.3)

// spikeVm returns a membrane potential trace of n cycles at rest with a
// brief depolarization (2 cycles at vmSpk) starting at each listed cycle.
func spikeVm(n int, vmSpk float32, at ...int) []float32 {
	vm := make([]float32, n)
	for i := range vm {
		vm[i] = vmRest
	}
	for _, t := range at {
		for k := 0; k < 2 && t+k < n; k++ {
			vm[t+k] = vmSpk
		}
	}
	return vm
}

func runPair(cp *ClopathParams, vm []float32, preAt ...int) *ClopathSyn {
	pre := make([]bool, len(vm))
	for _, t := range preAt {
		pre[t] = true
	}
	sy := &ClopathSyn{}
	sy.Init(vmRest, 0.5)
	for c := range vm {
		cp.Step(sy, pre[c], vm[c])
	}
	return sy
}

func TestQuiescentNoChange(t *testing.T) {
	cp := &ClopathParams{}
	cp.Defaults()
	// resting potential, no presynaptic spikes: nothing moves
	sy := runPair(cp, spikeVm(200, 0.55))
	if sy.DWt != 0 {
		t.Errorf("no pre spikes should give no change, DWt = %v", sy.DWt)
	}
	sy = runPair(cp, make([]float32, 0))
	if sy.Wt != 0.5 {
		t.Errorf("weight moved without input: %v", sy.Wt)
	}
}

func TestPreAloneNoChange(t *testing.T) {
	cp := &ClopathParams{}
	cp.Defaults()
	// pre spikes onto a resting postsynaptic neuron: filters stay at rest,
	// below ThetaMinus, so neither LTD nor LTP engages
	vm := make([]float32, 300)
	for i := range vm {
		vm[i] = vmRest
	}
	sy := runPair(cp, vm, 50, 100, 150, 200)
	if sy.DWt != 0 {
		t.Errorf("pre alone at rest should give no change, DWt = %v", sy.DWt)
	}
}

func TestPrePostLTP(t *testing.T) {
	cp := &ClopathParams{}
	cp.Defaults()
	// pre 10 ms before each post depolarization: trace is high when the
	// voltage crosses ThetaPlus -> potentiation
	vm := spikeVm(400, 0.55, 60, 160, 260, 360)
	sy := runPair(cp, vm, 50, 150, 250, 350)
	if sy.DWt <= 0 {
		t.Errorf("pre-before-post should potentiate, DWt = %v", sy.DWt)
	}
}

func TestPostPreLTD(t *testing.T) {
	cp := &ClopathParams{}
	cp.Defaults()
	// pre a few ms after each post depolarization: slow filter is still
	// elevated when the pre spike lands, momentary vm is back at rest ->
	// depression
	vm := spikeVm(400, 0.55, 50, 150, 250, 350)
	sy := runPair(cp, vm, 56, 156, 256, 356)
	if sy.DWt >= 0 {
		t.Errorf("post-before-pre should depress, DWt = %v", sy.DWt)
	}
}

func TestWeightBounds(t *testing.T) {
	cp := &ClopathParams{}
	cp.Defaults()
	cp.ALTP = 10 // force saturation
	vm := spikeVm(400, 0.55, 60, 160, 260, 360)
	sy := runPair(cp, vm, 50, 150, 250, 350)
	if sy.Wt > cp.WMax {
		t.Errorf("weight above WMax: %v", sy.Wt)
	}
	cp.Defaults()
	cp.ALTD = 10
	vm = spikeVm(400, 0.55, 50, 150, 250, 350)
	sy = runPair(cp, vm, 56, 156, 256, 356)
	if sy.Wt < cp.WMin {
		t.Errorf("weight below WMin: %v", sy.Wt)
	}
}
