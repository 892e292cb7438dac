// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "cogentcore.org/core/math32"

// ClopathParams describes the voltage-based long-term plasticity rule
// (Clopath et al, 2010): LTD is driven by presynaptic spikes arriving while
// a slow low-pass filter of the postsynaptic membrane potential is above
// ThetaMinus, and LTP by the presynaptic trace coinciding with a momentary
// depolarization above ThetaPlus on top of an elevated fast filter.
// Voltages are in the engine's normalized units (rest ~0.3, spike
// threshold ~0.5); one cycle = 1 ms.
type ClopathParams struct {

	// LTD threshold on the slow voltage filter, just above the resting
	// potential so brief depolarizations engage it
	ThetaMinus float32 `min:"0" max:"1" def:"0.32"`

	// LTP threshold on the momentary membrane potential
	ThetaPlus float32 `min:"0" max:"1" def:"0.45"`

	// LTD amplitude, weight change per presynaptic spike per unit
	// suprathreshold slow-filter voltage
	ALTD float32 `min:"0" def:"0.06"`

	// LTP amplitude, weight change per cycle per unit presynaptic trace
	// and suprathreshold voltages
	ALTP float32 `min:"0" def:"0.2"`

	// time constant (ms) of the slow postsynaptic voltage filter (LTD)
	TauMinus float32 `min:"1" def:"10"`

	// time constant (ms) of the fast postsynaptic voltage filter (LTP)
	TauPlus float32 `min:"1" def:"7"`

	// time constant (ms) of the presynaptic spike trace
	TauX float32 `min:"1" def:"15"`

	// lower bound on the weight
	WMin float32 `def:"0"`

	// upper bound on the weight
	WMax float32 `def:"1"`
}

func (cp *ClopathParams) Defaults() {
	cp.ThetaMinus = 0.32
	cp.ThetaPlus = 0.45
	cp.ALTD = 0.06
	cp.ALTP = 0.2
	cp.TauMinus = 10
	cp.TauPlus = 7
	cp.TauX = 15
	cp.WMin = 0
	cp.WMax = 1
}

func (cp *ClopathParams) Update() {
}

// ClopathSyn is the plastic state of one synapse.
type ClopathSyn struct {

	// slow low-pass filtered postsynaptic membrane potential (LTD filter)
	UMinus float32

	// fast low-pass filtered postsynaptic membrane potential (LTP filter)
	UPlus float32

	// presynaptic spike trace
	X float32

	// current synaptic weight
	Wt float32

	// cumulative weight change since Init
	DWt float32
}

// Init resets the synapse state, with both voltage filters at the given
// resting potential and the weight at wt.
func (sy *ClopathSyn) Init(vmRest, wt float32) {
	sy.UMinus = vmRest
	sy.UPlus = vmRest
	sy.X = 0
	sy.Wt = wt
	sy.DWt = 0
}

// Step advances the synapse one cycle given the presynaptic spike state and
// the momentary postsynaptic membrane potential.
func (cp *ClopathParams) Step(sy *ClopathSyn, preSpike bool, vm float32) {
	sy.UMinus += (vm - sy.UMinus) / cp.TauMinus
	sy.UPlus += (vm - sy.UPlus) / cp.TauPlus
	sy.X -= sy.X / cp.TauX

	dw := float32(0)
	if preSpike {
		dw -= cp.ALTD * math32.Max(sy.UMinus-cp.ThetaMinus, 0)
		sy.X += 1
	}
	dw += cp.ALTP * sy.X * math32.Max(vm-cp.ThetaPlus, 0) * math32.Max(sy.UPlus-cp.ThetaMinus, 0)

	wt := math32.Clamp(sy.Wt+dw, cp.WMin, cp.WMax)
	sy.DWt += wt - sy.Wt
	sy.Wt = wt
}
