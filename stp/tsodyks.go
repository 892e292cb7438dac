// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// TsodyksParams describes Tsodyks-Markram short-term synaptic plasticity:
// each presynaptic spike releases a fraction U of the currently available
// resources R, which recover with time constant TauRec; with TauFac > 0 the
// release fraction itself facilitates toward 1 and decays back with TauFac.
// One cycle = 1 ms, matching the engine's cycle timescale.
type TsodyksParams struct {

	// baseline release probability: fraction of available resources
	// released by one spike at rest
	U float32 `min:"0" max:"1" def:"0.5"`

	// recovery time constant (ms) for the depleted resources
	TauRec float32 `min:"1" def:"800"`

	// facilitation time constant (ms) for the release probability;
	// 0 disables facilitation entirely (pure depression)
	TauFac float32 `min:"0" def:"0"`

	// decay time constant (ms) of the postsynaptic conductance
	TauSyn float32 `min:"1" def:"3"`
}

func (tp *TsodyksParams) Defaults() {
	tp.Depressing()
}

func (tp *TsodyksParams) Update() {
}

// Depressing sets the classic depressing-synapse regime
// (cortical pyramidal-pyramidal).
func (tp *TsodyksParams) Depressing() {
	tp.U = 0.5
	tp.TauRec = 800
	tp.TauFac = 0
	tp.TauSyn = 3
}

// Facilitating sets the facilitating-synapse regime
// (pyramidal onto interneuron).
func (tp *TsodyksParams) Facilitating() {
	tp.U = 0.03
	tp.TauRec = 130
	tp.TauFac = 530
	tp.TauSyn = 3
}

// TsodyksSyn is the dynamic state of one synapse.
type TsodyksSyn struct {

	// current release probability (the facilitation variable u)
	U float32

	// fraction of synaptic resources currently available (x)
	R float32

	// normalized postsynaptic conductance delivered by this synapse
	Ge float32
}

// Init resets the synapse to its rested state.
func (sy *TsodyksSyn) Init(tp *TsodyksParams) {
	sy.U = tp.U
	sy.R = 1
	sy.Ge = 0
}

// Step advances the synapse one cycle; spike indicates whether the sender
// fired on this cycle. Facilitation is applied before release, so the first
// spike of a train already sees the facilitated probability.
func (tp *TsodyksParams) Step(sy *TsodyksSyn, spike bool) {
	sy.R += (1 - sy.R) / tp.TauRec
	if tp.TauFac > 0 {
		sy.U -= sy.U / tp.TauFac
	} else {
		sy.U = tp.U
	}
	sy.Ge -= sy.Ge / tp.TauSyn
	if spike {
		if tp.TauFac > 0 {
			sy.U += tp.U * (1 - sy.U)
		}
		rel := sy.U * sy.R
		sy.R -= rel
		sy.Ge += rel
	}
}
