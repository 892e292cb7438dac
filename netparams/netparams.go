// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package netparams holds the connectivity parameter table for the
// multi-population cortical models, and the derived-quantity arithmetic
// the simulations need before configuring the engine: external-input
// compensation for excluded populations, population down-scaling, and
// DC-current equivalents of Poisson background drive.
//
// The table itself is produced upstream (by the fitting pipeline that
// generated the published connectivity maps) and is read-only input here:
// it is loaded once per simulation run and never written back. Population
// ordering is canonical and alternates excitatory / inhibitory within each
// layer; all pairwise matrices are indexed [receiver][sender] in that same
// order. Consistency of ordering across fields is assumed, not checked.
package netparams

//go:generate core generate -add-types

import (
	"io/fs"

	"cogentcore.org/core/base/iox/jsonx"
)

// Table is the connectivity parameter table for one multi-population model.
type Table struct {

	// Pops are the population names in canonical order, alternating
	// excitatory and inhibitory within each layer (e.g. L23E, L23I, L4E...).
	Pops []string

	// N is the full-scale neuron count per population.
	N []int

	// K is the recurrent in-degree matrix: K[i][j] is the number of
	// synapses a single neuron in population i receives from population j.
	K [][]float32

	// W is the mean synaptic weight matrix: W[i][j] is the mean weight of
	// one synapse onto population i from population j, in the engine's
	// conductance units. Inhibitory senders carry negative weights.
	W [][]float32

	// WRelSD is the relative standard deviation of the weight
	// distributions, as a fraction of the mean.
	WRelSD float32

	// Beta is the pairwise spatial decay constant matrix (mm): connection
	// probability from population j to population i falls off exponentially
	// with distance at this rate.
	Beta [][]float32

	// KExt is the baseline external (feedforward) in-degree per population:
	// the number of independent background sources one neuron receives.
	KExt []int

	// BgRate is the rate of each background source (spikes/s).
	BgRate float32

	// WExt is the weight of one external synapse, same units as W.
	WExt float32

	// RefRates are the per-population stationary firing rates (spikes/s)
	// measured in a full-scale reference simulation, used when compensating
	// external input for populations excluded from a truncated run.
	RefRates []float32

	// TauSynE is the synaptic time constant (ms) of excitatory senders.
	TauSynE float32

	// TauSynI is the synaptic time constant (ms) of inhibitory senders.
	TauSynI float32

	// DelayOffset is the distance-independent component of the conduction
	// delay (ms).
	DelayOffset float32

	// PropSpeed is the conduction propagation speed (mm/ms).
	PropSpeed float32

	// Extent is the side length of the simulated sheet (mm).
	Extent float32
}

// NumPops returns the number of populations in the table.
func (pt *Table) NumPops() int {
	return len(pt.Pops)
}

// Index returns the canonical index of the named population, or -1 if the
// name is not in the table.
func (pt *Table) Index(pop string) int {
	for i, nm := range pt.Pops {
		if nm == pop {
			return i
		}
	}
	return -1
}

// IsExc returns whether the population at the given index is excitatory.
// Populations alternate E, I in canonical order.
func (pt *Table) IsExc(idx int) bool {
	return idx%2 == 0
}

// TauSyn returns the synaptic time constant (ms) for synapses sent by the
// population at the given index.
func (pt *Table) TauSyn(idx int) float32 {
	if pt.IsExc(idx) {
		return pt.TauSynE
	}
	return pt.TauSynI
}

// Delay returns the conduction delay (ms) for a connection spanning the
// given distance (mm).
func (pt *Table) Delay(dist float32) float32 {
	return pt.DelayOffset + dist/pt.PropSpeed
}

// OpenJSON loads the table from the given JSON file.
func (pt *Table) OpenJSON(filename string) error {
	return jsonx.Open(pt, filename)
}

// OpenJSONFS loads the table from the given JSON file in the filesystem,
// typically an embed.FS shipped with a simulation.
func (pt *Table) OpenJSONFS(fsys fs.FS, filename string) error {
	return jsonx.OpenFS(pt, fsys, filename)
}
