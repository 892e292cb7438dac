// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

// train runs a regular spike train at the given interval for n spikes and
// returns the conductance increment produced by each spike.
func train(tp *TsodyksParams, isi, n int) []float32 {
	sy := &TsodyksSyn{}
	sy.Init(tp)
	rels := make([]float32, 0, n)
	for s := 0; s < n; s++ {
		for c := 0; c < isi-1; c++ {
			tp.Step(sy, false)
		}
		before := sy.Ge
		tp.Step(sy, true)
		rels = append(rels, sy.Ge-before)
	}
	return rels
}

func TestDepression(t *testing.T) {
	tp := &TsodyksParams{}
	tp.Depressing()
	rels := train(tp, 20, 10)
	for i := 1; i < len(rels); i++ {
		if rels[i] >= rels[i-1] {
			t.Errorf("spike %v: release %v not below previous %v", i, rels[i], rels[i-1])
		}
	}
}

func TestFacilitation(t *testing.T) {
	tp := &TsodyksParams{}
	tp.Facilitating()
	rels := train(tp, 20, 5)
	for i := 1; i < len(rels); i++ {
		if rels[i] <= rels[i-1] {
			t.Errorf("spike %v: release %v not above previous %v", i, rels[i], rels[i-1])
		}
	}
}

func TestRecovery(t *testing.T) {
	tp := &TsodyksParams{}
	tp.Depressing()
	sy := &TsodyksSyn{}
	sy.Init(tp)
	tp.Step(sy, true)
	if sy.R >= 1 {
		t.Errorf("spike should deplete resources, R = %v", sy.R)
	}
	for c := 0; c < 10*int(tp.TauRec); c++ {
		tp.Step(sy, false)
	}
	if sy.R < 0.99 {
		t.Errorf("resources should recover toward 1, R = %v", sy.R)
	}
	if sy.Ge > 0.001 {
		t.Errorf("conductance should decay toward 0, Ge = %v", sy.Ge)
	}
}

func TestRestingFirstRelease(t *testing.T) {
	// first spike from rest releases U*(1) for a depressing synapse
	tp := &TsodyksParams{}
	tp.Depressing()
	sy := &TsodyksSyn{}
	sy.Init(tp)
	tp.Step(sy, true)
	if sy.Ge != tp.U {
		t.Errorf("first release: got %v, want %v", sy.Ge, tp.U)
	}
}
