// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netparams

import "cogentcore.org/core/math32"

// ScaleInt returns n scaled by the given factor, rounded to the nearest
// integer (half away from zero), never below zero.
func ScaleInt(n int, scale float32) int {
	s := math32.Round(float32(n) * scale)
	if s < 0 {
		return 0
	}
	return int(s)
}

// Scaled returns a copy of the table with neuron counts scaled by order and
// in-degrees (recurrent and external) scaled by conn. Weights, rates, and
// spatial constants are unchanged: rescaling weights to preserve input
// statistics under down-scaling is the simulation's decision, not the
// table's. Matrices are deep-copied so the original table stays read-only.
func (pt *Table) Scaled(order, conn float32) *Table {
	np := pt.NumPops()
	sc := *pt
	sc.N = make([]int, np)
	sc.KExt = make([]int, np)
	sc.K = make([][]float32, np)
	for i := 0; i < np; i++ {
		sc.N[i] = ScaleInt(pt.N[i], order)
		sc.KExt[i] = ScaleInt(pt.KExt[i], conn)
		sc.K[i] = make([]float32, np)
		for j := 0; j < np; j++ {
			sc.K[i][j] = math32.Round(pt.K[i][j] * conn)
		}
	}
	return &sc
}
