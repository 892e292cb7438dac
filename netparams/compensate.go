// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netparams

import "cogentcore.org/core/math32"

// ExtAdjustment returns the increment to an external in-degree that
// substitutes for the listed recurrent sources, as a (fractional) number of
// additional background synapses. For each source j, the mean stationary
// current it would deliver is proportional to w[j]*tauSyn[j]*rate[j]*k[j];
// dividing by the corresponding product for one background synapse
// (wExt*tauExt*bgRate) converts that into background-synapse equivalents.
// Only first moments are matched: the variance of the substituted drive is
// that of the Poisson background, not of the original sources.
func ExtAdjustment(w, tauSyn, k, rate []float32, wExt, tauExt, bgRate float32) float32 {
	adj := float32(0)
	for j := range w {
		adj += (w[j] * tauSyn[j]) / (wExt * tauExt) * (rate[j] / bgRate) * k[j]
	}
	return adj
}

// CompensateExt returns the adjusted external in-degree for the target
// population when only the simulated populations are constructed: the
// baseline external in-degree plus background-synapse equivalents for every
// excluded recurrent source, using the table's reference rates. The result
// is rounded to the nearest integer, half away from zero, so an adjustment
// of exactly .5 rounds up: under-provisioning the total input shifts the
// stationary rates more than a half-synapse surplus does, and the rule must
// stay fixed for published figures to reproduce.
//
// Inputs are assumed consistent in population ordering; an unknown target
// or a table with mismatched field lengths fails by indexing, not by
// validation (the table is a one-shot parameter entry, not an API surface).
func (pt *Table) CompensateExt(target string, simulated []string) int {
	i := pt.Index(target)
	sim := make(map[string]bool, len(simulated))
	for _, nm := range simulated {
		sim[nm] = true
	}
	var w, tau, k, rate []float32
	for j, nm := range pt.Pops {
		if sim[nm] {
			continue
		}
		w = append(w, pt.W[i][j])
		tau = append(tau, pt.TauSyn(j))
		k = append(k, pt.K[i][j])
		rate = append(rate, pt.RefRates[j])
	}
	adj := ExtAdjustment(w, tau, k, rate, pt.WExt, pt.TauSynE, pt.BgRate)
	return int(math32.Round(float32(pt.KExt[i]) + adj))
}
