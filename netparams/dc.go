// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netparams

// DCAmp returns the DC current amplitude that delivers the same mean charge
// per unit time as Poisson input at the given rate (spikes/s) through k
// synapses of weight w and synaptic time constant tauSyn (ms). The 1e-3
// factor converts the ms time constant into the per-second rate units.
func DCAmp(rate float32, k int, w, tauSyn float32) float32 {
	return 0.001 * rate * float32(k) * w * tauSyn
}

// ThresholdRate returns the external source rate (spikes/s) at which the
// mean drive through cE synapses of efficacy j (mV) holds the membrane
// exactly at threshold theta (mV), for membrane time constant tauM (ms).
// Simulations express their external drive as a multiple of this rate, so
// that drive strength reads directly as sub- or supra-threshold.
func ThresholdRate(theta, j float32, cE int, tauM float32) float32 {
	return 1000 * theta / (j * float32(cE) * tauM)
}
