// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/* Package laconeu holds the spiking-network simulations for the LACONEU
computational-neuroscience summer school.

Each simulation is a standalone program that configures and drives the
[leabra](https://github.com/emer/leabra) simulation engine to reproduce a
specific published result:

  - balanced: a sparse balanced random network of excitatory and inhibitory
    spiking neurons (asynchronous-irregular activity regimes).
  - mesocircuit: one spatially organized layer of a multi-layer cortical
    model, simulated in isolation with compensated external input.
  - stp: short-term synaptic plasticity (Tsodyks-Markram depression and
    facilitation).
  - clopath: voltage-based long-term plasticity (Clopath rule) under
    spike-pairing protocols.

The netparams package holds the parameter bookkeeping shared by the
simulations: the connectivity parameter table, external-input compensation
for excluded populations, population down-scaling, and DC-current
equivalents of Poisson background drive.

Build and run each simulation from its own directory; all of them open a
GUI by default, and the network simulations (balanced, mesocircuit) can
also run headless, saving logs to files, via their config.toml settings.
*/
package laconeu
