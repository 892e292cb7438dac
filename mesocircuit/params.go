// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/emer/emergent/v2/params"
)

// ParamSets is the default set of parameters -- Base is always applied, and others can be optionally
// selected to apply on top of that
var ParamSets = params.Sets{
	"Base": {
		{Sel: "Path", Desc: "no learning, fixed random weights",
			Params: params.Params{
				"Path.Learn.Learn": "false",
				"Path.WtInit.Dist": "Gaussian",
				"Path.WtInit.Mean": "0.25",
				"Path.WtInit.Var":  "0.025", // WRelSD fraction of mean
				"Path.WtInit.Sym":  "false",
			}},
		{Sel: "Layer", Desc: "connection-based inhibition, noise-driven background",
			Params: params.Params{
				"Layer.Inhib.Layer.On":     "false",
				"Layer.Inhib.ActAvg.Init":  "0.1",
				"Layer.Inhib.ActAvg.Fixed": "true",
				"Layer.Act.Dt.GTau":        "5",
				"Layer.Act.Dt.VmTau":       "10",
				"Layer.Act.Gbar.L":         "0.1",
				"Layer.Act.Gbar.I":         "0.5",
				"Layer.Act.Noise.Dist":     "Gaussian",
				"Layer.Act.Noise.Var":      "0.02",
				"Layer.Act.Noise.Type":     "GeNoise",
				"Layer.Act.Noise.Fixed":    "false",
			}},
		{Sel: ".InhibLay", Desc: "inhibitory interneurons: faster",
			Params: params.Params{
				"Layer.Act.Dt.VmTau": "5",
				"Layer.Act.XX1.Thr":  "0.4",
			}},
	},
}
