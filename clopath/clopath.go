// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// clopath: This simulation explores voltage-based long-term plasticity
// (the Clopath rule) at a single synapse under spike-pairing protocols,
// reproducing the timing- and frequency-dependence of STDP experiments,
// and in a small rate-driven assembly whose weight matrix organizes by
// firing rate.
package main

//go:generate core generate -add-types

import (
	"embed"
	"fmt"
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/tree"
	"cogentcore.org/lab/base/randx"
	"github.com/emer/emergent/v2/egui"
	"github.com/emer/emergent/v2/elog"
	"github.com/emer/emergent/v2/emer"
	"github.com/emer/emergent/v2/estats"
	"github.com/emer/emergent/v2/etime"
	"github.com/emer/emergent/v2/netview"
	"github.com/emer/emergent/v2/params"
	"github.com/emer/emergent/v2/paths"
	"github.com/emer/etensor/tensor/tensorcore"
	"github.com/emer/leabra/v2/leabra"
	"github.com/emer/leabra/v2/spike"
)

//go:embed README.md
var readme embed.FS

func main() {
	sim := &Sim{}
	sim.New()
	sim.ConfigAll()
	sim.RunGUI()
}

// ParamSets is the default set of parameters
var ParamSets = params.Sets{
	"Base": {
		{Sel: "Layer", Desc: "no inhibition, no noise -- plasticity comes from the local rule",
			Params: params.Params{
				"Layer.Inhib.Layer.On":  "false",
				"Layer.Act.XX1.Gain":    "30",
				"Layer.Act.XX1.NVar":    "0.01",
				"Layer.Act.Init.Vm":     "0.3",
				"Layer.Act.Noise.Var":   "0",
				"Layer.Act.Noise.Fixed": "false",
			}},
		{Sel: "Path", Desc: "engine weights fixed -- the Clopath rule owns the weights here",
			Params: params.Params{
				"Path.Learn.Learn": "false",
				"Path.WtInit.Dist": "Uniform",
				"Path.WtInit.Mean": "0.5",
				"Path.WtInit.Var":  "0",
			}},
	},
}

// Sim encapsulates the entire simulation model, and we define all the
// functionality as methods on this struct.  This structure keeps all relevant
// state information organized and available without having to pass everything around
// as arguments to methods, and provides the core GUI interface (note the view tags
// for the fields which provide hints to how things should be displayed).
type Sim struct {

	// voltage-based plasticity parameters
	Plast ClopathParams `display:"inline"`

	// plastic state of the pair-protocol synapse
	Syn ClopathSyn `display:"inline"`

	// lag from presynaptic to postsynaptic spike in the pairing protocol
	// (ms); negative = post before pre
	PairLag int `min:"-100" max:"100" def:"10"`

	// pairing frequency (Hz)
	PairHz float32 `min:"0.5" max:"100" def:"5"`

	// number of pre/post pairs per protocol run
	NPairs int `min:"1" def:"60"`

	// initial weight of the plastic synapses
	WInit float32 `min:"0" max:"1" def:"0.5"`

	// excitatory conductance injected to force a postsynaptic spike
	GeSpk float32 `min:"0" step:"0.1" def:"1.5"`

	// number of neurons in the rate-driven assembly; applied when the
	// network is built, so it requires a restart to change
	NRate int `min:"2" def:"10"`

	// lowest and highest Poisson drive rates across the assembly (spikes/s)
	RateMin float32 `def:"5"`
	RateMax float32 `def:"50"`

	// number of cycles to run the rate-driven assembly
	RateCycles int `min:"100" def:"2000"`

	// how often to update display (in cycles)
	UpdateInterval int `min:"1" def:"50"`

	// the network -- click to view / edit parameters for layers, paths, etc
	Net *leabra.Network `display:"-"`

	// spiking dynamics parameters for all driven neurons
	SpikeParams spike.ActParams `view:"no-inline"`

	// plastic state of the all-to-all assembly synapses, [recv][send]
	RateSyns []ClopathSyn `display:"-"`

	// leabra timing parameters and state
	Context leabra.Context `display:"-"`

	// contains computed statistic values
	Stats estats.Stats `display:"-"`

	// logging
	Logs elog.Logs `display:"-"`

	// all parameter management
	Params emer.NetParams `display:"-"`

	// netview update parameters
	ViewUpdate netview.ViewUpdate `display:"add-fields"`

	// manages all the gui elements
	GUI egui.GUI `display:"-"`
}

// New creates new blank elements and initializes defaults
func (ss *Sim) New() {
	ss.Net = leabra.NewNetwork("Clopath")
	ss.Defaults()
	ss.Stats.Init()
}

func (ss *Sim) Defaults() {
	ss.Plast.Defaults()
	ss.SpikeParams.Defaults()
	ss.Params.Config(ParamSets, "", "", ss.Net)
	ss.PairLag = 10
	ss.PairHz = 5
	ss.NPairs = 60
	ss.WInit = 0.5
	ss.GeSpk = 1.5
	ss.NRate = 10
	ss.RateMin = 5
	ss.RateMax = 50
	ss.RateCycles = 2000
	ss.UpdateInterval = 50
}

//////////////////////////////////////////////////////////////////////////////
// 		Configs

// ConfigAll configures all the elements using the standard functions
func (ss *Sim) ConfigAll() {
	ss.ConfigNet(ss.Net)
	ss.ConfigLogs()
}

func (ss *Sim) ConfigNet(net *leabra.Network) {
	pre := net.AddLayer2D("Pre", 1, 1, leabra.InputLayer)
	post := net.AddLayer2D("Post", 1, 1, leabra.SuperLayer)
	asm := net.AddLayer2D("Assembly", 1, ss.NRate, leabra.SuperLayer)
	pre.Doc = "presynaptic neuron of the pairing protocol"
	post.Doc = "postsynaptic neuron of the pairing protocol"
	asm.Doc = "rate-driven assembly with all-to-all plastic synapses"
	net.ConnectLayers(pre, post, paths.NewOneToOne(), leabra.ForwardPath)
	post.PlaceRightOf(pre, 2)
	asm.PlaceAbove(pre)
	err := net.Build()
	if err != nil {
		errors.Log(err)
		return
	}
	net.Defaults()
	ss.SetParams("Network", false)
	net.InitWeights()
}

////////////////////////////////////////////////////////////////////////////////
// 	    Init, utils

// Init restarts the protocols and resets all plastic state
func (ss *Sim) Init() {
	ss.Context.Reset()
	ss.Net.InitWeights()
	ss.Syn.Init(ss.Net.LayerByName("Post").Act.Init.Vm, ss.WInit)
	ss.InitRateSyns()
	ss.GUI.StopNow = false
	ss.SetParams("", false)
}

// InitRateSyns resets the assembly's plastic synapses, sized to match
// the assembly layer as built
func (ss *Sim) InitRateSyns() {
	asm := ss.Net.LayerByName("Assembly")
	n := len(asm.Neurons)
	vmr := asm.Act.Init.Vm
	if len(ss.RateSyns) != n*n {
		ss.RateSyns = make([]ClopathSyn, n*n)
	}
	for i := range ss.RateSyns {
		ss.RateSyns[i].Init(vmr, ss.WInit)
	}
}

// Counters returns a string of the current counter state
// use tabs to achieve a reasonable formatting overall
// and add a few tabs at the end to allow for expansion..
func (ss *Sim) Counters() string {
	return fmt.Sprintf("Cycle:\t%d\t\t\t", ss.Context.Cycle)
}

func (ss *Sim) UpdateView() {
	ss.GUI.GoUpdatePlot(etime.Test, etime.Cycle)
	ss.GUI.ViewUpdate.Text = ss.Counters()
	ss.GUI.ViewUpdate.UpdateCycle(int(ss.Context.Cycle))
}

////////////////////////////////////////////////////////////////////////////////
// 	    Pairing protocol

// RunPairs runs the pre/post pairing protocol at the current lag and
// frequency, accumulating weight change in Syn.
func (ss *Sim) RunPairs(updt bool) {
	ctx := &ss.Context
	ss.Init()
	ss.GUI.StopNow = false
	ss.Net.InitActs()
	ctx.AlphaCycStart()
	ss.SetParams("", false)
	pre := ss.Net.LayerByName("Pre")
	post := ss.Net.LayerByName("Post")
	pnrn := &(pre.Neurons[0])
	rnrn := &(post.Neurons[0])

	interval := int(1000 / ss.PairHz)
	ncyc := ss.NPairs*interval + 200
	preSpk := make([]bool, ncyc)
	postGe := make([]bool, ncyc)
	for k := 0; k < ss.NPairs; k++ {
		tPre := 100 + k*interval
		tPost := tPre + ss.PairLag
		preSpk[tPre] = true
		// drive Ge for a few cycles so Vm reaches threshold near tPost
		for c := tPost - 2; c <= tPost; c++ {
			if c >= 0 && c < ncyc {
				postGe[c] = true
			}
		}
	}

	for cyc := 0; cyc < ncyc; cyc++ {
		spk := preSpk[cyc]
		if spk {
			pnrn.Spike = 1
			pnrn.Act = 1
		} else {
			pnrn.Spike = 0
			pnrn.Act = 0
		}
		if postGe[cyc] {
			rnrn.Ge = ss.GeSpk
		} else {
			rnrn.Ge = 0
		}
		rnrn.Gi = 0
		ss.SpikeParams.SpikeVmFromG(rnrn)
		ss.SpikeParams.SpikeActFromVm(rnrn)
		ss.Plast.Step(&ss.Syn, spk, rnrn.Vm)
		ctx.Cycle = cyc
		ss.Logs.Log(etime.Test, etime.Cycle)
		if updt && cyc%ss.UpdateInterval == 0 {
			ss.UpdateView()
		}
		ss.Context.CycleInc()
		if ss.GUI.StopNow {
			break
		}
	}
	ss.Stats.SetFloat32("DWt", ss.Syn.DWt)
	if updt {
		ss.UpdateView()
	}
}

// LagSweep maps out the STDP curve: total weight change as a function of
// the pre-to-post lag, at the current pairing frequency.
func (ss *Sim) LagSweep() {
	savedLag := ss.PairLag
	tcl := ss.Logs.Table(etime.Test, etime.Cycle)
	dt := ss.Logs.MiscTable("STDP")
	plt := ss.GUI.Plots[etime.ScopeKey("STDP")]
	dt.SetNumRows(0)
	row := 0
	for lag := -50; lag <= 50; lag += 5 {
		if lag == 0 {
			continue // simultaneous pre/post is ill-defined in this protocol
		}
		ss.PairLag = lag
		tcl.Rows = 0
		ss.RunPairs(false)
		if ss.GUI.StopNow {
			break
		}
		dt.AddRows(1)
		dt.SetFloat("Lag", row, float64(lag))
		dt.SetFloat("DWt", row, float64(ss.Syn.DWt))
		plt.GoUpdatePlot()
		row++
	}
	ss.PairLag = savedLag
	plt.GoUpdatePlot()
	ss.GUI.IsRunning = false
	ss.GUI.UpdateWindow()
}

// FreqSweep maps out the frequency dependence of pairing: total weight
// change for pre-before-post and post-before-pre pairings (10 ms lag)
// across pairing frequencies.
func (ss *Sim) FreqSweep() {
	savedLag := ss.PairLag
	savedHz := ss.PairHz
	tcl := ss.Logs.Table(etime.Test, etime.Cycle)
	dt := ss.Logs.MiscTable("FreqSweep")
	plt := ss.GUI.Plots[etime.ScopeKey("FreqSweep")]
	dt.SetNumRows(0)
	freqs := []float32{1, 2, 5, 10, 20, 30, 40, 50}
	for row, hz := range freqs {
		ss.PairHz = hz
		ss.PairLag = 10
		tcl.Rows = 0
		ss.RunPairs(false)
		if ss.GUI.StopNow {
			break
		}
		prePost := ss.Syn.DWt
		ss.PairLag = -10
		tcl.Rows = 0
		ss.RunPairs(false)
		if ss.GUI.StopNow {
			break
		}
		postPre := ss.Syn.DWt
		dt.AddRows(1)
		dt.SetFloat("Hz", row, float64(hz))
		dt.SetFloat("PrePost", row, float64(prePost))
		dt.SetFloat("PostPre", row, float64(postPre))
		plt.GoUpdatePlot()
	}
	ss.PairLag = savedLag
	ss.PairHz = savedHz
	plt.GoUpdatePlot()
	ss.GUI.IsRunning = false
	ss.GUI.UpdateWindow()
}

////////////////////////////////////////////////////////////////////////////////
// 	    Rate-driven assembly

// RunRateNet drives the assembly neurons with Poisson input at rates graded
// across the population, updating all-to-all plastic synapses, and renders
// the final weight matrix.
func (ss *Sim) RunRateNet(updt bool) {
	ctx := &ss.Context
	ss.Init()
	ss.GUI.StopNow = false
	ss.Net.InitActs()
	ctx.AlphaCycStart()
	ss.SetParams("", false)
	asm := ss.Net.LayerByName("Assembly")
	n := len(asm.Neurons)

	probs := make([]float32, n)
	for i := 0; i < n; i++ {
		hz := ss.RateMin + float32(i)*(ss.RateMax-ss.RateMin)/float32(n-1)
		probs[i] = hz / 1000 // per-cycle spike probability
	}
	spks := make([]bool, n)
	vms := make([]float32, n)

	for cyc := 0; cyc < ss.RateCycles; cyc++ {
		for i := 0; i < n; i++ {
			nrn := &(asm.Neurons[i])
			if randx.BoolP32(probs[i]) {
				nrn.Ge = ss.GeSpk
			} else {
				nrn.Ge = 0
			}
			nrn.Gi = 0
			ss.SpikeParams.SpikeVmFromG(nrn)
			ss.SpikeParams.SpikeActFromVm(nrn)
			spks[i] = nrn.Spike > 0.5
			vms[i] = nrn.Vm
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				ss.Plast.Step(&ss.RateSyns[i*n+j], spks[j], vms[i])
			}
		}
		ctx.Cycle = cyc
		if updt && cyc%ss.UpdateInterval == 0 {
			ss.UpdateView()
		}
		ss.Context.CycleInc()
		if ss.GUI.StopNow {
			break
		}
	}
	ss.RateWts()
	if updt {
		ss.UpdateView()
	}
}

// RateWts copies the assembly weight matrix into the stats tensor for the
// heatmap display.
func (ss *Sim) RateWts() {
	n := len(ss.Net.LayerByName("Assembly").Neurons)
	wts := ss.Stats.F32Tensor("RateWts")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			wts.Set([]int{i, j}, ss.RateSyns[i*n+j].Wt)
		}
	}
	if tg := ss.GUI.Grid("RateWts"); tg != nil {
		tg.NeedsRender()
	}
}

// Stop tells the sim to stop running
func (ss *Sim) Stop() {
	ss.GUI.StopNow = true
}

/////////////////////////////////////////////////////////////////////////
//   Params setting

// SetParams sets the params for "Base" and then current ParamSet.
// If sheet is empty, then it applies all avail sheets (e.g., Network, Sim)
// otherwise just the named sheet
// if setMsg = true then we output a message for each param that was set.
func (ss *Sim) SetParams(sheet string, setMsg bool) {
	ss.Params.SetAll()
	post := ss.Net.LayerByName("Post")
	post.Act.Update()
	ss.SpikeParams.ActParams = post.Act // keep sync'd
	post.UpdateParams()
	ss.Plast.Update()
}

//////////////////////////////////////////////////////////////////////////////
// 		Stats, Logging

// InitStats initializes all the statistics.
func (ss *Sim) InitStats() {
	n := len(ss.Net.LayerByName("Assembly").Neurons)
	wts := ss.Stats.F32Tensor("RateWts")
	wts.SetShape([]int{n, n})
	wts.SetMetaData("grid-fill", "1")
}

func (ss *Sim) ConfigLogs() {
	ss.InitStats()
	ss.ConfigLogItems()
	ss.Logs.CreateTables()

	ss.Logs.PlotItems("UMinus", "UPlus", "X", "Wt")

	ss.Logs.SetContext(&ss.Stats, ss.Net)
	ss.Logs.ResetLog(etime.Test, etime.Cycle)

	dt := ss.Logs.MiscTable("STDP")
	dt.AddFloat64Column("Lag")
	dt.AddFloat64Column("DWt")
	dt.SetMetaData("DWt:On", "+")

	dt = ss.Logs.MiscTable("FreqSweep")
	dt.AddFloat64Column("Hz")
	dt.AddFloat64Column("PrePost")
	dt.AddFloat64Column("PostPre")
	dt.SetMetaData("PrePost:On", "+")
	dt.SetMetaData("PostPre:On", "+")
}

func (ss *Sim) ConfigLogItems() {
	post := ss.Net.LayerByName("Post")
	lg := &ss.Logs

	lg.AddItem(&elog.Item{
		Name:   "Cycle",
		Type:   reflect.Int,
		FixMax: false,
		Range:  minmax.F32{Max: 1},
		Write: elog.WriteMap{
			etime.Scope(etime.Test, etime.Cycle): func(ctx *elog.Context) {
				ctx.SetInt(int(ss.Context.Cycle))
			}}})

	synVars := []struct {
		name string
		val  func() float32
	}{
		{"UMinus", func() float32 { return ss.Syn.UMinus }},
		{"UPlus", func() float32 { return ss.Syn.UPlus }},
		{"X", func() float32 { return ss.Syn.X }},
		{"Wt", func() float32 { return ss.Syn.Wt }},
		{"DWt", func() float32 { return ss.Syn.DWt }},
	}
	for _, sv := range synVars {
		sv := sv
		lg.AddItem(&elog.Item{
			Name:   sv.name,
			Type:   reflect.Float64,
			FixMax: false,
			Range:  minmax.F32{Max: 1},
			Write: elog.WriteMap{
				etime.Scope(etime.Test, etime.Cycle): func(ctx *elog.Context) {
					ctx.SetFloat32(sv.val())
				}}})
	}

	vars := []string{"Vm", "Spike"}
	for _, vnm := range vars {
		lg.AddItem(&elog.Item{
			Name:   vnm,
			Type:   reflect.Float64,
			FixMax: false,
			Range:  minmax.F32{Max: 1},
			Write: elog.WriteMap{
				etime.Scope(etime.Test, etime.Cycle): func(ctx *elog.Context) {
					ctx.SetFloat32(post.UnitValue(vnm, []int{0, 0}, 0))
				}}})
	}
}

func (ss *Sim) ResetCyclePlot() {
	ss.Logs.ResetLog(etime.Test, etime.Cycle)
	ss.GUI.UpdatePlot(etime.Test, etime.Cycle)
}

////////////////////////////////////////////////////////////////////////////////////////////
// 		GUI

// ConfigGUI configures the Cogent Core GUI interface for this simulation.
func (ss *Sim) ConfigGUI() {
	title := "Clopath Plasticity"
	ss.GUI.MakeBody(ss, "clopath", title, `This simulation explores voltage-based long-term plasticity (the Clopath rule) under spike-pairing protocols, reproducing the timing- and frequency-dependence of STDP experiments, plus a small rate-driven assembly whose weight matrix organizes by firing rate. See <a href="https://github.com/Sebrm2/LACONEU2025-NEST/blob/main/clopath/README.md">README.md on GitHub</a>.</p>`, readme)
	ss.GUI.CycleUpdateInterval = 10

	nv := ss.GUI.AddNetView("Network")
	nv.Var = "Act"
	nv.Options.Raster.Max = 100
	nv.SetNet(ss.Net)
	ss.ViewUpdate.Config(nv, etime.AlphaCycle, etime.AlphaCycle)
	ss.GUI.ViewUpdate = &ss.ViewUpdate

	ss.GUI.AddPlots(title, &ss.Logs)

	stdp := "STDP"
	dt := ss.Logs.MiscTable(stdp)
	plt := ss.GUI.AddMiscPlotTab(stdp + " Plot")
	plt.Options.Title = stdp
	plt.Options.XAxis = "Lag"
	plt.SetTable(dt)

	fs := "FreqSweep"
	dt = ss.Logs.MiscTable(fs)
	plt = ss.GUI.AddMiscPlotTab(fs + " Plot")
	plt.Options.Title = fs
	plt.Options.XAxis = "Hz"
	plt.SetTable(dt)

	itb, _ := ss.GUI.Tabs.NewTab("Rate Wts")
	tg := tensorcore.NewTensorGrid(itb).
		SetTensor(ss.Stats.F32Tensor("RateWts"))
	ss.GUI.SetGrid("RateWts", tg)

	ss.GUI.FinalizeGUI(false)
}

func (ss *Sim) MakeToolbar(p *tree.Plan) {
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Init", Icon: icons.Update,
		Tooltip: "Reset all plastic synapses and counters.  Also applies current params.",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.Init()
			ss.GUI.UpdateWindow()
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Stop", Icon: icons.Stop,
		Tooltip: "Stops running.",
		Active:  egui.ActiveRunning,
		Func: func() {
			ss.Stop()
			ss.GUI.UpdateWindow()
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Run pairs", Icon: icons.PlayArrow,
		Tooltip: "Runs the pairing protocol at the current lag and frequency.",
		Active:  egui.ActiveStopped,
		Func: func() {
			if !ss.GUI.IsRunning {
				go func() {
					ss.GUI.IsRunning = true
					ss.RunPairs(true)
					ss.GUI.IsRunning = false
					ss.GUI.UpdateWindow()
				}()
			}
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Lag sweep", Icon: icons.PlayArrow,
		Tooltip: "Maps the STDP curve: weight change vs. pre-to-post lag.",
		Active:  egui.ActiveStopped,
		Func: func() {
			if !ss.GUI.IsRunning {
				ss.GUI.IsRunning = true
				go ss.LagSweep()
				ss.GUI.UpdateWindow()
			}
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Freq sweep", Icon: icons.PlayArrow,
		Tooltip: "Maps weight change vs. pairing frequency for both spike orderings.",
		Active:  egui.ActiveStopped,
		Func: func() {
			if !ss.GUI.IsRunning {
				ss.GUI.IsRunning = true
				go ss.FreqSweep()
				ss.GUI.UpdateWindow()
			}
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Run rate net", Icon: icons.PlayArrow,
		Tooltip: "Runs the rate-driven assembly and renders its weight matrix.",
		Active:  egui.ActiveStopped,
		Func: func() {
			if !ss.GUI.IsRunning {
				go func() {
					ss.GUI.IsRunning = true
					ss.RunRateNet(true)
					ss.GUI.IsRunning = false
					ss.GUI.UpdateWindow()
				}()
			}
		},
	})
	tree.Add(p, func(w *core.Separator) {})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Reset plot", Icon: icons.Update,
		Tooltip: "Reset the cycle plot.",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.ResetCyclePlot()
			ss.GUI.UpdateWindow()
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Defaults", Icon: icons.Update,
		Tooltip: "Restore initial default parameters.",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.Defaults()
			ss.Init()
			ss.GUI.SimForm.Update()
			ss.GUI.UpdateWindow()
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "README",
		Icon:    icons.FileMarkdown,
		Tooltip: "Opens your browser on the README file that contains instructions for how to run this model.",
		Active:  egui.ActiveAlways,
		Func: func() {
			core.TheApp.OpenURL("https://github.com/Sebrm2/LACONEU2025-NEST/blob/main/clopath/README.md")
		},
	})
}

func (ss *Sim) RunGUI() {
	ss.Init()
	ss.ConfigGUI()
	ss.GUI.Body.RunMainWindow()
}
