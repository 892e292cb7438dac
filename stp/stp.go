// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stp: This simulation explores short-term synaptic plasticity in the
// Tsodyks-Markram model: a single synapse between a sender driven by a
// regular spike train and a spiking receiver, showing frequency-dependent
// depression and facilitation of the postsynaptic response.
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
	"github.com/emer/emergent/v2/egui"
	"github.com/emer/emergent/v2/elog"
	"github.com/emer/emergent/v2/emer"
	"github.com/emer/emergent/v2/estats"
	"github.com/emer/emergent/v2/etime"
	"github.com/emer/emergent/v2/netview"
	"github.com/emer/emergent/v2/params"
	"github.com/emer/emergent/v2/paths"
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
		{Sel: "Layer", Desc: "no inhibition, no noise -- single neuron dynamics only",
			Params: params.Params{
				"Layer.Inhib.Layer.On":  "false",
				"Layer.Act.XX1.Gain":    "30",
				"Layer.Act.XX1.NVar":    "0.01",
				"Layer.Act.Init.Vm":     "0.3",
				"Layer.Act.Noise.Var":   "0",
				"Layer.Act.Noise.Fixed": "false",
			}},
		{Sel: "Path", Desc: "fixed weight, no learning -- efficacy comes from the synapse dynamics",
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

	// short-term plasticity parameters for the one synapse
	Syn TsodyksParams `display:"inline"`

	// dynamic state of the synapse
	SynState TsodyksSyn `display:"inline"`

	// synaptic weight: scales the released conductance into receiver Ge
	Wt float32 `min:"0" step:"0.1" def:"2"`

	// inter-spike interval of the sender's regular train, in cycles (ms)
	ISI int `min:"1" def:"20"`

	// total number of cycles to run
	NCycles int `min:"10" def:"1000"`

	// when does the sender's spike train come on?
	OnCycle int `min:"0" def:"50"`

	// when does the sender's spike train go off?
	OffCycle int `min:"0" def:"800"`

	// how often to update display (in cycles)
	UpdateInterval int `min:"1" def:"20"`

	// the network -- click to view / edit parameters for layers, paths, etc
	Net *leabra.Network `display:"-"`

	// spiking dynamics parameters for the receiver
	SpikeParams spike.ActParams `view:"no-inline"`

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
	ss.Net = leabra.NewNetwork("STP")
	ss.Defaults()
	ss.Stats.Init()
}

func (ss *Sim) Defaults() {
	ss.Syn.Defaults()
	ss.SynState.Init(&ss.Syn)
	ss.SpikeParams.Defaults()
	ss.Params.Config(ParamSets, "", "", ss.Net)
	ss.Wt = 2
	ss.ISI = 20
	ss.NCycles = 1000
	ss.OnCycle = 50
	ss.OffCycle = 800
	ss.UpdateInterval = 20
}

//////////////////////////////////////////////////////////////////////////////
// 		Configs

// ConfigAll configures all the elements using the standard functions
func (ss *Sim) ConfigAll() {
	ss.ConfigNet(ss.Net)
	ss.ConfigLogs()
}

func (ss *Sim) ConfigNet(net *leabra.Network) {
	snd := net.AddLayer2D("Sender", 1, 1, leabra.InputLayer)
	rcv := net.AddLayer2D("Recv", 1, 1, leabra.SuperLayer)
	snd.Doc = "presynaptic neuron, driven by a regular spike train"
	rcv.Doc = "postsynaptic neuron, receives the dynamic synapse"
	net.ConnectLayers(snd, rcv, paths.NewOneToOne(), leabra.ForwardPath)
	rcv.PlaceRightOf(snd, 2)
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

// Init restarts the run and initializes everything, including the synapse state
func (ss *Sim) Init() {
	ss.Context.Reset()
	ss.Net.InitWeights()
	ss.SynState.Init(&ss.Syn)
	ss.GUI.StopNow = false
	ss.SetParams("", false)
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
// 	    Running

// RunCycles drives the sender train through the synapse over NCycles
func (ss *Sim) RunCycles(updt bool) {
	ctx := &ss.Context
	ss.Init()
	ss.GUI.StopNow = false
	ss.Net.InitActs()
	ctx.AlphaCycStart()
	ss.SetParams("", false)
	snd := ss.Net.LayerByName("Sender")
	rcv := ss.Net.LayerByName("Recv")
	snrn := &(snd.Neurons[0])
	rnrn := &(rcv.Neurons[0])
	inputOn := false
	for cyc := 0; cyc < ss.NCycles; cyc++ {
		switch cyc {
		case ss.OnCycle:
			inputOn = true
		case ss.OffCycle:
			inputOn = false
		}
		spk := inputOn && (cyc-ss.OnCycle)%ss.ISI == 0
		if spk {
			snrn.Spike = 1
			snrn.Act = 1
		} else {
			snrn.Spike = 0
			snrn.Act = 0
		}
		ss.Syn.Step(&ss.SynState, spk)
		rnrn.Ge = ss.Wt * ss.SynState.Ge
		rnrn.Gi = 0
		ss.SpikeParams.SpikeVmFromG(rnrn)
		ss.SpikeParams.SpikeActFromVm(rnrn)
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
	if updt {
		ss.UpdateView()
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
	rcv := ss.Net.LayerByName("Recv")
	rcv.Act.Update()
	ss.SpikeParams.ActParams = rcv.Act // keep sync'd
	rcv.UpdateParams()
	ss.Syn.Update()
}

//////////////////////////////////////////////////////////////////////////////
// 		Logging

func (ss *Sim) ConfigLogs() {
	ss.ConfigLogItems()
	ss.Logs.CreateTables()

	ss.Logs.PlotItems("U", "R", "GeSyn", "Vm")

	ss.Logs.SetContext(&ss.Stats, ss.Net)
	ss.Logs.ResetLog(etime.Test, etime.Cycle)
}

func (ss *Sim) ConfigLogItems() {
	snd := ss.Net.LayerByName("Sender")
	rcv := ss.Net.LayerByName("Recv")
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

	lg.AddItem(&elog.Item{
		Name:   "SendSpike",
		Type:   reflect.Float64,
		FixMax: true,
		Range:  minmax.F32{Max: 1},
		Write: elog.WriteMap{
			etime.Scope(etime.Test, etime.Cycle): func(ctx *elog.Context) {
				ctx.SetFloat32(snd.UnitValue("Spike", []int{0, 0}, 0))
			}}})

	synVars := []struct {
		name string
		val  func() float32
	}{
		{"U", func() float32 { return ss.SynState.U }},
		{"R", func() float32 { return ss.SynState.R }},
		{"GeSyn", func() float32 { return ss.SynState.Ge }},
	}
	for _, sv := range synVars {
		sv := sv
		lg.AddItem(&elog.Item{
			Name:   sv.name,
			Type:   reflect.Float64,
			FixMax: true,
			Range:  minmax.F32{Max: 1},
			Write: elog.WriteMap{
				etime.Scope(etime.Test, etime.Cycle): func(ctx *elog.Context) {
					ctx.SetFloat32(sv.val())
				}}})
	}

	vars := []string{"Ge", "Vm", "Act", "Spike"}
	for _, vnm := range vars {
		lg.AddItem(&elog.Item{
			Name:   vnm,
			Type:   reflect.Float64,
			FixMax: false,
			Range:  minmax.F32{Max: 1},
			Write: elog.WriteMap{
				etime.Scope(etime.Test, etime.Cycle): func(ctx *elog.Context) {
					ctx.SetFloat32(rcv.UnitValue(vnm, []int{0, 0}, 0))
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
	title := "Short-Term Plasticity"
	ss.GUI.MakeBody(ss, "stp", title, `This simulation explores short-term synaptic plasticity in the Tsodyks-Markram model: a regular presynaptic spike train drives a single dynamic synapse, showing frequency-dependent depression and facilitation of the postsynaptic response. See <a href="https://github.com/Sebrm2/LACONEU2025-NEST/blob/main/stp/README.md">README.md on GitHub</a>.</p>`, readme)
	ss.GUI.CycleUpdateInterval = 10

	nv := ss.GUI.AddNetView("Network")
	nv.Var = "Act"
	nv.Options.Raster.Max = 100
	nv.SetNet(ss.Net)
	ss.ViewUpdate.Config(nv, etime.AlphaCycle, etime.AlphaCycle)
	ss.GUI.ViewUpdate = &ss.ViewUpdate

	ss.GUI.AddPlots(title, &ss.Logs)

	ss.GUI.FinalizeGUI(false)
}

func (ss *Sim) MakeToolbar(p *tree.Plan) {
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Init", Icon: icons.Update,
		Tooltip: "Restart the spike train and reset the synapse to its rested state.  Also applies current params.",
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
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Run cycles", Icon: icons.PlayArrow,
		Tooltip: "Runs the sender train through the synapse over NCycles.",
		Active:  egui.ActiveStopped,
		Func: func() {
			if !ss.GUI.IsRunning {
				go func() {
					ss.GUI.IsRunning = true
					ss.RunCycles(true)
					ss.GUI.IsRunning = false
					ss.GUI.UpdateWindow()
				}()
			}
		},
	})
	tree.Add(p, func(w *core.Separator) {})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Depressing", Icon: icons.Update,
		Tooltip: "Set the classic depressing-synapse parameters (cortical pyramidal-pyramidal).",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.Syn.Depressing()
			ss.Init()
			ss.GUI.SimForm.Update()
			ss.GUI.UpdateWindow()
		},
	})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "Facilitating", Icon: icons.Update,
		Tooltip: "Set the facilitating-synapse parameters (pyramidal onto interneuron).",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.Syn.Facilitating()
			ss.Init()
			ss.GUI.SimForm.Update()
			ss.GUI.UpdateWindow()
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
			core.TheApp.OpenURL("https://github.com/Sebrm2/LACONEU2025-NEST/blob/main/stp/README.md")
		},
	})
}

func (ss *Sim) RunGUI() {
	ss.Init()
	ss.ConfigGUI()
	ss.GUI.Body.RunMainWindow()
}
