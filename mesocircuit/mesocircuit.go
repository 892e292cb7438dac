// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mesocircuit: This simulation runs the layer-2/3 pair of a spatially
// organized multi-layer cortical model in isolation. The external input of
// the two simulated populations is compensated for the recurrent input lost
// from the excluded layers, using reference rates from a full-scale run,
// and the compensated background is delivered as an equivalent DC drive.
package main

//go:generate core generate -add-types

// see params.go for params, config.go for Config

import (
	"embed"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/enums"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/system"
	"cogentcore.org/core/tree"
	"cogentcore.org/lab/base/mpi"
	"cogentcore.org/lab/base/randx"
	"github.com/Sebrm2/LACONEU2025-NEST/netparams"
	"github.com/emer/emergent/v2/econfig"
	"github.com/emer/emergent/v2/egui"
	"github.com/emer/emergent/v2/elog"
	"github.com/emer/emergent/v2/emer"
	"github.com/emer/emergent/v2/estats"
	"github.com/emer/emergent/v2/etime"
	"github.com/emer/emergent/v2/looper"
	"github.com/emer/emergent/v2/netview"
	"github.com/emer/emergent/v2/paths"
	"github.com/emer/etensor/tensor/tensorcore"
	"github.com/emer/leabra/v2/leabra"
)

//go:embed mesocircuit_pars.json
var content embed.FS

//go:embed README.md
var readme embed.FS

func main() {
	sim := &Sim{}
	sim.New()
	sim.ConfigAll()
	if sim.Config.GUI {
		sim.RunGUI()
	} else {
		sim.RunNoGUI()
	}
}

// SimPops are the populations actually constructed; the rest of the table's
// populations are excluded and compensated for.
var SimPops = []string{"L23E", "L23I"}

// Sim encapsulates the entire simulation model, and we define all the
// functionality as methods on this struct.  This structure keeps all relevant
// state information organized and available without having to pass everything around
// as arguments to methods, and provides the core GUI interface (note the view tags
// for the fields which provide hints to how things should be displayed).
type Sim struct {

	// fraction of the full-scale neuron counts to simulate; applied when
	// the network is built, so it requires a restart to change
	Order float32 `default:"0.02" min:"0.001" max:"1"`

	// fraction of the full-scale in-degrees to keep when scaling down
	ConnScale float32 `default:"0.1" min:"0.001" max:"1"`

	// deliver the compensated background as a DC drive; when off, only the
	// conductance noise remains and rates collapse
	DCInput bool `default:"true"`

	// variance of the per-cycle conductance noise
	NoiseVar float32 `default:"0.02" min:"0"`

	// conversion gain from background current to engine conductance units
	GeGain float32 `default:"0.4" min:"0"`

	// compensated external in-degree per simulated population,
	// computed from the table at startup
	CompKExt []int `edit:"-"`

	// conduction delay across half the sheet (ms), from the table's
	// delay offset and propagation speed
	CenterDelay float32 `edit:"-"`

	// Config contains misc configuration parameters for running the sim
	Config Config `new-window:"+"`

	// the full connectivity parameter table, all populations
	Pars *netparams.Table `new-window:"+" display:"no-inline"`

	// the down-scaled table actually used to build the network
	Scaled *netparams.Table `display:"-"`

	// the network -- click to view / edit parameters for layers, paths, etc
	Net *leabra.Network `new-window:"+" display:"no-inline"`

	// network parameter management
	Params emer.NetParams `display:"add-fields"`

	// contains looper control loops for running sim
	Loops *looper.Stacks `display:"-"`

	// contains computed statistic values
	Stats estats.Stats `display:"-"`

	// Contains all the logs and information about the logs.'
	Logs elog.Logs `display:"+"`

	// leabra timing parameters and state
	Context leabra.Context `display:"-"`

	// netview update parameters
	ViewUpdate netview.ViewUpdate `display:"add-fields"`

	// manages all the gui elements
	GUI egui.GUI `display:"-"`

	// a list of random seeds to use for each run
	RandSeeds randx.Seeds `display:"-"`
}

// New creates new blank elements and initializes defaults
func (ss *Sim) New() {
	ss.Config.Defaults()
	ss.Defaults()
	econfig.Config(&ss.Config, "config.toml")
	ss.Pars = &netparams.Table{}
	if ss.Config.Params.Table != "" {
		errors.Log(ss.Pars.OpenJSON(ss.Config.Params.Table))
	} else {
		errors.Log(ss.Pars.OpenJSONFS(content, "mesocircuit_pars.json"))
	}
	ss.Net = leabra.NewNetwork(ss.Config.Name)
	ss.Params.Config(ParamSets, ss.Config.Params.Sheet, ss.Config.Params.Tag, ss.Net)
	ss.Stats.Init()
	ss.RandSeeds.Init(100) // max 100 runs
	ss.InitRandSeed(0)
	ss.Context.Defaults()
}

func (ss *Sim) Defaults() {
	ss.Order = 0.02
	ss.ConnScale = 0.1
	ss.DCInput = true
	ss.NoiseVar = 0.02
	ss.GeGain = 0.4
}

//////////////////////////////////////////////////////////////////////////////
// 		Configs

// ConfigAll configures all the elements using the standard functions
func (ss *Sim) ConfigAll() {
	ss.ConfigPars()
	ss.ConfigNet(ss.Net)
	ss.ConfigLogs()
	ss.ConfigLoops()
	if ss.Config.Params.SaveAll {
		ss.Config.Params.SaveAll = false
		ss.Net.SaveParamsSnapshot(&ss.Params.Params, &ss.Config, ss.Config.Params.Good)
		system.TheApp.Quit()
	}
}

// ConfigPars derives the scaled table and the compensated external
// in-degrees for the simulated populations.
func (ss *Sim) ConfigPars() {
	ss.Scaled = ss.Pars.Scaled(ss.Order, ss.ConnScale)
	ss.CompKExt = make([]int, len(SimPops))
	for i, pop := range SimPops {
		ss.CompKExt[i] = ss.Scaled.CompensateExt(pop, SimPops)
	}
	ss.CenterDelay = ss.Scaled.Delay(ss.Scaled.Extent / 2)
}

// gridSide returns the 2D grid shape holding at least n neurons.
// The grid rounds the population count up to fill the last row.
func gridSide(n int) (y, x int) {
	y = int(math32.Sqrt(float32(n)))
	if y < 1 {
		y = 1
	}
	x = (n + y - 1) / y
	return
}

// circleFor returns the spatial connectivity pattern for connections from
// population j onto population i, whose grid has the given side, with the
// connection footprint radius derived from the table's pairwise spatial
// decay constant.
func (ss *Sim) circleFor(i, j, side int) *paths.Circle {
	circ := paths.NewCircle()
	circ.TopoWeights = true
	beta := ss.Scaled.Beta[i][j]
	r := int(math32.Round(2 * beta / ss.Scaled.Extent * float32(side)))
	if r < 1 {
		r = 1
	}
	circ.Radius = r
	circ.Sigma = 0.6
	return circ
}

func (ss *Sim) ConfigNet(net *leabra.Network) {
	net.SetRandSeed(ss.RandSeeds[0]) // init new separate random seed, using run = 0

	ie := ss.Scaled.Index("L23E")
	ii := ss.Scaled.Index("L23I")
	ey, ex := gridSide(ss.Scaled.N[ie])
	iy, ix := gridSide(ss.Scaled.N[ii])

	exc := net.AddLayer2D("L23E", ey, ex, leabra.SuperLayer)
	inh := net.AddLayer2D("L23I", iy, ix, leabra.SuperLayer)
	inh.AddClass("InhibLay")
	exc.Doc = "layer 2/3 excitatory population, down-scaled"
	inh.Doc = "layer 2/3 inhibitory population, down-scaled"

	net.ConnectLayers(exc, exc, ss.circleFor(ie, ie, ex), leabra.LateralPath)
	net.ConnectLayers(exc, inh, ss.circleFor(ii, ie, ix), leabra.ForwardPath)
	net.ConnectLayers(inh, exc, ss.circleFor(ie, ii, ex), leabra.InhibPath)
	net.ConnectLayers(inh, inh, ss.circleFor(ii, ii, ix), leabra.InhibPath)

	inh.PlaceRightOf(exc, 2)

	net.Build()
	net.Defaults()
	ss.ApplyParams()
	net.InitWeights()
}

func (ss *Sim) ApplyParams() {
	ss.Params.SetAll()

	pt := ss.Scaled
	for i, pop := range SimPops {
		ly := ss.Net.LayerByName(pop)
		if ss.DCInput {
			// DC equivalent of the compensated Poisson background
			dc := netparams.DCAmp(pt.BgRate, ss.CompKExt[i], pt.WExt, pt.TauSynE)
			ly.Act.Noise.Mean = float64(ss.GeGain * dc)
		} else {
			ly.Act.Noise.Mean = 0
		}
		ly.Act.Noise.Var = float64(ss.NoiseVar)
		ly.Act.Update()
	}

	// inhibitory path strength from the table's weight ratio
	gRel := -pt.W[0][1] / pt.W[0][0]
	exc := ss.Net.LayerByName("L23E")
	inh := ss.Net.LayerByName("L23I")
	pe := errors.Log1(exc.RecvPathBySendName("L23I")).(*leabra.Path)
	pe.WtScale.Abs = gRel
	pi := errors.Log1(inh.RecvPathBySendName("L23I")).(*leabra.Path)
	pi.WtScale.Abs = gRel
}

////////////////////////////////////////////////////////////////////////////////
// 	    Init, utils

// Init restarts the run, and initializes everything, including network weights
// and resets the epoch log table
func (ss *Sim) Init() {
	ss.Loops.ResetCounters()
	// ss.InitRandSeed(0)
	ss.GUI.StopNow = false
	ss.ApplyParams()
	ss.NewRun()
	ss.ViewUpdate.RecordSyns()
	ss.ViewUpdate.Update()
}

// InitRandSeed initializes the random seed based on current training run number
func (ss *Sim) InitRandSeed(run int) {
	ss.RandSeeds.Set(run)
	ss.RandSeeds.Set(run, &ss.Net.Rand)
}

// ConfigLoops configures the control loops: Training, Testing
func (ss *Sim) ConfigLoops() {
	ls := looper.NewStacks()

	ntrls := ss.Config.Run.NTrials
	cycles := ss.Config.Run.Cycles
	ls.AddStack(etime.Test).
		AddTime(etime.Epoch, 1).
		AddTime(etime.Trial, ntrls).
		AddTime(etime.Cycle, cycles)

	leabra.LooperStdPhases(ls, &ss.Context, ss.Net, cycles-25, cycles-1)
	leabra.LooperSimCycleAndLearn(ls, ss.Net, &ss.Context, &ss.ViewUpdate) // std algo code
	ls.Stacks[etime.Test].OnInit.Add("Init", func() { ss.Init() })

	for m, _ := range ls.Stacks {
		stack := ls.Stacks[m]
		stack.Loops[etime.Trial].OnStart.Add("NewTrial", func() {
			ss.ApplyParams()
			ss.ResetRaster()
		})
	}

	/////////////////////////////////////////////
	// Logging

	ls.AddOnEndToAll("Log", func(mode, time enums.Enum) {
		ss.Log(mode.(etime.Modes), time.(etime.Times))
	})
	leabra.LooperResetLogBelow(ls, &ss.Logs)

	////////////////////////////////////////////
	// GUI

	if ss.Config.GUI {
		leabra.LooperUpdateNetView(ls, &ss.ViewUpdate, ss.Net, ss.NetViewCounters)
		leabra.LooperUpdatePlots(ls, &ss.GUI)
		ls.Stacks[etime.Test].OnInit.Add("GUI-Init", func() { ss.GUI.UpdateWindow() })
	}

	if ss.Config.Debug {
		mpi.Println(ls.DocString())
	}
	ss.Loops = ls
}

// NewRun intializes a new run of the model
func (ss *Sim) NewRun() {
	ctx := &ss.Context
	ctx.Reset()
	ctx.Mode = etime.Test
	ss.Net.InitWeights()
	ss.InitStats()
	ss.StatCounters()
	ss.Logs.ResetLog(etime.Test, etime.Epoch)
}

////////////////////////////////////////////////////////////////////////////////////////////
// 		Stats

// InitStats initializes all the statistics.
// called at start of new run
func (ss *Sim) InitStats() {
	rst := ss.Stats.F32Tensor("Raster")
	exc := ss.Net.LayerByName("L23E")
	rst.SetShape([]int{len(exc.Neurons), ss.Config.Run.Cycles})
	rst.SetMetaData("grid-fill", "1")
	ss.ResetRaster()
}

// ResetRaster clears the spike raster at the start of each trial
func (ss *Sim) ResetRaster() {
	rst := ss.Stats.F32Tensor("Raster")
	for i := range rst.Values {
		rst.Values[i] = 0
	}
}

// StatCounters saves current counters to Stats, so they are available for logging etc
// Also saves a string rep of them for ViewUpdate.Text
func (ss *Sim) StatCounters() {
	ctx := &ss.Context
	mode := ctx.Mode
	ss.Loops.Stacks[mode].CountersToStats(&ss.Stats)
	trl := ss.Stats.Int("Trial")
	ss.Stats.SetInt("Trial", trl)
	ss.Stats.SetInt("Cycle", int(ctx.Cycle))
}

func (ss *Sim) NetViewCounters(tm etime.Times) {
	if ss.ViewUpdate.View == nil {
		return
	}
	ss.StatCounters()
	ss.ViewUpdate.Text = ss.Stats.Print([]string{"Trial", "Cycle"})
}

func (ss *Sim) CycleStats() {
	exc := ss.Net.LayerByName("L23E")
	inh := ss.Net.LayerByName("L23I")
	ss.Stats.SetFloat32("L23EActAvg", exc.Pools[0].Inhib.Act.Avg)
	ss.Stats.SetFloat32("L23IActAvg", inh.Pools[0].Inhib.Act.Avg)

	rst := ss.Stats.F32Tensor("Raster")
	cyc := int(ss.Context.Cycle)
	if cyc < rst.DimSize(1) {
		thr := float32(exc.Act.XX1.Thr)
		for i := range exc.Neurons {
			v := float32(0)
			if exc.Neurons[i].Act > thr {
				v = 1
			}
			rst.Set([]int{i, cyc}, v)
		}
	}
}

//////////////////////////////////////////////////////////////////////////////
// 		Logging

func (ss *Sim) ConfigLogs() {
	ss.Logs.AddCounterItems(etime.Trial, etime.Cycle)
	li := ss.Logs.AddStatAggItem("L23EActAvg", etime.Trial, etime.Cycle)
	li.SetFixMin(true)
	li = ss.Logs.AddStatAggItem("L23IActAvg", etime.Trial, etime.Cycle)
	li.SetFixMin(true)

	ss.Logs.CreateTables()
	ss.Logs.SetContext(&ss.Stats, ss.Net)
	ss.Logs.PlotItems("L23EActAvg", "L23IActAvg")
}

// Log is the main logging function, handles special things for different scopes
func (ss *Sim) Log(mode etime.Modes, time etime.Times) {
	ctx := &ss.Context
	if mode != etime.Analyze {
		ctx.Mode = mode // Also set specifically in a Loop callback.
	}
	dt := ss.Logs.Table(mode, time)
	if dt == nil {
		return
	}
	row := dt.Rows

	switch {
	case time == etime.Cycle:
		ss.StatCounters()
		ss.CycleStats()
	case time == etime.Trial:
		ss.StatCounters()
		if ss.Config.GUI {
			ss.GUI.Grid("Raster").NeedsRender()
		}
		ss.Logs.Log(mode, time) // also logs to file, etc
		return
	}
	ss.Logs.LogRow(mode, time, row) // also logs to file, etc
}

////////////////////////////////////////////////////////////////
// 		GUI

// ConfigGUI configures the Cogent Core GUI interface for this simulation.
func (ss *Sim) ConfigGUI() {
	title := ss.Config.Title
	ss.GUI.MakeBody(ss, ss.Config.Name, title, ss.Config.Doc+` See <a href="`+ss.Config.URL+`">README.md on GitHub</a>.</p>`, readme)
	ss.GUI.CycleUpdateInterval = 10

	nv := ss.GUI.AddNetView("Network")
	nv.Options.Raster.Max = 100
	nv.Options.MaxRecs = 500
	nv.SetNet(ss.Net)
	ss.ViewUpdate.Config(nv, etime.Cycle, etime.Cycle)
	ss.GUI.ViewUpdate = &ss.ViewUpdate
	nv.Current()

	ss.GUI.AddPlots(title, &ss.Logs)

	itb, _ := ss.GUI.Tabs.NewTab("Raster")
	tg := tensorcore.NewTensorGrid(itb).
		SetTensor(ss.Stats.F32Tensor("Raster"))
	ss.GUI.SetGrid("Raster", tg)

	ss.GUI.FinalizeGUI(false)
}

func (ss *Sim) MakeToolbar(p *tree.Plan) {
	ss.GUI.AddLooperCtrl(p, ss.Loops)

	////////////////////////////////////////////////
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
	tree.Add(p, func(w *core.Separator) {})
	ss.GUI.AddToolbarItem(p, egui.ToolbarItem{Label: "README",
		Icon:    icons.FileMarkdown,
		Tooltip: "Opens your browser on the README file that contains instructions for how to run this model.",
		Active:  egui.ActiveAlways,
		Func: func() {
			core.TheApp.OpenURL(ss.Config.URL)
		},
	})
}

func (ss *Sim) RunGUI() {
	ss.Init()
	ss.ConfigGUI()
	ss.GUI.Body.RunMainWindow()
}

func (ss *Sim) RunNoGUI() {
	if ss.Config.Params.Note != "" {
		mpi.Printf("Note: %s\n", ss.Config.Params.Note)
	}
	runName := ss.Params.RunName(0)
	ss.Stats.SetString("RunName", runName) // used for naming logs, stats, etc
	netName := ss.Net.Name

	elog.SetLogFile(&ss.Logs, ss.Config.Log.Trial, etime.Test, etime.Trial, "trl", netName, runName)
	elog.SetLogFile(&ss.Logs, ss.Config.Log.Cycle, etime.Test, etime.Cycle, "cyc", netName, runName)

	ss.Init()

	mpi.Printf("Running %d Trials of %d Cycles\n", ss.Config.Run.NTrials, ss.Config.Run.Cycles)
	ss.Loops.Run(etime.Test)

	ss.Logs.CloseLogFiles()
}
