// Copyright (c) 2025, The LACONEU Sims Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// ParamConfig has config parameters related to sim params.
type ParamConfig struct {

	// Sheet is the extra params sheet name(s) to use (space separated
	// if multiple). Must be valid name as listed in compiled-in params
	// or loaded params.
	Sheet string

	// Tag is an extra tag to add to file names and logs saved from this run.
	Tag string

	// Note is additional info to describe the run params etc,
	// like a git commit message for the run.
	Note string

	// SaveAll will save a snapshot of all current param and config settings
	// in a directory named params_<datestamp> (or _good if Good is true),
	// then quit. Useful for comparing to later changes and seeing multiple
	// views of current params.
	SaveAll bool `nest:"+"`

	// Good is for SaveAll, save to params_good for a known good params state.
	Good bool `nest:"+"`
}

// RunConfig has config parameters related to running the sim.
type RunConfig struct {

	// NTrials is the total number of trials per epoch.
	NTrials int `default:"10"`

	// Cycles is the total number of cycles (ms) per trial.
	Cycles int `default:"500"`
}

// LogConfig has config parameters related to logging data.
type LogConfig struct {

	// if true, save the trial log (per-trial population activity)
	// to file, as .trl.tsv typically
	Trial bool `default:"true" nest:"+"`

	// if true, save the cycle log to file, as .cyc.tsv typically.
	// May be large.
	Cycle bool `default:"false" nest:"+"`
}

// Config has the overall Sim configuration options.
type Config struct {

	// Name is the short name of the sim.
	Name string `display:"-" default:"Balanced"`

	// Title is the longer title of the sim.
	Title string `display:"-" default:"Balanced Random Network"`

	// URL is a link to the online README or other documentation for this sim.
	URL string `display:"-" default:"https://github.com/Sebrm2/LACONEU2025-NEST/blob/main/balanced/README.md"`

	// Doc is brief documentation of the sim.
	Doc string `display:"-" default:"This simulation explores the balanced random network: a sparsely connected excitatory / inhibitory network whose activity regime depends on the relative strength of inhibition and the external drive."`

	// Includes has a list of additional config files to include.
	// After configuration, it contains list of include files added.
	Includes []string

	// GUI means open the GUI. Otherwise it runs automatically and quits,
	// saving results to log files.
	GUI bool `default:"true"`

	// Debug reports debugging information.
	Debug bool

	// Params has parameter related configuration options.
	Params ParamConfig `display:"add-fields"`

	// Run has sim running related configuration options.
	Run RunConfig `display:"add-fields"`

	// Log has data logging related configuration options.
	Log LogConfig `display:"add-fields"`
}

func (cfg *Config) IncludesPtr() *[]string { return &cfg.Includes }

func (cfg *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cfg))
}
