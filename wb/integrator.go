// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wb

import "math"

// Integrator advances a State of a Model using forward Euler.
// The State is owned by the Integrator and is only changed by Step.
type Integrator struct {
	Model *Model
	Cycle int `desc:"number of steps taken since last Init"`

	state State
}

// NewIntegrator returns a new Integrator for given model, in the InitState
func NewIntegrator(m *Model) *Integrator {
	in := &Integrator{Model: m}
	in.Init(InitState())
	return in
}

// Init resets the state and cycle counter
func (in *Integrator) Init(s State) {
	in.state = s
	in.Cycle = 0
}

// State returns the current state
func (in *Integrator) State() State {
	return in.state
}

// Step advances the state by one Euler step of size dt
func (in *Integrator) Step(dt float64) {
	in.state = in.state.Euler(in.Model.Derivative(in.state), dt)
	in.Cycle++
}

// Run initializes to given state, then takes transient steps that are not
// recorded, followed by recorded steps.  Each recorded sample i is the state
// after the update, stored at time i*dt, so the first sample is one step past
// the end of the transient.  Non-finite values are not checked and propagate.
func (in *Integrator) Run(init State, transient, recorded int, dt float64) *Series {
	in.Init(init)
	for i := 0; i < transient; i++ {
		in.Step(dt)
	}
	sr := NewSeries(recorded, dt)
	for i := 0; i < recorded; i++ {
		in.Step(dt)
		sr.Append(float64(i)*dt, in.state)
	}
	return sr
}

// RunParams are the integration time and step parameters for a run
type RunParams struct {
	TStart         float64 `def:"0" desc:"start time of the recorded period (msec) -- used with TStop to compute RecordedSteps when that is 0"`
	TStop          float64 `def:"200" desc:"stop time of the recorded period (msec)"`
	Dt             float64 `def:"0.01" min:"0" desc:"integration step size (msec)"`
	TransientSteps int     `def:"1000" min:"0" desc:"number of initial steps that are run but not recorded, to settle away from the initial state"`
	RecordedSteps  int     `def:"20000" min:"0" desc:"number of recorded steps -- if 0, computed as (TStop - TStart) / Dt"`
}

func (rp *RunParams) Defaults() {
	rp.TStart = 0
	rp.TStop = 200
	rp.Dt = 0.01
	rp.TransientSteps = 1000
	rp.RecordedSteps = 20000
}

// Update must be called after any changes to parameters
func (rp *RunParams) Update() {
	if rp.RecordedSteps <= 0 && rp.Dt > 0 {
		rp.RecordedSteps = int(math.Round((rp.TStop - rp.TStart) / rp.Dt))
	}
}

// Run runs a new Integrator on given model from init state
func (rp *RunParams) Run(m *Model, init State) *Series {
	in := NewIntegrator(m)
	return in.Run(init, rp.TransientSteps, rp.RecordedSteps, rp.Dt)
}
