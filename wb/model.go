// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wb implements the Wang & Buzsaki (1996) single-compartment
interneuron model, a reduced Hodgkin-Huxley style spiking neuron with
instantaneous sodium activation, and integrates it with forward Euler.

The Model holds the fixed biophysical parameters and computes the
derivative of the (V, h, n) State.  An Integrator owns a State and advances
it, first over a transient period that is discarded, and then over a
recorded period that is returned as a Series of (time, State) samples.
*/
package wb

import (
	"github.com/emer/wbneuron/chans"
	"github.com/emer/wbneuron/kinetics"
)

// wb.Model contains the biophysical parameters of the membrane equation.
// It is not modified by integration, and can be shared read-only
// across any number of Integrators.
type Model struct {
	Gbar chans.Chans     `view:"inline" desc:"[Defaults: 35, 9, 0.1] maximal conductances (mS/cm²) for the Na, K, and leak channels"`
	Erev chans.Chans     `view:"inline" desc:"[Defaults: 55, -90, -65] reversal potentials (mV) for each channel"`
	Cm   float64         `def:"1" min:"0" desc:"membrane capacitance (µF/cm²)"`
	Phi  float64         `def:"5" min:"0" desc:"temperature factor multiplying the h and n gate kinetics -- larger values speed up inactivation and repolarization"`
	Iapp float64         `def:"3" desc:"constant applied current (µA/cm²) -- positive is depolarizing"`
	Kin  kinetics.Params `view:"inline" desc:"voltage-dependent gating kinetics"`
}

// NewModel returns a new Model with default parameters
func NewModel() *Model {
	m := &Model{}
	m.Defaults()
	return m
}

func (m *Model) Defaults() {
	m.Gbar.SetAll(35, 9, 0.1)
	m.Erev.SetAll(55, -90, -65)
	m.Cm = 1
	m.Phi = 5
	m.Iapp = 3
	m.Kin.Defaults()
	m.Update()
}

// Update must be called after any changes to parameters
func (m *Model) Update() {
	m.Kin.Update()
}

// Conductances returns the gated conductance of each channel in given state,
// with sodium activation at its instantaneous steady state.
func (m *Model) Conductances(s State) chans.Chans {
	mi := m.Kin.MInf(s.V)
	return chans.Chans{
		Na: m.Gbar.Na * mi * mi * mi * s.H,
		K:  m.Gbar.K * s.N * s.N * s.N * s.N,
		L:  m.Gbar.L,
	}
}

// Currents returns the ionic current through each channel in given state
// (outward positive).
func (m *Model) Currents(s State) chans.Chans {
	g := m.Conductances(s)
	return g.Currents(s.V, m.Erev)
}

// Derivative returns the time derivative of the state (per msec).
// It depends only on s and the model parameters.
func (m *Model) Derivative(s State) Deriv {
	cur := m.Currents(s)
	kp := &m.Kin
	return Deriv{
		DV: (m.Iapp - cur.Sum()) / m.Cm,
		DH: m.Phi * (kp.AlphaH(s.V)*(1-s.H) - kp.BetaH(s.V)*s.H),
		DN: m.Phi * (kp.AlphaN(s.V)*(1-s.N) - kp.BetaN(s.V)*s.N),
	}
}
