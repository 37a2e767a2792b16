// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the ionic channel values of a conductance-based
single-compartment neuron, in biological units (mS/cm², mV, µA/cm²).
The same struct holds maximal conductances, reversal potentials, or
the instantaneous channel currents computed from them (Ohm's law).
Includes the fast sodium, delayed-rectifier potassium, and leak channels.
*/
package chans

// Chans are ion channels used in computing the membrane equation
type Chans struct {
	Na float64 `desc:"transient sodium (Na) channels -- drive the upstroke of the action potential"`
	K  float64 `desc:"delayed-rectifier potassium (K) channels -- repolarize the membrane after a spike"`
	L  float64 `desc:"constant leak channels -- determine the resting potential"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, l float64) {
	ch.Na, ch.K, ch.L = na, k, l
}

// Sum returns the sum over all channels, e.g., the total ionic current
func (ch *Chans) Sum() float64 {
	return ch.Na + ch.K + ch.L
}

// Currents returns the Ohmic currents g * (vm - Erev) for each channel,
// where ch holds the (already gated) conductances.
func (ch *Chans) Currents(vm float64, erev Chans) Chans {
	return Chans{
		Na: ch.Na * (vm - erev.Na),
		K:  ch.K * (vm - erev.K),
		L:  ch.L * (vm - erev.L),
	}
}
