// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wb

import (
	"math"

	"github.com/emer/wbneuron/kinetics"
)

// State is the dynamic state of the neuron.  Gate values are nominally
// in [0,1] but are not clamped.
type State struct {
	V float64 `desc:"membrane potential (mV)"`
	H float64 `desc:"sodium inactivation gate"`
	N float64 `desc:"potassium activation gate"`
}

// InitState returns the standard initial state: V = -70, h = 1, n = 0.3
func InitState() State {
	return State{V: -70, H: 1, N: 0.3}
}

// SteadyState returns the state with gates at their steady-state
// values for membrane potential v.
func SteadyState(kp *kinetics.Params, v float64) State {
	return State{V: v, H: kp.HInf(v), N: kp.NInf(v)}
}

// Euler returns the state advanced by one forward Euler step of size dt
func (s State) Euler(d Deriv, dt float64) State {
	return State{
		V: s.V + d.DV*dt,
		H: s.H + d.DH*dt,
		N: s.N + d.DN*dt,
	}
}

// IsFinite returns false if any variable is NaN or Inf
func (s State) IsFinite() bool {
	return !(math.IsNaN(s.V) || math.IsInf(s.V, 0) ||
		math.IsNaN(s.H) || math.IsInf(s.H, 0) ||
		math.IsNaN(s.N) || math.IsInf(s.N, 0))
}

// Deriv is the time derivative of a State, per msec
type Deriv struct {
	DV float64
	DH float64
	DN float64
}
