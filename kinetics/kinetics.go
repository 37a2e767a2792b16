// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package kinetics provides the voltage-dependent gating kinetics of the
Wang & Buzsaki (1996) interneuron model: opening (alpha) and closing (beta)
rates for the sodium activation (m) and inactivation (h) gates and the
potassium activation (n) gate, all in 1/msec as a function of membrane
potential in mV.

Sodium activation is fast relative to the simulated time scale, so it is not
integrated as a state variable: MInf gives its instantaneous steady state.

AlphaN and AlphaM have the form -a*x / (exp(-0.1*x) - 1), which is 0/0 at x = 0
(V = -34 and V = -35 respectively).  The limit there is finite (a / 0.1), and
the Singularity mode of Params determines whether that point is guarded or
evaluated literally (producing NaN).
*/
package kinetics

//go:generate stringer -type=SingularityModes

import (
	"math"

	"github.com/goki/ki/kit"
)

// SingularityModes determine how the removable singularity in the AlphaN
// and AlphaM rate functions is handled.
type SingularityModes int32

var KiT_SingularityModes = kit.Enums.AddEnum(SingularityModesN, kit.NotBitFlag, nil)

func (ev SingularityModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SingularityModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Guard returns the analytic limit at the exact singular voltage,
	// and evaluates the denominator with Expm1 elsewhere, which avoids
	// cancellation error close to the singular point.
	Guard SingularityModes = iota

	// Raw evaluates exp(..) - 1 literally, so the exact singular voltage
	// yields NaN (0/0), which then propagates through any integration.
	Raw

	SingularityModesN
)

// Params are the gating kinetics parameters
type Params struct {
	Singularity SingularityModes `def:"Guard" desc:"how to evaluate AlphaN and AlphaM at their removable singularities (V = -34, V = -35): Guard returns the analytic limit, Raw evaluates literally and yields NaN"`
}

func (kp *Params) Defaults() {
	kp.Singularity = Guard
}

func (kp *Params) Update() {
}

// linExp computes the linear-over-exponential rate -a*x / (exp(-b*x) - 1).
// lim is its value at x = 0 (a / b), given exactly as a constant because
// the rounded quotient can differ from it in the last bit.
func (kp *Params) linExp(a, b, lim, x float64) float64 {
	if kp.Singularity == Raw {
		return -a * x / (math.Exp(-b*x) - 1)
	}
	if x == 0 {
		return lim
	}
	return -a * x / math.Expm1(-b*x)
}

// AlphaN is the opening rate of the potassium activation gate n
func (kp *Params) AlphaN(v float64) float64 {
	return kp.linExp(0.01, 0.1, 0.1, v+34)
}

// BetaN is the closing rate of the potassium activation gate n
func (kp *Params) BetaN(v float64) float64 {
	return 0.125 * math.Exp(-(v+44)/80)
}

// AlphaM is the opening rate of the sodium activation gate m
func (kp *Params) AlphaM(v float64) float64 {
	return kp.linExp(0.1, 0.1, 1, v+35)
}

// BetaM is the closing rate of the sodium activation gate m
func (kp *Params) BetaM(v float64) float64 {
	return 4 * math.Exp(-(v+60)/18)
}

// AlphaH is the opening (de-inactivation) rate of the sodium inactivation gate h
func (kp *Params) AlphaH(v float64) float64 {
	return 0.07 * math.Exp(-(v+58)/20)
}

// BetaH is the closing (inactivation) rate of the sodium inactivation gate h
func (kp *Params) BetaH(v float64) float64 {
	return 1 / (math.Exp(-0.1*(v+28)) + 1)
}

// MInf returns the instantaneous sodium activation at given voltage
func (kp *Params) MInf(v float64) float64 {
	am := kp.AlphaM(v)
	return am / (am + kp.BetaM(v))
}

// HInf returns the steady-state sodium inactivation gate value at given voltage
func (kp *Params) HInf(v float64) float64 {
	ah := kp.AlphaH(v)
	return ah / (ah + kp.BetaH(v))
}

// NInf returns the steady-state potassium activation gate value at given voltage
func (kp *Params) NInf(v float64) float64 {
	an := kp.AlphaN(v)
	return an / (an + kp.BetaN(v))
}

// TauH returns the time constant (msec) of the h gate, not including
// any temperature factor applied by the membrane model.
func (kp *Params) TauH(v float64) float64 {
	return 1 / (kp.AlphaH(v) + kp.BetaH(v))
}

// TauN returns the time constant (msec) of the n gate, not including
// any temperature factor applied by the membrane model.
func (kp *Params) TauN(v float64) float64 {
	return 1 / (kp.AlphaN(v) + kp.BetaN(v))
}
