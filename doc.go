// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wbneuron is the repository for a Go implementation of the
Wang & Buzsaki (1996) conductance-based interneuron model, integrated with
forward Euler and recorded as a membrane potential trace over time.

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* chans: per-channel (Na, K, leak) values for conductances, reversal potentials,
and currents.

* kinetics: the voltage-dependent gating rate functions, including the steady-state
sodium activation MInf, and the handling of the removable singularities in the
AlphaN and AlphaM rates.

* wb: the membrane model, its (V, h, n) state and derivative, the Euler Integrator
with its transient and recorded phases, and the recorded Series, which can be
exported as an etable.Table or CSV.

* vplot: renders the voltage trace of a Series as a line plot image.

* examples/wbneuron: runnable program with TOML config, named parameter sets,
and table / plot output.
*/
package wbneuron
