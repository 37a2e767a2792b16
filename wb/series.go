// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wb

import (
	"math"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/minmax"
)

// Series is the recorded output of a run: one (time, State) sample per step,
// in increasing time order.
type Series struct {
	Dt     float64 `desc:"step size between samples (msec)"`
	Times  []float64
	States []State
}

// NewSeries returns an empty series with capacity for n samples
func NewSeries(n int, dt float64) *Series {
	if n < 0 {
		n = 0
	}
	return &Series{Dt: dt, Times: make([]float64, 0, n), States: make([]State, 0, n)}
}

// Append adds a sample
func (sr *Series) Append(t float64, s State) {
	sr.Times = append(sr.Times, t)
	sr.States = append(sr.States, s)
}

// Len returns the number of samples
func (sr *Series) Len() int {
	return len(sr.Times)
}

// XY returns the time and membrane potential of sample i
func (sr *Series) XY(i int) (t, v float64) {
	return sr.Times[i], sr.States[i].V
}

// Voltages returns the membrane potential of each sample
func (sr *Series) Voltages() []float64 {
	vs := make([]float64, len(sr.States))
	for i := range sr.States {
		vs[i] = sr.States[i].V
	}
	return vs
}

// Diverged returns true and the index of the first sample having a
// non-finite value, or false, -1 if all samples are finite.
func (sr *Series) Diverged() (bool, int) {
	for i := range sr.States {
		if !sr.States[i].IsFinite() {
			return true, i
		}
	}
	return false, -1
}

// VmRange returns the range of finite membrane potential values.
// It is not valid (Min > Max) if there are no finite values.
func (sr *Series) VmRange() minmax.F64 {
	var rg minmax.F64
	rg.SetInfinity()
	for i := range sr.States {
		v := sr.States[i].V
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rg.FitValInRange(v)
	}
	return rg
}

// MemSize returns the memory used by the samples
func (sr *Series) MemSize() datasize.ByteSize {
	n := cap(sr.Times)*int(unsafe.Sizeof(float64(0))) + cap(sr.States)*int(unsafe.Sizeof(State{}))
	return datasize.ByteSize(n)
}
