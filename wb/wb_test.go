// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wb

import (
	"math"
	"sync"
	"testing"

	"github.com/emer/wbneuron/kinetics"
	"gonum.org/v1/gonum/floats"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

// oracleTol is the tolerance for whole-run reference values
const oracleTol = 1.0e-6

func TestDerivative(t *testing.T) {
	m := NewModel()
	d := m.Derivative(InitState())
	cor := Deriv{DV: 2.0579524215631624, DH: -0.07387015846636527, DN: -0.22411073230424447}
	if dif := math.Abs(d.DV - cor.DV); dif > difTol {
		t.Errorf("DV err: %v, cor: %v, dif: %v\n", d.DV, cor.DV, dif)
	}
	if dif := math.Abs(d.DH - cor.DH); dif > difTol {
		t.Errorf("DH err: %v, cor: %v, dif: %v\n", d.DH, cor.DH, dif)
	}
	if dif := math.Abs(d.DN - cor.DN); dif > difTol {
		t.Errorf("DN err: %v, cor: %v, dif: %v\n", d.DN, cor.DN, dif)
	}
	// no hidden state: repeated calls are bit-identical
	for i := 0; i < 10; i++ {
		if d2 := m.Derivative(InitState()); d2 != d {
			t.Errorf("Derivative not deterministic: %+v vs %+v\n", d2, d)
		}
	}
}

func TestCurrents(t *testing.T) {
	m := NewModel()
	s := State{V: -65, H: 0.5, N: 0.5}
	cur := m.Currents(s)
	if cur.L != 0 {
		t.Errorf("leak current at E_L should be 0, got: %v\n", cur.L)
	}
	cork := 9 * 0.0625 * (-65 + 90)
	if dif := math.Abs(cur.K - cork); dif > difTol {
		t.Errorf("K current err: %v, cor: %v\n", cur.K, cork)
	}
	mi := m.Kin.MInf(-65)
	corna := 35 * mi * mi * mi * 0.5 * (-65 - 55)
	if dif := math.Abs(cur.Na - corna); dif > difTol {
		t.Errorf("Na current err: %v, cor: %v\n", cur.Na, corna)
	}
	d := m.Derivative(s)
	if dif := math.Abs(d.DV - (m.Iapp-cur.Sum())/m.Cm); dif > difTol {
		t.Errorf("DV != (Iapp - sum I) / Cm: dif: %v\n", dif)
	}
}

func TestSteadyState(t *testing.T) {
	m := NewModel()
	for _, v := range []float64{-80, -65, -50, -20} {
		d := m.Derivative(SteadyState(&m.Kin, v))
		if math.Abs(d.DH) > difTol || math.Abs(d.DN) > difTol {
			t.Errorf("gates not at steady state: v: %v, dh: %v, dn: %v\n", v, d.DH, d.DN)
		}
	}
}

func TestStep(t *testing.T) {
	m := NewModel()
	in := NewIntegrator(m)
	s0 := in.State()
	if s0 != InitState() || in.Cycle != 0 {
		t.Errorf("NewIntegrator should start in InitState: %+v, cycle: %v\n", s0, in.Cycle)
	}
	in.Step(0.01)
	cor := s0.Euler(m.Derivative(s0), 0.01)
	if in.State() != cor || in.Cycle != 1 {
		t.Errorf("Step err: %+v, cor: %+v, cycle: %v\n", in.State(), cor, in.Cycle)
	}
	in.Init(s0)
	if in.State() != s0 || in.Cycle != 0 {
		t.Errorf("Init did not reset: %+v, cycle: %v\n", in.State(), in.Cycle)
	}
}

func TestRunTimes(t *testing.T) {
	m := NewModel()
	in := NewIntegrator(m)
	dt := 0.01
	sr := in.Run(InitState(), 10, 500, dt)
	if sr.Len() != 500 || len(sr.States) != 500 {
		t.Fatalf("series length: %v, cor: 500\n", sr.Len())
	}
	if in.Cycle != 510 {
		t.Errorf("total steps: %v, cor: 510\n", in.Cycle)
	}
	for i, tm := range sr.Times {
		if tm != float64(i)*dt {
			t.Errorf("time err: idx: %v, t: %v, cor: %v\n", i, tm, float64(i)*dt)
		}
		if i > 0 {
			if dif := math.Abs((tm - sr.Times[i-1]) - dt); dif > difTol {
				t.Errorf("time step err: idx: %v, dif: %v\n", i, dif)
			}
		}
	}
	if sr.States[sr.Len()-1] != in.State() {
		t.Errorf("last sample should be the final state\n")
	}

	empty := in.Run(InitState(), 5, 0, dt)
	if empty.Len() != 0 {
		t.Errorf("zero recorded steps should give empty series: %v\n", empty.Len())
	}
	neg := in.Run(InitState(), -1, -1, dt)
	if neg.Len() != 0 || in.State() != InitState() {
		t.Errorf("negative counts should take no steps: %v, %+v\n", neg.Len(), in.State())
	}
}

func TestRecordedAfterUpdate(t *testing.T) {
	m := NewModel()
	in := NewIntegrator(m)
	sr := in.Run(InitState(), 0, 3, 0.01)
	// sample at time 0 is already one step past the initial state
	cor := State{V: -69.97942047578437, H: 0.9992612984153364, N: 0.29775889267695754}
	s := sr.States[0]
	if math.Abs(s.V-cor.V) > difTol || math.Abs(s.H-cor.H) > difTol || math.Abs(s.N-cor.N) > difTol {
		t.Errorf("first sample err: %+v, cor: %+v\n", s, cor)
	}
	if sr.Times[0] != 0 {
		t.Errorf("first sample time: %v\n", sr.Times[0])
	}
}

func TestTransient(t *testing.T) {
	m := NewModel()
	in := NewIntegrator(m)
	s0 := in.Run(InitState(), 0, 100, 0.01)
	s1 := in.Run(InitState(), 1000, 100, 0.01)
	if floats.EqualApprox(s0.Voltages(), s1.Voltages(), 1.0e-3) {
		t.Errorf("transient steps had no effect on recorded series\n")
	}
	// the transient is equivalent to the first part of a longer recording
	all := in.Run(InitState(), 0, 1100, 0.01)
	if !floats.Equal(all.Voltages()[1000:], s1.Voltages()) {
		t.Errorf("transient + record differs from continuous recording\n")
	}
}

func TestOracle(t *testing.T) {
	for _, mode := range []kinetics.SingularityModes{kinetics.Guard, kinetics.Raw} {
		m := NewModel()
		m.Kin.Singularity = mode
		rp := RunParams{}
		rp.Defaults()
		rp.Update()
		sr := rp.Run(m, InitState())
		if sr.Len() != 20000 {
			t.Fatalf("%v: series length: %v, cor: 20000\n", mode, sr.Len())
		}
		_, v0 := sr.XY(0)
		if dif := math.Abs(v0 - -62.53587563882303); dif > oracleTol {
			t.Errorf("%v: first V: %v, dif: %v\n", mode, v0, dif)
		}
		tl, vl := sr.XY(sr.Len() - 1)
		if dif := math.Abs(vl - -53.70065032593196); dif > oracleTol {
			t.Errorf("%v: last V: %v, dif: %v\n", mode, vl, dif)
		}
		if dif := math.Abs(tl - 199.99); dif > difTol {
			t.Errorf("%v: last time: %v\n", mode, tl)
		}
		rg := sr.VmRange()
		if math.Abs(rg.Min - -66.77977242994663) > oracleTol || math.Abs(rg.Max-33.4695753514809) > oracleTol {
			t.Errorf("%v: VmRange err: %v .. %v\n", mode, rg.Min, rg.Max)
		}
		if dv, _ := sr.Diverged(); dv {
			t.Errorf("%v: default run should not diverge\n", mode)
		}
	}
}

func TestRunParams(t *testing.T) {
	rp := RunParams{}
	rp.Defaults()
	rp.RecordedSteps = 0
	rp.TStop = 50
	rp.Update()
	if rp.RecordedSteps != 5000 {
		t.Errorf("RecordedSteps from times: %v, cor: 5000\n", rp.RecordedSteps)
	}
	rp.RecordedSteps = 300
	rp.Update()
	if rp.RecordedSteps != 300 {
		t.Errorf("Update should keep explicit RecordedSteps: %v\n", rp.RecordedSteps)
	}
	m := NewModel()
	sr := rp.Run(m, InitState())
	in := NewIntegrator(m)
	cor := in.Run(InitState(), rp.TransientSteps, rp.RecordedSteps, rp.Dt)
	if !floats.Equal(sr.Voltages(), cor.Voltages()) {
		t.Errorf("RunParams.Run differs from Integrator.Run\n")
	}
}

func TestNaNPropagates(t *testing.T) {
	m := NewModel()
	m.Kin.Singularity = kinetics.Raw
	in := NewIntegrator(m)
	sr := in.Run(State{V: -35, H: 0.5, N: 0.5}, 0, 50, 0.01)
	dv, idx := sr.Diverged()
	if !dv || idx != 0 {
		t.Errorf("raw singular start should diverge at 0: %v, %v\n", dv, idx)
	}
	if sr.Len() != 50 {
		t.Errorf("divergence should not stop the run: %v\n", sr.Len())
	}
	for i, v := range sr.Voltages() {
		if !math.IsNaN(v) {
			t.Errorf("NaN should propagate: idx: %v, v: %v\n", i, v)
			break
		}
	}
	if rg := sr.VmRange(); rg.Min <= rg.Max {
		t.Errorf("VmRange of all-NaN series should be empty: %v .. %v\n", rg.Min, rg.Max)
	}

	m.Kin.Singularity = kinetics.Guard
	sr = in.Run(State{V: -35, H: 0.5, N: 0.5}, 0, 50, 0.01)
	if dv, _ := sr.Diverged(); dv {
		t.Errorf("guarded singular start should stay finite\n")
	}
}

func TestSharedModel(t *testing.T) {
	m := NewModel()
	cor := NewIntegrator(m).Run(InitState(), 100, 1000, 0.01).Voltages()
	var wg sync.WaitGroup
	res := make([][]float64, 4)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i] = NewIntegrator(m).Run(InitState(), 100, 1000, 0.01).Voltages()
		}(i)
	}
	wg.Wait()
	for i := range res {
		if !floats.Equal(res[i], cor) {
			t.Errorf("concurrent run %v differs\n", i)
		}
	}
}

func TestMemSize(t *testing.T) {
	sr := NewSeries(100, 0.01)
	if sr.MemSize().Bytes() != 100*(8+24) {
		t.Errorf("MemSize: %v\n", sr.MemSize().Bytes())
	}
	if NewSeries(-5, 0.01).Len() != 0 {
		t.Errorf("negative capacity should give empty series\n")
	}
}
