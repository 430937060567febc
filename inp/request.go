// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp holds the input data model for the nozzle-flow solver: the
// request a caller builds, and the validation/defaulting that turns it
// into a checked in-memory model (no file format is read here; transport
// is external).
package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Mode selects which algorithm Solve runs.
type Mode int

const (
	// ModeQuasi1D computes the closed-form quasi-1D field only (fast preview).
	ModeQuasi1D Mode = iota
	// ModeEuler2D runs the 2D axisymmetric time-marching solver, seeded by
	// the quasi-1D field.
	ModeEuler2D
)

func (m Mode) String() string {
	switch m {
	case ModeQuasi1D:
		return "quasi-1D"
	case ModeEuler2D:
		return "2D Euler"
	}
	return "unknown"
}

// floors on grid resolution (spec: nx≥30, ny≥10)
const (
	MinNx = 30
	MinNy = 10
)

// Request carries nozzle geometry, stagnation conditions, gas properties,
// grid resolution and solver control parameters for a single solve. Ambient
// constants that the original source hard-codes as globals (CFL, plume
// length factor, plume ambient conditions, axis damping) are named fields
// here so each run can see and, if needed, override them explicitly.
type Request struct {

	// geometry (m)
	RThroat  float64
	RChamber float64
	RExit    float64
	LChamber float64
	LNozzle  float64

	// stagnation conditions
	PChamber float64 // Pa
	TChamber float64 // K

	// gas properties
	Gamma     float64 // ratio of specific heats, > 1
	MolarMass float64 // kg/mol

	// grid resolution
	Nx int
	Ny int

	// control
	MaxIter   int
	Tolerance float64
	Mode      Mode

	// PlumeFactor is κ in l_plume = κ·l_nozzle. Fixed at 1.0 by default.
	PlumeFactor float64

	// PlumeSlope is the wall-expansion slope downstream of the exit. The
	// solver contract (spec.md §4.1, §9) fixes this at 1.0 for 2D Euler
	// mode (open far-field, admits shock-cell formation) and a gentler
	// 0.5 for quasi-1D preview, unless explicitly overridden.
	PlumeSlope float64

	// AmbientPressureFactor scales p_chamber to get the plume boundary
	// pressure (fixed at 0.05 per spec.md §4.8/§6).
	AmbientPressureFactor float64
	// AmbientTemperature is the plume boundary temperature (K, fixed 300).
	AmbientTemperature float64

	// InletVelocity is the small positive seed axial velocity (m/s) imposed
	// at the inflow Dirichlet boundary (spec.md §4.8, §9).
	InletVelocity float64

	// AxisDampingFraction is the fraction of local wall radius within which
	// the axisymmetric source is damped near r=0 (fixed 0.1).
	AxisDampingFraction float64
	// AxisZeroRows is the number of near-axis rows where the ρu component
	// of the axisymmetric source is forced to zero (fixed 2).
	AxisZeroRows int

	// CFL number for the explicit time step (fixed 0.5). Exposed so test
	// hooks can inflate it to exercise the divergence-detection contract
	// (spec.md §8, scenario 5).
	CFL float64
}

// RUniversal is the universal gas constant, J/(mol·K).
const RUniversal = 8.314

// RSpecific returns R_univ / molar_mass.
func (r *Request) RSpecific() float64 {
	return RUniversal / r.MolarMass
}

// New returns a validated Request, applying documented defaults for any
// ambient field left at its zero value. It rejects physically nonsensical
// geometry/gas/control parameters and clamps grid resolution up to the
// documented floors.
func New(r Request) (*Request, error) {
	o := r

	if o.RThroat <= 0 || o.RChamber <= 0 || o.RExit <= 0 {
		return nil, chk.Err("nozzle radii must be positive: r_throat=%v r_chamber=%v r_exit=%v", o.RThroat, o.RChamber, o.RExit)
	}
	if o.LChamber <= 0 || o.LNozzle <= 0 {
		return nil, chk.Err("chamber/nozzle lengths must be positive: l_chamber=%v l_nozzle=%v", o.LChamber, o.LNozzle)
	}
	if o.RThroat > o.RChamber || o.RThroat > o.RExit {
		return nil, chk.Err("throat radius must not exceed chamber or exit radius: r_throat=%v r_chamber=%v r_exit=%v", o.RThroat, o.RChamber, o.RExit)
	}
	if o.PChamber <= 0 || o.TChamber <= 0 {
		return nil, chk.Err("stagnation conditions must be positive: p_chamber=%v t_chamber=%v", o.PChamber, o.TChamber)
	}
	if o.Gamma <= 1 {
		return nil, chk.Err("gamma must be greater than 1, got %v", o.Gamma)
	}
	if o.MolarMass <= 0 {
		return nil, chk.Err("molar_mass must be positive, got %v", o.MolarMass)
	}

	if o.Nx < MinNx {
		o.Nx = MinNx
	}
	if o.Ny < MinNy {
		o.Ny = MinNy
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 5000
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-6
	}

	if o.PlumeFactor == 0 {
		o.PlumeFactor = 1.0
	}
	if o.PlumeSlope == 0 {
		if o.Mode == ModeEuler2D {
			o.PlumeSlope = 1.0
		} else {
			o.PlumeSlope = 0.5
		}
	}
	if o.AmbientPressureFactor == 0 {
		o.AmbientPressureFactor = 0.05
	}
	if o.AmbientTemperature == 0 {
		o.AmbientTemperature = 300.0
	}
	if o.InletVelocity == 0 {
		o.InletVelocity = 100.0
	}
	if o.AxisDampingFraction == 0 {
		o.AxisDampingFraction = 0.1
	}
	if o.AxisZeroRows == 0 {
		o.AxisZeroRows = 2
	}
	if o.CFL == 0 {
		o.CFL = 0.5
	}

	if math.IsNaN(o.PChamber) || math.IsNaN(o.TChamber) {
		return nil, chk.Err("stagnation conditions must be finite")
	}

	return &o, nil
}
