// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package areamach implements the isentropic area-Mach relation and the
// Newton iteration that inverts it (spec.md §4.5), plus the isentropic
// temperature/pressure/density ratios the quasi-1D initialiser builds its
// field from (spec.md §4.6).
package areamach

import "math"

// AreaRatioFromMach returns A/A* for the given Mach number and γ, from the
// isentropic relation
//
//	A/A* = (1/M)·[(2/(γ+1))·(1 + ½(γ−1)M²)]^((γ+1)/(2(γ−1)))
//
// It is always ≥ 1 and equals 1 at M=1.
func AreaRatioFromMach(mach, gamma float64) float64 {
	if mach <= 0 {
		return math.Inf(1)
	}
	gp1 := gamma + 1.0
	gm1 := gamma - 1.0
	bracket := (2.0 / gp1) * (1.0 + 0.5*gm1*mach*mach)
	exponent := gp1 / (2.0 * gm1)
	return math.Pow(bracket, exponent) / mach
}

// MachFromAreaRatio solves A/A*(M) = areaRatio for M by Newton iteration
// with an analytic derivative, following the subsonic (M₀=0.5) or
// supersonic (M₀=2.0) branch. At most 50 iterations are taken; the
// iteration aborts if the derivative magnitude drops below 1e-12 (near the
// throat); the result is always clamped to [0.01, 10]. areaRatio < 1.0001
// returns 1 directly (spec.md §4.5).
func MachFromAreaRatio(areaRatio, gamma float64, supersonic bool) float64 {
	if areaRatio < 1.0001 {
		return 1.0
	}

	mach := 0.5
	if supersonic {
		mach = 2.0
	}

	gp1 := gamma + 1.0
	gm1 := gamma - 1.0
	exponent := gp1 / (2.0 * gm1)

	for i := 0; i < 50; i++ {
		term2 := 1.0 + 0.5*gm1*mach*mach
		computed := math.Pow((2.0/gp1)*term2, exponent) / mach
		errv := computed - areaRatio
		if math.Abs(errv) < 1e-8 {
			return clampMach(mach)
		}

		deriv := computed * (mach*mach - 1.0) / (mach * term2)
		if math.Abs(deriv) < 1e-12 {
			break
		}

		mach -= errv / deriv
		mach = clampMach(mach)
	}

	return clampMach(mach)
}

func clampMach(m float64) float64 {
	if m < 0.01 {
		return 0.01
	}
	if m > 10 {
		return 10
	}
	return m
}

// TemperatureRatio returns T/T0 = 1/(1+½(γ−1)M²).
func TemperatureRatio(mach, gamma float64) float64 {
	return 1.0 / (1.0 + 0.5*(gamma-1.0)*mach*mach)
}

// PressureRatio returns p/p0 = (T/T0)^(γ/(γ−1)).
func PressureRatio(mach, gamma float64) float64 {
	return math.Pow(TemperatureRatio(mach, gamma), gamma/(gamma-1.0))
}

// DensityRatio returns ρ/ρ0 = (T/T0)^(1/(γ−1)).
func DensityRatio(mach, gamma float64) float64 {
	return math.Pow(TemperatureRatio(mach, gamma), 1.0/(gamma-1.0))
}

// PrandtlMeyerAngle returns the Prandtl-Meyer expansion angle ν(M) in
// radians for M≥1 (0 for M≤1, no expansion possible subsonically). This
// is a supplementary export from the nozzle-physics reference this
// package was ported from; the field solver does not call it (spec.md's
// shock-diamond overlay is out of scope), but it is a natural, cheap
// addition alongside the area-Mach solver for a caller who wants plume
// expansion-fan angles downstream of the exit.
func PrandtlMeyerAngle(mach, gamma float64) float64 {
	if mach <= 1.0 {
		return 0.0
	}
	gp1 := gamma + 1.0
	gm1 := gamma - 1.0
	m2m1 := mach*mach - 1.0
	return math.Sqrt(gp1/gm1)*math.Atan(math.Sqrt(gm1/gp1*m2m1)) - math.Atan(math.Sqrt(m2m1))
}

// MachAngle returns the Mach angle μ = arcsin(1/M) in radians, defined for
// M≥1. Like PrandtlMeyerAngle, this is a supplementary export not wired
// into the solver.
func MachAngle(mach float64) float64 {
	if mach < 1.0 {
		return math.Pi / 2
	}
	return math.Asin(1.0 / mach)
}
