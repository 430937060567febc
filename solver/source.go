// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/nozflow/gasdyn"
)

// axisymmetricSource returns S_axi = (−ρv/r, −ρuv/r, −ρv²/r, −(E+p)v/r),
// damped near the axis by min(r/(dampingFraction·R),1) and with its ρu
// component forced to zero for the first zeroRows rows (spec.md §4.7,
// §9 -- this module resolves the two competing forms the original source
// carried into the single damped-and-clamped contract spec.md §9
// specifies).
func axisymmetricSource(s gasdyn.State, gamma, r, wallR, dampingFraction float64, j, zeroRows int) gasdyn.State {
	rSafe := math.Max(r, 1e-10)
	rho, u, v, p := s.Primitive(gamma)

	src := gasdyn.State{
		Rho:  -rho * v / rSafe,
		RhoU: -rho * u * v / rSafe,
		RhoV: -rho * v * v / rSafe,
		E:    -(s.E + p) * v / rSafe,
	}

	damping := math.Min(rSafe/(dampingFraction*wallR), 1.0)
	src = gasdyn.Scale(src, damping)

	if j < zeroRows {
		src.RhoU = 0
	}

	return src
}
