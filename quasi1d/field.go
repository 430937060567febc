// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quasi1d builds the closed-form quasi-1D field from isentropic
// relations along ξ (spec.md §4.6). It is exact in quasi-1D mode and
// serves as the initial condition for the 2D time-marching driver.
package quasi1d

import (
	"math"

	"github.com/cpmech/nozflow/areamach"
	"github.com/cpmech/nozflow/gasdyn"
	"github.com/cpmech/nozflow/geom"
	"github.com/cpmech/nozflow/inp"
)

// Build returns the ny×nx field of conservative states for the quasi-1D
// closed-form solution.
func Build(r *inp.Request, g *geom.Grid) [][]gasdyn.State {
	gamma := r.Gamma
	rSpecific := r.RSpecific()
	rStar := g.R[g.ThroatIdx]

	field := make([][]gasdyn.State, g.Ny)
	for j := range field {
		field[j] = make([]gasdyn.State, g.Nx)
	}

	for i := 0; i < g.Nx; i++ {
		areaRatio := (g.R[i] / rStar) * (g.R[i] / rStar)
		supersonic := i > g.ThroatIdx
		mach := areamach.MachFromAreaRatio(areaRatio, gamma, supersonic)

		t := r.TChamber * areamach.TemperatureRatio(mach, gamma)
		p := r.PChamber * areamach.PressureRatio(mach, gamma)
		rho := p / (rSpecific * t)
		a := math.Sqrt(gamma * p / rho)
		uMag := mach * a

		for j := 0; j < g.Ny; j++ {
			eta := g.Eta(j)
			v := uMag * g.Rprime[i] * eta
			u := math.Sqrt(math.Max(uMag*uMag-v*v, 0))
			field[j][i] = gasdyn.New(rho, u, v, p, gamma)
		}
	}

	return field
}
