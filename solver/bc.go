// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/nozflow/gasdyn"
	"github.com/cpmech/nozflow/geom"
	"github.com/cpmech/nozflow/inp"
)

// applyBC enforces inflow, outflow, axis, wall and plume boundary
// conditions on field in place (spec.md §4.8). Order matters at the
// corners: inlet, then outlet, then axis, then wall/plume, mirroring the
// original solver's apply_bc ordering.
func applyBC(field [][]gasdyn.State, g *geom.Grid, r *inp.Request) {
	gamma := r.Gamma
	rSpecific := r.RSpecific()
	nx, ny := g.Nx, g.Ny

	// inlet (i=0): stagnation Dirichlet surrogate
	rhoChamber := r.PChamber / (rSpecific * r.TChamber)
	for j := 0; j < ny; j++ {
		field[j][0] = gasdyn.New(rhoChamber, r.InletVelocity, 0, r.PChamber, gamma)
	}

	// outlet (i=nx-1): zero-gradient extrapolation
	for j := 0; j < ny; j++ {
		field[j][nx-1] = field[j][nx-2]
	}

	// axis (j=0): symmetry
	for i := 0; i < nx; i++ {
		s := field[1][i]
		s.RhoV = 0
		field[0][i] = s
	}

	// wall / plume (j=ny-1)
	for i := 0; i < nx; i++ {
		if i <= g.ExitIdx {
			// slip wall: tangency to R'(ξ)
			rho, u, _, p := field[ny-2][i].Primitive(gamma)
			v := u * g.Rprime[i]
			field[ny-1][i] = gasdyn.New(rho, u, v, p, gamma)
		} else {
			// plume pressure outlet to ambient
			pAmb := r.AmbientPressureFactor * r.PChamber
			rhoAmb := pAmb / (rSpecific * r.AmbientTemperature)
			field[ny-1][i] = gasdyn.New(rhoAmb, 0, 0, pAmb, gamma)
		}
	}
}
