// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver is the time-marching driver, boundary conditions,
// axisymmetric source and result packer: the analogue of the teacher's
// fem package, specialised to the 2D axisymmetric Euler / quasi-1D
// dispatch (spec.md §4.7-§4.10, §5, §6, §7).
package solver

import (
	"github.com/cpmech/nozflow/gasdyn"
	"github.com/cpmech/nozflow/geom"
	"github.com/cpmech/nozflow/inp"
)

// Result is the flattened field pack returned by Solve (spec.md §4.9,
// §6). Every field slice (X through Mach) has length Nx*Ny, flattened in
// (j outer, i inner) order; ResidualHistory has one entry per iteration.
type Result struct {
	Nx, Ny int

	X, R                          []float64
	Density, VelocityX, VelocityR []float64
	Pressure, Temperature, Mach   []float64
	ResidualHistory               []float64
	Converged                     bool
	Iterations                    int
}

// pack flattens a ny×nx conservative field into a Result.
func pack(field [][]gasdyn.State, g *geom.Grid, r *inp.Request, history []float64, converged bool, iterations int) Result {
	gamma := r.Gamma
	rSpecific := r.RSpecific()
	n := g.Nx * g.Ny

	out := Result{
		Nx: g.Nx, Ny: g.Ny,
		X: make([]float64, 0, n), R: make([]float64, 0, n),
		Density: make([]float64, 0, n), VelocityX: make([]float64, 0, n), VelocityR: make([]float64, 0, n),
		Pressure: make([]float64, 0, n), Temperature: make([]float64, 0, n), Mach: make([]float64, 0, n),
		ResidualHistory: history, Converged: converged, Iterations: iterations,
	}

	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			s := field[j][i]
			rho, u, v, p := s.Primitive(gamma)
			t := p / (rho * rSpecific)
			m := s.Mach(gamma)

			out.X = append(out.X, g.Xi[i])
			out.R = append(out.R, g.Radius(i, j))
			out.Density = append(out.Density, rho)
			out.VelocityX = append(out.VelocityX, u)
			out.VelocityR = append(out.VelocityR, v)
			out.Pressure = append(out.Pressure, p)
			out.Temperature = append(out.Temperature, t)
			out.Mach = append(out.Mach, m)
		}
	}

	return out
}
