// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"context"
	"math"

	"github.com/cpmech/nozflow/gasdyn"
	"github.com/cpmech/nozflow/geom"
	"github.com/cpmech/nozflow/inp"
	"github.com/cpmech/nozflow/numflux"
	"github.com/cpmech/nozflow/quasi1d"
)

// runEuler2D time-marches the explicit finite-volume update from the
// quasi-1D initial condition until convergence, max_iter or cancellation
// (spec.md §4.7, §5, §7). Divergence does not stop the loop; it shows up
// as non-finite values in the returned field, with Converged false.
func runEuler2D(ctx context.Context, r *inp.Request, g *geom.Grid, progress ProgressFunc) Result {
	gamma := r.Gamma
	nx, ny := g.Nx, g.Ny

	cur := quasi1d.Build(r, g)
	nxt := make([][]gasdyn.State, ny)
	for j := range nxt {
		nxt[j] = make([]gasdyn.State, nx)
	}

	minR := g.R[g.ThroatIdx]
	drMin := minR / float64(ny)
	minSpacing := math.Min(g.Dxi, drMin)

	history := make([]float64, 0, r.MaxIter)
	converged := false
	iterations := 0

	for iter := 0; iter < r.MaxIter; iter++ {
		select {
		case <-ctx.Done():
			return pack(cur, g, r, history, false, iterations)
		default:
		}

		sMax := maxWaveSpeed(cur, gamma)
		if sMax < 1e-10 {
			sMax = 1e-10
		}
		dt := r.CFL * minSpacing / sMax

		// snapshot copy for the cells the interior loop doesn't touch
		// (j=0, j=ny-1, i=0, i=nx-1), overwritten by applyBC below.
		for j := 0; j < ny; j++ {
			copy(nxt[j], cur[j])
		}

		rowResiduals := make([]float64, ny)
		parallelRows(1, ny-1, func(j int) {
			localMax := 0.0
			eta := g.Eta(j)
			for i := 1; i < nx-1; i++ {
				u := cur[j][i]

				faceR := numflux.Xi(cur[j][i], cur[j][i+1], gamma)
				faceL := numflux.Xi(cur[j][i-1], cur[j][i], gamma)
				dFdXi := gasdyn.Scale(gasdyn.Sub(faceR, faceL), 1.0/g.Dxi)

				fPlus := gasdyn.FluxXi(cur[j+1][i], gamma)
				fMinus := gasdyn.FluxXi(cur[j-1][i], gamma)
				dFdEta := gasdyn.Scale(gasdyn.Sub(fPlus, fMinus), 1.0/(2.0*g.Deta))

				faceUp := numflux.Eta(cur[j][i], cur[j+1][i], gamma)
				faceDown := numflux.Eta(cur[j-1][i], cur[j][i], gamma)
				dGdEta := gasdyn.Scale(gasdyn.Sub(faceUp, faceDown), 1.0/g.Deta)

				m := eta * g.Rprime[i] / g.R[i]
				rLocal := eta * g.R[i]

				src := axisymmetricSource(u, gamma, rLocal, g.R[i], r.AxisDampingFraction, j, r.AxisZeroRows)

				// the eta-chain-rule factor 1/R(xi) comes from eta = r/R(xi),
				// not from the local physical radius r.
				lhs := gasdyn.Sub(gasdyn.Scale(dFdEta, m), dFdXi)
				lhs = gasdyn.Sub(lhs, gasdyn.Scale(dGdEta, 1.0/math.Max(g.R[i], 1e-10)))
				lhs = gasdyn.Add(lhs, src)

				du := gasdyn.Scale(lhs, dt)
				next := gasdyn.Add(u, du).Floored()
				nxt[j][i] = next

				if math.Abs(u.Rho) > 1e-12 {
					localMax = math.Max(localMax, math.Abs(du.Rho/u.Rho))
				}
			}
			rowResiduals[j] = localMax
		})

		residual := 0.0
		for _, rr := range rowResiduals {
			residual = math.Max(residual, rr)
		}

		applyBC(nxt, g, r)

		cur, nxt = nxt, cur
		history = append(history, residual)
		iterations = iter + 1

		maxMach := maxMachNumber(cur, gamma)
		progress(iterations, residual, dt, maxMach, r.Mode.String())

		if residual < r.Tolerance {
			converged = true
			break
		}
	}

	return pack(cur, g, r, history, converged, iterations)
}

func maxWaveSpeed(field [][]gasdyn.State, gamma float64) float64 {
	rowMax := make([]float64, len(field))
	parallelRows(0, len(field), func(j int) {
		local := 1e-10
		for _, s := range field[j] {
			_, u, v, _ := s.Primitive(gamma)
			a := s.SoundSpeed(gamma)
			local = math.Max(local, math.Max(math.Abs(u)+a, math.Abs(v)+a))
		}
		rowMax[j] = local
	})
	m := 1e-10
	for _, v := range rowMax {
		m = math.Max(m, v)
	}
	return m
}

func maxMachNumber(field [][]gasdyn.State, gamma float64) float64 {
	m := 0.0
	for _, row := range field {
		for _, s := range row {
			mach := s.Mach(gamma)
			if math.IsNaN(mach) || math.IsInf(mach, 0) {
				return mach
			}
			if mach > m {
				m = mach
			}
		}
	}
	return m
}
