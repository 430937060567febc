// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/nozflow/geom"
	"github.com/cpmech/nozflow/inp"
)

func baseRequest(tst *testing.T, nx, ny, maxIter int, tol float64, mode inp.Mode) *inp.Request {
	r, err := inp.New(inp.Request{
		RThroat: 0.02, RChamber: 0.04, RExit: 0.06,
		LChamber: 0.1, LNozzle: 0.15,
		PChamber: 1e6, TChamber: 3000,
		Gamma: 1.2, MolarMass: 0.025,
		Nx: nx, Ny: ny, MaxIter: maxIter, Tolerance: tol,
		Mode: mode,
	})
	if err != nil {
		tst.Fatalf("request should be valid: %v", err)
	}
	return r
}

// scenario 1: sanity 30x15, max_iter=100, mode=2D
func Test_solver01(tst *testing.T) {

	chk.PrintTitle("solver01. sanity 2D Euler run")

	r := baseRequest(tst, 30, 15, 100, 1e-6, inp.ModeEuler2D)
	g := geom.NewGrid(r)
	res := Solve(context.Background(), r, nil)

	if len(res.Mach) != 450 {
		tst.Fatalf("field length must be 450, got %d", len(res.Mach))
	}

	maxMachDownstream := 0.0
	for j := 0; j < res.Ny; j++ {
		for i := g.ThroatIdx + 1; i < res.Nx; i++ {
			idx := j*res.Nx + i
			m := res.Mach[idx]
			if math.IsNaN(m) || math.IsInf(m, 0) {
				tst.Fatalf("Mach must be finite at (%d,%d), got %v", i, j, m)
			}
			if m > maxMachDownstream {
				maxMachDownstream = m
			}
		}
	}
	if maxMachDownstream < 1.0 {
		tst.Errorf("max Mach downstream of the throat should reach at least 1, got %v", maxMachDownstream)
	}
}

// scenario 3: axis consistency, 60x20, quasi-1D
func Test_solver03(tst *testing.T) {

	chk.PrintTitle("solver03. axis consistency in quasi-1D mode")

	r := baseRequest(tst, 60, 20, 100, 1e-6, inp.ModeQuasi1D)
	res := Solve(context.Background(), r, nil)

	for i := 0; i < res.Nx; i++ {
		idx0 := 0*res.Nx + i
		idx1 := 1*res.Nx + i
		rhoV := res.Density[idx0] * res.VelocityR[idx0]
		if rhoV != 0 {
			tst.Errorf("rho*v at axis row must be exactly 0 at i=%d, got %v", i, rhoV)
		}
		chk.Scalar(tst, "u axis vs u row1", 1e-9, res.VelocityX[idx0], res.VelocityX[idx1])
	}

	if len(res.ResidualHistory) != 1 {
		tst.Errorf("quasi-1D residual history must have length 1, got %d", len(res.ResidualHistory))
	}
}

// scenario 4: plume presence, 2D Euler, 100x40
func Test_solver04(tst *testing.T) {

	chk.PrintTitle("solver04. plume presence and near-ambient wall pressure")

	r := baseRequest(tst, 100, 40, 2000, 1e-6, inp.ModeEuler2D)
	g := geom.NewGrid(r)
	res := Solve(context.Background(), r, nil)

	if g.ExitIdx >= res.Nx-1 {
		tst.Fatalf("plume cells past the exit index must exist")
	}

	pAmb := r.AmbientPressureFactor * r.PChamber
	j := res.Ny - 1
	for i := g.ExitIdx + 1; i < res.Nx; i++ {
		idx := j*res.Nx + i
		p := res.Pressure[idx]
		if p > 2*pAmb || p < pAmb/2 {
			tst.Errorf("plume wall pressure at i=%d should stay within 2x of ambient, got %v (ambient %v)", i, p, pAmb)
		}
	}
}

// scenario 5: divergence detection via inflated CFL
func Test_solver05(tst *testing.T) {

	chk.PrintTitle("solver05. divergence detection with inflated CFL")

	r := baseRequest(tst, 30, 15, 100, 1e-6, inp.ModeEuler2D)
	r.CFL = 2.0
	res := Solve(context.Background(), r, nil)

	foundNonFinite := false
	for _, m := range res.Mach {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			foundNonFinite = true
			break
		}
	}
	if !foundNonFinite {
		tst.Errorf("expected a non-finite Mach entry once CFL is inflated past stability")
	}
	if res.Converged {
		tst.Errorf("a diverged run must not report converged=true")
	}
}

// inlet persistence and wall tangency boundary behaviours
func Test_solver06(tst *testing.T) {

	chk.PrintTitle("solver06. inlet persistence and wall tangency")

	r := baseRequest(tst, 30, 15, 100, 1e-6, inp.ModeEuler2D)
	g := geom.NewGrid(r)
	res := Solve(context.Background(), r, nil)

	rhoChamber := r.PChamber / (r.RSpecific() * r.TChamber)
	for j := 0; j < res.Ny; j++ {
		idx := j*res.Nx + 0
		chk.Scalar(tst, "inlet rho", 1e-6*rhoChamber, res.Density[idx], rhoChamber)
		chk.Scalar(tst, "inlet u", 1e-9, res.VelocityX[idx], r.InletVelocity)
		chk.Scalar(tst, "inlet p", 1e-6*r.PChamber, res.Pressure[idx], r.PChamber)
	}

	j := res.Ny - 1
	for i := 0; i <= g.ExitIdx; i++ {
		idx := j*res.Nx + i
		if res.VelocityX[idx] == 0 {
			continue
		}
		ratio := res.VelocityR[idx] / res.VelocityX[idx]
		chk.Scalar(tst, "wall tangency", 1e-6, ratio, g.Rprime[i])
	}
}
