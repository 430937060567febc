// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/nozflow/inp"
)

// Grid is the body-fitted (ξ, η) mesh: ξ = x runs along the nozzle axis,
// η ∈ [0,1] scales radially so that r(ξ,η) = η·R(ξ). Only the nx-length
// axial arrays are stored; η at cell row j is (j+½)/ny and is cheap enough
// to compute on demand (spec.md §4.2).
type Grid struct {
	Nx, Ny int
	Dxi    float64 // Δξ
	Deta   float64 // Δη = 1/ny

	Xi     []float64 // cell-centre ξ, length nx
	R      []float64 // wall radius at cell centres, length nx
	Rprime []float64 // dR/dξ at cell centres, length nx

	ThroatIdx int // argmin R
	ExitIdx   int // round((l_chamber+l_nozzle)/Δξ), clamped to [0, nx-1]

	Contour *WallContour
}

// Eta returns the η coordinate of row j (cell centre).
func (g *Grid) Eta(j int) float64 {
	return (float64(j) + 0.5) * g.Deta
}

// Radius returns the physical radius r = η_j·R_i at cell (i,j).
func (g *Grid) Radius(i, j int) float64 {
	return g.Eta(j) * g.R[i]
}

// NewGrid builds the grid for a validated request.
func NewGrid(r *inp.Request) *Grid {
	contour := NewWallContour(r)

	if r.Nx <= 0 || r.Ny <= 0 {
		// unreachable once the request has gone through inp.New, which
		// clamps both up to MinNx/MinNy; guards against a Grid built
		// directly from an unvalidated Request.
		chk.Panic("grid dimensions must be positive, got nx=%d ny=%d", r.Nx, r.Ny)
	}

	lPlume := r.PlumeFactor * r.LNozzle
	lTotal := r.LChamber + r.LNozzle + lPlume

	nx, ny := r.Nx, r.Ny
	dxi := lTotal / float64(nx)
	deta := 1.0 / float64(ny)

	xi := utl.LinSpace(0.5*dxi, lTotal-0.5*dxi, nx)

	// route the wall radius through gosl/fun.Func rather than the
	// concrete type, the way fem/essenbcs.go calls bc.Fcn.F(t, nil).
	var contourFn fun.Func = contour
	rwall := make([]float64, nx)
	for i := 0; i < nx; i++ {
		rwall[i] = contourFn.F(xi[i], nil)
	}

	rprime := make([]float64, nx)
	for i := 0; i < nx; i++ {
		switch {
		case nx == 1:
			rprime[i] = 0
		case i == 0:
			rprime[i] = (rwall[1] - rwall[0]) / dxi
		case i == nx-1:
			rprime[i] = (rwall[nx-1] - rwall[nx-2]) / dxi
		default:
			rprime[i] = (rwall[i+1] - rwall[i-1]) / (2.0 * dxi)
		}
	}

	throatIdx := 0
	for i := 1; i < nx; i++ {
		if rwall[i] < rwall[throatIdx] {
			throatIdx = i
		}
	}

	exitIdx := int(math.Round((r.LChamber + r.LNozzle) / dxi))
	if exitIdx < 0 {
		exitIdx = 0
	}
	if exitIdx > nx-1 {
		exitIdx = nx - 1
	}

	return &Grid{
		Nx: nx, Ny: ny,
		Dxi: dxi, Deta: deta,
		Xi: xi, R: rwall, Rprime: rprime,
		ThroatIdx: throatIdx,
		ExitIdx:   exitIdx,
		Contour:   contour,
	}
}
