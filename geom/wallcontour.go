// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom builds the wall-contour profile and the body-fitted
// (ξ, η) grid the solver marches on.
package geom

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/nozflow/inp"
)

// WallContour implements gosl/fun.Func so it can be handed to any generic
// 1-D-function consumer (Grid builds its wall-radius array through this
// interface, not the concrete type, below).
var _ fun.Func = (*WallContour)(nil)

// WallContour maps an axial position ξ to the wall radius R(ξ) over
// chamber, convergent, throat, divergent and plume regions (spec.md
// §4.1).
type WallContour struct {
	RThroat    float64
	RChamber   float64
	RExit      float64
	LChamber   float64
	LNozzle    float64
	PlumeSlope float64

	xiThroat float64 // ξ at the throat, = LChamber
	xiExit   float64 // ξ at the exit plane, = LChamber + LNozzle
	lConv    float64 // convergent section length, = 0.25*LChamber
}

// NewWallContour builds a WallContour from a validated request.
func NewWallContour(r *inp.Request) *WallContour {
	return &WallContour{
		RThroat:    r.RThroat,
		RChamber:   r.RChamber,
		RExit:      r.RExit,
		LChamber:   r.LChamber,
		LNozzle:    r.LNozzle,
		PlumeSlope: r.PlumeSlope,
		xiThroat:   r.LChamber,
		xiExit:     r.LChamber + r.LNozzle,
		lConv:      0.25 * r.LChamber,
	}
}

// R returns the wall radius at axial position xi.
func (o *WallContour) R(xi float64) float64 {
	switch {
	case xi < o.xiThroat-o.lConv:
		// cylindrical chamber
		return o.RChamber

	case xi <= o.xiThroat:
		// convergent cosine blend
		t := (xi - (o.xiThroat - o.lConv)) / o.lConv
		blend := (1.0 - math.Cos(math.Pi*t)) / 2.0
		return o.RChamber - (o.RChamber-o.RThroat)*blend

	case xi <= o.xiExit:
		// divergent bell
		t := math.Min((xi-o.xiThroat)/o.LNozzle, 1.0)
		return o.RThroat + (o.RExit-o.RThroat)*math.Pow(2.0*t-t*t, 0.85)

	default:
		// plume: linear expansion past the exit plane
		return o.RExit + o.PlumeSlope*(xi-o.xiExit)
	}
}

// F implements gosl/fun.Func; x is unused (R depends on the scalar ξ=t only).
func (o *WallContour) F(t float64, x []float64) float64 {
	return o.R(t)
}

// RaoNozzleLength estimates a bell-nozzle divergent length from the
// classical 80%-bell rule of thumb: L_n = bellFraction·(√ε−1)·R_t /
// tan(15°). This is a sizing helper a caller can use before building a
// Request (e.g. to pick l_nozzle); it does not affect WallContour's own
// cosine/bell/linear profile above.
func RaoNozzleLength(rThroat, expansionRatio, bellFraction float64) float64 {
	const avgHalfAngle = 15.0 * math.Pi / 180.0
	return bellFraction * (math.Sqrt(expansionRatio) - 1.0) * rThroat / math.Tan(avgHalfAngle)
}
