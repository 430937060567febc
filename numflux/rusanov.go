// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package numflux implements the Rusanov (local Lax-Friedrichs)
// scalar-dissipation numerical flux used at cell faces in both mesh
// directions (spec.md §4.4).
package numflux

import (
	"math"

	"github.com/cpmech/nozflow/gasdyn"
)

// Xi returns the Rusanov face flux in the ξ direction between left state
// uL and right state uR: ½(F(uL)+F(uR)) − ½s(uR−uL), with
// s = max(|u_L|+a_L, |u_R|+a_R).
func Xi(uL, uR gasdyn.State, gamma float64) gasdyn.State {
	_, uVelL, _, _ := uL.Primitive(gamma)
	aL := uL.SoundSpeed(gamma)
	_, uVelR, _, _ := uR.Primitive(gamma)
	aR := uR.SoundSpeed(gamma)
	s := math.Max(math.Abs(uVelL)+aL, math.Abs(uVelR)+aR)

	fL := gasdyn.FluxXi(uL, gamma)
	fR := gasdyn.FluxXi(uR, gamma)
	return gasdyn.Scale(
		gasdyn.Sub(gasdyn.Add(fL, fR), gasdyn.Scale(gasdyn.Sub(uR, uL), s)),
		0.5,
	)
}

// Eta returns the Rusanov face flux in the η direction between the lower
// state uL and the upper state uR, using the radial velocity v for the
// local wave speed.
func Eta(uL, uR gasdyn.State, gamma float64) gasdyn.State {
	_, _, v1, _ := uL.Primitive(gamma)
	aL := uL.SoundSpeed(gamma)
	_, _, v2, _ := uR.Primitive(gamma)
	aR := uR.SoundSpeed(gamma)
	s := math.Max(math.Abs(v1)+aL, math.Abs(v2)+aR)

	gL := gasdyn.FluxEta(uL, gamma)
	gR := gasdyn.FluxEta(uR, gamma)
	return gasdyn.Scale(
		gasdyn.Sub(gasdyn.Add(gL, gR), gasdyn.Scale(gasdyn.Sub(uR, uL), s)),
		0.5,
	)
}
