// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gasdyn holds the conservative-variable cell state, its
// conversion to primitives, and the physical (non-numerical) Euler
// fluxes in the ξ and η directions (spec.md §3, §4.3).
package gasdyn

import "math"

// Floor is the minimum admissible density/pressure; it prevents division
// by zero and keeps the primitive reconstruction well-posed (spec.md §3,
// §4.3, §4.7).
const Floor = 1e-10

// State is the conservative cell state U = (ρ, ρu, ρv, E).
type State struct {
	Rho  float64
	RhoU float64
	RhoV float64
	E    float64
}

// New builds a conservative state from primitives (ρ, u, v, p) and γ.
func New(rho, u, v, p, gamma float64) State {
	e := p/(gamma-1.0) + 0.5*rho*(u*u+v*v)
	return State{Rho: rho, RhoU: rho * u, RhoV: rho * v, E: e}
}

// Primitive returns (ρ, u, v, p), flooring ρ and p per spec.md §4.3.
func (s State) Primitive(gamma float64) (rho, u, v, p float64) {
	rho = math.Max(s.Rho, Floor)
	u = s.RhoU / rho
	v = s.RhoV / rho
	p = (gamma - 1.0) * (s.E - 0.5*rho*(u*u+v*v))
	p = math.Max(p, Floor)
	return
}

// SoundSpeed returns a = √(γp/ρ) for this state.
func (s State) SoundSpeed(gamma float64) float64 {
	rho, _, _, p := s.Primitive(gamma)
	return math.Sqrt(gamma * p / rho)
}

// Mach returns the local Mach number √(u²+v²)/a.
func (s State) Mach(gamma float64) float64 {
	_, u, v, _ := s.Primitive(gamma)
	a := s.SoundSpeed(gamma)
	return math.Sqrt(u*u+v*v) / a
}

// Temperature returns T = p/(ρ·Rspecific).
func (s State) Temperature(gamma, rSpecific float64) float64 {
	rho, _, _, p := s.Primitive(gamma)
	return p / (rho * rSpecific)
}

// Floored returns s with ρ and E clamped to Floor (spec.md §4.7, applied
// after every explicit update).
func (s State) Floored() State {
	s.Rho = math.Max(s.Rho, Floor)
	s.E = math.Max(s.E, Floor)
	return s
}

// IsFinite reports whether every component of s is finite (spec.md §4.10
// signals divergence by non-finite values).
func (s State) IsFinite() bool {
	return !math.IsNaN(s.Rho) && !math.IsInf(s.Rho, 0) &&
		!math.IsNaN(s.RhoU) && !math.IsInf(s.RhoU, 0) &&
		!math.IsNaN(s.RhoV) && !math.IsInf(s.RhoV, 0) &&
		!math.IsNaN(s.E) && !math.IsInf(s.E, 0)
}

// FluxXi is the physical flux F in the ξ (axial) direction,
// F = (ρu, ρu²+p, ρuv, (E+p)u).
func FluxXi(s State, gamma float64) State {
	rho, u, v, p := s.Primitive(gamma)
	return State{
		Rho:  rho * u,
		RhoU: rho*u*u + p,
		RhoV: rho * u * v,
		E:    (s.E + p) * u,
	}
}

// FluxEta is the physical flux G in the η (radial) direction,
// G = (ρv, ρuv, ρv²+p, (E+p)v).
func FluxEta(s State, gamma float64) State {
	rho, u, v, p := s.Primitive(gamma)
	return State{
		Rho:  rho * v,
		RhoU: rho * u * v,
		RhoV: rho*v*v + p,
		E:    (s.E + p) * v,
	}
}

// Add returns the component-wise sum a+b.
func Add(a, b State) State {
	return State{a.Rho + b.Rho, a.RhoU + b.RhoU, a.RhoV + b.RhoV, a.E + b.E}
}

// Sub returns the component-wise difference a-b.
func Sub(a, b State) State {
	return State{a.Rho - b.Rho, a.RhoU - b.RhoU, a.RhoV - b.RhoV, a.E - b.E}
}

// Scale returns a*k component-wise.
func Scale(a State, k float64) State {
	return State{a.Rho * k, a.RhoU * k, a.RhoV * k, a.E * k}
}
