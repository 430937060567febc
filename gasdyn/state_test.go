// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gasdyn

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_state01(tst *testing.T) {

	chk.PrintTitle("state01. conservative <-> primitive round trip")

	gamma := 1.2
	rho, u, v, p := 1.5, 200.0, 30.0, 5e5

	s := New(rho, u, v, p, gamma)
	rho2, u2, v2, p2 := s.Primitive(gamma)

	chk.Scalar(tst, "rho", 1e-9, rho2, rho)
	chk.Scalar(tst, "u", 1e-9, u2, u)
	chk.Scalar(tst, "v", 1e-9, v2, v)
	chk.Scalar(tst, "p", 1e-9, p2, p)
}

func Test_state02(tst *testing.T) {

	chk.PrintTitle("state02. mach consistency")

	gamma := 1.3
	s := New(2.0, 100.0, 50.0, 3e5, gamma)

	a := s.SoundSpeed(gamma)
	rho, u, v, p := s.Primitive(gamma)
	mExpect := math.Sqrt(u*u+v*v) / math.Sqrt(gamma*p/rho)

	chk.Scalar(tst, "mach", 1e-9, s.Mach(gamma), mExpect)
	chk.Scalar(tst, "a", 1e-9, a, math.Sqrt(gamma*p/rho))
}

func Test_state03(tst *testing.T) {

	chk.PrintTitle("state03. floors and finiteness")

	s := New(-5, 0, 0, -1, 1.4)
	rho, _, _, p := s.Primitive(1.4)

	if rho < Floor {
		tst.Errorf("rho must be floored, got %v", rho)
	}
	if p < Floor {
		tst.Errorf("p must be floored, got %v", p)
	}

	bad := State{Rho: math.NaN()}
	if bad.IsFinite() {
		tst.Errorf("NaN state must report non-finite")
	}
}
