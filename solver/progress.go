// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/gosl/io"

// ProgressFunc is invoked at the end of every step in 2D Euler mode, and
// once at start and once at finish in quasi-1D mode (spec.md §5, §6). It
// must be cheap and non-blocking; it runs on the solver's own goroutine.
type ProgressFunc func(iteration int, residual, dt, maxMach float64, phase string)

// DefaultProgress is the fallback Solve installs when a caller passes a
// nil callback. It prints with gosl/io, following fem/main.go's
// io.Pf("> ...") convention.
func DefaultProgress(iteration int, residual, dt, maxMach float64, phase string) {
	io.Pf("> [%s] iter=%d residual=%.3e dt=%.3e maxMach=%.3f\n", phase, iteration, residual, dt, maxMach)
}
