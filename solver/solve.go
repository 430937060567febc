// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"context"

	"github.com/cpmech/nozflow/geom"
	"github.com/cpmech/nozflow/inp"
	"github.com/cpmech/nozflow/quasi1d"
)

// Solve dispatches once at entry on req.Mode (spec.md §9's "tagged
// variant, single solve operation"): ModeQuasi1D returns the closed-form
// field directly; ModeEuler2D time-marches from that field as its initial
// condition. A nil progress falls back to DefaultProgress.
func Solve(ctx context.Context, req *inp.Request, progress ProgressFunc) Result {
	if progress == nil {
		progress = DefaultProgress
	}

	g := geom.NewGrid(req)

	switch req.Mode {
	case inp.ModeQuasi1D:
		return solveQuasi1D(req, g, progress)
	default:
		return runEuler2D(ctx, req, g, progress)
	}
}

func solveQuasi1D(r *inp.Request, g *geom.Grid, progress ProgressFunc) Result {
	progress(0, 0, 0, 0, r.Mode.String())

	field := quasi1d.Build(r, g)
	applyBC(field, g, r)

	maxMach := maxMachNumber(field, r.Gamma)
	progress(1, 0, 0, maxMach, r.Mode.String())

	return pack(field, g, r, []float64{0}, true, 1)
}
