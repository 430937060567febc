// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"runtime"
	"sync"
)

// parallelRows runs fn(j) for every row j in [lo, hi), fanning out across
// at most runtime.NumCPU() goroutines and joining with a WaitGroup before
// returning -- the same "snapshot in, own slice out, Wait() at the
// barrier" discipline san-kum/dynsim's sim.Ensemble.Run uses for
// independent replicas, generalised here to independent rows of one
// field (spec.md §5: each interior cell reads only the previous step's
// snapshot and writes only its own cell, so row-parallel fan-out across a
// step is safe; step boundaries are the sync points).
func parallelRows(lo, hi int, fn func(j int)) {
	n := hi - lo
	if n <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := lo + w*chunk
		end := start + chunk
		if end > hi {
			end = hi
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				fn(j)
			}
		}(start, end)
	}
	wg.Wait()
}
