// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package utils hosts small helpers shared across the prover packages.
package utils

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, nbIterations) into chunks and runs work on each
// chunk on its own goroutine, waiting for all of them to complete.
//
// work is called with a half-open [start, end) range of indices.
func Parallelize(nbIterations int, work func(start, end int)) {
	nbTasks := runtime.NumCPU()
	if nbTasks > nbIterations {
		nbTasks = nbIterations
	}
	if nbTasks <= 1 {
		work(0, nbIterations)
		return
	}

	var wg sync.WaitGroup
	perTask := nbIterations / nbTasks
	extra := nbIterations - perTask*nbTasks

	start := 0
	for i := 0; i < nbTasks; i++ {
		end := start + perTask
		if i < extra {
			end++
		}
		if start == end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			work(start, end)
		}(start, end)
		start = end
	}
	wg.Wait()
}
