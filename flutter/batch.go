// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flutter

import "sync"

// BatchResult pairs one analysis outcome with its error
type BatchResult struct {
	Res *Result
	Err error
}

// Batch runs independent analyses concurrently over nworkers goroutines.
// All inputs are immutable value objects and every output is freshly
// constructed, so no synchronization beyond the fan-out is needed. Results
// keep the order of the requests.
func Batch(reqs []Request, nworkers int) []BatchResult {
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > len(reqs) {
		nworkers = len(reqs)
	}
	out := make([]BatchResult, len(reqs))
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				res, err := Analyze(reqs[i])
				out[i] = BatchResult{Res: res, Err: err}
			}
		}()
	}
	for i := range reqs {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return out
}
