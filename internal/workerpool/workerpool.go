// Package workerpool provides the map-reduce fan-out shape shared by
// the exhaustive and greedy solvers' inner loops: partition a task
// list across GOMAXPROCS workers, let each produce a local result
// slice, then merge sequentially.
package workerpool

import (
	"runtime"
	"sync"
)

// Map partitions tasks into contiguous chunks across GOMAXPROCS
// workers, applies fn to each, and returns the concatenation of every
// worker's local results in worker order, so the i-th result belongs
// to the i-th task.
func Map[T, R any](tasks []T, fn func(T) R) []R {
	if len(tasks) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(tasks) {
		workers = len(tasks)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(tasks) + workers - 1) / workers
	results := make([][]R, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(tasks) {
			break
		}
		end := start + chunkSize
		if end > len(tasks) {
			end = len(tasks)
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			local := make([]R, 0, end-start)
			for _, t := range tasks[start:end] {
				local = append(local, fn(t))
			}
			results[w] = local
		}(w, start, end)
	}
	wg.Wait()

	var out []R
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
