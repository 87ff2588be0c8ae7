package robot

import "sync"

// ParallelFor executes fn over chunks of [0, n) on separate
// goroutines and waits for all of them. Work smaller than minChunk
// runs inline.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	const numWorkers = 4
	if n <= minChunk {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
