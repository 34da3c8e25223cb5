package engine

import "sync"

// span is a half-open range [lo, hi) of work items owned by one worker.
type span struct {
	lo, hi int
}

// splitSpans divides n items into at most workers contiguous spans of
// near-equal size. The result is empty when n is zero.
func splitSpans(n, workers int) []span {
	if n <= 0 {
		return nil
	}
	workers = max(1, min(workers, n))

	spans := make([]span, workers)
	for i := range workers {
		spans[i] = span{lo: i * n / workers, hi: (i + 1) * n / workers}
	}
	return spans
}

// runSpans calls fn once per span. A single span runs on the calling
// goroutine; otherwise each span gets its own goroutine and runSpans waits
// for all of them.
func runSpans(spans []span, fn func(part int, s span)) {
	if len(spans) == 1 {
		fn(0, spans[0])
		return
	}

	var wg sync.WaitGroup
	for i, s := range spans {
		wg.Add(1)
		go func(part int, s span) {
			defer wg.Done()
			fn(part, s)
		}(i, s)
	}
	wg.Wait()
}
